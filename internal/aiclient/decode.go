package aiclient

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

var errEmptyResponse = errors.New("empty response from model")

// StripCodeFences removes leading/trailing markdown fences that models emit
// despite instructions, and trims any prose surrounding the JSON payload.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// extractJSON keeps only the outermost JSON value, object or array,
// whichever opens first.
func extractJSON(s string) string {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		if end := strings.LastIndex(s, "]"); end > arrStart {
			return strings.TrimSpace(s[arrStart : end+1])
		}
	}
	if objStart != -1 {
		if end := strings.LastIndex(s, "}"); end > objStart {
			return strings.TrimSpace(s[objStart : end+1])
		}
	}
	return s
}

// DecodeExtraction decodes a raw extraction response into a validated
// ExtractionResult. It returns an aierror.ParseError for malformed JSON and
// an aierror.ValidationError when the decoded object breaks the schema.
func DecodeExtraction(raw string) (*models.ExtractionResult, error) {
	clean := extractJSON(StripCodeFences(raw))
	if clean == "" {
		return nil, &aierror.ParseError{Err: errEmptyResponse}
	}

	var result models.ExtractionResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, &aierror.ParseError{Snippet: snippet(clean), Err: err}
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

// enrichmentEnvelope is the wrapped-array shape the prompt asks for. Some
// batch-call protocols require a top-level object rather than a bare array;
// the decoder accepts both.
type enrichmentEnvelope struct {
	Results []models.EnrichmentOutcome `json:"results"`
}

// DecodeEnrichmentOutcomes decodes a raw batched enrichment response.
// Confidence values are clamped into [0,1] rather than rejected; a sloppy
// confidence is not worth discarding a whole batch over.
func DecodeEnrichmentOutcomes(raw string) ([]models.EnrichmentOutcome, error) {
	clean := extractJSON(StripCodeFences(raw))
	if clean == "" {
		return nil, &aierror.ParseError{Err: errEmptyResponse}
	}

	var outcomes []models.EnrichmentOutcome
	if strings.HasPrefix(clean, "[") {
		if err := json.Unmarshal([]byte(clean), &outcomes); err != nil {
			return nil, &aierror.ParseError{Snippet: snippet(clean), Err: err}
		}
	} else {
		var envelope enrichmentEnvelope
		if err := json.Unmarshal([]byte(clean), &envelope); err != nil {
			return nil, &aierror.ParseError{Snippet: snippet(clean), Err: err}
		}
		outcomes = envelope.Results
	}

	for i := range outcomes {
		outcomes[i].MerchantConfidence = clamp01(outcomes[i].MerchantConfidence)
		outcomes[i].CategoryConfidence = clamp01(outcomes[i].CategoryConfidence)
	}

	return outcomes, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func snippet(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
