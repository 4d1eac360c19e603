package extract

import (
	"context"

	"github.com/darioristic/crm-monorepo-sub013/internal/aiclient"
	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
	"github.com/darioristic/crm-monorepo-sub013/internal/config"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
	"github.com/darioristic/crm-monorepo-sub013/internal/prompt"
	"github.com/darioristic/crm-monorepo-sub013/internal/retry"
)

// Options carries optional caller context for an extraction.
type Options struct {
	// CompanyName identifies the receiving company so the model does not
	// mistake it for the vendor.
	CompanyName string
}

// Extractor runs the multi-pass extraction state machine. It holds no
// long-lived state; independent documents can be extracted concurrently.
type Extractor struct {
	client aiclient.Client
	cfg    *config.Config
	logger logging.Logger
}

// NewExtractor creates an Extractor with the given gateway client and
// configuration.
func NewExtractor(client aiclient.Client, cfg *config.Config, logger logging.Logger) *Extractor {
	return &Extractor{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Extract runs the full pipeline on one document: primary pass with retries,
// quality scoring, conditional fallback pass, merge. It fails only on total
// primary-pass exhaustion or a configuration condition; fallback failures
// degrade to the primary result.
func (e *Extractor) Extract(ctx context.Context, fileBytes []byte, mimeType string, opts Options) (*models.ExtractionResult, error) {
	if e.client == nil {
		return nil, &aierror.ConfigurationError{Setting: "ai.api_key", Msg: "no model credential configured"}
	}

	att := &aiclient.Attachment{MIMEType: mimeType, Data: fileBytes}

	// Pass 1: primary model with the standard prompt. Exhausted retries
	// propagate to the caller; no data beats asserting confidence in nothing.
	primary, err := retry.Do(e.logger, "extraction", e.cfg.AI.MaxRetries, e.cfg.RetryBaseDelay(), func() (*models.ExtractionResult, error) {
		return e.invoke(ctx, e.cfg.AI.Model, prompt.BuildExtractionPrompt(opts.CompanyName), att)
	})
	if err != nil {
		e.logger.WithError(err).Error("Primary extraction pass failed",
			logging.Field{Key: logging.FieldModel, Value: e.cfg.AI.Model},
		)
		return nil, err
	}

	score := ComputeQualityScore(primary)
	e.logger.Debug("Scored primary extraction pass",
		logging.Field{Key: logging.FieldPass, Value: 1},
		logging.Field{Key: logging.FieldScore, Value: score.Score},
		logging.Field{Key: logging.FieldMissingFields, Value: score.MissingCriticalFields},
	)

	if score.Sufficient(e.cfg.Extraction.QualityThreshold) {
		return primary, nil
	}

	// Pass 2: fallback model with the chain-of-thought prompt. A fallback
	// failure is never surfaced; the primary result is returned best-effort.
	secondary, err := retry.Do(e.logger, "extraction_fallback", e.cfg.AI.FallbackRetries, e.cfg.RetryBaseDelay(), func() (*models.ExtractionResult, error) {
		return e.invoke(ctx, e.cfg.AI.FallbackModel, prompt.BuildFallbackExtractionPrompt(opts.CompanyName), att)
	})
	if err != nil {
		e.logger.WithError(err).Warn("Fallback extraction pass failed, keeping primary result",
			logging.Field{Key: logging.FieldModel, Value: e.cfg.AI.FallbackModel},
		)
		return primary, nil
	}

	merged := mergeResults(primary, secondary)
	e.logger.Info("Merged fallback extraction pass",
		logging.Field{Key: logging.FieldPass, Value: 2},
		logging.Field{Key: logging.FieldScore, Value: ComputeQualityScore(merged).Score},
	)

	return merged, nil
}

// invoke performs one model call and decodes the response. This is the unit
// the retry wrapper sees: an attempt covers both the network call and the
// decode, since a garbled body is as transient as a failed request.
func (e *Extractor) invoke(ctx context.Context, model, promptText string, att *aiclient.Attachment) (*models.ExtractionResult, error) {
	raw, err := e.client.Invoke(ctx, model, promptText, att)
	if err != nil {
		return nil, err
	}
	return aiclient.DecodeExtraction(raw)
}
