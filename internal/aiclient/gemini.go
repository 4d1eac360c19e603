package aiclient

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
)

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiClient creates a Gemini-backed Client. A missing API key is a
// configuration condition, not a network error, and fails immediately.
func NewGeminiClient(ctx context.Context, apiKey string, timeout time.Duration, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &aierror.ConfigurationError{Setting: "ai.api_key", Msg: "no model credential configured"}
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &aierror.ConfigurationError{Setting: "ai.api_key", Msg: "creating gemini client: " + err.Error()}
	}

	return &GeminiClient{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Invoke sends the prompt and optional attachment to the named model and
// returns the concatenated text of the first candidate.
func (g *GeminiClient) Invoke(ctx context.Context, modelID string, prompt string, att *Attachment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var parts []genai.Part
	if att != nil {
		parts = append(parts, genai.Blob{MIMEType: att.MIMEType, Data: att.Data})
	}
	parts = append(parts, genai.Text(prompt))

	start := time.Now()
	model := g.client.GenerativeModel(modelID)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", &aierror.UpstreamError{Model: modelID, Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &aierror.UpstreamError{Model: modelID, Err: errEmptyResponse}
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	if g.logger != nil {
		g.logger.Debug("Model call completed",
			logging.Field{Key: logging.FieldModel, Value: modelID},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
		)
	}

	return responseText.String(), nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
