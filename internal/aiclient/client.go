// Package aiclient provides the single-call gateway to the generative model
// endpoint. The Client interface abstracts the provider so orchestrators can
// be tested with function-typed mocks, and the decoders turn raw model text
// into validated typed results.
package aiclient

import (
	"context"
)

// Attachment is an optional binary payload sent alongside the prompt,
// typically the scanned document for extraction calls.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Client defines the interface for a single generative-model invocation.
// Implementations make exactly one outbound call per Invoke.
type Client interface {
	// Invoke sends the prompt (plus optional attachment) to the named model
	// and returns the raw response text. It fails with an
	// aierror.UpstreamError on any non-success response.
	Invoke(ctx context.Context, model string, prompt string, att *Attachment) (string, error)
}
