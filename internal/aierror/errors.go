// Package aierror defines the error taxonomy for the AI document pipeline.
// The four error kinds drive the retry policy: configuration and validation
// failures are permanent, upstream and parse failures are transient.
package aierror

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates a missing or unusable credential or setting.
// It is fatal and never retried.
type ConfigurationError struct {
	Setting string
	Msg     string
}

func (e *ConfigurationError) Error() string {
	if e.Setting != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Setting, e.Msg)
	}
	return fmt.Sprintf("configuration error: %s", e.Msg)
}

// UpstreamError indicates a non-success response from the model endpoint.
type UpstreamError struct {
	Model string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model %s: upstream call failed: %v", e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError indicates the model response body could not be decoded as JSON
// after code-fence stripping.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("failed to parse model response: %v. Response snippet: '%s'", e.Err, e.Snippet)
	}
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError indicates well-formed JSON that fails schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model response failed validation: %s: %s", e.Field, e.Reason)
}

// IsRetryable reports whether an error is worth retrying. Only transient
// upstream and parse failures qualify.
func IsRetryable(err error) bool {
	var upstream *UpstreamError
	var parse *ParseError
	return errors.As(err, &upstream) || errors.As(err, &parse)
}

// IsConfiguration reports whether an error is a ConfigurationError.
func IsConfiguration(err error) bool {
	var cfg *ConfigurationError
	return errors.As(err, &cfg)
}
