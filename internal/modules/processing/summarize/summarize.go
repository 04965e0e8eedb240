// Package summarize talks to the remote inference APIs that produce English
// summaries of article text.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appcfg "github.com/mx-space/blog-summarizer/internal/config"
)

// FailedSummary is returned in place of a summary when the provider answers
// successfully but without any summary text.
const FailedSummary = "Failed to generate English summary."

// ErrNotConfigured means no API key is available for the selected provider.
var ErrNotConfigured = errors.New("summarizer API key is not configured")

// Summarizer produces an abstractive summary of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	// Name is the human readable provider name used in error messages.
	Name() string
}

// Params bounds the generated summary length.
type Params struct {
	MinLength int
	MaxLength int
}

// StatusError carries the remote status code and payload of a failed call.
type StatusError struct {
	Provider string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API Error: %d - %s", e.Provider, e.Status, strings.TrimSpace(e.Body))
}

// New builds the summarizer selected by cfg. It returns ErrNotConfigured when
// the API key is missing.
func New(cfg appcfg.SummarizerConfig) (Summarizer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	params := Params{MinLength: cfg.MinLength, MaxLength: cfg.MaxLength}
	timeout := cfg.Timeout()

	switch cfg.Provider {
	case appcfg.ProviderHuggingFace:
		return NewHuggingFace(cfg.APIKey, cfg.Endpoint, cfg.Model, params, timeout), nil
	case appcfg.ProviderOpenAICompatible:
		return newCompatible(cfg.APIKey, cfg.Endpoint, cfg.Model, params, timeout), nil
	case appcfg.ProviderOpenAI, appcfg.ProviderAnthropic:
		return newLanguageModel(cfg.Provider, cfg.APIKey, cfg.Endpoint, cfg.Model, params, timeout)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}

// ProviderName is the display name used in messages for a provider id.
func ProviderName(provider string) string {
	switch provider {
	case appcfg.ProviderOpenAI:
		return "OpenAI"
	case appcfg.ProviderOpenAICompatible:
		return "OpenAI-compatible"
	case appcfg.ProviderAnthropic:
		return "Anthropic"
	default:
		return "Hugging Face"
	}
}

// CacheNamespace identifies provider and model so cached summaries are not
// shared across configurations.
func CacheNamespace(cfg appcfg.SummarizerConfig) string {
	return cfg.Provider + ":" + cfg.Model
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
