// Package summary runs the summarize pipeline behind POST /api/summarize.
package summary

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mx-space/blog-summarizer/internal/modules/archive"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/summarize"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/translate"
	"go.uber.org/zap"
)

// Fetcher downloads a page as text.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Extractor turns page HTML into plain text.
type Extractor interface {
	Extract(page, pageURL string) string
}

// Recorder persists a finished result. It must not fail the request.
type Recorder interface {
	Record(ctx context.Context, entry archive.Entry)
}

// Result is the successful pipeline output.
type Result struct {
	EnglishSummary string `json:"englishSummary"`
	UrduSummary    string `json:"urduSummary"`
}

// Options configures a Service.
type Options struct {
	Fetcher   Fetcher
	Extractor Extractor
	// Summarizer is nil when no API key is configured.
	Summarizer   summarize.Summarizer
	ProviderName string
	Table        *translate.Table
	Recorder     Recorder
	InputLimit   int
	Logger       *zap.Logger
}

type Service struct {
	fetcher      Fetcher
	extractor    Extractor
	summarizer   summarize.Summarizer
	providerName string
	table        *translate.Table
	recorder     Recorder
	inputLimit   int
	logger       *zap.Logger
}

func NewService(opts Options) *Service {
	if opts.Table == nil {
		opts.Table = translate.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Service{
		fetcher:      opts.Fetcher,
		extractor:    opts.Extractor,
		summarizer:   opts.Summarizer,
		providerName: opts.ProviderName,
		table:        opts.Table,
		recorder:     opts.Recorder,
		inputLimit:   opts.InputLimit,
		logger:       opts.Logger,
	}
}

// Summarize fetches rawURL, summarizes its text and translates the summary.
// Every returned error is an *Error.
func (s *Service) Summarize(ctx context.Context, rawURL string) (*Result, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, newError(KindValidation, msgURLRequired, nil)
	}
	if !isHTTPURL(rawURL) {
		return nil, newError(KindValidation, msgInvalidURL, nil)
	}

	page, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.Warn("fetch failed", zap.String("url", rawURL), zap.Error(err))
		return nil, newError(KindFetch, fmt.Sprintf("Failed to fetch the blog: %v", err), err)
	}

	fullText := s.extractor.Extract(page, rawURL)
	if strings.TrimSpace(fullText) == "" {
		return nil, newError(KindExtraction, msgExtractionFailed, nil)
	}

	if s.summarizer == nil {
		s.logger.Error("summarizer API key is not configured")
		return nil, newError(KindConfiguration,
			fmt.Sprintf("%s API key is not configured on the server.", s.providerName), summarize.ErrNotConfigured)
	}

	english, err := s.summarizer.Summarize(ctx, truncate(fullText, s.inputLimit))
	if err != nil {
		s.logger.Error("summarization failed", zap.String("provider", s.summarizer.Name()), zap.Error(err))
		return nil, newError(KindSummarization, summarizationMessage(s.summarizer.Name(), err), err)
	}

	urdu := UrduFailureNotice
	if english != summarize.FailedSummary {
		urdu = s.table.Translate(english)
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, archive.Entry{
			URL:            rawURL,
			FullText:       fullText,
			EnglishSummary: english,
			UrduSummary:    urdu,
		})
	}

	return &Result{EnglishSummary: english, UrduSummary: urdu}, nil
}

func summarizationMessage(provider string, err error) string {
	detail := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		detail = "request timed out"
	}
	if strings.TrimSpace(detail) == "" {
		detail = "Check API key, rate limits, or model loading status."
	}
	return fmt.Sprintf("AI summarization failed (%s): %s", provider, detail)
}

// truncate keeps the first limit characters. limit <= 0 disables it.
func truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
