package summarize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// Cache is the subset of the Redis wrapper the summary cache needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type cached struct {
	next      Summarizer
	cache     Cache
	ttl       time.Duration
	namespace string
	logger    *zap.Logger
}

// WithCache stores successful summaries keyed by namespace and input text.
// Cache failures are logged and otherwise ignored.
func WithCache(next Summarizer, cache Cache, ttl time.Duration, namespace string, logger *zap.Logger) Summarizer {
	if cache == nil {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cached{next: next, cache: cache, ttl: ttl, namespace: namespace, logger: logger}
}

func (c *cached) Name() string { return c.next.Name() }

func (c *cached) Summarize(ctx context.Context, text string) (string, error) {
	key := CacheKey(c.namespace, text)
	if hit, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("summary cache read failed", zap.Error(err))
	} else if hit != "" {
		return hit, nil
	}

	summary, err := c.next.Summarize(ctx, text)
	if err != nil || summary == FailedSummary {
		return summary, err
	}
	if err := c.cache.Set(ctx, key, summary, c.ttl); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
	return summary, nil
}

// CacheKey derives the Redis key for a summary.
func CacheKey(namespace, text string) string {
	sum := sha256.Sum256([]byte(namespace + "\x00" + text))
	return "summary:" + hex.EncodeToString(sum[:])
}
