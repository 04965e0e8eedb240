// Package archive persists finished summaries on a best-effort basis.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/mx-space/blog-summarizer/internal/models"
	"go.uber.org/zap"
)

// SummaryStore receives SummaryRecords.
type SummaryStore interface {
	Enabled() bool
	Insert(ctx context.Context, record *models.SummaryModel) (string, error)
}

// FullTextStore receives FullTextRecords.
type FullTextStore interface {
	Enabled() bool
	InsertOne(ctx context.Context, doc *models.FullTextDocument) error
}

// Alerter is satisfied by *bark.Service.
type Alerter interface {
	ThrottlePush(ctx context.Context, key, title, body string) (bool, error)
}

// Entry is one pipeline result to persist.
type Entry struct {
	URL            string
	FullText       string
	EnglishSummary string
	UrduSummary    string
}

// Recorder writes an Entry to both stores. Failures never reach the caller.
type Recorder struct {
	summaries SummaryStore
	fullTexts FullTextStore
	alerts    Alerter
	logger    *zap.Logger
	now       func() time.Time
}

func NewRecorder(summaries SummaryStore, fullTexts FullTextStore, alerts Alerter, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		summaries: summaries,
		fullTexts: fullTexts,
		alerts:    alerts,
		logger:    logger,
		now:       time.Now,
	}
}

// Record stores the SummaryRecord and then the FullTextRecord. Writes outlive
// a cancelled request context.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	ctx = context.WithoutCancel(ctx)

	if r.summaries == nil || !r.summaries.Enabled() {
		r.logger.Warn("structured store disabled, summary not saved", zap.String("url", entry.URL))
	} else {
		id, err := r.summaries.Insert(ctx, &models.SummaryModel{
			URL:            entry.URL,
			EnglishSummary: entry.EnglishSummary,
			UrduSummary:    entry.UrduSummary,
		})
		if err != nil {
			r.fail(ctx, "summaries", entry.URL, err)
		} else {
			r.logger.Debug("summary saved", zap.String("id", id), zap.String("url", entry.URL))
		}
	}

	if r.fullTexts == nil || !r.fullTexts.Enabled() {
		r.logger.Warn("document store disabled, full text not saved", zap.String("url", entry.URL))
		return
	}
	err := r.fullTexts.InsertOne(ctx, &models.FullTextDocument{
		URL:       entry.URL,
		FullText:  entry.FullText,
		Timestamp: r.now(),
	})
	if err != nil {
		r.fail(ctx, "full_texts", entry.URL, err)
		return
	}
	r.logger.Debug("full text saved", zap.String("url", entry.URL))
}

func (r *Recorder) fail(ctx context.Context, target, url string, err error) {
	r.logger.Error("save failed", zap.String("target", target), zap.String("url", url), zap.Error(err))
	if r.alerts == nil {
		return
	}
	if _, pushErr := r.alerts.ThrottlePush(ctx, "archive:"+target, "Persistence failure",
		fmt.Sprintf("%s: %v", target, err)); pushErr != nil {
		r.logger.Warn("bark push failed", zap.Error(pushErr))
	}
}
