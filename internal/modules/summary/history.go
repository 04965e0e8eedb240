package summary

import (
	"context"

	"github.com/mx-space/blog-summarizer/internal/models"
	"github.com/mx-space/blog-summarizer/internal/pkg/pagination"
	"github.com/mx-space/blog-summarizer/internal/pkg/response"
	"gorm.io/gorm"
)

// History reads saved SummaryRecords. A nil db means the store is disabled.
type History struct{ db *gorm.DB }

func NewHistory(db *gorm.DB) *History { return &History{db: db} }

func (h *History) Enabled() bool { return h != nil && h.db != nil }

// List returns one page of summaries, newest first.
func (h *History) List(ctx context.Context, q pagination.Query) ([]models.SummaryModel, response.Pagination, error) {
	tx := h.db.Model(&models.SummaryModel{}).Order("created_at DESC")
	var items []models.SummaryModel
	pag, err := pagination.Paginate(ctx, tx, q, &items)
	return items, pag, err
}
