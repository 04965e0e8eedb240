package summary

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/blog-summarizer/internal/pkg/pagination"
	"github.com/mx-space/blog-summarizer/internal/pkg/response"
	"go.uber.org/zap"
)

type SummarizeDTO struct {
	URL string `json:"url"`
}

type Handler struct {
	svc     *Service
	history *History
	logger  *zap.Logger
}

func NewHandler(svc *Service, history *History, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, history: history, logger: logger}
}

// RegisterRoutes mounts the API. limit guards the summarize endpoint and may be nil.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	if limit != nil {
		rg.POST("/summarize", limit, h.summarize)
	} else {
		rg.POST("/summarize", h.summarize)
	}
	rg.GET("/summaries", h.list)
}

// POST /api/summarize
func (h *Handler) summarize(c *gin.Context) {
	var dto SummarizeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), dto.URL)
	if err != nil {
		e := asError(err)
		if e.Kind == KindInternal {
			h.logger.Error("summarize failed", zap.Error(err))
		}
		response.Error(c, e.Kind.Status(), e.Message)
		return
	}
	response.OK(c, result)
}

// GET /api/summaries?page=&size=
func (h *Handler) list(c *gin.Context) {
	if !h.history.Enabled() {
		response.ServiceUnavailable(c, "Summary history is unavailable: structured store is not configured.")
		return
	}
	items, pag, err := h.history.List(c.Request.Context(), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}
