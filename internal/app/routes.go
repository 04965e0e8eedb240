package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/blog-summarizer/internal/database"
	"github.com/mx-space/blog-summarizer/internal/middleware"
	"github.com/mx-space/blog-summarizer/internal/modules/archive"
	"github.com/mx-space/blog-summarizer/internal/modules/health"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/extract"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/summarize"
	"github.com/mx-space/blog-summarizer/internal/modules/summary"
	"github.com/mx-space/blog-summarizer/internal/modules/webui"
	"github.com/mx-space/blog-summarizer/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	cfg := a.cfg

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	webui.RegisterRoutes(r)

	recorder := archive.NewRecorder(
		archive.NewSQLSink(a.db),
		archive.NewMongoSink(a.mongo),
		a.bark,
		a.logger.Named("archive"),
	)
	svc := summary.NewService(summary.Options{
		Fetcher:      extract.NewFetcher(cfg.Fetch.UserAgent, cfg.Fetch.Timeout(), cfg.Fetch.MaxBodyBytes),
		Extractor:    extract.Extractor{Mode: cfg.Fetch.Mode},
		Summarizer:   a.summarizer,
		ProviderName: summarize.ProviderName(cfg.Summarizer.Provider),
		Table:        a.table,
		Recorder:     recorder,
		InputLimit:   cfg.Summarizer.InputLimit,
		Logger:       a.logger.Named("summary"),
	})

	var limit gin.HandlerFunc
	if a.redis != nil && cfg.Redis.RateLimitPerSecond > 0 {
		limit = middleware.RateLimit(a.redis, cfg.Redis.RateLimitPerSecond, a.bark)
	}

	api := r.Group("/api")
	summary.NewHandler(svc, summary.NewHistory(a.db), a.logger.Named("summary")).RegisterRoutes(api, limit)
	health.RegisterRoutes(api, a.healthChecks())
}

func (a *App) healthChecks() []health.Check {
	checks := []health.Check{
		{Name: "database", Enabled: a.db != nil, Ping: func(ctx context.Context) error {
			return database.Ping(ctx, a.db)
		}},
		{Name: "mongo", Enabled: a.mongo.Enabled(), Ping: a.mongo.Ping},
		{Name: "redis", Enabled: a.redis != nil},
	}
	if a.redis != nil {
		checks[2].Ping = a.redis.Ping
	}
	return checks
}
