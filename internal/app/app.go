package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/blog-summarizer/internal/config"
	"github.com/mx-space/blog-summarizer/internal/database"
	"github.com/mx-space/blog-summarizer/internal/middleware"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/summarize"
	"github.com/mx-space/blog-summarizer/internal/modules/processing/translate"
	"github.com/mx-space/blog-summarizer/internal/pkg/bark"
	pkgmongo "github.com/mx-space/blog-summarizer/internal/pkg/mongo"
	pkgredis "github.com/mx-space/blog-summarizer/internal/pkg/redis"
	"github.com/mx-space/blog-summarizer/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg        *config.AppConfig
	router     *gin.Engine
	db         *gorm.DB
	mongo      *pkgmongo.Lazy
	redis      *pkgredis.Client
	bark       *bark.Service
	summarizer summarize.Summarizer
	table      *translate.Table
	logger     *zap.Logger
}

// New wires stores, the summarizer and routes. Unreachable stores degrade to
// disabled; only a broken dictionary or provider setup is fatal.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	table, err := loadTable(cfg.Translation.DictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("translation: %w", err)
	}

	app := &App{
		cfg:    cfg,
		mongo:  pkgmongo.NewLazy(cfg.Mongo, logger.Named("mongo")),
		bark:   bark.New(bark.Config{Key: cfg.Bark.Key, ServerURL: cfg.Bark.ServerURL, Title: cfg.Bark.Title}),
		table:  table,
		logger: logger,
	}

	app.db, err = database.Connect(cfg)
	switch {
	case errors.Is(err, database.ErrDisabled):
		logger.Warn("database not configured, summaries will not be saved")
	case err != nil:
		logger.Error("database unavailable, summaries will not be saved", zap.Error(err))
		app.db = nil
	}

	if !cfg.Mongo.Enabled() {
		logger.Warn("mongo not configured, full texts will not be saved")
	}

	if cfg.Redis.Enabled() {
		app.redis, err = pkgredis.Connect(cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, cache and rate limit disabled", zap.Error(err))
			app.redis = nil
		}
	}

	app.summarizer, err = summarize.New(cfg.Summarizer)
	switch {
	case errors.Is(err, summarize.ErrNotConfigured):
		logger.Warn("summarizer API key is not set, /api/summarize will fail",
			zap.String("provider", cfg.Summarizer.Provider))
	case err != nil:
		return nil, fmt.Errorf("summarizer: %w", err)
	case app.redis != nil && cfg.Redis.SummaryCacheTTL() > 0:
		app.summarizer = summarize.WithCache(app.summarizer, app.redis, cfg.Redis.SummaryCacheTTL(),
			summarize.CacheNamespace(cfg.Summarizer), logger.Named("cache"))
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}))
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app.router = router
	app.registerRoutes()

	logger.Info("app initialized",
		zap.String("provider", cfg.Summarizer.Provider),
		zap.String("extract_mode", cfg.Fetch.Mode),
		zap.Int("dictionary_words", table.Len()),
		zap.Bool("database", app.db != nil),
		zap.Bool("mongo", cfg.Mongo.Enabled()),
		zap.Bool("redis", app.redis != nil),
	)
	return app, nil
}

func loadTable(path string) (*translate.Table, error) {
	if path == "" {
		return translate.Default(), nil
	}
	path = config.ResolveRuntimePath(path, "")
	entries, err := translate.LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return translate.Default().Extend(entries), nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		c.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		c.AllowOriginFunc = func(origin string) bool { return true }
	}
	return c
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases store connections.
func (a *App) Shutdown(ctx context.Context) {
	if err := a.mongo.Disconnect(ctx); err != nil {
		a.logger.Warn("mongo disconnect failed", zap.Error(err))
	}
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("database close failed", zap.Error(err))
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
}
