// Package health reports the state of the backing stores.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Check probes one dependency. A disabled check is reported but never fails.
type Check struct {
	Name    string
	Enabled bool
	Ping    func(ctx context.Context) error
}

func RegisterRoutes(rg *gin.RouterGroup, checks []Check) {
	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		components := make(gin.H, len(checks))
		for _, check := range checks {
			state := probe(ctx, check)
			if state == "down" {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
			components[check.Name] = state
		}

		c.JSON(code, gin.H{
			"status":     status,
			"components": components,
		})
	})
}

func probe(ctx context.Context, check Check) string {
	if !check.Enabled || check.Ping == nil {
		return "disabled"
	}
	if err := check.Ping(ctx); err != nil {
		return "down"
	}
	return "ok"
}
