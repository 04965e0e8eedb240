package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/blog-summarizer/internal/pkg/response"
)

const rateLimitWindow = time.Second

// WindowCounter is satisfied by *redis.Client from internal/pkg/redis.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Notifier is satisfied by *bark.Service.
type Notifier interface {
	ThrottlePush(ctx context.Context, key, title, body string) (bool, error)
}

// RateLimit allows max requests per client IP per one second window.
// Counter errors let the request through.
func RateLimit(counter WindowCounter, max int, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" || max <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("summarizer:rate_limit:%s:%d", ip, time.Now().Unix())

		count, err := counter.IncrWindow(ctx, key, rateLimitWindow+time.Second)
		if err != nil {
			c.Next()
			return
		}

		if count > int64(max) {
			if notifier != nil {
				path := c.Request.URL.Path
				go notifier.ThrottlePush(context.Background(), "rate_limit:"+ip, "Rate limited", ip+" "+path)
			}
			c.Header("Retry-After", "1")
			response.TooManyRequests(c, "Too many requests. Please slow down and try again.")
			return
		}

		c.Next()
	}
}
