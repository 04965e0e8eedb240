package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(checks []Check) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), checks)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	return w
}

func ok(context.Context) error { return nil }

func TestHealth_AllOK(t *testing.T) {
	w := serve([]Check{
		{Name: "database", Enabled: true, Ping: ok},
		{Name: "redis", Enabled: false},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","components":{"database":"ok","redis":"disabled"}}`, w.Body.String())
}

func TestHealth_Degraded(t *testing.T) {
	w := serve([]Check{
		{Name: "database", Enabled: true, Ping: ok},
		{Name: "mongo", Enabled: true, Ping: func(context.Context) error { return errors.New("down") }},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"degraded","components":{"database":"ok","mongo":"down"}}`, w.Body.String())
}
