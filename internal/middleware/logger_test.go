package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Alaswadi/cupperly-sub000/internal/middleware"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogger_IncludesTenantSlug(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/ping", func(c *gin.Context) {
		c.Set(middleware.ContextKeyTenantSlug, "acme-roasters")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Contains(t, buf.String(), "tenant=acme-roasters")
	assert.Contains(t, buf.String(), "GET /ping 200")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLogger_UnresolvedTenant(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Contains(t, buf.String(), "tenant=-")
}

func TestRequestID_PreservesClientHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
