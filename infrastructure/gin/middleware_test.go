package gin_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ginpkg "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infragin "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/gin"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

func init() {
	ginpkg.SetMode(ginpkg.TestMode)
}

func newTestRouter(t *testing.T, handler ginpkg.HandlerFunc) *ginpkg.Engine {
	t.Helper()

	router := ginpkg.New()
	router.Use(infragin.RecoveryMiddleware(logger.NewNop()), infragin.RequestIDLoggerMiddleware(logger.NewNop()))
	router.GET("/test", handler)
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestIDLoggerMiddleware(t *testing.T) {
	t.Parallel()

	ok := func(c *ginpkg.Context) { c.String(http.StatusOK, c.GetString(infragin.RequestIDKey)) }

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		w := serve(newTestRouter(t, ok), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		id := w.Header().Get(infragin.RequestIDHeader)
		assert.Len(t, id, 32)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps an inbound id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(infragin.RequestIDHeader, "upstream-abc")
		w := serve(newTestRouter(t, ok), req)
		assert.Equal(t, "upstream-abc", w.Header().Get(infragin.RequestIDHeader))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(infragin.RequestIDHeader, strings.Repeat("x", 200))
		w := serve(newTestRouter(t, ok), req)
		assert.Len(t, w.Header().Get(infragin.RequestIDHeader), 32)
	})

	t.Run("stores a logger on the request context", func(t *testing.T) {
		t.Parallel()
		var got logger.Logger
		router := newTestRouter(t, func(c *ginpkg.Context) {
			got = logger.FromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		serve(router, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		assert.NotNil(t, got)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(*ginpkg.Context) { panic("boom") })
	w := serve(router, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	router.Use(infragin.CORSMiddleware(infragin.CORSConfig{
		AllowedOrigins: []string{"https://realty.example"},
	}))
	router.GET("/test", func(c *ginpkg.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{"allowed origin", http.MethodGet, "https://realty.example", "https://realty.example", http.StatusOK},
		{"other origin", http.MethodGet, "https://evil.example", "", http.StatusOK},
		{"preflight", http.MethodOptions, "https://realty.example", "https://realty.example", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, "/test", http.NoBody)
			req.Header.Set("Origin", tt.origin)
			w := serve(router, req)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServerBuilder_Health(t *testing.T) {
	t.Parallel()

	srv := infragin.NewServerBuilder("content-hub", ":0").
		WithVersion("1.2.3").
		WithHealthCheck("backend", infragin.StaticChecker(infragin.HealthStatusHealthy, "offline mode")).
		WithHealthCheck("redis", infragin.PingChecker(func(context.Context) error { return errors.New("refused") })).
		Build()

	w := serve(srv.Router(), httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var resp infragin.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, infragin.HealthStatusDegraded, resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "refused", resp.Checks["redis"].Message)
	assert.Equal(t, "offline mode", resp.Checks["backend"].Message)
}
