package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normalro/internal/platform/metrics"
	"normalro/pkg/testutil"
)

type echoModule struct{}

func (echoModule) Register(r chi.Router) {
	r.Post("/api/tools/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	})
	r.Get("/api/tools/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func newTestRouter(t *testing.T, health func(context.Context) error) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRouter(Options{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxBodyBytes:   64,
		Version:        "1.2.3",
		Health:         health,
	}, echoModule{})
}

func TestRouter_PlatformEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("root lists api endpoints", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/"))
		testutil.AssertStatus(t, rr, http.StatusOK)

		body := testutil.DecodeJSON(t, rr)
		assert.Equal(t, "normalro API", body["message"])
		assert.Equal(t, "1.2.3", body["version"])
		assert.Equal(t, []any{
			"GET /api/health",
			"POST /api/tools/echo",
			"GET /api/tools/panic",
		}, body["endpoints"])
	})

	t.Run("health", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/health"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONContains(t, rr, "status", "ok")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("metrics", func(t *testing.T) {
		testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/health"))
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Contains(t, rr.Body.String(), `route="/api/health"`)
	})
}

func TestRouter_UnhealthyDependency(t *testing.T) {
	router := newTestRouter(t, func(context.Context) error { return errors.New("redis down") })

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/health"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertJSONContains(t, rr, "status", "unavailable")
}

func TestRouter_Middleware(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("request id is echoed", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/api/health")
		req.Header.Set("X-Request-ID", "req-42")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})

	t.Run("cors allows configured origin", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodOptions, "/api/tools/echo")
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("cors rejects other origins", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/api/health")
		req.Header.Set("Origin", "https://evil.example")
		rr := testutil.DoRequest(router, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("body size is capped", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodPost, "/api/tools/echo")
		req.Body = io.NopCloser(strings.NewReader(strings.Repeat("a", 128)))
		rr := testutil.DoRequest(router, req)
		require.LessOrEqual(t, rr.Body.Len(), 64)
	})

	t.Run("panics become internal errors", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/tools/panic"))
		testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
	})
}
