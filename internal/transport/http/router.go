package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"normalro/internal/platform/metrics"
	"normalro/internal/platform/middleware"
	"normalro/pkg/platform/httputil"
	"normalro/pkg/platform/middleware/metadata"
	"normalro/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Options carries the cross-cutting dependencies of the router.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	Version        string
	// Health checks optional backing services. Nil means always healthy.
	Health func(ctx context.Context) error
}

// NewRouter builds the full HTTP surface: platform endpoints, /metrics and
// every module registrar, behind the shared middleware chain.
func NewRouter(opts Options, modules ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(opts.Logger, opts.Metrics))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.LatencyMiddleware(opts.Metrics))

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		if opts.RequestTimeout > 0 {
			api.Use(middleware.Timeout(opts.RequestTimeout))
		}
		if opts.MaxBodyBytes > 0 {
			api.Use(middleware.MaxBodySize(opts.MaxBodyBytes))
		}

		api.Get("/api/health", healthHandler(opts.Health))
		for _, m := range modules {
			m.Register(api)
		}
	})

	endpoints := listEndpoints(r)
	r.With(middleware.ContentTypeJSON).Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"message":   "normalro API",
			"version":   opts.Version,
			"endpoints": endpoints,
		})
	})

	return r
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// listEndpoints returns "METHOD /path" for every /api route, sorted by path.
func listEndpoints(r chi.Routes) []string {
	var out []string
	_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/api/") {
			out = append(out, method+" "+route)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i][strings.IndexByte(out[i], ' ')+1:], out[j][strings.IndexByte(out[j], ' ')+1:]
		if pi != pj {
			return pi < pj
		}
		return out[i] < out[j]
	})
	return out
}
