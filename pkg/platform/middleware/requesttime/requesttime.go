// Package requesttime pins one timestamp per HTTP request so that, for
// example, a generated birth date range and a default ANAF lookup date agree.
package requesttime

import (
	"net/http"
	"time"

	"normalro/pkg/requestcontext"
)

// Middleware pins the wall clock.
func Middleware(next http.Handler) http.Handler {
	return WithClock(time.Now)(next)
}

// WithClock pins whatever now returns; tests pass a fixed clock.
func WithClock(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), now())))
		})
	}
}
