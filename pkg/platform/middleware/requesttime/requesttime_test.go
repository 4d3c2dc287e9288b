package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"normalro/pkg/requestcontext"
)

func TestWithClock_InjectsFixedTime(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	var got time.Time
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.Now(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	WithClock(func() time.Time { return fixed })(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, fixed, got)
}

func TestMiddleware_SetsTimeOnce(t *testing.T) {
	var first, second time.Time
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(time.Millisecond)
		second = requestcontext.Now(r.Context())
	})

	Middleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, first.IsZero())
	assert.Equal(t, first, second)
}
