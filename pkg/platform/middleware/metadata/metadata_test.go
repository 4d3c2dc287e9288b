package metadata

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"normalro/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain takes first hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:5000", "203.0.113.7"},
		{"single forwarded address", map[string]string{"X-Forwarded-For": " 203.0.113.8 "}, "10.0.0.2:5000", "203.0.113.8"},
		{"real ip header", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:5000", "198.51.100.4"},
		{"remote addr strips port", nil, "192.0.2.1:41234", "192.0.2.1"},
		{"ipv6 remote addr", nil, "[::1]:41234", "[::1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(r))
		})
	}
}

func TestSummarizeUserAgent(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		assert.Equal(t, "", SummarizeUserAgent("  "))
	})

	t.Run("desktop browser", func(t *testing.T) {
		ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		summary := SummarizeUserAgent(ua)
		assert.True(t, strings.HasPrefix(summary, "Chrome/120"), summary)
		assert.Contains(t, summary, "Windows")
	})

	t.Run("crawler", func(t *testing.T) {
		ua := "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
		assert.True(t, strings.HasPrefix(SummarizeUserAgent(ua), "bot:"))
	})
}

func TestClientMetadata_StoresValuesInContext(t *testing.T) {
	var gotIP, gotUA string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIP = requestcontext.ClientIP(r.Context())
		gotUA = requestcontext.UserAgent(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	r.Header.Set("User-Agent", "curl/8.4.0")
	ClientMetadata(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.9", gotIP)
	assert.Equal(t, "curl/8.4.0", gotUA)
}
