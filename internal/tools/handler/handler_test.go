package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normalro/internal/tools"
	"normalro/pkg/testutil"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(tools.NewPasswordGenerator(nil), logger).Register(r)
	return r
}

func TestHandleCatalog(t *testing.T) {
	rr := testutil.DoRequest(newRouter(t), testutil.NewRequest(t, http.MethodGet, "/api/tools"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.UnmarshalResponse[CatalogResponse](t, rr)
	require.Len(t, resp.Tools, 6)
	assert.Equal(t, "/api/tools/cnp-generator", resp.Tools[4].Endpoint)
}

func TestHandleSlug(t *testing.T) {
	router := newRouter(t)

	testutil.Given(t, "text with punctuation", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/slug-generator",
			map[string]string{"text": "  Bună ziua, România!  "}))

		testutil.Then(t, "a slug is returned", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusOK)
			assert.Equal(t, "bună-ziua-românia", testutil.UnmarshalResponse[SlugResponse](t, rr).Result)
		})
	})

	testutil.Given(t, "blank text", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/slug-generator",
			map[string]string{"text": "   "}))

		testutil.Then(t, "text_required", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "text_required")
		})
	})
}

func TestHandleWordCount(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/word-counter",
		map[string]string{"text": "One two. Three!\nFour"}))
	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[WordCountResponse](t, rr)
	assert.Equal(t, 4, resp.Metrics.Words)
	assert.Equal(t, 3, resp.Metrics.Sentences)
	assert.Equal(t, 2, resp.Metrics.Paragraphs)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/word-counter",
		map[string]string{"text": "\n\t"}))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "text_required")
}

func TestHandlePassword(t *testing.T) {
	router := newRouter(t)

	t.Run("defaults", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator", map[string]any{}))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[PasswordResponse](t, rr)
		assert.Len(t, resp.Password, 12)
		assert.Equal(t, 12, resp.Length)
		assert.Equal(t, tools.PasswordOptions{Lowercase: true, Uppercase: true, Numbers: true}, resp.Options)
	})

	t.Run("numeric string length is clamped", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator",
			map[string]any{"length": "200", "symbols": true}))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[PasswordResponse](t, rr)
		assert.Len(t, resp.Password, 64)
		assert.True(t, resp.Options.Symbols)
	})

	t.Run("fractional length truncates", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator",
			map[string]any{"length": 7.9}))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, 7, testutil.UnmarshalResponse[PasswordResponse](t, rr).Length)
	})

	t.Run("huge length does not overflow", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator",
			map[string]any{"length": 1e300}))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, 64, testutil.UnmarshalResponse[PasswordResponse](t, rr).Length)
	})

	t.Run("non-numeric length", func(t *testing.T) {
		for _, length := range []any{"twelve", true, []int{1}} {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator",
				map[string]any{"length": length}))
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_length")
		}
	})

	t.Run("no character set", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/password-generator",
			map[string]any{"lowercase": false, "uppercase": false, "numbers": false, "symbols": false}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "no_charset_selected")
	})
}

func TestHandleBase64(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantResult string
		wantMode   string
		wantError  string
	}{
		{"encode by default", map[string]string{"text": "salut"}, http.StatusOK, "c2FsdXQ=", "encode", ""},
		{"decode", map[string]string{"text": "c2FsdXQ=", "mode": "decode"}, http.StatusOK, "salut", "decode", ""},
		{"invalid mode", map[string]string{"text": "x", "mode": "hex"}, http.StatusBadRequest, "", "", "invalid_mode"},
		{"invalid input", map[string]string{"text": "%%%", "mode": "decode"}, http.StatusBadRequest, "", "", "conversion_failed"},
		{"binary output", map[string]string{"text": "//79", "mode": "decode"}, http.StatusBadRequest, "", "", "conversion_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/tools/base64-converter", tt.body))
			if tt.wantError != "" {
				testutil.AssertStatusAndError(t, rr, tt.wantStatus, tt.wantError)
				return
			}
			testutil.AssertStatus(t, rr, tt.wantStatus)
			resp := testutil.UnmarshalResponse[Base64Response](t, rr)
			assert.Equal(t, tt.wantResult, resp.Result)
			assert.Equal(t, tt.wantMode, resp.Mode)
		})
	}
}
