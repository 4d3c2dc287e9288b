package httputil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "normalro/pkg/domain-errors"
)

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDesc   string
	}{
		{"internal hides detail", dErrors.New(dErrors.CodeInternal, "smtp dial failed"), http.StatusInternalServerError, "internal_error", ""},
		{"validation keeps detail", dErrors.New(dErrors.CodeInvalidRegion, "unknown region code"), http.StatusBadRequest, "invalid_region", "unknown region code"},
		{"untyped error is internal", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal_error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := errorBody(t, w)
			assert.Equal(t, tt.wantCode, body["error"])
			desc, present := body["error_description"]
			assert.Equal(t, tt.wantDesc != "", present)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

type textRequest struct {
	Text string `json:"text"`
}

func (r *textRequest) Normalize() { r.Text = strings.TrimSpace(r.Text) }

func (r *textRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeTextRequired, "text is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	decode := func(body io.Reader, limit int64) (*textRequest, bool, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/tools/echo", body)
		if limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		req, ok := DecodeAndPrepare[textRequest](w, r, logger, context.Background(), "req-1")
		return req, ok, w
	}

	t.Run("normalize runs before validate", func(t *testing.T) {
		req, ok, w := decode(strings.NewReader(`{"text":"  salut  "}`), 0)
		require.True(t, ok, w.Body.String())
		assert.Equal(t, "salut", req.Text)
	})

	t.Run("empty body reaches validation", func(t *testing.T) {
		_, ok, w := decode(http.NoBody, 0)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "text_required", errorBody(t, w)["error"])
	})

	t.Run("broken JSON", func(t *testing.T) {
		_, ok, w := decode(strings.NewReader(`{"text":`), 0)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body over the limit", func(t *testing.T) {
		_, ok, w := decode(strings.NewReader(`{"text":"`+strings.Repeat("a", 64)+`"}`), 16)
		assert.False(t, ok)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
