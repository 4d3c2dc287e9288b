package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewJSONRequest builds a request whose body is body marshaled as JSON.
// A nil body sends no payload.
func NewJSONRequest(t testing.TB, method, path string, body any) *http.Request {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err, "marshal request body")
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewRequest builds a request without a body.
func NewRequest(t testing.TB, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, http.NoBody)
}

// DoRequest serves req through handler and returns the recorded response.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// The helpers below read rr.Body.Bytes() without draining it, so several
// assertions can inspect the same response.

// UnmarshalResponse decodes the response body into a new T.
func UnmarshalResponse[T any](t testing.TB, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "decode response: %s", rr.Body.String())
	return &out
}

// DecodeJSON decodes the response body into a generic map.
func DecodeJSON(t testing.TB, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	return *UnmarshalResponse[map[string]any](t, rr)
}

// AssertStatus checks the response status.
func AssertStatus(t testing.TB, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rr.Code, "status; body: %s", rr.Body.String())
}

// AssertErrorCode checks the "error" field of an error envelope.
func AssertErrorCode(t testing.TB, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	assert.Equal(t, want, DecodeJSON(t, rr)["error"], "error code")
}

// AssertStatusAndError checks status and error code together.
func AssertStatusAndError(t testing.TB, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	AssertStatus(t, rr, status)
	AssertErrorCode(t, rr, code)
}

// AssertJSONContains checks one top-level field of the response body.
func AssertJSONContains(t testing.TB, rr *httptest.ResponseRecorder, key string, want any) {
	t.Helper()
	assert.Equal(t, want, DecodeJSON(t, rr)[key], "field %q", key)
}
