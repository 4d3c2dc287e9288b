package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct error", func(t *testing.T) {
		err := New(CodeInvalidGender, "gender must be male or female")
		assert.True(t, HasCode(err, CodeInvalidGender))
		assert.False(t, HasCode(err, CodeInvalidRegion))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("generate: %w", New(CodeInvalidRegion, "unknown region"))
		assert.True(t, HasCode(err, CodeInvalidRegion))
		assert.Equal(t, CodeInvalidRegion, CodeOf(err))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(err))
	})
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("checksum mismatch")
	err := Wrap(cause, CodeInvalidIdentifier, "invalid identifier")

	require.ErrorIs(t, err, cause)
	de, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid identifier", de.Message)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidIdentifier, http.StatusBadRequest},
		{CodeCompanyNotFound, http.StatusNotFound},
		{CodeANAFTimeout, http.StatusGatewayTimeout},
		{CodeFileTooLarge, http.StatusRequestEntityTooLarge},
		{CodeEmailSendFailed, http.StatusBadGateway},
		{Code("unknown_code"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.code))
		})
	}
}
