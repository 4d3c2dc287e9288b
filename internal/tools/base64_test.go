package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "normalro/pkg/domain-errors"
)

func TestParseBase64Mode(t *testing.T) {
	mode, err := ParseBase64Mode("")
	require.NoError(t, err)
	assert.Equal(t, ModeEncode, mode)

	mode, err = ParseBase64Mode(" Decode ")
	require.NoError(t, err)
	assert.Equal(t, ModeDecode, mode)

	_, err = ParseBase64Mode("rot13")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidMode))
}

func TestConvertBase64(t *testing.T) {
	encoded, err := ConvertBase64("Bună ziua", ModeEncode)
	require.NoError(t, err)
	assert.Equal(t, "QnVuxIMgeml1YQ==", encoded)

	decoded, err := ConvertBase64(encoded, ModeDecode)
	require.NoError(t, err)
	assert.Equal(t, "Bună ziua", decoded)

	empty, err := ConvertBase64("", ModeEncode)
	require.NoError(t, err)
	assert.Equal(t, "", empty)

	for _, bad := range []string{"not base64!", "QnV", "/w=="} {
		_, err := ConvertBase64(bad, ModeDecode)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConversionFailed), bad)
	}
}
