package tools

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	dErrors "normalro/pkg/domain-errors"
)

// Base64Mode selects the conversion direction.
type Base64Mode string

const (
	ModeEncode Base64Mode = "encode"
	ModeDecode Base64Mode = "decode"
)

// ParseBase64Mode defaults an empty mode to encode.
func ParseBase64Mode(raw string) (Base64Mode, error) {
	switch Base64Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeEncode:
		return ModeEncode, nil
	case ModeDecode:
		return ModeDecode, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidMode, "mode must be encode or decode")
	}
}

// ConvertBase64 encodes UTF-8 text to standard padded base64, or decodes
// strict standard base64 back to text. Decoded bytes must be valid UTF-8.
func ConvertBase64(text string, mode Base64Mode) (string, error) {
	if mode == ModeEncode {
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeConversionFailed, "input is not valid base64")
	}
	if !utf8.Valid(decoded) {
		return "", dErrors.New(dErrors.CodeConversionFailed, "decoded bytes are not UTF-8 text")
	}
	return string(decoded), nil
}
