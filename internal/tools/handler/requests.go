package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"normalro/internal/tools"
	dErrors "normalro/pkg/domain-errors"
)

// maxTextBytes bounds free-text inputs.
const maxTextBytes = 1 << 20

// SlugRequest is the body for POST /api/tools/slug-generator.
type SlugRequest struct {
	Text string `json:"text"`
}

func (r *SlugRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

func (r *SlugRequest) Validate() error {
	return validateText(r.Text)
}

// WordCountRequest is the body for POST /api/tools/word-counter. The text is
// kept as sent so line structure survives.
type WordCountRequest struct {
	Text string `json:"text"`
}

func (r *WordCountRequest) Validate() error {
	return validateText(strings.TrimSpace(r.Text))
}

func validateText(text string) error {
	if text == "" {
		return dErrors.New(dErrors.CodeTextRequired, "text is required")
	}
	if len(text) > maxTextBytes {
		return dErrors.New(dErrors.CodePayloadTooLarge, "text is too long")
	}
	return nil
}

// PasswordRequest is the body for POST /api/tools/password-generator.
// Length accepts a JSON number or a numeric string; missing flags take their
// defaults (symbols off, everything else on).
type PasswordRequest struct {
	Length    json.RawMessage `json:"length"`
	Lowercase *bool           `json:"lowercase"`
	Uppercase *bool           `json:"uppercase"`
	Numbers   *bool           `json:"numbers"`
	Symbols   *bool           `json:"symbols"`

	options tools.PasswordOptions
}

func (r *PasswordRequest) Validate() error {
	length, err := parseLength(r.Length)
	if err != nil {
		return err
	}
	r.options = tools.PasswordOptions{
		Length:    tools.ClampPasswordLength(length),
		Lowercase: boolOr(r.Lowercase, true),
		Uppercase: boolOr(r.Uppercase, true),
		Numbers:   boolOr(r.Numbers, true),
		Symbols:   boolOr(r.Symbols, false),
	}
	return nil
}

// Options returns the validated generator options.
func (r *PasswordRequest) Options() tools.PasswordOptions {
	return r.options
}

func parseLength(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return tools.DefaultPasswordLength, nil
	}
	invalid := dErrors.New(dErrors.CodeInvalidLength, "length must be a number")

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, invalid
		}
		// Clamp before converting so huge values cannot overflow int.
		return int(math.Max(-1, math.Min(n, tools.MaxPasswordLength+1))), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, invalid
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid
	}
	return v, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Base64Request is the body for POST /api/tools/base64-converter.
type Base64Request struct {
	Text string `json:"text"`
	Mode string `json:"mode"`

	mode tools.Base64Mode
}

func (r *Base64Request) Validate() error {
	mode, err := tools.ParseBase64Mode(r.Mode)
	if err != nil {
		return err
	}
	if len(r.Text) > maxTextBytes {
		return dErrors.New(dErrors.CodePayloadTooLarge, "text is too long")
	}
	r.mode = mode
	return nil
}
