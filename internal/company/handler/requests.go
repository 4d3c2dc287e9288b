package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"

	"normalro/internal/company"
	dErrors "normalro/pkg/domain-errors"
)

// maxCUIDigits is the longest fiscal code ANAF issues.
const maxCUIDigits = 10

// LookupRequest is the body for POST /api/anaf/company. CUI accepts a JSON
// number or a string such as "RO 14399840".
type LookupRequest struct {
	CUI  json.RawMessage `json:"cui"`
	Date string          `json:"date"`

	cui string
}

func (r *LookupRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
}

func (r *LookupRequest) Validate() error {
	raw, err := rawCUI(r.CUI)
	if err != nil {
		return err
	}
	digits := strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, raw)
	if digits == "" || len(digits) > maxCUIDigits {
		return dErrors.New(dErrors.CodeInvalidCUI, "cui must contain between 1 and 10 digits")
	}
	r.cui = digits

	if r.Date != "" {
		if _, err := time.Parse(company.DateLayout, r.Date); err != nil {
			return dErrors.New(dErrors.CodeInvalidDate, "date must use the YYYY-MM-DD format")
		}
	}
	return nil
}

func rawCUI(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", dErrors.New(dErrors.CodeCUIRequired, "cui is required")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimFunc(s, unicode.IsSpace) == "" {
			return "", dErrors.New(dErrors.CodeCUIRequired, "cui is required")
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidCUI, "cui must be a number or a string")
	}
	if _, err := strconv.ParseUint(n.String(), 10, 64); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidCUI, "cui must be a positive integer")
	}
	return n.String(), nil
}

// dateOr returns the requested date, or now formatted as a lookup date.
func (r *LookupRequest) dateOr(now time.Time) string {
	if r.Date != "" {
		return r.Date
	}
	return now.Format(company.DateLayout)
}
