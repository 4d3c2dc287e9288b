package cnp

import (
	"errors"
	"fmt"

	dErrors "normalro/pkg/domain-errors"
)

// Reason names the check a candidate identifier failed. It is kept for logs
// and never returned to clients.
type Reason string

const (
	ReasonMalformed  Reason = "malformed"
	ReasonGenderCode Reason = "gender_code"
	ReasonBirthDate  Reason = "birth_date"
	ReasonRegion     Reason = "region"
	ReasonChecksum   Reason = "checksum"
)

// ParseError is the cause wrapped inside every InvalidIdentifier error.
type ParseError struct {
	Reason Reason
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("cnp: %s", e.Reason)
	}
	return fmt.Sprintf("cnp: %s: %s", e.Reason, e.Detail)
}

func invalidIdentifier(reason Reason, detail string) error {
	return dErrors.Wrap(&ParseError{Reason: reason, Detail: detail}, dErrors.CodeInvalidIdentifier, "identifier is not valid")
}

// ReasonOf extracts the parse failure reason from err, or "" if err did not
// come from Parse.
func ReasonOf(err error) Reason {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ""
}

var (
	errInvalidGender    = dErrors.New(dErrors.CodeInvalidGender, "gender must be male or female")
	errInvalidRegion    = dErrors.New(dErrors.CodeInvalidRegion, "unknown region code")
	errInvalidBirthDate = dErrors.New(dErrors.CodeInvalidBirthDate, fmt.Sprintf("birth year must be between %d and %d", MinYear, MaxYear))
)
