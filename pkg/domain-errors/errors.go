// Package domainerrors defines the error envelope shared by services and the
// HTTP layer. Services return *Error values carrying a machine-readable Code;
// transport code maps the Code to a status with ToHTTPStatus and renders it
// without ever inspecting error strings.
//
// Import it under the dErrors alias:
//
//	dErrors "normalro/pkg/domain-errors"
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the machine-readable error tag written to API responses.
type Code string

// Generic codes.
const (
	CodeBadRequest      Code = "bad_request"
	CodeValidation      Code = "validation_error"
	CodeInvalidInput    Code = "invalid_input"
	CodeNotFound        Code = "not_found"
	CodePayloadTooLarge Code = "payload_too_large"
	CodeTimeout         Code = "timeout"
	CodeUnavailable     Code = "service_unavailable"
	CodeInternal        Code = "internal_error"
)

// Identifier codec codes.
const (
	CodeInvalidGender     Code = "invalid_gender"
	CodeInvalidRegion     Code = "invalid_region"
	CodeInvalidBirthDate  Code = "invalid_birth_date"
	CodeInvalidIdentifier Code = "invalid_identifier"
	CodeIdentifierMissing Code = "cnp_required"
)

// Text tool codes.
const (
	CodeTextRequired      Code = "text_required"
	CodeInvalidLength     Code = "invalid_length"
	CodeNoCharsetSelected Code = "no_charset_selected"
	CodeInvalidMode       Code = "invalid_mode"
	CodeConversionFailed  Code = "conversion_failed"
)

// Company lookup codes.
const (
	CodeCUIRequired         Code = "cui_required"
	CodeInvalidCUI          Code = "invalid_cui"
	CodeInvalidDate         Code = "invalid_date"
	CodeCompanyNotFound     Code = "company_not_found"
	CodeANAFServiceError    Code = "anaf_service_error"
	CodeANAFTimeout         Code = "anaf_timeout"
	CodeANAFConnectionError Code = "anaf_connection_error"
	CodeANAFUnavailable     Code = "anaf_unavailable"
)

// Email relay codes.
const (
	CodeFileRequired      Code = "file_required"
	CodeInvalidFile       Code = "invalid_file"
	CodeFileTooLarge      Code = "file_too_large"
	CodeFileNotFound      Code = "file_not_found"
	CodeInvalidProvider   Code = "invalid_provider"
	CodeInvalidRecipient  Code = "invalid_recipient"
	CodeSubjectRequired   Code = "subject_required"
	CodeSMTPNotConfigured Code = "smtp_not_configured"
	CodeEmailSendFailed   Code = "email_send_failed"
)

var statusByCode = map[Code]int{
	CodeBadRequest:      http.StatusBadRequest,
	CodeValidation:      http.StatusBadRequest,
	CodeInvalidInput:    http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	CodeTimeout:         http.StatusGatewayTimeout,
	CodeUnavailable:     http.StatusServiceUnavailable,
	CodeInternal:        http.StatusInternalServerError,

	CodeInvalidGender:     http.StatusBadRequest,
	CodeInvalidRegion:     http.StatusBadRequest,
	CodeInvalidBirthDate:  http.StatusBadRequest,
	CodeInvalidIdentifier: http.StatusBadRequest,
	CodeIdentifierMissing: http.StatusBadRequest,

	CodeTextRequired:      http.StatusBadRequest,
	CodeInvalidLength:     http.StatusBadRequest,
	CodeNoCharsetSelected: http.StatusBadRequest,
	CodeInvalidMode:       http.StatusBadRequest,
	CodeConversionFailed:  http.StatusBadRequest,

	CodeCUIRequired:         http.StatusBadRequest,
	CodeInvalidCUI:          http.StatusBadRequest,
	CodeInvalidDate:         http.StatusBadRequest,
	CodeCompanyNotFound:     http.StatusNotFound,
	CodeANAFServiceError:    http.StatusBadGateway,
	CodeANAFTimeout:         http.StatusGatewayTimeout,
	CodeANAFConnectionError: http.StatusBadGateway,
	CodeANAFUnavailable:     http.StatusServiceUnavailable,

	CodeFileRequired:      http.StatusBadRequest,
	CodeInvalidFile:       http.StatusBadRequest,
	CodeFileTooLarge:      http.StatusRequestEntityTooLarge,
	CodeFileNotFound:      http.StatusNotFound,
	CodeInvalidProvider:   http.StatusBadRequest,
	CodeInvalidRecipient:  http.StatusBadRequest,
	CodeSubjectRequired:   http.StatusBadRequest,
	CodeSMTPNotConfigured: http.StatusBadRequest,
	CodeEmailSendFailed:   http.StatusBadGateway,
}

// ToHTTPStatus maps a Code to its HTTP status. Unknown codes are internal errors.
func ToHTTPStatus(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a domain error with a public Code and a caller-safe Message.
// Err keeps the underlying cause for logs; it is never rendered to clients.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a domain error without an underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf returns the code of the outermost *Error, or CodeInternal when err
// carries no domain code.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is an alias for HasCode kept for call sites that read better with it.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
