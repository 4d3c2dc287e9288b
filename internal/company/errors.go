package company

import (
	"errors"
	"fmt"

	dErrors "normalro/pkg/domain-errors"
)

// ErrorCategory is the normalized failure taxonomy for upstream lookups.
type ErrorCategory string

const (
	// ErrorTimeout: ANAF did not answer within the deadline.
	ErrorTimeout ErrorCategory = "timeout"
	// ErrorConnection: the request never reached ANAF (DNS, TCP, TLS).
	ErrorConnection ErrorCategory = "connection"
	// ErrorProviderOutage: ANAF answered with a non-200 status.
	ErrorProviderOutage ErrorCategory = "provider_outage"
	// ErrorBadData: ANAF answered 200 with a body we could not decode.
	ErrorBadData ErrorCategory = "bad_data"
	// ErrorNotFound: ANAF has no record for the fiscal code.
	ErrorNotFound ErrorCategory = "not_found"
	// ErrorInternal: anything else.
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps upstream failures with a normalized category.
type ProviderError struct {
	Category   ErrorCategory
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("anaf [%s]: %s: %v", e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("anaf [%s]: %s", e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a categorized error. Timeouts, outages and
// connection failures are marked retryable.
func NewProviderError(category ErrorCategory, message string, underlying error) *ProviderError {
	return &ProviderError{
		Category:   category,
		Message:    message,
		Underlying: underlying,
		Retryable:  category == ErrorTimeout || category == ErrorProviderOutage || category == ErrorConnection,
	}
}

// GetCategory extracts the category from err, or ErrorInternal.
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// countsAsFailure reports whether the error should trip the circuit breaker.
// A missing company is a healthy answer.
func countsAsFailure(err error) bool {
	return GetCategory(err) != ErrorNotFound
}

// toDomainError maps an upstream failure onto the public error codes.
func toDomainError(err error) error {
	switch GetCategory(err) {
	case ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeCompanyNotFound, "no company registered under this CUI")
	case ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeANAFTimeout, "ANAF did not respond in time")
	case ErrorConnection:
		return dErrors.Wrap(err, dErrors.CodeANAFConnectionError, "could not reach ANAF")
	case ErrorProviderOutage, ErrorBadData:
		return dErrors.Wrap(err, dErrors.CodeANAFServiceError, "ANAF returned an error")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "company lookup failed")
	}
}
