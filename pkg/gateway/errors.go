package gateway

import (
	"errors"
	"fmt"

	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// ErrorKind is a stable gateway error code. These are the only error surfaces
// callers see; raw provider responses never leave the gateway.
type ErrorKind string

const (
	KindRateLimited     ErrorKind = "RATE_LIMITED"
	KindServerError     ErrorKind = "SERVER_ERROR"
	KindClientError     ErrorKind = "CLIENT_ERROR"
	KindNetworkError    ErrorKind = "NETWORK_ERROR"
	KindTimeout         ErrorKind = "TIMEOUT"
	KindInvalidResponse ErrorKind = "INVALID_RESPONSE"
	KindCircuitOpen     ErrorKind = "CIRCUIT_OPEN"
	KindBudgetDenied    ErrorKind = "BUDGET_DENIED"
)

// Error is a typed gateway failure.
type Error struct {
	Kind     ErrorKind
	Provider string
	Message  string
	Retries  int
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("gateway: %s (%s): %s", e.Kind, e.Provider, e.Message)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

// AsError extracts a *Error from any error, or wraps it as INVALID_RESPONSE.
func AsError(err error) *Error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	return &Error{Kind: KindInvalidResponse, Message: err.Error()}
}

// classify maps provider and budget errors to gateway error kinds.
func classify(err error) *Error {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		kind := KindInvalidResponse
		switch apiErr.Class {
		case llm.ClassRateLimited:
			kind = KindRateLimited
		case llm.ClassServer:
			kind = KindServerError
		case llm.ClassClient:
			kind = KindClientError
		case llm.ClassNetwork:
			kind = KindNetworkError
		case llm.ClassTimeout:
			kind = KindTimeout
		}
		return &Error{Kind: kind, Provider: apiErr.Provider, Message: apiErr.Message}
	}
	if errors.Is(err, budget.ErrDenied) {
		return &Error{Kind: KindBudgetDenied, Message: err.Error()}
	}
	return &Error{Kind: KindInvalidResponse, Message: err.Error()}
}

// retryable reports whether an error kind is in the fixed retry set.
func retryable(kind ErrorKind) bool {
	switch kind {
	case KindRateLimited, KindServerError, KindNetworkError, KindTimeout:
		return true
	default:
		return false
	}
}
