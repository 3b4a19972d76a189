package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrEmbeddingUnsupported is returned by providers with no embedding model.
var ErrEmbeddingUnsupported = errors.New("provider does not support embeddings")

// ErrorClass buckets provider failures for retry and breaker decisions.
type ErrorClass string

const (
	ClassRateLimited ErrorClass = "rate_limited"
	ClassServer      ErrorClass = "server_error"
	ClassClient      ErrorClass = "client_error"
	ClassNetwork     ErrorClass = "network_error"
	ClassTimeout     ErrorClass = "timeout"
	ClassInvalid     ErrorClass = "invalid_response"
)

// APIError wraps a provider failure with its classification.
// Provider adapters construct these; the gateway never sees raw HTTP errors.
type APIError struct {
	Provider   string
	StatusCode int // 0 for transport-level failures
	Class      ErrorClass
	Message    string
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Provider, e.Class, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Class, e.Message)
}

// Retryable reports whether the failure class is safe to retry.
func (e *APIError) Retryable() bool {
	switch e.Class {
	case ClassRateLimited, ClassServer, ClassNetwork, ClassTimeout:
		return true
	default:
		return false
	}
}

// classifyStatus maps an HTTP status code to an error class.
func classifyStatus(status int) ErrorClass {
	switch {
	case status == 429:
		return ClassRateLimited
	case status >= 500:
		return ClassServer
	default:
		return ClassClient
	}
}

// classifyTransport wraps a non-HTTP failure (DNS, connection reset, context
// deadline) into an APIError.
func classifyTransport(provider string, err error) *APIError {
	class := ClassNetwork
	if errors.Is(err, context.DeadlineExceeded) {
		class = ClassTimeout
	} else {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			class = ClassTimeout
		}
	}
	return &APIError{
		Provider: provider,
		Class:    class,
		Message:  err.Error(),
	}
}
