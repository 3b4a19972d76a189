// Package llm provides chat-completion adapters for the supported LLM
// providers. Adapters are thin: they translate requests and classify
// transport errors. Retry, caching, budgets, and accounting live in the
// gateway, which is the only caller.
package llm

import (
	"context"
	"time"
)

// Role values for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the completion output shape.
type ResponseFormat string

const (
	// ResponseFormatJSON requests a deterministic JSON object response.
	ResponseFormatJSON ResponseFormat = "json"
	// ResponseFormatText requests free-form prose.
	ResponseFormatText ResponseFormat = "text"
)

// CompletionRequest is a provider-agnostic chat-completion request.
type CompletionRequest struct {
	Model           string
	Messages        []Message
	Temperature     float64
	MaxOutputTokens int
	ResponseFormat  ResponseFormat
	Timeout         time.Duration
}

// Completion is a provider-agnostic chat-completion response.
type Completion struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
	StopReason   string
}

// EmbedRequest asks for vector embeddings of the given texts.
type EmbedRequest struct {
	Model string
	Texts []string
}

// Provider is the adapter contract implemented per vendor API shape.
type Provider interface {
	// Name returns the configured provider name (registry key).
	Name() string

	// Complete performs a single chat completion. Errors are *APIError
	// so the gateway can classify them for retry/breaker decisions.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)

	// Embed returns one vector per input text. Providers without an
	// embedding model return ErrEmbeddingUnsupported.
	Embed(ctx context.Context, req EmbedRequest) ([][]float32, error)
}
