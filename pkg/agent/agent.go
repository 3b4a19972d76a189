// Package agent provides the uniform execution envelope for every analytical
// unit in the pipeline. An agent declares its task, schemas, and prompts; the
// Runtime owns validation, routing, gateway calls, parse recovery, quality
// scoring, and metadata emission.
package agent

import (
	"fmt"

	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/models"
)

// SourceArticle is one ingested article handed to Pass 1 agents.
type SourceArticle struct {
	ID          string `json:"id"`
	SourceName  string `json:"source_name"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"published_at"`
}

// Input is the runtime-level input envelope. Agents read the fields they
// declare; ValidateInput rejects inputs missing what the agent needs.
type Input struct {
	StoryID string
	RunID   string
	Pass    int
	Stage   string

	Headline       string
	PrimaryZone    string
	SecondaryZones []string

	// Articles are present for Pass 1 agents only.
	Articles []SourceArticle

	// Bundle carries validated outputs of prior passes/stages.
	Bundle *Bundle

	// Critique is gate-retry feedback targeted at this agent.
	Critique string

	// Critical marks the story as past Gate 1 (admitted past the budget
	// soft limit).
	Critical bool

	// Round is the debate round number (debate agents only).
	Round int

	// Transcript is the in-flight debate transcript (debate agents only).
	Transcript *models.Transcript
}

// Output is a validated, typed agent output. Raw JSON never crosses the
// runtime boundary outward.
type Output interface {
	// Validate checks structural requirements (non-confidence fields).
	Validate() error

	// ConfidenceFields returns pointers to every confidence-valued field so
	// the runtime can range-check (and, when policy allows, clamp) them.
	ConfidenceFields() []*float64
}

// Agent is the capability set every analytical unit declares. Shared
// behavior (cache, retry, budget, metadata) belongs to the Runtime, which
// receives an agent value — not a subclass.
type Agent interface {
	// TaskName is the stable task identifier (routing, caching, ledger).
	TaskName() string

	// Version is the prompt/schema version; bumping it invalidates the cache.
	Version() string

	// CacheKind assigns the task's responses to a cache TTL class.
	CacheKind() config.CacheKind

	// TierOverride pins the task to a tier ("" = use the task tier map).
	TierOverride() config.Tier

	// ResponseFormat is json for analytical agents, text for prose.
	ResponseFormat() llm.ResponseFormat

	// ValidateInput rejects inputs the agent cannot work with.
	ValidateInput(in Input) error

	// BuildMessages assembles the conversation for the gateway call.
	BuildMessages(in Input) []llm.Message

	// ParseOutput converts raw model text into the agent's typed output.
	ParseOutput(raw string) (Output, error)
}

// QualityAssessor is implemented by agents that self-assess output quality.
// The runtime records the score in metadata; gates aggregate it.
type QualityAssessor interface {
	AssessQuality(out Output, in Input) float64
}

// ErrorKind is a stable agent failure code.
type ErrorKind string

const (
	ErrValidation          ErrorKind = "VALIDATION"
	ErrOutputParse         ErrorKind = "OUTPUT_PARSE"
	ErrOutputValidation    ErrorKind = "OUTPUT_VALIDATION"
	ErrBudgetDenied        ErrorKind = "BUDGET_DENIED"
	ErrCircuitOpen         ErrorKind = "CIRCUIT_OPEN"
	ErrProviderUnavailable ErrorKind = "PROVIDER_UNAVAILABLE"
	ErrRateLimited         ErrorKind = "RATE_LIMITED"
	ErrServer              ErrorKind = "SERVER_ERROR"
	ErrNetwork             ErrorKind = "NETWORK_ERROR"
	ErrTimeout             ErrorKind = "TIMEOUT"
	ErrInvalidResponse     ErrorKind = "INVALID_RESPONSE"
	ErrCancelled           ErrorKind = "CANCELLED"
)

// Failure describes an unsuccessful agent execution.
type Failure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Metadata is emitted with every result, success or failure.
type Metadata struct {
	TaskName     string  `json:"task_name"`
	Version      string  `json:"version"`
	ExecutionID  string  `json:"execution_id"`
	Provider     string  `json:"provider,omitempty"`
	ModelUsed    string  `json:"model_used,omitempty"`
	Tier         string  `json:"tier,omitempty"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	LatencyMS    int     `json:"latency_ms"`
	Retries      int     `json:"retries"`
	CacheHit     bool    `json:"cache_hit"`
	QualityScore float64 `json:"quality_score"`
}

// Result is the runtime's only return shape. No agent-level failure is ever
// raised as a Go error across a stage boundary.
type Result struct {
	Success  bool
	Output   Output
	Err      *Failure
	Metadata Metadata
}

// CheckUnit validates that a named value lies in [0, 1]. Shared by output
// Validate implementations for non-pointer unit fields.
func CheckUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %v outside [0,1]", name, v)
	}
	return nil
}
