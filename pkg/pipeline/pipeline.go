// Package pipeline drives a story through the four analytical passes,
// scheduling agents in stage groups, evaluating quality gates, and deciding
// retry/escalate/abort transitions. The orchestrator is a pure reducer over
// typed agent results plus gate decisions; no error ever crosses a stage
// boundary as a panic or a raised exception.
package pipeline

import (
	"context"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/models"
)

// Status values a story can end an ExecuteStory call in. The worker maps
// these onto the persisted story status.
type Status string

const (
	StatusReadyForPublication Status = "ready_for_publication"
	StatusEscalated           Status = "escalated"
	StatusFailed              Status = "failed"
	StatusCancelled           Status = "cancelled"
	StatusTimedOut            Status = "timed_out"
)

// Abort reason codes recorded with FAILED stories.
const (
	ReasonStoryTimeout    = "STORY_TIMEOUT"
	ReasonGateAbort       = "GATE_ABORT"
	ReasonNoEvents        = "VALIDATION_NO_EVENTS"
	ReasonDebateUnsealed  = "DEBATE_UNSEALED"
	ReasonEscalationAbort = "ESCALATION_REJECTED"
)

// Runner is the agent runtime surface the orchestrator uses.
type Runner interface {
	Run(ctx context.Context, ag agent.Agent, in agent.Input) agent.Result
}

// Stores is the story persistence surface. Implemented by
// services.StoryService; faked in tests.
type Stores interface {
	// UpdateStoryProgress records current pass and stage.
	UpdateStoryProgress(ctx context.Context, storyID string, pass int, stage string) error

	// SaveBundleSnapshot persists the analysis bundle state.
	SaveBundleSnapshot(ctx context.Context, storyID string, snapshot map[string]interface{}) error

	// RecordGate persists a gate score and outcome for a pass.
	RecordGate(ctx context.Context, storyID string, pass int, score float64, outcome models.GateOutcome) error

	// AddFlags appends reason-coded flags to the story.
	AddFlags(ctx context.Context, storyID string, flags ...string) error

	// RecordRetry increments the persisted gate retry counter for a pass.
	RecordRetry(ctx context.Context, storyID string, pass int) error

	// AddPassCost accumulates per-pass spend on the story record.
	AddPassCost(ctx context.Context, storyID string, pass int, costUSD float64) error

	// SaveTranscript persists and seals the debate transcript.
	SaveTranscript(ctx context.Context, t *models.Transcript) error

	// IsCancelling reports whether a cancel was requested for the story.
	IsCancelling(ctx context.Context, storyID string) (bool, error)
}

// ArticleStore is the read-only source/article store.
type ArticleStore interface {
	GetArticles(ctx context.Context, ids []string) ([]agent.SourceArticle, error)
}

// EventPublisher delivers engine progress events. All methods are
// best-effort; implementations log failures and never block the pipeline.
type EventPublisher interface {
	PublishStoryStatus(ctx context.Context, storyID, status string)
	PublishStageStatus(ctx context.Context, storyID string, pass int, stage, status string)
	PublishGateResult(ctx context.Context, storyID string, result models.GateResult)
	PublishEscalationCreated(ctx context.Context, storyID, escalationID, severity string)
}

// StoryJob is one claimed story, converted from its database record.
type StoryJob struct {
	ID        string
	RunID     string
	EditionID string

	Headline         string
	PrimaryZone      string
	SecondaryZones   []string
	SourceArticleIDs []string

	Novelty       int
	ZonesAffected int
	SignalType    string
	Topics        []string

	// StartPass is 1 for fresh stories, >1 for resume and reanalysis.
	StartPass int

	// Bundle is the restored analysis state for resumed stories, nil for
	// fresh ones.
	Bundle *agent.Bundle

	// RetryCounts carries gate retries already consumed per pass.
	RetryCounts map[int]int

	Flags []string
}

// StoryResult is the terminal outcome of one ExecuteStory call.
type StoryResult struct {
	Status       Status
	AbortReason  string
	Err          error
	FinalArticle string

	EscalationID string

	QualityScores map[int]float64
	CostByPass    map[int]float64
	Flags         []string

	// OverallConfidence is the post-debate overall confidence.
	OverallConfidence float64
}

// TotalCost sums the per-pass costs.
func (r *StoryResult) TotalCost() float64 {
	var total float64
	for _, c := range r.CostByPass {
		total += c
	}
	return total
}

// stage group status strings for events.
const (
	stageStarted   = "started"
	stageCompleted = "completed"
	stageFailed    = "failed"
)
