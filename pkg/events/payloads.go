package events

import "github.com/100percenttuna/undertow/pkg/models"

// BasePayload carries the fields every event shares.
type BasePayload struct {
	Type      string `json:"type"`
	RunID     string `json:"run_id,omitempty"`
	StoryID   string `json:"story_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// StoryStatusPayload announces a story status transition.
type StoryStatusPayload struct {
	BasePayload
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// StageStatusPayload announces a stage lifecycle transition.
type StageStatusPayload struct {
	BasePayload
	Pass   int    `json:"pass"`
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

// GateResultPayload announces a quality gate outcome.
type GateResultPayload struct {
	BasePayload
	Pass    int                `json:"pass"`
	Score   float64            `json:"score"`
	Outcome models.GateOutcome `json:"outcome"`
	Missing []string           `json:"missing_components,omitempty"`
}

// EscalationCreatedPayload announces a new human-review item.
type EscalationCreatedPayload struct {
	BasePayload
	EscalationID string `json:"escalation_id"`
	Severity     string `json:"severity"`
}

// RunStatusPayload announces a run status transition.
type RunStatusPayload struct {
	BasePayload
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// BudgetAlertPayload announces a budget threshold event.
type BudgetAlertPayload struct {
	BasePayload
	Alert  string `json:"alert"`
	Window string `json:"window"`
}
