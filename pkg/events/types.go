// Package events provides the engine's structured event stream: typed JSON
// payloads persisted to the events table and broadcast via PostgreSQL
// NOTIFY for dashboards and cross-pod observers.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeStoryStatus       = "story.status"
	EventTypeStageStatus       = "stage.status"
	EventTypeGateResult        = "gate.result"
	EventTypeEscalationCreated = "escalation.created"
	EventTypeRunStatus         = "run.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeBudgetAlert = "budget.alert"
)

// Budget alert kinds.
const (
	BudgetAlertExhausted = "BUDGET_EXHAUSTED"
)

// RunChannel returns the NOTIFY channel for one run's events.
func RunChannel(runID string) string {
	return "undertow_run_" + runID
}

// GlobalChannel carries run-independent events (budget alerts, run list).
const GlobalChannel = "undertow_global"
