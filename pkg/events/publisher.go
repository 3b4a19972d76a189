package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/100percenttuna/undertow/pkg/models"
)

// notifyLimit is PostgreSQL's practical NOTIFY payload bound; larger events
// are replaced with a routing-only envelope and read back from the table.
const notifyLimit = 7900

// Publisher delivers engine events. Persistent events are stored in the
// events table then broadcast via NOTIFY in one transaction (pg_notify is
// transactional — held until COMMIT). Transient events broadcast only.
//
// All publish methods are best-effort: failures are logged, never returned
// into the pipeline. Implements the orchestrator's EventPublisher.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database connection.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStoryStatus persists and broadcasts a story.status event.
func (p *Publisher) PublishStoryStatus(ctx context.Context, storyID, status string) {
	p.PublishStoryStatusForRun(ctx, "", storyID, status, "")
}

// PublishStoryStatusForRun is PublishStoryStatus with run routing and reason.
func (p *Publisher) PublishStoryStatusForRun(ctx context.Context, runID, storyID, status, reason string) {
	payload := StoryStatusPayload{
		BasePayload: p.base(EventTypeStoryStatus, runID, storyID),
		Status:      status,
		Reason:      reason,
	}
	p.persistAndNotify(ctx, runID, payload)
}

// PublishStageStatus persists and broadcasts a stage.status event.
func (p *Publisher) PublishStageStatus(ctx context.Context, storyID string, pass int, stage, status string) {
	payload := StageStatusPayload{
		BasePayload: p.base(EventTypeStageStatus, "", storyID),
		Pass:        pass,
		Stage:       stage,
		Status:      status,
	}
	p.persistAndNotify(ctx, "", payload)
}

// PublishGateResult persists and broadcasts a gate.result event.
func (p *Publisher) PublishGateResult(ctx context.Context, storyID string, result models.GateResult) {
	payload := GateResultPayload{
		BasePayload: p.base(EventTypeGateResult, "", storyID),
		Pass:        result.Pass,
		Score:       result.Score,
		Outcome:     result.Outcome,
		Missing:     result.MissingComponents,
	}
	p.persistAndNotify(ctx, "", payload)
}

// PublishEscalationCreated persists and broadcasts an escalation.created event.
func (p *Publisher) PublishEscalationCreated(ctx context.Context, storyID, escalationID, severity string) {
	payload := EscalationCreatedPayload{
		BasePayload:  p.base(EventTypeEscalationCreated, "", storyID),
		EscalationID: escalationID,
		Severity:     severity,
	}
	p.persistAndNotify(ctx, "", payload)
}

// PublishRunStatus persists and broadcasts a run.status event on both the
// run channel and the global channel.
func (p *Publisher) PublishRunStatus(ctx context.Context, runID, status, reason string) {
	payload := RunStatusPayload{
		BasePayload: p.base(EventTypeRunStatus, runID, ""),
		Status:      status,
		Reason:      reason,
	}
	p.persistAndNotify(ctx, runID, payload)
	p.notifyOnly(ctx, GlobalChannel, payload)
}

// PublishBudgetAlert broadcasts a transient budget.alert to the global
// channel. Wired to the budget controller's OnExhausted hook.
func (p *Publisher) PublishBudgetAlert(ctx context.Context, window string) {
	payload := BudgetAlertPayload{
		BasePayload: p.base(EventTypeBudgetAlert, "", ""),
		Alert:       BudgetAlertExhausted,
		Window:      window,
	}
	p.notifyOnly(ctx, GlobalChannel, payload)
}

// --- Internal core methods ---

func (p *Publisher) base(eventType, runID, storyID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		RunID:     runID,
		StoryID:   storyID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// persistAndNotify persists an event and broadcasts via NOTIFY in a single
// transaction. The NOTIFY fires atomically with the COMMIT.
func (p *Publisher) persistAndNotify(ctx context.Context, runID string, payload interface{}) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal event payload", "error", err)
		return
	}
	channel := GlobalChannel
	if runID != "" {
		channel = RunChannel(runID)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Warn("Failed to begin event transaction", "channel", channel, "error", err)
		return
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		slog.Warn("Failed to persist event", "channel", channel, "error", err)
		return
	}

	notifyPayload, err := injectDBEventID(payloadJSON, eventID)
	if err != nil {
		slog.Warn("Failed to build NOTIFY payload", "channel", channel, "error", err)
		return
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		slog.Warn("pg_notify failed", "channel", channel, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("Failed to commit event transaction", "channel", channel, "error", err)
	}
}

// notifyOnly broadcasts without persistence.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payload interface{}) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal event payload", "error", err)
		return
	}
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		slog.Warn("Failed to truncate NOTIFY payload", "channel", channel, "error", err)
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		slog.Warn("pg_notify failed", "channel", channel, "error", err)
	}
}

// injectDBEventID adds db_event_id to the NOTIFY copy so catch-up readers
// can resume from the persisted row.
func injectDBEventID(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded replaces oversized payloads with a routing-only envelope;
// readers fetch the full payload from the events table by id.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(payloadStr), &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal oversized payload: %w", err)
	}
	envelope := map[string]any{
		"type":      m["type"],
		"truncated": true,
	}
	for _, key := range []string{"run_id", "story_id", "db_event_id", "timestamp"} {
		if v, ok := m[key]; ok {
			envelope[key] = v
		}
	}
	out, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(out), nil
}
