// Package escalation routes low-confidence or failed stories to human
// review, packaging the full analysis chain for the reviewer.
package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/models"
)

// Store persists escalation items. Implemented by services.EscalationService.
type Store interface {
	CreateEscalation(ctx context.Context, req models.CreateEscalationRequest) (string, error)
}

// StorySignals are the selection-side signals consulted by triggers.
type StorySignals struct {
	ZonesAffected int
	Novelty       int
	SignalType    string
	Topics        []string
	HeadsOfState  int
}

// Evaluation is everything the trigger predicates can see. Built by the
// orchestrator after each gate and at pipeline end.
type Evaluation struct {
	StoryID string

	OverallConfidence  float64
	HasConfidence      bool
	VerificationScore  float64
	HasVerification    bool
	OpenCriticalCount  int
	Signals            StorySignals
	GateFailedMaxRetry bool
	FailedGatePass     int

	Bundle     *agent.Bundle
	Transcript *models.Transcript
	Draft      string
	SourceRefs []string
	Issues     []models.SpecificIssue
}

// Trigger is one fired predicate.
type Trigger struct {
	Name     string
	Severity config.TriggerSeverity
	Detail   string
}

// Manager evaluates triggers and builds escalation items.
type Manager struct {
	cfg   *config.EscalationConfig
	store Store
}

// NewManager creates an escalation manager.
func NewManager(cfg *config.EscalationConfig, store Store) *Manager {
	return &Manager{cfg: cfg, store: store}
}

// Evaluate runs every enabled trigger against the evaluation state.
func (m *Manager) Evaluate(ev Evaluation) []Trigger {
	var fired []Trigger
	add := func(name, detail string) {
		fired = append(fired, Trigger{
			Name:     name,
			Severity: m.cfg.TriggerSeverityFor(name),
			Detail:   detail,
		})
	}

	for _, t := range m.cfg.Triggers {
		if !t.IsEnabled() {
			continue
		}
		switch t.Name {
		case config.TriggerConfidenceBelowThreshold:
			if ev.HasConfidence && ev.OverallConfidence < m.cfg.ConfidenceThreshold {
				add(t.Name, fmt.Sprintf("overall confidence %.2f < %.2f",
					ev.OverallConfidence, m.cfg.ConfidenceThreshold))
			}
		case config.TriggerVerificationBelowThreshold:
			if ev.HasVerification && ev.VerificationScore < m.cfg.VerificationThreshold {
				add(t.Name, fmt.Sprintf("verification score %.2f < %.2f",
					ev.VerificationScore, m.cfg.VerificationThreshold))
			}
		case config.TriggerUnresolvedCriticalDebate:
			if ev.OpenCriticalCount > 0 {
				add(t.Name, fmt.Sprintf("%d unresolved critical debate issues", ev.OpenCriticalCount))
			}
		case config.TriggerHighImpactCombination:
			if ev.Signals.ZonesAffected >= m.cfg.ZonesAffectedMin && ev.Signals.Novelty >= m.cfg.NoveltyMin {
				add(t.Name, fmt.Sprintf("zones_affected %d and novelty %d",
					ev.Signals.ZonesAffected, ev.Signals.Novelty))
			}
		case config.TriggerCounterConsensus:
			if ev.Signals.SignalType == "COUNTER_CONSENSUS" {
				add(t.Name, "counter-consensus signal")
			}
		case config.TriggerSensitiveTopic:
			if topic, ok := m.matchSensitiveTopic(ev.Signals.Topics); ok {
				add(t.Name, "sensitive topic: "+topic)
			}
		case config.TriggerHeadsOfState:
			if m.cfg.HeadsOfStateMin > 0 && ev.Signals.HeadsOfState >= m.cfg.HeadsOfStateMin {
				add(t.Name, fmt.Sprintf("%d heads of state mentioned", ev.Signals.HeadsOfState))
			}
		case config.TriggerGateFailureMaxRetries:
			if ev.GateFailedMaxRetry {
				add(t.Name, fmt.Sprintf("gate %d failed after max retries", ev.FailedGatePass))
			}
		}
	}
	return fired
}

// Escalate builds and persists the escalation item for the fired triggers.
// The package snapshots the analysis bundle and records its content hash so
// reviewers can verify exactly what state the item was generated from.
func (m *Manager) Escalate(ctx context.Context, ev Evaluation, fired []Trigger) (string, error) {
	if len(fired) == 0 {
		return "", fmt.Errorf("escalate called with no fired triggers")
	}

	severity := config.SeverityLow
	names := make([]string, 0, len(fired))
	issues := slices.Clone(ev.Issues)
	for _, t := range fired {
		names = append(names, t.Name)
		if t.Severity.Rank() > severity.Rank() {
			severity = t.Severity
		}
		issues = append(issues, models.SpecificIssue{
			Location:        "trigger:" + t.Name,
			Description:     t.Detail,
			SuggestedAction: suggestedActionFor(t.Name),
		})
	}

	var snapshot map[string]interface{}
	var hash string
	if ev.Bundle != nil {
		snapshot = ev.Bundle.Snapshot()
		hash = ev.Bundle.Hash()
	}

	pkg := models.ReviewPackage{
		Draft:            ev.Draft,
		SpecificIssues:   issues,
		SourceDocRefs:    ev.SourceRefs,
		AnalysisChain:    snapshot,
		DebateTranscript: ev.Transcript,
		SuggestedActions: suggestedActions(fired),
	}

	dueAt := time.Now().Add(m.cfg.ReviewDue)
	itemID, err := m.store.CreateEscalation(ctx, models.CreateEscalationRequest{
		StoryID:    ev.StoryID,
		Severity:   string(severity),
		Triggers:   names,
		Package:    pkg,
		BundleHash: hash,
		DueAt:      &dueAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create escalation item: %w", err)
	}

	metrics.EscalationsCreated.WithLabelValues(string(severity)).Inc()
	slog.Info("Escalation item created",
		"story_id", ev.StoryID,
		"escalation_id", itemID,
		"severity", severity,
		"triggers", names)
	return itemID, nil
}

// matchSensitiveTopic returns the first story topic in the sensitive set.
func (m *Manager) matchSensitiveTopic(topics []string) (string, bool) {
	for _, topic := range topics {
		if slices.Contains(m.cfg.SensitiveTopics, topic) {
			return topic, true
		}
	}
	return "", false
}

// suggestedActionFor maps a trigger to the reviewer action it usually needs.
func suggestedActionFor(name string) string {
	switch name {
	case config.TriggerConfidenceBelowThreshold:
		return "verify the primary driver assessment against additional sources"
	case config.TriggerVerificationBelowThreshold:
		return "re-check unsupported claims before publication"
	case config.TriggerUnresolvedCriticalDebate:
		return "resolve the sustained critical challenges or reject"
	case config.TriggerHighImpactCombination:
		return "senior review: high-impact, high-novelty story"
	case config.TriggerCounterConsensus:
		return "confirm the counter-consensus reading is defensible"
	case config.TriggerSensitiveTopic:
		return "apply the sensitive-topic editorial checklist"
	case config.TriggerHeadsOfState:
		return "check head-of-state characterizations for accuracy"
	case config.TriggerGateFailureMaxRetries:
		return "decide whether to re-analyze, edit, or drop the story"
	default:
		return ""
	}
}

// suggestedActions collects the distinct actions for the fired triggers.
func suggestedActions(fired []Trigger) []string {
	var actions []string
	for _, t := range fired {
		if a := suggestedActionFor(t.Name); a != "" && !slices.Contains(actions, a) {
			actions = append(actions, a)
		}
	}
	return actions
}
