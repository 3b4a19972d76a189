package escalation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/models"
)

type memStore struct {
	mu       sync.Mutex
	requests []models.CreateEscalationRequest
}

func (s *memStore) CreateEscalation(_ context.Context, req models.CreateEscalationRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return "esc-1", nil
}

func testEscalationConfig() *config.EscalationConfig {
	return &config.EscalationConfig{
		ConfidenceThreshold:   0.70,
		VerificationThreshold: 0.70,
		ZonesAffectedMin:      5,
		NoveltyMin:            8,
		HeadsOfStateMin:       3,
		SensitiveTopics:       []string{"nuclear-posture"},
		ReviewDue:             6 * time.Hour,
		Triggers: []config.EscalationTrigger{
			{Name: config.TriggerConfidenceBelowThreshold, Severity: config.SeverityHigh},
			{Name: config.TriggerVerificationBelowThreshold, Severity: config.SeverityHigh},
			{Name: config.TriggerUnresolvedCriticalDebate, Severity: config.SeverityCritical},
			{Name: config.TriggerHighImpactCombination, Severity: config.SeverityHigh},
			{Name: config.TriggerCounterConsensus, Severity: config.SeverityMedium},
			{Name: config.TriggerSensitiveTopic, Severity: config.SeverityHigh},
			{Name: config.TriggerHeadsOfState, Severity: config.SeverityMedium},
			{Name: config.TriggerGateFailureMaxRetries, Severity: config.SeverityHigh},
		},
	}
}

func TestEvaluateTriggers(t *testing.T) {
	m := NewManager(testEscalationConfig(), &memStore{})

	tests := []struct {
		name     string
		ev       Evaluation
		expected []string
	}{
		{
			name:     "low confidence",
			ev:       Evaluation{OverallConfidence: 0.55, HasConfidence: true},
			expected: []string{config.TriggerConfidenceBelowThreshold},
		},
		{
			name: "confidence at threshold does not fire",
			ev:   Evaluation{OverallConfidence: 0.70, HasConfidence: true},
		},
		{
			name:     "low verification",
			ev:       Evaluation{VerificationScore: 0.5, HasVerification: true},
			expected: []string{config.TriggerVerificationBelowThreshold},
		},
		{
			name:     "unresolved critical debate",
			ev:       Evaluation{OpenCriticalCount: 2},
			expected: []string{config.TriggerUnresolvedCriticalDebate},
		},
		{
			name:     "high impact combination",
			ev:       Evaluation{Signals: StorySignals{ZonesAffected: 5, Novelty: 8}},
			expected: []string{config.TriggerHighImpactCombination},
		},
		{
			name: "zones alone is not enough",
			ev:   Evaluation{Signals: StorySignals{ZonesAffected: 9, Novelty: 3}},
		},
		{
			name:     "counter consensus",
			ev:       Evaluation{Signals: StorySignals{SignalType: "COUNTER_CONSENSUS"}},
			expected: []string{config.TriggerCounterConsensus},
		},
		{
			name:     "sensitive topic",
			ev:       Evaluation{Signals: StorySignals{Topics: []string{"trade", "nuclear-posture"}}},
			expected: []string{config.TriggerSensitiveTopic},
		},
		{
			name:     "heads of state",
			ev:       Evaluation{Signals: StorySignals{HeadsOfState: 3}},
			expected: []string{config.TriggerHeadsOfState},
		},
		{
			name:     "gate failure",
			ev:       Evaluation{GateFailedMaxRetry: true, FailedGatePass: 2},
			expected: []string{config.TriggerGateFailureMaxRetries},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fired := m.Evaluate(tc.ev)
			names := make([]string, 0, len(fired))
			for _, f := range fired {
				names = append(names, f.Name)
			}
			assert.ElementsMatch(t, tc.expected, names)
		})
	}
}

func TestDisabledTriggerDoesNotFire(t *testing.T) {
	cfg := testEscalationConfig()
	off := false
	cfg.Triggers = []config.EscalationTrigger{
		{Name: config.TriggerConfidenceBelowThreshold, Severity: config.SeverityHigh, Enabled: &off},
	}
	m := NewManager(cfg, &memStore{})

	fired := m.Evaluate(Evaluation{OverallConfidence: 0.1, HasConfidence: true})
	assert.Empty(t, fired)
}

func TestEscalateSeverityIsMaxOfTriggers(t *testing.T) {
	store := &memStore{}
	m := NewManager(testEscalationConfig(), store)

	ev := Evaluation{
		StoryID:           "s1",
		OverallConfidence: 0.5,
		HasConfidence:     true,
		OpenCriticalCount: 1,
	}
	fired := m.Evaluate(ev)
	require.Len(t, fired, 2)

	_, err := m.Escalate(context.Background(), ev, fired)
	require.NoError(t, err)

	require.Len(t, store.requests, 1)
	req := store.requests[0]
	assert.Equal(t, string(config.SeverityCritical), req.Severity)
	assert.ElementsMatch(t,
		[]string{config.TriggerConfidenceBelowThreshold, config.TriggerUnresolvedCriticalDebate},
		req.Triggers)
	require.NotNil(t, req.DueAt)
}

// Escalation fidelity: the packaged analysis chain equals the bundle
// snapshot at creation time, verified by content hash.
func TestEscalatePackagesBundleSnapshotWithHash(t *testing.T) {
	store := &memStore{}
	m := NewManager(testEscalationConfig(), store)

	bundle := agent.NewBundle()
	require.NoError(t, bundle.Put(1, "stage_a", &agent.RawOutput{Fields: map[string]interface{}{"k": "v"}}))

	ev := Evaluation{
		StoryID:       "s1",
		HasConfidence: true,
		Bundle:        bundle,
		Draft:         "draft text",
		SourceRefs:    []string{"a1"},
	}
	fired := []Trigger{{Name: config.TriggerGateFailureMaxRetries, Severity: config.SeverityHigh, Detail: "gate 2"}}

	_, err := m.Escalate(context.Background(), ev, fired)
	require.NoError(t, err)

	req := store.requests[0]
	assert.Equal(t, bundle.Hash(), req.BundleHash)

	// Rebuilding a bundle from the packaged chain reproduces the hash
	restored := agent.NewBundle()
	restored.Restore(req.Package.AnalysisChain)
	assert.Equal(t, req.BundleHash, restored.Hash())

	assert.Equal(t, "draft text", req.Package.Draft)
	assert.NotEmpty(t, req.Package.SuggestedActions)
}

func TestEscalateWithoutTriggersRejects(t *testing.T) {
	m := NewManager(testEscalationConfig(), &memStore{})
	_, err := m.Escalate(context.Background(), Evaluation{StoryID: "s1"}, nil)
	require.Error(t, err)
}
