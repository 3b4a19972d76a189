package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/debate"
	"github.com/100percenttuna/undertow/pkg/escalation"
	"github.com/100percenttuna/undertow/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Fakes
// ────────────────────────────────────────────────────────────

type fakeStores struct {
	mu         sync.Mutex
	gates      map[int]models.GateOutcome
	flags      []string
	cancelling bool
	transcript *models.Transcript
}

func newFakeStores() *fakeStores {
	return &fakeStores{gates: make(map[int]models.GateOutcome)}
}

func (f *fakeStores) UpdateStoryProgress(context.Context, string, int, string) error { return nil }
func (f *fakeStores) SaveBundleSnapshot(context.Context, string, map[string]interface{}) error {
	return nil
}
func (f *fakeStores) RecordGate(_ context.Context, _ string, pass int, _ float64, outcome models.GateOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gates[pass] = outcome
	return nil
}
func (f *fakeStores) AddFlags(_ context.Context, _ string, flags ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flags = append(f.flags, flags...)
	return nil
}
func (f *fakeStores) RecordRetry(context.Context, string, int) error          { return nil }
func (f *fakeStores) AddPassCost(context.Context, string, int, float64) error { return nil }
func (f *fakeStores) SaveTranscript(_ context.Context, t *models.Transcript) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcript = t
	return nil
}
func (f *fakeStores) IsCancelling(context.Context, string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelling, nil
}

type fakeArticles struct {
	articles []agent.SourceArticle
}

func (f *fakeArticles) GetArticles(context.Context, []string) ([]agent.SourceArticle, error) {
	return f.articles, nil
}

type memEscalationStore struct {
	mu       sync.Mutex
	requests []models.CreateEscalationRequest
}

func (s *memEscalationStore) CreateEscalation(_ context.Context, req models.CreateEscalationRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return "esc-1", nil
}

// taskRunner serves canned outputs per task with per-task quality scores and
// optional overrides.
type taskRunner struct {
	mu        sync.Mutex
	quality   map[string]float64 // default 0.9
	overrides map[string]func(in agent.Input) agent.Result
	calls     []string
}

func (r *taskRunner) Run(_ context.Context, ag agent.Agent, in agent.Input) agent.Result {
	r.mu.Lock()
	r.calls = append(r.calls, ag.TaskName())
	r.mu.Unlock()

	if r.overrides != nil {
		if fn, ok := r.overrides[ag.TaskName()]; ok {
			return fn(in)
		}
	}

	q := 0.9
	if r.quality != nil {
		if v, ok := r.quality[ag.TaskName()]; ok {
			q = v
		}
	}
	out := cannedOutput(ag.TaskName(), in)
	if out == nil {
		return agent.Result{Success: false, Err: &agent.Failure{Kind: agent.ErrValidation, Message: "no canned output"}}
	}
	return agent.Result{
		Success:  true,
		Output:   out,
		Metadata: agent.Metadata{TaskName: ag.TaskName(), QualityScore: q, CostUSD: 0.02},
	}
}

func (r *taskRunner) callCount(task string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == task {
			n++
		}
	}
	return n
}

func cannedOutput(task string, in agent.Input) agent.Output {
	switch task {
	case agents.TaskFactualReconstruction:
		return &agents.FactualReconstructionOutput{
			Timeline: []agents.TimelineEvent{
				{Date: "2026-07-01", Description: "initial move", Sources: []string{"reuters"}},
				{Date: "2026-07-02", Description: "response", Sources: []string{"ap"}},
			},
			KeyFacts: []agents.KeyFact{
				{Fact: "fact one", Sources: []string{"reuters", "ap"}, Confidence: 0.9},
				{Fact: "fact two", Sources: []string{"ap"}, Confidence: 0.85},
			},
			Confidence: 0.9,
		}
	case agents.TaskContextAnalysis:
		return &agents.ContextAnalysisOutput{
			RegionalBackground: "background",
			HistoricalBackdrop: "backdrop",
			RecentDevelopments: []string{"d1", "d2"},
			Confidence:         0.85,
		}
	case agents.TaskActorAnalysis:
		return &agents.ActorAnalysisOutput{
			Actors: []agents.Actor{
				{Name: "State A", Kind: "state", Role: "initiator", Interests: []string{"security"}},
				{Name: "Leader B", Kind: "leader", Role: "responder", Interests: []string{"survival"}, IsHeadOfState: true},
			},
			Confidence: 0.85,
		}
	case agents.TaskMotivationAnalysis:
		return &agents.MotivationAnalysisOutput{
			Stated:        agents.MotivationLayer{Assessment: "stated", Confidence: 0.8},
			Strategic:     agents.MotivationLayer{Assessment: "strategic", Confidence: 0.8},
			Domestic:      agents.MotivationLayer{Assessment: "domestic", Confidence: 0.75},
			Psychological: agents.MotivationLayer{Assessment: "psych", Confidence: 0.7},
			PrimaryDriver: "strategic repositioning", PrimaryDriverConfidence: 0.82,
			AlternativeHypotheses: []agents.AlternativeHypothesis{
				{Hypothesis: "domestic signaling", Likelihood: 0.3},
				{Hypothesis: "coerced reaction", Likelihood: 0.2},
			},
		}
	case agents.TaskChainAnalysis:
		return &agents.ChainAnalysisOutput{
			Orders: []agents.ChainOrder{
				{Order: 1, Effect: "e1", Confidence: 0.85},
				{Order: 2, Effect: "e2", Confidence: 0.75},
				{Order: 3, Effect: "e3", Confidence: 0.65},
				{Order: 4, Effect: "e4", Confidence: 0.5},
			},
			Confidence: 0.8,
		}
	case agents.TaskSubtletyAnalysis:
		return &agents.SubtletyAnalysisOutput{
			Signals:    []agents.SubtleSignal{{Observation: "quiet signal", WhyItMatters: "matters", Confidence: 0.7}},
			Confidence: 0.75,
		}
	case agents.TaskTheoryApplication:
		return &agents.TheoryApplicationOutput{
			Readings: []agents.TheoryReading{
				{Framework: "realism", Reading: "r", Fit: 0.8},
				{Framework: "constructivism", Reading: "c", Fit: 0.5},
			},
			BestFit: "realism", Confidence: 0.8,
		}
	case agents.TaskHistoricalAnalogy:
		return &agents.HistoricalAnalogyOutput{
			Analogies: []agents.Analogy{{
				Episode: "1970s precedent", Parallels: []string{"p"}, Disanalogies: []string{"d"}, Strength: 0.6,
			}},
			Lesson: "lesson", Confidence: 0.75,
		}
	case agents.TaskStrategicGeometry:
		return &agents.StrategicGeometryOutput{
			Alignments: []string{"bloc shift"}, Leverage: []string{"energy"},
			NetShift: "A gains", Confidence: 0.75,
		}
	case agents.TaskShockwaveProjection:
		return &agents.ShockwaveProjectionOutput{
			Shockwaves: []agents.Shockwave{
				{Zone: "zone-2", Domain: "energy", Effect: "supply risk", Horizon: "weeks", Likelihood: 0.6},
			},
			Confidence: 0.7,
		}
	case agents.TaskUncertaintyMapping:
		return &agents.UncertaintyMappingOutput{
			KnownUnknowns:     []agents.KnownUnknown{{Question: "q1", Impact: "high"}},
			OverallConfidence: 0.78,
		}
	case agents.TaskFactCheck:
		return &agents.FactCheckOutput{
			Claims: []agents.CheckedClaim{{Claim: "fact one", Status: "supported"}},
			Score:  0.9,
		}
	case agents.TaskSourceVerification:
		return &agents.SourceVerificationOutput{
			Assessments: []agents.SourceAssessment{{Source: "reuters", Reliability: 0.9}},
			Independent: 2, Score: 0.85,
		}
	case agents.TaskDebateAdvocate:
		out := &agents.AdvocateOutput{Defense: "defense"}
		if in.Transcript != nil {
			for _, r := range in.Transcript.Rounds {
				for _, ch := range r.Challenges {
					out.Responses = append(out.Responses, models.ChallengeResponse{
						ChallengeID: ch.ID, Kind: models.ResponseRebut, Text: "rebutted",
					})
				}
			}
		}
		return out
	case agents.TaskDebateChallenger:
		return &agents.ChallengerOutput{} // no challenges — clean analysis
	case agents.TaskDebateJudge:
		return &agents.JudgeOutput{ConfidenceAdjustment: 0.0, Verdict: models.VerdictSound}
	case agents.TaskArticleWrite, agents.TaskVoiceCalibrate, agents.TaskRevise:
		return &agents.ArticleDraft{Text: strings.Repeat("substantive analytical prose ", 80)}
	case agents.TaskSelfCritique:
		return &agents.SelfCritiqueOutput{OverallScore: 0.9, ReadyToShip: true}
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Harness
// ────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: &config.PipelineConfig{
			Gates: map[string]config.GateConfig{
				"1": {Threshold: 0.75, RetryBand: 0.05},
				"2": {Threshold: 0.80, RetryBand: 0.05},
				"3": {Threshold: 0.80, RetryBand: 0.05},
				"4": {Threshold: 0.85, RetryBand: 0.05},
			},
			Gate3StrictThreshold:    0.85,
			MaxRetriesPerPass:       2,
			MaxRevisionCycles:       2,
			WordCountMin:            10,
			WordCountMax:            100000,
			ConfidenceDecayPerOrder: 0.85,
		},
		Debate: &config.DebateConfig{Rounds: 3, MaxPositiveAdjustment: 0.2, MaxNegativeAdjustment: 0.5},
		Timeouts: &config.TimeoutsConfig{
			Agent: time.Minute, Stage: 2 * time.Minute, Story: 5 * time.Minute,
		},
		Concurrency: &config.ConcurrencyConfig{MaxConcurrentStories: 5, MaxConcurrentAgentsPerStory: 4},
		Escalation: &config.EscalationConfig{
			ConfidenceThreshold:   0.70,
			VerificationThreshold: 0.70,
			ZonesAffectedMin:      5,
			NoveltyMin:            8,
			HeadsOfStateMin:       3,
			ReviewDue:             6 * time.Hour,
			Triggers: []config.EscalationTrigger{
				{Name: config.TriggerConfidenceBelowThreshold, Severity: config.SeverityHigh},
				{Name: config.TriggerUnresolvedCriticalDebate, Severity: config.SeverityCritical},
				{Name: config.TriggerGateFailureMaxRetries, Severity: config.SeverityHigh},
				{Name: config.TriggerCounterConsensus, Severity: config.SeverityMedium},
			},
		},
	}
}

func newHarness(t *testing.T, runner Runner) (*Orchestrator, *fakeStores, *memEscalationStore, *taskRunner) {
	t.Helper()
	cfg := testConfig()
	stores := newFakeStores()
	escStore := &memEscalationStore{}
	tr, _ := runner.(*taskRunner)

	deb := debate.New(runner, cfg.Debate, cfg.Pipeline.ConfidenceDecayPerOrder)
	escalator := escalation.NewManager(cfg.Escalation, escStore)
	articles := &fakeArticles{articles: []agent.SourceArticle{
		{ID: "a1", SourceName: "reuters", Content: "text one"},
		{ID: "a2", SourceName: "ap", Content: "text two"},
	}}

	o := New(cfg, runner, deb, stores, articles, escalator, nil)
	return o, stores, escStore, tr
}

func testJob() StoryJob {
	return StoryJob{
		ID:               "s1",
		RunID:            "r1",
		EditionID:        "e1",
		Headline:         "Border incident escalates",
		PrimaryZone:      "eastern-europe",
		SourceArticleIDs: []string{"a1", "a2"},
		StartPass:        1,
		RetryCounts:      map[int]int{},
	}
}

// ────────────────────────────────────────────────────────────
// Scenarios
// ────────────────────────────────────────────────────────────

// Happy path: all four gates pass first try, debate seals SOUND, story ends
// ready for publication with consistent cost accounting.
func TestExecuteStoryHappyPath(t *testing.T) {
	runner := &taskRunner{}
	o, stores, escStore, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())

	require.Equal(t, StatusReadyForPublication, res.Status)
	assert.NotEmpty(t, res.FinalArticle)
	assert.Empty(t, escStore.requests)

	for pass := 1; pass <= 4; pass++ {
		assert.Equal(t, models.GateOutcomePass, stores.gates[pass], "gate %d", pass)
		assert.GreaterOrEqual(t, res.QualityScores[pass], 0.75)
	}

	require.NotNil(t, stores.transcript)
	require.NotNil(t, stores.transcript.Judgment)
	assert.True(t, stores.transcript.Judgment.Verdict.Acceptable())

	// total cost equals the sum of per-pass costs
	var total float64
	for _, c := range res.CostByPass {
		total += c
	}
	assert.InDelta(t, total, res.TotalCost(), 1e-9)
	assert.Greater(t, total, 0.0)
}

// Empty source article list fails Pass 1 validation with the no_events reason.
func TestExecuteStoryNoArticlesAborts(t *testing.T) {
	runner := &taskRunner{}
	cfg := testConfig()
	stores := newFakeStores()
	deb := debate.New(runner, cfg.Debate, 0.85)
	escalator := escalation.NewManager(cfg.Escalation, &memEscalationStore{})
	o := New(cfg, runner, deb, stores, &fakeArticles{}, escalator, nil)

	res := o.ExecuteStory(context.Background(), testJob())
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, ReasonNoEvents, res.AbortReason)
}

// Low-confidence core analysis: Gate 2 retries the weakest agents with
// critique feedback, then escalates when retries don't lift the score.
func TestExecuteStoryLowConfidenceEscalates(t *testing.T) {
	runner := &taskRunner{
		quality: map[string]float64{agents.TaskMotivationAnalysis: 0.55},
	}
	o, stores, escStore, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())

	require.Equal(t, StatusEscalated, res.Status)
	assert.Equal(t, "esc-1", res.EscalationID)
	assert.Equal(t, models.GateOutcomeEscalate, stores.gates[2])

	// Both retries consumed, flagged
	retried := 0
	for _, f := range res.Flags {
		if strings.HasPrefix(f, "gate2_retry_") {
			retried++
		}
	}
	assert.Equal(t, 2, retried)

	// Motivation re-ran with critique: initial + 2 retries
	assert.Equal(t, 3, runner.callCount(agents.TaskMotivationAnalysis))

	// Escalation package carries triggers and the bundle snapshot hash
	require.Len(t, escStore.requests, 1)
	req := escStore.requests[0]
	assert.Contains(t, req.Triggers, config.TriggerGateFailureMaxRetries)
	assert.NotEmpty(t, req.BundleHash)
	assert.NotEmpty(t, req.Package.AnalysisChain)
}

// Gate retries pass critique feedback to the re-run agents.
func TestGateRetryCarriesCritique(t *testing.T) {
	sawCritique := false
	var mu sync.Mutex
	runner := &taskRunner{}
	runner.quality = map[string]float64{agents.TaskSubtletyAnalysis: 0.55}
	runner.overrides = map[string]func(agent.Input) agent.Result{
		agents.TaskSubtletyAnalysis: func(in agent.Input) agent.Result {
			mu.Lock()
			if in.Critique != "" {
				sawCritique = true
			}
			mu.Unlock()
			q := 0.55
			if in.Critique != "" {
				q = 0.95 // the retry fixes it
			}
			return agent.Result{
				Success:  true,
				Output:   cannedOutput(agents.TaskSubtletyAnalysis, in),
				Metadata: agent.Metadata{QualityScore: q, CostUSD: 0.02},
			}
		},
	}
	o, stores, _, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())
	require.Equal(t, StatusReadyForPublication, res.Status)
	assert.True(t, sawCritique)
	assert.Equal(t, models.GateOutcomePass, stores.gates[2])
}

// A failed agent in a parallel group degrades the gate score without failing
// its peers; the near-miss band turns it into a retry.
func TestFailedPeerDegradesWithoutAborting(t *testing.T) {
	failOnce := true
	var mu sync.Mutex
	runner := &taskRunner{}
	runner.overrides = map[string]func(agent.Input) agent.Result{
		agents.TaskContextAnalysis: func(in agent.Input) agent.Result {
			mu.Lock()
			defer mu.Unlock()
			if failOnce {
				failOnce = false
				return agent.Result{Success: false, Err: &agent.Failure{Kind: agent.ErrTimeout, Message: "slow"}}
			}
			return agent.Result{
				Success:  true,
				Output:   cannedOutput(agents.TaskContextAnalysis, in),
				Metadata: agent.Metadata{QualityScore: 0.9, CostUSD: 0.02},
			}
		},
	}
	o, stores, _, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())
	require.Equal(t, StatusReadyForPublication, res.Status)
	// Pass 1 needed a retry (score 0.6 with one failure), then recovered
	assert.Equal(t, models.GateOutcomePass, stores.gates[1])
	found := false
	for _, f := range res.Flags {
		if strings.HasPrefix(f, "gate1_retry_") {
			found = true
		}
	}
	assert.True(t, found)
}

// Cancel requests are honored between stages.
func TestExecuteStoryCancelledBetweenStages(t *testing.T) {
	runner := &taskRunner{}
	o, stores, _, _ := newHarness(t, runner)
	stores.cancelling = true

	res := o.ExecuteStory(context.Background(), testJob())
	assert.Equal(t, StatusCancelled, res.Status)
}

// Unresolved critical debate issues keep Gate 3 from passing and escalate
// with the unresolved_critical_debate trigger.
func TestUnresolvedCriticalDebateEscalates(t *testing.T) {
	runner := &taskRunner{}
	runner.overrides = map[string]func(agent.Input) agent.Result{
		agents.TaskDebateChallenger: func(in agent.Input) agent.Result {
			return agent.Result{Success: true, Output: &agents.ChallengerOutput{
				Challenges: []models.Challenge{{
					Type: models.ChallengeOverconfidence, Severity: models.ChallengeSeverityCritical,
					Passage: "para 1", Text: "unsupported leap",
				}},
			}, Metadata: agent.Metadata{QualityScore: 1, CostUSD: 0.01}}
		},
		agents.TaskDebateAdvocate: func(in agent.Input) agent.Result {
			// Advocate never responds — challenges stay open pre-judgment,
			// sustained without modification post-judgment.
			return agent.Result{Success: true, Output: &agents.AdvocateOutput{Defense: "weak defense"},
				Metadata: agent.Metadata{QualityScore: 1, CostUSD: 0.01}}
		},
		agents.TaskDebateJudge: func(in agent.Input) agent.Result {
			rulings := make([]models.Ruling, 0)
			for _, ch := range in.Transcript.AllChallenges() {
				rulings = append(rulings, models.Ruling{ChallengeID: ch.ID, Kind: models.RulingSustained})
			}
			return agent.Result{Success: true, Output: &agents.JudgeOutput{
				Rulings: rulings, ConfidenceAdjustment: -0.3, Verdict: models.VerdictSound,
			}, Metadata: agent.Metadata{QualityScore: 1, CostUSD: 0.01}}
		},
	}
	o, _, escStore, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())
	require.Equal(t, StatusEscalated, res.Status)
	require.Len(t, escStore.requests, 1)
	assert.Contains(t, escStore.requests[0].Triggers, config.TriggerUnresolvedCriticalDebate)
}

// A story that clears every gate can still escalate on the final trigger
// sweep (counter-consensus signal).
func TestFinalSweepEscalatesCounterConsensus(t *testing.T) {
	runner := &taskRunner{}
	o, _, escStore, _ := newHarness(t, runner)

	job := testJob()
	job.SignalType = "COUNTER_CONSENSUS"

	res := o.ExecuteStory(context.Background(), job)
	require.Equal(t, StatusEscalated, res.Status)
	require.Len(t, escStore.requests, 1)
	assert.Contains(t, escStore.requests[0].Triggers, config.TriggerCounterConsensus)
}

// Published stories satisfy the terminal invariant: all four gates recorded
// PASS and all four pass outputs present (P2).
func TestTerminalInvariantAllGatesAndOutputs(t *testing.T) {
	runner := &taskRunner{}
	o, stores, _, _ := newHarness(t, runner)

	res := o.ExecuteStory(context.Background(), testJob())
	require.Equal(t, StatusReadyForPublication, res.Status)
	for pass := 1; pass <= 4; pass++ {
		assert.True(t, stores.gates[pass].Passed(), "gate %d recorded %s", pass, stores.gates[pass])
		assert.Contains(t, res.QualityScores, pass)
	}
}
