package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/models"
)

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		Gates: map[string]config.GateConfig{
			"1": {Threshold: 0.75, RetryBand: 0.05},
			"2": {Threshold: 0.80, RetryBand: 0.05},
			"3": {Threshold: 0.80, RetryBand: 0.05},
			"4": {Threshold: 0.85, RetryBand: 0.05},
		},
		Gate3StrictThreshold:    0.85,
		MaxRetriesPerPass:       2,
		WordCountMin:            5,
		WordCountMax:            10000,
		ForbiddenPhrases:        []string{"only time will tell"},
		ConfidenceDecayPerOrder: 0.85,
	}
}

func resultWithScore(score float64) agent.Result {
	return agent.Result{Success: true, Metadata: agent.Metadata{QualityScore: score}}
}

func pass1Bundle(t *testing.T) *agent.Bundle {
	t.Helper()
	b := agent.NewBundle()
	require.NoError(t, b.Put(1, agents.TaskFactualReconstruction, &agents.FactualReconstructionOutput{
		Timeline:   []agents.TimelineEvent{{Date: "2026-07-01", Description: "event", Sources: []string{"reuters"}}},
		KeyFacts:   []agents.KeyFact{{Fact: "f1", Sources: []string{"reuters"}, Confidence: 0.9}},
		Confidence: 0.9,
	}))
	require.NoError(t, b.Put(1, agents.TaskContextAnalysis, &agents.ContextAnalysisOutput{
		RegionalBackground: "bg", HistoricalBackdrop: "hist", Confidence: 0.85,
	}))
	require.NoError(t, b.Put(1, agents.TaskActorAnalysis, &agents.ActorAnalysisOutput{
		Actors: []agents.Actor{{Name: "State A", Kind: "state", Role: "initiator"}}, Confidence: 0.85,
	}))
	return b
}

func pass1Results(score float64) map[string]agent.Result {
	return map[string]agent.Result{
		agents.TaskFactualReconstruction: resultWithScore(score),
		agents.TaskContextAnalysis:       resultWithScore(score),
		agents.TaskActorAnalysis:         resultWithScore(score),
	}
}

func TestGateExactlyAtThresholdPasses(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	result := g.evaluate(gateContext{
		pass:       1,
		results:    pass1Results(0.75), // exactly at threshold
		bundle:     pass1Bundle(t),
		retriesMax: 2,
	})
	assert.Equal(t, models.GateOutcomePass, result.Outcome)
	assert.InDelta(t, 0.75, result.Score, 1e-9)
}

func TestGateNearMissYieldsRetryWithCritique(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	result := g.evaluate(gateContext{
		pass:       1,
		results:    pass1Results(0.72), // within threshold-0.05 band
		bundle:     pass1Bundle(t),
		retriesMax: 2,
	})
	assert.Equal(t, models.GateOutcomeRetry, result.Outcome)
	assert.NotEmpty(t, result.Critique)
	assert.NotEmpty(t, result.WeakestTasks)
}

func TestGateRetriesExhaustedEscalates(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	result := g.evaluate(gateContext{
		pass:        1,
		results:     pass1Results(0.72),
		bundle:      pass1Bundle(t),
		retriesUsed: 2,
		retriesMax:  2,
	})
	assert.Equal(t, models.GateOutcomeEscalate, result.Outcome)
}

func TestGateWellBelowBandEscalates(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	result := g.evaluate(gateContext{
		pass:       1,
		results:    pass1Results(0.4),
		bundle:     pass1Bundle(t),
		retriesMax: 2,
	})
	assert.Equal(t, models.GateOutcomeEscalate, result.Outcome)
}

func TestGateAbortsWhenEveryAgentFailed(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	failed := map[string]agent.Result{
		agents.TaskFactualReconstruction: {Success: false},
		agents.TaskContextAnalysis:       {Success: false},
		agents.TaskActorAnalysis:         {Success: false},
	}
	result := g.evaluate(gateContext{
		pass:       1,
		results:    failed,
		bundle:     agent.NewBundle(),
		retriesMax: 2,
	})
	assert.Equal(t, models.GateOutcomeAbort, result.Outcome)
}

func TestGateMissingAgentCountsAsZero(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	partial := map[string]agent.Result{
		agents.TaskFactualReconstruction: resultWithScore(0.9),
		agents.TaskContextAnalysis:       resultWithScore(0.9),
		// actor_analysis missing entirely (stage timeout)
	}
	result := g.evaluate(gateContext{
		pass:       1,
		results:    partial,
		bundle:     pass1Bundle(t),
		retriesMax: 2,
	})
	assert.InDelta(t, 0.6, result.Score, 1e-9)
	assert.Equal(t, agents.TaskActorAnalysis, result.WeakestTasks[0])
}

func TestGate2RequiredComponents(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	b := agent.NewBundle()
	require.NoError(t, b.Put(2, agents.TaskMotivationAnalysis, &agents.MotivationAnalysisOutput{
		Stated:        agents.MotivationLayer{Assessment: "a", Confidence: 0.8},
		Strategic:     agents.MotivationLayer{Assessment: "b", Confidence: 0.8},
		Domestic:      agents.MotivationLayer{Assessment: "c", Confidence: 0.8},
		Psychological: agents.MotivationLayer{Assessment: "d", Confidence: 0.8},
		PrimaryDriver: "driver", PrimaryDriverConfidence: 0.85,
		AlternativeHypotheses: []agents.AlternativeHypothesis{{Hypothesis: "h1", Likelihood: 0.3}},
	}))
	// Chain only 3 orders deep — below the required 4
	require.NoError(t, b.Put(2, agents.TaskChainAnalysis, &agents.ChainAnalysisOutput{
		Orders: []agents.ChainOrder{
			{Order: 1, Effect: "e1", Confidence: 0.8},
			{Order: 2, Effect: "e2", Confidence: 0.7},
			{Order: 3, Effect: "e3", Confidence: 0.6},
		},
		Confidence: 0.7,
	}))

	results := map[string]agent.Result{
		agents.TaskMotivationAnalysis: resultWithScore(0.9),
		agents.TaskChainAnalysis:      resultWithScore(0.9),
		agents.TaskSubtletyAnalysis:   resultWithScore(0.9),
	}
	result := g.evaluate(gateContext{pass: 2, results: results, bundle: b, retriesMax: 2})

	assert.Equal(t, models.GateOutcomeRetry, result.Outcome)
	assert.Contains(t, result.MissingComponents, "chain_depth")
	assert.Contains(t, result.MissingComponents, "alternative_hypotheses")
}

func TestGate3RequiresAcceptableVerdictAndNoOpenCriticals(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	results := map[string]agent.Result{
		agents.TaskUncertaintyMapping: resultWithScore(0.9),
		agents.TaskFactCheck:          resultWithScore(0.9),
	}

	// Unsealed transcript → missing verdict
	result := g.evaluate(gateContext{
		pass: 3, results: results, bundle: agent.NewBundle(),
		transcript: &models.Transcript{}, retriesUsed: 2, retriesMax: 2,
		expectedTasks: []string{agents.TaskUncertaintyMapping, agents.TaskFactCheck},
	})
	assert.NotEqual(t, models.GateOutcomePass, result.Outcome)
	assert.Contains(t, result.MissingComponents, "debate_verdict")

	// Sealed SOUND transcript passes
	sealed := &models.Transcript{
		Judgment: &models.Judgment{Verdict: models.VerdictSound},
	}
	result = g.evaluate(gateContext{
		pass: 3, results: results, bundle: agent.NewBundle(),
		transcript: sealed, retriesMax: 2,
		expectedTasks: []string{agents.TaskUncertaintyMapping, agents.TaskFactCheck},
	})
	assert.Equal(t, models.GateOutcomePass, result.Outcome)
}

func TestGate3StrictModeRaisesThreshold(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.StrictMode = true
	g := gateEvaluator{cfg: cfg}

	sealed := &models.Transcript{Judgment: &models.Judgment{Verdict: models.VerdictSound}}
	results := map[string]agent.Result{
		agents.TaskUncertaintyMapping: resultWithScore(0.82),
		agents.TaskFactCheck:          resultWithScore(0.82),
	}
	result := g.evaluate(gateContext{
		pass: 3, results: results, bundle: agent.NewBundle(),
		transcript: sealed, retriesMax: 2,
		expectedTasks: []string{agents.TaskUncertaintyMapping, agents.TaskFactCheck},
	})
	// 0.82 passes at 0.80 but not at the strict 0.85
	assert.NotEqual(t, models.GateOutcomePass, result.Outcome)
}

func TestGate4ForbiddenPhraseAndWordCount(t *testing.T) {
	g := gateEvaluator{cfg: testPipelineConfig()}
	results := map[string]agent.Result{
		agents.TaskArticleWrite:   resultWithScore(0.95),
		agents.TaskVoiceCalibrate: resultWithScore(0.95),
		agents.TaskSelfCritique:   resultWithScore(0.95),
	}

	result := g.evaluate(gateContext{
		pass: 4, results: results, bundle: agent.NewBundle(),
		finalDraft:  "In the end only time will tell what happens next here",
		retriesUsed: 2, retriesMax: 2,
	})
	assert.Contains(t, result.MissingComponents, "forbidden_phrase")
	assert.NotEqual(t, models.GateOutcomePass, result.Outcome)

	result = g.evaluate(gateContext{
		pass: 4, results: results, bundle: agent.NewBundle(),
		finalDraft: "too short", retriesUsed: 2, retriesMax: 2,
	})
	assert.Contains(t, result.MissingComponents, "word_count_low")

	result = g.evaluate(gateContext{
		pass: 4, results: results, bundle: agent.NewBundle(),
		finalDraft: "a long enough clean draft about regional dynamics and consequences",
		retriesMax: 2,
	})
	assert.Equal(t, models.GateOutcomePass, result.Outcome)
}
