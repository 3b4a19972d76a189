package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/models"
)

// passTasks lists the tasks whose quality scores feed each gate. A task that
// produced no successful result counts as zero.
var passTasks = map[int][]string{
	1: {agents.TaskFactualReconstruction, agents.TaskContextAnalysis, agents.TaskActorAnalysis},
	2: {agents.TaskMotivationAnalysis, agents.TaskChainAnalysis, agents.TaskSubtletyAnalysis},
	3: {
		agents.TaskTheoryApplication, agents.TaskHistoricalAnalogy, agents.TaskStrategicGeometry,
		agents.TaskShockwaveProjection, agents.TaskUncertaintyMapping,
		agents.TaskFactCheck, agents.TaskSourceVerification,
	},
	4: {agents.TaskArticleWrite, agents.TaskVoiceCalibrate, agents.TaskSelfCritique},
}

// gateEvaluator scores a finalized pass against its gate.
type gateEvaluator struct {
	cfg *config.PipelineConfig
}

// gateContext carries everything a gate evaluation can see.
type gateContext struct {
	pass        int
	results     map[string]agent.Result // task → latest result for this pass
	bundle      *agent.Bundle
	transcript  *models.Transcript // pass 3 only
	finalDraft  string             // pass 4 only
	retriesUsed int
	retriesMax  int

	// expectedTasks overrides passTasks (early-terminated pass 3)
	expectedTasks []string
}

// evaluate computes the weighted score, checks required components, and
// decides the outcome. Exactly-at-threshold scores PASS (inequality is >=).
func (g *gateEvaluator) evaluate(gc gateContext) models.GateResult {
	gate := g.cfg.GateFor(gc.pass)

	expected := gc.expectedTasks
	if expected == nil {
		expected = passTasks[gc.pass]
	}

	score := g.score(expected, gc.results)
	missing := g.requiredComponents(gc)

	result := models.GateResult{
		Pass:              gc.pass,
		Score:             score,
		MissingComponents: missing,
		WeakestTasks:      weakestTasks(expected, gc.results),
	}

	switch {
	case score >= gate.Threshold && len(missing) == 0:
		result.Outcome = models.GateOutcomePass
	case gc.results == nil || allFailed(expected, gc.results):
		result.Outcome = models.GateOutcomeAbort
	case gc.retriesUsed < gc.retriesMax &&
		(score >= gate.Threshold-gate.RetryBand || len(missing) > 0 || anySucceededMissing(expected, gc.results)):
		result.Outcome = models.GateOutcomeRetry
		result.Critique = buildCritique(result)
	default:
		result.Outcome = models.GateOutcomeEscalate
	}
	return result
}

// score is the mean quality score over expected tasks; absent or failed
// tasks count as zero.
func (g *gateEvaluator) score(expected []string, results map[string]agent.Result) float64 {
	if len(expected) == 0 {
		return 0
	}
	var total float64
	for _, task := range expected {
		if r, ok := results[task]; ok && r.Success {
			total += r.Metadata.QualityScore
		}
	}
	return total / float64(len(expected))
}

// requiredComponents checks the gate's structural requirements against the
// typed bundle outputs.
func (g *gateEvaluator) requiredComponents(gc gateContext) []string {
	var missing []string
	switch gc.pass {
	case 1:
		if out, ok := typedOutput[*agents.FactualReconstructionOutput](gc.bundle, 1, agents.TaskFactualReconstruction); ok {
			if len(out.Timeline) == 0 {
				missing = append(missing, "timeline_empty")
			}
			for i, f := range out.KeyFacts {
				if len(f.Sources) == 0 {
					missing = append(missing, fmt.Sprintf("key_fact_%d_unsourced", i))
					break
				}
			}
		} else {
			missing = append(missing, "factual_reconstruction")
		}
		if out, ok := typedOutput[*agents.ActorAnalysisOutput](gc.bundle, 1, agents.TaskActorAnalysis); !ok || len(out.Actors) == 0 {
			missing = append(missing, "identified_actors")
		}
	case 2:
		if out, ok := typedOutput[*agents.MotivationAnalysisOutput](gc.bundle, 2, agents.TaskMotivationAnalysis); ok {
			if out.LayersFilled() < 4 {
				missing = append(missing, "motivation_layers")
			}
			if len(out.AlternativeHypotheses) < 2 {
				missing = append(missing, "alternative_hypotheses")
			}
		} else {
			missing = append(missing, "motivation_analysis")
		}
		if out, ok := typedOutput[*agents.ChainAnalysisOutput](gc.bundle, 2, agents.TaskChainAnalysis); !ok || out.Depth() < 4 {
			missing = append(missing, "chain_depth")
		}
	case 3:
		if gc.transcript == nil || gc.transcript.Judgment == nil {
			missing = append(missing, "debate_verdict")
			break
		}
		if !gc.transcript.Judgment.Verdict.Acceptable() {
			missing = append(missing, "debate_verdict")
		}
		if n := len(gc.transcript.OpenCriticalChallenges()); n > 0 {
			missing = append(missing, fmt.Sprintf("unresolved_critical_issues_%d", n))
		}
	case 4:
		words := len(strings.Fields(gc.finalDraft))
		if g.cfg.WordCountMin > 0 && words < g.cfg.WordCountMin {
			missing = append(missing, "word_count_low")
		}
		if g.cfg.WordCountMax > 0 && words > g.cfg.WordCountMax {
			missing = append(missing, "word_count_high")
		}
		lower := strings.ToLower(gc.finalDraft)
		for _, phrase := range g.cfg.ForbiddenPhrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				missing = append(missing, "forbidden_phrase")
				break
			}
		}
	}
	return missing
}

// typedOutput fetches a bundle output with its concrete type. Restored
// RawOutput values (resume in a fresh process) pass structural checks, since
// they were validated before persistence.
func typedOutput[T any](bundle *agent.Bundle, pass int, stage string) (T, bool) {
	var zero T
	if bundle == nil {
		return zero, false
	}
	out, ok := bundle.Get(pass, stage)
	if !ok {
		return zero, false
	}
	typed, ok := out.(T)
	return typed, ok
}

// weakestTasks ranks expected tasks ascending by quality score; failed or
// absent tasks come first.
func weakestTasks(expected []string, results map[string]agent.Result) []string {
	type scored struct {
		task  string
		score float64
	}
	ranked := make([]scored, 0, len(expected))
	for _, task := range expected {
		s := 0.0
		if r, ok := results[task]; ok && r.Success {
			s = r.Metadata.QualityScore
		}
		ranked = append(ranked, scored{task, s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score < ranked[j].score })

	tasks := make([]string, len(ranked))
	for i, s := range ranked {
		tasks[i] = s.task
	}
	return tasks
}

// anySucceededMissing reports whether some (but not all) expected tasks lack
// a successful result. A transiently failed agent is by definition the
// weakest; it gets retried rather than escalating the story outright.
func anySucceededMissing(expected []string, results map[string]agent.Result) bool {
	failed := 0
	for _, task := range expected {
		if r, ok := results[task]; !ok || !r.Success {
			failed++
		}
	}
	return failed > 0 && failed < len(expected)
}

// allFailed reports whether no expected task produced a successful result.
func allFailed(expected []string, results map[string]agent.Result) bool {
	for _, task := range expected {
		if r, ok := results[task]; ok && r.Success {
			return false
		}
	}
	return true
}

// buildCritique composes the retry feedback handed to re-run agents.
func buildCritique(result models.GateResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pass %d scored %.2f, below the quality bar.", result.Pass, result.Score)
	if len(result.MissingComponents) > 0 {
		fmt.Fprintf(&sb, " Missing required components: %s.", strings.Join(result.MissingComponents, ", "))
	}
	if len(result.WeakestTasks) > 0 {
		limit := min(2, len(result.WeakestTasks))
		fmt.Fprintf(&sb, " Weakest areas: %s. Deepen the evidence and sharpen the reasoning there.",
			strings.Join(result.WeakestTasks[:limit], ", "))
	}
	return sb.String()
}
