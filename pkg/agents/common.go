// Package agents defines the concrete analytical units of the four-pass
// pipeline. Each agent declares its task, prompt, output schema, and quality
// self-assessment; execution always goes through the agent runtime.
package agents

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// Canonical task names. Stable identifiers: routing, caching, the ledger,
// and gate retry targeting all key off these.
const (
	TaskFactualReconstruction = "factual_reconstruction"
	TaskContextAnalysis       = "context_analysis"
	TaskActorAnalysis         = "actor_analysis"

	TaskMotivationAnalysis = "motivation_analysis"
	TaskChainAnalysis      = "chain_analysis"
	TaskSubtletyAnalysis   = "subtlety_analysis"

	TaskTheoryApplication   = "theory_application"
	TaskHistoricalAnalogy   = "historical_analogy"
	TaskStrategicGeometry   = "strategic_geometry"
	TaskShockwaveProjection = "shockwave_projection"
	TaskUncertaintyMapping  = "uncertainty_mapping"

	TaskDebateAdvocate     = "debate_advocate"
	TaskDebateChallenger   = "debate_challenger"
	TaskDebateJudge        = "debate_judge"
	TaskFactCheck          = "fact_check"
	TaskSourceVerification = "source_verification"

	TaskArticleWrite   = "article_write"
	TaskVoiceCalibrate = "voice_calibrate"
	TaskSelfCritique   = "self_critique"
	TaskRevise         = "revise"
)

// ErrNoEvents rejects Pass 1 inputs with no source articles.
var ErrNoEvents = errors.New("no_events: story has no source articles")

// base carries the declarative half of an agent. Concrete agents embed it
// and add ValidateInput / BuildMessages / ParseOutput / AssessQuality.
type base struct {
	task    string
	version string
	kind    config.CacheKind
	tier    config.Tier
	format  llm.ResponseFormat
}

func (b base) TaskName() string                   { return b.task }
func (b base) Version() string                    { return b.version }
func (b base) CacheKind() config.CacheKind        { return b.kind }
func (b base) TierOverride() config.Tier          { return b.tier }
func (b base) ResponseFormat() llm.ResponseFormat { return b.format }

// promptVersion is bumped when any agent prompt or schema changes in a way
// that must invalidate cached responses.
const promptVersion = "2026-07-14"

// analysisBase builds the base for a JSON analytical agent.
func analysisBase(task string) base {
	return base{
		task:    task,
		version: promptVersion,
		kind:    config.CacheKindAnalysis,
		format:  llm.ResponseFormatJSON,
	}
}

// verificationBase builds the base for a verification-class agent.
func verificationBase(task string) base {
	return base{
		task:    task,
		version: promptVersion,
		kind:    config.CacheKindVerification,
		format:  llm.ResponseFormatJSON,
	}
}

// productionBase builds the base for a prose-producing agent. Production
// responses are never cached.
func productionBase(task string, format llm.ResponseFormat) base {
	return base{
		task:    task,
		version: promptVersion,
		kind:    config.CacheKindProduction,
		format:  format,
	}
}

// ExtractJSON locates the JSON object in model output, tolerating code
// fences and prose preambles.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// Strip a fenced block if present
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			s = strings.TrimSpace(rest[:end])
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in output")
	}
	return s[start : end+1], nil
}

// parseJSON decodes the JSON object in raw into T.
func parseJSON[T any](raw string) (*T, error) {
	extracted, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal([]byte(extracted), &v); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return &v, nil
}

// requireBundle fetches a prior output or errors with the missing key.
func requireBundle(in agent.Input, pass int, stage string) (agent.Output, error) {
	if in.Bundle == nil {
		return nil, fmt.Errorf("missing analysis bundle")
	}
	out, ok := in.Bundle.Get(pass, stage)
	if !ok {
		return nil, fmt.Errorf("missing prior output %s", agent.Key(pass, stage))
	}
	return out, nil
}

// formatArticles renders source articles for Pass 1 prompts.
func formatArticles(articles []agent.SourceArticle) string {
	var sb strings.Builder
	for i, a := range articles {
		fmt.Fprintf(&sb, "--- Article %d (%s, %s, published %s) ---\n%s\n\n",
			i+1, a.SourceName, a.URL, a.PublishedAt, a.Content)
	}
	return sb.String()
}

// bundleJSON renders a prior output as compact JSON for prompt context.
func bundleJSON(in agent.Input, pass int, stage string) string {
	out, err := requireBundle(in, pass, stage)
	if err != nil {
		return "(unavailable)"
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "(unavailable)"
	}
	return string(raw)
}

// critiqueSection renders gate-retry feedback for re-runs, empty otherwise.
func critiqueSection(in agent.Input) string {
	if in.Critique == "" {
		return ""
	}
	return "\n\nA previous attempt was rejected by review with this critique; address it directly:\n" + in.Critique
}

// weightedScore computes a quality score from dimension scores and weights.
// Weights need not sum to 1; the result is normalized and clamped to [0,1].
func weightedScore(dimensions map[string]float64, weights map[string]float64) float64 {
	var total, weightSum float64
	for name, w := range weights {
		total += dimensions[name] * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	score := total / weightSum
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// ratio returns min(n/target, 1) — a saturating completeness dimension.
func ratio(n, target int) float64 {
	if target <= 0 || n >= target {
		return 1
	}
	if n <= 0 {
		return 0
	}
	return float64(n) / float64(target)
}
