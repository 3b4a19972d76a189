package agents

import (
	"fmt"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// motivation_analysis
// ────────────────────────────────────────────────────────────

// MotivationLayer is one of the four motivation layers.
type MotivationLayer struct {
	Assessment string   `json:"assessment"`
	Evidence   []string `json:"evidence,omitempty"`
	Confidence float64  `json:"confidence"`
}

// AlternativeHypothesis is a competing explanation with its likelihood.
type AlternativeHypothesis struct {
	Hypothesis string  `json:"hypothesis"`
	Likelihood float64 `json:"likelihood"`
}

// MotivationAnalysisOutput is the four-layer motivation model: what actors
// say, what serves their strategy, what domestic politics demands, and what
// the leader's disposition suggests.
type MotivationAnalysisOutput struct {
	Stated        MotivationLayer `json:"stated"`
	Strategic     MotivationLayer `json:"strategic"`
	Domestic      MotivationLayer `json:"domestic"`
	Psychological MotivationLayer `json:"psychological"`

	PrimaryDriver           string                  `json:"primary_driver"`
	PrimaryDriverConfidence float64                 `json:"primary_driver_confidence"`
	AlternativeHypotheses   []AlternativeHypothesis `json:"alternative_hypotheses"`
}

// Validate checks all four layers are filled.
func (o *MotivationAnalysisOutput) Validate() error {
	layers := map[string]MotivationLayer{
		"stated":        o.Stated,
		"strategic":     o.Strategic,
		"domestic":      o.Domestic,
		"psychological": o.Psychological,
	}
	for name, l := range layers {
		if l.Assessment == "" {
			return fmt.Errorf("motivation layer %q is empty", name)
		}
	}
	if o.PrimaryDriver == "" {
		return fmt.Errorf("primary_driver is empty")
	}
	for i, h := range o.AlternativeHypotheses {
		if h.Hypothesis == "" {
			return fmt.Errorf("alternative_hypotheses[%d] is empty", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *MotivationAnalysisOutput) ConfidenceFields() []*float64 {
	fields := []*float64{
		&o.Stated.Confidence,
		&o.Strategic.Confidence,
		&o.Domestic.Confidence,
		&o.Psychological.Confidence,
		&o.PrimaryDriverConfidence,
	}
	for i := range o.AlternativeHypotheses {
		fields = append(fields, &o.AlternativeHypotheses[i].Likelihood)
	}
	return fields
}

// LayersFilled counts non-empty motivation layers (Gate 2 component).
func (o *MotivationAnalysisOutput) LayersFilled() int {
	n := 0
	for _, l := range []MotivationLayer{o.Stated, o.Strategic, o.Domestic, o.Psychological} {
		if l.Assessment != "" {
			n++
		}
	}
	return n
}

// MotivationAnalysis is the Pass 2 four-layer motivation agent.
type MotivationAnalysis struct{ base }

// NewMotivationAnalysis creates the motivation agent.
func NewMotivationAnalysis() *MotivationAnalysis {
	return &MotivationAnalysis{analysisBase(TaskMotivationAnalysis)}
}

// ValidateInput requires the full Pass 1 foundation.
func (a *MotivationAnalysis) ValidateInput(in agent.Input) error {
	for _, stage := range []string{TaskFactualReconstruction, TaskContextAnalysis, TaskActorAnalysis} {
		if _, err := requireBundle(in, 1, stage); err != nil {
			return err
		}
	}
	return nil
}

// BuildMessages assembles the motivation prompt over the foundation outputs.
func (a *MotivationAnalysis) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: motivationSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(motivationUserPrompt,
			in.Headline,
			bundleJSON(in, 1, TaskFactualReconstruction),
			bundleJSON(in, 1, TaskContextAnalysis),
			bundleJSON(in, 1, TaskActorAnalysis)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *MotivationAnalysis) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[MotivationAnalysisOutput](raw)
}

// AssessQuality weighs layer completeness, hypothesis count, and the primary
// driver's confidence.
func (a *MotivationAnalysis) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*MotivationAnalysisOutput)
	return weightedScore(map[string]float64{
		"layers":     ratio(o.LayersFilled(), 4),
		"hypotheses": ratio(len(o.AlternativeHypotheses), 2),
		"confidence": o.PrimaryDriverConfidence,
	}, map[string]float64{
		"layers":     0.4,
		"hypotheses": 0.25,
		"confidence": 0.35,
	})
}

// ────────────────────────────────────────────────────────────
// chain_analysis
// ────────────────────────────────────────────────────────────

// ChainOrder is one order of consequence in the causal chain.
type ChainOrder struct {
	Order      int     `json:"order"`
	Effect     string  `json:"effect"`
	Mechanism  string  `json:"mechanism,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ChainAnalysisOutput projects the causal chain outward from the event.
type ChainAnalysisOutput struct {
	Orders      []ChainOrder `json:"orders"`
	BreakPoints []string     `json:"break_points,omitempty"`
	Confidence  float64      `json:"confidence"`
}

// Validate checks the chain is ordered and populated.
func (o *ChainAnalysisOutput) Validate() error {
	if len(o.Orders) == 0 {
		return fmt.Errorf("orders is empty")
	}
	for i, ord := range o.Orders {
		if ord.Effect == "" {
			return fmt.Errorf("orders[%d].effect is empty", i)
		}
		if ord.Order != i+1 {
			return fmt.Errorf("orders[%d] has order %d, want %d", i, ord.Order, i+1)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *ChainAnalysisOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.Orders {
		fields = append(fields, &o.Orders[i].Confidence)
	}
	return fields
}

// Depth returns the deepest projected order (Gate 2 component).
func (o *ChainAnalysisOutput) Depth() int {
	return len(o.Orders)
}

// ChainAnalysis is the Pass 2 consequence chain agent. Depends on
// motivation_analysis; runs after it inside the pass.
type ChainAnalysis struct{ base }

// NewChainAnalysis creates the chain agent.
func NewChainAnalysis() *ChainAnalysis {
	return &ChainAnalysis{analysisBase(TaskChainAnalysis)}
}

// ValidateInput requires Pass 1 and the motivation output.
func (a *ChainAnalysis) ValidateInput(in agent.Input) error {
	if _, err := requireBundle(in, 1, TaskFactualReconstruction); err != nil {
		return err
	}
	if _, err := requireBundle(in, 2, TaskMotivationAnalysis); err != nil {
		return err
	}
	return nil
}

// BuildMessages assembles the chain prompt.
func (a *ChainAnalysis) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: chainSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(chainUserPrompt,
			in.Headline,
			bundleJSON(in, 1, TaskFactualReconstruction),
			bundleJSON(in, 2, TaskMotivationAnalysis)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *ChainAnalysis) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[ChainAnalysisOutput](raw)
}

// AssessQuality weighs chain depth and per-order confidence shape: deep
// chains claiming high late-order confidence score worse, not better.
func (a *ChainAnalysis) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*ChainAnalysisOutput)
	calibrated := 1.0
	for i := 1; i < len(o.Orders); i++ {
		if o.Orders[i].Confidence > o.Orders[i-1].Confidence {
			calibrated = 0.5
			break
		}
	}
	return weightedScore(map[string]float64{
		"depth":      ratio(o.Depth(), 4),
		"calibrated": calibrated,
		"confidence": o.Confidence,
	}, map[string]float64{
		"depth":      0.45,
		"calibrated": 0.3,
		"confidence": 0.25,
	})
}

// ────────────────────────────────────────────────────────────
// subtlety_analysis
// ────────────────────────────────────────────────────────────

// SubtleSignal is one under-reported signal worth surfacing.
type SubtleSignal struct {
	Observation  string  `json:"observation"`
	WhyItMatters string  `json:"why_it_matters"`
	Confidence   float64 `json:"confidence"`
}

// SubtletyAnalysisOutput surfaces what the coverage is missing: quiet
// signals, conspicuous absences, timing oddities.
type SubtletyAnalysisOutput struct {
	Signals    []SubtleSignal `json:"signals"`
	Absences   []string       `json:"absences,omitempty"`
	Confidence float64        `json:"confidence"`
}

// Validate checks structural requirements.
func (o *SubtletyAnalysisOutput) Validate() error {
	if len(o.Signals) == 0 {
		return fmt.Errorf("signals is empty")
	}
	for i, s := range o.Signals {
		if s.Observation == "" {
			return fmt.Errorf("signals[%d].observation is empty", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *SubtletyAnalysisOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.Signals {
		fields = append(fields, &o.Signals[i].Confidence)
	}
	return fields
}

// SubtletyAnalysis is the Pass 2 under-the-radar signal agent. Independent of
// motivation; runs in parallel with chain_analysis.
type SubtletyAnalysis struct{ base }

// NewSubtletyAnalysis creates the subtlety agent.
func NewSubtletyAnalysis() *SubtletyAnalysis {
	return &SubtletyAnalysis{analysisBase(TaskSubtletyAnalysis)}
}

// ValidateInput requires the Pass 1 foundation.
func (a *SubtletyAnalysis) ValidateInput(in agent.Input) error {
	for _, stage := range []string{TaskFactualReconstruction, TaskContextAnalysis} {
		if _, err := requireBundle(in, 1, stage); err != nil {
			return err
		}
	}
	return nil
}

// BuildMessages assembles the subtlety prompt.
func (a *SubtletyAnalysis) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: subtletySystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(subtletyUserPrompt,
			in.Headline,
			bundleJSON(in, 1, TaskFactualReconstruction),
			bundleJSON(in, 1, TaskContextAnalysis)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *SubtletyAnalysis) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[SubtletyAnalysisOutput](raw)
}

// AssessQuality weighs signal count and articulation.
func (a *SubtletyAnalysis) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*SubtletyAnalysisOutput)
	articulated := 0
	for _, s := range o.Signals {
		if s.WhyItMatters != "" {
			articulated++
		}
	}
	return weightedScore(map[string]float64{
		"signals":     ratio(len(o.Signals), 3),
		"articulated": ratio(articulated, len(o.Signals)),
		"confidence":  o.Confidence,
	}, map[string]float64{
		"signals":     0.4,
		"articulated": 0.3,
		"confidence":  0.3,
	})
}
