package agents

import (
	"fmt"
	"math"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// theory_application
// ────────────────────────────────────────────────────────────

// TheoryReading applies one IR framework to the event.
type TheoryReading struct {
	Framework string  `json:"framework"` // e.g. realism, liberalism, constructivism
	Reading   string  `json:"reading"`
	Fit       float64 `json:"fit"` // how well the framework explains the event
}

// TheoryApplicationOutput reads the event through competing IR frameworks.
type TheoryApplicationOutput struct {
	Readings   []TheoryReading `json:"readings"`
	BestFit    string          `json:"best_fit"`
	Confidence float64         `json:"confidence"`
}

// Validate checks structural requirements.
func (o *TheoryApplicationOutput) Validate() error {
	if len(o.Readings) < 2 {
		return fmt.Errorf("need at least 2 framework readings, got %d", len(o.Readings))
	}
	for i, r := range o.Readings {
		if r.Framework == "" || r.Reading == "" {
			return fmt.Errorf("readings[%d] incomplete", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *TheoryApplicationOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.Readings {
		fields = append(fields, &o.Readings[i].Fit)
	}
	return fields
}

// TheoryApplication is the Pass 3 IR-framework agent.
type TheoryApplication struct{ base }

// NewTheoryApplication creates the theory agent.
func NewTheoryApplication() *TheoryApplication {
	return &TheoryApplication{analysisBase(TaskTheoryApplication)}
}

// ValidateInput requires the core analysis.
func (a *TheoryApplication) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 2, TaskMotivationAnalysis)
	return err
}

// BuildMessages assembles the theory prompt.
func (a *TheoryApplication) BuildMessages(in agent.Input) []llm.Message {
	return supplementaryMessages(theorySystemPrompt, in, TaskMotivationAnalysis)
}

// ParseOutput decodes the typed output.
func (a *TheoryApplication) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[TheoryApplicationOutput](raw)
}

// AssessQuality weighs framework coverage.
func (a *TheoryApplication) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*TheoryApplicationOutput)
	return weightedScore(map[string]float64{
		"readings":   ratio(len(o.Readings), 3),
		"confidence": o.Confidence,
	}, map[string]float64{
		"readings":   0.6,
		"confidence": 0.4,
	})
}

// ────────────────────────────────────────────────────────────
// historical_analogy
// ────────────────────────────────────────────────────────────

// Analogy is one historical parallel with its limits.
type Analogy struct {
	Episode      string   `json:"episode"`
	Parallels    []string `json:"parallels"`
	Disanalogies []string `json:"disanalogies"`
	Strength     float64  `json:"strength"`
}

// HistoricalAnalogyOutput maps the event onto historical precedent.
type HistoricalAnalogyOutput struct {
	Analogies  []Analogy `json:"analogies"`
	Lesson     string    `json:"lesson"`
	Confidence float64   `json:"confidence"`
}

// Validate checks structural requirements.
func (o *HistoricalAnalogyOutput) Validate() error {
	if len(o.Analogies) == 0 {
		return fmt.Errorf("analogies is empty")
	}
	for i, an := range o.Analogies {
		if an.Episode == "" {
			return fmt.Errorf("analogies[%d].episode is empty", i)
		}
		if len(an.Disanalogies) == 0 {
			return fmt.Errorf("analogies[%d] lists no disanalogies", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *HistoricalAnalogyOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.Analogies {
		fields = append(fields, &o.Analogies[i].Strength)
	}
	return fields
}

// HistoricalAnalogy is the Pass 3 precedent agent.
type HistoricalAnalogy struct{ base }

// NewHistoricalAnalogy creates the history agent.
func NewHistoricalAnalogy() *HistoricalAnalogy {
	return &HistoricalAnalogy{analysisBase(TaskHistoricalAnalogy)}
}

// ValidateInput requires the core analysis.
func (a *HistoricalAnalogy) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 2, TaskMotivationAnalysis)
	return err
}

// BuildMessages assembles the analogy prompt.
func (a *HistoricalAnalogy) BuildMessages(in agent.Input) []llm.Message {
	return supplementaryMessages(historySystemPrompt, in, TaskMotivationAnalysis)
}

// ParseOutput decodes the typed output.
func (a *HistoricalAnalogy) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[HistoricalAnalogyOutput](raw)
}

// AssessQuality rewards analogies that carry their own limits.
func (a *HistoricalAnalogy) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*HistoricalAnalogyOutput)
	return weightedScore(map[string]float64{
		"analogies":  ratio(len(o.Analogies), 2),
		"lesson":     boolScore(o.Lesson != ""),
		"confidence": o.Confidence,
	}, map[string]float64{
		"analogies":  0.45,
		"lesson":     0.25,
		"confidence": 0.3,
	})
}

// ────────────────────────────────────────────────────────────
// strategic_geometry
// ────────────────────────────────────────────────────────────

// StrategicGeometryOutput maps the positional logic: alignments, leverage,
// chokepoints, and who gains or loses freedom of action.
type StrategicGeometryOutput struct {
	Alignments  []string `json:"alignments"`
	Leverage    []string `json:"leverage"`
	Chokepoints []string `json:"chokepoints,omitempty"`
	NetShift    string   `json:"net_shift"`
	Confidence  float64  `json:"confidence"`
}

// Validate checks structural requirements.
func (o *StrategicGeometryOutput) Validate() error {
	if len(o.Alignments) == 0 {
		return fmt.Errorf("alignments is empty")
	}
	if o.NetShift == "" {
		return fmt.Errorf("net_shift is empty")
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *StrategicGeometryOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.Confidence}
}

// StrategicGeometry is the Pass 3 positional-logic agent.
type StrategicGeometry struct{ base }

// NewStrategicGeometry creates the geometry agent.
func NewStrategicGeometry() *StrategicGeometry {
	return &StrategicGeometry{analysisBase(TaskStrategicGeometry)}
}

// ValidateInput requires the core analysis.
func (a *StrategicGeometry) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 2, TaskMotivationAnalysis)
	return err
}

// BuildMessages assembles the geometry prompt.
func (a *StrategicGeometry) BuildMessages(in agent.Input) []llm.Message {
	return supplementaryMessages(geometrySystemPrompt, in, TaskMotivationAnalysis)
}

// ParseOutput decodes the typed output.
func (a *StrategicGeometry) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[StrategicGeometryOutput](raw)
}

// AssessQuality weighs coverage of the positional dimensions.
func (a *StrategicGeometry) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*StrategicGeometryOutput)
	return weightedScore(map[string]float64{
		"alignments": ratio(len(o.Alignments), 2),
		"leverage":   ratio(len(o.Leverage), 2),
		"confidence": o.Confidence,
	}, map[string]float64{
		"alignments": 0.35,
		"leverage":   0.35,
		"confidence": 0.3,
	})
}

// ────────────────────────────────────────────────────────────
// shockwave_projection
// ────────────────────────────────────────────────────────────

// Shockwave is one propagation path into another zone or domain.
type Shockwave struct {
	Zone       string  `json:"zone"`
	Domain     string  `json:"domain"` // security, energy, trade, migration, markets
	Effect     string  `json:"effect"`
	Horizon    string  `json:"horizon"` // days, weeks, months
	Likelihood float64 `json:"likelihood"`
}

// ShockwaveProjectionOutput projects how the event propagates beyond its
// primary zone.
type ShockwaveProjectionOutput struct {
	Shockwaves []Shockwave `json:"shockwaves"`
	Confidence float64     `json:"confidence"`
}

// Validate checks structural requirements.
func (o *ShockwaveProjectionOutput) Validate() error {
	if len(o.Shockwaves) == 0 {
		return fmt.Errorf("shockwaves is empty")
	}
	for i, s := range o.Shockwaves {
		if s.Zone == "" || s.Effect == "" {
			return fmt.Errorf("shockwaves[%d] incomplete", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *ShockwaveProjectionOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.Shockwaves {
		fields = append(fields, &o.Shockwaves[i].Likelihood)
	}
	return fields
}

// ZonesAffected counts distinct zones touched by projected shockwaves.
func (o *ShockwaveProjectionOutput) ZonesAffected() int {
	zones := make(map[string]bool)
	for _, s := range o.Shockwaves {
		zones[s.Zone] = true
	}
	return len(zones)
}

// ShockwaveProjection is the Pass 3 cross-zone propagation agent.
type ShockwaveProjection struct{ base }

// NewShockwaveProjection creates the shockwave agent.
func NewShockwaveProjection() *ShockwaveProjection {
	return &ShockwaveProjection{analysisBase(TaskShockwaveProjection)}
}

// ValidateInput requires the chain analysis.
func (a *ShockwaveProjection) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 2, TaskChainAnalysis)
	return err
}

// BuildMessages assembles the shockwave prompt.
func (a *ShockwaveProjection) BuildMessages(in agent.Input) []llm.Message {
	return supplementaryMessages(shockwaveSystemPrompt, in, TaskChainAnalysis)
}

// ParseOutput decodes the typed output.
func (a *ShockwaveProjection) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[ShockwaveProjectionOutput](raw)
}

// AssessQuality weighs propagation breadth.
func (a *ShockwaveProjection) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*ShockwaveProjectionOutput)
	return weightedScore(map[string]float64{
		"breadth":    ratio(o.ZonesAffected(), 3),
		"confidence": o.Confidence,
	}, map[string]float64{
		"breadth":    0.6,
		"confidence": 0.4,
	})
}

// ────────────────────────────────────────────────────────────
// uncertainty_mapping
// ────────────────────────────────────────────────────────────

// KnownUnknown is a named gap in the analysis.
type KnownUnknown struct {
	Question string `json:"question"`
	Impact   string `json:"impact"`
}

// UncertaintyMappingOutput is the epistemic audit of the whole analysis:
// what we don't know, where confidence must decay, and the overall ceiling.
type UncertaintyMappingOutput struct {
	KnownUnknowns      []KnownUnknown `json:"known_unknowns"`
	FragileAssumptions []string       `json:"fragile_assumptions,omitempty"`

	// OverallConfidence is the pre-debate overall confidence as the model
	// reported it; the chain decay ceilings are not applied to it.
	OverallConfidence float64 `json:"overall_confidence"`
}

// Validate checks structural requirements.
func (o *UncertaintyMappingOutput) Validate() error {
	if len(o.KnownUnknowns) == 0 {
		return fmt.Errorf("known_unknowns is empty")
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *UncertaintyMappingOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.OverallConfidence}
}

// UncertaintyMapping is the Pass 3 epistemic-audit agent. It holds the
// order-k decay ceilings, which EnforceDecayCeilings applies to the chain
// analysis orders.
type UncertaintyMapping struct {
	base
	decayPerOrder float64
}

// NewUncertaintyMapping creates the uncertainty agent with the configured
// per-order confidence decay factor.
func NewUncertaintyMapping(decayPerOrder float64) *UncertaintyMapping {
	return &UncertaintyMapping{
		base:          analysisBase(TaskUncertaintyMapping),
		decayPerOrder: decayPerOrder,
	}
}

// ValidateInput requires the core analysis.
func (a *UncertaintyMapping) ValidateInput(in agent.Input) error {
	if _, err := requireBundle(in, 2, TaskMotivationAnalysis); err != nil {
		return err
	}
	_, err := requireBundle(in, 2, TaskChainAnalysis)
	return err
}

// BuildMessages assembles the uncertainty prompt.
func (a *UncertaintyMapping) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: uncertaintySystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(uncertaintyUserPrompt,
			in.Headline,
			bundleJSON(in, 2, TaskMotivationAnalysis),
			bundleJSON(in, 2, TaskChainAnalysis)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output. No ceiling is applied here; see
// EnforceDecayCeilings.
func (a *UncertaintyMapping) ParseOutput(raw string) (agent.Output, error) {
	out, err := parseJSON[UncertaintyMappingOutput](raw)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CeilingForOrder returns the confidence ceiling at chain order k.
func (a *UncertaintyMapping) CeilingForOrder(order int) float64 {
	if order <= 1 {
		return 1
	}
	return math.Pow(a.decayPerOrder, float64(order-1))
}

// EnforceDecayCeilings caps each chain order's confidence at its decay
// ceiling. Deep-chain claims cannot carry more confidence than the decay
// model permits, regardless of what the model asserted.
func (a *UncertaintyMapping) EnforceDecayCeilings(chain *ChainAnalysisOutput) {
	for i := range chain.Orders {
		ceiling := a.CeilingForOrder(chain.Orders[i].Order)
		if chain.Orders[i].Confidence > ceiling {
			chain.Orders[i].Confidence = ceiling
		}
	}
}

// AssessQuality weighs unknown coverage.
func (a *UncertaintyMapping) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*UncertaintyMappingOutput)
	return weightedScore(map[string]float64{
		"unknowns":    ratio(len(o.KnownUnknowns), 3),
		"assumptions": ratio(len(o.FragileAssumptions), 2),
	}, map[string]float64{
		"unknowns":    0.6,
		"assumptions": 0.4,
	})
}

// supplementaryMessages is the shared two-message shape for Pass 3
// supplementary agents over one core output.
func supplementaryMessages(systemPrompt string, in agent.Input, coreStage string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(supplementaryUserPrompt,
			in.Headline,
			bundleJSON(in, 1, TaskFactualReconstruction),
			bundleJSON(in, 2, coreStage)) + critiqueSection(in)},
	}
}

// boolScore maps a predicate to a 0/1 dimension score.
func boolScore(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
