package agents

import (
	"fmt"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// factual_reconstruction
// ────────────────────────────────────────────────────────────

// TimelineEvent is one dated event in the factual reconstruction.
type TimelineEvent struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Sources     []string `json:"sources"`
}

// KeyFact is a load-bearing fact with its supporting sources.
type KeyFact struct {
	Fact       string   `json:"fact"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
}

// FactualReconstructionOutput is the Pass 1 event reconstruction.
type FactualReconstructionOutput struct {
	Timeline      []TimelineEvent `json:"timeline"`
	KeyFacts      []KeyFact       `json:"key_facts"`
	Discrepancies []string        `json:"discrepancies,omitempty"`
	Confidence    float64         `json:"confidence"`
}

// Validate checks structural requirements.
func (o *FactualReconstructionOutput) Validate() error {
	if len(o.Timeline) == 0 {
		return fmt.Errorf("timeline is empty")
	}
	if len(o.KeyFacts) == 0 {
		return fmt.Errorf("key_facts is empty")
	}
	for i, f := range o.KeyFacts {
		if f.Fact == "" {
			return fmt.Errorf("key_facts[%d].fact is empty", i)
		}
		if len(f.Sources) == 0 {
			return fmt.Errorf("key_facts[%d] has no sources", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *FactualReconstructionOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Confidence}
	for i := range o.KeyFacts {
		fields = append(fields, &o.KeyFacts[i].Confidence)
	}
	return fields
}

// FactualReconstruction reconstructs what actually happened from the source
// articles: timeline, key facts with sourcing, cross-source discrepancies.
type FactualReconstruction struct{ base }

// NewFactualReconstruction creates the Pass 1 factual agent.
func NewFactualReconstruction() *FactualReconstruction {
	return &FactualReconstruction{analysisBase(TaskFactualReconstruction)}
}

// ValidateInput requires at least one source article.
func (a *FactualReconstruction) ValidateInput(in agent.Input) error {
	if len(in.Articles) == 0 {
		return ErrNoEvents
	}
	return nil
}

// BuildMessages assembles the reconstruction prompt.
func (a *FactualReconstruction) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: factualSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(factualUserPrompt,
			in.Headline, in.PrimaryZone, formatArticles(in.Articles)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *FactualReconstruction) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[FactualReconstructionOutput](raw)
}

// AssessQuality weighs sourcing density and timeline completeness.
func (a *FactualReconstruction) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*FactualReconstructionOutput)
	sourced := 0
	for _, f := range o.KeyFacts {
		if len(f.Sources) >= 2 {
			sourced++
		}
	}
	return weightedScore(map[string]float64{
		"timeline":      ratio(len(o.Timeline), 4),
		"facts":         ratio(len(o.KeyFacts), 5),
		"multi_sourced": ratio(sourced, len(o.KeyFacts)),
		"confidence":    o.Confidence,
	}, map[string]float64{
		"timeline":      0.3,
		"facts":         0.3,
		"multi_sourced": 0.2,
		"confidence":    0.2,
	})
}

// ────────────────────────────────────────────────────────────
// context_analysis
// ────────────────────────────────────────────────────────────

// ContextAnalysisOutput situates the story in its regional and historical
// setting.
type ContextAnalysisOutput struct {
	RegionalBackground  string   `json:"regional_background"`
	HistoricalBackdrop  string   `json:"historical_backdrop"`
	RecentDevelopments  []string `json:"recent_developments"`
	StructuralPressures []string `json:"structural_pressures"`
	Confidence          float64  `json:"confidence"`
}

// Validate checks structural requirements.
func (o *ContextAnalysisOutput) Validate() error {
	if o.RegionalBackground == "" {
		return fmt.Errorf("regional_background is empty")
	}
	if o.HistoricalBackdrop == "" {
		return fmt.Errorf("historical_backdrop is empty")
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *ContextAnalysisOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.Confidence}
}

// ContextAnalysis produces the regional/historical context layer.
type ContextAnalysis struct{ base }

// NewContextAnalysis creates the Pass 1 context agent.
func NewContextAnalysis() *ContextAnalysis {
	return &ContextAnalysis{analysisBase(TaskContextAnalysis)}
}

// ValidateInput requires at least one source article.
func (a *ContextAnalysis) ValidateInput(in agent.Input) error {
	if len(in.Articles) == 0 {
		return ErrNoEvents
	}
	return nil
}

// BuildMessages assembles the context prompt.
func (a *ContextAnalysis) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: contextSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(contextUserPrompt,
			in.Headline, in.PrimaryZone, formatArticles(in.Articles)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *ContextAnalysis) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[ContextAnalysisOutput](raw)
}

// AssessQuality weighs depth of the background sections.
func (a *ContextAnalysis) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*ContextAnalysisOutput)
	return weightedScore(map[string]float64{
		"developments": ratio(len(o.RecentDevelopments), 3),
		"pressures":    ratio(len(o.StructuralPressures), 2),
		"confidence":   o.Confidence,
	}, map[string]float64{
		"developments": 0.35,
		"pressures":    0.35,
		"confidence":   0.3,
	})
}

// ────────────────────────────────────────────────────────────
// actor_analysis
// ────────────────────────────────────────────────────────────

// Actor is one identified player with interests and capabilities.
type Actor struct {
	Name          string   `json:"name"`
	Kind          string   `json:"kind"` // state, leader, organization, bloc
	Role          string   `json:"role"`
	Interests     []string `json:"interests"`
	Capabilities  []string `json:"capabilities,omitempty"`
	IsHeadOfState bool     `json:"is_head_of_state,omitempty"`
}

// ActorAnalysisOutput identifies the players and their relationships.
type ActorAnalysisOutput struct {
	Actors        []Actor  `json:"actors"`
	Relationships []string `json:"relationships,omitempty"`
	Confidence    float64  `json:"confidence"`
}

// Validate checks structural requirements.
func (o *ActorAnalysisOutput) Validate() error {
	if len(o.Actors) == 0 {
		return fmt.Errorf("actors is empty")
	}
	for i, a := range o.Actors {
		if a.Name == "" {
			return fmt.Errorf("actors[%d].name is empty", i)
		}
	}
	return nil
}

// ConfidenceFields returns every confidence-valued field.
func (o *ActorAnalysisOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.Confidence}
}

// HeadsOfState counts identified heads of state (escalation trigger input).
func (o *ActorAnalysisOutput) HeadsOfState() int {
	n := 0
	for _, a := range o.Actors {
		if a.IsHeadOfState {
			n++
		}
	}
	return n
}

// ActorAnalysis identifies the relevant actors, interests, and capabilities.
type ActorAnalysis struct{ base }

// NewActorAnalysis creates the Pass 1 actor agent.
func NewActorAnalysis() *ActorAnalysis {
	return &ActorAnalysis{analysisBase(TaskActorAnalysis)}
}

// ValidateInput requires at least one source article.
func (a *ActorAnalysis) ValidateInput(in agent.Input) error {
	if len(in.Articles) == 0 {
		return ErrNoEvents
	}
	return nil
}

// BuildMessages assembles the actor prompt.
func (a *ActorAnalysis) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: actorSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(actorUserPrompt,
			in.Headline, in.PrimaryZone, formatArticles(in.Articles)) + critiqueSection(in)},
	}
}

// ParseOutput decodes the typed output.
func (a *ActorAnalysis) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[ActorAnalysisOutput](raw)
}

// AssessQuality weighs actor coverage and interest depth.
func (a *ActorAnalysis) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*ActorAnalysisOutput)
	withInterests := 0
	for _, actor := range o.Actors {
		if len(actor.Interests) > 0 {
			withInterests++
		}
	}
	return weightedScore(map[string]float64{
		"actors":     ratio(len(o.Actors), 3),
		"interests":  ratio(withInterests, len(o.Actors)),
		"confidence": o.Confidence,
	}, map[string]float64{
		"actors":     0.4,
		"interests":  0.3,
		"confidence": 0.3,
	})
}
