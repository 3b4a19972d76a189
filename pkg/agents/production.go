package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// article_write
// ────────────────────────────────────────────────────────────

// ArticleDraft is prose output shared by the Pass 4 writing stages.
type ArticleDraft struct {
	Text string `json:"text"`
}

// Validate requires non-empty prose.
func (o *ArticleDraft) Validate() error {
	if strings.TrimSpace(o.Text) == "" {
		return fmt.Errorf("draft is empty")
	}
	return nil
}

// ConfidenceFields returns nothing; prose carries no confidences.
func (o *ArticleDraft) ConfidenceFields() []*float64 { return nil }

// WordCount counts whitespace-separated words (Gate 4 component).
func (o *ArticleDraft) WordCount() int {
	return len(strings.Fields(o.Text))
}

// ArticleWrite turns the analysis bundle into the long-form article draft.
type ArticleWrite struct{ base }

// NewArticleWrite creates the drafting agent.
func NewArticleWrite() *ArticleWrite {
	return &ArticleWrite{productionBase(TaskArticleWrite, llm.ResponseFormatText)}
}

// ValidateInput requires the Pass 1 factual reconstruction and the Pass 2
// motivation and chain analyses.
func (a *ArticleWrite) ValidateInput(in agent.Input) error {
	required := []struct {
		pass  int
		stage string
	}{
		{1, TaskFactualReconstruction},
		{2, TaskMotivationAnalysis},
		{2, TaskChainAnalysis},
	}
	for _, r := range required {
		if _, err := requireBundle(in, r.pass, r.stage); err != nil {
			return err
		}
	}
	return nil
}

// BuildMessages assembles the drafting prompt over the full bundle.
func (a *ArticleWrite) BuildMessages(in agent.Input) []llm.Message {
	var bundle string
	if in.Bundle != nil {
		raw, err := json.MarshalIndent(in.Bundle.Snapshot(), "", "  ")
		if err == nil {
			bundle = string(raw)
		}
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: articleWriteSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(articleWriteUserPrompt,
			in.Headline, in.PrimaryZone, bundle) + critiqueSection(in)},
	}
}

// ParseOutput wraps the prose as a draft.
func (a *ArticleWrite) ParseOutput(raw string) (agent.Output, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("empty draft")
	}
	return &ArticleDraft{Text: text}, nil
}

// AssessQuality weighs length adequacy; prose quality is judged by
// self_critique, not here.
func (a *ArticleWrite) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*ArticleDraft)
	return ratio(o.WordCount(), 1200)
}

// ────────────────────────────────────────────────────────────
// voice_calibrate
// ────────────────────────────────────────────────────────────

// VoiceCalibrate rewrites the draft into the newsletter's editorial voice.
type VoiceCalibrate struct{ base }

// NewVoiceCalibrate creates the voice agent.
func NewVoiceCalibrate() *VoiceCalibrate {
	return &VoiceCalibrate{productionBase(TaskVoiceCalibrate, llm.ResponseFormatText)}
}

// ValidateInput requires the prior draft.
func (a *VoiceCalibrate) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 4, TaskArticleWrite)
	return err
}

// BuildMessages assembles the voice pass prompt.
func (a *VoiceCalibrate) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: voiceSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(voiceUserPrompt,
			draftText(in, TaskArticleWrite))},
	}
}

// ParseOutput wraps the prose as a draft.
func (a *VoiceCalibrate) ParseOutput(raw string) (agent.Output, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("empty calibrated draft")
	}
	return &ArticleDraft{Text: text}, nil
}

// ────────────────────────────────────────────────────────────
// self_critique
// ────────────────────────────────────────────────────────────

// CritiqueIssue is one problem the critique found in the draft.
type CritiqueIssue struct {
	Location string `json:"location"`
	Problem  string `json:"problem"`
	Severity string `json:"severity"` // critical, major, minor
}

// SelfCritiqueOutput evaluates the calibrated draft before revision.
type SelfCritiqueOutput struct {
	Issues       []CritiqueIssue `json:"issues"`
	OverallScore float64         `json:"overall_score"`
	ReadyToShip  bool            `json:"ready_to_ship"`
}

// Validate checks issue shape.
func (o *SelfCritiqueOutput) Validate() error {
	for i, issue := range o.Issues {
		switch issue.Severity {
		case "critical", "major", "minor":
		default:
			return fmt.Errorf("issues[%d].severity %q invalid", i, issue.Severity)
		}
	}
	return nil
}

// ConfidenceFields returns the overall score.
func (o *SelfCritiqueOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.OverallScore}
}

// SelfCritique reviews the calibrated draft against the analysis.
type SelfCritique struct{ base }

// NewSelfCritique creates the critique agent.
func NewSelfCritique() *SelfCritique {
	return &SelfCritique{productionBase(TaskSelfCritique, llm.ResponseFormatJSON)}
}

// ValidateInput requires the calibrated draft.
func (a *SelfCritique) ValidateInput(in agent.Input) error {
	_, err := requireBundle(in, 4, TaskVoiceCalibrate)
	return err
}

// BuildMessages assembles the critique prompt.
func (a *SelfCritique) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: critiqueSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(critiqueUserPrompt,
			draftText(in, TaskVoiceCalibrate),
			bundleJSON(in, 2, TaskMotivationAnalysis))},
	}
}

// ParseOutput decodes the typed output.
func (a *SelfCritique) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[SelfCritiqueOutput](raw)
}

// ────────────────────────────────────────────────────────────
// revise
// ────────────────────────────────────────────────────────────

// Revise applies the critique to produce the next draft.
type Revise struct{ base }

// NewRevise creates the revision agent.
func NewRevise() *Revise {
	return &Revise{productionBase(TaskRevise, llm.ResponseFormatText)}
}

// ValidateInput requires the draft and the critique.
func (a *Revise) ValidateInput(in agent.Input) error {
	if _, err := requireBundle(in, 4, TaskVoiceCalibrate); err != nil {
		return err
	}
	_, err := requireBundle(in, 4, TaskSelfCritique)
	return err
}

// BuildMessages assembles the revision prompt.
func (a *Revise) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: reviseSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(reviseUserPrompt,
			draftText(in, TaskVoiceCalibrate),
			bundleJSON(in, 4, TaskSelfCritique))},
	}
}

// ParseOutput wraps the prose as a draft.
func (a *Revise) ParseOutput(raw string) (agent.Output, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("empty revised draft")
	}
	return &ArticleDraft{Text: text}, nil
}

// ────────────────────────────────────────────────────────────
// helpers
// ────────────────────────────────────────────────────────────

// draftText extracts the prose of a stored draft, tolerating restored raw
// outputs.
func draftText(in agent.Input, stage string) string {
	out, err := requireBundle(in, 4, stage)
	if err != nil {
		return ""
	}
	switch d := out.(type) {
	case *ArticleDraft:
		return d.Text
	case *agent.RawOutput:
		if t, ok := d.Fields["text"].(string); ok {
			return t
		}
	}
	return ""
}
