package agents

import (
	"encoding/json"
	"fmt"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/models"
)

// ────────────────────────────────────────────────────────────
// debate_advocate
// ────────────────────────────────────────────────────────────

// AdvocateOutput is the advocate's contribution to one debate round: the
// defense, plus responses to outstanding challenges (rounds after the first).
type AdvocateOutput struct {
	Defense   string                     `json:"defense"`
	Responses []models.ChallengeResponse `json:"responses,omitempty"`
}

// Validate checks structural requirements.
func (o *AdvocateOutput) Validate() error {
	if o.Defense == "" {
		return fmt.Errorf("defense is empty")
	}
	for i, r := range o.Responses {
		if r.ChallengeID == "" {
			return fmt.Errorf("responses[%d].challenge_id is empty", i)
		}
		if !r.Kind.IsValid() {
			return fmt.Errorf("responses[%d].kind %q invalid", i, r.Kind)
		}
		if r.Kind == models.ResponseConcede && r.Modification == "" {
			return fmt.Errorf("responses[%d] concedes without a modification", i)
		}
	}
	return nil
}

// ConfidenceFields returns nothing; the advocate emits no confidences.
func (o *AdvocateOutput) ConfidenceFields() []*float64 { return nil }

// DebateAdvocate defends the analysis under challenge.
type DebateAdvocate struct{ base }

// NewDebateAdvocate creates the advocate agent.
func NewDebateAdvocate() *DebateAdvocate {
	return &DebateAdvocate{verificationBase(TaskDebateAdvocate)}
}

// ValidateInput requires the core analysis and, past round 1, a transcript.
func (a *DebateAdvocate) ValidateInput(in agent.Input) error {
	if _, err := requireBundle(in, 2, TaskMotivationAnalysis); err != nil {
		return err
	}
	if in.Round > 1 && in.Transcript == nil {
		return fmt.Errorf("round %d requires a transcript", in.Round)
	}
	return nil
}

// BuildMessages assembles defense (round 1) or response (later rounds).
func (a *DebateAdvocate) BuildMessages(in agent.Input) []llm.Message {
	analysis := fmt.Sprintf("Motivation analysis:\n%s\n\nChain analysis:\n%s",
		bundleJSON(in, 2, TaskMotivationAnalysis),
		bundleJSON(in, 2, TaskChainAnalysis))

	if in.Round <= 1 {
		return []llm.Message{
			{Role: llm.RoleSystem, Content: advocateSystemPrompt},
			{Role: llm.RoleUser, Content: fmt.Sprintf(advocateOpeningPrompt, in.Headline, analysis)},
		}
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: advocateSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(advocateRebuttalPrompt,
			in.Headline, analysis, transcriptJSON(in.Transcript), openChallengesJSON(in.Transcript))},
	}
}

// ParseOutput decodes the typed output.
func (a *DebateAdvocate) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[AdvocateOutput](raw)
}

// ────────────────────────────────────────────────────────────
// debate_challenger
// ────────────────────────────────────────────────────────────

// ChallengerOutput is one round's challenges. IDs and round numbers are
// assigned by the debate subprotocol, not the model.
type ChallengerOutput struct {
	Challenges []models.Challenge `json:"challenges"`
}

// Validate checks each challenge is typed, ranked, and cites a passage.
func (o *ChallengerOutput) Validate() error {
	for i, c := range o.Challenges {
		if !c.Type.IsValid() {
			return fmt.Errorf("challenges[%d].type %q invalid", i, c.Type)
		}
		if !c.Severity.IsValid() {
			return fmt.Errorf("challenges[%d].severity %q invalid", i, c.Severity)
		}
		if c.Passage == "" {
			return fmt.Errorf("challenges[%d] cites no passage", i)
		}
		if c.Text == "" {
			return fmt.Errorf("challenges[%d].text is empty", i)
		}
	}
	return nil
}

// ConfidenceFields returns nothing; challenges carry no confidences.
func (o *ChallengerOutput) ConfidenceFields() []*float64 { return nil }

// DebateChallenger attacks the analysis with typed objections.
type DebateChallenger struct{ base }

// NewDebateChallenger creates the challenger agent.
func NewDebateChallenger() *DebateChallenger {
	return &DebateChallenger{verificationBase(TaskDebateChallenger)}
}

// ValidateInput requires the transcript with the advocate's latest defense.
func (a *DebateChallenger) ValidateInput(in agent.Input) error {
	if in.Transcript == nil || len(in.Transcript.Rounds) == 0 {
		return fmt.Errorf("challenger requires a transcript with an advocate defense")
	}
	return nil
}

// BuildMessages assembles the challenge prompt over the transcript so far.
func (a *DebateChallenger) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: challengerSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(challengerUserPrompt,
			in.Headline,
			bundleJSON(in, 2, TaskMotivationAnalysis),
			transcriptJSON(in.Transcript), in.Round)},
	}
}

// ParseOutput decodes the typed output.
func (a *DebateChallenger) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[ChallengerOutput](raw)
}

// ────────────────────────────────────────────────────────────
// debate_judge
// ────────────────────────────────────────────────────────────

// JudgeOutput seals the debate. The adjustment bound and the sustained-
// critical verdict invariant are enforced by the debate subprotocol.
type JudgeOutput struct {
	Rulings              []models.Ruling `json:"rulings"`
	Modifications        []string        `json:"modifications"`
	ConfidenceAdjustment float64         `json:"confidence_adjustment"`
	Verdict              models.Verdict  `json:"verdict"`
}

// Validate checks rulings and verdict shape.
func (o *JudgeOutput) Validate() error {
	if !o.Verdict.IsValid() {
		return fmt.Errorf("verdict %q invalid", o.Verdict)
	}
	for i, r := range o.Rulings {
		if r.ChallengeID == "" {
			return fmt.Errorf("rulings[%d].challenge_id is empty", i)
		}
		if !r.Kind.IsValid() {
			return fmt.Errorf("rulings[%d].kind %q invalid", i, r.Kind)
		}
	}
	return nil
}

// ConfidenceFields returns nothing: the adjustment is a delta in
// [-0.5, +0.2], not a unit confidence, and is bounded by the subprotocol.
func (o *JudgeOutput) ConfidenceFields() []*float64 { return nil }

// DebateJudge rules on every challenge and issues the verdict.
type DebateJudge struct{ base }

// NewDebateJudge creates the judge agent.
func NewDebateJudge() *DebateJudge {
	return &DebateJudge{verificationBase(TaskDebateJudge)}
}

// ValidateInput requires a complete transcript.
func (a *DebateJudge) ValidateInput(in agent.Input) error {
	if in.Transcript == nil || len(in.Transcript.Rounds) == 0 {
		return fmt.Errorf("judge requires a completed transcript")
	}
	return nil
}

// BuildMessages assembles the judgment prompt over the full transcript.
func (a *DebateJudge) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: judgeSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(judgeUserPrompt,
			in.Headline, transcriptJSON(in.Transcript))},
	}
}

// ParseOutput decodes the typed output.
func (a *DebateJudge) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[JudgeOutput](raw)
}

// ────────────────────────────────────────────────────────────
// fact_check
// ────────────────────────────────────────────────────────────

// CheckedClaim is one claim with its verification status.
type CheckedClaim struct {
	Claim  string `json:"claim"`
	Status string `json:"status"` // supported, unsupported, contradicted
	Note   string `json:"note,omitempty"`
}

// FactCheckOutput verifies the analysis's key claims against the sources.
type FactCheckOutput struct {
	Claims []CheckedClaim `json:"claims"`
	Score  float64        `json:"score"`
}

// Validate checks claim statuses.
func (o *FactCheckOutput) Validate() error {
	if len(o.Claims) == 0 {
		return fmt.Errorf("claims is empty")
	}
	for i, c := range o.Claims {
		switch c.Status {
		case "supported", "unsupported", "contradicted":
		default:
			return fmt.Errorf("claims[%d].status %q invalid", i, c.Status)
		}
	}
	return nil
}

// ConfidenceFields returns the verification score.
func (o *FactCheckOutput) ConfidenceFields() []*float64 {
	return []*float64{&o.Score}
}

// FactCheck verifies key factual claims against the source articles.
type FactCheck struct{ base }

// NewFactCheck creates the fact-check agent.
func NewFactCheck() *FactCheck {
	return &FactCheck{verificationBase(TaskFactCheck)}
}

// ValidateInput requires the factual reconstruction and the articles.
func (a *FactCheck) ValidateInput(in agent.Input) error {
	if len(in.Articles) == 0 {
		return ErrNoEvents
	}
	_, err := requireBundle(in, 1, TaskFactualReconstruction)
	return err
}

// BuildMessages assembles the fact-check prompt.
func (a *FactCheck) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: factCheckSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(factCheckUserPrompt,
			bundleJSON(in, 1, TaskFactualReconstruction),
			formatArticles(in.Articles))},
	}
}

// ParseOutput decodes the typed output.
func (a *FactCheck) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[FactCheckOutput](raw)
}

// AssessQuality is the supported-claim ratio weighted with the model's score.
func (a *FactCheck) AssessQuality(out agent.Output, in agent.Input) float64 {
	o := out.(*FactCheckOutput)
	supported := 0
	for _, c := range o.Claims {
		if c.Status == "supported" {
			supported++
		}
	}
	return weightedScore(map[string]float64{
		"supported": ratio(supported, len(o.Claims)),
		"score":     o.Score,
	}, map[string]float64{
		"supported": 0.5,
		"score":     0.5,
	})
}

// ────────────────────────────────────────────────────────────
// source_verification
// ────────────────────────────────────────────────────────────

// SourceAssessment rates one source's reliability for this story.
type SourceAssessment struct {
	Source      string   `json:"source"`
	Reliability float64  `json:"reliability"`
	Issues      []string `json:"issues,omitempty"`
}

// SourceVerificationOutput audits the source mix behind the story.
type SourceVerificationOutput struct {
	Assessments []SourceAssessment `json:"assessments"`
	Independent int                `json:"independent_sources"`
	Score       float64            `json:"score"`
}

// Validate checks structural requirements.
func (o *SourceVerificationOutput) Validate() error {
	if len(o.Assessments) == 0 {
		return fmt.Errorf("assessments is empty")
	}
	if o.Independent < 0 {
		return fmt.Errorf("independent_sources is negative")
	}
	return nil
}

// ConfidenceFields returns reliability values and the overall score.
func (o *SourceVerificationOutput) ConfidenceFields() []*float64 {
	fields := []*float64{&o.Score}
	for i := range o.Assessments {
		fields = append(fields, &o.Assessments[i].Reliability)
	}
	return fields
}

// SourceVerification audits source independence and reliability.
type SourceVerification struct{ base }

// NewSourceVerification creates the source-verification agent.
func NewSourceVerification() *SourceVerification {
	return &SourceVerification{verificationBase(TaskSourceVerification)}
}

// ValidateInput requires the articles.
func (a *SourceVerification) ValidateInput(in agent.Input) error {
	if len(in.Articles) == 0 {
		return ErrNoEvents
	}
	return nil
}

// BuildMessages assembles the source audit prompt.
func (a *SourceVerification) BuildMessages(in agent.Input) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: sourceVerifySystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(sourceVerifyUserPrompt,
			formatArticles(in.Articles))},
	}
}

// ParseOutput decodes the typed output.
func (a *SourceVerification) ParseOutput(raw string) (agent.Output, error) {
	return parseJSON[SourceVerificationOutput](raw)
}

// ────────────────────────────────────────────────────────────
// transcript rendering helpers
// ────────────────────────────────────────────────────────────

// transcriptJSON renders the full transcript for debate prompts.
func transcriptJSON(t *models.Transcript) string {
	if t == nil {
		return "(no transcript)"
	}
	raw, err := json.Marshal(t.Rounds)
	if err != nil {
		return "(no transcript)"
	}
	return string(raw)
}

// openChallengesJSON renders the challenges still awaiting a response.
func openChallengesJSON(t *models.Transcript) string {
	if t == nil {
		return "[]"
	}
	responded := make(map[string]bool)
	for _, r := range t.Rounds {
		for _, resp := range r.Responses {
			responded[resp.ChallengeID] = true
		}
	}
	var open []models.Challenge
	for _, r := range t.Rounds {
		for _, ch := range r.Challenges {
			if !responded[ch.ID] {
				open = append(open, ch)
			}
		}
	}
	raw, err := json.Marshal(open)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
