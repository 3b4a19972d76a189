package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "prose preamble", raw: "Here is the result:\n{\"a\":1}", want: `{"a":1}`},
		{name: "fenced block", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence without language", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "trailing prose", raw: `{"a":1} hope this helps`, want: `{"a":1}`},
		{name: "no object", raw: "no json here", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSON(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFactualReconstructionParseAndValidate(t *testing.T) {
	a := NewFactualReconstruction()

	out, err := a.ParseOutput(`{
		"timeline":[{"date":"2026-07-01","description":"event","sources":["reuters"]}],
		"key_facts":[{"fact":"f1","sources":["reuters"],"confidence":0.9}],
		"confidence":0.85
	}`)
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	typed := out.(*FactualReconstructionOutput)
	assert.Len(t, typed.ConfidenceFields(), 2)

	// Unsourced key fact fails validation
	bad, err := a.ParseOutput(`{
		"timeline":[{"date":"d","description":"e","sources":["s"]}],
		"key_facts":[{"fact":"f1","sources":[],"confidence":0.9}],
		"confidence":0.85
	}`)
	require.NoError(t, err)
	assert.Error(t, bad.Validate())
}

func TestFactualReconstructionRejectsEmptyArticles(t *testing.T) {
	a := NewFactualReconstruction()
	err := a.ValidateInput(agent.Input{})
	require.ErrorIs(t, err, ErrNoEvents)
}

func TestMotivationValidateRequiresAllLayers(t *testing.T) {
	a := NewMotivationAnalysis()
	out, err := a.ParseOutput(`{
		"stated":{"assessment":"s","confidence":0.8},
		"strategic":{"assessment":"","confidence":0.8},
		"domestic":{"assessment":"d","confidence":0.8},
		"psychological":{"assessment":"p","confidence":0.8},
		"primary_driver":"x","primary_driver_confidence":0.8,
		"alternative_hypotheses":[{"hypothesis":"h","likelihood":0.2}]
	}`)
	require.NoError(t, err)
	assert.ErrorContains(t, out.Validate(), "strategic")
}

func TestChainValidateEnforcesOrdering(t *testing.T) {
	a := NewChainAnalysis()
	out, err := a.ParseOutput(`{
		"orders":[
			{"order":1,"effect":"e1","confidence":0.8},
			{"order":3,"effect":"e2","confidence":0.7}
		],
		"confidence":0.8
	}`)
	require.NoError(t, err)
	assert.Error(t, out.Validate())
}

func TestChainQualityPenalizesRisingLateConfidence(t *testing.T) {
	a := NewChainAnalysis()
	calibrated := &ChainAnalysisOutput{
		Orders: []ChainOrder{
			{Order: 1, Effect: "e1", Confidence: 0.9},
			{Order: 2, Effect: "e2", Confidence: 0.8},
			{Order: 3, Effect: "e3", Confidence: 0.7},
			{Order: 4, Effect: "e4", Confidence: 0.6},
		},
		Confidence: 0.8,
	}
	inverted := &ChainAnalysisOutput{
		Orders: []ChainOrder{
			{Order: 1, Effect: "e1", Confidence: 0.5},
			{Order: 2, Effect: "e2", Confidence: 0.9},
			{Order: 3, Effect: "e3", Confidence: 0.9},
			{Order: 4, Effect: "e4", Confidence: 0.9},
		},
		Confidence: 0.8,
	}
	in := agent.Input{}
	assert.Greater(t, a.AssessQuality(calibrated, in), a.AssessQuality(inverted, in))
}

func TestChallengerValidateRejectsBadTypes(t *testing.T) {
	a := NewDebateChallenger()
	out, err := a.ParseOutput(`{"challenges":[
		{"type":"AD_HOMINEM","severity":"MAJOR","passage":"p","text":"t"}
	]}`)
	require.NoError(t, err)
	assert.Error(t, out.Validate())

	out, err = a.ParseOutput(`{"challenges":[
		{"type":"HIDDEN_ASSUMPTION","severity":"CRITICAL","passage":"p","text":"t"}
	]}`)
	require.NoError(t, err)
	assert.NoError(t, out.Validate())
}

func TestAdvocateConcessionRequiresModification(t *testing.T) {
	out := &AdvocateOutput{
		Defense: "d",
		Responses: []models.ChallengeResponse{
			{ChallengeID: "c1", Kind: models.ResponseConcede, Text: "you're right"},
		},
	}
	assert.Error(t, out.Validate())

	out.Responses[0].Modification = "soften claim"
	assert.NoError(t, out.Validate())
}

func TestUncertaintyCeilingForOrder(t *testing.T) {
	a := NewUncertaintyMapping(0.85)
	assert.InDelta(t, 1.0, a.CeilingForOrder(1), 1e-9)
	assert.InDelta(t, 0.85, a.CeilingForOrder(2), 1e-9)
	assert.InDelta(t, 0.85*0.85*0.85, a.CeilingForOrder(4), 1e-9)
}

func TestEnforceDecayCeilingsCapsChainOrders(t *testing.T) {
	a := NewUncertaintyMapping(0.85)
	chain := &ChainAnalysisOutput{
		Orders: []ChainOrder{
			{Order: 1, Effect: "e1", Confidence: 0.95},
			{Order: 2, Effect: "e2", Confidence: 0.95},
			{Order: 4, Effect: "e4", Confidence: 0.95},
		},
	}
	a.EnforceDecayCeilings(chain)
	assert.InDelta(t, 0.95, chain.Orders[0].Confidence, 1e-9)
	assert.InDelta(t, 0.85, chain.Orders[1].Confidence, 1e-9)
	assert.InDelta(t, 0.85*0.85*0.85, chain.Orders[2].Confidence, 1e-9)
}

func TestArticleDraftWordCount(t *testing.T) {
	d := &ArticleDraft{Text: "one two three four"}
	assert.Equal(t, 4, d.WordCount())
	assert.NoError(t, d.Validate())

	empty := &ArticleDraft{Text: "   "}
	assert.Error(t, empty.Validate())
}

func TestSelfCritiqueValidateSeverities(t *testing.T) {
	a := NewSelfCritique()
	out, err := a.ParseOutput(`{"issues":[{"location":"para 1","problem":"p","severity":"blocker"}],"overall_score":0.8,"ready_to_ship":false}`)
	require.NoError(t, err)
	assert.Error(t, out.Validate())
}

func TestQualityScoresStayInUnitRange(t *testing.T) {
	fa := NewFactualReconstruction()
	out := &FactualReconstructionOutput{
		Timeline:   []TimelineEvent{{Date: "d", Description: "x", Sources: []string{"s"}}},
		KeyFacts:   []KeyFact{{Fact: "f", Sources: []string{"s1", "s2"}, Confidence: 1.0}},
		Confidence: 1.0,
	}
	q := fa.AssessQuality(out, agent.Input{})
	assert.GreaterOrEqual(t, q, 0.0)
	assert.LessOrEqual(t, q, 1.0)
}

func TestBuildMessagesIncludesCritiqueOnRetry(t *testing.T) {
	a := NewContextAnalysis()
	in := agent.Input{
		Headline:    "h",
		PrimaryZone: "z",
		Articles:    []agent.SourceArticle{{ID: "a1", SourceName: "reuters", Content: "text"}},
		Critique:    "deepen the structural pressures section",
	}
	msgs := a.BuildMessages(in)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "deepen the structural pressures section")
}

func TestActorHeadsOfStateCount(t *testing.T) {
	out := &ActorAnalysisOutput{Actors: []Actor{
		{Name: "a", IsHeadOfState: true},
		{Name: "b"},
		{Name: "c", IsHeadOfState: true},
	}}
	assert.Equal(t, 2, out.HeadsOfState())
}

func TestShockwaveZonesAffected(t *testing.T) {
	out := &ShockwaveProjectionOutput{Shockwaves: []Shockwave{
		{Zone: "z1", Effect: "e"},
		{Zone: "z2", Effect: "e"},
		{Zone: "z1", Effect: "e2"},
	}}
	assert.Equal(t, 2, out.ZonesAffected())
}
