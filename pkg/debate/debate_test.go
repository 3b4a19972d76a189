package debate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/models"
)

// scriptedRunner serves canned outputs per task; the debate package never
// touches the gateway directly.
type scriptedRunner struct {
	challengerRounds [][]models.Challenge
	challengerCall   int
	judgeOut         *agents.JudgeOutput
	calls            []string
}

func (r *scriptedRunner) Run(_ context.Context, ag agent.Agent, in agent.Input) agent.Result {
	r.calls = append(r.calls, ag.TaskName())
	switch ag.TaskName() {
	case agents.TaskDebateAdvocate:
		out := &agents.AdvocateOutput{Defense: "the analysis holds"}
		// Respond to every open challenge with a concession-free rebuttal.
		if in.Transcript != nil {
			for _, ch := range openChallenges(in.Transcript) {
				out.Responses = append(out.Responses, models.ChallengeResponse{
					ChallengeID: ch.ID,
					Kind:        models.ResponseRebut,
					Text:        "rebutted",
				})
			}
		}
		return success(out)
	case agents.TaskDebateChallenger:
		var challenges []models.Challenge
		if r.challengerCall < len(r.challengerRounds) {
			challenges = r.challengerRounds[r.challengerCall]
		}
		r.challengerCall++
		return success(&agents.ChallengerOutput{Challenges: challenges})
	case agents.TaskDebateJudge:
		return success(r.judgeOut)
	}
	return agent.Result{Success: false, Err: &agent.Failure{Kind: agent.ErrValidation, Message: "unknown task"}}
}

func success(out agent.Output) agent.Result {
	return agent.Result{Success: true, Output: out, Metadata: agent.Metadata{CostUSD: 0.01}}
}

func openChallenges(t *models.Transcript) []models.Challenge {
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
	return open
}

func testDebateConfig() *config.DebateConfig {
	return &config.DebateConfig{
		Rounds:                3,
		MaxPositiveAdjustment: 0.2,
		MaxNegativeAdjustment: 0.5,
	}
}

func baseInput() agent.Input {
	return agent.Input{StoryID: "s1", Pass: 3, Stage: "debate"}
}

func majorChallenge(text string) models.Challenge {
	return models.Challenge{
		Type:     models.ChallengeMissingEvidence,
		Severity: models.ChallengeSeverityMajor,
		Passage:  "para 2",
		Text:     text,
	}
}

func criticalChallenge(text string) models.Challenge {
	return models.Challenge{
		Type:     models.ChallengeOverconfidence,
		Severity: models.ChallengeSeverityCritical,
		Passage:  "para 1",
		Text:     text,
	}
}

func TestDebateRunsAllRoundsAndSeals(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{
			{criticalChallenge("first")},
			{criticalChallenge("second")},
			{criticalChallenge("third")},
		},
		judgeOut: &agents.JudgeOutput{
			Rulings: []models.Ruling{
				{ChallengeID: "r1-c1", Kind: models.RulingOverruled},
				{ChallengeID: "r2-c1", Kind: models.RulingOverruled},
				{ChallengeID: "r3-c1", Kind: models.RulingOverruled},
			},
			ConfidenceAdjustment: 0.05,
			Verdict:              models.VerdictSound,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.Nil(t, outcome.Failure)
	tr := outcome.Transcript
	require.NotNil(t, tr.Judgment)
	assert.Len(t, tr.Rounds, 3)
	assert.Equal(t, models.VerdictSound, tr.Judgment.Verdict)
	// Post-debate confidence cannot exceed pre-debate with chain depth 1
	assert.LessOrEqual(t, tr.ConfidenceAfter, 0.8)
}

func TestDebateEarlyTerminationWhenNoNewCriticals(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{
			{majorChallenge("minor quibble")},
			{}, // no new challenges at all in round 2
		},
		judgeOut: &agents.JudgeOutput{
			Rulings: []models.Ruling{{ChallengeID: "r1-c1", Kind: models.RulingOverruled}},
			Verdict: models.VerdictSound,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.Nil(t, outcome.Failure)
	assert.Len(t, outcome.Transcript.Rounds, 1, "no critical ground in round 1 ends the debate early")
}

// Debate soundness: a SUSTAINED CRITICAL challenge without a modification
// forces REQUIRES_MAJOR_REVISION even when the judge said otherwise.
func TestVerdictDowngradedOnUnmodifiedSustainedCritical(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{
			{criticalChallenge("fatal flaw")},
			{criticalChallenge("still fatal")},
			{criticalChallenge("remains fatal")},
		},
		judgeOut: &agents.JudgeOutput{
			Rulings: []models.Ruling{
				{ChallengeID: "r1-c1", Kind: models.RulingSustained}, // no modification
			},
			Verdict: models.VerdictSound,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.Nil(t, outcome.Failure)
	assert.Equal(t, models.VerdictRequiresMajorRevision, outcome.Transcript.Judgment.Verdict)
}

func TestSustainedCriticalWithModificationKeepsVerdict(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{
			{criticalChallenge("fixable flaw")},
			{criticalChallenge("another")},
			{criticalChallenge("third")},
		},
		judgeOut: &agents.JudgeOutput{
			Rulings: []models.Ruling{
				{ChallengeID: "r1-c1", Kind: models.RulingSustained, Modification: "soften the claim"},
			},
			Modifications: []string{"soften the claim"},
			Verdict:       models.VerdictSoundWithModifications,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.Nil(t, outcome.Failure)
	assert.Equal(t, models.VerdictSoundWithModifications, outcome.Transcript.Judgment.Verdict)
}

func TestAdjustmentClampedToConfiguredBounds(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{{}, {}, {}},
		judgeOut: &agents.JudgeOutput{
			ConfidenceAdjustment: -0.9, // below the allowed -0.5
			Verdict:              models.VerdictRequiresMajorRevision,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.Nil(t, outcome.Failure)
	assert.InDelta(t, -0.5, outcome.Transcript.Judgment.ConfidenceAdjustment, 1e-9)
	assert.InDelta(t, 0.3, outcome.Transcript.ConfidenceAfter, 1e-9)
}

// Confidence bounds: a positive adjustment never raises post-debate
// confidence above the pre-debate value; when pre-debate sits below the
// order-k decay ceiling, a raise may reach the ceiling but not pass it.
func TestPositiveAdjustmentBounded(t *testing.T) {
	runner := &scriptedRunner{
		challengerRounds: [][]models.Challenge{{}, {}, {}},
		judgeOut: &agents.JudgeOutput{
			ConfidenceAdjustment: 0.2,
			Verdict:              models.VerdictSound,
		},
	}
	d := New(runner, testDebateConfig(), 0.85)

	// High pre-debate: the raise is fully absorbed
	outcome := d.Run(context.Background(), baseInput(), 0.9, 4)
	require.Nil(t, outcome.Failure)
	assert.InDelta(t, 0.9, outcome.Transcript.ConfidenceAfter, 1e-9)

	// Low pre-debate: the raise stops at the depth-4 ceiling 0.85^3
	runner2 := &scriptedRunner{
		challengerRounds: [][]models.Challenge{{}, {}, {}},
		judgeOut: &agents.JudgeOutput{
			ConfidenceAdjustment: 0.2,
			Verdict:              models.VerdictSound,
		},
	}
	d2 := New(runner2, testDebateConfig(), 0.85)
	outcome2 := d2.Run(context.Background(), baseInput(), 0.5, 4)
	require.Nil(t, outcome2.Failure)
	assert.InDelta(t, 0.85*0.85*0.85, outcome2.Transcript.ConfidenceAfter, 1e-9)
}

func TestDebateFailureLeavesTranscriptUnsealed(t *testing.T) {
	runner := &failingRunner{failTask: agents.TaskDebateJudge}
	d := New(runner, testDebateConfig(), 0.85)

	outcome := d.Run(context.Background(), baseInput(), 0.8, 1)
	require.NotNil(t, outcome.Failure)
	assert.Nil(t, outcome.Transcript.Judgment)
}

// failingRunner succeeds for everything except one task.
type failingRunner struct {
	failTask string
}

func (r *failingRunner) Run(_ context.Context, ag agent.Agent, in agent.Input) agent.Result {
	if ag.TaskName() == r.failTask {
		return agent.Result{Success: false, Err: &agent.Failure{Kind: agent.ErrTimeout, Message: "timed out"}}
	}
	switch ag.TaskName() {
	case agents.TaskDebateAdvocate:
		return success(&agents.AdvocateOutput{Defense: "defense"})
	case agents.TaskDebateChallenger:
		return success(&agents.ChallengerOutput{})
	}
	return success(&agents.AdvocateOutput{Defense: "defense"})
}

// Transcript JSON round-trips (persistence shape).
func TestTranscriptSerializes(t *testing.T) {
	tr := &models.Transcript{
		StoryID:          "s1",
		ConfidenceBefore: 0.8,
		Rounds: []models.DebateRound{{
			Number:          1,
			AdvocateDefense: "d",
			Challenges:      []models.Challenge{criticalChallenge("x")},
		}},
	}
	raw, err := json.Marshal(tr)
	require.NoError(t, err)
	var back models.Transcript
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, tr.StoryID, back.StoryID)
	assert.Len(t, back.Rounds, 1)
}
