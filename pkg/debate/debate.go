// Package debate runs the adversarial advocate/challenger/judge subprotocol
// inside Pass 3. The loop either strengthens the analysis (modifications, a
// confidence adjustment) or leaves unresolved critical issues for the gate
// and the escalation manager.
package debate

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/models"
)

// Runner is the subset of the agent runtime the debate needs.
type Runner interface {
	Run(ctx context.Context, ag agent.Agent, in agent.Input) agent.Result
}

// Outcome is the debate's result: the (sealed or unsealed) transcript plus
// the metadata of every agent call made.
type Outcome struct {
	Transcript *models.Transcript
	Results    []agent.Result

	// Failure is set when a participant failed and the transcript could not
	// be sealed. The orchestrator converts this to flags, never an error.
	Failure *agent.Failure
}

// Debate drives the multi-round protocol.
type Debate struct {
	runner     Runner
	cfg        *config.DebateConfig
	decay      float64
	advocate   *agents.DebateAdvocate
	challenger *agents.DebateChallenger
	judge      *agents.DebateJudge
}

// New creates a debate over the given runtime.
func New(runner Runner, cfg *config.DebateConfig, decayPerOrder float64) *Debate {
	return &Debate{
		runner:     runner,
		cfg:        cfg,
		decay:      decayPerOrder,
		advocate:   agents.NewDebateAdvocate(),
		challenger: agents.NewDebateChallenger(),
		judge:      agents.NewDebateJudge(),
	}
}

// Run executes up to cfg.Rounds rounds and seals the transcript with the
// judge. preConfidence is the pre-debate overall confidence; chainDepth is
// the deepest chain order the analysis leans on (for the decay ceiling).
func (d *Debate) Run(ctx context.Context, in agent.Input, preConfidence float64, chainDepth int) Outcome {
	log := slog.With("story_id", in.StoryID)
	transcript := &models.Transcript{
		StoryID:          in.StoryID,
		ConfidenceBefore: preConfidence,
	}
	outcome := Outcome{Transcript: transcript}

	for round := 1; round <= d.cfg.Rounds; round++ {
		newCritical, failure := d.runRound(ctx, in, transcript, round, &outcome)
		if failure != nil {
			outcome.Failure = failure
			return outcome
		}

		// Early termination: every critical answered and the challenger
		// found no new critical ground this round.
		if round < d.cfg.Rounds && newCritical == 0 && len(transcript.OpenCriticalChallenges()) == 0 {
			log.Info("Debate terminated early", "rounds_completed", round)
			break
		}
	}

	d.seal(ctx, in, transcript, chainDepth, &outcome)
	return outcome
}

// runRound executes one round: (round 1 only) opening defense, then
// challenges, then responses. Returns the number of new CRITICAL challenges.
func (d *Debate) runRound(ctx context.Context, in agent.Input, t *models.Transcript, round int, outcome *Outcome) (int, *agent.Failure) {
	roundInput := in
	roundInput.Round = round
	roundInput.Transcript = t

	current := models.DebateRound{Number: round}

	// 1. Advocate presents (round 1) or defends against the prior state.
	advocateRes := d.runner.Run(ctx, d.advocate, roundInput)
	outcome.Results = append(outcome.Results, advocateRes)
	if !advocateRes.Success {
		return 0, advocateRes.Err
	}
	advocateOut := advocateRes.Output.(*agents.AdvocateOutput)
	current.AdvocateDefense = advocateOut.Defense
	// Responses to challenges carried over from earlier rounds land on the
	// current round.
	current.Responses = append(current.Responses, advocateOut.Responses...)

	t.Rounds = append(t.Rounds, current)
	roundIdx := len(t.Rounds) - 1

	// 2. Challenger issues typed challenges against the defense.
	challengerRes := d.runner.Run(ctx, d.challenger, roundInput)
	outcome.Results = append(outcome.Results, challengerRes)
	if !challengerRes.Success {
		return 0, challengerRes.Err
	}
	challengerOut := challengerRes.Output.(*agents.ChallengerOutput)

	newCritical := 0
	for i, ch := range challengerOut.Challenges {
		ch.ID = fmt.Sprintf("r%d-c%d", round, i+1)
		ch.Round = round
		if ch.Severity == models.ChallengeSeverityCritical {
			newCritical++
		}
		t.Rounds[roundIdx].Challenges = append(t.Rounds[roundIdx].Challenges, ch)
	}

	// 3. Advocate responds to each new challenge.
	if len(challengerOut.Challenges) > 0 {
		respondInput := roundInput
		respondInput.Round = round + 1 // rebuttal framing with the open list
		respondRes := d.runner.Run(ctx, d.advocate, respondInput)
		outcome.Results = append(outcome.Results, respondRes)
		if !respondRes.Success {
			return newCritical, respondRes.Err
		}
		respondOut := respondRes.Output.(*agents.AdvocateOutput)
		t.Rounds[roundIdx].Responses = append(t.Rounds[roundIdx].Responses, respondOut.Responses...)
	}

	return newCritical, nil
}

// seal obtains the judgment, enforces its invariants, and closes the
// transcript. judgment.verdict is set exactly once.
func (d *Debate) seal(ctx context.Context, in agent.Input, t *models.Transcript, chainDepth int, outcome *Outcome) {
	judgeInput := in
	judgeInput.Transcript = t

	judgeRes := d.runner.Run(ctx, d.judge, judgeInput)
	outcome.Results = append(outcome.Results, judgeRes)
	if !judgeRes.Success {
		outcome.Failure = judgeRes.Err
		return
	}
	judgeOut := judgeRes.Output.(*agents.JudgeOutput)

	judgment := &models.Judgment{
		Rulings:              judgeOut.Rulings,
		Modifications:        judgeOut.Modifications,
		ConfidenceAdjustment: clampAdjustment(judgeOut.ConfidenceAdjustment, d.cfg),
		Verdict:              judgeOut.Verdict,
	}

	// A sustained CRITICAL without a modification forces a failing verdict.
	if hasUnmodifiedSustainedCritical(t, judgment) && judgment.Verdict.Acceptable() {
		slog.Warn("Judge verdict downgraded: sustained critical without modification",
			"story_id", in.StoryID, "verdict", judgment.Verdict)
		judgment.Verdict = models.VerdictRequiresMajorRevision
	}

	t.Judgment = judgment
	t.ConfidenceAfter = d.postConfidence(t.ConfidenceBefore, judgment.ConfidenceAdjustment, chainDepth)
}

// postConfidence applies the adjustment under the ceiling rule: a positive
// adjustment can never push confidence above the pre-debate value or, when
// the pre-debate value sits below the order-k decay ceiling, above that
// ceiling. Negative adjustments apply in full, floored at zero.
func (d *Debate) postConfidence(pre, adjustment float64, chainDepth int) float64 {
	upper := pre
	if chainDepth > 1 {
		if c := math.Pow(d.decay, float64(chainDepth-1)); c > upper {
			upper = c
		}
	}
	post := pre + adjustment
	if post > upper {
		post = upper
	}
	if post < 0 {
		post = 0
	}
	return post
}

// clampAdjustment bounds the judge's Δ to [-maxNegative, +maxPositive].
func clampAdjustment(delta float64, cfg *config.DebateConfig) float64 {
	if delta > cfg.MaxPositiveAdjustment {
		return cfg.MaxPositiveAdjustment
	}
	if delta < -cfg.MaxNegativeAdjustment {
		return -cfg.MaxNegativeAdjustment
	}
	return delta
}

// hasUnmodifiedSustainedCritical reports whether any CRITICAL challenge was
// sustained without a modification from either the ruling or the advocate's
// concession.
func hasUnmodifiedSustainedCritical(t *models.Transcript, judgment *models.Judgment) bool {
	conceded := make(map[string]bool)
	for _, r := range t.Rounds {
		for _, resp := range r.Responses {
			if resp.Kind == models.ResponseConcede && resp.Modification != "" {
				conceded[resp.ChallengeID] = true
			}
		}
	}

	severity := make(map[string]models.ChallengeSeverity)
	for _, ch := range t.AllChallenges() {
		severity[ch.ID] = ch.Severity
	}

	for _, ruling := range judgment.Rulings {
		if ruling.Kind != models.RulingSustained {
			continue
		}
		if severity[ruling.ChallengeID] != models.ChallengeSeverityCritical {
			continue
		}
		if ruling.Modification == "" && !conceded[ruling.ChallengeID] {
			return true
		}
	}
	return false
}
