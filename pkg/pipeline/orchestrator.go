package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/agents"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/debate"
	"github.com/100percenttuna/undertow/pkg/escalation"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/models"
)

// Orchestrator executes the four-pass pipeline for single stories. One
// instance is shared by all workers; per-story state lives on the stack.
type Orchestrator struct {
	cfg       *config.Config
	runner    Runner
	debate    *debate.Debate
	stores    Stores
	articles  ArticleStore
	escalator *escalation.Manager
	events    EventPublisher

	gates    gateEvaluator
	registry map[string]agent.Agent
}

// New creates the orchestrator. events may be nil (event delivery disabled).
func New(
	cfg *config.Config,
	runner Runner,
	deb *debate.Debate,
	stores Stores,
	articles ArticleStore,
	escalator *escalation.Manager,
	events EventPublisher,
) *Orchestrator {
	uncertainty := agents.NewUncertaintyMapping(cfg.Pipeline.ConfidenceDecayPerOrder)
	registry := map[string]agent.Agent{
		agents.TaskFactualReconstruction: agents.NewFactualReconstruction(),
		agents.TaskContextAnalysis:       agents.NewContextAnalysis(),
		agents.TaskActorAnalysis:         agents.NewActorAnalysis(),
		agents.TaskMotivationAnalysis:    agents.NewMotivationAnalysis(),
		agents.TaskChainAnalysis:         agents.NewChainAnalysis(),
		agents.TaskSubtletyAnalysis:      agents.NewSubtletyAnalysis(),
		agents.TaskTheoryApplication:     agents.NewTheoryApplication(),
		agents.TaskHistoricalAnalogy:     agents.NewHistoricalAnalogy(),
		agents.TaskStrategicGeometry:     agents.NewStrategicGeometry(),
		agents.TaskShockwaveProjection:   agents.NewShockwaveProjection(),
		agents.TaskUncertaintyMapping:    uncertainty,
		agents.TaskFactCheck:             agents.NewFactCheck(),
		agents.TaskSourceVerification:    agents.NewSourceVerification(),
		agents.TaskArticleWrite:          agents.NewArticleWrite(),
		agents.TaskVoiceCalibrate:        agents.NewVoiceCalibrate(),
		agents.TaskSelfCritique:          agents.NewSelfCritique(),
		agents.TaskRevise:                agents.NewRevise(),
	}
	return &Orchestrator{
		cfg:       cfg,
		runner:    runner,
		debate:    deb,
		stores:    stores,
		articles:  articles,
		escalator: escalator,
		events:    events,
		gates:     gateEvaluator{cfg: cfg.Pipeline},
		registry:  registry,
	}
}

// ExecuteStory drives one story from its start pass to a terminal outcome.
// The context carries the story timeout; cancellation is honored between
// stages, never mid-completion.
func (o *Orchestrator) ExecuteStory(ctx context.Context, job StoryJob) *StoryResult {
	start := time.Now()
	log := slog.With("story_id", job.ID, "run_id", job.RunID, "headline", job.Headline)
	log.Info("Story execution starting", "start_pass", max(job.StartPass, 1))

	res := &StoryResult{
		QualityScores: make(map[int]float64),
		CostByPass:    make(map[int]float64),
		Flags:         slices.Clone(job.Flags),
	}

	articles, err := o.articles.GetArticles(ctx, job.SourceArticleIDs)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("loading source articles: %w", err)
		return res
	}
	if len(articles) == 0 {
		res.Status = StatusFailed
		res.AbortReason = ReasonNoEvents
		res.Err = agents.ErrNoEvents
		return res
	}

	bundle := job.Bundle
	if bundle == nil {
		bundle = agent.NewBundle()
	}

	startPass := max(job.StartPass, 1)
	critical := startPass > 1 // past Gate 1 means critical-path
	var transcript *models.Transcript

	for pass := startPass; pass <= 4; pass++ {
		if r := o.checkInterrupt(ctx, job.ID); r != nil {
			r.QualityScores = res.QualityScores
			r.CostByPass = res.CostByPass
			r.Flags = res.Flags
			o.finish(r, start)
			return r
		}

		results := o.runPass(ctx, job, bundle, articles, pass, critical, &transcript, res)
		o.persistBundle(job.ID, bundle)

		retriesMax := o.cfg.Pipeline.MaxRetriesPerPass
		retriesUsed := job.RetryCounts[pass]

		gate := o.gates.evaluate(o.gateContext(pass, results, bundle, transcript, retriesUsed, retriesMax))
		for gate.Outcome == models.GateOutcomeRetry {
			retriesUsed++
			flag := fmt.Sprintf("gate%d_retry_%d", pass, retriesUsed)
			res.Flags = append(res.Flags, flag)
			o.addFlags(job.ID, flag)
			o.recordRetry(job.ID, pass)
			log.Info("Gate retry", "pass", pass, "attempt", retriesUsed, "score", gate.Score)

			o.rerunWeakest(ctx, job, bundle, articles, pass, critical, gate, results, res)
			o.persistBundle(job.ID, bundle)
			gate = o.gates.evaluate(o.gateContext(pass, results, bundle, transcript, retriesUsed, retriesMax))
		}

		res.QualityScores[pass] = gate.Score
		o.recordGate(ctx, job.ID, gate)

		switch gate.Outcome {
		case models.GateOutcomePass:
			critical = true
		case models.GateOutcomeEscalate:
			o.finish(res, start)
			return o.escalate(job, bundle, transcript, res, pass, true)
		default: // abort
			log.Warn("Gate abort", "pass", pass, "score", gate.Score)
			res.Status = StatusFailed
			res.AbortReason = ReasonGateAbort
			res.Err = fmt.Errorf("pass %d aborted: score %.2f, missing %v",
				pass, gate.Score, gate.MissingComponents)
			o.finish(res, start)
			return res
		}
	}

	res.OverallConfidence = o.overallConfidence(bundle, transcript)

	// Final trigger sweep on the end state. A story that clears all four
	// gates can still require review (sensitive topics, combined signals).
	ev := o.buildEvaluation(job, bundle, transcript, res, false, 0)
	if fired := o.escalator.Evaluate(ev); len(fired) > 0 {
		o.finish(res, start)
		return o.escalateWith(job, ev, fired, res)
	}

	res.Status = StatusReadyForPublication
	res.FinalArticle = finalDraftText(bundle)
	o.finish(res, start)
	log.Info("Story ready for publication",
		"total_cost_usd", res.TotalCost(),
		"overall_confidence", res.OverallConfidence)
	return res
}

// ────────────────────────────────────────────────────────────
// Pass execution
// ────────────────────────────────────────────────────────────

// runPass executes one pass's stage groups and returns the per-task results.
// A failed agent never fails its peers; its absence degrades the gate score.
func (o *Orchestrator) runPass(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	pass int,
	critical bool,
	transcript **models.Transcript,
	res *StoryResult,
) map[string]agent.Result {
	switch pass {
	case 1:
		return o.runGroup(ctx, job, bundle, articles, pass, critical, res, nil,
			agents.TaskFactualReconstruction, agents.TaskContextAnalysis, agents.TaskActorAnalysis)
	case 2:
		results := o.runGroup(ctx, job, bundle, articles, pass, critical, res, nil,
			agents.TaskMotivationAnalysis)
		parallel := o.runGroup(ctx, job, bundle, articles, pass, critical, res, nil,
			agents.TaskChainAnalysis, agents.TaskSubtletyAnalysis)
		for task, r := range parallel {
			results[task] = r
		}
		return results
	case 3:
		return o.runPass3(ctx, job, bundle, articles, critical, transcript, res)
	default:
		return o.runPass4(ctx, job, bundle, articles, critical, res)
	}
}

// runPass3 runs supplementary analysis, verification, and the adversarial
// debate concurrently, then folds the transcript into the bundle state.
func (o *Orchestrator) runPass3(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	critical bool,
	transcript **models.Transcript,
	res *StoryResult,
) map[string]agent.Result {
	supplementary := []string{
		agents.TaskTheoryApplication, agents.TaskHistoricalAnalogy, agents.TaskStrategicGeometry,
		agents.TaskShockwaveProjection, agents.TaskUncertaintyMapping,
	}
	earlyExit := o.earlyTermination(res)
	if earlyExit {
		supplementary = []string{agents.TaskUncertaintyMapping}
		res.Flags = append(res.Flags, "early_termination")
		o.addFlags(job.ID, "early_termination")
	}
	tasks := append(slices.Clone(supplementary), agents.TaskFactCheck, agents.TaskSourceVerification)

	// Debate is mandatory; skipping it on early exit requires the explicit
	// config switch.
	runDebate := !(earlyExit && o.cfg.Pipeline.SkipDebateOnEarlyExit)

	var debateOutcome debate.Outcome
	var wg sync.WaitGroup
	if runDebate {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := o.buildInput(job, bundle, articles, 3, "debate", critical, "")
			pre := preDebateConfidence(bundle)
			debateOutcome = o.debate.Run(ctx, in, pre, chainDepth(bundle))
		}()
	}

	results := o.runGroup(ctx, job, bundle, articles, 3, critical, res, nil, tasks...)
	wg.Wait()

	// Enforce the order-k decay ceilings on the chain claims now that the
	// epistemic audit has run.
	if chainOut, ok := typedOutput[*agents.ChainAnalysisOutput](bundle, 2, agents.TaskChainAnalysis); ok {
		if ua, ok := o.registry[agents.TaskUncertaintyMapping].(*agents.UncertaintyMapping); ok {
			ua.EnforceDecayCeilings(chainOut)
		}
	}

	if runDebate {
		*transcript = debateOutcome.Transcript
		o.addResultsCost(job.ID, res, 3, debateOutcome.Results)
		if debateOutcome.Failure != nil {
			res.Flags = append(res.Flags, "debate_unsealed")
			o.addFlags(job.ID, "debate_unsealed")
			slog.Warn("Debate failed to seal",
				"story_id", job.ID, "kind", debateOutcome.Failure.Kind, "error", debateOutcome.Failure.Message)
		}
		if err := o.stores.SaveTranscript(context.Background(), debateOutcome.Transcript); err != nil {
			slog.Error("Failed to persist debate transcript", "story_id", job.ID, "error", err)
		}
	}

	// Judge modifications surface as flags for the production pass.
	if t := *transcript; t != nil && t.Judgment != nil && len(t.Judgment.Modifications) > 0 {
		flag := fmt.Sprintf("debate_modifications_%d", len(t.Judgment.Modifications))
		res.Flags = append(res.Flags, flag)
		o.addFlags(job.ID, flag)
	}

	return results
}

// runPass4 is the sequential production pass: draft, voice, then bounded
// critique-revise cycles.
func (o *Orchestrator) runPass4(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	critical bool,
	res *StoryResult,
) map[string]agent.Result {
	results := o.runGroup(ctx, job, bundle, articles, 4, critical, res, nil, agents.TaskArticleWrite)
	if r, ok := results[agents.TaskArticleWrite]; !ok || !r.Success {
		return results
	}

	voice := o.runGroup(ctx, job, bundle, articles, 4, critical, res, nil, agents.TaskVoiceCalibrate)
	results[agents.TaskVoiceCalibrate] = voice[agents.TaskVoiceCalibrate]
	if r := voice[agents.TaskVoiceCalibrate]; !r.Success {
		return results
	}

	for cycle := 0; ; cycle++ {
		critique := o.runSingle(ctx, job, bundle, articles, 4, critical, agents.TaskSelfCritique, "", true)
		results[agents.TaskSelfCritique] = critique
		o.addResultsCost(job.ID, res, 4, []agent.Result{critique})
		if !critique.Success {
			return results
		}

		critiqueOut := critique.Output.(*agents.SelfCritiqueOutput)
		if critiqueOut.ReadyToShip || cycle >= o.cfg.Pipeline.MaxRevisionCycles {
			if !critiqueOut.ReadyToShip {
				flag := "revision_cycles_exhausted"
				res.Flags = append(res.Flags, flag)
				o.addFlags(job.ID, flag)
			}
			return results
		}

		revise := o.runSingle(ctx, job, bundle, articles, 4, critical, agents.TaskRevise, "", true)
		results[agents.TaskRevise] = revise
		o.addResultsCost(job.ID, res, 4, []agent.Result{revise})
		if !revise.Success {
			return results
		}
		// The revised draft replaces the calibrated draft for the next cycle
		// and for Gate 4.
		bundle.Replace(4, agents.TaskVoiceCalibrate, revise.Output)
		bundle.Replace(4, agents.TaskRevise, revise.Output)
	}
}

// runGroup executes a set of tasks as one parallel stage group, bounded by
// the per-story agent concurrency limit and the stage timeout. Successful
// outputs land in the bundle after the group completes, preserving the
// happens-before edge between stage groups.
func (o *Orchestrator) runGroup(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	pass int,
	critical bool,
	res *StoryResult,
	critiques map[string]string,
	tasks ...string,
) map[string]agent.Result {
	groupCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeouts.Stage)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]agent.Result, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(o.cfg.Concurrency.MaxConcurrentAgentsPerStory)

	for _, task := range tasks {
		g.Go(func() error {
			r := o.runSingle(groupCtx, job, bundle, articles, pass, critical, task, critiques[task], false)
			mu.Lock()
			results[task] = r
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	var collected []agent.Result
	for task, r := range results {
		collected = append(collected, r)
		if r.Success {
			if err := bundle.Put(pass, task, r.Output); err != nil {
				// Gate retries legitimately rewrite a key.
				bundle.Replace(pass, task, r.Output)
			}
		}
	}
	o.addResultsCost(job.ID, res, pass, collected)
	return results
}

// runSingle executes one agent with progress bookkeeping. putOutput stores
// the output immediately (sequential stages that feed the next call).
func (o *Orchestrator) runSingle(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	pass int,
	critical bool,
	task, critique string,
	putOutput bool,
) agent.Result {
	o.updateProgress(job.ID, pass, task)
	o.publishStage(job.ID, pass, task, stageStarted)

	ag, ok := o.registry[task]
	if !ok {
		return agent.Result{
			Success: false,
			Err:     &agent.Failure{Kind: agent.ErrValidation, Message: "unknown task " + task},
		}
	}

	in := o.buildInput(job, bundle, articles, pass, task, critical, critique)
	r := o.runner.Run(ctx, ag, in)

	if r.Success {
		o.publishStage(job.ID, pass, task, stageCompleted)
		if putOutput {
			if err := bundle.Put(pass, task, r.Output); err != nil {
				bundle.Replace(pass, task, r.Output)
			}
		}
	} else {
		o.publishStage(job.ID, pass, task, stageFailed)
		slog.Warn("Agent failed within stage",
			"story_id", job.ID, "task", task, "kind", r.Err.Kind, "error", r.Err.Message)
	}
	return r
}

// rerunWeakest re-runs the gate's weakest sub-agents with critique feedback.
func (o *Orchestrator) rerunWeakest(
	ctx context.Context,
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	pass int,
	critical bool,
	gate models.GateResult,
	results map[string]agent.Result,
	res *StoryResult,
) {
	limit := min(2, len(gate.WeakestTasks))
	critiques := make(map[string]string, limit)
	for _, task := range gate.WeakestTasks[:limit] {
		critiques[task] = gate.Critique
	}
	targets := gate.WeakestTasks[:limit]

	rerun := o.runGroup(ctx, job, bundle, articles, pass, critical, res, critiques, targets...)
	for task, r := range rerun {
		if r.Success {
			bundle.Replace(pass, task, r.Output)
		}
		results[task] = r
	}
}

// ────────────────────────────────────────────────────────────
// Escalation
// ────────────────────────────────────────────────────────────

// escalate hands the story to human review after a gate ESCALATE outcome.
func (o *Orchestrator) escalate(
	job StoryJob,
	bundle *agent.Bundle,
	transcript *models.Transcript,
	res *StoryResult,
	failedPass int,
	gateFailed bool,
) *StoryResult {
	ev := o.buildEvaluation(job, bundle, transcript, res, gateFailed, failedPass)
	fired := o.escalator.Evaluate(ev)
	if len(fired) == 0 {
		// Gate escalation always produces an item even when no named
		// trigger is configured for it.
		fired = []escalation.Trigger{{
			Name:     config.TriggerGateFailureMaxRetries,
			Severity: config.SeverityHigh,
			Detail:   fmt.Sprintf("gate %d failed after max retries", failedPass),
		}}
	}
	return o.escalateWith(job, ev, fired, res)
}

// escalateWith persists the escalation item and parks the story.
func (o *Orchestrator) escalateWith(
	job StoryJob,
	ev escalation.Evaluation,
	fired []escalation.Trigger,
	res *StoryResult,
) *StoryResult {
	// Write with a background context so cancellation cannot lose the item.
	itemID, err := o.escalator.Escalate(context.Background(), ev, fired)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("escalation failed: %w", err)
		return res
	}
	res.Status = StatusEscalated
	res.EscalationID = itemID

	severity := config.SeverityLow
	for _, t := range fired {
		if t.Severity.Rank() > severity.Rank() {
			severity = t.Severity
		}
	}
	o.publishEscalation(job.ID, itemID, string(severity))
	return res
}

// buildEvaluation assembles the trigger evaluation state from the bundle.
func (o *Orchestrator) buildEvaluation(
	job StoryJob,
	bundle *agent.Bundle,
	transcript *models.Transcript,
	res *StoryResult,
	gateFailed bool,
	failedPass int,
) escalation.Evaluation {
	ev := escalation.Evaluation{
		StoryID:            job.ID,
		Bundle:             bundle,
		Transcript:         transcript,
		Draft:              finalDraftText(bundle),
		SourceRefs:         job.SourceArticleIDs,
		GateFailedMaxRetry: gateFailed,
		FailedGatePass:     failedPass,
		Signals: escalation.StorySignals{
			ZonesAffected: job.ZonesAffected,
			Novelty:       job.Novelty,
			SignalType:    job.SignalType,
			Topics:        job.Topics,
		},
	}

	if c := o.overallConfidence(bundle, transcript); c > 0 {
		ev.OverallConfidence = c
		ev.HasConfidence = true
	}
	if out, ok := typedOutput[*agents.FactCheckOutput](bundle, 3, agents.TaskFactCheck); ok {
		ev.VerificationScore = out.Score
		ev.HasVerification = true
	}
	if transcript != nil {
		ev.OpenCriticalCount = len(transcript.OpenCriticalChallenges())
	}
	if out, ok := typedOutput[*agents.ActorAnalysisOutput](bundle, 1, agents.TaskActorAnalysis); ok {
		ev.Signals.HeadsOfState = out.HeadsOfState()
	}
	if out, ok := typedOutput[*agents.ShockwaveProjectionOutput](bundle, 3, agents.TaskShockwaveProjection); ok {
		ev.Signals.ZonesAffected = max(ev.Signals.ZonesAffected, out.ZonesAffected())
	}
	return ev
}

// ────────────────────────────────────────────────────────────
// Confidence and bundle helpers
// ────────────────────────────────────────────────────────────

// overallConfidence resolves the story's overall confidence: post-debate
// when sealed, else the uncertainty audit, else the motivation driver.
func (o *Orchestrator) overallConfidence(bundle *agent.Bundle, transcript *models.Transcript) float64 {
	if transcript != nil && transcript.Judgment != nil {
		return transcript.ConfidenceAfter
	}
	if out, ok := typedOutput[*agents.UncertaintyMappingOutput](bundle, 3, agents.TaskUncertaintyMapping); ok {
		return out.OverallConfidence
	}
	if out, ok := typedOutput[*agents.MotivationAnalysisOutput](bundle, 2, agents.TaskMotivationAnalysis); ok {
		return out.PrimaryDriverConfidence
	}
	return 0
}

// preDebateConfidence is the confidence the judge adjusts: the weaker of the
// motivation driver and the chain projection.
func preDebateConfidence(bundle *agent.Bundle) float64 {
	pre := 0.5
	if out, ok := typedOutput[*agents.MotivationAnalysisOutput](bundle, 2, agents.TaskMotivationAnalysis); ok {
		pre = out.PrimaryDriverConfidence
	}
	if out, ok := typedOutput[*agents.ChainAnalysisOutput](bundle, 2, agents.TaskChainAnalysis); ok && out.Confidence < pre {
		pre = out.Confidence
	}
	return pre
}

// chainDepth returns the deepest projected chain order, 1 when absent.
func chainDepth(bundle *agent.Bundle) int {
	if out, ok := typedOutput[*agents.ChainAnalysisOutput](bundle, 2, agents.TaskChainAnalysis); ok {
		return max(out.Depth(), 1)
	}
	return 1
}

// finalDraftText returns the current best article text.
func finalDraftText(bundle *agent.Bundle) string {
	for _, stage := range []string{agents.TaskRevise, agents.TaskVoiceCalibrate, agents.TaskArticleWrite} {
		if out, ok := typedOutput[*agents.ArticleDraft](bundle, 4, stage); ok {
			return out.Text
		}
	}
	return ""
}

// earlyTermination reports whether the reduced Pass 3 applies.
func (o *Orchestrator) earlyTermination(res *StoryResult) bool {
	if !o.cfg.Pipeline.EarlyTermination {
		return false
	}
	return res.QualityScores[2] >= o.cfg.Pipeline.EarlyTerminationScore && len(res.Flags) == 0
}

// gateContext assembles the evaluation context for a pass.
func (o *Orchestrator) gateContext(
	pass int,
	results map[string]agent.Result,
	bundle *agent.Bundle,
	transcript *models.Transcript,
	retriesUsed, retriesMax int,
) gateContext {
	gc := gateContext{
		pass:        pass,
		results:     results,
		bundle:      bundle,
		transcript:  transcript,
		retriesUsed: retriesUsed,
		retriesMax:  retriesMax,
	}
	if pass == 3 {
		var expected []string
		for task := range results {
			expected = append(expected, task)
		}
		slices.Sort(expected)
		gc.expectedTasks = expected
	}
	if pass == 4 {
		gc.finalDraft = finalDraftText(bundle)
	}
	return gc
}

// checkInterrupt maps context state and cancel requests to a terminal result,
// or nil when execution may continue.
func (o *Orchestrator) checkInterrupt(ctx context.Context, storyID string) *StoryResult {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &StoryResult{
				Status:        StatusTimedOut,
				AbortReason:   ReasonStoryTimeout,
				Err:           err,
				QualityScores: map[int]float64{},
				CostByPass:    map[int]float64{},
			}
		}
		return &StoryResult{
			Status:        StatusCancelled,
			Err:           err,
			QualityScores: map[int]float64{},
			CostByPass:    map[int]float64{},
		}
	}

	cancelling, err := o.stores.IsCancelling(ctx, storyID)
	if err != nil {
		slog.Warn("Cancel check failed", "story_id", storyID, "error", err)
		return nil
	}
	if cancelling {
		return &StoryResult{
			Status:        StatusCancelled,
			Err:           context.Canceled,
			QualityScores: map[int]float64{},
			CostByPass:    map[int]float64{},
		}
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Bookkeeping
// ────────────────────────────────────────────────────────────

// buildInput assembles the runtime input for one agent call.
func (o *Orchestrator) buildInput(
	job StoryJob,
	bundle *agent.Bundle,
	articles []agent.SourceArticle,
	pass int,
	stage string,
	critical bool,
	critique string,
) agent.Input {
	return agent.Input{
		StoryID:        job.ID,
		RunID:          job.RunID,
		Pass:           pass,
		Stage:          stage,
		Headline:       job.Headline,
		PrimaryZone:    job.PrimaryZone,
		SecondaryZones: job.SecondaryZones,
		Articles:       articles,
		Bundle:         bundle,
		Critique:       critique,
		Critical:       critical,
	}
}

// addResultsCost folds agent spend into the per-pass totals.
func (o *Orchestrator) addResultsCost(storyID string, res *StoryResult, pass int, results []agent.Result) {
	var cost float64
	for _, r := range results {
		cost += r.Metadata.CostUSD
	}
	if cost == 0 {
		return
	}
	res.CostByPass[pass] += cost
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.stores.AddPassCost(ctx, storyID, pass, cost); err != nil {
		slog.Warn("Failed to record pass cost", "story_id", storyID, "pass", pass, "error", err)
	}
}

// updateProgress records current pass/stage. Best-effort.
func (o *Orchestrator) updateProgress(storyID string, pass int, stage string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.stores.UpdateStoryProgress(ctx, storyID, pass, stage); err != nil {
		slog.Warn("Failed to update story progress",
			"story_id", storyID, "pass", pass, "stage", stage, "error", err)
	}
}

// persistBundle snapshots the bundle onto the story record. Best-effort.
func (o *Orchestrator) persistBundle(storyID string, bundle *agent.Bundle) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := o.stores.SaveBundleSnapshot(ctx, storyID, bundle.Snapshot()); err != nil {
		slog.Warn("Failed to persist bundle snapshot", "story_id", storyID, "error", err)
	}
}

// recordGate persists and publishes a gate outcome.
func (o *Orchestrator) recordGate(ctx context.Context, storyID string, gate models.GateResult) {
	metrics.GateResults.WithLabelValues(fmt.Sprintf("%d", gate.Pass), string(gate.Outcome)).Inc()
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.stores.RecordGate(writeCtx, storyID, gate.Pass, gate.Score, gate.Outcome); err != nil {
		slog.Warn("Failed to record gate result",
			"story_id", storyID, "pass", gate.Pass, "error", err)
	}
	if o.events != nil {
		o.events.PublishGateResult(ctx, storyID, gate)
	}
}

// addFlags persists flags. Best-effort.
func (o *Orchestrator) addFlags(storyID string, flags ...string) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.stores.AddFlags(writeCtx, storyID, flags...); err != nil {
		slog.Warn("Failed to persist flags", "story_id", storyID, "error", err)
	}
}

// recordRetry persists the gate retry counter. Best-effort.
func (o *Orchestrator) recordRetry(storyID string, pass int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.stores.RecordRetry(ctx, storyID, pass); err != nil {
		slog.Warn("Failed to record gate retry", "story_id", storyID, "pass", pass, "error", err)
	}
}

// publishStage emits a stage status event. Nil-safe.
func (o *Orchestrator) publishStage(storyID string, pass int, stage, status string) {
	if o.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	o.events.PublishStageStatus(ctx, storyID, pass, stage, status)
}

// publishEscalation emits an escalation event. Nil-safe.
func (o *Orchestrator) publishEscalation(storyID, itemID, severity string) {
	if o.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	o.events.PublishEscalationCreated(ctx, storyID, itemID, severity)
}

// finish records the pipeline duration metric.
func (o *Orchestrator) finish(res *StoryResult, start time.Time) {
	metrics.PipelineDuration.Observe(time.Since(start).Seconds())
}
