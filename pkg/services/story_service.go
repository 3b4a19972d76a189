package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/models"
)

// StoryService manages story lifecycle and progressive pipeline state. It
// implements the orchestrator's Stores surface and the runtime's Recorder.
type StoryService struct {
	client *ent.Client
}

// NewStoryService creates a new StoryService.
func NewStoryService(client *ent.Client) *StoryService {
	return &StoryService{client: client}
}

// CreateStories persists the selection-side story seeds for a run.
func (s *StoryService) CreateStories(ctx context.Context, runID, editionID string, seeds []models.StorySeed) ([]*ent.Story, error) {
	if len(seeds) == 0 {
		return nil, NewValidationError("stories", "at least one story is required")
	}

	builders := make([]*ent.StoryCreate, len(seeds))
	for i, seed := range seeds {
		if seed.Headline == "" {
			return nil, NewValidationError(fmt.Sprintf("stories[%d].headline", i), "required")
		}
		if seed.PrimaryZone == "" {
			return nil, NewValidationError(fmt.Sprintf("stories[%d].primary_zone", i), "required")
		}
		if len(seed.SourceArticleIDs) == 0 {
			return nil, NewValidationError(fmt.Sprintf("stories[%d].source_article_ids", i), "required")
		}
		builders[i] = s.client.Story.Create().
			SetID(uuid.New().String()).
			SetRunID(runID).
			SetEditionID(editionID).
			SetHeadline(seed.Headline).
			SetPrimaryZone(seed.PrimaryZone).
			SetSecondaryZones(seed.SecondaryZones).
			SetSourceArticleIds(seed.SourceArticleIDs).
			SetNovelty(seed.Novelty).
			SetZonesAffected(seed.ZonesAffected).
			SetSignalType(seed.SignalType).
			SetTopics(seed.Topics)
	}

	stories, err := s.client.Story.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stories: %w", err)
	}
	return stories, nil
}

// GetStory fetches a story by id.
func (s *StoryService) GetStory(ctx context.Context, id string) (*ent.Story, error) {
	st, err := s.client.Story.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("story %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return st, nil
}

// ListByRun returns a run's stories ordered by creation time.
func (s *StoryService) ListByRun(ctx context.Context, runID string) ([]*ent.Story, error) {
	stories, err := s.client.Story.Query().
		Where(story.RunIDEQ(runID)).
		Order(ent.Asc(story.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// UpdateStoryProgress records the current pass and stage. current_pass never
// decreases outside an explicit reanalysis reset.
func (s *StoryService) UpdateStoryProgress(ctx context.Context, storyID string, pass int, stage string) error {
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	update := s.client.Story.UpdateOneID(storyID).SetCurrentStage(stage)
	if pass > st.CurrentPass {
		update = update.SetCurrentPass(pass)
	}
	return update.Exec(ctx)
}

// SaveBundleSnapshot persists the analysis bundle state onto the story.
func (s *StoryService) SaveBundleSnapshot(ctx context.Context, storyID string, snapshot map[string]interface{}) error {
	return s.client.Story.UpdateOneID(storyID).
		SetPassOutputs(snapshot).
		Exec(ctx)
}

// RecordGate persists a gate score and outcome for a pass.
func (s *StoryService) RecordGate(ctx context.Context, storyID string, pass int, score float64, outcome models.GateOutcome) error {
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}

	scores := st.QualityScores
	if scores == nil {
		scores = make(map[string]float64)
	}
	gates := st.GatesPassed
	if gates == nil {
		gates = make(map[string]string)
	}
	key := "pass" + strconv.Itoa(pass)
	scores[key] = score
	gates[key] = string(outcome)

	return s.client.Story.UpdateOneID(storyID).
		SetQualityScores(scores).
		SetGatesPassed(gates).
		Exec(ctx)
}

// AddFlags appends reason-coded flags, deduplicated.
func (s *StoryService) AddFlags(ctx context.Context, storyID string, flags ...string) error {
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	existing := st.Flags
	for _, f := range flags {
		found := false
		for _, e := range existing {
			if e == f {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, f)
		}
	}
	return s.client.Story.UpdateOneID(storyID).SetFlags(existing).Exec(ctx)
}

// RecordRetry increments the persisted gate retry counter for a pass.
func (s *StoryService) RecordRetry(ctx context.Context, storyID string, pass int) error {
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	counts := st.RetryCounts
	if counts == nil {
		counts = make(map[string]int)
	}
	counts["pass"+strconv.Itoa(pass)]++
	return s.client.Story.UpdateOneID(storyID).SetRetryCounts(counts).Exec(ctx)
}

// AddPassCost accumulates per-pass spend and keeps total_cost equal to the
// sum of cost_by_pass.
func (s *StoryService) AddPassCost(ctx context.Context, storyID string, pass int, costUSD float64) error {
	if storyID == "" {
		return nil
	}
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	costs := st.CostByPass
	if costs == nil {
		costs = make(map[string]float64)
	}
	costs["pass"+strconv.Itoa(pass)] += costUSD

	var total float64
	for _, c := range costs {
		total += c
	}
	return s.client.Story.UpdateOneID(storyID).
		SetCostByPass(costs).
		SetTotalCostUsd(total).
		Exec(ctx)
}

// IsCancelling reports whether a cancel was requested for the story.
func (s *StoryService) IsCancelling(ctx context.Context, storyID string) (bool, error) {
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return false, err
	}
	return st.Status == story.StatusCancelling, nil
}

// RequestCancel marks an in-flight story cancelling. The orchestrator
// honors it between stages; in-flight gateway calls run to completion.
func (s *StoryService) RequestCancel(ctx context.Context, storyID string) error {
	n, err := s.client.Story.Update().
		Where(
			story.IDEQ(storyID),
			story.StatusIn(story.StatusQueued, story.StatusInProgress),
		).
		SetStatus(story.StatusCancelling).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request cancel: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("story %s not cancellable: %w", storyID, ErrConflict)
	}
	return nil
}

// Heartbeat refreshes last_heartbeat_at for orphan detection.
func (s *StoryService) Heartbeat(ctx context.Context, storyID string) error {
	return s.client.Story.UpdateOneID(storyID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// SaveAgentRecord persists one AgentResult with its story (agent.Recorder).
func (s *StoryService) SaveAgentRecord(ctx context.Context, req models.CreateAgentRecordRequest) error {
	builder := s.client.AgentRecord.Create().
		SetID(uuid.New().String()).
		SetStoryID(req.StoryID).
		SetPass(req.Pass).
		SetStage(req.Stage).
		SetTaskName(req.TaskName).
		SetVersion(req.Version).
		SetExecutionID(req.ExecutionID).
		SetSuccess(req.Success).
		SetErrorKind(req.ErrorKind).
		SetErrorMessage(req.ErrorMessage).
		SetProvider(req.Provider).
		SetModelUsed(req.ModelUsed).
		SetTier(req.Tier).
		SetInputTokens(req.InputTokens).
		SetOutputTokens(req.OutputTokens).
		SetCostUsd(req.CostUSD).
		SetLatencyMs(req.LatencyMS).
		SetRetries(req.Retries).
		SetCacheHit(req.CacheHit)
	if req.QualityScore != nil {
		builder = builder.SetQualityScore(*req.QualityScore)
	}
	if req.Output != nil {
		builder = builder.SetOutput(req.Output)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save agent record: %w", err)
	}
	return nil
}

// SaveTranscript persists the debate transcript, sealing it when judgment is
// present. The verdict is written exactly once.
func (s *StoryService) SaveTranscript(ctx context.Context, t *models.Transcript) error {
	rounds := make([]map[string]interface{}, len(t.Rounds))
	for i, r := range t.Rounds {
		rounds[i] = toMap(r)
	}

	builder := s.client.DebateTranscript.Create().
		SetID(uuid.New().String()).
		SetStoryID(t.StoryID).
		SetRounds(rounds).
		SetConfidenceBefore(t.ConfidenceBefore)

	if t.Judgment != nil {
		builder = builder.
			SetJudgment(toMap(*t.Judgment)).
			SetVerdict(string(t.Judgment.Verdict)).
			SetConfidenceAfter(t.ConfidenceAfter).
			SetSealedAt(time.Now())
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save debate transcript: %w", err)
	}
	return nil
}

// SetTerminal writes the story's terminal state.
func (s *StoryService) SetTerminal(ctx context.Context, storyID string, status story.Status, articleFinal, abortReason, errMessage string) error {
	update := s.client.Story.UpdateOneID(storyID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if articleFinal != "" {
		update = update.SetArticleFinal(articleFinal)
	}
	if abortReason != "" {
		update = update.SetAbortReason(abortReason)
	}
	if errMessage != "" {
		update = update.SetErrorMessage(errMessage)
	}
	return update.Exec(ctx)
}

// SetStatus transitions a story's status without terminal bookkeeping.
func (s *StoryService) SetStatus(ctx context.Context, storyID string, status story.Status) error {
	return s.client.Story.UpdateOneID(storyID).SetStatus(status).Exec(ctx)
}

// ResetForReanalysis rewinds the story to the end of fromPass-1 and requeues
// it. Bounded to one reanalysis per story.
func (s *StoryService) ResetForReanalysis(ctx context.Context, storyID string, fromPass int) error {
	return s.resetFromPass(ctx, storyID, fromPass, true)
}

// RetryFromPass is the operator-facing reset: same rewind, no reanalysis
// budget consumed.
func (s *StoryService) RetryFromPass(ctx context.Context, storyID string, fromPass int) error {
	return s.resetFromPass(ctx, storyID, fromPass, false)
}

func (s *StoryService) resetFromPass(ctx context.Context, storyID string, fromPass int, countReanalysis bool) error {
	if fromPass < 1 || fromPass > 4 {
		return NewValidationError("from_pass", "must be in 1..4")
	}
	st, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	if countReanalysis && st.ReanalysisCount >= 1 {
		return fmt.Errorf("story %s already re-analyzed: %w", storyID, ErrConflict)
	}

	outputs := st.PassOutputs
	for key := range outputs {
		var pass int
		if _, err := fmt.Sscanf(key, "pass%d.", &pass); err == nil && pass >= fromPass {
			delete(outputs, key)
		}
	}
	scores := st.QualityScores
	gates := st.GatesPassed
	for p := fromPass; p <= 4; p++ {
		key := "pass" + strconv.Itoa(p)
		delete(scores, key)
		delete(gates, key)
	}

	update := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusQueued).
		SetCurrentPass(fromPass - 1).
		ClearCurrentStage().
		SetPassOutputs(outputs).
		SetQualityScores(scores).
		SetGatesPassed(gates).
		ClearPodID()
	if countReanalysis {
		update = update.SetReanalysisCount(st.ReanalysisCount + 1)
	}
	return update.Exec(ctx)
}

// Requeue returns a parked or orphaned story to the queue.
func (s *StoryService) Requeue(ctx context.Context, storyID string) error {
	return s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusQueued).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
}
