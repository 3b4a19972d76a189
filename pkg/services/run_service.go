package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/pipelinerun"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/models"
)

// RunService manages pipeline run lifecycle.
type RunService struct {
	client  *ent.Client
	stories *StoryService
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, stories *StoryService) *RunService {
	return &RunService{client: client, stories: stories}
}

// CreateRun creates a run and its stories for one edition. editions are
// unique per run; a duplicate edition returns ErrConflict.
func (s *RunService) CreateRun(ctx context.Context, req models.CreatePipelineRunRequest) (*ent.PipelineRun, []*ent.Story, error) {
	if req.EditionID == "" {
		return nil, nil, NewValidationError("edition_id", "required")
	}
	if len(req.Stories) == 0 {
		return nil, nil, NewValidationError("stories", "at least one story is required")
	}

	run, err := s.client.PipelineRun.Create().
		SetID(uuid.New().String()).
		SetEditionID(req.EditionID).
		SetStatus(pipelinerun.StatusRunning).
		SetConfigOverrides(req.ConfigOverrides).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, fmt.Errorf("edition %s already has a run: %w", req.EditionID, ErrConflict)
		}
		return nil, nil, fmt.Errorf("failed to create run: %w", err)
	}

	stories, err := s.stories.CreateStories(ctx, run.ID, req.EditionID, req.Stories)
	if err != nil {
		return nil, nil, err
	}
	return run, stories, nil
}

// GetRun fetches a run by id.
func (s *RunService) GetRun(ctx context.Context, id string) (*ent.PipelineRun, error) {
	run, err := s.client.PipelineRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// Pause parks a running run. Stories finish their current stage, then no new
// stages dispatch.
func (s *RunService) Pause(ctx context.Context, runID string) error {
	n, err := s.client.PipelineRun.Update().
		Where(pipelinerun.IDEQ(runID), pipelinerun.StatusEQ(pipelinerun.StatusRunning)).
		SetStatus(pipelinerun.StatusPaused).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not running: %w", runID, ErrConflict)
	}
	return nil
}

// Resume continues a paused run from its parked state.
func (s *RunService) Resume(ctx context.Context, runID string) error {
	n, err := s.client.PipelineRun.Update().
		Where(pipelinerun.IDEQ(runID), pipelinerun.StatusEQ(pipelinerun.StatusPaused)).
		SetStatus(pipelinerun.StatusRunning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not paused: %w", runID, ErrConflict)
	}
	return nil
}

// Cancel marks a run cancelled and requests cancellation of its non-terminal
// stories. In-flight gateway calls finish; their outputs are not consumed.
func (s *RunService) Cancel(ctx context.Context, runID, reason string) error {
	n, err := s.client.PipelineRun.Update().
		Where(pipelinerun.IDEQ(runID), pipelinerun.StatusIn(pipelinerun.StatusRunning, pipelinerun.StatusPaused, pipelinerun.StatusPending)).
		SetStatus(pipelinerun.StatusCancelled).
		SetCancelReason(reason).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not cancellable: %w", runID, ErrConflict)
	}

	// Queued stories cancel immediately; in-flight ones transition to
	// cancelling and park at the next stage boundary.
	if _, err := s.client.Story.Update().
		Where(story.RunIDEQ(runID), story.StatusEQ(story.StatusQueued)).
		SetStatus(story.StatusCancelled).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to cancel queued stories: %w", err)
	}
	if _, err := s.client.Story.Update().
		Where(story.RunIDEQ(runID), story.StatusEQ(story.StatusInProgress)).
		SetStatus(story.StatusCancelling).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark in-flight stories cancelling: %w", err)
	}
	return nil
}

// IsPaused reports whether the run is parked.
func (s *RunService) IsPaused(ctx context.Context, runID string) (bool, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return false, err
	}
	return run.Status == pipelinerun.StatusPaused, nil
}

// AppendError adds one per-story failure entry to the run's error log.
// The run itself never raises; it completes with a mix of outcomes.
func (s *RunService) AppendError(ctx context.Context, runID, storyID, reason, message string) error {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	log := run.ErrorLog
	log = append(log, map[string]interface{}{
		"story_id": storyID,
		"reason":   reason,
		"message":  message,
		"at":       time.Now().Format(time.RFC3339),
	})
	return s.client.PipelineRun.UpdateOneID(runID).SetErrorLog(log).Exec(ctx)
}

// AddCost accumulates spend on the run's total.
func (s *RunService) AddCost(ctx context.Context, runID string, costUSD float64) error {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	return s.client.PipelineRun.UpdateOneID(runID).
		SetCostTotalUsd(run.CostTotalUsd + costUSD).
		Exec(ctx)
}

// CompleteIfDone marks the run completed when none of its stories is queued,
// in progress, cancelling, escalated or paused.
func (s *RunService) CompleteIfDone(ctx context.Context, runID string) (bool, error) {
	open, err := s.client.Story.Query().
		Where(
			story.RunIDEQ(runID),
			story.StatusIn(story.StatusQueued, story.StatusInProgress, story.StatusCancelling, story.StatusEscalated, story.StatusPaused),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count open stories: %w", err)
	}
	if open > 0 {
		return false, nil
	}

	n, err := s.client.PipelineRun.Update().
		Where(pipelinerun.IDEQ(runID), pipelinerun.StatusEQ(pipelinerun.StatusRunning)).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete run: %w", err)
	}
	return n > 0, nil
}
