package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/escalationitem"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/models"
)

// EscalationService manages the human-review queue. Implements the
// escalation manager's Store and applies review resolutions to stories.
type EscalationService struct {
	client  *ent.Client
	stories *StoryService
}

// NewEscalationService creates a new EscalationService.
func NewEscalationService(client *ent.Client, stories *StoryService) *EscalationService {
	return &EscalationService{client: client, stories: stories}
}

// CreateEscalation persists a new open escalation item.
func (s *EscalationService) CreateEscalation(ctx context.Context, req models.CreateEscalationRequest) (string, error) {
	if req.StoryID == "" {
		return "", NewValidationError("story_id", "required")
	}
	id := uuid.New().String()
	builder := s.client.EscalationItem.Create().
		SetID(id).
		SetStoryID(req.StoryID).
		SetSeverity(escalationitem.Severity(req.Severity)).
		SetTriggers(req.Triggers).
		SetReviewPackage(toMap(req.Package)).
		SetBundleHash(req.BundleHash)
	if req.DueAt != nil {
		builder = builder.SetDueAt(*req.DueAt)
	}
	if err := builder.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create escalation item: %w", err)
	}
	return id, nil
}

// Get fetches an escalation item.
func (s *EscalationService) Get(ctx context.Context, id string) (*ent.EscalationItem, error) {
	item, err := s.client.EscalationItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("escalation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get escalation: %w", err)
	}
	return item, nil
}

// List returns escalation items, optionally filtered by status, newest first.
func (s *EscalationService) List(ctx context.Context, status string) ([]*ent.EscalationItem, error) {
	q := s.client.EscalationItem.Query().
		Order(ent.Desc(escalationitem.FieldCreatedAt))
	if status != "" {
		q = q.Where(escalationitem.StatusEQ(escalationitem.Status(status)))
	}
	items, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalations: %w", err)
	}
	return items, nil
}

// Resolve records a reviewer decision and applies its effect to the story:
//
//   - approved: the story resumes from its parked point (requeued).
//   - approved_with_edits: the submitted text replaces the Pass 4 draft and
//     the story skips the remaining production stages.
//   - request_reanalysis: story state resets to the end of from_pass-1 and
//     re-runs; bounded to one reanalysis per story.
//   - rejected: terminal FAILED with reason.
func (s *EscalationService) Resolve(ctx context.Context, itemID string, req models.ResolveEscalationRequest) (*ent.EscalationItem, error) {
	if !req.Resolution.IsValid() {
		return nil, NewValidationError("resolution", fmt.Sprintf("invalid: %q", req.Resolution))
	}
	if req.Resolution == models.ResolutionApprovedWithEdits && req.EditedDraft == "" {
		return nil, NewValidationError("edited_draft", "required for approved_with_edits")
	}
	if req.Resolution == models.ResolutionRequestReanalysis && (req.FromPass < 1 || req.FromPass > 4) {
		return nil, NewValidationError("from_pass", "must be in 1..4 for request_reanalysis")
	}

	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status == escalationitem.StatusResolved {
		return nil, fmt.Errorf("escalation %s already resolved: %w", itemID, ErrConflict)
	}

	// Apply the story-side effect first; a failed effect leaves the item
	// open for another attempt.
	switch req.Resolution {
	case models.ResolutionApproved:
		if err := s.stories.Requeue(ctx, item.StoryID); err != nil {
			return nil, fmt.Errorf("failed to resume story: %w", err)
		}
	case models.ResolutionApprovedWithEdits:
		if err := s.client.Story.UpdateOneID(item.StoryID).
			SetArticleFinal(req.EditedDraft).
			SetStatus(story.StatusReadyForPublication).
			SetCompletedAt(time.Now()).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to apply edited draft: %w", err)
		}
	case models.ResolutionRequestReanalysis:
		if err := s.stories.ResetForReanalysis(ctx, item.StoryID, req.FromPass); err != nil {
			return nil, err
		}
	case models.ResolutionRejected:
		if err := s.stories.SetTerminal(ctx, item.StoryID, story.StatusFailed,
			"", "ESCALATION_REJECTED", req.Notes); err != nil {
			return nil, fmt.Errorf("failed to reject story: %w", err)
		}
	}

	update := s.client.EscalationItem.UpdateOneID(itemID).
		SetStatus(escalationitem.StatusResolved).
		SetResolution(escalationitem.Resolution(req.Resolution)).
		SetResolutionNotes(req.Notes).
		SetResolvedAt(time.Now())
	if req.Resolution == models.ResolutionApprovedWithEdits {
		update = update.SetEditedDraft(req.EditedDraft)
	}
	if req.Resolution == models.ResolutionRequestReanalysis {
		update = update.SetReanalysisFromPass(req.FromPass)
	}
	if req.Assignee != "" {
		update = update.SetAssignee(req.Assignee)
	}

	item, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve escalation: %w", err)
	}
	return item, nil
}
