package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/ent/escalationitem"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/models"
	testdb "github.com/100percenttuna/undertow/test/database"
)

func seedEscalation(t *testing.T, escalations *EscalationService, storyID string) string {
	t.Helper()
	id, err := escalations.CreateEscalation(context.Background(), models.CreateEscalationRequest{
		StoryID:  storyID,
		Severity: "high",
		Triggers: []string{"confidence_below_threshold"},
		Package: models.ReviewPackage{
			Draft:          "draft",
			SpecificIssues: []models.SpecificIssue{{Location: "pass2", Description: "weak driver"}},
			AnalysisChain:  map[string]interface{}{"pass1.factual_reconstruction": map[string]interface{}{}},
		},
		BundleHash: "abc123",
	})
	require.NoError(t, err)
	return id
}

func TestResolveApprovedRequeuesStory(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	escalations := NewEscalationService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	require.NoError(t, stories.SetStatus(ctx, ids[0], story.StatusEscalated))
	itemID := seedEscalation(t, escalations, ids[0])

	item, err := escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution: models.ResolutionApproved,
		Notes:      "looks fine",
	})
	require.NoError(t, err)
	assert.Equal(t, escalationitem.StatusResolved, item.Status)

	st, err := stories.GetStory(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, story.StatusQueued, st.Status)
}

func TestResolveApprovedWithEditsBypassesProduction(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	escalations := NewEscalationService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	require.NoError(t, stories.SetStatus(ctx, ids[0], story.StatusEscalated))
	itemID := seedEscalation(t, escalations, ids[0])

	_, err := escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution:  models.ResolutionApprovedWithEdits,
		EditedDraft: "reviewer-approved final text",
	})
	require.NoError(t, err)

	st, err := stories.GetStory(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, story.StatusReadyForPublication, st.Status)
	require.NotNil(t, st.ArticleFinal)
	assert.Equal(t, "reviewer-approved final text", *st.ArticleFinal)
}

func TestResolveRejectedFailsStory(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	escalations := NewEscalationService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	require.NoError(t, stories.SetStatus(ctx, ids[0], story.StatusEscalated))
	itemID := seedEscalation(t, escalations, ids[0])

	_, err := escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution: models.ResolutionRejected,
		Notes:      "analysis unsound",
	})
	require.NoError(t, err)

	st, err := stories.GetStory(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, story.StatusFailed, st.Status)
}

func TestResolveValidatesRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	escalations := NewEscalationService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	itemID := seedEscalation(t, escalations, ids[0])

	_, err := escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution: "shrug",
	})
	require.Error(t, err)

	_, err = escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution: models.ResolutionApprovedWithEdits, // missing edited_draft
	})
	require.Error(t, err)

	_, err = escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{
		Resolution: models.ResolutionRequestReanalysis, // missing from_pass
	})
	require.Error(t, err)
}

func TestResolveTwiceConflicts(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	escalations := NewEscalationService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	require.NoError(t, stories.SetStatus(ctx, ids[0], story.StatusEscalated))
	itemID := seedEscalation(t, escalations, ids[0])

	_, err := escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{Resolution: models.ResolutionApproved})
	require.NoError(t, err)

	_, err = escalations.Resolve(ctx, itemID, models.ResolveEscalationRequest{Resolution: models.ResolutionRejected})
	require.ErrorIs(t, err, ErrConflict)
}
