package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/models"
	testdb "github.com/100percenttuna/undertow/test/database"
)

func seedRun(t *testing.T, stories *StoryService, runs *RunService) (string, []string) {
	t.Helper()
	run, created, err := runs.CreateRun(context.Background(), models.CreatePipelineRunRequest{
		EditionID: "edition-" + t.Name(),
		Stories: []models.StorySeed{
			{
				Headline:         "Border incident escalates",
				PrimaryZone:      "eastern-europe",
				SourceArticleIDs: []string{"a1", "a2"},
				Novelty:          6,
				ZonesAffected:    3,
			},
		},
	})
	require.NoError(t, err)

	ids := make([]string, len(created))
	for i, s := range created {
		ids[i] = s.ID
	}
	return run.ID, ids
}

func TestStoryLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	storyID := ids[0]

	st, err := stories.GetStory(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, story.StatusQueued, st.Status)
	assert.Equal(t, 0, st.CurrentPass)

	// Progress and gate bookkeeping
	require.NoError(t, stories.UpdateStoryProgress(ctx, storyID, 1, "factual_reconstruction"))
	require.NoError(t, stories.RecordGate(ctx, storyID, 1, 0.82, models.GateOutcomePass))
	require.NoError(t, stories.AddFlags(ctx, storyID, "gate1_retry_1", "gate1_retry_1"))
	require.NoError(t, stories.RecordRetry(ctx, storyID, 1))

	st, err = stories.GetStory(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.CurrentPass)
	assert.Equal(t, 0.82, st.QualityScores["pass1"])
	assert.Equal(t, string(models.GateOutcomePass), st.GatesPassed["pass1"])
	assert.Equal(t, []string{"gate1_retry_1"}, st.Flags, "flags deduplicate")
	assert.Equal(t, 1, st.RetryCounts["pass1"])

	// Cost accounting keeps total equal to the per-pass sum
	require.NoError(t, stories.AddPassCost(ctx, storyID, 1, 0.30))
	require.NoError(t, stories.AddPassCost(ctx, storyID, 2, 0.50))
	require.NoError(t, stories.AddPassCost(ctx, storyID, 2, 0.25))

	st, err = stories.GetStory(ctx, storyID)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, st.CostByPass["pass1"], 1e-9)
	assert.InDelta(t, 0.75, st.CostByPass["pass2"], 1e-9)
	assert.InDelta(t, 1.05, st.TotalCostUsd, 1e-9)

	// Progress never regresses
	require.NoError(t, stories.UpdateStoryProgress(ctx, storyID, 1, "context_analysis"))
	st, _ = stories.GetStory(ctx, storyID)
	assert.Equal(t, 1, st.CurrentPass)

	// Terminal write
	require.NoError(t, stories.SetTerminal(ctx, storyID, story.StatusReadyForPublication,
		"final article text", "", ""))
	st, _ = stories.GetStory(ctx, storyID)
	assert.Equal(t, story.StatusReadyForPublication, st.Status)
	require.NotNil(t, st.ArticleFinal)
	assert.Equal(t, "final article text", *st.ArticleFinal)
	assert.NotNil(t, st.CompletedAt)
}

func TestRequestCancelOnlyFromActiveStates(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	storyID := ids[0]

	require.NoError(t, stories.RequestCancel(ctx, storyID))
	cancelling, err := stories.IsCancelling(ctx, storyID)
	require.NoError(t, err)
	assert.True(t, cancelling)

	// Already cancelling: not cancellable again
	err = stories.RequestCancel(ctx, storyID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestSaveAgentRecordAndTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	storyID := ids[0]

	score := 0.87
	require.NoError(t, stories.SaveAgentRecord(ctx, models.CreateAgentRecordRequest{
		StoryID:      storyID,
		Pass:         1,
		Stage:        "factual_reconstruction",
		TaskName:     "factual_reconstruction",
		Version:      "v1",
		ExecutionID:  "exec-1",
		Success:      true,
		Provider:     "anthropic",
		ModelUsed:    "claude-test",
		Tier:         "standard",
		InputTokens:  1200,
		OutputTokens: 400,
		CostUSD:      0.012,
		LatencyMS:    2100,
		QualityScore: &score,
		Output:       map[string]interface{}{"confidence": 0.9},
	}))

	records, err := client.AgentRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "exec-1", records[0].ExecutionID)
	assert.True(t, records[0].Success)
	require.NotNil(t, records[0].QualityScore)
	assert.Equal(t, 0.87, *records[0].QualityScore)

	// Sealed transcript persists with verdict set exactly once
	require.NoError(t, stories.SaveTranscript(ctx, &models.Transcript{
		StoryID:          storyID,
		ConfidenceBefore: 0.8,
		ConfidenceAfter:  0.75,
		Rounds: []models.DebateRound{{
			Number:          1,
			AdvocateDefense: "defense",
		}},
		Judgment: &models.Judgment{
			Verdict:              models.VerdictSoundWithModifications,
			ConfidenceAdjustment: -0.05,
		},
	}))

	transcripts, err := client.DebateTranscript.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, transcripts, 1)
	assert.Equal(t, string(models.VerdictSoundWithModifications), transcripts[0].Verdict)
	assert.NotNil(t, transcripts[0].SealedAt)
}

func TestResetForReanalysisBoundedToOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)
	storyID := ids[0]

	// Simulate progress through pass 3
	require.NoError(t, stories.UpdateStoryProgress(ctx, storyID, 3, "uncertainty_mapping"))
	require.NoError(t, stories.RecordGate(ctx, storyID, 1, 0.8, models.GateOutcomePass))
	require.NoError(t, stories.RecordGate(ctx, storyID, 2, 0.82, models.GateOutcomePass))
	require.NoError(t, stories.SaveBundleSnapshot(ctx, storyID, map[string]interface{}{
		"pass1.factual_reconstruction": map[string]interface{}{"confidence": 0.9},
		"pass2.motivation_analysis":    map[string]interface{}{"primary_driver": "x"},
		"pass3.theory_application":     map[string]interface{}{"best_fit": "realism"},
	}))
	require.NoError(t, stories.SetStatus(ctx, storyID, story.StatusEscalated))

	require.NoError(t, stories.ResetForReanalysis(ctx, storyID, 2))

	st, err := stories.GetStory(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, story.StatusQueued, st.Status)
	assert.Equal(t, 1, st.CurrentPass)
	assert.Contains(t, st.PassOutputs, "pass1.factual_reconstruction")
	assert.NotContains(t, st.PassOutputs, "pass2.motivation_analysis")
	assert.NotContains(t, st.PassOutputs, "pass3.theory_application")
	assert.NotContains(t, st.GatesPassed, "pass2")
	assert.Equal(t, 1, st.ReanalysisCount)

	// Second reanalysis is refused
	err = stories.ResetForReanalysis(ctx, storyID, 2)
	require.ErrorIs(t, err, ErrConflict)

	// Operator retry does not consume the reanalysis budget
	require.NoError(t, stories.RetryFromPass(ctx, storyID, 1))
	st, _ = stories.GetStory(ctx, storyID)
	assert.Equal(t, 1, st.ReanalysisCount)
}

func TestCreateRunRejectsDuplicateEdition(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ctx := context.Background()

	req := models.CreatePipelineRunRequest{
		EditionID: "edition-dup",
		Stories: []models.StorySeed{
			{Headline: "h", PrimaryZone: "z", SourceArticleIDs: []string{"a1"}},
		},
	}
	_, _, err := runs.CreateRun(ctx, req)
	require.NoError(t, err)

	_, _, err = runs.CreateRun(ctx, req)
	require.ErrorIs(t, err, ErrConflict)
}
