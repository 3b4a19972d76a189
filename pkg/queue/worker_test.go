package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/pipeline"
)

func TestToJobFreshStory(t *testing.T) {
	claimed := &ent.Story{
		ID:               "s1",
		RunID:            "r1",
		EditionID:        "e1",
		Headline:         "h",
		PrimaryZone:      "zone",
		SourceArticleIds: []string{"a1", "a2"},
		Novelty:          7,
		ZonesAffected:    2,
	}

	job := toJob(claimed)
	assert.Equal(t, 1, job.StartPass)
	assert.Nil(t, job.Bundle)
	assert.Equal(t, []string{"a1", "a2"}, job.SourceArticleIDs)
	assert.Empty(t, job.RetryCounts)
}

func TestToJobResumesAfterLastPassedGate(t *testing.T) {
	claimed := &ent.Story{
		ID:          "s1",
		RunID:       "r1",
		PrimaryZone: "zone",
		GatesPassed: map[string]string{
			"pass1": "pass",
			"pass2": "pass_with_review",
		},
		PassOutputs: map[string]interface{}{
			"pass1.factual_reconstruction": map[string]interface{}{"confidence": 0.9},
			"pass2.motivation_analysis":    map[string]interface{}{"primary_driver": "x"},
		},
		RetryCounts: map[string]int{"pass2": 1},
	}

	job := toJob(claimed)
	assert.Equal(t, 3, job.StartPass)
	assert.NotNil(t, job.Bundle)
	_, ok := job.Bundle.Get(2, "motivation_analysis")
	assert.True(t, ok)
	assert.Equal(t, 1, job.RetryCounts[2])
}

func TestToJobDoesNotSkipPastFailedGate(t *testing.T) {
	claimed := &ent.Story{
		ID:          "s1",
		RunID:       "r1",
		PrimaryZone: "zone",
		GatesPassed: map[string]string{
			"pass1": "pass",
			"pass2": "escalate",
			"pass3": "pass", // stale from an earlier run shape; unreachable
		},
	}

	job := toJob(claimed)
	assert.Equal(t, 2, job.StartPass)
}

func TestTerminalStatusMapping(t *testing.T) {
	tests := []struct {
		in     pipeline.Status
		out    story.Status
		reason string
	}{
		{pipeline.StatusReadyForPublication, story.StatusReadyForPublication, ""},
		{pipeline.StatusEscalated, story.StatusEscalated, ""},
		{pipeline.StatusCancelled, story.StatusCancelled, ""},
		{pipeline.StatusTimedOut, story.StatusTimedOut, pipeline.ReasonStoryTimeout},
	}
	for _, tc := range tests {
		status, reason := terminalStatus(&pipeline.StoryResult{Status: tc.in})
		assert.Equal(t, tc.out, status)
		assert.Equal(t, tc.reason, reason)
	}

	status, reason := terminalStatus(&pipeline.StoryResult{
		Status:      pipeline.StatusFailed,
		AbortReason: pipeline.ReasonNoEvents,
		Err:         errors.New("no articles"),
	})
	assert.Equal(t, story.StatusFailed, status)
	assert.Equal(t, pipeline.ReasonNoEvents, reason)
}
