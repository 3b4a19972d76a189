package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"story.status","story_id":"s1","status":"published"}`)

	out, err := injectDBEventID(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "story.status", m["type"])
}

func TestTruncateIfNeededPassesSmallPayloads(t *testing.T) {
	out, err := truncateIfNeeded(`{"type":"gate.result","score":0.8}`)
	require.NoError(t, err)
	assert.Contains(t, out, "0.8")
}

func TestTruncateIfNeededReplacesOversizedPayloads(t *testing.T) {
	big := map[string]any{
		"type":        "story.status",
		"run_id":      "r1",
		"story_id":    "s1",
		"db_event_id": 7,
		"blob":        strings.Repeat("x", 9000),
	}
	raw, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(raw))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "story.status", m["type"])
	assert.Equal(t, "r1", m["run_id"])
	assert.Equal(t, "s1", m["story_id"])
	assert.NotContains(t, m, "blob")
}

func TestRunChannelNaming(t *testing.T) {
	assert.Equal(t, "undertow_run_abc", RunChannel("abc"))
}
