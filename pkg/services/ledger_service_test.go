package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/models"
	testdb "github.com/100percenttuna/undertow/test/database"
)

func TestLedgerWindowTotals(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedgerService(client.Client)
	ctx := context.Background()
	now := time.Now()

	// Empty ledger sums to zero, not an error
	day, month, err := ledger.WindowTotals(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, day)
	assert.Equal(t, 0.0, month)

	entries := []models.LedgerEntry{
		{Task: "motivation_analysis", Provider: "anthropic", Model: "m", Tier: "frontier",
			InputTokens: 1000, OutputTokens: 200, TotalCostUSD: 0.05, LatencyMS: 900, Timestamp: now},
		{Task: "fact_check", Provider: "openai", Model: "m2", Tier: "standard",
			InputTokens: 500, OutputTokens: 100, TotalCostUSD: 0.01, LatencyMS: 400, Timestamp: now},
		// Earlier this month but not today
		{Task: "chain_analysis", Provider: "anthropic", Model: "m", Tier: "frontier",
			InputTokens: 800, OutputTokens: 300, TotalCostUSD: 0.04, LatencyMS: 1200,
			Timestamp: now.Add(-26 * time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, ledger.Record(ctx, e))
	}

	day, month, err = ledger.WindowTotals(ctx, now)
	require.NoError(t, err)
	assert.InDelta(t, 0.06, day, 1e-9)

	// The -26h entry counts toward the month only when it falls inside it
	if now.Add(-26*time.Hour).Month() == now.Month() {
		assert.InDelta(t, 0.10, month, 1e-9)
	} else {
		assert.GreaterOrEqual(t, month, 0.06)
	}
}

func TestLedgerStoryTotal(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := NewStoryService(client.Client)
	runs := NewRunService(client.Client, stories)
	ledger := NewLedgerService(client.Client)
	ctx := context.Background()

	_, ids := seedRun(t, stories, runs)

	require.NoError(t, ledger.Record(ctx, models.LedgerEntry{
		StoryID: ids[0], Task: "factual_reconstruction", Provider: "openai",
		Model: "m", Tier: "standard", InputTokens: 100, OutputTokens: 50,
		TotalCostUSD: 0.002, LatencyMS: 300,
	}))
	require.NoError(t, ledger.Record(ctx, models.LedgerEntry{
		StoryID: ids[0], Task: "actor_analysis", Provider: "openai",
		Model: "m", Tier: "standard", InputTokens: 100, OutputTokens: 50,
		TotalCostUSD: 0.003, LatencyMS: 300,
	}))

	total, err := ledger.StoryTotal(ctx, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.005, total, 1e-9)

	// Unknown story sums to zero
	total, err = ledger.StoryTotal(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}
