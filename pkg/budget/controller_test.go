package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/config"
)

func testBudgetConfig() *config.BudgetConfig {
	return &config.BudgetConfig{
		DailySoftUSD:   10,
		DailyHardUSD:   20,
		MonthlySoftUSD: 100,
		MonthlyHardUSD: 200,
		ReservationTTL: 10 * time.Minute,
	}
}

func newTestController(t *testing.T) (*Controller, *time.Time) {
	t.Helper()
	now := time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)
	c := NewController(testBudgetConfig())
	c.now = func() time.Time { return now }
	return c, &now
}

func TestReserveCommitAccounting(t *testing.T) {
	c, _ := newTestController(t)

	res, err := c.Reserve(2.0, false)
	require.NoError(t, err)

	state := c.Snapshot()
	assert.Equal(t, 2.0, state.DayReserved)
	assert.Equal(t, 0.0, state.DaySpentUSD)

	require.NoError(t, c.Commit(res, 1.5))

	state = c.Snapshot()
	assert.Equal(t, 0.0, state.DayReserved)
	assert.Equal(t, 1.5, state.DaySpentUSD)
	assert.Equal(t, 1.5, state.MonthSpentUSD)
}

func TestReleaseDropsHoldWithoutSpend(t *testing.T) {
	c, _ := newTestController(t)

	res, err := c.Reserve(3.0, false)
	require.NoError(t, err)
	c.Release(res)

	state := c.Snapshot()
	assert.Equal(t, 0.0, state.DayReserved)
	assert.Equal(t, 0.0, state.DaySpentUSD)
}

func TestSoftLimitDeniesNonCriticalAdmitsCritical(t *testing.T) {
	c, _ := newTestController(t)
	c.Seed(9.5, 9.5)

	// Non-critical past soft limit: denied
	_, err := c.Reserve(1.0, false)
	require.Error(t, err)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonSoftLimit, denied.Reason)

	// Critical-path task admitted past the soft limit
	res, err := c.Reserve(1.0, true)
	require.NoError(t, err)
	require.NoError(t, c.Commit(res, 1.0))
}

func TestHardLimitDeniesEverything(t *testing.T) {
	c, _ := newTestController(t)
	c.Seed(19.5, 19.5)

	exhausted := ""
	c.OnExhausted = func(window string) { exhausted = window }

	_, err := c.Reserve(1.0, true)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonHardLimit, denied.Reason)
	assert.NotEmpty(t, exhausted)

	// BUDGET_EXHAUSTED fires once per window
	exhausted = ""
	_, err = c.Reserve(1.0, true)
	require.Error(t, err)
	assert.Empty(t, exhausted)
}

func TestOverrideRaisesDailyHardLimitUntilDayBoundary(t *testing.T) {
	c, now := newTestController(t)
	c.Seed(19.5, 19.5)

	_, err := c.Reserve(1.0, true)
	require.Error(t, err)

	c.SetOverride(10)
	res, err := c.Reserve(1.0, true)
	require.NoError(t, err)
	require.NoError(t, c.Commit(res, 1.0))

	// Next day: override expired, windows rolled
	*now = now.Add(24 * time.Hour)
	state := c.Snapshot()
	assert.Equal(t, 0.0, state.DaySpentUSD)
	assert.Equal(t, 0.0, state.OverrideUSD)
}

func TestReservationExpiry(t *testing.T) {
	c, now := newTestController(t)

	_, err := c.Reserve(5.0, false)
	require.NoError(t, err)
	assert.Equal(t, 5.0, c.Snapshot().DayReserved)

	*now = now.Add(11 * time.Minute)
	// Next reserve sweeps the expired hold
	_, err = c.Reserve(1.0, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Snapshot().DayReserved)
}

// Budget monotonicity: after any sequence of successful reserves/commits,
// committed spend only grows and stays within limits plus override.
func TestBudgetMonotonicity(t *testing.T) {
	c, _ := newTestController(t)

	var lastSpent float64
	for i := 0; i < 50; i++ {
		res, err := c.Reserve(0.5, true)
		if err != nil {
			break
		}
		require.NoError(t, c.Commit(res, 0.4))
		state := c.Snapshot()
		assert.GreaterOrEqual(t, state.DaySpentUSD, lastSpent)
		lastSpent = state.DaySpentUSD
		assert.LessOrEqual(t, state.DaySpentUSD, testBudgetConfig().DailyHardUSD)
	}
	assert.Greater(t, lastSpent, 0.0)
}

func TestMonthWindowIndependentOfDay(t *testing.T) {
	c, now := newTestController(t)
	c.Seed(0, 95)

	// Month soft limit binds even with a fresh day
	_, err := c.Reserve(6.0, false)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "month", denied.Window)

	// New month resets
	*now = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err = c.Reserve(6.0, false)
	require.NoError(t, err)
}
