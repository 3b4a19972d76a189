package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/costledgerentry"
	"github.com/100percenttuna/undertow/pkg/models"
)

// LedgerService persists the append-only cost ledger. Implements the
// gateway's LedgerRecorder.
type LedgerService struct {
	client *ent.Client
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(client *ent.Client) *LedgerService {
	return &LedgerService{client: client}
}

// Record appends one ledger entry.
func (s *LedgerService) Record(ctx context.Context, entry models.LedgerEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	err := s.client.CostLedgerEntry.Create().
		SetID(uuid.New().String()).
		SetStoryID(entry.StoryID).
		SetRunID(entry.RunID).
		SetTask(entry.Task).
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetTier(entry.Tier).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetTotalCostUsd(entry.TotalCostUSD).
		SetLatencyMs(entry.LatencyMS).
		SetRetries(entry.Retries).
		SetCreatedAt(ts).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record ledger entry: %w", err)
	}
	return nil
}

// WindowTotals returns committed spend for the current day and month,
// used to seed the budget controller at startup.
func (s *LedgerService) WindowTotals(ctx context.Context, now time.Time) (dayUSD, monthUSD float64, err error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	dayUSD, err = s.sumSince(ctx, dayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum daily spend: %w", err)
	}
	monthUSD, err = s.sumSince(ctx, monthStart)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum monthly spend: %w", err)
	}
	return dayUSD, monthUSD, nil
}

// sumSince totals committed spend at or after the cutoff. An empty ledger
// sums to NULL, hence the pointer scan.
func (s *LedgerService) sumSince(ctx context.Context, since time.Time) (float64, error) {
	var rows []struct {
		Sum *float64 `json:"sum"`
	}
	err := s.client.CostLedgerEntry.Query().
		Where(costledgerentry.CreatedAtGTE(since)).
		Aggregate(ent.Sum(costledgerentry.FieldTotalCostUsd)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].Sum == nil {
		return 0, nil
	}
	return *rows[0].Sum, nil
}

// DeleteOlderThan removes ledger rows past the retention window.
func (s *LedgerService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.CostLedgerEntry.Delete().
		Where(costledgerentry.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired ledger entries: %w", err)
	}
	return n, nil
}

// StoryTotal sums ledger spend for one story (invariant checks, admin API).
func (s *LedgerService) StoryTotal(ctx context.Context, storyID string) (float64, error) {
	var rows []struct {
		Sum *float64 `json:"sum"`
	}
	err := s.client.CostLedgerEntry.Query().
		Where(costledgerentry.StoryIDEQ(storyID)).
		Aggregate(ent.Sum(costledgerentry.FieldTotalCostUsd)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to sum story spend: %w", err)
	}
	if len(rows) == 0 || rows[0].Sum == nil {
		return 0, nil
	}
	return *rows[0].Sum, nil
}
