// Package models holds request structs and domain value types shared by
// services, the orchestrator, and the API layer.
package models

import "time"

// LedgerEntry is one append-only cost ledger row, recorded by the gateway on
// every terminal call outcome.
type LedgerEntry struct {
	StoryID      string
	RunID        string
	Task         string
	Provider     string
	Model        string
	Tier         string
	InputTokens  int
	OutputTokens int
	TotalCostUSD float64
	LatencyMS    int
	Retries      int
	Timestamp    time.Time
}
