package models

import "time"

// CreatePipelineRunRequest starts a run for one edition.
type CreatePipelineRunRequest struct {
	EditionID       string                 `json:"edition_id"`
	Stories         []StorySeed            `json:"stories"`
	ConfigOverrides map[string]interface{} `json:"config_overrides,omitempty"`
}

// StorySeed is the selection-side input for one story.
type StorySeed struct {
	Headline         string   `json:"headline"`
	PrimaryZone      string   `json:"primary_zone"`
	SecondaryZones   []string `json:"secondary_zones,omitempty"`
	SourceArticleIDs []string `json:"source_article_ids"`
	Novelty          int      `json:"novelty,omitempty"`
	ZonesAffected    int      `json:"zones_affected,omitempty"`
	SignalType       string   `json:"signal_type,omitempty"`
	Topics           []string `json:"topics,omitempty"`
}

// CreateAgentRecordRequest persists one AgentResult with its story.
type CreateAgentRecordRequest struct {
	StoryID      string
	Pass         int
	Stage        string
	TaskName     string
	Version      string
	ExecutionID  string
	Success      bool
	ErrorKind    string
	ErrorMessage string
	Provider     string
	ModelUsed    string
	Tier         string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMS    int
	Retries      int
	CacheHit     bool
	QualityScore *float64
	Output       map[string]interface{}
}

// CreateEscalationRequest packages a story for human review.
type CreateEscalationRequest struct {
	StoryID    string
	Severity   string
	Triggers   []string
	Package    ReviewPackage
	BundleHash string
	DueAt      *time.Time
}

// ResolveEscalationRequest is the reviewer's decision payload.
type ResolveEscalationRequest struct {
	Resolution Resolution `json:"resolution"`
	Notes      string     `json:"notes,omitempty"`
	// EditedDraft is required for approved_with_edits
	EditedDraft string `json:"edited_draft,omitempty"`
	// FromPass is required for request_reanalysis
	FromPass int    `json:"from_pass,omitempty"`
	Assignee string `json:"assignee,omitempty"`
}

// CreateEventRequest persists one catch-up copy of a NOTIFY payload.
type CreateEventRequest struct {
	RunID   string
	Channel string
	Payload map[string]interface{}
}

// RetryStoryRequest re-runs a story from the given pass.
type RetryStoryRequest struct {
	FromPass int `json:"from_pass"`
}

// CancelRunRequest carries the cancellation reason.
type CancelRunRequest struct {
	Reason string `json:"reason"`
}

// BudgetOverrideRequest grants a bounded one-day budget override.
type BudgetOverrideRequest struct {
	AmountUSD float64 `json:"amount_usd"`
}
