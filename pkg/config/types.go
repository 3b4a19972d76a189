package config

import "time"

// Shared configuration structs used across the engine.

// RoutingConfig drives the model router's provider and tier decisions.
type RoutingConfig struct {
	// Primary provider selection policy
	Policy ProviderPolicy `yaml:"policy"`

	// Allow the alternate provider when the primary is unavailable
	FallbackEnabled bool `yaml:"fallback_enabled"`

	// Tiebreak provider for best_fit tasks with no hint
	DefaultProvider string `yaml:"default_provider"`

	// Per-task tier overrides (task name → tier); tasks not listed use the
	// built-in task tier map, then STANDARD
	TierMap map[string]Tier `yaml:"tier_map,omitempty"`

	// Per-task provider hints consulted under the best_fit policy
	BestFitHints map[string]string `yaml:"best_fit_hints,omitempty"`
}

// GateConfig holds one quality gate's pass threshold and near-miss band.
// A score in [threshold-retry_band, threshold) yields RETRY rather than ESCALATE.
type GateConfig struct {
	Threshold float64 `yaml:"threshold"`
	RetryBand float64 `yaml:"retry_band"`
}

// PipelineConfig holds orchestrator-level tunables.
type PipelineConfig struct {
	// Gate thresholds indexed "1".."4"
	Gates map[string]GateConfig `yaml:"gates"`

	// StrictMode raises Gate 3 to its strict threshold and makes confidence
	// clamping a hard failure everywhere
	StrictMode bool `yaml:"strict_mode"`

	// ClampConfidence permits out-of-range confidence values to be clamped
	// into [0,1] instead of failing the agent. Ignored under strict_mode.
	ClampConfidence bool `yaml:"clamp_confidence"`

	// Gate 3 threshold used when strict_mode is on
	Gate3StrictThreshold float64 `yaml:"gate3_strict_threshold"`

	// Gate retries per pass
	MaxRetriesPerPass int `yaml:"max_retries_per_pass"`

	// Pass 4 critique→revise loop bound
	MaxRevisionCycles int `yaml:"max_revision_cycles"`

	// Reduce Pass 3 supplementary to uncertainty-only when Pass 2 scored
	// >= 0.95 with no flags. Debate still runs unless SkipDebateOnEarlyExit
	// is set.
	EarlyTermination bool `yaml:"early_termination"`

	// Explicit switch to skip debate on early termination. Off by default;
	// debate is mandatory unless this is deliberately enabled.
	SkipDebateOnEarlyExit bool `yaml:"skip_debate_on_early_exit"`

	// Pass 2 score required for early termination
	EarlyTerminationScore float64 `yaml:"early_termination_score"`

	// Gate 4 word count band
	WordCountMin int `yaml:"word_count_min"`
	WordCountMax int `yaml:"word_count_max"`

	// Gate 4 forbidden phrases (hedging clichés, model boilerplate)
	ForbiddenPhrases []string `yaml:"forbidden_phrases,omitempty"`

	// Per-story spend soft cap; exceeding it flags the story
	PerStorySoftCapUSD float64 `yaml:"per_story_soft_cap_usd"`

	// Confidence ceiling decay per chain order past the first
	ConfidenceDecayPerOrder float64 `yaml:"confidence_decay_per_order"`
}

// GateFor returns the effective gate config for pass n, applying strict mode
// to Gate 3.
func (p *PipelineConfig) GateFor(pass int) GateConfig {
	g := p.Gates[gateKey(pass)]
	if pass == 3 && p.StrictMode && p.Gate3StrictThreshold > 0 {
		g.Threshold = p.Gate3StrictThreshold
	}
	return g
}

func gateKey(pass int) string {
	switch pass {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	default:
		return "4"
	}
}

// DebateConfig tunes the adversarial subprotocol.
type DebateConfig struct {
	Rounds int `yaml:"rounds"`

	// Judge confidence adjustment bounds: Δ ∈ [-MaxNegative, +MaxPositive]
	MaxPositiveAdjustment float64 `yaml:"max_positive_adjustment"`
	MaxNegativeAdjustment float64 `yaml:"max_negative_adjustment"`
}

// BudgetConfig holds daily and monthly spend limits.
type BudgetConfig struct {
	DailySoftUSD   float64 `yaml:"daily_soft_usd"`
	DailyHardUSD   float64 `yaml:"daily_hard_usd"`
	MonthlySoftUSD float64 `yaml:"monthly_soft_usd"`
	MonthlyHardUSD float64 `yaml:"monthly_hard_usd"`

	// Unfinished reservations are reclaimed after this long
	ReservationTTL time.Duration `yaml:"reservation_ttl"`
}

// TimeoutsConfig holds the per-level execution deadlines.
type TimeoutsConfig struct {
	Agent time.Duration `yaml:"agent"`
	Stage time.Duration `yaml:"stage"`
	Story time.Duration `yaml:"story"`
}

// ConcurrencyConfig bounds parallel work.
type ConcurrencyConfig struct {
	MaxConcurrentStories        int `yaml:"max_concurrent_stories"`
	MaxConcurrentAgentsPerStory int `yaml:"max_concurrent_agents_per_story"`
}

// CacheConfig holds per-class response cache TTLs.
type CacheConfig struct {
	TTL map[CacheKind]time.Duration `yaml:"ttl"`
}

// TTLFor returns the TTL for a cache kind, zero if uncached.
func (c *CacheConfig) TTLFor(kind CacheKind) time.Duration {
	if c == nil {
		return 0
	}
	return c.TTL[kind]
}

// RetryConfig tunes gateway retry behavior. The retried error set is fixed
// (rate limit, 5xx, network, timeout); only timing is configurable.
type RetryConfig struct {
	MaxAttempts     int           `yaml:"max_attempts"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxInterval     time.Duration `yaml:"max_interval"`
}

// RetentionConfig controls background data cleanup.
type RetentionConfig struct {
	// EventTTL is how long catch-up event rows live after creation.
	EventTTL time.Duration `yaml:"event_ttl"`

	// LedgerRetention is how long cost ledger rows are kept.
	LedgerRetention time.Duration `yaml:"ledger_retention"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// EscalationTrigger names one escalation predicate and its severity.
// Predicates themselves are implemented in the escalation package; config
// only switches them on and ranks them.
type EscalationTrigger struct {
	Name     string          `yaml:"name"`
	Severity TriggerSeverity `yaml:"severity"`
	Enabled  *bool           `yaml:"enabled,omitempty"` // nil = enabled
}

// IsEnabled reports whether the trigger is active.
func (t EscalationTrigger) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

// EscalationConfig holds trigger thresholds and the trigger set.
type EscalationConfig struct {
	ConfidenceThreshold   float64 `yaml:"confidence_threshold"`
	VerificationThreshold float64 `yaml:"verification_threshold"`
	ZonesAffectedMin      int     `yaml:"zones_affected_min"`
	NoveltyMin            int     `yaml:"novelty_min"`
	HeadsOfStateMin       int     `yaml:"heads_of_state_min"`

	// Topic tags that always route to review
	SensitiveTopics []string `yaml:"sensitive_topics,omitempty"`

	// Named predicates with severities; unknown names fail validation
	Triggers []EscalationTrigger `yaml:"triggers"`

	// Review SLA used to compute due_at
	ReviewDue time.Duration `yaml:"review_due"`
}

// TriggerSeverityFor returns the configured severity for a trigger name,
// defaulting to high for enabled-but-unranked triggers.
func (e *EscalationConfig) TriggerSeverityFor(name string) TriggerSeverity {
	for _, t := range e.Triggers {
		if t.Name == name {
			return t.Severity
		}
	}
	return SeverityHigh
}
