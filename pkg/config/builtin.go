package config

import "time"

// Canonical escalation trigger names. Config references triggers by these
// names; unknown names fail validation.
const (
	TriggerConfidenceBelowThreshold   = "confidence_below_threshold"
	TriggerVerificationBelowThreshold = "verification_below_threshold"
	TriggerUnresolvedCriticalDebate   = "unresolved_critical_debate"
	TriggerHighImpactCombination      = "high_impact_combination"
	TriggerCounterConsensus           = "counter_consensus"
	TriggerSensitiveTopic             = "sensitive_topic"
	TriggerHeadsOfState               = "heads_of_state"
	TriggerGateFailureMaxRetries      = "gate_failure_max_retries"
)

// KnownTriggerNames lists every trigger the escalation manager implements.
var KnownTriggerNames = []string{
	TriggerConfidenceBelowThreshold,
	TriggerVerificationBelowThreshold,
	TriggerUnresolvedCriticalDebate,
	TriggerHighImpactCombination,
	TriggerCounterConsensus,
	TriggerSensitiveTopic,
	TriggerHeadsOfState,
	TriggerGateFailureMaxRetries,
}

// builtinTaskTierMap assigns each analytical task its default tier. Routing
// config tier_map overrides these per deployment.
var builtinTaskTierMap = map[string]Tier{
	// Pass 1 — foundation
	"factual_reconstruction": TierStandard,
	"context_analysis":       TierStandard,
	"actor_analysis":         TierStandard,

	// Pass 2 — core
	"motivation_analysis": TierFrontier,
	"chain_analysis":      TierFrontier,
	"subtlety_analysis":   TierHigh,

	// Pass 3 — supplementary
	"theory_application":   TierHigh,
	"historical_analogy":   TierHigh,
	"strategic_geometry":   TierHigh,
	"shockwave_projection": TierHigh,
	"uncertainty_mapping":  TierHigh,

	// Pass 3 — adversarial
	"debate_advocate":     TierHigh,
	"debate_challenger":   TierFrontier,
	"debate_judge":        TierFrontier,
	"fact_check":          TierStandard,
	"source_verification": TierFast,

	// Pass 4 — production
	"article_write":   TierFrontier,
	"voice_calibrate": TierHigh,
	"self_critique":   TierHigh,
	"revise":          TierFrontier,
}

// builtinBestFitHints maps tasks to the provider that historically does them
// best. Consulted only under the best_fit policy; ties fall to the routing
// default provider.
var builtinBestFitHints = map[string]string{
	"motivation_analysis":    "anthropic",
	"chain_analysis":         "anthropic",
	"debate_judge":           "anthropic",
	"article_write":          "anthropic",
	"voice_calibrate":        "anthropic",
	"revise":                 "anthropic",
	"fact_check":             "openai",
	"source_verification":    "openai",
	"factual_reconstruction": "openai",
}

// BuiltinTaskTier returns the built-in default tier for a task, or
// TierStandard for unknown tasks.
func BuiltinTaskTier(task string) Tier {
	if t, ok := builtinTaskTierMap[task]; ok {
		return t
	}
	return TierStandard
}

// BuiltinBestFitHint returns the built-in provider hint for a task ("" = none).
func BuiltinBestFitHint(task string) string {
	return builtinBestFitHints[task]
}

// defaultPipelineConfig returns the built-in pipeline tunables.
func defaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Gates: map[string]GateConfig{
			"1": {Threshold: 0.75, RetryBand: 0.05},
			"2": {Threshold: 0.80, RetryBand: 0.05},
			"3": {Threshold: 0.80, RetryBand: 0.05},
			"4": {Threshold: 0.85, RetryBand: 0.05},
		},
		Gate3StrictThreshold:    0.85,
		MaxRetriesPerPass:       2,
		MaxRevisionCycles:       2,
		EarlyTerminationScore:   0.95,
		WordCountMin:            1800,
		WordCountMax:            3200,
		PerStorySoftCapUSD:      6.0,
		ConfidenceDecayPerOrder: 0.85,
		ForbiddenPhrases: []string{
			"it remains to be seen",
			"only time will tell",
			"in conclusion",
			"as an ai",
			"delve into",
		},
	}
}

// defaultDebateConfig returns the built-in debate tunables.
func defaultDebateConfig() *DebateConfig {
	return &DebateConfig{
		Rounds:                3,
		MaxPositiveAdjustment: 0.2,
		MaxNegativeAdjustment: 0.5,
	}
}

// defaultBudgetConfig returns the built-in budget limits.
func defaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		DailySoftUSD:   50,
		DailyHardUSD:   100,
		MonthlySoftUSD: 1000,
		MonthlyHardUSD: 2000,
		ReservationTTL: 10 * time.Minute,
	}
}

// defaultTimeoutsConfig returns the built-in execution deadlines.
func defaultTimeoutsConfig() *TimeoutsConfig {
	return &TimeoutsConfig{
		Agent: 120 * time.Second,
		Stage: 10 * time.Minute,
		Story: 60 * time.Minute,
	}
}

// defaultConcurrencyConfig returns the built-in parallelism bounds.
func defaultConcurrencyConfig() *ConcurrencyConfig {
	return &ConcurrencyConfig{
		MaxConcurrentStories:        5,
		MaxConcurrentAgentsPerStory: 4,
	}
}

// defaultCacheConfig returns the built-in response cache TTLs.
func defaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		TTL: map[CacheKind]time.Duration{
			CacheKindAnalysis:     24 * time.Hour,
			CacheKindVerification: 6 * time.Hour,
			CacheKindProduction:   0, // prose is never cached
			CacheKindEmbedding:    7 * 24 * time.Hour,
		},
	}
}

// defaultRetryConfig returns the built-in gateway retry timing.
func defaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:     3,
		InitialInterval: 4 * time.Second,
		MaxInterval:     60 * time.Second,
	}
}

// defaultRoutingConfig returns the built-in routing policy.
func defaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Policy:          PolicyBestFit,
		FallbackEnabled: true,
		DefaultProvider: "anthropic",
	}
}

// defaultRetentionConfig returns the built-in retention policy.
func defaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		LedgerRetention: 90 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// defaultEscalationConfig returns the built-in escalation trigger set.
func defaultEscalationConfig() *EscalationConfig {
	return &EscalationConfig{
		ConfidenceThreshold:   0.70,
		VerificationThreshold: 0.70,
		ZonesAffectedMin:      5,
		NoveltyMin:            8,
		HeadsOfStateMin:       3,
		ReviewDue:             6 * time.Hour,
		Triggers: []EscalationTrigger{
			{Name: TriggerConfidenceBelowThreshold, Severity: SeverityHigh},
			{Name: TriggerVerificationBelowThreshold, Severity: SeverityHigh},
			{Name: TriggerUnresolvedCriticalDebate, Severity: SeverityCritical},
			{Name: TriggerHighImpactCombination, Severity: SeverityHigh},
			{Name: TriggerCounterConsensus, Severity: SeverityMedium},
			{Name: TriggerSensitiveTopic, Severity: SeverityHigh},
			{Name: TriggerHeadsOfState, Severity: SeverityMedium},
			{Name: TriggerGateFailureMaxRetries, Severity: SeverityHigh},
		},
	}
}
