package config

import (
	"fmt"
	"slices"
)

// Validator validates configuration comprehensively with clear error messages
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *Validator) ValidateAll() error {
	// Validate in order: providers → routing → pipeline → debate → budget →
	// timeouts → concurrency → escalation → queue. Dependencies first so
	// cross-references (e.g. routing default provider) resolve.

	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}
	if err := v.validateRouting(); err != nil {
		return fmt.Errorf("routing validation failed: %w", err)
	}
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}
	if err := v.validateDebate(); err != nil {
		return fmt.Errorf("debate validation failed: %w", err)
	}
	if err := v.validateBudget(); err != nil {
		return fmt.Errorf("budget validation failed: %w", err)
	}
	if err := v.validateTimeouts(); err != nil {
		return fmt.Errorf("timeout validation failed: %w", err)
	}
	if err := v.validateConcurrency(); err != nil {
		return fmt.Errorf("concurrency validation failed: %w", err)
	}
	if err := v.validateEscalation(); err != nil {
		return fmt.Errorf("escalation validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	return nil
}

func (v *Validator) validateProviders() error {
	if v.cfg.Providers.Len() == 0 {
		return NewValidationError("providers", "llm_providers", "", ErrMissingRequiredField)
	}
	for name, p := range v.cfg.Providers.GetAll() {
		if !p.Type.IsValid() {
			return NewValidationError("provider", name, "type", fmt.Errorf("%w: %q", ErrInvalidValue, p.Type))
		}
		if p.APIKeyEnv == "" {
			return NewValidationError("provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if len(p.Models) == 0 {
			return NewValidationError("provider", name, "models", ErrMissingRequiredField)
		}
		for tier, m := range p.Models {
			if !tier.IsValid() {
				return NewValidationError("provider", name, "models", fmt.Errorf("%w: tier %q", ErrInvalidValue, tier))
			}
			if m.ID == "" {
				return NewValidationError("provider", name, fmt.Sprintf("models.%s.id", tier), ErrMissingRequiredField)
			}
			if m.InputRatePerMTok < 0 || m.OutputRatePerMTok < 0 {
				return NewValidationError("provider", name, fmt.Sprintf("models.%s", tier),
					fmt.Errorf("%w: negative token rate", ErrInvalidValue))
			}
		}
		if p.RequestsPerMinute < 0 || p.TokensPerMinute < 0 {
			return NewValidationError("provider", name, "rate_limits",
				fmt.Errorf("%w: negative rate limit", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateRouting() error {
	r := v.cfg.Routing
	if !r.Policy.IsValid() {
		return NewValidationError("routing", "policy", "", fmt.Errorf("%w: %q", ErrInvalidValue, r.Policy))
	}
	if r.DefaultProvider == "" {
		return NewValidationError("routing", "default_provider", "", ErrMissingRequiredField)
	}
	if !v.cfg.Providers.Has(r.DefaultProvider) {
		return NewValidationError("routing", "default_provider", "",
			fmt.Errorf("%w: %s", ErrProviderNotFound, r.DefaultProvider))
	}
	for task, tier := range r.TierMap {
		if !tier.IsValid() {
			return NewValidationError("routing", "tier_map", task, fmt.Errorf("%w: %q", ErrInvalidValue, tier))
		}
	}
	for task, provider := range r.BestFitHints {
		if !v.cfg.Providers.Has(provider) {
			return NewValidationError("routing", "best_fit_hints", task,
				fmt.Errorf("%w: %s", ErrProviderNotFound, provider))
		}
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	for _, key := range []string{"1", "2", "3", "4"} {
		g, ok := p.Gates[key]
		if !ok {
			return NewValidationError("pipeline", "gates", key, ErrMissingRequiredField)
		}
		if g.Threshold < 0 || g.Threshold > 1 {
			return NewValidationError("pipeline", "gates", key,
				fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidValue, g.Threshold))
		}
		if g.RetryBand < 0 || g.RetryBand > g.Threshold {
			return NewValidationError("pipeline", "gates", key,
				fmt.Errorf("%w: retry_band %v", ErrInvalidValue, g.RetryBand))
		}
	}
	if p.MaxRetriesPerPass < 0 {
		return NewValidationError("pipeline", "max_retries_per_pass", "",
			fmt.Errorf("%w: negative", ErrInvalidValue))
	}
	if p.MaxRevisionCycles < 0 {
		return NewValidationError("pipeline", "max_revision_cycles", "",
			fmt.Errorf("%w: negative", ErrInvalidValue))
	}
	if p.ConfidenceDecayPerOrder <= 0 || p.ConfidenceDecayPerOrder > 1 {
		return NewValidationError("pipeline", "confidence_decay_per_order", "",
			fmt.Errorf("%w: %v outside (0,1]", ErrInvalidValue, p.ConfidenceDecayPerOrder))
	}
	if p.WordCountMin > 0 && p.WordCountMax > 0 && p.WordCountMin > p.WordCountMax {
		return NewValidationError("pipeline", "word_count", "",
			fmt.Errorf("%w: min %d > max %d", ErrInvalidValue, p.WordCountMin, p.WordCountMax))
	}
	return nil
}

func (v *Validator) validateDebate() error {
	d := v.cfg.Debate
	if d.Rounds < 1 {
		return NewValidationError("debate", "rounds", "",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if d.MaxPositiveAdjustment < 0 || d.MaxPositiveAdjustment > 1 {
		return NewValidationError("debate", "max_positive_adjustment", "",
			fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, d.MaxPositiveAdjustment))
	}
	if d.MaxNegativeAdjustment < 0 || d.MaxNegativeAdjustment > 1 {
		return NewValidationError("debate", "max_negative_adjustment", "",
			fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, d.MaxNegativeAdjustment))
	}
	return nil
}

func (v *Validator) validateBudget() error {
	b := v.cfg.Budget
	if b.DailySoftUSD <= 0 || b.DailyHardUSD <= 0 || b.MonthlySoftUSD <= 0 || b.MonthlyHardUSD <= 0 {
		return NewValidationError("budget", "limits", "",
			fmt.Errorf("%w: limits must be positive", ErrInvalidValue))
	}
	if b.DailySoftUSD > b.DailyHardUSD {
		return NewValidationError("budget", "daily", "",
			fmt.Errorf("%w: soft %v exceeds hard %v", ErrInvalidValue, b.DailySoftUSD, b.DailyHardUSD))
	}
	if b.MonthlySoftUSD > b.MonthlyHardUSD {
		return NewValidationError("budget", "monthly", "",
			fmt.Errorf("%w: soft %v exceeds hard %v", ErrInvalidValue, b.MonthlySoftUSD, b.MonthlyHardUSD))
	}
	if b.ReservationTTL <= 0 {
		return NewValidationError("budget", "reservation_ttl", "",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateTimeouts() error {
	t := v.cfg.Timeouts
	if t.Agent <= 0 || t.Stage <= 0 || t.Story <= 0 {
		return NewValidationError("timeouts", "", "",
			fmt.Errorf("%w: timeouts must be positive", ErrInvalidValue))
	}
	if t.Agent > t.Stage || t.Stage > t.Story {
		return NewValidationError("timeouts", "", "",
			fmt.Errorf("%w: expected agent <= stage <= story", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateConcurrency() error {
	c := v.cfg.Concurrency
	if c.MaxConcurrentStories < 1 {
		return NewValidationError("concurrency", "max_concurrent_stories", "",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if c.MaxConcurrentAgentsPerStory < 1 {
		return NewValidationError("concurrency", "max_concurrent_agents_per_story", "",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateEscalation() error {
	e := v.cfg.Escalation
	if e.ConfidenceThreshold < 0 || e.ConfidenceThreshold > 1 {
		return NewValidationError("escalation", "confidence_threshold", "",
			fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, e.ConfidenceThreshold))
	}
	if e.VerificationThreshold < 0 || e.VerificationThreshold > 1 {
		return NewValidationError("escalation", "verification_threshold", "",
			fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, e.VerificationThreshold))
	}
	for _, t := range e.Triggers {
		if !slices.Contains(KnownTriggerNames, t.Name) {
			return NewValidationError("escalation", "triggers", t.Name,
				fmt.Errorf("%w: unknown trigger", ErrInvalidValue))
		}
		if !t.Severity.IsValid() {
			return NewValidationError("escalation", "triggers", t.Name,
				fmt.Errorf("%w: severity %q", ErrInvalidValue, t.Severity))
		}
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", "",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", "",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval >= q.OrphanThreshold {
		return NewValidationError("queue", "heartbeat_interval", "",
			fmt.Errorf("%w: must be positive and below orphan_threshold", ErrInvalidValue))
	}
	return nil
}
