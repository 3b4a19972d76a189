package config

// Config is the umbrella configuration object that encapsulates all
// registries, policies, and tunables. This is the primary object returned by
// Initialize() and passed explicitly to constructors throughout the engine.
// Mid-run config changes affect only subsequently started stages.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Providers   *LLMProviderRegistry
	Routing     *RoutingConfig
	Pipeline    *PipelineConfig
	Debate      *DebateConfig
	Budget      *BudgetConfig
	Retry       *RetryConfig
	Timeouts    *TimeoutsConfig
	Concurrency *ConcurrencyConfig
	Cache       *CacheConfig
	Escalation  *EscalationConfig
	Retention   *RetentionConfig
	Queue       *QueueConfig
}

// ConfigStats contains statistics about loaded configuration
type ConfigStats struct {
	Providers     int
	Triggers      int
	TierOverrides int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		Providers:     c.Providers.Len(),
		Triggers:      len(c.Escalation.Triggers),
		TierOverrides: len(c.Routing.TierMap),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves an LLM provider configuration by name.
// Convenience wrapper around Providers.Get().
func (c *Config) GetProvider(name string) (*LLMProviderConfig, error) {
	return c.Providers.Get(name)
}

// TierForTask resolves the effective tier for a task: explicit override →
// deployment tier_map → built-in task tier map → STANDARD.
func (c *Config) TierForTask(task string, override Tier) Tier {
	if override != "" {
		return override
	}
	if t, ok := c.Routing.TierMap[task]; ok {
		return t
	}
	return BuiltinTaskTier(task)
}

// BestFitProviderFor returns the best-fit provider for a task: deployment
// hints → built-in hints → routing default provider.
func (c *Config) BestFitProviderFor(task string) string {
	if p, ok := c.Routing.BestFitHints[task]; ok {
		return p
	}
	if p := BuiltinBestFitHint(task); p != "" {
		return p
	}
	return c.Routing.DefaultProvider
}
