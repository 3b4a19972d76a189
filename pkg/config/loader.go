package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// EngineYAMLConfig represents the complete undertow.yaml file structure.
type EngineYAMLConfig struct {
	Routing     *RoutingConfig     `yaml:"routing"`
	Pipeline    *PipelineConfig    `yaml:"pipeline"`
	Debate      *DebateConfig      `yaml:"debate"`
	Budget      *BudgetConfig      `yaml:"budget"`
	Retry       *RetryConfig       `yaml:"retry"`
	Timeouts    *TimeoutsConfig    `yaml:"timeouts"`
	Concurrency *ConcurrencyConfig `yaml:"concurrency"`
	Cache       *CacheConfig       `yaml:"cache"`
	Escalation  *EscalationConfig  `yaml:"escalation"`
	Retention   *RetentionConfig   `yaml:"retention"`
	Queue       *QueueConfig       `yaml:"queue"`
}

// ProvidersYAMLConfig represents the complete llm-providers.yaml file structure.
type ProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Build in-memory registries
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	engineCfg, err := loadEngineYAML(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	providersCfg, err := loadProvidersYAML(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}

	cfg, err := assemble(configDir, engineCfg, providersCfg)
	if err != nil {
		return nil, err
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"providers", stats.Providers,
		"escalation_triggers", stats.Triggers,
		"tier_overrides", stats.TierOverrides,
	)
	return cfg, nil
}

// loadEngineYAML reads and parses undertow.yaml. A missing file is not an
// error — built-in defaults apply.
func loadEngineYAML(configDir string) (*EngineYAMLConfig, error) {
	path := filepath.Join(configDir, "undertow.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("undertow.yaml not found, using built-in defaults", "path", path)
			return &EngineYAMLConfig{}, nil
		}
		return nil, NewLoadError(path, err)
	}

	var cfg EngineYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &cfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}
	return &cfg, nil
}

// loadProvidersYAML reads and parses llm-providers.yaml (required).
func loadProvidersYAML(configDir string) (*ProvidersYAMLConfig, error) {
	path := filepath.Join(configDir, "llm-providers.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, ErrConfigNotFound)
		}
		return nil, NewLoadError(path, err)
	}

	var cfg ProvidersYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &cfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}
	return &cfg, nil
}

// assemble merges user configuration over built-in defaults and builds the
// umbrella Config. User values win; zero-valued fields fall back to defaults.
func assemble(configDir string, engineCfg *EngineYAMLConfig, providersCfg *ProvidersYAMLConfig) (*Config, error) {
	cfg := &Config{
		configDir:   configDir,
		Routing:     mergeSection(engineCfg.Routing, defaultRoutingConfig()),
		Pipeline:    mergeSection(engineCfg.Pipeline, defaultPipelineConfig()),
		Debate:      mergeSection(engineCfg.Debate, defaultDebateConfig()),
		Budget:      mergeSection(engineCfg.Budget, defaultBudgetConfig()),
		Retry:       mergeSection(engineCfg.Retry, defaultRetryConfig()),
		Timeouts:    mergeSection(engineCfg.Timeouts, defaultTimeoutsConfig()),
		Concurrency: mergeSection(engineCfg.Concurrency, defaultConcurrencyConfig()),
		Cache:       mergeSection(engineCfg.Cache, defaultCacheConfig()),
		Escalation:  mergeSection(engineCfg.Escalation, defaultEscalationConfig()),
		Retention:   mergeSection(engineCfg.Retention, defaultRetentionConfig()),
		Queue:       mergeSection(engineCfg.Queue, DefaultQueueConfig()),
	}

	providers := make(map[string]*LLMProviderConfig, len(providersCfg.LLMProviders))
	for name, p := range providersCfg.LLMProviders {
		pCopy := p
		providers[name] = &pCopy
	}
	cfg.Providers = NewLLMProviderRegistry(providers)

	return cfg, nil
}

// mergeSection fills zero-valued fields of the user section from defaults.
// A nil user section returns the defaults unchanged.
func mergeSection[T any](user, defaults *T) *T {
	if user == nil {
		return defaults
	}
	if err := mergo.Merge(user, defaults); err != nil {
		// Merge only fails on type mismatch, which cannot happen for *T, *T.
		slog.Error("Config section merge failed", "error", err)
		return defaults
	}
	return user
}
