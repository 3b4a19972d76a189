package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProvidersYAML = `
llm_providers:
  anthropic:
    type: anthropic
    api_key_env: ANTHROPIC_API_KEY
    requests_per_minute: 60
    tokens_per_minute: 100000
    models:
      frontier:
        id: claude-test-frontier
        input_rate_per_mtok: 15.0
        output_rate_per_mtok: 75.0
      high:
        id: claude-test-high
        input_rate_per_mtok: 3.0
        output_rate_per_mtok: 15.0
      standard:
        id: claude-test-standard
        input_rate_per_mtok: 1.0
        output_rate_per_mtok: 5.0
      fast:
        id: claude-test-fast
        input_rate_per_mtok: 0.25
        output_rate_per_mtok: 1.25
  openai:
    type: openai
    api_key_env: OPENAI_API_KEY
    embedding_model: text-embedding-test
    models:
      frontier:
        id: gpt-test-frontier
        input_rate_per_mtok: 10.0
        output_rate_per_mtok: 30.0
      high:
        id: gpt-test-high
        input_rate_per_mtok: 2.5
        output_rate_per_mtok: 10.0
      standard:
        id: gpt-test-standard
        input_rate_per_mtok: 1.0
        output_rate_per_mtok: 4.0
      fast:
        id: gpt-test-fast
        input_rate_per_mtok: 0.15
        output_rate_per_mtok: 0.6
`

func writeConfigDir(t *testing.T, engineYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(testProvidersYAML), 0o644))
	if engineYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "undertow.yaml"), []byte(engineYAML), 0o644))
	}
	return dir
}

func TestInitializeWithDefaultsOnly(t *testing.T) {
	dir := writeConfigDir(t, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Providers.Len())
	assert.Equal(t, PolicyBestFit, cfg.Routing.Policy)
	assert.True(t, cfg.Routing.FallbackEnabled)
	assert.Equal(t, 0.75, cfg.Pipeline.Gates["1"].Threshold)
	assert.Equal(t, 0.85, cfg.Pipeline.Gates["4"].Threshold)
	assert.Equal(t, 3, cfg.Debate.Rounds)
	assert.Equal(t, 2, cfg.Pipeline.MaxRetriesPerPass)
	assert.Equal(t, 0.85, cfg.Pipeline.ConfidenceDecayPerOrder)
	assert.Equal(t, 120*time.Second, cfg.Timeouts.Agent)
	assert.Equal(t, 60*time.Minute, cfg.Timeouts.Story)
	assert.Equal(t, 5, cfg.Concurrency.MaxConcurrentStories)
	assert.Equal(t, 4, cfg.Concurrency.MaxConcurrentAgentsPerStory)
	assert.Equal(t, 10*time.Minute, cfg.Budget.ReservationTTL)
	assert.NotEmpty(t, cfg.Escalation.Triggers)
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := writeConfigDir(t, `
routing:
  policy: anthropic
  fallback_enabled: true
  tier_map:
    fact_check: frontier
pipeline:
  strict_mode: true
  max_revision_cycles: 1
debate:
  rounds: 5
concurrency:
  max_concurrent_stories: 2
  max_concurrent_agents_per_story: 3
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, PolicyPreferAnthropic, cfg.Routing.Policy)
	assert.True(t, cfg.Pipeline.StrictMode)
	assert.Equal(t, 1, cfg.Pipeline.MaxRevisionCycles)
	assert.Equal(t, 5, cfg.Debate.Rounds)
	assert.Equal(t, 2, cfg.Concurrency.MaxConcurrentStories)

	// Strict mode raises Gate 3 to the strict threshold
	assert.Equal(t, 0.85, cfg.Pipeline.GateFor(3).Threshold)
	// Other gates are untouched
	assert.Equal(t, 0.75, cfg.Pipeline.GateFor(1).Threshold)

	// Tier map override wins over the built-in assignment
	assert.Equal(t, TierFrontier, cfg.TierForTask("fact_check", ""))
	// Explicit override still wins over everything
	assert.Equal(t, TierFast, cfg.TierForTask("fact_check", TierFast))
}

func TestInitializeMissingProvidersFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_DEFAULT_PROVIDER", "openai")
	dir := writeConfigDir(t, `
routing:
  default_provider: ${TEST_DEFAULT_PROVIDER}
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Routing.DefaultProvider)
}

func TestValidatorRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name       string
		engineYAML string
	}{
		{
			name: "unknown trigger",
			engineYAML: `
escalation:
  triggers:
    - name: not_a_real_trigger
      severity: high
`,
		},
		{
			name: "gate threshold above one",
			engineYAML: `
pipeline:
  gates:
    "1": {threshold: 1.5, retry_band: 0.05}
    "2": {threshold: 0.8, retry_band: 0.05}
    "3": {threshold: 0.8, retry_band: 0.05}
    "4": {threshold: 0.85, retry_band: 0.05}
`,
		},
		{
			name: "soft budget above hard",
			engineYAML: `
budget:
  daily_soft_usd: 100
  daily_hard_usd: 50
`,
		},
		{
			name: "unknown default provider",
			engineYAML: `
routing:
  default_provider: nonexistent
`,
		},
		{
			name: "bad debate rounds",
			engineYAML: `
debate:
  rounds: -1
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeConfigDir(t, tc.engineYAML)
			_, err := Initialize(context.Background(), dir)
			require.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestBestFitHintResolution(t *testing.T) {
	dir := writeConfigDir(t, `
routing:
  best_fit_hints:
    theory_application: openai
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Deployment hint wins
	assert.Equal(t, "openai", cfg.BestFitProviderFor("theory_application"))
	// Built-in hint next
	assert.Equal(t, "openai", cfg.BestFitProviderFor("fact_check"))
	// Default provider last
	assert.Equal(t, "anthropic", cfg.BestFitProviderFor("context_analysis"))
}
