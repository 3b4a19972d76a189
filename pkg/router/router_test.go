package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/config"
)

// stubBreaker marks selected providers as tripped.
type stubBreaker struct {
	open map[string]bool
}

func (s *stubBreaker) BreakerOpen(provider string) bool { return s.open[provider] }

func testRouterConfig(t *testing.T, policy config.ProviderPolicy, fallback bool) *config.Config {
	t.Helper()
	t.Setenv("TEST_ANTHROPIC_KEY", "key-a")
	t.Setenv("TEST_OPENAI_KEY", "key-b")

	providers := map[string]*config.LLMProviderConfig{
		"anthropic": {
			Type:      config.LLMProviderTypeAnthropic,
			APIKeyEnv: "TEST_ANTHROPIC_KEY",
			Models: map[config.Tier]config.ModelConfig{
				config.TierFrontier: {ID: "model-a-frontier"},
				config.TierHigh:     {ID: "model-a-high"},
				config.TierStandard: {ID: "model-a-standard"},
				config.TierFast:     {ID: "model-a-fast"},
			},
		},
		"openai": {
			Type:      config.LLMProviderTypeOpenAI,
			APIKeyEnv: "TEST_OPENAI_KEY",
			Models: map[config.Tier]config.ModelConfig{
				config.TierFrontier: {ID: "model-b-frontier"},
				config.TierHigh:     {ID: "model-b-high"},
				config.TierStandard: {ID: "model-b-standard"},
				config.TierFast:     {ID: "model-b-fast"},
			},
		},
	}

	return &config.Config{
		Providers: config.NewLLMProviderRegistry(providers),
		Routing: &config.RoutingConfig{
			Policy:          policy,
			FallbackEnabled: fallback,
			DefaultProvider: "anthropic",
			TierMap:         map[string]config.Tier{"custom_task": config.TierFast},
		},
	}
}

func TestTierResolutionOrder(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyPreferAnthropic, true)
	r := New(cfg, nil)

	// Explicit override wins
	d, err := r.Route("motivation_analysis", config.TierFast)
	require.NoError(t, err)
	assert.Equal(t, config.TierFast, d.Tier)

	// Deployment tier map next
	d, err = r.Route("custom_task", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierFast, d.Tier)

	// Built-in task map next
	d, err = r.Route("motivation_analysis", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierFrontier, d.Tier)
	assert.Equal(t, "model-a-frontier", d.Model.ID)

	// Unknown task falls back to STANDARD
	d, err = r.Route("unknown_task", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierStandard, d.Tier)
}

func TestBestFitPolicyUsesHints(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyBestFit, true)
	r := New(cfg, nil)

	d, err := r.Route("fact_check", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", d.Provider)

	d, err = r.Route("debate_judge", "")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", d.Provider)

	// No hint → routing default provider
	d, err = r.Route("context_analysis", "")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", d.Provider)
}

func TestFailoverOnOpenCircuit(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyPreferAnthropic, true)
	r := New(cfg, &stubBreaker{open: map[string]bool{"anthropic": true}})

	d, err := r.Route("context_analysis", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", d.Provider)
	assert.True(t, d.FellBack)

	last, ok := r.LastUsed("context_analysis")
	require.True(t, ok)
	assert.Equal(t, "openai", last.Provider)
}

func TestNoFallbackSurfacesProviderUnavailable(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyPreferAnthropic, false)
	r := New(cfg, &stubBreaker{open: map[string]bool{"anthropic": true}})

	_, err := r.Route("context_analysis", "")
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestMissingCredentialMakesProviderUnavailable(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyPreferAnthropic, true)
	t.Setenv("TEST_ANTHROPIC_KEY", "")

	r := New(cfg, nil)
	d, err := r.Route("context_analysis", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", d.Provider)
	assert.True(t, d.FellBack)
}

func TestAnyAvailable(t *testing.T) {
	cfg := testRouterConfig(t, config.PolicyPreferAnthropic, true)
	r := New(cfg, &stubBreaker{open: map[string]bool{"anthropic": true, "openai": true}})
	assert.False(t, r.AnyAvailable())

	r = New(cfg, &stubBreaker{open: map[string]bool{"anthropic": true}})
	assert.True(t, r.AnyAvailable())
}
