package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/gateway"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/router"
)

// testAgent is a minimal JSON agent for runtime contract tests.
type testAgent struct {
	requireArticles bool
}

type testOutput struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

func (o *testOutput) Validate() error {
	if o.Answer == "" {
		return fmt.Errorf("answer is empty")
	}
	return nil
}

func (o *testOutput) ConfidenceFields() []*float64 { return []*float64{&o.Confidence} }

func (a *testAgent) TaskName() string                   { return "context_analysis" }
func (a *testAgent) Version() string                    { return "test-v1" }
func (a *testAgent) CacheKind() config.CacheKind        { return config.CacheKindAnalysis }
func (a *testAgent) TierOverride() config.Tier          { return "" }
func (a *testAgent) ResponseFormat() llm.ResponseFormat { return llm.ResponseFormatJSON }

func (a *testAgent) ValidateInput(in Input) error {
	if a.requireArticles && len(in.Articles) == 0 {
		return fmt.Errorf("no_events: story has no source articles")
	}
	return nil
}

func (a *testAgent) BuildMessages(in Input) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: "question for " + in.StoryID}}
}

func (a *testAgent) ParseOutput(raw string) (Output, error) {
	out := &testOutput{}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return out, nil
}

func (a *testAgent) AssessQuality(out Output, in Input) float64 {
	return out.(*testOutput).Confidence
}

func runtimeTestConfig(t *testing.T, cacheTTL time.Duration) *config.Config {
	t.Helper()
	t.Setenv("RT_TEST_KEY", "key")
	return &config.Config{
		Providers: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"testprov": {
				Type:      config.LLMProviderTypeOpenAI,
				APIKeyEnv: "RT_TEST_KEY",
				Models: map[config.Tier]config.ModelConfig{
					config.TierStandard: {ID: "m1", InputRatePerMTok: 1, OutputRatePerMTok: 2},
				},
			},
		}),
		Routing: &config.RoutingConfig{
			Policy:          config.PolicyBestFit,
			FallbackEnabled: true,
			DefaultProvider: "testprov",
		},
		Pipeline: &config.PipelineConfig{},
		Retry: &config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
		},
		Timeouts: &config.TimeoutsConfig{Agent: time.Minute, Stage: 2 * time.Minute, Story: 3 * time.Minute},
		Cache:    &config.CacheConfig{TTL: map[config.CacheKind]time.Duration{config.CacheKindAnalysis: cacheTTL}},
		Budget: &config.BudgetConfig{
			DailySoftUSD: 100, DailyHardUSD: 200,
			MonthlySoftUSD: 1000, MonthlyHardUSD: 2000,
			ReservationTTL: time.Minute,
		},
	}
}

func newTestRuntime(t *testing.T, cfg *config.Config, provider llm.Provider) *Runtime {
	t.Helper()
	gw := gateway.New(
		map[string]llm.Provider{"testprov": provider},
		cfg.Providers.GetAll(),
		cfg.Retry, cfg.Cache,
		budget.NewController(cfg.Budget),
		nil,
	)
	return NewRuntime(router.New(cfg, gw), gw, cfg, nil)
}

func TestRunHappyPath(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"answer":"yes","confidence":0.85}`, Model: "m1", InputTokens: 100, OutputTokens: 50},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1", Pass: 1, Stage: "context_analysis"})
	require.True(t, res.Success)
	assert.Equal(t, "yes", res.Output.(*testOutput).Answer)
	assert.InDelta(t, 0.85, res.Metadata.QualityScore, 1e-9)
	assert.Equal(t, "testprov", res.Metadata.Provider)
	assert.Equal(t, "m1", res.Metadata.ModelUsed)
	assert.Equal(t, 100, res.Metadata.InputTokens)
	assert.NotEmpty(t, res.Metadata.ExecutionID)
	assert.False(t, res.Metadata.CacheHit)
}

func TestRunInputValidationFailure(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov")
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{requireArticles: true}, Input{StoryID: "s1"})
	require.False(t, res.Success)
	assert.Equal(t, ErrValidation, res.Err.Kind)
	assert.Contains(t, res.Err.Message, "no_events")
	assert.Equal(t, 0, provider.CallCount())
}

// Parse recovery is bounded: after the initial call and two repair attempts,
// the third failure surfaces without further calls.
func TestParseRecoveryBounded(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: "not json at all", InputTokens: 10, OutputTokens: 5},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.False(t, res.Success)
	assert.Equal(t, ErrOutputParse, res.Err.Kind)
	assert.Equal(t, 3, provider.CallCount()) // 1 initial + 2 recovery
	assert.Equal(t, 2, res.Metadata.Retries)
}

func TestParseRecoverySucceedsOnRepair(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov",
		llm.ScriptedResult{Completion: &llm.Completion{Content: "garbage", InputTokens: 10, OutputTokens: 5}},
		llm.ScriptedResult{Completion: &llm.Completion{Content: `{"answer":"fixed","confidence":0.7}`, InputTokens: 10, OutputTokens: 5}},
	)
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.True(t, res.Success)
	assert.Equal(t, "fixed", res.Output.(*testOutput).Answer)
	assert.Equal(t, 2, provider.CallCount())

	// The repair prompt carries the original instruction plus the directive
	repairReq := provider.Requests[1]
	require.Len(t, repairReq.Messages, 3)
	assert.Contains(t, repairReq.Messages[2].Content, "did not match the required JSON schema")
}

func TestConfidenceOutOfRangeFailsByDefault(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"answer":"yes","confidence":1.4}`, InputTokens: 10, OutputTokens: 5},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.False(t, res.Success)
	assert.Equal(t, ErrOutputValidation, res.Err.Kind)
}

func TestConfidenceClampedWhenPolicyAllows(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	cfg.Pipeline.ClampConfidence = true
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"answer":"yes","confidence":1.4}`, InputTokens: 10, OutputTokens: 5},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.True(t, res.Success)
	assert.Equal(t, 1.0, res.Output.(*testOutput).Confidence)
}

func TestStrictModeForbidsClamp(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	cfg.Pipeline.ClampConfidence = true
	cfg.Pipeline.StrictMode = true
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"answer":"yes","confidence":1.4}`, InputTokens: 10, OutputTokens: 5},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.False(t, res.Success)
}

// Cache round trip: with the cache warmed, a second identical run returns an
// identical output with cache_hit set.
func TestRunCacheHitIdempotence(t *testing.T) {
	cfg := runtimeTestConfig(t, time.Hour)
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"answer":"cached","confidence":0.9}`, Model: "m1", InputTokens: 10, OutputTokens: 5},
	})
	rt := newTestRuntime(t, cfg, provider)

	in := Input{StoryID: "s1", Pass: 1, Stage: "context_analysis"}
	first := rt.Run(context.Background(), &testAgent{}, in)
	require.True(t, first.Success)
	require.False(t, first.Metadata.CacheHit)

	second := rt.Run(context.Background(), &testAgent{}, in)
	require.True(t, second.Success)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Output.(*testOutput).Answer, second.Output.(*testOutput).Answer)
	assert.Equal(t, 1, provider.CallCount())
}

func TestGatewayErrorMapsToAgentKind(t *testing.T) {
	cfg := runtimeTestConfig(t, 0)
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Err: &llm.APIError{Provider: "testprov", StatusCode: 429, Class: llm.ClassRateLimited, Message: "slow down"},
	})
	rt := newTestRuntime(t, cfg, provider)

	res := rt.Run(context.Background(), &testAgent{}, Input{StoryID: "s1"})
	require.False(t, res.Success)
	assert.Equal(t, ErrRateLimited, res.Err.Kind)
}
