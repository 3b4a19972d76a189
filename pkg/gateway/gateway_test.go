package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/models"
)

// memLedger records entries in memory.
type memLedger struct {
	mu      sync.Mutex
	entries []models.LedgerEntry
}

func (l *memLedger) Record(_ context.Context, entry models.LedgerEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *memLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func testModel() config.ModelConfig {
	return config.ModelConfig{
		ID:                "test-model-1",
		InputRatePerMTok:  3.0,
		OutputRatePerMTok: 15.0,
	}
}

func testProviderCfgs() map[string]*config.LLMProviderConfig {
	return map[string]*config.LLMProviderConfig{
		"testprov": {
			Type:      config.LLMProviderTypeOpenAI,
			APIKeyEnv: "TEST_KEY",
			Models:    map[config.Tier]config.ModelConfig{config.TierStandard: testModel()},
		},
	}
}

func fastRetryConfig() *config.RetryConfig {
	return &config.RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
}

func bigBudget() *budget.Controller {
	return budget.NewController(&config.BudgetConfig{
		DailySoftUSD:   1000,
		DailyHardUSD:   2000,
		MonthlySoftUSD: 10000,
		MonthlyHardUSD: 20000,
		ReservationTTL: time.Minute,
	})
}

func newTestGateway(provider llm.Provider, ledger LedgerRecorder, cacheTTL time.Duration) *Gateway {
	cacheCfg := &config.CacheConfig{
		TTL: map[config.CacheKind]time.Duration{config.CacheKindAnalysis: cacheTTL},
	}
	return New(
		map[string]llm.Provider{"testprov": provider},
		testProviderCfgs(),
		fastRetryConfig(),
		cacheCfg,
		bigBudget(),
		ledger,
	)
}

func completionInput() CompletionInput {
	return CompletionInput{
		TaskName:        "motivation_analysis",
		PromptVersion:   "v1",
		SchemaVersion:   "v1",
		Provider:        "testprov",
		Model:           testModel(),
		Tier:            config.TierStandard,
		Messages:        []llm.Message{{Role: llm.RoleUser, Content: "analyze this"}},
		Temperature:     0.1,
		MaxOutputTokens: 512,
		ResponseFormat:  llm.ResponseFormatJSON,
		CacheKind:       config.CacheKindAnalysis,
		StoryID:         "story-1",
	}
}

func TestCompleteSuccessRecordsCostAndLedger(t *testing.T) {
	ledger := &memLedger{}
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"ok":true}`, InputTokens: 1000, OutputTokens: 200},
	})
	g := newTestGateway(provider, ledger, 0)

	result, err := g.Complete(context.Background(), completionInput())
	require.NoError(t, err)

	// cost = 1000*3/1e6 + 200*15/1e6
	assert.InDelta(t, 0.003+0.003, result.CostUSD, 1e-6)
	assert.Equal(t, 1, ledger.count())
	assert.Equal(t, 0, result.Retries)

	entry := ledger.entries[0]
	assert.InDelta(t, float64(entry.InputTokens)*3.0/1e6+float64(entry.OutputTokens)*15.0/1e6,
		entry.TotalCostUSD, 1e-6)
}

func TestRetryOnServerErrorThenSuccess(t *testing.T) {
	ledger := &memLedger{}
	provider := llm.NewScriptedProvider("testprov",
		llm.ScriptedResult{Err: &llm.APIError{Provider: "testprov", StatusCode: 503, Class: llm.ClassServer, Message: "overloaded"}},
		llm.ScriptedResult{Err: &llm.APIError{Provider: "testprov", StatusCode: 503, Class: llm.ClassServer, Message: "overloaded"}},
		llm.ScriptedResult{Completion: &llm.Completion{Content: `{"ok":true}`, InputTokens: 10, OutputTokens: 5}},
	)
	g := newTestGateway(provider, ledger, 0)

	result, err := g.Complete(context.Background(), completionInput())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Retries)
	assert.Equal(t, 3, provider.CallCount())
	// Retried attempts share one ledger entry
	assert.Equal(t, 1, ledger.count())
}

func TestNoRetryOnClientError(t *testing.T) {
	ledger := &memLedger{}
	provider := llm.NewScriptedProvider("testprov",
		llm.ScriptedResult{Err: &llm.APIError{Provider: "testprov", StatusCode: 400, Class: llm.ClassClient, Message: "bad request"}},
	)
	g := newTestGateway(provider, ledger, 0)

	_, err := g.Complete(context.Background(), completionInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindClientError))
	assert.Equal(t, 1, provider.CallCount())
	// Terminal failure still writes exactly one ledger entry
	assert.Equal(t, 1, ledger.count())
	assert.Equal(t, 0.0, ledger.entries[0].TotalCostUSD)
}

func TestCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	provider := llm.NewScriptedProvider("testprov",
		llm.ScriptedResult{Err: &llm.APIError{Provider: "testprov", StatusCode: 503, Class: llm.ClassServer, Message: "down"}},
	)
	g := newTestGateway(provider, &memLedger{}, 0)

	// 3 attempts per call × 2 calls = 6 consecutive failures ≥ threshold 5
	for i := 0; i < 2; i++ {
		_, err := g.Complete(context.Background(), completionInput())
		require.Error(t, err)
	}
	assert.True(t, g.BreakerOpen("testprov"))

	// Open circuit fails fast without touching the provider
	calls := provider.CallCount()
	_, err := g.Complete(context.Background(), completionInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCircuitOpen))
	assert.Equal(t, calls, provider.CallCount())
}

func TestCacheRoundTripIdempotence(t *testing.T) {
	ledger := &memLedger{}
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"value":42}`, InputTokens: 100, OutputTokens: 50},
	})
	g := newTestGateway(provider, ledger, time.Hour)

	first, err := g.Complete(context.Background(), completionInput())
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	second, err := g.Complete(context.Background(), completionInput())
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Content, second.Content)

	// Cache hit: no extra provider call, no extra ledger entry
	assert.Equal(t, 1, provider.CallCount())
	assert.Equal(t, 1, ledger.count())
}

func TestCacheMissOnPromptVersionChange(t *testing.T) {
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: `{"v":1}`, InputTokens: 10, OutputTokens: 5},
	})
	g := newTestGateway(provider, &memLedger{}, time.Hour)

	_, err := g.Complete(context.Background(), completionInput())
	require.NoError(t, err)

	input := completionInput()
	input.PromptVersion = "v2"
	result, err := g.Complete(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, result.CacheHit)
	assert.Equal(t, 2, provider.CallCount())
}

func TestTextResponsesAreNotCached(t *testing.T) {
	provider := llm.NewScriptedProvider("testprov", llm.ScriptedResult{
		Completion: &llm.Completion{Content: "prose draft", InputTokens: 10, OutputTokens: 5},
	})
	g := newTestGateway(provider, &memLedger{}, time.Hour)

	input := completionInput()
	input.ResponseFormat = llm.ResponseFormatText

	for i := 0; i < 2; i++ {
		result, err := g.Complete(context.Background(), input)
		require.NoError(t, err)
		assert.False(t, result.CacheHit)
	}
	assert.Equal(t, 2, provider.CallCount())
}

func TestBudgetDeniedSurfaces(t *testing.T) {
	provider := llm.NewScriptedProvider("testprov")
	cacheCfg := &config.CacheConfig{TTL: map[config.CacheKind]time.Duration{}}
	tiny := budget.NewController(&config.BudgetConfig{
		DailySoftUSD:   0.000001,
		DailyHardUSD:   0.000002,
		MonthlySoftUSD: 1,
		MonthlyHardUSD: 1,
		ReservationTTL: time.Minute,
	})
	g := New(map[string]llm.Provider{"testprov": provider}, testProviderCfgs(),
		fastRetryConfig(), cacheCfg, tiny, &memLedger{})

	_, err := g.Complete(context.Background(), completionInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBudgetDenied))
	assert.Equal(t, 0, provider.CallCount())
}
