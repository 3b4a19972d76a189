// Package gateway is the single choke point for all LLM traffic: retries,
// circuit breaking, rate limiting, response caching, budget admission, and
// cost accounting all happen here.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/models"
)

// Breaker purposes. Completion and embedding traffic trip independently.
const (
	PurposeCompletion = "completion"
	PurposeEmbedding  = "embedding"
)

// approxCharsPerToken is the estimation divisor for budget reservations and
// token-bucket admission. Estimates only; accounting uses provider-reported
// usage.
const approxCharsPerToken = 4

// LedgerRecorder persists cost ledger entries. Implemented by
// services.LedgerService; nil-safe in tests via a no-op.
type LedgerRecorder interface {
	Record(ctx context.Context, entry models.LedgerEntry) error
}

// CompletionInput is one routed completion request.
type CompletionInput struct {
	TaskName      string
	PromptVersion string
	SchemaVersion string

	Provider string
	Model    config.ModelConfig
	Tier     config.Tier

	Messages        []llm.Message
	Temperature     float64
	MaxOutputTokens int
	ResponseFormat  llm.ResponseFormat
	Timeout         time.Duration

	CacheKind config.CacheKind
	Critical  bool

	StoryID string
	RunID   string
}

// CompletionResult is the gateway's answer: content plus accounting metadata.
type CompletionResult struct {
	Content      string
	Provider     string
	ModelUsed    string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMS    int
	Retries      int
	CacheHit     bool
}

// Gateway fronts all configured providers.
type Gateway struct {
	providers map[string]llm.Provider
	retryCfg  *config.RetryConfig
	cacheCfg  *config.CacheConfig
	breakers  *breakerSet
	limiters  *limiterSet
	cache     *responseCache
	budget    *budget.Controller
	ledger    LedgerRecorder
	now       func() time.Time
}

// New creates a gateway over the given provider adapters.
// ledger may be nil (accounting disabled — tests only).
func New(
	providers map[string]llm.Provider,
	providerCfgs map[string]*config.LLMProviderConfig,
	retryCfg *config.RetryConfig,
	cacheCfg *config.CacheConfig,
	budgetCtl *budget.Controller,
	ledger LedgerRecorder,
) *Gateway {
	now := time.Now
	return &Gateway{
		providers: providers,
		retryCfg:  retryCfg,
		cacheCfg:  cacheCfg,
		breakers:  newBreakerSet(now),
		limiters:  newLimiterSet(providerCfgs),
		cache:     newResponseCache(now),
		budget:    budgetCtl,
		ledger:    ledger,
		now:       now,
	}
}

// BreakerOpen reports whether the completion circuit for a provider is open.
// The router consults this for availability decisions.
func (g *Gateway) BreakerOpen(provider string) bool {
	return g.breakers.IsOpen(provider, PurposeCompletion)
}

// CacheSize returns the live response cache entry count.
func (g *Gateway) CacheSize() int {
	return g.cache.size()
}

// Complete executes one completion with the full gateway contract. The
// returned error, when non-nil, is always a *Error.
func (g *Gateway) Complete(ctx context.Context, input CompletionInput) (*CompletionResult, error) {
	log := slog.With(
		"task", input.TaskName,
		"provider", input.Provider,
		"model", input.Model.ID,
	)

	// 1. Cache lookup. Only deterministic JSON responses are ever stored, so
	// a hit short-circuits budget, limiter, and provider entirely.
	fingerprint := Fingerprint(input.TaskName, input.PromptVersion, input.SchemaVersion,
		input.Model.ID, input.Messages, input.Temperature, input.ResponseFormat)
	ttl := g.cacheCfg.TTLFor(input.CacheKind)
	if ttl > 0 {
		if e, ok := g.cache.get(fingerprint, input.CacheKind); ok {
			metrics.GatewayCalls.WithLabelValues(input.Provider, "cache_hit").Inc()
			return &CompletionResult{
				Content:      e.content,
				Provider:     input.Provider,
				ModelUsed:    e.model,
				InputTokens:  e.inputTokens,
				OutputTokens: e.outputTokens,
				CacheHit:     true,
			}, nil
		}
	}

	provider, ok := g.providers[input.Provider]
	if !ok {
		return nil, &Error{Kind: KindClientError, Provider: input.Provider,
			Message: "provider not configured"}
	}

	// 2. Circuit breaker fail-fast.
	br := g.breakers.get(input.Provider, PurposeCompletion)
	if !br.allow() {
		metrics.GatewayCalls.WithLabelValues(input.Provider, "circuit_open").Inc()
		return nil, &Error{Kind: KindCircuitOpen, Provider: input.Provider,
			Message: "circuit open"}
	}

	// 3. Budget reservation against the estimated cost.
	estTokensIn := estimateTokens(input.Messages)
	estCost := costUSD(input.Model, estTokensIn, input.MaxOutputTokens)
	reservation, err := g.budget.Reserve(estCost, input.Critical)
	if err != nil {
		metrics.GatewayCalls.WithLabelValues(input.Provider, "budget_denied").Inc()
		return nil, classify(err)
	}

	// 4. Rate-limit admission (independent of the breaker).
	if err := g.limiters.get(input.Provider).wait(ctx, estTokensIn+input.MaxOutputTokens); err != nil {
		g.budget.Release(reservation)
		return nil, &Error{Kind: KindTimeout, Provider: input.Provider,
			Message: "rate limit wait: " + err.Error()}
	}

	// 5. Retried provider call.
	req := llm.CompletionRequest{
		Model:           input.Model.ID,
		Messages:        input.Messages,
		Temperature:     input.Temperature,
		MaxOutputTokens: input.MaxOutputTokens,
		ResponseFormat:  input.ResponseFormat,
		Timeout:         input.Timeout,
	}

	start := g.now()
	completion, retries, callErr := g.callWithRetry(ctx, provider, br, req)
	latencyMS := int(time.Since(start).Milliseconds())

	if callErr != nil {
		// Terminal failure: release the hold, record the attempt.
		g.budget.Release(reservation)
		callErr.Retries = retries
		g.recordLedger(input, 0, 0, 0, latencyMS, retries)
		metrics.GatewayCalls.WithLabelValues(input.Provider, "failure").Inc()
		metrics.GatewayLatency.WithLabelValues(input.Provider).Observe(time.Since(start).Seconds())
		log.Warn("Gateway completion failed",
			"kind", callErr.Kind, "retries", retries, "error", callErr.Message)
		return nil, callErr
	}

	// 6. Settle accounting with provider-reported usage.
	actualCost := costUSD(input.Model, completion.InputTokens, completion.OutputTokens)
	if err := g.budget.Commit(reservation, actualCost); err != nil {
		log.Warn("Budget commit on expired reservation", "error", err)
	}
	g.recordLedger(input, completion.InputTokens, completion.OutputTokens, actualCost, latencyMS, retries)

	// Drift check: output beyond the requested cap implies the configured
	// accounting assumptions no longer match the provider.
	if input.MaxOutputTokens > 0 && completion.OutputTokens > input.MaxOutputTokens {
		metrics.RateDrift.WithLabelValues(input.Provider, input.Model.ID).Inc()
		log.Warn("Observed usage exceeds requested output cap",
			"output_tokens", completion.OutputTokens, "max_output_tokens", input.MaxOutputTokens)
	}

	// 7. Cache write (success + deterministic JSON only).
	if ttl > 0 && input.ResponseFormat == llm.ResponseFormatJSON {
		g.cache.put(fingerprint, cacheEntry{
			content:       completion.Content,
			inputTokens:   completion.InputTokens,
			outputTokens:  completion.OutputTokens,
			model:         completion.Model,
			ttl:           ttl,
			promptVersion: input.PromptVersion,
			schemaVersion: input.SchemaVersion,
		})
	}

	metrics.GatewayCalls.WithLabelValues(input.Provider, "success").Inc()
	metrics.GatewayLatency.WithLabelValues(input.Provider).Observe(time.Since(start).Seconds())

	return &CompletionResult{
		Content:      completion.Content,
		Provider:     input.Provider,
		ModelUsed:    completion.Model,
		InputTokens:  completion.InputTokens,
		OutputTokens: completion.OutputTokens,
		CostUSD:      actualCost,
		LatencyMS:    latencyMS,
		Retries:      retries,
	}, nil
}

// Embed returns vectors for the given texts via the named provider.
func (g *Gateway) Embed(ctx context.Context, providerName string, texts []string) ([][]float32, error) {
	provider, ok := g.providers[providerName]
	if !ok {
		return nil, &Error{Kind: KindClientError, Provider: providerName,
			Message: "provider not configured"}
	}

	br := g.breakers.get(providerName, PurposeEmbedding)
	if !br.allow() {
		return nil, &Error{Kind: KindCircuitOpen, Provider: providerName, Message: "circuit open"}
	}

	var vectors [][]float32
	op := func() error {
		v, err := provider.Embed(ctx, llm.EmbedRequest{Texts: texts})
		if err != nil {
			br.recordFailure()
			ge := classify(err)
			if !retryable(ge.Kind) {
				return backoff.Permanent(ge)
			}
			return ge
		}
		br.recordSuccess()
		vectors = v
		return nil
	}
	if err := backoff.Retry(op, g.newBackOff(ctx)); err != nil {
		return nil, AsError(err)
	}
	return vectors, nil
}

// Sweep evicts expired cache entries. Called periodically by the worker pool.
func (g *Gateway) Sweep() {
	g.cache.sweep()
}

// callWithRetry runs the provider call under the configured backoff policy.
// Returns the completion, the number of retries performed, and the terminal
// error if all attempts failed.
func (g *Gateway) callWithRetry(ctx context.Context, provider llm.Provider, br *breaker, req llm.CompletionRequest) (*llm.Completion, int, *Error) {
	var completion *llm.Completion
	attempts := 0

	op := func() error {
		attempts++
		c, err := provider.Complete(ctx, req)
		if err != nil {
			br.recordFailure()
			ge := classify(err)
			if !retryable(ge.Kind) {
				return backoff.Permanent(ge)
			}
			return ge
		}
		br.recordSuccess()
		completion = c
		return nil
	}

	if err := backoff.Retry(op, g.newBackOff(ctx)); err != nil {
		return nil, attempts - 1, AsError(err)
	}
	return completion, attempts - 1, nil
}

// newBackOff builds the per-call retry policy: exponential with jitter,
// bounded attempts, context-aware.
func (g *Gateway) newBackOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.retryCfg.InitialInterval
	bo.MaxInterval = g.retryCfg.MaxInterval
	bo.MaxElapsedTime = 0 // attempts bound, not time bound
	maxRetries := uint64(0)
	if g.retryCfg.MaxAttempts > 1 {
		maxRetries = uint64(g.retryCfg.MaxAttempts - 1)
	}
	return backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)
}

// recordLedger writes exactly one cost ledger entry per terminal outcome.
// Retried attempts inside the same call share this single entry.
func (g *Gateway) recordLedger(input CompletionInput, tokensIn, tokensOut int, cost float64, latencyMS, retries int) {
	if g.ledger == nil {
		return
	}
	entry := models.LedgerEntry{
		StoryID:      input.StoryID,
		RunID:        input.RunID,
		Task:         input.TaskName,
		Provider:     input.Provider,
		Model:        input.Model.ID,
		Tier:         string(input.Tier),
		InputTokens:  tokensIn,
		OutputTokens: tokensOut,
		TotalCostUSD: cost,
		LatencyMS:    latencyMS,
		Retries:      retries,
		Timestamp:    g.now(),
	}
	// Ledger writes ride a background context: the call is already terminal
	// and its accounting must not be lost to the caller's cancellation.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := g.ledger.Record(ctx, entry); err != nil {
		slog.Error("Failed to record cost ledger entry",
			"task", input.TaskName, "story_id", input.StoryID, "error", err)
	}
}

// estimateTokens approximates the token count of a message list.
func estimateTokens(messages []llm.Message) int {
	chars := 0
	for _, m := range messages {
		chars += len(m.Content)
	}
	return chars / approxCharsPerToken
}

// costUSD computes spend from token counts and configured per-mtok rates.
func costUSD(model config.ModelConfig, tokensIn, tokensOut int) float64 {
	return float64(tokensIn)*model.InputRatePerMTok/1e6 +
		float64(tokensOut)*model.OutputRatePerMTok/1e6
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == kind
}
