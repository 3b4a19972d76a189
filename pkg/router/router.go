// Package router maps tasks to (provider, model) decisions under the
// configured preference policy, with provider failover.
package router

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/100percenttuna/undertow/pkg/config"
)

// ErrProviderUnavailable indicates no provider can serve the task.
var ErrProviderUnavailable = errors.New("provider unavailable")

// BreakerProbe reports circuit state. Implemented by the gateway.
type BreakerProbe interface {
	BreakerOpen(provider string) bool
}

// Decision is a resolved routing choice. Routing changes never take effect
// mid-call: the decision is immutable once returned.
type Decision struct {
	Provider string
	Model    config.ModelConfig
	Tier     config.Tier

	// FellBack is true when the alternate provider was chosen because the
	// primary was unavailable.
	FellBack bool
}

// Router chooses providers and models for tasks.
type Router struct {
	cfg     *config.Config
	breaker BreakerProbe

	mu       sync.RWMutex
	lastUsed map[string]Decision // task → last decision, for observability
}

// New creates a router. breaker may be nil (availability then depends only on
// credentials).
func New(cfg *config.Config, breaker BreakerProbe) *Router {
	return &Router{
		cfg:      cfg,
		breaker:  breaker,
		lastUsed: make(map[string]Decision),
	}
}

// Route resolves (provider, model, tier) for a task.
//
// Algorithm: resolve tier (override → tier map → builtin → standard), pick
// the primary provider from policy, fall back to the alternate when the
// primary is unavailable and fallback is enabled, then map tier to a model.
func (r *Router) Route(task string, tierOverride config.Tier) (Decision, error) {
	tier := r.cfg.TierForTask(task, tierOverride)

	primary := r.primaryProvider(task)
	provider, fellBack, err := r.selectAvailable(primary)
	if err != nil {
		return Decision{}, fmt.Errorf("task %q: %w", task, err)
	}

	providerCfg, err := r.cfg.GetProvider(provider)
	if err != nil {
		return Decision{}, fmt.Errorf("task %q: %w", task, err)
	}
	model, err := providerCfg.ModelFor(tier)
	if err != nil {
		return Decision{}, fmt.Errorf("task %q provider %q: %w", task, provider, err)
	}

	d := Decision{
		Provider: provider,
		Model:    model,
		Tier:     tier,
		FellBack: fellBack,
	}

	r.mu.Lock()
	r.lastUsed[task] = d
	r.mu.Unlock()

	if fellBack {
		slog.Info("Router fell back to alternate provider",
			"task", task, "primary", primary, "selected", provider)
	}
	return d, nil
}

// LastUsed returns the most recent decision for a task (observability).
func (r *Router) LastUsed(task string) (Decision, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.lastUsed[task]
	return d, ok
}

// primaryProvider resolves the policy-preferred provider for a task.
func (r *Router) primaryProvider(task string) string {
	switch r.cfg.Routing.Policy {
	case config.PolicyPreferAnthropic:
		return string(config.PolicyPreferAnthropic)
	case config.PolicyPreferOpenAI:
		return string(config.PolicyPreferOpenAI)
	default: // best_fit
		return r.cfg.BestFitProviderFor(task)
	}
}

// selectAvailable returns the primary if available, the alternate if fallback
// is enabled, or ErrProviderUnavailable.
func (r *Router) selectAvailable(primary string) (string, bool, error) {
	if r.available(primary) {
		return primary, false, nil
	}
	if !r.cfg.Routing.FallbackEnabled {
		return "", false, fmt.Errorf("%w: %s", ErrProviderUnavailable, primary)
	}
	for _, name := range r.cfg.Providers.Names() {
		if name == primary {
			continue
		}
		if r.available(name) {
			return name, true, nil
		}
	}
	return "", false, fmt.Errorf("%w: no provider can serve the task", ErrProviderUnavailable)
}

// available checks credential presence and circuit state.
func (r *Router) available(provider string) bool {
	cfg, err := r.cfg.GetProvider(provider)
	if err != nil {
		return false
	}
	if !cfg.HasCredential() {
		return false
	}
	if r.breaker != nil && r.breaker.BreakerOpen(provider) {
		return false
	}
	return true
}

// AnyAvailable reports whether at least one provider can take traffic.
// The worker pool parks runs (rather than failing stories) when this is false.
func (r *Router) AnyAvailable() bool {
	for _, name := range r.cfg.Providers.Names() {
		if r.available(name) {
			return true
		}
	}
	return false
}
