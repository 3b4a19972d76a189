package gateway

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/100percenttuna/undertow/pkg/config"
)

// providerLimiter gates admission for one provider with request-per-minute
// and token-per-minute buckets. Operates independently of the circuit
// breaker: the breaker reacts to failures, the limiter prevents them.
type providerLimiter struct {
	requests *rate.Limiter // nil = unlimited
	tokens   *rate.Limiter // nil = unlimited
}

// wait blocks until both buckets admit the call.
func (l *providerLimiter) wait(ctx context.Context, estimatedTokens int) error {
	if l.requests != nil {
		if err := l.requests.Wait(ctx); err != nil {
			return err
		}
	}
	if l.tokens != nil && estimatedTokens > 0 {
		n := estimatedTokens
		if burst := l.tokens.Burst(); n > burst {
			n = burst
		}
		if err := l.tokens.WaitN(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// limiterSet holds one limiter per provider.
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*providerLimiter
}

func newLimiterSet(providers map[string]*config.LLMProviderConfig) *limiterSet {
	s := &limiterSet{limiters: make(map[string]*providerLimiter, len(providers))}
	for name, p := range providers {
		l := &providerLimiter{}
		if p.RequestsPerMinute > 0 {
			l.requests = rate.NewLimiter(rate.Limit(float64(p.RequestsPerMinute)/60.0), p.RequestsPerMinute)
		}
		if p.TokensPerMinute > 0 {
			l.tokens = rate.NewLimiter(rate.Limit(float64(p.TokensPerMinute)/60.0), p.TokensPerMinute)
		}
		s.limiters[name] = l
	}
	return s
}

func (s *limiterSet) get(provider string) *providerLimiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[provider]
	if !ok {
		l = &providerLimiter{}
		s.limiters[provider] = l
	}
	return l
}
