package gateway

import (
	"log/slog"
	"sync"
	"time"

	"github.com/100percenttuna/undertow/pkg/metrics"
)

// BreakerState is the circuit breaker state.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// Breaker thresholds. Fixed by design: the failure budget of an LLM provider
// doesn't vary per deployment the way budgets and timeouts do.
const (
	breakerFailureThreshold = 5
	breakerSuccessThreshold = 3
	breakerOpenDuration     = 60 * time.Second
)

// breaker is one circuit for a (provider, purpose) pair.
type breaker struct {
	mu        sync.Mutex
	state     BreakerState
	failures  int // consecutive failures while closed
	successes int // consecutive successes while half-open
	openedAt  time.Time
	provider  string
	purpose   string
	now       func() time.Time
}

func newBreaker(provider, purpose string, now func() time.Time) *breaker {
	return &breaker{
		state:    BreakerClosed,
		provider: provider,
		purpose:  purpose,
		now:      now,
	}
}

// allow reports whether a call may proceed, transitioning OPEN→HALF_OPEN
// after the cool-down.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed, BreakerHalfOpen:
		return true
	default: // open
		if b.now().Sub(b.openedAt) >= breakerOpenDuration {
			b.state = BreakerHalfOpen
			b.successes = 0
			slog.Info("Circuit breaker half-open",
				"provider", b.provider, "purpose", b.purpose)
			return true
		}
		return false
	}
}

// recordSuccess closes the circuit after enough half-open successes.
func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= breakerSuccessThreshold {
			b.state = BreakerClosed
			b.failures = 0
			slog.Info("Circuit breaker closed",
				"provider", b.provider, "purpose", b.purpose)
		}
	case BreakerClosed:
		b.failures = 0
	}
}

// recordFailure opens the circuit after consecutive failures, or immediately
// from half-open.
func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.open()
	case BreakerClosed:
		b.failures++
		if b.failures >= breakerFailureThreshold {
			b.open()
		}
	}
}

// open transitions to OPEN. Caller holds the lock.
func (b *breaker) open() {
	b.state = BreakerOpen
	b.openedAt = b.now()
	b.failures = 0
	b.successes = 0
	metrics.CircuitBreakerOpened.WithLabelValues(b.provider, b.purpose).Inc()
	slog.Warn("Circuit breaker opened",
		"provider", b.provider, "purpose", b.purpose)
}

// currentState returns the state without transitions.
func (b *breaker) currentState() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// breakerSet manages circuits keyed by (provider, purpose).
type breakerSet struct {
	mu       sync.Mutex
	breakers map[string]*breaker
	now      func() time.Time
}

func newBreakerSet(now func() time.Time) *breakerSet {
	return &breakerSet{
		breakers: make(map[string]*breaker),
		now:      now,
	}
}

func (s *breakerSet) get(provider, purpose string) *breaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := provider + "/" + purpose
	b, ok := s.breakers[key]
	if !ok {
		b = newBreaker(provider, purpose, s.now)
		s.breakers[key] = b
	}
	return b
}

// IsOpen reports whether the circuit for (provider, purpose) is currently
// open. Used by the router for availability decisions.
func (s *breakerSet) IsOpen(provider, purpose string) bool {
	return s.get(provider, purpose).currentState() == BreakerOpen
}
