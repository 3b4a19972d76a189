package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/llm"
)

func TestFingerprintStableUnderWhitespaceNormalization(t *testing.T) {
	a := Fingerprint("task", "v1", "v1", "m1",
		[]llm.Message{{Role: "user", Content: "hello   world\n"}}, 0.1, llm.ResponseFormatJSON)
	b := Fingerprint("task", "v1", "v1", "m1",
		[]llm.Message{{Role: "user", Content: "hello world"}}, 0.1, llm.ResponseFormatJSON)
	assert.Equal(t, a, b)
}

func TestFingerprintDiscriminates(t *testing.T) {
	base := Fingerprint("task", "v1", "v1", "m1",
		[]llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatJSON)

	cases := map[string]string{
		"task":    Fingerprint("other", "v1", "v1", "m1", []llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatJSON),
		"prompt":  Fingerprint("task", "v2", "v1", "m1", []llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatJSON),
		"schema":  Fingerprint("task", "v1", "v2", "m1", []llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatJSON),
		"model":   Fingerprint("task", "v1", "v1", "m2", []llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatJSON),
		"content": Fingerprint("task", "v1", "v1", "m1", []llm.Message{{Role: "user", Content: "y"}}, 0.1, llm.ResponseFormatJSON),
		"temp":    Fingerprint("task", "v1", "v1", "m1", []llm.Message{{Role: "user", Content: "x"}}, 0.7, llm.ResponseFormatJSON),
		"format":  Fingerprint("task", "v1", "v1", "m1", []llm.Message{{Role: "user", Content: "x"}}, 0.1, llm.ResponseFormatText),
	}
	for name, fp := range cases {
		assert.NotEqual(t, base, fp, "changing %s must change the fingerprint", name)
	}
}

func TestResponseCacheTTLExpiry(t *testing.T) {
	now := time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)
	c := newResponseCache(func() time.Time { return now })

	c.put("fp", cacheEntry{content: "cached", ttl: time.Hour})

	_, ok := c.get("fp", config.CacheKindAnalysis)
	assert.True(t, ok)

	now = now.Add(2 * time.Hour)
	_, ok = c.get("fp", config.CacheKindAnalysis)
	assert.False(t, ok)
	assert.Equal(t, 0, c.size())
}

func TestResponseCacheZeroTTLNeverStores(t *testing.T) {
	c := newResponseCache(time.Now)
	c.put("fp", cacheEntry{content: "x", ttl: 0})
	assert.Equal(t, 0, c.size())
}

func TestBreakerLifecycle(t *testing.T) {
	now := time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC)
	b := newBreaker("prov", "completion", func() time.Time { return now })

	// CLOSED → OPEN after 5 consecutive failures
	for i := 0; i < breakerFailureThreshold; i++ {
		assert.True(t, b.allow())
		b.recordFailure()
	}
	assert.Equal(t, BreakerOpen, b.currentState())
	assert.False(t, b.allow())

	// HALF_OPEN after the cool-down
	now = now.Add(breakerOpenDuration + time.Second)
	assert.True(t, b.allow())
	assert.Equal(t, BreakerHalfOpen, b.currentState())

	// CLOSED after 3 consecutive successes
	for i := 0; i < breakerSuccessThreshold; i++ {
		b.recordSuccess()
	}
	assert.Equal(t, BreakerClosed, b.currentState())

	// A half-open failure reopens immediately
	for i := 0; i < breakerFailureThreshold; i++ {
		b.recordFailure()
	}
	now = now.Add(breakerOpenDuration + time.Second)
	assert.True(t, b.allow())
	b.recordFailure()
	assert.Equal(t, BreakerOpen, b.currentState())
}

// A success while closed resets the consecutive failure count.
func TestBreakerFailureCountResetsOnSuccess(t *testing.T) {
	b := newBreaker("prov", "completion", time.Now)

	for i := 0; i < breakerFailureThreshold-1; i++ {
		b.recordFailure()
	}
	b.recordSuccess()
	for i := 0; i < breakerFailureThreshold-1; i++ {
		b.recordFailure()
	}
	assert.Equal(t, BreakerClosed, b.currentState())
}
