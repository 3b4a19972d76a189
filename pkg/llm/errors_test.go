package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, ClassRateLimited, classifyStatus(429))
	assert.Equal(t, ClassServer, classifyStatus(500))
	assert.Equal(t, ClassServer, classifyStatus(503))
	assert.Equal(t, ClassClient, classifyStatus(400))
	assert.Equal(t, ClassClient, classifyStatus(404))
}

func TestClassifyTransport(t *testing.T) {
	deadline := classifyTransport("prov", context.DeadlineExceeded)
	assert.Equal(t, ClassTimeout, deadline.Class)

	network := classifyTransport("prov", errors.New("connection refused"))
	assert.Equal(t, ClassNetwork, network.Class)
}

func TestAPIErrorRetryable(t *testing.T) {
	tests := []struct {
		class     ErrorClass
		retryable bool
	}{
		{ClassRateLimited, true},
		{ClassServer, true},
		{ClassNetwork, true},
		{ClassTimeout, true},
		{ClassClient, false},
		{ClassInvalid, false},
	}
	for _, tc := range tests {
		err := &APIError{Provider: "p", Class: tc.class, Message: "m"}
		assert.Equal(t, tc.retryable, err.Retryable(), string(tc.class))
	}
}

func TestScriptedProviderReplaysAndRepeats(t *testing.T) {
	p := NewScriptedProvider("mock",
		ScriptedResult{Err: &APIError{Provider: "mock", Class: ClassServer, Message: "boom"}},
		ScriptedResult{Completion: &Completion{Content: "ok"}},
	)

	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m"})
	assert.Error(t, err)

	for i := 0; i < 3; i++ {
		c, err := p.Complete(context.Background(), CompletionRequest{Model: "m"})
		assert.NoError(t, err)
		assert.Equal(t, "ok", c.Content)
	}
	assert.Equal(t, 4, p.CallCount())
}
