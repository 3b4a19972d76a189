package llm

import (
	"context"
	"sync"
)

// ScriptedProvider is a Provider for tests: it replays a scripted sequence of
// results and records the requests it received. Safe for concurrent use.
type ScriptedProvider struct {
	ProviderName string

	mu       sync.Mutex
	script   []ScriptedResult
	pos      int
	Requests []CompletionRequest
}

// ScriptedResult is one scripted outcome: a completion or an error.
type ScriptedResult struct {
	Completion *Completion
	Err        error
}

// NewScriptedProvider creates a scripted provider named name.
func NewScriptedProvider(name string, script ...ScriptedResult) *ScriptedProvider {
	return &ScriptedProvider{ProviderName: name, script: script}
}

// Append adds results to the end of the script.
func (p *ScriptedProvider) Append(results ...ScriptedResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, results...)
}

// Name returns the provider name.
func (p *ScriptedProvider) Name() string { return p.ProviderName }

// Complete replays the next scripted result. When the script is exhausted the
// last result repeats, so steady-state tests don't need exact call counts.
func (p *ScriptedProvider) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, classifyTransport(p.ProviderName, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.Requests = append(p.Requests, req)

	if len(p.script) == 0 {
		return &Completion{Content: "{}", Model: req.Model, InputTokens: 10, OutputTokens: 5}, nil
	}
	r := p.script[p.pos]
	if p.pos < len(p.script)-1 {
		p.pos++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	c := *r.Completion
	if c.Model == "" {
		c.Model = req.Model
	}
	return &c, nil
}

// Embed returns a fixed-size zero vector per text.
func (p *ScriptedProvider) Embed(ctx context.Context, req EmbedRequest) ([][]float32, error) {
	vectors := make([][]float32, len(req.Texts))
	for i := range vectors {
		vectors[i] = make([]float32, 8)
	}
	return vectors, nil
}

// CallCount returns how many completions were requested.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Requests)
}
