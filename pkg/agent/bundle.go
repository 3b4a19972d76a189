package agent

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Bundle accumulates validated agent outputs for one story, keyed by
// "passN.stage". Append-only within a run: each key is written at most once,
// with mutation allowed only through the explicit Replace used by revision
// stages and reanalysis resets.
type Bundle struct {
	mu      sync.RWMutex
	outputs map[string]Output
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{outputs: make(map[string]Output)}
}

// Key builds the canonical bundle key for a pass and stage.
func Key(pass int, stage string) string {
	return fmt.Sprintf("pass%d.%s", pass, stage)
}

// Put stores an output under pass+stage. Writing an existing key is a
// programming error surfaced as an error value, never a silent overwrite.
func (b *Bundle) Put(pass int, stage string, out Output) error {
	key := Key(pass, stage)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.outputs[key]; exists {
		return fmt.Errorf("bundle key %q already written", key)
	}
	b.outputs[key] = out
	return nil
}

// Replace overwrites a key. Only revision stages and reanalysis resets call
// this.
func (b *Bundle) Replace(pass int, stage string, out Output) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outputs[Key(pass, stage)] = out
}

// Get returns the output for pass+stage.
func (b *Bundle) Get(pass int, stage string) (Output, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out, ok := b.outputs[Key(pass, stage)]
	return out, ok
}

// DropPassesFrom removes every output at or past the given pass. Used by
// REQUEST_REANALYSIS to reset story state to the end of fromPass-1.
func (b *Bundle) DropPassesFrom(fromPass int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.outputs {
		var pass int
		var stage string
		if _, err := fmt.Sscanf(key, "pass%d.%s", &pass, &stage); err == nil && pass >= fromPass {
			delete(b.outputs, key)
		}
	}
}

// Keys returns the written keys in sorted order.
func (b *Bundle) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.outputs))
	for k := range b.outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot renders the bundle as a JSON-shaped map for persistence and
// escalation packages.
func (b *Bundle) Snapshot() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make(map[string]interface{}, len(b.outputs))
	for key, out := range b.outputs {
		raw, err := json.Marshal(out)
		if err != nil {
			snapshot[key] = map[string]interface{}{"_marshal_error": err.Error()}
			continue
		}
		var m interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			snapshot[key] = map[string]interface{}{"_marshal_error": err.Error()}
			continue
		}
		snapshot[key] = m
	}
	return snapshot
}

// Hash returns the canonical content hash of the bundle snapshot. Escalation
// items record this so reviewers can verify they see the exact analysis
// state the item was generated from.
func (b *Bundle) Hash() string {
	snapshot := b.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		raw, _ := json.Marshal(snapshot[k])
		h.Write(raw)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Restore loads a persisted snapshot back into an empty bundle as untyped
// outputs. Used when resuming a parked story in a fresh process.
func (b *Bundle) Restore(snapshot map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key, v := range snapshot {
		if m, ok := v.(map[string]interface{}); ok {
			b.outputs[key] = &RawOutput{Fields: m}
		}
	}
}

// RawOutput wraps a persisted output map restored from the database. It
// validates trivially; typed re-validation happened before persistence.
type RawOutput struct {
	Fields map[string]interface{}
}

// Validate is a no-op for restored outputs.
func (o *RawOutput) Validate() error { return nil }

// ConfidenceFields returns nothing; restored outputs are already validated.
func (o *RawOutput) ConfidenceFields() []*float64 { return nil }

// MarshalJSON renders the underlying map.
func (o *RawOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Fields)
}
