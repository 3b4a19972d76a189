package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

func (o *fakeOutput) Validate() error              { return nil }
func (o *fakeOutput) ConfidenceFields() []*float64 { return []*float64{&o.Confidence} }

func TestBundlePutIsWriteOnce(t *testing.T) {
	b := NewBundle()
	require.NoError(t, b.Put(1, "factual_reconstruction", &fakeOutput{Value: "a"}))

	err := b.Put(1, "factual_reconstruction", &fakeOutput{Value: "b"})
	require.Error(t, err)

	out, ok := b.Get(1, "factual_reconstruction")
	require.True(t, ok)
	assert.Equal(t, "a", out.(*fakeOutput).Value)

	// Explicit revision path may overwrite
	b.Replace(1, "factual_reconstruction", &fakeOutput{Value: "b"})
	out, _ = b.Get(1, "factual_reconstruction")
	assert.Equal(t, "b", out.(*fakeOutput).Value)
}

func TestBundleHashMatchesSnapshotState(t *testing.T) {
	b := NewBundle()
	require.NoError(t, b.Put(1, "stage_a", &fakeOutput{Value: "x", Confidence: 0.9}))
	require.NoError(t, b.Put(2, "stage_b", &fakeOutput{Value: "y", Confidence: 0.8}))

	h1 := b.Hash()
	assert.Equal(t, h1, b.Hash(), "hash must be deterministic")

	// Content change changes the hash
	b.Replace(2, "stage_b", &fakeOutput{Value: "z", Confidence: 0.8})
	assert.NotEqual(t, h1, b.Hash())

	// A restored bundle with the same snapshot hashes identically
	restored := NewBundle()
	restored.Restore(b.Snapshot())
	assert.Equal(t, b.Hash(), restored.Hash())
}

func TestBundleDropPassesFrom(t *testing.T) {
	b := NewBundle()
	require.NoError(t, b.Put(1, "a", &fakeOutput{}))
	require.NoError(t, b.Put(2, "b", &fakeOutput{}))
	require.NoError(t, b.Put(3, "c", &fakeOutput{}))

	b.DropPassesFrom(2)

	_, ok := b.Get(1, "a")
	assert.True(t, ok)
	_, ok = b.Get(2, "b")
	assert.False(t, ok)
	_, ok = b.Get(3, "c")
	assert.False(t, ok)
}

func TestBundleKeysSorted(t *testing.T) {
	b := NewBundle()
	require.NoError(t, b.Put(2, "motivation_analysis", &fakeOutput{}))
	require.NoError(t, b.Put(1, "actor_analysis", &fakeOutput{}))

	assert.Equal(t, []string{"pass1.actor_analysis", "pass2.motivation_analysis"}, b.Keys())
}
