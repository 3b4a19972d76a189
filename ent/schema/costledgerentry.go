package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CostLedgerEntry holds the schema definition for the CostLedgerEntry entity.
// Append-only: one row per terminal Gateway call outcome (success or final
// failure). Budget windows are rebuilt from this table at startup.
type CostLedgerEntry struct {
	ent.Schema
}

// Fields of the CostLedgerEntry.
func (CostLedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Optional().
			Immutable(),
		field.String("run_id").
			Optional().
			Immutable(),
		field.String("task").
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("model").
			Immutable(),
		field.String("tier").
			Immutable(),
		field.Int("input_tokens").
			Immutable(),
		field.Int("output_tokens").
			Immutable(),
		field.Float("total_cost_usd").
			Immutable(),
		field.Int("latency_ms").
			Immutable(),
		field.Int("retries").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CostLedgerEntry.
func (CostLedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("ledger_entries").
			Field("story_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the CostLedgerEntry.
func (CostLedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("story_id"),
	}
}
