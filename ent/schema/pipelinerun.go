package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// A run owns the set of stories processed for one edition.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("edition_id"),
		field.Enum("status").
			Values("pending", "running", "paused", "cancelled", "completed").
			Default("pending"),
		field.JSON("phase_status", map[string]interface{}{}).
			Optional().
			Comment("Per-story pass/stage progress for the dashboard"),
		field.Float("cost_total_usd").
			Default(0),
		field.JSON("error_log", []map[string]interface{}{}).
			Optional().
			Comment("Per-story failure entries; the run itself never raises"),
		field.JSON("config_overrides", map[string]interface{}{}).
			Optional(),
		field.String("cancel_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stories", Story.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		// One run per edition
		index.Fields("edition_id").
			Unique(),
		index.Fields("status"),
	}
}
