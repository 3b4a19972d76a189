package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the schema definition for the AgentRecord entity.
// One row per agent execution: the persisted AgentResult metadata plus the
// validated output payload, kept with the story for reproducibility.
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),
		field.Int("pass").
			Comment("1-4"),
		field.String("stage").
			Comment("e.g., 'factual_reconstruction', 'debate'"),
		field.String("task_name"),
		field.String("version").
			Comment("Agent prompt/schema version, e.g. '2025-11-03'"),
		field.String("execution_id").
			Comment("Unique per Runtime.Run call"),
		field.Bool("success"),
		field.String("error_kind").
			Optional().
			Comment("Stable error code when success=false"),
		field.String("error_message").
			Optional(),
		field.String("provider").
			Optional(),
		field.String("model_used").
			Optional(),
		field.String("tier").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Int("latency_ms").
			Default(0),
		field.Int("retries").
			Default(0),
		field.Bool("cache_hit").
			Default(false),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Validated output payload (success only)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentRecord.
func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("agent_records").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "pass"),
		index.Fields("execution_id").
			Unique(),
	}
}
