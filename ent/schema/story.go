package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Story holds the schema definition for the Story entity.
// A story is the unit of work driven through the four-pass analysis pipeline.
type Story struct {
	ent.Schema
}

// Fields of the Story.
func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("story_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable().
			Comment("Owning pipeline run"),
		field.String("edition_id").
			Immutable().
			Comment("Denormalized from the run for reporting queries"),
		field.String("headline"),
		field.String("primary_zone").
			Comment("e.g., 'eastern-europe', 'south-china-sea'"),
		field.JSON("secondary_zones", []string{}).
			Optional(),
		field.JSON("source_article_ids", []string{}).
			Comment("Article store references consumed by Pass 1"),
		field.Enum("status").
			Values("queued", "in_progress", "cancelling", "paused", "escalated",
				"ready_for_publication", "published", "failed", "cancelled", "timed_out").
			Default("queued"),
		field.Int("current_pass").
			Default(0).
			Comment("0 before Pass 1 starts; monotonically non-decreasing"),
		field.String("current_stage").
			Optional().
			Nillable(),
		field.JSON("pass_outputs", map[string]interface{}{}).
			Optional().
			Comment("AnalysisBundle snapshot keyed by pass.stage; append-only within a run"),
		field.JSON("quality_scores", map[string]float64{}).
			Optional().
			Comment("Gate score per pass: 'pass1'..'pass4'"),
		field.JSON("gates_passed", map[string]string{}).
			Optional().
			Comment("Gate outcome per pass, incl. explicit overrides"),
		field.JSON("flags", []string{}).
			Optional().
			Comment("Reason-coded flags accumulated during the run"),
		field.JSON("cost_by_pass", map[string]float64{}).
			Optional(),
		field.Float("total_cost_usd").
			Default(0),
		field.JSON("retry_counts", map[string]int{}).
			Optional().
			Comment("Gate retries consumed per pass"),
		field.Int("reanalysis_count").
			Default(0).
			Comment("REQUEST_REANALYSIS resolutions consumed (max 1)"),
		field.Int("novelty").
			Default(0).
			Comment("Selection signal 0-10"),
		field.Int("zones_affected").
			Default(0),
		field.String("signal_type").
			Optional().
			Comment("e.g., 'COUNTER_CONSENSUS'"),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topic tags matched against the sensitive-topic set"),
		field.Text("article_final").
			Optional().
			Nillable().
			Comment("Published article text after Gate 4 or APPROVED_WITH_EDITS"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("abort_reason").
			Optional().
			Nillable().
			Comment("Reason code for FAILED stories, e.g. 'STORY_TIMEOUT'"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
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

// Edges of the Story.
func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("stories").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_records", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("debate_transcripts", DebateTranscript.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("escalation_items", EscalationItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ledger_entries", CostLedgerEntry.Type),
	}
}

// Indexes of the Story.
func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status", "created_at"),
	}
}
