package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EscalationItem holds the schema definition for the EscalationItem entity.
// A story handed to human review with its full analysis chain attached.
// Mutated only by review resolution.
type EscalationItem struct {
	ent.Schema
}

// Fields of the EscalationItem.
func (EscalationItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("escalation_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),
		field.Enum("severity").
			Values("low", "medium", "high", "critical"),
		field.JSON("triggers", []string{}).
			Comment("Named trigger predicates that fired"),
		field.JSON("review_package", map[string]interface{}{}).
			Comment("draft, specific_issues[], source_doc_refs[], analysis_chain, debate_transcript?, suggested_actions[]"),
		field.String("bundle_hash").
			Comment("sha256 of the AnalysisBundle snapshot at creation time"),
		field.Enum("status").
			Values("open", "in_review", "resolved").
			Default("open"),
		field.Enum("resolution").
			Values("approved", "approved_with_edits", "request_reanalysis", "rejected").
			Optional().
			Nillable(),
		field.Int("reanalysis_from_pass").
			Optional().
			Nillable(),
		field.Text("resolution_notes").
			Optional(),
		field.Text("edited_draft").
			Optional().
			Nillable().
			Comment("Submitted text for APPROVED_WITH_EDITS"),
		field.String("assignee").
			Optional().
			Nillable(),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the EscalationItem.
func (EscalationItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("escalation_items").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EscalationItem.
func (EscalationItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("story_id"),
	}
}
