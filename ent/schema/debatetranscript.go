package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateTranscript holds the schema definition for the DebateTranscript entity.
// Created and sealed by the debate subprotocol inside Pass 3. Append-only:
// rounds accumulate, judgment is written exactly once at seal time.
type DebateTranscript struct {
	ent.Schema
}

// Fields of the DebateTranscript.
func (DebateTranscript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),
		field.JSON("rounds", []map[string]interface{}{}).
			Optional().
			Comment("advocate_defense, challenges[], responses[] per round"),
		field.JSON("judgment", map[string]interface{}{}).
			Optional().
			Comment("rulings[], modifications[], confidence_adjustment, verdict"),
		field.String("verdict").
			Optional().
			Comment("Set exactly once when the transcript is sealed"),
		field.Float("confidence_before").
			Default(0),
		field.Float("confidence_after").
			Optional().
			Nillable(),
		field.Time("sealed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DebateTranscript.
func (DebateTranscript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("debate_transcripts").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DebateTranscript.
func (DebateTranscript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id"),
	}
}
