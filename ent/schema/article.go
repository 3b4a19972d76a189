package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for the Article entity.
// Rows are written by the ingestion side; the engine reads them as Pass 1
// inputs and never mutates them.
type Article struct {
	ent.Schema
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("article_id").
			Unique().
			Immutable(),
		field.String("source_name").
			Immutable(),
		field.String("url").
			Immutable(),
		field.String("title").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Time("published_at").
			Immutable(),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "published_at"),
	}
}
