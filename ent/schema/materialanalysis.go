package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MaterialAnalysis holds the schema definition for the MaterialAnalysis
// entity. One row per analyzed MediaItem; append-only.
type MaterialAnalysis struct {
	ent.Schema
}

// Fields of the MaterialAnalysis.
func (MaterialAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("media_item_id").
			Immutable(),
		field.Text("description"),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("theme").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("completed", "failed"),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MaterialAnalysis.
func (MaterialAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("analyses").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MaterialAnalysis.
func (MaterialAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("media_item_id"),
	}
}
