package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScriptContent holds the schema definition for the ScriptContent entity.
// One row per sub-task once script generation succeeds; append-only.
type ScriptContent struct {
	ent.Schema
}

// Fields of the ScriptContent.
func (ScriptContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("script_id").
			Unique().
			Immutable(),
		field.String("sub_task_id").
			Immutable(),
		field.String("style"),
		field.JSON("titles", []string{}),
		field.Int("word_count"),
		field.Int("scene_count"),
		field.Int("estimated_duration_s"),
		field.JSON("scenes", []map[string]interface{}{}).
			Comment("Each scene: text, duration_s, media_item_ids"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ScriptContent.
func (ScriptContent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sub_task", SubVideoTask.Type).
			Ref("script_content").
			Field("sub_task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScriptContent.
func (ScriptContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sub_task_id").
			Unique(),
	}
}
