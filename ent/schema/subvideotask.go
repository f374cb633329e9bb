package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubVideoTask holds the schema definition for the SubVideoTask entity.
// One row per requested variant of a parent Task.
type SubVideoTask struct {
	ent.Schema
}

// Fields of the SubVideoTask.
func (SubVideoTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sub_task_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("variant_index").
			Comment("1-based position within the parent's variant set"),
		field.String("script_style"),
		field.Enum("status").
			Values("pending", "script_generating", "script_ready", "script_failed",
				"video_submitting", "video_processing", "processing_subtitles",
				"completed", "failed").
			Default("pending"),
		field.Int("progress").
			Default(0),
		field.String("script_id").
			Optional().
			Nillable(),
		field.JSON("script_payload", map[string]interface{}{}).
			Optional().
			Comment("Merge-service submission payload, persisted before submit"),
		field.String("external_merge_id").
			Optional().
			Nillable().
			Comment("Merge job id; doubles as the submission idempotency witness"),
		field.String("video_url").
			Optional().
			Nillable(),
		field.String("thumbnail_url").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("submitted_at").
			Optional().
			Nillable().
			Comment("When the merge job was submitted; anchors the poll timeout"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the SubVideoTask.
func (SubVideoTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("sub_tasks").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("script_content", ScriptContent.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SubVideoTask.
func (SubVideoTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "variant_index").
			Unique(),
		index.Fields("external_merge_id").
			Unique().
			Annotations(entsql.IndexWhere("external_merge_id IS NOT NULL")),
		index.Fields("status", "submitted_at"),
	}
}
