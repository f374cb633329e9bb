package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// One row per user request; owns the full pipeline lifecycle.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("mode").
			Values("single_scene", "multi_scene").
			Default("single_scene"),
		field.String("script_style_default").
			Comment("Style applied to variant 1; others rotate the configured list"),
		field.Int("variant_count").
			Comment("Requested variants, 1..5 (validated in the service layer)"),
		field.JSON("media_urls", []string{}).
			Comment("Source URLs supplied at creation"),
		field.JSON("media_meta", map[string]interface{}{}).
			Optional().
			Comment("Opaque pass-through metadata for fetch/analysis"),
		field.Enum("status").
			Values("pending", "processing", "cancelling", "completed", "failed", "cancelled", "partial_success").
			Default("pending"),
		field.Int("progress").
			Default(0).
			Comment("0..100, monotone non-decreasing (enforced by conditional update)"),
		field.Enum("current_stage").
			Values("material_processing", "material_analysis", "subtask_creation", "script_generation", "video_generation", "completed").
			Optional().
			Nillable(),
		field.String("stage_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker first claimed the task"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set iff status is terminal"),
		field.String("video_url").
			Optional().
			Nillable(),
		field.String("thumbnail_url").
			Optional().
			Nillable(),
		field.Int("video_duration_ms").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("workspace_dir"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Lease owner; non-null only while processing"),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Worker lease expiry; refreshed by the heartbeat"),
		field.Int("attempts").
			Default(0).
			Comment("Times the task was reclaimed after a lease expiry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sub_tasks", SubVideoTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("media_items", MediaItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analyses", MaterialAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "lease_expires_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
