package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediaItem holds the schema definition for the MediaItem entity.
// One row per successfully downloaded input asset; append-only.
type MediaItem struct {
	ent.Schema
}

// Fields of the MediaItem.
func (MediaItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("media_item_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("original_url").
			Immutable(),
		field.String("local_path"),
		field.String("remote_url"),
		field.Enum("media_type").
			Values("markdown", "image", "video"),
		field.Int64("file_size"),
		field.String("mime_type"),
		field.String("resolution").
			Optional().
			Nillable().
			Comment("WxH for images and videos"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MediaItem.
func (MediaItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("media_items").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MediaItem.
func (MediaItem) Indexes() []ent.Index {
	return []ent.Index{
		// Re-download of the same source is a no-op.
		index.Fields("task_id", "original_url").
			Unique(),
	}
}
