// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MaterialAnalysesColumns holds the columns for the "material_analyses" table.
	MaterialAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "media_item_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "theme", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// MaterialAnalysesTable holds the schema information for the "material_analyses" table.
	MaterialAnalysesTable = &schema.Table{
		Name:       "material_analyses",
		Columns:    MaterialAnalysesColumns,
		PrimaryKey: []*schema.Column{MaterialAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "material_analyses_tasks_analyses",
				Columns:    []*schema.Column{MaterialAnalysesColumns[8]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "materialanalysis_task_id",
				Unique:  false,
				Columns: []*schema.Column{MaterialAnalysesColumns[8]},
			},
			{
				Name:    "materialanalysis_media_item_id",
				Unique:  false,
				Columns: []*schema.Column{MaterialAnalysesColumns[1]},
			},
		},
	}
	// MediaItemsColumns holds the columns for the "media_items" table.
	MediaItemsColumns = []*schema.Column{
		{Name: "media_item_id", Type: field.TypeString, Unique: true},
		{Name: "original_url", Type: field.TypeString},
		{Name: "local_path", Type: field.TypeString},
		{Name: "remote_url", Type: field.TypeString},
		{Name: "media_type", Type: field.TypeEnum, Enums: []string{"markdown", "image", "video"}},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "resolution", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// MediaItemsTable holds the schema information for the "media_items" table.
	MediaItemsTable = &schema.Table{
		Name:       "media_items",
		Columns:    MediaItemsColumns,
		PrimaryKey: []*schema.Column{MediaItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "media_items_tasks_media_items",
				Columns:    []*schema.Column{MediaItemsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mediaitem_task_id_original_url",
				Unique:  true,
				Columns: []*schema.Column{MediaItemsColumns[10], MediaItemsColumns[1]},
			},
		},
	}
	// ScriptContentsColumns holds the columns for the "script_contents" table.
	ScriptContentsColumns = []*schema.Column{
		{Name: "script_id", Type: field.TypeString, Unique: true},
		{Name: "style", Type: field.TypeString},
		{Name: "titles", Type: field.TypeJSON},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "scene_count", Type: field.TypeInt},
		{Name: "estimated_duration_s", Type: field.TypeInt},
		{Name: "scenes", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sub_task_id", Type: field.TypeString, Unique: true},
	}
	// ScriptContentsTable holds the schema information for the "script_contents" table.
	ScriptContentsTable = &schema.Table{
		Name:       "script_contents",
		Columns:    ScriptContentsColumns,
		PrimaryKey: []*schema.Column{ScriptContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "script_contents_sub_video_tasks_script_content",
				Columns:    []*schema.Column{ScriptContentsColumns[8]},
				RefColumns: []*schema.Column{SubVideoTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scriptcontent_sub_task_id",
				Unique:  true,
				Columns: []*schema.Column{ScriptContentsColumns[8]},
			},
		},
	}
	// SubVideoTasksColumns holds the columns for the "sub_video_tasks" table.
	SubVideoTasksColumns = []*schema.Column{
		{Name: "sub_task_id", Type: field.TypeString, Unique: true},
		{Name: "variant_index", Type: field.TypeInt},
		{Name: "script_style", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "script_generating", "script_ready", "script_failed", "video_submitting", "video_processing", "processing_subtitles", "completed", "failed"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "script_id", Type: field.TypeString, Nullable: true},
		{Name: "script_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "external_merge_id", Type: field.TypeString, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "thumbnail_url", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// SubVideoTasksTable holds the schema information for the "sub_video_tasks" table.
	SubVideoTasksTable = &schema.Table{
		Name:       "sub_video_tasks",
		Columns:    SubVideoTasksColumns,
		PrimaryKey: []*schema.Column{SubVideoTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sub_video_tasks_tasks_sub_tasks",
				Columns:    []*schema.Column{SubVideoTasksColumns[16]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subvideotask_task_id_variant_index",
				Unique:  true,
				Columns: []*schema.Column{SubVideoTasksColumns[16], SubVideoTasksColumns[1]},
			},
			{
				Name:    "subvideotask_external_merge_id",
				Unique:  true,
				Columns: []*schema.Column{SubVideoTasksColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "external_merge_id IS NOT NULL",
				},
			},
			{
				Name:    "subvideotask_status_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{SubVideoTasksColumns[3], SubVideoTasksColumns[12]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"single_scene", "multi_scene"}, Default: "single_scene"},
		{Name: "script_style_default", Type: field.TypeString},
		{Name: "variant_count", Type: field.TypeInt},
		{Name: "media_urls", Type: field.TypeJSON},
		{Name: "media_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "cancelling", "completed", "failed", "cancelled", "partial_success"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "current_stage", Type: field.TypeEnum, Nullable: true, Enums: []string{"material_processing", "material_analysis", "subtask_creation", "script_generation", "video_generation", "completed"}},
		{Name: "stage_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "thumbnail_url", Type: field.TypeString, Nullable: true},
		{Name: "video_duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "workspace_dir", Type: field.TypeString},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[22]},
			},
			{
				Name:    "task_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[20]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[24]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MaterialAnalysesTable,
		MediaItemsTable,
		ScriptContentsTable,
		SubVideoTasksTable,
		TasksTable,
	}
)

func init() {
	MaterialAnalysesTable.ForeignKeys[0].RefTable = TasksTable
	MediaItemsTable.ForeignKeys[0].RefTable = TasksTable
	ScriptContentsTable.ForeignKeys[0].RefTable = SubVideoTasksTable
	SubVideoTasksTable.ForeignKeys[0].RefTable = TasksTable
}
