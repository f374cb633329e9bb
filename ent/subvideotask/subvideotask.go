// Code generated by ent, DO NOT EDIT.

package subvideotask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subvideotask type in the database.
	Label = "sub_video_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sub_task_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldVariantIndex holds the string denoting the variant_index field in the database.
	FieldVariantIndex = "variant_index"
	// FieldScriptStyle holds the string denoting the script_style field in the database.
	FieldScriptStyle = "script_style"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldScriptID holds the string denoting the script_id field in the database.
	FieldScriptID = "script_id"
	// FieldScriptPayload holds the string denoting the script_payload field in the database.
	FieldScriptPayload = "script_payload"
	// FieldExternalMergeID holds the string denoting the external_merge_id field in the database.
	FieldExternalMergeID = "external_merge_id"
	// FieldVideoURL holds the string denoting the video_url field in the database.
	FieldVideoURL = "video_url"
	// FieldThumbnailURL holds the string denoting the thumbnail_url field in the database.
	FieldThumbnailURL = "thumbnail_url"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeScriptContent holds the string denoting the script_content edge name in mutations.
	EdgeScriptContent = "script_content"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// ScriptContentFieldID holds the string denoting the ID field of the ScriptContent.
	ScriptContentFieldID = "script_id"
	// Table holds the table name of the subvideotask in the database.
	Table = "sub_video_tasks"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "sub_video_tasks"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// ScriptContentTable is the table that holds the script_content relation/edge.
	ScriptContentTable = "script_contents"
	// ScriptContentInverseTable is the table name for the ScriptContent entity.
	// It exists in this package in order to avoid circular dependency with the "scriptcontent" package.
	ScriptContentInverseTable = "script_contents"
	// ScriptContentColumn is the table column denoting the script_content relation/edge.
	ScriptContentColumn = "sub_task_id"
)

// Columns holds all SQL columns for subvideotask fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldVariantIndex,
	FieldScriptStyle,
	FieldStatus,
	FieldProgress,
	FieldScriptID,
	FieldScriptPayload,
	FieldExternalMergeID,
	FieldVideoURL,
	FieldThumbnailURL,
	FieldDurationMs,
	FieldErrorMessage,
	FieldSubmittedAt,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending             Status = "pending"
	StatusScriptGenerating    Status = "script_generating"
	StatusScriptReady         Status = "script_ready"
	StatusScriptFailed        Status = "script_failed"
	StatusVideoSubmitting     Status = "video_submitting"
	StatusVideoProcessing     Status = "video_processing"
	StatusProcessingSubtitles Status = "processing_subtitles"
	StatusCompleted           Status = "completed"
	StatusFailed              Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusScriptGenerating, StatusScriptReady, StatusScriptFailed, StatusVideoSubmitting, StatusVideoProcessing, StatusProcessingSubtitles, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("subvideotask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SubVideoTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByVariantIndex orders the results by the variant_index field.
func ByVariantIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantIndex, opts...).ToFunc()
}

// ByScriptStyle orders the results by the script_style field.
func ByScriptStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptStyle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByScriptID orders the results by the script_id field.
func ByScriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptID, opts...).ToFunc()
}

// ByExternalMergeID orders the results by the external_merge_id field.
func ByExternalMergeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalMergeID, opts...).ToFunc()
}

// ByVideoURL orders the results by the video_url field.
func ByVideoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoURL, opts...).ToFunc()
}

// ByThumbnailURL orders the results by the thumbnail_url field.
func ByThumbnailURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailURL, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByScriptContentField orders the results by script_content field.
func ByScriptContentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScriptContentStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newScriptContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScriptContentInverseTable, ScriptContentFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ScriptContentTable, ScriptContentColumn),
	)
}
