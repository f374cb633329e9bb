// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldScriptStyleDefault holds the string denoting the script_style_default field in the database.
	FieldScriptStyleDefault = "script_style_default"
	// FieldVariantCount holds the string denoting the variant_count field in the database.
	FieldVariantCount = "variant_count"
	// FieldMediaUrls holds the string denoting the media_urls field in the database.
	FieldMediaUrls = "media_urls"
	// FieldMediaMeta holds the string denoting the media_meta field in the database.
	FieldMediaMeta = "media_meta"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldStageMessage holds the string denoting the stage_message field in the database.
	FieldStageMessage = "stage_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldVideoURL holds the string denoting the video_url field in the database.
	FieldVideoURL = "video_url"
	// FieldThumbnailURL holds the string denoting the thumbnail_url field in the database.
	FieldThumbnailURL = "thumbnail_url"
	// FieldVideoDurationMs holds the string denoting the video_duration_ms field in the database.
	FieldVideoDurationMs = "video_duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldWorkspaceDir holds the string denoting the workspace_dir field in the database.
	FieldWorkspaceDir = "workspace_dir"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSubTasks holds the string denoting the sub_tasks edge name in mutations.
	EdgeSubTasks = "sub_tasks"
	// EdgeMediaItems holds the string denoting the media_items edge name in mutations.
	EdgeMediaItems = "media_items"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// SubVideoTaskFieldID holds the string denoting the ID field of the SubVideoTask.
	SubVideoTaskFieldID = "sub_task_id"
	// MediaItemFieldID holds the string denoting the ID field of the MediaItem.
	MediaItemFieldID = "media_item_id"
	// MaterialAnalysisFieldID holds the string denoting the ID field of the MaterialAnalysis.
	MaterialAnalysisFieldID = "analysis_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SubTasksTable is the table that holds the sub_tasks relation/edge.
	SubTasksTable = "sub_video_tasks"
	// SubTasksInverseTable is the table name for the SubVideoTask entity.
	// It exists in this package in order to avoid circular dependency with the "subvideotask" package.
	SubTasksInverseTable = "sub_video_tasks"
	// SubTasksColumn is the table column denoting the sub_tasks relation/edge.
	SubTasksColumn = "task_id"
	// MediaItemsTable is the table that holds the media_items relation/edge.
	MediaItemsTable = "media_items"
	// MediaItemsInverseTable is the table name for the MediaItem entity.
	// It exists in this package in order to avoid circular dependency with the "mediaitem" package.
	MediaItemsInverseTable = "media_items"
	// MediaItemsColumn is the table column denoting the media_items relation/edge.
	MediaItemsColumn = "task_id"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "material_analyses"
	// AnalysesInverseTable is the table name for the MaterialAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "materialanalysis" package.
	AnalysesInverseTable = "material_analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldMode,
	FieldScriptStyleDefault,
	FieldVariantCount,
	FieldMediaUrls,
	FieldMediaMeta,
	FieldStatus,
	FieldProgress,
	FieldCurrentStage,
	FieldStageMessage,
	FieldStartedAt,
	FieldCompletedAt,
	FieldVideoURL,
	FieldThumbnailURL,
	FieldVideoDurationMs,
	FieldErrorMessage,
	FieldWorkspaceDir,
	FieldPodID,
	FieldLeaseExpiresAt,
	FieldAttempts,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeSingleScene is the default value of the Mode enum.
const DefaultMode = ModeSingleScene

// Mode values.
const (
	ModeSingleScene Mode = "single_scene"
	ModeMultiScene  Mode = "multi_scene"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeSingleScene, ModeMultiScene:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusCancelling     Status = "cancelling"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusCancelled      Status = "cancelled"
	StatusPartialSuccess Status = "partial_success"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCancelling, StatusCompleted, StatusFailed, StatusCancelled, StatusPartialSuccess:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// CurrentStage defines the type for the "current_stage" enum field.
type CurrentStage string

// CurrentStage values.
const (
	CurrentStageMaterialProcessing CurrentStage = "material_processing"
	CurrentStageMaterialAnalysis   CurrentStage = "material_analysis"
	CurrentStageSubtaskCreation    CurrentStage = "subtask_creation"
	CurrentStageScriptGeneration   CurrentStage = "script_generation"
	CurrentStageVideoGeneration    CurrentStage = "video_generation"
	CurrentStageCompleted          CurrentStage = "completed"
)

func (cs CurrentStage) String() string {
	return string(cs)
}

// CurrentStageValidator is a validator for the "current_stage" field enum values. It is called by the builders before save.
func CurrentStageValidator(cs CurrentStage) error {
	switch cs {
	case CurrentStageMaterialProcessing, CurrentStageMaterialAnalysis, CurrentStageSubtaskCreation, CurrentStageScriptGeneration, CurrentStageVideoGeneration, CurrentStageCompleted:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for current_stage field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByScriptStyleDefault orders the results by the script_style_default field.
func ByScriptStyleDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptStyleDefault, opts...).ToFunc()
}

// ByVariantCount orders the results by the variant_count field.
func ByVariantCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByStageMessage orders the results by the stage_message field.
func ByStageMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByVideoURL orders the results by the video_url field.
func ByVideoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoURL, opts...).ToFunc()
}

// ByThumbnailURL orders the results by the thumbnail_url field.
func ByThumbnailURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailURL, opts...).ToFunc()
}

// ByVideoDurationMs orders the results by the video_duration_ms field.
func ByVideoDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByWorkspaceDir orders the results by the workspace_dir field.
func ByWorkspaceDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceDir, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// BySubTasksCount orders the results by sub_tasks count.
func BySubTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubTasksStep(), opts...)
	}
}

// BySubTasks orders the results by sub_tasks terms.
func BySubTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMediaItemsCount orders the results by media_items count.
func ByMediaItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMediaItemsStep(), opts...)
	}
}

// ByMediaItems orders the results by media_items terms.
func ByMediaItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMediaItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubTasksInverseTable, SubVideoTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubTasksTable, SubTasksColumn),
	)
}
func newMediaItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MediaItemsInverseTable, MediaItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MediaItemsTable, MediaItemsColumn),
	)
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, MaterialAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
