// Code generated by ent, DO NOT EDIT.

package scriptcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scriptcontent type in the database.
	Label = "script_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "script_id"
	// FieldSubTaskID holds the string denoting the sub_task_id field in the database.
	FieldSubTaskID = "sub_task_id"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldTitles holds the string denoting the titles field in the database.
	FieldTitles = "titles"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldSceneCount holds the string denoting the scene_count field in the database.
	FieldSceneCount = "scene_count"
	// FieldEstimatedDurationS holds the string denoting the estimated_duration_s field in the database.
	FieldEstimatedDurationS = "estimated_duration_s"
	// FieldScenes holds the string denoting the scenes field in the database.
	FieldScenes = "scenes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubTask holds the string denoting the sub_task edge name in mutations.
	EdgeSubTask = "sub_task"
	// SubVideoTaskFieldID holds the string denoting the ID field of the SubVideoTask.
	SubVideoTaskFieldID = "sub_task_id"
	// Table holds the table name of the scriptcontent in the database.
	Table = "script_contents"
	// SubTaskTable is the table that holds the sub_task relation/edge.
	SubTaskTable = "script_contents"
	// SubTaskInverseTable is the table name for the SubVideoTask entity.
	// It exists in this package in order to avoid circular dependency with the "subvideotask" package.
	SubTaskInverseTable = "sub_video_tasks"
	// SubTaskColumn is the table column denoting the sub_task relation/edge.
	SubTaskColumn = "sub_task_id"
)

// Columns holds all SQL columns for scriptcontent fields.
var Columns = []string{
	FieldID,
	FieldSubTaskID,
	FieldStyle,
	FieldTitles,
	FieldWordCount,
	FieldSceneCount,
	FieldEstimatedDurationS,
	FieldScenes,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ScriptContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubTaskID orders the results by the sub_task_id field.
func BySubTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTaskID, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// BySceneCount orders the results by the scene_count field.
func BySceneCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSceneCount, opts...).ToFunc()
}

// ByEstimatedDurationS orders the results by the estimated_duration_s field.
func ByEstimatedDurationS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDurationS, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubTaskField orders the results by sub_task field.
func BySubTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newSubTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubTaskInverseTable, SubVideoTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SubTaskTable, SubTaskColumn),
	)
}
