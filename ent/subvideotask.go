// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// SubVideoTask is the model entity for the SubVideoTask schema.
type SubVideoTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// 1-based position within the parent's variant set
	VariantIndex int `json:"variant_index,omitempty"`
	// ScriptStyle holds the value of the "script_style" field.
	ScriptStyle string `json:"script_style,omitempty"`
	// Status holds the value of the "status" field.
	Status subvideotask.Status `json:"status,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress int `json:"progress,omitempty"`
	// ScriptID holds the value of the "script_id" field.
	ScriptID *string `json:"script_id,omitempty"`
	// Merge-service submission payload, persisted before submit
	ScriptPayload map[string]interface{} `json:"script_payload,omitempty"`
	// Merge job id; doubles as the submission idempotency witness
	ExternalMergeID *string `json:"external_merge_id,omitempty"`
	// VideoURL holds the value of the "video_url" field.
	VideoURL *string `json:"video_url,omitempty"`
	// ThumbnailURL holds the value of the "thumbnail_url" field.
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// When the merge job was submitted; anchors the poll timeout
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubVideoTaskQuery when eager-loading is set.
	Edges        SubVideoTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubVideoTaskEdges holds the relations/edges for other nodes in the graph.
type SubVideoTaskEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// ScriptContent holds the value of the script_content edge.
	ScriptContent *ScriptContent `json:"script_content,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubVideoTaskEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// ScriptContentOrErr returns the ScriptContent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubVideoTaskEdges) ScriptContentOrErr() (*ScriptContent, error) {
	if e.ScriptContent != nil {
		return e.ScriptContent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: scriptcontent.Label}
	}
	return nil, &NotLoadedError{edge: "script_content"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubVideoTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subvideotask.FieldScriptPayload:
			values[i] = new([]byte)
		case subvideotask.FieldVariantIndex, subvideotask.FieldProgress, subvideotask.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case subvideotask.FieldID, subvideotask.FieldTaskID, subvideotask.FieldScriptStyle, subvideotask.FieldStatus, subvideotask.FieldScriptID, subvideotask.FieldExternalMergeID, subvideotask.FieldVideoURL, subvideotask.FieldThumbnailURL, subvideotask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case subvideotask.FieldSubmittedAt, subvideotask.FieldCompletedAt, subvideotask.FieldCreatedAt, subvideotask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubVideoTask fields.
func (_m *SubVideoTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subvideotask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subvideotask.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case subvideotask.FieldVariantIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field variant_index", values[i])
			} else if value.Valid {
				_m.VariantIndex = int(value.Int64)
			}
		case subvideotask.FieldScriptStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_style", values[i])
			} else if value.Valid {
				_m.ScriptStyle = value.String
			}
		case subvideotask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = subvideotask.Status(value.String)
			}
		case subvideotask.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case subvideotask.FieldScriptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_id", values[i])
			} else if value.Valid {
				_m.ScriptID = new(string)
				*_m.ScriptID = value.String
			}
		case subvideotask.FieldScriptPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field script_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScriptPayload); err != nil {
					return fmt.Errorf("unmarshal field script_payload: %w", err)
				}
			}
		case subvideotask.FieldExternalMergeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_merge_id", values[i])
			} else if value.Valid {
				_m.ExternalMergeID = new(string)
				*_m.ExternalMergeID = value.String
			}
		case subvideotask.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = new(string)
				*_m.VideoURL = value.String
			}
		case subvideotask.FieldThumbnailURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_url", values[i])
			} else if value.Valid {
				_m.ThumbnailURL = new(string)
				*_m.ThumbnailURL = value.String
			}
		case subvideotask.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case subvideotask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case subvideotask.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		case subvideotask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case subvideotask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subvideotask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubVideoTask.
// This includes values selected through modifiers, order, etc.
func (_m *SubVideoTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the SubVideoTask entity.
func (_m *SubVideoTask) QueryTask() *TaskQuery {
	return NewSubVideoTaskClient(_m.config).QueryTask(_m)
}

// QueryScriptContent queries the "script_content" edge of the SubVideoTask entity.
func (_m *SubVideoTask) QueryScriptContent() *ScriptContentQuery {
	return NewSubVideoTaskClient(_m.config).QueryScriptContent(_m)
}

// Update returns a builder for updating this SubVideoTask.
// Note that you need to call SubVideoTask.Unwrap() before calling this method if this SubVideoTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubVideoTask) Update() *SubVideoTaskUpdateOne {
	return NewSubVideoTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubVideoTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubVideoTask) Unwrap() *SubVideoTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubVideoTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubVideoTask) String() string {
	var builder strings.Builder
	builder.WriteString("SubVideoTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("variant_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.VariantIndex))
	builder.WriteString(", ")
	builder.WriteString("script_style=")
	builder.WriteString(_m.ScriptStyle)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	if v := _m.ScriptID; v != nil {
		builder.WriteString("script_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("script_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScriptPayload))
	builder.WriteString(", ")
	if v := _m.ExternalMergeID; v != nil {
		builder.WriteString("external_merge_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoURL; v != nil {
		builder.WriteString("video_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ThumbnailURL; v != nil {
		builder.WriteString("thumbnail_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubVideoTasks is a parsable slice of SubVideoTask.
type SubVideoTasks []*SubVideoTask
