// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode task.Mode `json:"mode,omitempty"`
	// Style applied to variant 1; others rotate the configured list
	ScriptStyleDefault string `json:"script_style_default,omitempty"`
	// Requested variants, 1..5 (validated in the service layer)
	VariantCount int `json:"variant_count,omitempty"`
	// Source URLs supplied at creation
	MediaUrls []string `json:"media_urls,omitempty"`
	// Opaque pass-through metadata for fetch/analysis
	MediaMeta map[string]interface{} `json:"media_meta,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// 0..100, monotone non-decreasing (enforced by conditional update)
	Progress int `json:"progress,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage *task.CurrentStage `json:"current_stage,omitempty"`
	// StageMessage holds the value of the "stage_message" field.
	StageMessage *string `json:"stage_message,omitempty"`
	// When a worker first claimed the task
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set iff status is terminal
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// VideoURL holds the value of the "video_url" field.
	VideoURL *string `json:"video_url,omitempty"`
	// ThumbnailURL holds the value of the "thumbnail_url" field.
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	// VideoDurationMs holds the value of the "video_duration_ms" field.
	VideoDurationMs *int `json:"video_duration_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// WorkspaceDir holds the value of the "workspace_dir" field.
	WorkspaceDir string `json:"workspace_dir,omitempty"`
	// Lease owner; non-null only while processing
	PodID *string `json:"pod_id,omitempty"`
	// Worker lease expiry; refreshed by the heartbeat
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// Times the task was reclaimed after a lease expiry
	Attempts int `json:"attempts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// SubTasks holds the value of the sub_tasks edge.
	SubTasks []*SubVideoTask `json:"sub_tasks,omitempty"`
	// MediaItems holds the value of the media_items edge.
	MediaItems []*MediaItem `json:"media_items,omitempty"`
	// Analyses holds the value of the analyses edge.
	Analyses []*MaterialAnalysis `json:"analyses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SubTasksOrErr returns the SubTasks value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) SubTasksOrErr() ([]*SubVideoTask, error) {
	if e.loadedTypes[0] {
		return e.SubTasks, nil
	}
	return nil, &NotLoadedError{edge: "sub_tasks"}
}

// MediaItemsOrErr returns the MediaItems value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) MediaItemsOrErr() ([]*MediaItem, error) {
	if e.loadedTypes[1] {
		return e.MediaItems, nil
	}
	return nil, &NotLoadedError{edge: "media_items"}
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AnalysesOrErr() ([]*MaterialAnalysis, error) {
	if e.loadedTypes[2] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldMediaUrls, task.FieldMediaMeta:
			values[i] = new([]byte)
		case task.FieldVariantCount, task.FieldProgress, task.FieldVideoDurationMs, task.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldTitle, task.FieldDescription, task.FieldMode, task.FieldScriptStyleDefault, task.FieldStatus, task.FieldCurrentStage, task.FieldStageMessage, task.FieldVideoURL, task.FieldThumbnailURL, task.FieldErrorMessage, task.FieldWorkspaceDir, task.FieldPodID:
			values[i] = new(sql.NullString)
		case task.FieldStartedAt, task.FieldCompletedAt, task.FieldLeaseExpiresAt, task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case task.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = task.Mode(value.String)
			}
		case task.FieldScriptStyleDefault:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_style_default", values[i])
			} else if value.Valid {
				_m.ScriptStyleDefault = value.String
			}
		case task.FieldVariantCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field variant_count", values[i])
			} else if value.Valid {
				_m.VariantCount = int(value.Int64)
			}
		case task.FieldMediaUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MediaUrls); err != nil {
					return fmt.Errorf("unmarshal field media_urls: %w", err)
				}
			}
		case task.FieldMediaMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media_meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MediaMeta); err != nil {
					return fmt.Errorf("unmarshal field media_meta: %w", err)
				}
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case task.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(task.CurrentStage)
				*_m.CurrentStage = task.CurrentStage(value.String)
			}
		case task.FieldStageMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_message", values[i])
			} else if value.Valid {
				_m.StageMessage = new(string)
				*_m.StageMessage = value.String
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case task.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = new(string)
				*_m.VideoURL = value.String
			}
		case task.FieldThumbnailURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_url", values[i])
			} else if value.Valid {
				_m.ThumbnailURL = new(string)
				*_m.ThumbnailURL = value.String
			}
		case task.FieldVideoDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field video_duration_ms", values[i])
			} else if value.Valid {
				_m.VideoDurationMs = new(int)
				*_m.VideoDurationMs = int(value.Int64)
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case task.FieldWorkspaceDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_dir", values[i])
			} else if value.Valid {
				_m.WorkspaceDir = value.String
			}
		case task.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case task.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case task.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubTasks queries the "sub_tasks" edge of the Task entity.
func (_m *Task) QuerySubTasks() *SubVideoTaskQuery {
	return NewTaskClient(_m.config).QuerySubTasks(_m)
}

// QueryMediaItems queries the "media_items" edge of the Task entity.
func (_m *Task) QueryMediaItems() *MediaItemQuery {
	return NewTaskClient(_m.config).QueryMediaItems(_m)
}

// QueryAnalyses queries the "analyses" edge of the Task entity.
func (_m *Task) QueryAnalyses() *MaterialAnalysisQuery {
	return NewTaskClient(_m.config).QueryAnalyses(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("script_style_default=")
	builder.WriteString(_m.ScriptStyleDefault)
	builder.WriteString(", ")
	builder.WriteString("variant_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VariantCount))
	builder.WriteString(", ")
	builder.WriteString("media_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaUrls))
	builder.WriteString(", ")
	builder.WriteString("media_meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaMeta))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StageMessage; v != nil {
		builder.WriteString("stage_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
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
	if v := _m.VideoDurationMs; v != nil {
		builder.WriteString("video_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("workspace_dir=")
	builder.WriteString(_m.WorkspaceDir)
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
