// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/task"
)

// MediaItem is the model entity for the MediaItem schema.
type MediaItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// OriginalURL holds the value of the "original_url" field.
	OriginalURL string `json:"original_url,omitempty"`
	// LocalPath holds the value of the "local_path" field.
	LocalPath string `json:"local_path,omitempty"`
	// RemoteURL holds the value of the "remote_url" field.
	RemoteURL string `json:"remote_url,omitempty"`
	// MediaType holds the value of the "media_type" field.
	MediaType mediaitem.MediaType `json:"media_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// WxH for images and videos
	Resolution *string `json:"resolution,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MediaItemQuery when eager-loading is set.
	Edges        MediaItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MediaItemEdges holds the relations/edges for other nodes in the graph.
type MediaItemEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MediaItemEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediaItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediaitem.FieldFileSize, mediaitem.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case mediaitem.FieldID, mediaitem.FieldTaskID, mediaitem.FieldOriginalURL, mediaitem.FieldLocalPath, mediaitem.FieldRemoteURL, mediaitem.FieldMediaType, mediaitem.FieldMimeType, mediaitem.FieldResolution:
			values[i] = new(sql.NullString)
		case mediaitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediaItem fields.
func (_m *MediaItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediaitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mediaitem.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case mediaitem.FieldOriginalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_url", values[i])
			} else if value.Valid {
				_m.OriginalURL = value.String
			}
		case mediaitem.FieldLocalPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_path", values[i])
			} else if value.Valid {
				_m.LocalPath = value.String
			}
		case mediaitem.FieldRemoteURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remote_url", values[i])
			} else if value.Valid {
				_m.RemoteURL = value.String
			}
		case mediaitem.FieldMediaType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_type", values[i])
			} else if value.Valid {
				_m.MediaType = mediaitem.MediaType(value.String)
			}
		case mediaitem.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case mediaitem.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case mediaitem.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = new(string)
				*_m.Resolution = value.String
			}
		case mediaitem.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case mediaitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediaItem.
// This includes values selected through modifiers, order, etc.
func (_m *MediaItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the MediaItem entity.
func (_m *MediaItem) QueryTask() *TaskQuery {
	return NewMediaItemClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this MediaItem.
// Note that you need to call MediaItem.Unwrap() before calling this method if this MediaItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MediaItem) Update() *MediaItemUpdateOne {
	return NewMediaItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MediaItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MediaItem) Unwrap() *MediaItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediaItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MediaItem) String() string {
	var builder strings.Builder
	builder.WriteString("MediaItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("original_url=")
	builder.WriteString(_m.OriginalURL)
	builder.WriteString(", ")
	builder.WriteString("local_path=")
	builder.WriteString(_m.LocalPath)
	builder.WriteString(", ")
	builder.WriteString("remote_url=")
	builder.WriteString(_m.RemoteURL)
	builder.WriteString(", ")
	builder.WriteString("media_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaType))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	if v := _m.Resolution; v != nil {
		builder.WriteString("resolution=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MediaItems is a parsable slice of MediaItem.
type MediaItems []*MediaItem
