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
)

// ScriptContent is the model entity for the ScriptContent schema.
type ScriptContent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SubTaskID holds the value of the "sub_task_id" field.
	SubTaskID string `json:"sub_task_id,omitempty"`
	// Style holds the value of the "style" field.
	Style string `json:"style,omitempty"`
	// Titles holds the value of the "titles" field.
	Titles []string `json:"titles,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// SceneCount holds the value of the "scene_count" field.
	SceneCount int `json:"scene_count,omitempty"`
	// EstimatedDurationS holds the value of the "estimated_duration_s" field.
	EstimatedDurationS int `json:"estimated_duration_s,omitempty"`
	// Each scene: text, duration_s, media_item_ids
	Scenes []map[string]interface{} `json:"scenes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScriptContentQuery when eager-loading is set.
	Edges        ScriptContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScriptContentEdges holds the relations/edges for other nodes in the graph.
type ScriptContentEdges struct {
	// SubTask holds the value of the sub_task edge.
	SubTask *SubVideoTask `json:"sub_task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubTaskOrErr returns the SubTask value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScriptContentEdges) SubTaskOrErr() (*SubVideoTask, error) {
	if e.SubTask != nil {
		return e.SubTask, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subvideotask.Label}
	}
	return nil, &NotLoadedError{edge: "sub_task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScriptContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scriptcontent.FieldTitles, scriptcontent.FieldScenes:
			values[i] = new([]byte)
		case scriptcontent.FieldWordCount, scriptcontent.FieldSceneCount, scriptcontent.FieldEstimatedDurationS:
			values[i] = new(sql.NullInt64)
		case scriptcontent.FieldID, scriptcontent.FieldSubTaskID, scriptcontent.FieldStyle:
			values[i] = new(sql.NullString)
		case scriptcontent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScriptContent fields.
func (_m *ScriptContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scriptcontent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scriptcontent.FieldSubTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_task_id", values[i])
			} else if value.Valid {
				_m.SubTaskID = value.String
			}
		case scriptcontent.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				_m.Style = value.String
			}
		case scriptcontent.FieldTitles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field titles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Titles); err != nil {
					return fmt.Errorf("unmarshal field titles: %w", err)
				}
			}
		case scriptcontent.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case scriptcontent.FieldSceneCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scene_count", values[i])
			} else if value.Valid {
				_m.SceneCount = int(value.Int64)
			}
		case scriptcontent.FieldEstimatedDurationS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration_s", values[i])
			} else if value.Valid {
				_m.EstimatedDurationS = int(value.Int64)
			}
		case scriptcontent.FieldScenes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scenes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scenes); err != nil {
					return fmt.Errorf("unmarshal field scenes: %w", err)
				}
			}
		case scriptcontent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScriptContent.
// This includes values selected through modifiers, order, etc.
func (_m *ScriptContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubTask queries the "sub_task" edge of the ScriptContent entity.
func (_m *ScriptContent) QuerySubTask() *SubVideoTaskQuery {
	return NewScriptContentClient(_m.config).QuerySubTask(_m)
}

// Update returns a builder for updating this ScriptContent.
// Note that you need to call ScriptContent.Unwrap() before calling this method if this ScriptContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScriptContent) Update() *ScriptContentUpdateOne {
	return NewScriptContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScriptContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScriptContent) Unwrap() *ScriptContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScriptContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScriptContent) String() string {
	var builder strings.Builder
	builder.WriteString("ScriptContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sub_task_id=")
	builder.WriteString(_m.SubTaskID)
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(_m.Style)
	builder.WriteString(", ")
	builder.WriteString("titles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Titles))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("scene_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SceneCount))
	builder.WriteString(", ")
	builder.WriteString("estimated_duration_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedDurationS))
	builder.WriteString(", ")
	builder.WriteString("scenes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scenes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScriptContents is a parsable slice of ScriptContent.
type ScriptContents []*ScriptContent
