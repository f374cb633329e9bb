// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/task"
)

// MaterialAnalysis is the model entity for the MaterialAnalysis schema.
type MaterialAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// MediaItemID holds the value of the "media_item_id" field.
	MediaItemID string `json:"media_item_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme *string `json:"theme,omitempty"`
	// Status holds the value of the "status" field.
	Status materialanalysis.Status `json:"status,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore *float64 `json:"quality_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialAnalysisQuery when eager-loading is set.
	Edges        MaterialAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MaterialAnalysisEdges holds the relations/edges for other nodes in the graph.
type MaterialAnalysisEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialAnalysisEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaterialAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case materialanalysis.FieldTags:
			values[i] = new([]byte)
		case materialanalysis.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case materialanalysis.FieldID, materialanalysis.FieldTaskID, materialanalysis.FieldMediaItemID, materialanalysis.FieldDescription, materialanalysis.FieldTheme, materialanalysis.FieldStatus:
			values[i] = new(sql.NullString)
		case materialanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaterialAnalysis fields.
func (_m *MaterialAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case materialanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case materialanalysis.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case materialanalysis.FieldMediaItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_item_id", values[i])
			} else if value.Valid {
				_m.MediaItemID = value.String
			}
		case materialanalysis.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case materialanalysis.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case materialanalysis.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = new(string)
				*_m.Theme = value.String
			}
		case materialanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = materialanalysis.Status(value.String)
			}
		case materialanalysis.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(float64)
				*_m.QualityScore = value.Float64
			}
		case materialanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MaterialAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *MaterialAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the MaterialAnalysis entity.
func (_m *MaterialAnalysis) QueryTask() *TaskQuery {
	return NewMaterialAnalysisClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this MaterialAnalysis.
// Note that you need to call MaterialAnalysis.Unwrap() before calling this method if this MaterialAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaterialAnalysis) Update() *MaterialAnalysisUpdateOne {
	return NewMaterialAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaterialAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaterialAnalysis) Unwrap() *MaterialAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaterialAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaterialAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("MaterialAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("media_item_id=")
	builder.WriteString(_m.MediaItemID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	if v := _m.Theme; v != nil {
		builder.WriteString("theme=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MaterialAnalyses is a parsable slice of MaterialAnalysis.
type MaterialAnalyses []*MaterialAnalysis
