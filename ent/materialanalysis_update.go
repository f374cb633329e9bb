// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/predicate"
)

// MaterialAnalysisUpdate is the builder for updating MaterialAnalysis entities.
type MaterialAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialAnalysisMutation
}

// Where appends a list predicates to the MaterialAnalysisUpdate builder.
func (_u *MaterialAnalysisUpdate) Where(ps ...predicate.MaterialAnalysis) *MaterialAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MaterialAnalysisUpdate) SetDescription(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableDescription(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *MaterialAnalysisUpdate) SetTags(v []string) *MaterialAnalysisUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MaterialAnalysisUpdate) AppendTags(v []string) *MaterialAnalysisUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MaterialAnalysisUpdate) ClearTags() *MaterialAnalysisUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *MaterialAnalysisUpdate) SetTheme(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableTheme(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *MaterialAnalysisUpdate) ClearTheme() *MaterialAnalysisUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MaterialAnalysisUpdate) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableStatus(v *materialanalysis.Status) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MaterialAnalysisUpdate) SetQualityScore(v float64) *MaterialAnalysisUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableQualityScore(v *float64) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MaterialAnalysisUpdate) AddQualityScore(v float64) *MaterialAnalysisUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MaterialAnalysisUpdate) ClearQualityScore() *MaterialAnalysisUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_u *MaterialAnalysisUpdate) Mutation() *MaterialAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialAnalysis.task"`)
	}
	return nil
}

func (_u *MaterialAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialanalysis.Table, materialanalysis.Columns, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialanalysis.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(materialanalysis.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(materialanalysis.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(materialanalysis.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(materialanalysis.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(materialanalysis.FieldQualityScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialAnalysisUpdateOne is the builder for updating a single MaterialAnalysis entity.
type MaterialAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialAnalysisMutation
}

// SetDescription sets the "description" field.
func (_u *MaterialAnalysisUpdateOne) SetDescription(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableDescription(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *MaterialAnalysisUpdateOne) SetTags(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MaterialAnalysisUpdateOne) AppendTags(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MaterialAnalysisUpdateOne) ClearTags() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *MaterialAnalysisUpdateOne) SetTheme(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableTheme(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *MaterialAnalysisUpdateOne) ClearTheme() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MaterialAnalysisUpdateOne) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableStatus(v *materialanalysis.Status) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) SetQualityScore(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableQualityScore(v *float64) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) AddQualityScore(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) ClearQualityScore() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_u *MaterialAnalysisUpdateOne) Mutation() *MaterialAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the MaterialAnalysisUpdate builder.
func (_u *MaterialAnalysisUpdateOne) Where(ps ...predicate.MaterialAnalysis) *MaterialAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialAnalysisUpdateOne) Select(field string, fields ...string) *MaterialAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaterialAnalysis entity.
func (_u *MaterialAnalysisUpdateOne) Save(ctx context.Context) (*MaterialAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialAnalysisUpdateOne) SaveX(ctx context.Context) *MaterialAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialAnalysis.task"`)
	}
	return nil
}

func (_u *MaterialAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *MaterialAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialanalysis.Table, materialanalysis.Columns, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaterialAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialanalysis.FieldID)
		for _, f := range fields {
			if !materialanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != materialanalysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialanalysis.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(materialanalysis.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(materialanalysis.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(materialanalysis.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(materialanalysis.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(materialanalysis.FieldQualityScore, field.TypeFloat64)
	}
	_node = &MaterialAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
