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
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/scriptcontent"
)

// ScriptContentUpdate is the builder for updating ScriptContent entities.
type ScriptContentUpdate struct {
	config
	hooks    []Hook
	mutation *ScriptContentMutation
}

// Where appends a list predicates to the ScriptContentUpdate builder.
func (_u *ScriptContentUpdate) Where(ps ...predicate.ScriptContent) *ScriptContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStyle sets the "style" field.
func (_u *ScriptContentUpdate) SetStyle(v string) *ScriptContentUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableStyle(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetTitles sets the "titles" field.
func (_u *ScriptContentUpdate) SetTitles(v []string) *ScriptContentUpdate {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *ScriptContentUpdate) AppendTitles(v []string) *ScriptContentUpdate {
	_u.mutation.AppendTitles(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ScriptContentUpdate) SetWordCount(v int) *ScriptContentUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableWordCount(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ScriptContentUpdate) AddWordCount(v int) *ScriptContentUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSceneCount sets the "scene_count" field.
func (_u *ScriptContentUpdate) SetSceneCount(v int) *ScriptContentUpdate {
	_u.mutation.ResetSceneCount()
	_u.mutation.SetSceneCount(v)
	return _u
}

// SetNillableSceneCount sets the "scene_count" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableSceneCount(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetSceneCount(*v)
	}
	return _u
}

// AddSceneCount adds value to the "scene_count" field.
func (_u *ScriptContentUpdate) AddSceneCount(v int) *ScriptContentUpdate {
	_u.mutation.AddSceneCount(v)
	return _u
}

// SetEstimatedDurationS sets the "estimated_duration_s" field.
func (_u *ScriptContentUpdate) SetEstimatedDurationS(v int) *ScriptContentUpdate {
	_u.mutation.ResetEstimatedDurationS()
	_u.mutation.SetEstimatedDurationS(v)
	return _u
}

// SetNillableEstimatedDurationS sets the "estimated_duration_s" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableEstimatedDurationS(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetEstimatedDurationS(*v)
	}
	return _u
}

// AddEstimatedDurationS adds value to the "estimated_duration_s" field.
func (_u *ScriptContentUpdate) AddEstimatedDurationS(v int) *ScriptContentUpdate {
	_u.mutation.AddEstimatedDurationS(v)
	return _u
}

// SetScenes sets the "scenes" field.
func (_u *ScriptContentUpdate) SetScenes(v []map[string]interface{}) *ScriptContentUpdate {
	_u.mutation.SetScenes(v)
	return _u
}

// AppendScenes appends value to the "scenes" field.
func (_u *ScriptContentUpdate) AppendScenes(v []map[string]interface{}) *ScriptContentUpdate {
	_u.mutation.AppendScenes(v)
	return _u
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_u *ScriptContentUpdate) Mutation() *ScriptContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScriptContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScriptContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScriptContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScriptContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScriptContentUpdate) check() error {
	if _u.mutation.SubTaskCleared() && len(_u.mutation.SubTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScriptContent.sub_task"`)
	}
	return nil
}

func (_u *ScriptContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scriptcontent.Table, scriptcontent.Columns, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTitles, value)
		})
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SceneCount(); ok {
		_spec.SetField(scriptcontent.FieldSceneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSceneCount(); ok {
		_spec.AddField(scriptcontent.FieldSceneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDurationS(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDurationS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationS(); ok {
		_spec.AddField(scriptcontent.FieldEstimatedDurationS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldScenes, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scriptcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScriptContentUpdateOne is the builder for updating a single ScriptContent entity.
type ScriptContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScriptContentMutation
}

// SetStyle sets the "style" field.
func (_u *ScriptContentUpdateOne) SetStyle(v string) *ScriptContentUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableStyle(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetTitles sets the "titles" field.
func (_u *ScriptContentUpdateOne) SetTitles(v []string) *ScriptContentUpdateOne {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *ScriptContentUpdateOne) AppendTitles(v []string) *ScriptContentUpdateOne {
	_u.mutation.AppendTitles(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ScriptContentUpdateOne) SetWordCount(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableWordCount(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ScriptContentUpdateOne) AddWordCount(v int) *ScriptContentUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSceneCount sets the "scene_count" field.
func (_u *ScriptContentUpdateOne) SetSceneCount(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetSceneCount()
	_u.mutation.SetSceneCount(v)
	return _u
}

// SetNillableSceneCount sets the "scene_count" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableSceneCount(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetSceneCount(*v)
	}
	return _u
}

// AddSceneCount adds value to the "scene_count" field.
func (_u *ScriptContentUpdateOne) AddSceneCount(v int) *ScriptContentUpdateOne {
	_u.mutation.AddSceneCount(v)
	return _u
}

// SetEstimatedDurationS sets the "estimated_duration_s" field.
func (_u *ScriptContentUpdateOne) SetEstimatedDurationS(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetEstimatedDurationS()
	_u.mutation.SetEstimatedDurationS(v)
	return _u
}

// SetNillableEstimatedDurationS sets the "estimated_duration_s" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableEstimatedDurationS(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetEstimatedDurationS(*v)
	}
	return _u
}

// AddEstimatedDurationS adds value to the "estimated_duration_s" field.
func (_u *ScriptContentUpdateOne) AddEstimatedDurationS(v int) *ScriptContentUpdateOne {
	_u.mutation.AddEstimatedDurationS(v)
	return _u
}

// SetScenes sets the "scenes" field.
func (_u *ScriptContentUpdateOne) SetScenes(v []map[string]interface{}) *ScriptContentUpdateOne {
	_u.mutation.SetScenes(v)
	return _u
}

// AppendScenes appends value to the "scenes" field.
func (_u *ScriptContentUpdateOne) AppendScenes(v []map[string]interface{}) *ScriptContentUpdateOne {
	_u.mutation.AppendScenes(v)
	return _u
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_u *ScriptContentUpdateOne) Mutation() *ScriptContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScriptContentUpdate builder.
func (_u *ScriptContentUpdateOne) Where(ps ...predicate.ScriptContent) *ScriptContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScriptContentUpdateOne) Select(field string, fields ...string) *ScriptContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScriptContent entity.
func (_u *ScriptContentUpdateOne) Save(ctx context.Context) (*ScriptContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScriptContentUpdateOne) SaveX(ctx context.Context) *ScriptContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScriptContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScriptContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScriptContentUpdateOne) check() error {
	if _u.mutation.SubTaskCleared() && len(_u.mutation.SubTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScriptContent.sub_task"`)
	}
	return nil
}

func (_u *ScriptContentUpdateOne) sqlSave(ctx context.Context) (_node *ScriptContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scriptcontent.Table, scriptcontent.Columns, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScriptContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scriptcontent.FieldID)
		for _, f := range fields {
			if !scriptcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scriptcontent.FieldID {
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
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTitles, value)
		})
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SceneCount(); ok {
		_spec.SetField(scriptcontent.FieldSceneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSceneCount(); ok {
		_spec.AddField(scriptcontent.FieldSceneCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDurationS(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDurationS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationS(); ok {
		_spec.AddField(scriptcontent.FieldEstimatedDurationS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldScenes, value)
		})
	}
	_node = &ScriptContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scriptcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
