// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// SubVideoTaskCreate is the builder for creating a SubVideoTask entity.
type SubVideoTaskCreate struct {
	config
	mutation *SubVideoTaskMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *SubVideoTaskCreate) SetTaskID(v string) *SubVideoTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetVariantIndex sets the "variant_index" field.
func (_c *SubVideoTaskCreate) SetVariantIndex(v int) *SubVideoTaskCreate {
	_c.mutation.SetVariantIndex(v)
	return _c
}

// SetScriptStyle sets the "script_style" field.
func (_c *SubVideoTaskCreate) SetScriptStyle(v string) *SubVideoTaskCreate {
	_c.mutation.SetScriptStyle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubVideoTaskCreate) SetStatus(v subvideotask.Status) *SubVideoTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableStatus(v *subvideotask.Status) *SubVideoTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SubVideoTaskCreate) SetProgress(v int) *SubVideoTaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableProgress(v *int) *SubVideoTaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetScriptID sets the "script_id" field.
func (_c *SubVideoTaskCreate) SetScriptID(v string) *SubVideoTaskCreate {
	_c.mutation.SetScriptID(v)
	return _c
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableScriptID(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetScriptID(*v)
	}
	return _c
}

// SetScriptPayload sets the "script_payload" field.
func (_c *SubVideoTaskCreate) SetScriptPayload(v map[string]interface{}) *SubVideoTaskCreate {
	_c.mutation.SetScriptPayload(v)
	return _c
}

// SetExternalMergeID sets the "external_merge_id" field.
func (_c *SubVideoTaskCreate) SetExternalMergeID(v string) *SubVideoTaskCreate {
	_c.mutation.SetExternalMergeID(v)
	return _c
}

// SetNillableExternalMergeID sets the "external_merge_id" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableExternalMergeID(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetExternalMergeID(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *SubVideoTaskCreate) SetVideoURL(v string) *SubVideoTaskCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableVideoURL(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_c *SubVideoTaskCreate) SetThumbnailURL(v string) *SubVideoTaskCreate {
	_c.mutation.SetThumbnailURL(v)
	return _c
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableThumbnailURL(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetThumbnailURL(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SubVideoTaskCreate) SetDurationMs(v int) *SubVideoTaskCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableDurationMs(v *int) *SubVideoTaskCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubVideoTaskCreate) SetErrorMessage(v string) *SubVideoTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableErrorMessage(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SubVideoTaskCreate) SetSubmittedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableSubmittedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubVideoTaskCreate) SetCompletedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableCompletedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubVideoTaskCreate) SetCreatedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableCreatedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubVideoTaskCreate) SetUpdatedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableUpdatedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubVideoTaskCreate) SetID(v string) *SubVideoTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SubVideoTaskCreate) SetTask(v *Task) *SubVideoTaskCreate {
	return _c.SetTaskID(v.ID)
}

// SetScriptContentID sets the "script_content" edge to the ScriptContent entity by ID.
func (_c *SubVideoTaskCreate) SetScriptContentID(id string) *SubVideoTaskCreate {
	_c.mutation.SetScriptContentID(id)
	return _c
}

// SetNillableScriptContentID sets the "script_content" edge to the ScriptContent entity by ID if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableScriptContentID(id *string) *SubVideoTaskCreate {
	if id != nil {
		_c = _c.SetScriptContentID(*id)
	}
	return _c
}

// SetScriptContent sets the "script_content" edge to the ScriptContent entity.
func (_c *SubVideoTaskCreate) SetScriptContent(v *ScriptContent) *SubVideoTaskCreate {
	return _c.SetScriptContentID(v.ID)
}

// Mutation returns the SubVideoTaskMutation object of the builder.
func (_c *SubVideoTaskCreate) Mutation() *SubVideoTaskMutation {
	return _c.mutation
}

// Save creates the SubVideoTask in the database.
func (_c *SubVideoTaskCreate) Save(ctx context.Context) (*SubVideoTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubVideoTaskCreate) SaveX(ctx context.Context) *SubVideoTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubVideoTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubVideoTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubVideoTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := subvideotask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := subvideotask.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subvideotask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subvideotask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubVideoTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SubVideoTask.task_id"`)}
	}
	if _, ok := _c.mutation.VariantIndex(); !ok {
		return &ValidationError{Name: "variant_index", err: errors.New(`ent: missing required field "SubVideoTask.variant_index"`)}
	}
	if _, ok := _c.mutation.ScriptStyle(); !ok {
		return &ValidationError{Name: "script_style", err: errors.New(`ent: missing required field "SubVideoTask.script_style"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubVideoTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subvideotask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubVideoTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "SubVideoTask.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubVideoTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubVideoTask.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SubVideoTask.task"`)}
	}
	return nil
}

func (_c *SubVideoTaskCreate) sqlSave(ctx context.Context) (*SubVideoTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SubVideoTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubVideoTaskCreate) createSpec() (*SubVideoTask, *sqlgraph.CreateSpec) {
	var (
		_node = &SubVideoTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subvideotask.Table, sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VariantIndex(); ok {
		_spec.SetField(subvideotask.FieldVariantIndex, field.TypeInt, value)
		_node.VariantIndex = value
	}
	if value, ok := _c.mutation.ScriptStyle(); ok {
		_spec.SetField(subvideotask.FieldScriptStyle, field.TypeString, value)
		_node.ScriptStyle = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subvideotask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(subvideotask.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ScriptID(); ok {
		_spec.SetField(subvideotask.FieldScriptID, field.TypeString, value)
		_node.ScriptID = &value
	}
	if value, ok := _c.mutation.ScriptPayload(); ok {
		_spec.SetField(subvideotask.FieldScriptPayload, field.TypeJSON, value)
		_node.ScriptPayload = value
	}
	if value, ok := _c.mutation.ExternalMergeID(); ok {
		_spec.SetField(subvideotask.FieldExternalMergeID, field.TypeString, value)
		_node.ExternalMergeID = &value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(subvideotask.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = &value
	}
	if value, ok := _c.mutation.ThumbnailURL(); ok {
		_spec.SetField(subvideotask.FieldThumbnailURL, field.TypeString, value)
		_node.ThumbnailURL = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(subvideotask.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(subvideotask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(subvideotask.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subvideotask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subvideotask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subvideotask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subvideotask.TaskTable,
			Columns: []string{subvideotask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScriptContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   subvideotask.ScriptContentTable,
			Columns: []string{subvideotask.ScriptContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubVideoTaskCreateBulk is the builder for creating many SubVideoTask entities in bulk.
type SubVideoTaskCreateBulk struct {
	config
	err      error
	builders []*SubVideoTaskCreate
}

// Save creates the SubVideoTask entities in the database.
func (_c *SubVideoTaskCreateBulk) Save(ctx context.Context) ([]*SubVideoTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubVideoTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubVideoTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubVideoTaskCreateBulk) SaveX(ctx context.Context) []*SubVideoTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubVideoTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubVideoTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
