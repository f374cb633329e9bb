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
)

// ScriptContentCreate is the builder for creating a ScriptContent entity.
type ScriptContentCreate struct {
	config
	mutation *ScriptContentMutation
	hooks    []Hook
}

// SetSubTaskID sets the "sub_task_id" field.
func (_c *ScriptContentCreate) SetSubTaskID(v string) *ScriptContentCreate {
	_c.mutation.SetSubTaskID(v)
	return _c
}

// SetStyle sets the "style" field.
func (_c *ScriptContentCreate) SetStyle(v string) *ScriptContentCreate {
	_c.mutation.SetStyle(v)
	return _c
}

// SetTitles sets the "titles" field.
func (_c *ScriptContentCreate) SetTitles(v []string) *ScriptContentCreate {
	_c.mutation.SetTitles(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *ScriptContentCreate) SetWordCount(v int) *ScriptContentCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetSceneCount sets the "scene_count" field.
func (_c *ScriptContentCreate) SetSceneCount(v int) *ScriptContentCreate {
	_c.mutation.SetSceneCount(v)
	return _c
}

// SetEstimatedDurationS sets the "estimated_duration_s" field.
func (_c *ScriptContentCreate) SetEstimatedDurationS(v int) *ScriptContentCreate {
	_c.mutation.SetEstimatedDurationS(v)
	return _c
}

// SetScenes sets the "scenes" field.
func (_c *ScriptContentCreate) SetScenes(v []map[string]interface{}) *ScriptContentCreate {
	_c.mutation.SetScenes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScriptContentCreate) SetCreatedAt(v time.Time) *ScriptContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableCreatedAt(v *time.Time) *ScriptContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScriptContentCreate) SetID(v string) *ScriptContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSubTask sets the "sub_task" edge to the SubVideoTask entity.
func (_c *ScriptContentCreate) SetSubTask(v *SubVideoTask) *ScriptContentCreate {
	return _c.SetSubTaskID(v.ID)
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_c *ScriptContentCreate) Mutation() *ScriptContentMutation {
	return _c.mutation
}

// Save creates the ScriptContent in the database.
func (_c *ScriptContentCreate) Save(ctx context.Context) (*ScriptContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScriptContentCreate) SaveX(ctx context.Context) *ScriptContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScriptContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScriptContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScriptContentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scriptcontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScriptContentCreate) check() error {
	if _, ok := _c.mutation.SubTaskID(); !ok {
		return &ValidationError{Name: "sub_task_id", err: errors.New(`ent: missing required field "ScriptContent.sub_task_id"`)}
	}
	if _, ok := _c.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "ScriptContent.style"`)}
	}
	if _, ok := _c.mutation.Titles(); !ok {
		return &ValidationError{Name: "titles", err: errors.New(`ent: missing required field "ScriptContent.titles"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "ScriptContent.word_count"`)}
	}
	if _, ok := _c.mutation.SceneCount(); !ok {
		return &ValidationError{Name: "scene_count", err: errors.New(`ent: missing required field "ScriptContent.scene_count"`)}
	}
	if _, ok := _c.mutation.EstimatedDurationS(); !ok {
		return &ValidationError{Name: "estimated_duration_s", err: errors.New(`ent: missing required field "ScriptContent.estimated_duration_s"`)}
	}
	if _, ok := _c.mutation.Scenes(); !ok {
		return &ValidationError{Name: "scenes", err: errors.New(`ent: missing required field "ScriptContent.scenes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScriptContent.created_at"`)}
	}
	if len(_c.mutation.SubTaskIDs()) == 0 {
		return &ValidationError{Name: "sub_task", err: errors.New(`ent: missing required edge "ScriptContent.sub_task"`)}
	}
	return nil
}

func (_c *ScriptContentCreate) sqlSave(ctx context.Context) (*ScriptContent, error) {
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
			return nil, fmt.Errorf("unexpected ScriptContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScriptContentCreate) createSpec() (*ScriptContent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScriptContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scriptcontent.Table, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := _c.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
		_node.Titles = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.SceneCount(); ok {
		_spec.SetField(scriptcontent.FieldSceneCount, field.TypeInt, value)
		_node.SceneCount = value
	}
	if value, ok := _c.mutation.EstimatedDurationS(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDurationS, field.TypeInt, value)
		_node.EstimatedDurationS = value
	}
	if value, ok := _c.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
		_node.Scenes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scriptcontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubTaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   scriptcontent.SubTaskTable,
			Columns: []string{scriptcontent.SubTaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubTaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScriptContentCreateBulk is the builder for creating many ScriptContent entities in bulk.
type ScriptContentCreateBulk struct {
	config
	err      error
	builders []*ScriptContentCreate
}

// Save creates the ScriptContent entities in the database.
func (_c *ScriptContentCreateBulk) Save(ctx context.Context) ([]*ScriptContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScriptContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScriptContentMutation)
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
func (_c *ScriptContentCreateBulk) SaveX(ctx context.Context) []*ScriptContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScriptContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScriptContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
