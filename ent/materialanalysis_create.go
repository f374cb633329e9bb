// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/task"
)

// MaterialAnalysisCreate is the builder for creating a MaterialAnalysis entity.
type MaterialAnalysisCreate struct {
	config
	mutation *MaterialAnalysisMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *MaterialAnalysisCreate) SetTaskID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetMediaItemID sets the "media_item_id" field.
func (_c *MaterialAnalysisCreate) SetMediaItemID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetMediaItemID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MaterialAnalysisCreate) SetDescription(v string) *MaterialAnalysisCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *MaterialAnalysisCreate) SetTags(v []string) *MaterialAnalysisCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *MaterialAnalysisCreate) SetTheme(v string) *MaterialAnalysisCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableTheme(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MaterialAnalysisCreate) SetStatus(v materialanalysis.Status) *MaterialAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *MaterialAnalysisCreate) SetQualityScore(v float64) *MaterialAnalysisCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableQualityScore(v *float64) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaterialAnalysisCreate) SetCreatedAt(v time.Time) *MaterialAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableCreatedAt(v *time.Time) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MaterialAnalysisCreate) SetID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *MaterialAnalysisCreate) SetTask(v *Task) *MaterialAnalysisCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_c *MaterialAnalysisCreate) Mutation() *MaterialAnalysisMutation {
	return _c.mutation
}

// Save creates the MaterialAnalysis in the database.
func (_c *MaterialAnalysisCreate) Save(ctx context.Context) (*MaterialAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialAnalysisCreate) SaveX(ctx context.Context) *MaterialAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := materialanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialAnalysisCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "MaterialAnalysis.task_id"`)}
	}
	if _, ok := _c.mutation.MediaItemID(); !ok {
		return &ValidationError{Name: "media_item_id", err: errors.New(`ent: missing required field "MaterialAnalysis.media_item_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "MaterialAnalysis.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MaterialAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaterialAnalysis.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "MaterialAnalysis.task"`)}
	}
	return nil
}

func (_c *MaterialAnalysisCreate) sqlSave(ctx context.Context) (*MaterialAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected MaterialAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MaterialAnalysisCreate) createSpec() (*MaterialAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &MaterialAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(materialanalysis.Table, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MediaItemID(); ok {
		_spec.SetField(materialanalysis.FieldMediaItemID, field.TypeString, value)
		_node.MediaItemID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(materialanalysis.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(materialanalysis.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(materialanalysis.FieldTheme, field.TypeString, value)
		_node.Theme = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(materialanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialanalysis.TaskTable,
			Columns: []string{materialanalysis.TaskColumn},
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
	return _node, _spec
}

// MaterialAnalysisCreateBulk is the builder for creating many MaterialAnalysis entities in bulk.
type MaterialAnalysisCreateBulk struct {
	config
	err      error
	builders []*MaterialAnalysisCreate
}

// Save creates the MaterialAnalysis entities in the database.
func (_c *MaterialAnalysisCreateBulk) Save(ctx context.Context) ([]*MaterialAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaterialAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialAnalysisMutation)
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
func (_c *MaterialAnalysisCreateBulk) SaveX(ctx context.Context) []*MaterialAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
