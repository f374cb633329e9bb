// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/task"
)

// MediaItemCreate is the builder for creating a MediaItem entity.
type MediaItemCreate struct {
	config
	mutation *MediaItemMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *MediaItemCreate) SetTaskID(v string) *MediaItemCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetOriginalURL sets the "original_url" field.
func (_c *MediaItemCreate) SetOriginalURL(v string) *MediaItemCreate {
	_c.mutation.SetOriginalURL(v)
	return _c
}

// SetLocalPath sets the "local_path" field.
func (_c *MediaItemCreate) SetLocalPath(v string) *MediaItemCreate {
	_c.mutation.SetLocalPath(v)
	return _c
}

// SetRemoteURL sets the "remote_url" field.
func (_c *MediaItemCreate) SetRemoteURL(v string) *MediaItemCreate {
	_c.mutation.SetRemoteURL(v)
	return _c
}

// SetMediaType sets the "media_type" field.
func (_c *MediaItemCreate) SetMediaType(v mediaitem.MediaType) *MediaItemCreate {
	_c.mutation.SetMediaType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *MediaItemCreate) SetFileSize(v int64) *MediaItemCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *MediaItemCreate) SetMimeType(v string) *MediaItemCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *MediaItemCreate) SetResolution(v string) *MediaItemCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableResolution(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *MediaItemCreate) SetDurationMs(v int) *MediaItemCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableDurationMs(v *int) *MediaItemCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaItemCreate) SetCreatedAt(v time.Time) *MediaItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableCreatedAt(v *time.Time) *MediaItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MediaItemCreate) SetID(v string) *MediaItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *MediaItemCreate) SetTask(v *Task) *MediaItemCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the MediaItemMutation object of the builder.
func (_c *MediaItemCreate) Mutation() *MediaItemMutation {
	return _c.mutation
}

// Save creates the MediaItem in the database.
func (_c *MediaItemCreate) Save(ctx context.Context) (*MediaItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaItemCreate) SaveX(ctx context.Context) *MediaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mediaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaItemCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "MediaItem.task_id"`)}
	}
	if _, ok := _c.mutation.OriginalURL(); !ok {
		return &ValidationError{Name: "original_url", err: errors.New(`ent: missing required field "MediaItem.original_url"`)}
	}
	if _, ok := _c.mutation.LocalPath(); !ok {
		return &ValidationError{Name: "local_path", err: errors.New(`ent: missing required field "MediaItem.local_path"`)}
	}
	if _, ok := _c.mutation.RemoteURL(); !ok {
		return &ValidationError{Name: "remote_url", err: errors.New(`ent: missing required field "MediaItem.remote_url"`)}
	}
	if _, ok := _c.mutation.MediaType(); !ok {
		return &ValidationError{Name: "media_type", err: errors.New(`ent: missing required field "MediaItem.media_type"`)}
	}
	if v, ok := _c.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "MediaItem.file_size"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "MediaItem.mime_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaItem.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "MediaItem.task"`)}
	}
	return nil
}

func (_c *MediaItemCreate) sqlSave(ctx context.Context) (*MediaItem, error) {
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
			return nil, fmt.Errorf("unexpected MediaItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MediaItemCreate) createSpec() (*MediaItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediaitem.Table, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalURL(); ok {
		_spec.SetField(mediaitem.FieldOriginalURL, field.TypeString, value)
		_node.OriginalURL = value
	}
	if value, ok := _c.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
		_node.LocalPath = value
	}
	if value, ok := _c.mutation.RemoteURL(); ok {
		_spec.SetField(mediaitem.FieldRemoteURL, field.TypeString, value)
		_node.RemoteURL = value
	}
	if value, ok := _c.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
		_node.MediaType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(mediaitem.FieldResolution, field.TypeString, value)
		_node.Resolution = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(mediaitem.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mediaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mediaitem.TaskTable,
			Columns: []string{mediaitem.TaskColumn},
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

// MediaItemCreateBulk is the builder for creating many MediaItem entities in bulk.
type MediaItemCreateBulk struct {
	config
	err      error
	builders []*MediaItemCreate
}

// Save creates the MediaItem entities in the database.
func (_c *MediaItemCreateBulk) Save(ctx context.Context) ([]*MediaItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediaItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaItemMutation)
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
func (_c *MediaItemCreateBulk) SaveX(ctx context.Context) []*MediaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
