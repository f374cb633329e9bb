// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/predicate"
)

// MediaItemUpdate is the builder for updating MediaItem entities.
type MediaItemUpdate struct {
	config
	hooks    []Hook
	mutation *MediaItemMutation
}

// Where appends a list predicates to the MediaItemUpdate builder.
func (_u *MediaItemUpdate) Where(ps ...predicate.MediaItem) *MediaItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *MediaItemUpdate) SetLocalPath(v string) *MediaItemUpdate {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableLocalPath(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// SetRemoteURL sets the "remote_url" field.
func (_u *MediaItemUpdate) SetRemoteURL(v string) *MediaItemUpdate {
	_u.mutation.SetRemoteURL(v)
	return _u
}

// SetNillableRemoteURL sets the "remote_url" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableRemoteURL(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetRemoteURL(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MediaItemUpdate) SetMediaType(v mediaitem.MediaType) *MediaItemUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableMediaType(v *mediaitem.MediaType) *MediaItemUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *MediaItemUpdate) SetFileSize(v int64) *MediaItemUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableFileSize(v *int64) *MediaItemUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *MediaItemUpdate) AddFileSize(v int64) *MediaItemUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MediaItemUpdate) SetMimeType(v string) *MediaItemUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableMimeType(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *MediaItemUpdate) SetResolution(v string) *MediaItemUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableResolution(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *MediaItemUpdate) ClearResolution() *MediaItemUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *MediaItemUpdate) SetDurationMs(v int) *MediaItemUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableDurationMs(v *int) *MediaItemUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *MediaItemUpdate) AddDurationMs(v int) *MediaItemUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *MediaItemUpdate) ClearDurationMs() *MediaItemUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the MediaItemMutation object of the builder.
func (_u *MediaItemUpdate) Mutation() *MediaItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaItemUpdate) check() error {
	if v, ok := _u.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaItem.task"`)
	}
	return nil
}

func (_u *MediaItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaitem.Table, mediaitem.Columns, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemoteURL(); ok {
		_spec.SetField(mediaitem.FieldRemoteURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(mediaitem.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(mediaitem.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(mediaitem.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(mediaitem.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(mediaitem.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaItemUpdateOne is the builder for updating a single MediaItem entity.
type MediaItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaItemMutation
}

// SetLocalPath sets the "local_path" field.
func (_u *MediaItemUpdateOne) SetLocalPath(v string) *MediaItemUpdateOne {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableLocalPath(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// SetRemoteURL sets the "remote_url" field.
func (_u *MediaItemUpdateOne) SetRemoteURL(v string) *MediaItemUpdateOne {
	_u.mutation.SetRemoteURL(v)
	return _u
}

// SetNillableRemoteURL sets the "remote_url" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableRemoteURL(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetRemoteURL(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MediaItemUpdateOne) SetMediaType(v mediaitem.MediaType) *MediaItemUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableMediaType(v *mediaitem.MediaType) *MediaItemUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *MediaItemUpdateOne) SetFileSize(v int64) *MediaItemUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableFileSize(v *int64) *MediaItemUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *MediaItemUpdateOne) AddFileSize(v int64) *MediaItemUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MediaItemUpdateOne) SetMimeType(v string) *MediaItemUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableMimeType(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *MediaItemUpdateOne) SetResolution(v string) *MediaItemUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableResolution(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *MediaItemUpdateOne) ClearResolution() *MediaItemUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *MediaItemUpdateOne) SetDurationMs(v int) *MediaItemUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableDurationMs(v *int) *MediaItemUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *MediaItemUpdateOne) AddDurationMs(v int) *MediaItemUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *MediaItemUpdateOne) ClearDurationMs() *MediaItemUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the MediaItemMutation object of the builder.
func (_u *MediaItemUpdateOne) Mutation() *MediaItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the MediaItemUpdate builder.
func (_u *MediaItemUpdateOne) Where(ps ...predicate.MediaItem) *MediaItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaItemUpdateOne) Select(field string, fields ...string) *MediaItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediaItem entity.
func (_u *MediaItemUpdateOne) Save(ctx context.Context) (*MediaItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaItemUpdateOne) SaveX(ctx context.Context) *MediaItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaItemUpdateOne) check() error {
	if v, ok := _u.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaItem.task"`)
	}
	return nil
}

func (_u *MediaItemUpdateOne) sqlSave(ctx context.Context) (_node *MediaItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaitem.Table, mediaitem.Columns, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediaitem.FieldID)
		for _, f := range fields {
			if !mediaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediaitem.FieldID {
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
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemoteURL(); ok {
		_spec.SetField(mediaitem.FieldRemoteURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(mediaitem.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(mediaitem.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(mediaitem.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(mediaitem.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(mediaitem.FieldDurationMs, field.TypeInt)
	}
	_node = &MediaItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
