// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMode sets the "mode" field.
func (_u *TaskUpdate) SetMode(v task.Mode) *TaskUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMode(v *task.Mode) *TaskUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScriptStyleDefault sets the "script_style_default" field.
func (_u *TaskUpdate) SetScriptStyleDefault(v string) *TaskUpdate {
	_u.mutation.SetScriptStyleDefault(v)
	return _u
}

// SetNillableScriptStyleDefault sets the "script_style_default" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScriptStyleDefault(v *string) *TaskUpdate {
	if v != nil {
		_u.SetScriptStyleDefault(*v)
	}
	return _u
}

// SetVariantCount sets the "variant_count" field.
func (_u *TaskUpdate) SetVariantCount(v int) *TaskUpdate {
	_u.mutation.ResetVariantCount()
	_u.mutation.SetVariantCount(v)
	return _u
}

// SetNillableVariantCount sets the "variant_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVariantCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetVariantCount(*v)
	}
	return _u
}

// AddVariantCount adds value to the "variant_count" field.
func (_u *TaskUpdate) AddVariantCount(v int) *TaskUpdate {
	_u.mutation.AddVariantCount(v)
	return _u
}

// SetMediaUrls sets the "media_urls" field.
func (_u *TaskUpdate) SetMediaUrls(v []string) *TaskUpdate {
	_u.mutation.SetMediaUrls(v)
	return _u
}

// AppendMediaUrls appends value to the "media_urls" field.
func (_u *TaskUpdate) AppendMediaUrls(v []string) *TaskUpdate {
	_u.mutation.AppendMediaUrls(v)
	return _u
}

// SetMediaMeta sets the "media_meta" field.
func (_u *TaskUpdate) SetMediaMeta(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetMediaMeta(v)
	return _u
}

// ClearMediaMeta clears the value of the "media_meta" field.
func (_u *TaskUpdate) ClearMediaMeta() *TaskUpdate {
	_u.mutation.ClearMediaMeta()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdate) SetProgress(v int) *TaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgress(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdate) AddProgress(v int) *TaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdate) SetCurrentStage(v task.CurrentStage) *TaskUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentStage(v *task.CurrentStage) *TaskUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TaskUpdate) ClearCurrentStage() *TaskUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStageMessage sets the "stage_message" field.
func (_u *TaskUpdate) SetStageMessage(v string) *TaskUpdate {
	_u.mutation.SetStageMessage(v)
	return _u
}

// SetNillableStageMessage sets the "stage_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStageMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStageMessage(*v)
	}
	return _u
}

// ClearStageMessage clears the value of the "stage_message" field.
func (_u *TaskUpdate) ClearStageMessage() *TaskUpdate {
	_u.mutation.ClearStageMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *TaskUpdate) SetVideoURL(v string) *TaskUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVideoURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *TaskUpdate) ClearVideoURL() *TaskUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *TaskUpdate) SetThumbnailURL(v string) *TaskUpdate {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableThumbnailURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *TaskUpdate) ClearThumbnailURL() *TaskUpdate {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetVideoDurationMs sets the "video_duration_ms" field.
func (_u *TaskUpdate) SetVideoDurationMs(v int) *TaskUpdate {
	_u.mutation.ResetVideoDurationMs()
	_u.mutation.SetVideoDurationMs(v)
	return _u
}

// SetNillableVideoDurationMs sets the "video_duration_ms" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVideoDurationMs(v *int) *TaskUpdate {
	if v != nil {
		_u.SetVideoDurationMs(*v)
	}
	return _u
}

// AddVideoDurationMs adds value to the "video_duration_ms" field.
func (_u *TaskUpdate) AddVideoDurationMs(v int) *TaskUpdate {
	_u.mutation.AddVideoDurationMs(v)
	return _u
}

// ClearVideoDurationMs clears the value of the "video_duration_ms" field.
func (_u *TaskUpdate) ClearVideoDurationMs() *TaskUpdate {
	_u.mutation.ClearVideoDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *TaskUpdate) SetWorkspaceDir(v string) *TaskUpdate {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkspaceDir(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdate) SetPodID(v string) *TaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePodID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdate) ClearPodID() *TaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *TaskUpdate) SetLeaseExpiresAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLeaseExpiresAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *TaskUpdate) ClearLeaseExpiresAt() *TaskUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdate) SetAttempts(v int) *TaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdate) AddAttempts(v int) *TaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUpdatedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdate) SetDeletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdate) ClearDeletedAt() *TaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (_u *TaskUpdate) AddSubTaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdate) AddSubTasks(v ...*SubVideoTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by IDs.
func (_u *TaskUpdate) AddMediaItemIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddMediaItemIDs(ids...)
	return _u
}

// AddMediaItems adds the "media_items" edges to the MediaItem entity.
func (_u *TaskUpdate) AddMediaItems(v ...*MediaItem) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaItemIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by IDs.
func (_u *TaskUpdate) AddAnalysisIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdate) AddAnalyses(v ...*MaterialAnalysis) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdate) ClearSubTasks() *TaskUpdate {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubVideoTask entities by IDs.
func (_u *TaskUpdate) RemoveSubTaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubVideoTask entities.
func (_u *TaskUpdate) RemoveSubTasks(v ...*SubVideoTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// ClearMediaItems clears all "media_items" edges to the MediaItem entity.
func (_u *TaskUpdate) ClearMediaItems() *TaskUpdate {
	_u.mutation.ClearMediaItems()
	return _u
}

// RemoveMediaItemIDs removes the "media_items" edge to MediaItem entities by IDs.
func (_u *TaskUpdate) RemoveMediaItemIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveMediaItemIDs(ids...)
	return _u
}

// RemoveMediaItems removes "media_items" edges to MediaItem entities.
func (_u *TaskUpdate) RemoveMediaItems(v ...*MediaItem) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaItemIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdate) ClearAnalyses() *TaskUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to MaterialAnalysis entities by IDs.
func (_u *TaskUpdate) RemoveAnalysisIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to MaterialAnalysis entities.
func (_u *TaskUpdate) RemoveAnalyses(v ...*MaterialAnalysis) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := task.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Task.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := task.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Task.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(task.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScriptStyleDefault(); ok {
		_spec.SetField(task.FieldScriptStyleDefault, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantCount(); ok {
		_spec.SetField(task.FieldVariantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariantCount(); ok {
		_spec.AddField(task.FieldVariantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaUrls(); ok {
		_spec.SetField(task.FieldMediaUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMediaUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldMediaUrls, value)
		})
	}
	if value, ok := _u.mutation.MediaMeta(); ok {
		_spec.SetField(task.FieldMediaMeta, field.TypeJSON, value)
	}
	if _u.mutation.MediaMetaCleared() {
		_spec.ClearField(task.FieldMediaMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeEnum, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(task.FieldCurrentStage, field.TypeEnum)
	}
	if value, ok := _u.mutation.StageMessage(); ok {
		_spec.SetField(task.FieldStageMessage, field.TypeString, value)
	}
	if _u.mutation.StageMessageCleared() {
		_spec.ClearField(task.FieldStageMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(task.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(task.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(task.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(task.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoDurationMs(); ok {
		_spec.SetField(task.FieldVideoDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoDurationMs(); ok {
		_spec.AddField(task.FieldVideoDurationMs, field.TypeInt, value)
	}
	if _u.mutation.VideoDurationMsCleared() {
		_spec.ClearField(task.FieldVideoDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(task.FieldWorkspaceDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(task.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(task.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaItemsIDs(); len(nodes) > 0 && !_u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMode sets the "mode" field.
func (_u *TaskUpdateOne) SetMode(v task.Mode) *TaskUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMode(v *task.Mode) *TaskUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScriptStyleDefault sets the "script_style_default" field.
func (_u *TaskUpdateOne) SetScriptStyleDefault(v string) *TaskUpdateOne {
	_u.mutation.SetScriptStyleDefault(v)
	return _u
}

// SetNillableScriptStyleDefault sets the "script_style_default" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScriptStyleDefault(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetScriptStyleDefault(*v)
	}
	return _u
}

// SetVariantCount sets the "variant_count" field.
func (_u *TaskUpdateOne) SetVariantCount(v int) *TaskUpdateOne {
	_u.mutation.ResetVariantCount()
	_u.mutation.SetVariantCount(v)
	return _u
}

// SetNillableVariantCount sets the "variant_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVariantCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetVariantCount(*v)
	}
	return _u
}

// AddVariantCount adds value to the "variant_count" field.
func (_u *TaskUpdateOne) AddVariantCount(v int) *TaskUpdateOne {
	_u.mutation.AddVariantCount(v)
	return _u
}

// SetMediaUrls sets the "media_urls" field.
func (_u *TaskUpdateOne) SetMediaUrls(v []string) *TaskUpdateOne {
	_u.mutation.SetMediaUrls(v)
	return _u
}

// AppendMediaUrls appends value to the "media_urls" field.
func (_u *TaskUpdateOne) AppendMediaUrls(v []string) *TaskUpdateOne {
	_u.mutation.AppendMediaUrls(v)
	return _u
}

// SetMediaMeta sets the "media_meta" field.
func (_u *TaskUpdateOne) SetMediaMeta(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetMediaMeta(v)
	return _u
}

// ClearMediaMeta clears the value of the "media_meta" field.
func (_u *TaskUpdateOne) ClearMediaMeta() *TaskUpdateOne {
	_u.mutation.ClearMediaMeta()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdateOne) SetProgress(v int) *TaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgress(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdateOne) AddProgress(v int) *TaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdateOne) SetCurrentStage(v task.CurrentStage) *TaskUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentStage(v *task.CurrentStage) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TaskUpdateOne) ClearCurrentStage() *TaskUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetStageMessage sets the "stage_message" field.
func (_u *TaskUpdateOne) SetStageMessage(v string) *TaskUpdateOne {
	_u.mutation.SetStageMessage(v)
	return _u
}

// SetNillableStageMessage sets the "stage_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStageMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStageMessage(*v)
	}
	return _u
}

// ClearStageMessage clears the value of the "stage_message" field.
func (_u *TaskUpdateOne) ClearStageMessage() *TaskUpdateOne {
	_u.mutation.ClearStageMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *TaskUpdateOne) SetVideoURL(v string) *TaskUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVideoURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *TaskUpdateOne) ClearVideoURL() *TaskUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *TaskUpdateOne) SetThumbnailURL(v string) *TaskUpdateOne {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableThumbnailURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *TaskUpdateOne) ClearThumbnailURL() *TaskUpdateOne {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetVideoDurationMs sets the "video_duration_ms" field.
func (_u *TaskUpdateOne) SetVideoDurationMs(v int) *TaskUpdateOne {
	_u.mutation.ResetVideoDurationMs()
	_u.mutation.SetVideoDurationMs(v)
	return _u
}

// SetNillableVideoDurationMs sets the "video_duration_ms" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVideoDurationMs(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetVideoDurationMs(*v)
	}
	return _u
}

// AddVideoDurationMs adds value to the "video_duration_ms" field.
func (_u *TaskUpdateOne) AddVideoDurationMs(v int) *TaskUpdateOne {
	_u.mutation.AddVideoDurationMs(v)
	return _u
}

// ClearVideoDurationMs clears the value of the "video_duration_ms" field.
func (_u *TaskUpdateOne) ClearVideoDurationMs() *TaskUpdateOne {
	_u.mutation.ClearVideoDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *TaskUpdateOne) SetWorkspaceDir(v string) *TaskUpdateOne {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkspaceDir(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdateOne) SetPodID(v string) *TaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePodID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdateOne) ClearPodID() *TaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *TaskUpdateOne) SetLeaseExpiresAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *TaskUpdateOne) ClearLeaseExpiresAt() *TaskUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdateOne) SetAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdateOne) AddAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUpdatedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdateOne) SetDeletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdateOne) ClearDeletedAt() *TaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (_u *TaskUpdateOne) AddSubTaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdateOne) AddSubTasks(v ...*SubVideoTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by IDs.
func (_u *TaskUpdateOne) AddMediaItemIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddMediaItemIDs(ids...)
	return _u
}

// AddMediaItems adds the "media_items" edges to the MediaItem entity.
func (_u *TaskUpdateOne) AddMediaItems(v ...*MediaItem) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaItemIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by IDs.
func (_u *TaskUpdateOne) AddAnalysisIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdateOne) AddAnalyses(v ...*MaterialAnalysis) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdateOne) ClearSubTasks() *TaskUpdateOne {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubVideoTask entities by IDs.
func (_u *TaskUpdateOne) RemoveSubTaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubVideoTask entities.
func (_u *TaskUpdateOne) RemoveSubTasks(v ...*SubVideoTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// ClearMediaItems clears all "media_items" edges to the MediaItem entity.
func (_u *TaskUpdateOne) ClearMediaItems() *TaskUpdateOne {
	_u.mutation.ClearMediaItems()
	return _u
}

// RemoveMediaItemIDs removes the "media_items" edge to MediaItem entities by IDs.
func (_u *TaskUpdateOne) RemoveMediaItemIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveMediaItemIDs(ids...)
	return _u
}

// RemoveMediaItems removes "media_items" edges to MediaItem entities.
func (_u *TaskUpdateOne) RemoveMediaItems(v ...*MediaItem) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaItemIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdateOne) ClearAnalyses() *TaskUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to MaterialAnalysis entities by IDs.
func (_u *TaskUpdateOne) RemoveAnalysisIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to MaterialAnalysis entities.
func (_u *TaskUpdateOne) RemoveAnalyses(v ...*MaterialAnalysis) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := task.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Task.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := task.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Task.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(task.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScriptStyleDefault(); ok {
		_spec.SetField(task.FieldScriptStyleDefault, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantCount(); ok {
		_spec.SetField(task.FieldVariantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVariantCount(); ok {
		_spec.AddField(task.FieldVariantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaUrls(); ok {
		_spec.SetField(task.FieldMediaUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMediaUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldMediaUrls, value)
		})
	}
	if value, ok := _u.mutation.MediaMeta(); ok {
		_spec.SetField(task.FieldMediaMeta, field.TypeJSON, value)
	}
	if _u.mutation.MediaMetaCleared() {
		_spec.ClearField(task.FieldMediaMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeEnum, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(task.FieldCurrentStage, field.TypeEnum)
	}
	if value, ok := _u.mutation.StageMessage(); ok {
		_spec.SetField(task.FieldStageMessage, field.TypeString, value)
	}
	if _u.mutation.StageMessageCleared() {
		_spec.ClearField(task.FieldStageMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(task.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(task.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(task.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(task.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoDurationMs(); ok {
		_spec.SetField(task.FieldVideoDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoDurationMs(); ok {
		_spec.AddField(task.FieldVideoDurationMs, field.TypeInt, value)
	}
	if _u.mutation.VideoDurationMsCleared() {
		_spec.ClearField(task.FieldVideoDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(task.FieldWorkspaceDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(task.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(task.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaItemsIDs(); len(nodes) > 0 && !_u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
