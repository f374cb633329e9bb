// Code generated by ent, DO NOT EDIT.

package subvideotask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldTaskID, v))
}

// VariantIndex applies equality check predicate on the "variant_index" field. It's identical to VariantIndexEQ.
func VariantIndex(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldVariantIndex, v))
}

// ScriptStyle applies equality check predicate on the "script_style" field. It's identical to ScriptStyleEQ.
func ScriptStyle(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldScriptStyle, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldProgress, v))
}

// ScriptID applies equality check predicate on the "script_id" field. It's identical to ScriptIDEQ.
func ScriptID(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldScriptID, v))
}

// ExternalMergeID applies equality check predicate on the "external_merge_id" field. It's identical to ExternalMergeIDEQ.
func ExternalMergeID(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldExternalMergeID, v))
}

// VideoURL applies equality check predicate on the "video_url" field. It's identical to VideoURLEQ.
func VideoURL(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldVideoURL, v))
}

// ThumbnailURL applies equality check predicate on the "thumbnail_url" field. It's identical to ThumbnailURLEQ.
func ThumbnailURL(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldThumbnailURL, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldErrorMessage, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldSubmittedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldTaskID, v))
}

// VariantIndexEQ applies the EQ predicate on the "variant_index" field.
func VariantIndexEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldVariantIndex, v))
}

// VariantIndexNEQ applies the NEQ predicate on the "variant_index" field.
func VariantIndexNEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldVariantIndex, v))
}

// VariantIndexIn applies the In predicate on the "variant_index" field.
func VariantIndexIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldVariantIndex, vs...))
}

// VariantIndexNotIn applies the NotIn predicate on the "variant_index" field.
func VariantIndexNotIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldVariantIndex, vs...))
}

// VariantIndexGT applies the GT predicate on the "variant_index" field.
func VariantIndexGT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldVariantIndex, v))
}

// VariantIndexGTE applies the GTE predicate on the "variant_index" field.
func VariantIndexGTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldVariantIndex, v))
}

// VariantIndexLT applies the LT predicate on the "variant_index" field.
func VariantIndexLT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldVariantIndex, v))
}

// VariantIndexLTE applies the LTE predicate on the "variant_index" field.
func VariantIndexLTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldVariantIndex, v))
}

// ScriptStyleEQ applies the EQ predicate on the "script_style" field.
func ScriptStyleEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldScriptStyle, v))
}

// ScriptStyleNEQ applies the NEQ predicate on the "script_style" field.
func ScriptStyleNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldScriptStyle, v))
}

// ScriptStyleIn applies the In predicate on the "script_style" field.
func ScriptStyleIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldScriptStyle, vs...))
}

// ScriptStyleNotIn applies the NotIn predicate on the "script_style" field.
func ScriptStyleNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldScriptStyle, vs...))
}

// ScriptStyleGT applies the GT predicate on the "script_style" field.
func ScriptStyleGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldScriptStyle, v))
}

// ScriptStyleGTE applies the GTE predicate on the "script_style" field.
func ScriptStyleGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldScriptStyle, v))
}

// ScriptStyleLT applies the LT predicate on the "script_style" field.
func ScriptStyleLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldScriptStyle, v))
}

// ScriptStyleLTE applies the LTE predicate on the "script_style" field.
func ScriptStyleLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldScriptStyle, v))
}

// ScriptStyleContains applies the Contains predicate on the "script_style" field.
func ScriptStyleContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldScriptStyle, v))
}

// ScriptStyleHasPrefix applies the HasPrefix predicate on the "script_style" field.
func ScriptStyleHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldScriptStyle, v))
}

// ScriptStyleHasSuffix applies the HasSuffix predicate on the "script_style" field.
func ScriptStyleHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldScriptStyle, v))
}

// ScriptStyleEqualFold applies the EqualFold predicate on the "script_style" field.
func ScriptStyleEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldScriptStyle, v))
}

// ScriptStyleContainsFold applies the ContainsFold predicate on the "script_style" field.
func ScriptStyleContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldScriptStyle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldProgress, v))
}

// ScriptIDEQ applies the EQ predicate on the "script_id" field.
func ScriptIDEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldScriptID, v))
}

// ScriptIDNEQ applies the NEQ predicate on the "script_id" field.
func ScriptIDNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldScriptID, v))
}

// ScriptIDIn applies the In predicate on the "script_id" field.
func ScriptIDIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldScriptID, vs...))
}

// ScriptIDNotIn applies the NotIn predicate on the "script_id" field.
func ScriptIDNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldScriptID, vs...))
}

// ScriptIDGT applies the GT predicate on the "script_id" field.
func ScriptIDGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldScriptID, v))
}

// ScriptIDGTE applies the GTE predicate on the "script_id" field.
func ScriptIDGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldScriptID, v))
}

// ScriptIDLT applies the LT predicate on the "script_id" field.
func ScriptIDLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldScriptID, v))
}

// ScriptIDLTE applies the LTE predicate on the "script_id" field.
func ScriptIDLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldScriptID, v))
}

// ScriptIDContains applies the Contains predicate on the "script_id" field.
func ScriptIDContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldScriptID, v))
}

// ScriptIDHasPrefix applies the HasPrefix predicate on the "script_id" field.
func ScriptIDHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldScriptID, v))
}

// ScriptIDHasSuffix applies the HasSuffix predicate on the "script_id" field.
func ScriptIDHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldScriptID, v))
}

// ScriptIDIsNil applies the IsNil predicate on the "script_id" field.
func ScriptIDIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldScriptID))
}

// ScriptIDNotNil applies the NotNil predicate on the "script_id" field.
func ScriptIDNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldScriptID))
}

// ScriptIDEqualFold applies the EqualFold predicate on the "script_id" field.
func ScriptIDEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldScriptID, v))
}

// ScriptIDContainsFold applies the ContainsFold predicate on the "script_id" field.
func ScriptIDContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldScriptID, v))
}

// ScriptPayloadIsNil applies the IsNil predicate on the "script_payload" field.
func ScriptPayloadIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldScriptPayload))
}

// ScriptPayloadNotNil applies the NotNil predicate on the "script_payload" field.
func ScriptPayloadNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldScriptPayload))
}

// ExternalMergeIDEQ applies the EQ predicate on the "external_merge_id" field.
func ExternalMergeIDEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldExternalMergeID, v))
}

// ExternalMergeIDNEQ applies the NEQ predicate on the "external_merge_id" field.
func ExternalMergeIDNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldExternalMergeID, v))
}

// ExternalMergeIDIn applies the In predicate on the "external_merge_id" field.
func ExternalMergeIDIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldExternalMergeID, vs...))
}

// ExternalMergeIDNotIn applies the NotIn predicate on the "external_merge_id" field.
func ExternalMergeIDNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldExternalMergeID, vs...))
}

// ExternalMergeIDGT applies the GT predicate on the "external_merge_id" field.
func ExternalMergeIDGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldExternalMergeID, v))
}

// ExternalMergeIDGTE applies the GTE predicate on the "external_merge_id" field.
func ExternalMergeIDGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldExternalMergeID, v))
}

// ExternalMergeIDLT applies the LT predicate on the "external_merge_id" field.
func ExternalMergeIDLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldExternalMergeID, v))
}

// ExternalMergeIDLTE applies the LTE predicate on the "external_merge_id" field.
func ExternalMergeIDLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldExternalMergeID, v))
}

// ExternalMergeIDContains applies the Contains predicate on the "external_merge_id" field.
func ExternalMergeIDContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldExternalMergeID, v))
}

// ExternalMergeIDHasPrefix applies the HasPrefix predicate on the "external_merge_id" field.
func ExternalMergeIDHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldExternalMergeID, v))
}

// ExternalMergeIDHasSuffix applies the HasSuffix predicate on the "external_merge_id" field.
func ExternalMergeIDHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldExternalMergeID, v))
}

// ExternalMergeIDIsNil applies the IsNil predicate on the "external_merge_id" field.
func ExternalMergeIDIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldExternalMergeID))
}

// ExternalMergeIDNotNil applies the NotNil predicate on the "external_merge_id" field.
func ExternalMergeIDNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldExternalMergeID))
}

// ExternalMergeIDEqualFold applies the EqualFold predicate on the "external_merge_id" field.
func ExternalMergeIDEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldExternalMergeID, v))
}

// ExternalMergeIDContainsFold applies the ContainsFold predicate on the "external_merge_id" field.
func ExternalMergeIDContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldExternalMergeID, v))
}

// VideoURLEQ applies the EQ predicate on the "video_url" field.
func VideoURLEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldVideoURL, v))
}

// VideoURLNEQ applies the NEQ predicate on the "video_url" field.
func VideoURLNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldVideoURL, v))
}

// VideoURLIn applies the In predicate on the "video_url" field.
func VideoURLIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldVideoURL, vs...))
}

// VideoURLNotIn applies the NotIn predicate on the "video_url" field.
func VideoURLNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldVideoURL, vs...))
}

// VideoURLGT applies the GT predicate on the "video_url" field.
func VideoURLGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldVideoURL, v))
}

// VideoURLGTE applies the GTE predicate on the "video_url" field.
func VideoURLGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldVideoURL, v))
}

// VideoURLLT applies the LT predicate on the "video_url" field.
func VideoURLLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldVideoURL, v))
}

// VideoURLLTE applies the LTE predicate on the "video_url" field.
func VideoURLLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldVideoURL, v))
}

// VideoURLContains applies the Contains predicate on the "video_url" field.
func VideoURLContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldVideoURL, v))
}

// VideoURLHasPrefix applies the HasPrefix predicate on the "video_url" field.
func VideoURLHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldVideoURL, v))
}

// VideoURLHasSuffix applies the HasSuffix predicate on the "video_url" field.
func VideoURLHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldVideoURL, v))
}

// VideoURLIsNil applies the IsNil predicate on the "video_url" field.
func VideoURLIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldVideoURL))
}

// VideoURLNotNil applies the NotNil predicate on the "video_url" field.
func VideoURLNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldVideoURL))
}

// VideoURLEqualFold applies the EqualFold predicate on the "video_url" field.
func VideoURLEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldVideoURL, v))
}

// VideoURLContainsFold applies the ContainsFold predicate on the "video_url" field.
func VideoURLContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldVideoURL, v))
}

// ThumbnailURLEQ applies the EQ predicate on the "thumbnail_url" field.
func ThumbnailURLEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldThumbnailURL, v))
}

// ThumbnailURLNEQ applies the NEQ predicate on the "thumbnail_url" field.
func ThumbnailURLNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldThumbnailURL, v))
}

// ThumbnailURLIn applies the In predicate on the "thumbnail_url" field.
func ThumbnailURLIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldThumbnailURL, vs...))
}

// ThumbnailURLNotIn applies the NotIn predicate on the "thumbnail_url" field.
func ThumbnailURLNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldThumbnailURL, vs...))
}

// ThumbnailURLGT applies the GT predicate on the "thumbnail_url" field.
func ThumbnailURLGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldThumbnailURL, v))
}

// ThumbnailURLGTE applies the GTE predicate on the "thumbnail_url" field.
func ThumbnailURLGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldThumbnailURL, v))
}

// ThumbnailURLLT applies the LT predicate on the "thumbnail_url" field.
func ThumbnailURLLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldThumbnailURL, v))
}

// ThumbnailURLLTE applies the LTE predicate on the "thumbnail_url" field.
func ThumbnailURLLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldThumbnailURL, v))
}

// ThumbnailURLContains applies the Contains predicate on the "thumbnail_url" field.
func ThumbnailURLContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldThumbnailURL, v))
}

// ThumbnailURLHasPrefix applies the HasPrefix predicate on the "thumbnail_url" field.
func ThumbnailURLHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldThumbnailURL, v))
}

// ThumbnailURLHasSuffix applies the HasSuffix predicate on the "thumbnail_url" field.
func ThumbnailURLHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldThumbnailURL, v))
}

// ThumbnailURLIsNil applies the IsNil predicate on the "thumbnail_url" field.
func ThumbnailURLIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldThumbnailURL))
}

// ThumbnailURLNotNil applies the NotNil predicate on the "thumbnail_url" field.
func ThumbnailURLNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldThumbnailURL))
}

// ThumbnailURLEqualFold applies the EqualFold predicate on the "thumbnail_url" field.
func ThumbnailURLEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldThumbnailURL, v))
}

// ThumbnailURLContainsFold applies the ContainsFold predicate on the "thumbnail_url" field.
func ThumbnailURLContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldThumbnailURL, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldDurationMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldSubmittedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.SubVideoTask {
	return predicate.SubVideoTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.SubVideoTask {
	return predicate.SubVideoTask(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScriptContent applies the HasEdge predicate on the "script_content" edge.
func HasScriptContent() predicate.SubVideoTask {
	return predicate.SubVideoTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ScriptContentTable, ScriptContentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScriptContentWith applies the HasEdge predicate on the "script_content" edge with a given conditions (other predicates).
func HasScriptContentWith(preds ...predicate.ScriptContent) predicate.SubVideoTask {
	return predicate.SubVideoTask(func(s *sql.Selector) {
		step := newScriptContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubVideoTask) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubVideoTask) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubVideoTask) predicate.SubVideoTask {
	return predicate.SubVideoTask(sql.NotPredicates(p))
}
