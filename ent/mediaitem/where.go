// Code generated by ent, DO NOT EDIT.

package mediaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldTaskID, v))
}

// OriginalURL applies equality check predicate on the "original_url" field. It's identical to OriginalURLEQ.
func OriginalURL(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldOriginalURL, v))
}

// LocalPath applies equality check predicate on the "local_path" field. It's identical to LocalPathEQ.
func LocalPath(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldLocalPath, v))
}

// RemoteURL applies equality check predicate on the "remote_url" field. It's identical to RemoteURLEQ.
func RemoteURL(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldRemoteURL, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFileSize, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMimeType, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldResolution, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldTaskID, v))
}

// OriginalURLEQ applies the EQ predicate on the "original_url" field.
func OriginalURLEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldOriginalURL, v))
}

// OriginalURLNEQ applies the NEQ predicate on the "original_url" field.
func OriginalURLNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldOriginalURL, v))
}

// OriginalURLIn applies the In predicate on the "original_url" field.
func OriginalURLIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldOriginalURL, vs...))
}

// OriginalURLNotIn applies the NotIn predicate on the "original_url" field.
func OriginalURLNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldOriginalURL, vs...))
}

// OriginalURLGT applies the GT predicate on the "original_url" field.
func OriginalURLGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldOriginalURL, v))
}

// OriginalURLGTE applies the GTE predicate on the "original_url" field.
func OriginalURLGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldOriginalURL, v))
}

// OriginalURLLT applies the LT predicate on the "original_url" field.
func OriginalURLLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldOriginalURL, v))
}

// OriginalURLLTE applies the LTE predicate on the "original_url" field.
func OriginalURLLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldOriginalURL, v))
}

// OriginalURLContains applies the Contains predicate on the "original_url" field.
func OriginalURLContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldOriginalURL, v))
}

// OriginalURLHasPrefix applies the HasPrefix predicate on the "original_url" field.
func OriginalURLHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldOriginalURL, v))
}

// OriginalURLHasSuffix applies the HasSuffix predicate on the "original_url" field.
func OriginalURLHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldOriginalURL, v))
}

// OriginalURLEqualFold applies the EqualFold predicate on the "original_url" field.
func OriginalURLEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldOriginalURL, v))
}

// OriginalURLContainsFold applies the ContainsFold predicate on the "original_url" field.
func OriginalURLContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldOriginalURL, v))
}

// LocalPathEQ applies the EQ predicate on the "local_path" field.
func LocalPathEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldLocalPath, v))
}

// LocalPathNEQ applies the NEQ predicate on the "local_path" field.
func LocalPathNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldLocalPath, v))
}

// LocalPathIn applies the In predicate on the "local_path" field.
func LocalPathIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldLocalPath, vs...))
}

// LocalPathNotIn applies the NotIn predicate on the "local_path" field.
func LocalPathNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldLocalPath, vs...))
}

// LocalPathGT applies the GT predicate on the "local_path" field.
func LocalPathGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldLocalPath, v))
}

// LocalPathGTE applies the GTE predicate on the "local_path" field.
func LocalPathGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldLocalPath, v))
}

// LocalPathLT applies the LT predicate on the "local_path" field.
func LocalPathLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldLocalPath, v))
}

// LocalPathLTE applies the LTE predicate on the "local_path" field.
func LocalPathLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldLocalPath, v))
}

// LocalPathContains applies the Contains predicate on the "local_path" field.
func LocalPathContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldLocalPath, v))
}

// LocalPathHasPrefix applies the HasPrefix predicate on the "local_path" field.
func LocalPathHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldLocalPath, v))
}

// LocalPathHasSuffix applies the HasSuffix predicate on the "local_path" field.
func LocalPathHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldLocalPath, v))
}

// LocalPathEqualFold applies the EqualFold predicate on the "local_path" field.
func LocalPathEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldLocalPath, v))
}

// LocalPathContainsFold applies the ContainsFold predicate on the "local_path" field.
func LocalPathContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldLocalPath, v))
}

// RemoteURLEQ applies the EQ predicate on the "remote_url" field.
func RemoteURLEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldRemoteURL, v))
}

// RemoteURLNEQ applies the NEQ predicate on the "remote_url" field.
func RemoteURLNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldRemoteURL, v))
}

// RemoteURLIn applies the In predicate on the "remote_url" field.
func RemoteURLIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldRemoteURL, vs...))
}

// RemoteURLNotIn applies the NotIn predicate on the "remote_url" field.
func RemoteURLNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldRemoteURL, vs...))
}

// RemoteURLGT applies the GT predicate on the "remote_url" field.
func RemoteURLGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldRemoteURL, v))
}

// RemoteURLGTE applies the GTE predicate on the "remote_url" field.
func RemoteURLGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldRemoteURL, v))
}

// RemoteURLLT applies the LT predicate on the "remote_url" field.
func RemoteURLLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldRemoteURL, v))
}

// RemoteURLLTE applies the LTE predicate on the "remote_url" field.
func RemoteURLLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldRemoteURL, v))
}

// RemoteURLContains applies the Contains predicate on the "remote_url" field.
func RemoteURLContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldRemoteURL, v))
}

// RemoteURLHasPrefix applies the HasPrefix predicate on the "remote_url" field.
func RemoteURLHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldRemoteURL, v))
}

// RemoteURLHasSuffix applies the HasSuffix predicate on the "remote_url" field.
func RemoteURLHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldRemoteURL, v))
}

// RemoteURLEqualFold applies the EqualFold predicate on the "remote_url" field.
func RemoteURLEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldRemoteURL, v))
}

// RemoteURLContainsFold applies the ContainsFold predicate on the "remote_url" field.
func RemoteURLContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldRemoteURL, v))
}

// MediaTypeEQ applies the EQ predicate on the "media_type" field.
func MediaTypeEQ(v MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMediaType, v))
}

// MediaTypeNEQ applies the NEQ predicate on the "media_type" field.
func MediaTypeNEQ(v MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldMediaType, v))
}

// MediaTypeIn applies the In predicate on the "media_type" field.
func MediaTypeIn(vs ...MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldMediaType, vs...))
}

// MediaTypeNotIn applies the NotIn predicate on the "media_type" field.
func MediaTypeNotIn(vs ...MediaType) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldMediaType, vs...))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldFileSize, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldMimeType, v))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldContainsFold(FieldResolution, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MediaItem {
	return predicate.MediaItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.MediaItem {
	return predicate.MediaItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.MediaItem {
	return predicate.MediaItem(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediaItem) predicate.MediaItem {
	return predicate.MediaItem(sql.NotPredicates(p))
}
