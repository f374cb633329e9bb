// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/schema"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	materialanalysisFields := schema.MaterialAnalysis{}.Fields()
	_ = materialanalysisFields
	// materialanalysisDescCreatedAt is the schema descriptor for created_at field.
	materialanalysisDescCreatedAt := materialanalysisFields[8].Descriptor()
	// materialanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	materialanalysis.DefaultCreatedAt = materialanalysisDescCreatedAt.Default.(func() time.Time)
	mediaitemFields := schema.MediaItem{}.Fields()
	_ = mediaitemFields
	// mediaitemDescCreatedAt is the schema descriptor for created_at field.
	mediaitemDescCreatedAt := mediaitemFields[10].Descriptor()
	// mediaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediaitem.DefaultCreatedAt = mediaitemDescCreatedAt.Default.(func() time.Time)
	scriptcontentFields := schema.ScriptContent{}.Fields()
	_ = scriptcontentFields
	// scriptcontentDescCreatedAt is the schema descriptor for created_at field.
	scriptcontentDescCreatedAt := scriptcontentFields[8].Descriptor()
	// scriptcontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	scriptcontent.DefaultCreatedAt = scriptcontentDescCreatedAt.Default.(func() time.Time)
	subvideotaskFields := schema.SubVideoTask{}.Fields()
	_ = subvideotaskFields
	// subvideotaskDescProgress is the schema descriptor for progress field.
	subvideotaskDescProgress := subvideotaskFields[5].Descriptor()
	// subvideotask.DefaultProgress holds the default value on creation for the progress field.
	subvideotask.DefaultProgress = subvideotaskDescProgress.Default.(int)
	// subvideotaskDescCreatedAt is the schema descriptor for created_at field.
	subvideotaskDescCreatedAt := subvideotaskFields[15].Descriptor()
	// subvideotask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subvideotask.DefaultCreatedAt = subvideotaskDescCreatedAt.Default.(func() time.Time)
	// subvideotaskDescUpdatedAt is the schema descriptor for updated_at field.
	subvideotaskDescUpdatedAt := subvideotaskFields[16].Descriptor()
	// subvideotask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subvideotask.DefaultUpdatedAt = subvideotaskDescUpdatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[9].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[21].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[22].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[23].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
}
