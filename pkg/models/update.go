package models

import "time"

// UpdateOutcome reports what a conditional status update did. Callers treat
// anything other than UpdateApplied and UpdateNoopTerminal as a bug or a
// lost race and act accordingly.
type UpdateOutcome string

const (
	// UpdateApplied means the row was updated.
	UpdateApplied UpdateOutcome = "applied"

	// UpdateNoopTerminal means the row is already terminal; the write was
	// silently discarded. This is the normal fate of late writes from
	// cancelled or reclaimed work.
	UpdateNoopTerminal UpdateOutcome = "noop_terminal"

	// UpdateRejectedTransition means the requested status move is not in
	// the transition allowlist.
	UpdateRejectedTransition UpdateOutcome = "rejected_transition"

	// UpdateRejectedRegression means the update would move progress
	// backwards.
	UpdateRejectedRegression UpdateOutcome = "rejected_regression"

	// UpdateNotFound means no row matched the id.
	UpdateNotFound UpdateOutcome = "not_found"
)

// TaskUpdate is a conditional mutation of a task row. Nil fields are left
// untouched. Status transitions are checked against the allowlist and
// progress may never decrease.
type TaskUpdate struct {
	Status          *string
	Progress        *int
	CurrentStage    *string
	StageMessage    *string
	VideoURL        *string
	ThumbnailURL    *string
	VideoDurationMS *int
	ErrorMessage    *string
	StartedAt       *time.Time
	CompletedAt     *time.Time
}

// SubTaskUpdate is a conditional mutation of a sub-task row, with the same
// allowlist and monotone-progress semantics as TaskUpdate.
type SubTaskUpdate struct {
	Status          *string
	Progress        *int
	ScriptID        *string
	ScriptPayload   map[string]any
	ExternalMergeID *string
	VideoURL        *string
	ThumbnailURL    *string
	DurationMS      *int
	ErrorMessage    *string
	SubmittedAt     *time.Time
	CompletedAt     *time.Time
}
