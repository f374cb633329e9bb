package pipeline

import (
	"context"
	"fmt"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
)

// FinalizeParent settles a parent task whose variants have all reached a
// terminal state. The terminal status is derived from the multiset of
// child statuses:
//
//   - every child completed            → completed
//   - no child completed               → failed
//   - completed and failed mixed       → partial_success
//
// The parent's video fields come from the first completed variant (lowest
// variant index). A parent in cancelling is finalized as cancelled instead.
// Re-running on an already-terminal parent is a no-op.
//
// The parent is read without a lock and the children without a
// transaction. That holds up under concurrent finalizers because the
// inputs are frozen: every child passed in is terminal and terminal
// sub-task statuses never change again, and the parent write goes through
// ApplyTaskUpdate, which re-checks terminal status and the transition
// allowlist under a row lock. Racing pods converge on the same outcome;
// the loser's write degrades to a no-op.
func FinalizeParent(ctx context.Context, tasks *services.TaskService, taskID string, children []*ent.SubVideoTask) (models.UpdateOutcome, error) {
	parent, err := tasks.GetTask(ctx, taskID, false)
	if err != nil {
		return "", fmt.Errorf("failed to load parent for aggregation: %w", err)
	}
	if services.IsTerminalTaskStatus(parent.Status) {
		return models.UpdateNoopTerminal, nil
	}

	if parent.Status == task.StatusCancelling {
		status := string(task.StatusCancelled)
		return tasks.ApplyTaskUpdate(ctx, taskID, models.TaskUpdate{Status: &status})
	}

	var completed, total int
	var first *ent.SubVideoTask
	for _, c := range children {
		if !services.IsTerminalSubTaskStatus(c.Status) {
			return "", fmt.Errorf("aggregation called with non-terminal child %s (%s)", c.ID, c.Status)
		}
		total++
		if c.Status == subvideotask.StatusCompleted {
			completed++
			if first == nil {
				first = c
			}
		}
	}

	progress := progressDone
	stage := string(task.CurrentStageCompleted)
	upd := models.TaskUpdate{
		Progress:     &progress,
		CurrentStage: &stage,
	}

	switch {
	case total > 0 && completed == total:
		status := string(task.StatusCompleted)
		upd.Status = &status
	case completed == 0:
		status := string(task.StatusFailed)
		msg := "all variants failed"
		upd.Status = &status
		upd.ErrorMessage = &msg
	default:
		status := string(task.StatusPartialSuccess)
		msg := fmt.Sprintf("%d of %d variants failed", total-completed, total)
		upd.Status = &status
		upd.ErrorMessage = &msg
	}

	if first != nil {
		if first.VideoURL != nil {
			upd.VideoURL = first.VideoURL
		}
		if first.ThumbnailURL != nil {
			upd.ThumbnailURL = first.ThumbnailURL
		}
		if first.DurationMs != nil {
			upd.VideoDurationMS = first.DurationMs
		}
	}

	return tasks.ApplyTaskUpdate(ctx, taskID, upd)
}
