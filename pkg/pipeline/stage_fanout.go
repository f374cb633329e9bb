package pipeline

import (
	"context"
	"fmt"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
)

// runFanOutStage creates the task's variant rows. Pure database work; the
// underlying create is idempotent so a rerun returns the existing set.
func (e *TaskExecutor) runFanOutStage(ctx context.Context, t *ent.Task) (StageOutcome, error) {
	children, err := e.subTasks.CreateSubTasks(ctx, t.ID, t.VariantCount, t.ScriptStyleDefault, e.cfg.ScriptStyles)
	if err != nil {
		return StageFailed, fmt.Errorf("failed to create sub-tasks: %w", err)
	}

	msg := fmt.Sprintf("created %d variants", len(children))
	applied, err := e.reportProgress(ctx, t.ID, progressFannedOut, task.CurrentStageSubtaskCreation, msg)
	if err != nil {
		return StageFailed, err
	}
	if !applied {
		return StageStalled, fmt.Errorf("progress update rejected")
	}

	return StageAdvanced, nil
}
