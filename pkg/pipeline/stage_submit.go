package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// runSubmitStage posts each scripted variant to the external merge service
// with bounded parallelism. The sub-task id doubles as the submission
// idempotency key, so a rerun after a crash resubmits without creating a
// second external job. The stage advances once every variant is either in
// video_processing or terminal; completion is then the reconciler's job.
func (e *TaskExecutor) runSubmitStage(ctx context.Context, t *ent.Task) (StageOutcome, error) {
	children, err := e.subTasks.ChildrenOf(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}

	var mu sync.Mutex
	submitted := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.SubmitParallelism)

	for _, child := range children {
		if !needsSubmit(child.Status) {
			continue
		}
		g.Go(func() error {
			ok, err := e.submitOne(gctx, child)
			if err != nil {
				return err
			}
			if ok {
				mu.Lock()
				submitted++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return StageFailed, err
	}

	applied, err := e.reportProgress(ctx, t.ID, progressScripted, task.CurrentStageVideoGeneration,
		fmt.Sprintf("submitted %d variants for merge", submitted))
	if err != nil {
		return StageFailed, err
	}
	if !applied {
		return StageStalled, fmt.Errorf("progress update rejected")
	}

	return StageAdvanced, nil
}

func needsSubmit(status subvideotask.Status) bool {
	return status == subvideotask.StatusScriptReady || status == subvideotask.StatusVideoSubmitting
}

// submitOne drives one variant from script_ready to video_processing (or
// failed). Returns whether a merge job is now in flight for the variant.
func (e *TaskExecutor) submitOne(ctx context.Context, child *ent.SubVideoTask) (bool, error) {
	if child.Status == subvideotask.StatusScriptReady {
		submitting := string(subvideotask.StatusVideoSubmitting)
		outcome, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
			Status: &submitting,
		})
		if err != nil {
			return false, err
		}
		if outcome != models.UpdateApplied {
			return false, nil
		}
	}

	var externalID string
	submitErr := withRetry(ctx, func(ctx context.Context) error {
		cctx, cancel := e.collaboratorCtx(ctx)
		defer cancel()

		var err error
		externalID, err = e.merger.Submit(cctx, child.ScriptPayload, child.ID)
		return err
	})

	if submitErr != nil {
		if ctx.Err() != nil {
			// Interrupted run; the variant stays in video_submitting and is
			// resubmitted under the same idempotency key next time.
			return false, submitErr
		}
		failedStatus := string(subvideotask.StatusFailed)
		errMsg := fmt.Sprintf("merge submission failed: %v", submitErr)
		if _, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
			Status:       &failedStatus,
			ErrorMessage: &errMsg,
		}); err != nil {
			return false, err
		}
		return false, nil
	}

	processing := string(subvideotask.StatusVideoProcessing)
	progress := childProgressSubmitted
	now := time.Now()
	if _, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
		Status:          &processing,
		Progress:        &progress,
		ExternalMergeID: &externalID,
		SubmittedAt:     &now,
	}); err != nil {
		return false, err
	}

	return true, nil
}
