package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
	"github.com/textloom/textloom/pkg/services"
)

// TaskExecutor runs a claimed task through stages 1-5. It is stateless
// between tasks; one executor is shared by all workers.
type TaskExecutor struct {
	tasks    *services.TaskService
	subTasks *services.SubTaskService
	media    *services.MediaService
	cfg      *config.PipelineConfig

	fetcher   ports.MediaFetcher
	analyzer  ports.MediaAnalyzer
	generator ports.ScriptGenerator
	merger    ports.VideoMerger
	uploader  ports.Uploader

	logger *slog.Logger
}

// NewTaskExecutor creates a new TaskExecutor
func NewTaskExecutor(
	tasks *services.TaskService,
	subTasks *services.SubTaskService,
	media *services.MediaService,
	cfg *config.PipelineConfig,
	fetcher ports.MediaFetcher,
	analyzer ports.MediaAnalyzer,
	generator ports.ScriptGenerator,
	merger ports.VideoMerger,
	uploader ports.Uploader,
) *TaskExecutor {
	return &TaskExecutor{
		tasks:     tasks,
		subTasks:  subTasks,
		media:     media,
		cfg:       cfg,
		fetcher:   fetcher,
		analyzer:  analyzer,
		generator: generator,
		merger:    merger,
		uploader:  uploader,
		logger:    slog.With("component", "pipeline"),
	}
}

type stageFunc func(ctx context.Context, t *ent.Task) (StageOutcome, error)

// Execute runs all stages for a claimed task. Cancellation is observed at
// stage boundaries, and a cancelled task context interrupts in-flight
// collaborator calls; interrupted work is discarded, never persisted as a
// stage or variant failure.
//
// On return the task is either terminal, or left in processing with all
// live children submitted to the merge service (the poller finishes those).
func (e *TaskExecutor) Execute(ctx context.Context, t *ent.Task) error {
	log := e.logger.With("task_id", t.ID)

	stages := []struct {
		name task.CurrentStage
		run  stageFunc
	}{
		{task.CurrentStageMaterialProcessing, e.runFetchStage},
		{task.CurrentStageMaterialAnalysis, e.runAnalysisStage},
		{task.CurrentStageSubtaskCreation, e.runFanOutStage},
		{task.CurrentStageScriptGeneration, e.runScriptStage},
		{task.CurrentStageVideoGeneration, e.runSubmitStage},
	}

	for _, stage := range stages {
		if ctx.Err() != nil {
			return e.settleInterrupted(ctx, t.ID, stage.name)
		}
		cancelled, err := e.tasks.IsCancellationRequested(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("cancellation check before %s: %w", stage.name, err)
		}
		if cancelled {
			log.Info("Cancellation observed at stage boundary", "stage", stage.name)
			return e.finalizeCancelled(ctx, t.ID)
		}

		log.Info("Running stage", "stage", stage.name)
		outcome, err := stage.run(ctx, t)
		switch outcome {
		case StageAdvanced:
			continue
		case StageStalled:
			log.Warn("Stage stalled, abandoning task", "stage", stage.name, "error", err)
			return nil
		case StageFailed:
			if ctx.Err() != nil {
				// The task context died mid-stage (user cancel or lost
				// lease), so this is an interruption, not a verdict.
				return e.settleInterrupted(ctx, t.ID, stage.name)
			}
			msg := fmt.Sprintf("stage %s failed", stage.name)
			if err != nil {
				msg = fmt.Sprintf("stage %s failed: %v", stage.name, err)
			}
			log.Error("Stage failed", "stage", stage.name, "error", err)
			return e.finalizeFailed(ctx, t.ID, msg)
		default:
			return fmt.Errorf("stage %s returned unknown outcome %q", stage.name, outcome)
		}
	}

	// All submits done. If every child already reached a terminal state
	// (nothing made it to the merge service), settle the parent now instead
	// of waiting for a poll cycle.
	children, err := e.subTasks.ChildrenOf(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("failed to load children after submit: %w", err)
	}
	allTerminal := len(children) > 0
	for _, c := range children {
		if !services.IsTerminalSubTaskStatus(c.Status) {
			allTerminal = false
			break
		}
	}
	if allTerminal {
		_, err := FinalizeParent(ctx, e.tasks, t.ID, children)
		return err
	}

	log.Info("Task handed off to merge reconciler", "children", len(children))
	return nil
}

// settleInterrupted resolves a run whose task context was cancelled. A
// requested cancellation finalizes the task as cancelled; anything else
// (lost lease, pod shutdown) walks away without writing so the reclaiming
// pod owns the row. The DB reads here must outlive the dead task context.
func (e *TaskExecutor) settleInterrupted(ctx context.Context, taskID string, stage task.CurrentStage) error {
	detached := context.WithoutCancel(ctx)
	cancelled, err := e.tasks.IsCancellationRequested(detached, taskID)
	if err != nil {
		return fmt.Errorf("cancellation check after interrupted %s: %w", stage, err)
	}
	if cancelled {
		e.logger.Info("Cancellation observed mid-stage", "task_id", taskID, "stage", stage)
		return e.finalizeCancelled(detached, taskID)
	}
	e.logger.Warn("Task context lost mid-stage, abandoning task", "task_id", taskID, "stage", stage)
	return nil
}

func (e *TaskExecutor) finalizeCancelled(ctx context.Context, taskID string) error {
	status := string(task.StatusCancelled)
	outcome, err := e.tasks.ApplyTaskUpdate(ctx, taskID, models.TaskUpdate{Status: &status})
	if err != nil {
		return fmt.Errorf("failed to finalize cancelled task: %w", err)
	}
	if outcome != models.UpdateApplied && outcome != models.UpdateNoopTerminal {
		return fmt.Errorf("unexpected outcome finalizing cancelled task: %s", outcome)
	}
	return nil
}

func (e *TaskExecutor) finalizeFailed(ctx context.Context, taskID, msg string) error {
	status := string(task.StatusFailed)
	_, err := e.tasks.ApplyTaskUpdate(ctx, taskID, models.TaskUpdate{
		Status:       &status,
		ErrorMessage: &msg,
	})
	if err != nil {
		return fmt.Errorf("failed to finalize failed task: %w", err)
	}
	return nil
}

// reportProgress writes an intra-stage progress update. Rejections are
// normal here (a concurrent cancel or a lost race) and map to stalled.
func (e *TaskExecutor) reportProgress(ctx context.Context, taskID string, progress int, stage task.CurrentStage, message string) (bool, error) {
	stageStr := string(stage)
	outcome, err := e.tasks.ApplyTaskUpdate(ctx, taskID, models.TaskUpdate{
		Progress:     &progress,
		CurrentStage: &stageStr,
		StageMessage: &message,
	})
	if err != nil {
		return false, err
	}
	return outcome == models.UpdateApplied, nil
}

// collaboratorCtx derives the per-call timeout context for a port call.
func (e *TaskExecutor) collaboratorCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.CollaboratorTimeout)
}
