package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/pkg/models"
)

// subTaskTransitions is the sub-task status transition allowlist.
var subTaskTransitions = map[subvideotask.Status][]subvideotask.Status{
	subvideotask.StatusPending:             {subvideotask.StatusScriptGenerating},
	subvideotask.StatusScriptGenerating:    {subvideotask.StatusScriptReady, subvideotask.StatusScriptFailed},
	subvideotask.StatusScriptReady:         {subvideotask.StatusVideoSubmitting},
	subvideotask.StatusVideoSubmitting:     {subvideotask.StatusVideoProcessing, subvideotask.StatusFailed},
	subvideotask.StatusVideoProcessing:     {subvideotask.StatusProcessingSubtitles, subvideotask.StatusCompleted, subvideotask.StatusFailed},
	subvideotask.StatusProcessingSubtitles: {subvideotask.StatusCompleted, subvideotask.StatusFailed},
}

// IsTerminalSubTaskStatus reports whether a sub-task status admits no
// further transitions.
func IsTerminalSubTaskStatus(status subvideotask.Status) bool {
	switch status {
	case subvideotask.StatusCompleted, subvideotask.StatusFailed, subvideotask.StatusScriptFailed:
		return true
	}
	return false
}

func subTaskTransitionAllowed(from, to subvideotask.Status) bool {
	for _, t := range subTaskTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// SubTaskStats summarizes the terminal state of a task's variant set.
type SubTaskStats struct {
	Total     int
	Terminal  int
	Completed int
	Failed    int // failed + script_failed
}

// AllTerminal reports whether every variant has reached a terminal status.
func (s SubTaskStats) AllTerminal() bool {
	return s.Total > 0 && s.Terminal == s.Total
}

// SubTaskService manages sub-video-task rows
type SubTaskService struct {
	client *ent.Client
}

// NewSubTaskService creates a new SubTaskService
func NewSubTaskService(client *ent.Client) *SubTaskService {
	return &SubTaskService{client: client}
}

// CreateSubTasks fans a task out into its variant rows. Variant 1 uses the
// task's default style; later variants rotate styleRotation. The call is
// idempotent: existing rows are returned untouched so a reclaimed task can
// rerun the fan-out safely.
func (s *SubTaskService) CreateSubTasks(ctx context.Context, taskID string, count int, defaultStyle string, styleRotation []string) ([]*ent.SubVideoTask, error) {
	if count < 1 {
		return nil, NewValidationError("variant_count", fmt.Sprintf("must be at least 1, got %d", count))
	}
	if defaultStyle == "" {
		return nil, NewValidationError("script_style", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.SubVideoTask.Query().
		Where(subvideotask.TaskIDEQ(taskID)).
		Order(ent.Asc(subvideotask.FieldVariantIndex)).
		All(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing sub-tasks: %w", err)
	}
	if len(existing) > 0 {
		return existing, tx.Commit()
	}

	created := make([]*ent.SubVideoTask, 0, count)
	for i := 1; i <= count; i++ {
		style := defaultStyle
		if i > 1 && len(styleRotation) > 0 {
			style = styleRotation[(i-2)%len(styleRotation)]
		}
		st, err := tx.SubVideoTask.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetVariantIndex(i).
			SetScriptStyle(style).
			SetStatus(subvideotask.StatusPending).
			Save(writeCtx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create sub-task %d: %w", i, err)
		}
		created = append(created, st)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sub-task fan-out: %w", err)
	}

	return created, nil
}

// GetSubTask retrieves a sub-task by ID
func (s *SubTaskService) GetSubTask(ctx context.Context, subTaskID string) (*ent.SubVideoTask, error) {
	st, err := s.client.SubVideoTask.Get(ctx, subTaskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sub-task: %w", err)
	}
	return st, nil
}

// ChildrenOf lists a task's sub-tasks ordered by variant index
func (s *SubTaskService) ChildrenOf(ctx context.Context, taskID string) ([]*ent.SubVideoTask, error) {
	subs, err := s.client.SubVideoTask.Query().
		Where(subvideotask.TaskIDEQ(taskID)).
		Order(ent.Asc(subvideotask.FieldVariantIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-tasks: %w", err)
	}
	return subs, nil
}

// StatsOf summarizes the variant set of a task.
func (s *SubTaskService) StatsOf(ctx context.Context, taskID string) (SubTaskStats, error) {
	subs, err := s.ChildrenOf(ctx, taskID)
	if err != nil {
		return SubTaskStats{}, err
	}

	stats := SubTaskStats{Total: len(subs)}
	for _, st := range subs {
		if !IsTerminalSubTaskStatus(st.Status) {
			continue
		}
		stats.Terminal++
		if st.Status == subvideotask.StatusCompleted {
			stats.Completed++
		} else {
			stats.Failed++
		}
	}
	return stats, nil
}

// ApplySubTaskUpdate applies a conditional mutation to a sub-task row with
// the same semantics as TaskService.ApplyTaskUpdate: terminal rows swallow
// the write, disallowed transitions and progress regressions are rejected.
func (s *SubTaskService) ApplySubTaskUpdate(ctx context.Context, subTaskID string, upd models.SubTaskUpdate) (models.UpdateOutcome, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.SubVideoTask.Query().
		Where(subvideotask.IDEQ(subTaskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.UpdateNotFound, nil
		}
		return "", fmt.Errorf("failed to load sub-task for update: %w", err)
	}

	if IsTerminalSubTaskStatus(row.Status) {
		return models.UpdateNoopTerminal, nil
	}

	var target subvideotask.Status
	if upd.Status != nil {
		target = subvideotask.Status(*upd.Status)
		if !subTaskTransitionAllowed(row.Status, target) {
			return models.UpdateRejectedTransition, nil
		}
	}
	if upd.Progress != nil && *upd.Progress < row.Progress {
		return models.UpdateRejectedRegression, nil
	}

	now := time.Now()
	mut := tx.SubVideoTask.UpdateOneID(subTaskID).SetUpdatedAt(now)
	if upd.Status != nil {
		mut.SetStatus(target)
		if IsTerminalSubTaskStatus(target) && upd.CompletedAt == nil {
			mut.SetCompletedAt(now)
		}
	}
	if upd.Progress != nil {
		mut.SetProgress(*upd.Progress)
	}
	if upd.ScriptID != nil {
		mut.SetScriptID(*upd.ScriptID)
	}
	if upd.ScriptPayload != nil {
		mut.SetScriptPayload(upd.ScriptPayload)
	}
	if upd.ExternalMergeID != nil {
		mut.SetExternalMergeID(*upd.ExternalMergeID)
	}
	if upd.VideoURL != nil {
		mut.SetVideoURL(*upd.VideoURL)
	}
	if upd.ThumbnailURL != nil {
		mut.SetThumbnailURL(*upd.ThumbnailURL)
	}
	if upd.DurationMS != nil {
		mut.SetDurationMs(*upd.DurationMS)
	}
	if upd.ErrorMessage != nil {
		mut.SetErrorMessage(*upd.ErrorMessage)
	}
	if upd.SubmittedAt != nil {
		mut.SetSubmittedAt(*upd.SubmittedAt)
	}
	if upd.CompletedAt != nil {
		mut.SetCompletedAt(*upd.CompletedAt)
	}

	if err := mut.Exec(writeCtx); err != nil {
		if ent.IsConstraintError(err) {
			// Unique external_merge_id: a duplicate submit lost the race.
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to update sub-task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit sub-task update: %w", err)
	}

	return models.UpdateApplied, nil
}

// ListAwaitingMerge returns submitted sub-tasks the reconciler should look
// at, oldest submissions first. Rows stuck in processing_subtitles are
// included so an interrupted subtitle pass is retried.
func (s *SubTaskService) ListAwaitingMerge(ctx context.Context, batchSize int) ([]*ent.SubVideoTask, error) {
	if batchSize <= 0 {
		batchSize = 50
	}

	subs, err := s.client.SubVideoTask.Query().
		Where(
			subvideotask.StatusIn(subvideotask.StatusVideoProcessing, subvideotask.StatusProcessingSubtitles),
			subvideotask.ExternalMergeIDNotNil(),
			subvideotask.SubmittedAtNotNil(),
		).
		Order(ent.Asc(subvideotask.FieldSubmittedAt)).
		Limit(batchSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-tasks awaiting merge: %w", err)
	}

	return subs, nil
}

// FindByExternalMergeID resolves a merge-service job id back to its
// sub-task.
func (s *SubTaskService) FindByExternalMergeID(ctx context.Context, externalID string) (*ent.SubVideoTask, error) {
	st, err := s.client.SubVideoTask.Query().
		Where(subvideotask.ExternalMergeIDEQ(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sub-task by merge id: %w", err)
	}
	return st, nil
}
