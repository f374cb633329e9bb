package services

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// taskTransitions is the status transition allowlist. A requested move not
// listed here is rejected; terminal rows never transition at all.
var taskTransitions = map[task.Status][]task.Status{
	task.StatusPending:    {task.StatusProcessing, task.StatusCancelled},
	task.StatusProcessing: {task.StatusCancelling, task.StatusCompleted, task.StatusFailed, task.StatusPartialSuccess},
	task.StatusCancelling: {task.StatusCancelled, task.StatusCompleted, task.StatusFailed, task.StatusPartialSuccess},
}

// IsTerminalTaskStatus reports whether status admits no further transitions.
func IsTerminalTaskStatus(status task.Status) bool {
	switch status {
	case task.StatusCompleted, task.StatusFailed, task.StatusCancelled, task.StatusPartialSuccess:
		return true
	}
	return false
}

func taskTransitionAllowed(from, to task.Status) bool {
	for _, t := range taskTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// TaskService manages the task lifecycle
type TaskService struct {
	client          *ent.Client
	variantCountMax int
	workspaceRoot   string
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, variantCountMax int, workspaceRoot string) *TaskService {
	return &TaskService{
		client:          client,
		variantCountMax: variantCountMax,
		workspaceRoot:   workspaceRoot,
	}
}

// CreateTask validates the request and persists a new pending task
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	// Validate input
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if len(req.MediaURLs) == 0 {
		return nil, NewValidationError("media_urls", "at least one URL is required")
	}
	seen := make(map[string]bool, len(req.MediaURLs))
	for _, raw := range req.MediaURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, NewValidationError("media_urls", fmt.Sprintf("not a valid http(s) URL: %q", raw))
		}
		if seen[raw] {
			return nil, NewValidationError("media_urls", fmt.Sprintf("duplicate URL: %q", raw))
		}
		seen[raw] = true
	}
	if req.VariantCount < 1 || req.VariantCount > s.variantCountMax {
		return nil, NewValidationError("variant_count",
			fmt.Sprintf("must be between 1 and %d, got %d", s.variantCountMax, req.VariantCount))
	}
	mode := task.ModeSingleScene
	if req.Mode != "" {
		mode = task.Mode(req.Mode)
		if err := task.ModeValidator(mode); err != nil {
			return nil, NewValidationError("mode", fmt.Sprintf("unknown mode %q", req.Mode))
		}
	}
	if req.ScriptStyle == "" {
		return nil, NewValidationError("script_style", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taskID := uuid.New().String()
	builder := s.client.Task.Create().
		SetID(taskID).
		SetTitle(req.Title).
		SetMode(mode).
		SetScriptStyleDefault(req.ScriptStyle).
		SetVariantCount(req.VariantCount).
		SetMediaUrls(req.MediaURLs).
		SetStatus(task.StatusPending).
		SetWorkspaceDir(filepath.Join(s.workspaceRoot, taskID))

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.MediaMeta != nil {
		builder.SetMediaMeta(req.MediaMeta)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetTask retrieves a task by ID with optional edge loading
func (s *TaskService) GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error) {
	query := s.client.Task.Query().Where(task.IDEQ(taskID))

	if withEdges {
		query = query.
			WithSubTasks(func(q *ent.SubVideoTaskQuery) {
				q.Order(ent.Asc(subvideotask.FieldVariantIndex))
			}).
			WithMediaItems().
			WithAnalyses()
	}

	t, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.Mode != "" {
		query = query.Where(task.ModeEQ(task.Mode(filters.Mode)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(task.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(task.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(task.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ApplyTaskUpdate applies a conditional mutation to a task row. Terminal
// rows swallow the write, disallowed transitions and progress regressions
// are rejected; the caller inspects the outcome.
func (s *TaskService) ApplyTaskUpdate(ctx context.Context, taskID string, upd models.TaskUpdate) (models.UpdateOutcome, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.UpdateNotFound, nil
		}
		return "", fmt.Errorf("failed to load task for update: %w", err)
	}

	if IsTerminalTaskStatus(row.Status) {
		return models.UpdateNoopTerminal, nil
	}

	var target task.Status
	if upd.Status != nil {
		target = task.Status(*upd.Status)
		if !taskTransitionAllowed(row.Status, target) {
			return models.UpdateRejectedTransition, nil
		}
	}
	if upd.Progress != nil && *upd.Progress < row.Progress {
		return models.UpdateRejectedRegression, nil
	}

	now := time.Now()
	mut := tx.Task.UpdateOneID(taskID).SetUpdatedAt(now)
	if upd.Status != nil {
		mut.SetStatus(target)
		if IsTerminalTaskStatus(target) {
			mut.ClearPodID().ClearLeaseExpiresAt()
			if upd.CompletedAt == nil {
				mut.SetCompletedAt(now)
			}
		}
	}
	if upd.Progress != nil {
		mut.SetProgress(*upd.Progress)
	}
	if upd.CurrentStage != nil {
		mut.SetCurrentStage(task.CurrentStage(*upd.CurrentStage))
	}
	if upd.StageMessage != nil {
		mut.SetStageMessage(*upd.StageMessage)
	}
	if upd.VideoURL != nil {
		mut.SetVideoURL(*upd.VideoURL)
	}
	if upd.ThumbnailURL != nil {
		mut.SetThumbnailURL(*upd.ThumbnailURL)
	}
	if upd.VideoDurationMS != nil {
		mut.SetVideoDurationMs(*upd.VideoDurationMS)
	}
	if upd.ErrorMessage != nil {
		mut.SetErrorMessage(*upd.ErrorMessage)
	}
	if upd.StartedAt != nil {
		mut.SetStartedAt(*upd.StartedAt)
	}
	if upd.CompletedAt != nil {
		mut.SetCompletedAt(*upd.CompletedAt)
	}

	if err := mut.Exec(writeCtx); err != nil {
		return "", fmt.Errorf("failed to update task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit task update: %w", err)
	}

	return models.UpdateApplied, nil
}

// CancelTask requests cancellation. Pending tasks finalize immediately;
// processing tasks move to cancelling and are finalized by their worker at
// the next stage boundary. Cancelling is idempotent.
func (s *TaskService) CancelTask(ctx context.Context, taskID string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	now := time.Now()
	switch row.Status {
	case task.StatusPending:
		row, err = tx.Task.UpdateOneID(taskID).
			SetStatus(task.StatusCancelled).
			SetCompletedAt(now).
			SetUpdatedAt(now).
			Save(writeCtx)
	case task.StatusProcessing:
		row, err = tx.Task.UpdateOneID(taskID).
			SetStatus(task.StatusCancelling).
			SetUpdatedAt(now).
			Save(writeCtx)
	case task.StatusCancelling:
		// Already requested; idempotent.
	default:
		return nil, ErrAlreadyTerminal
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}

	return row, nil
}

// RetryTask resets a failed, cancelled, or partially successful task back
// to pending. Sub-tasks and analyses from the previous run are discarded;
// fetched media items are kept (re-fetch is an upsert).
func (s *TaskService) RetryTask(ctx context.Context, taskID string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	switch row.Status {
	case task.StatusFailed, task.StatusCancelled, task.StatusPartialSuccess:
	default:
		return nil, ErrNotRetryable
	}

	// Discard previous run's sub-tasks; scripts cascade with them.
	if _, err := tx.SubVideoTask.Delete().
		Where(subvideotask.TaskIDEQ(taskID)).
		Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to delete sub-tasks: %w", err)
	}

	row, err = tx.Task.UpdateOneID(taskID).
		SetStatus(task.StatusPending).
		SetProgress(0).
		SetAttempts(0).
		ClearCurrentStage().
		ClearStageMessage().
		ClearErrorMessage().
		ClearVideoURL().
		ClearThumbnailURL().
		ClearVideoDurationMs().
		ClearPodID().
		ClearLeaseExpiresAt().
		ClearStartedAt().
		ClearCompletedAt().
		SetUpdatedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit retry: %w", err)
	}

	return row, nil
}

// ClaimNextPendingTask atomically claims the oldest pending task for podID,
// honoring the global concurrency cap. Returns (nil, nil) when there is
// nothing to claim. Uses FOR UPDATE SKIP LOCKED so competing pods never
// block on each other's claims.
func (s *TaskService) ClaimNextPendingTask(ctx context.Context, podID string, maxConcurrent int, leaseTTL time.Duration) (*ent.Task, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Global concurrency check across all pods.
	active, err := tx.Task.Query().
		Where(task.StatusIn(task.StatusProcessing, task.StatusCancelling)).
		Count(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tasks: %w", err)
	}
	if active >= maxConcurrent {
		return nil, nil
	}

	row, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.DeletedAtIsNil(),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending tasks
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	now := time.Now()
	mut := tx.Task.UpdateOneID(row.ID).
		SetStatus(task.StatusProcessing).
		SetPodID(podID).
		SetLeaseExpiresAt(now.Add(leaseTTL)).
		SetUpdatedAt(now)
	if row.StartedAt == nil {
		mut.SetStartedAt(now)
	}
	row, err = mut.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return row, nil
}

// RefreshLease extends podID's lease on a task. Returns ErrLeaseLost when
// the task is no longer owned by podID; the worker must then abandon it.
func (s *TaskService) RefreshLease(ctx context.Context, taskID, podID string, leaseTTL time.Duration) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.PodIDEQ(podID),
			task.StatusIn(task.StatusProcessing, task.StatusCancelling),
		).
		SetLeaseExpiresAt(now.Add(leaseTTL)).
		SetUpdatedAt(now).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to refresh lease: %w", err)
	}
	if count == 0 {
		return ErrLeaseLost
	}

	return nil
}

// IsCancellationRequested reports whether the task has moved to cancelling.
// Workers check this at stage boundaries.
func (s *TaskService) IsCancellationRequested(ctx context.Context, taskID string) (bool, error) {
	status, err := s.client.Task.Query().
		Where(task.IDEQ(taskID)).
		Select(task.FieldStatus).
		String(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read task status: %w", err)
	}
	return task.Status(status) == task.StatusCancelling, nil
}

// ReclaimExpiredLeases requeues tasks whose worker lease has expired.
// Tasks over the retry budget are failed instead; cancelling tasks are
// finalized as cancelled. Returns (requeued, failed) counts.
func (s *TaskService) ReclaimExpiredLeases(ctx context.Context, retryBudget int) (int, int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	expired, err := tx.Task.Query().
		Where(
			task.StatusIn(task.StatusProcessing, task.StatusCancelling),
			task.LeaseExpiresAtNotNil(),
			task.LeaseExpiresAtLT(now),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(writeCtx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	var requeued, failed int
	for _, row := range expired {
		switch {
		case row.Status == task.StatusCancelling:
			err = tx.Task.UpdateOneID(row.ID).
				SetStatus(task.StatusCancelled).
				SetCompletedAt(now).
				SetUpdatedAt(now).
				ClearPodID().
				ClearLeaseExpiresAt().
				Exec(writeCtx)
		case row.Attempts+1 > retryBudget:
			err = tx.Task.UpdateOneID(row.ID).
				SetStatus(task.StatusFailed).
				SetErrorMessage(fmt.Sprintf("worker lease expired %d times, retry budget exhausted", row.Attempts+1)).
				SetCompletedAt(now).
				SetUpdatedAt(now).
				SetAttempts(row.Attempts + 1).
				ClearPodID().
				ClearLeaseExpiresAt().
				Exec(writeCtx)
			if err == nil {
				failed++
			}
			continue
		default:
			// Back to pending with progress reset; the next worker reruns
			// the pipeline from the top (all stage work is idempotent).
			err = tx.Task.UpdateOneID(row.ID).
				SetStatus(task.StatusPending).
				SetProgress(0).
				SetAttempts(row.Attempts + 1).
				SetUpdatedAt(now).
				ClearPodID().
				ClearLeaseExpiresAt().
				ClearCurrentStage().
				ClearStageMessage().
				Exec(writeCtx)
			if err == nil {
				requeued++
			}
			continue
		}
		if err != nil {
			return 0, 0, fmt.Errorf("failed to reclaim task %s: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit lease reclaim: %w", err)
	}

	return requeued, failed, nil
}

// FindStuckTasks finds live tasks that have not been touched within
// threshold. They are reported for operator attention, not mutated.
func (s *TaskService) FindStuckTasks(ctx context.Context, threshold time.Duration) ([]*ent.Task, error) {
	cutoff := time.Now().Add(-threshold)

	tasks, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusProcessing, task.StatusCancelling),
			task.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stuck tasks: %w", err)
	}

	return tasks, nil
}

// SoftDeleteExpiredTasks soft deletes terminal tasks older than the
// retention period and returns the affected rows so the caller can scrub
// their workspaces.
func (s *TaskService) SoftDeleteExpiredTasks(ctx context.Context, retentionDays int) ([]*ent.Task, error) {
	if retentionDays <= 0 {
		return nil, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(deleteCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	expired, err := tx.Task.Query().
		Where(
			task.CompletedAtNotNil(),
			task.CompletedAtLT(cutoff),
			task.DeletedAtIsNil(),
		).
		All(deleteCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired tasks: %w", err)
	}
	if len(expired) == 0 {
		return nil, tx.Commit()
	}

	ids := make([]string, 0, len(expired))
	for _, row := range expired {
		ids = append(ids, row.ID)
	}

	if _, err := tx.Task.Update().
		Where(task.IDIn(ids...)).
		SetDeletedAt(time.Now()).
		Save(deleteCtx); err != nil {
		return nil, fmt.Errorf("failed to soft delete tasks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit soft delete: %w", err)
	}

	return expired, nil
}

// SearchTasks performs full-text search over title, description, and
// error_message
func (s *TaskService) SearchTasks(ctx context.Context, query string, limit int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 20
	}

	tasks, err := s.client.Task.Query().
		Where(task.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', title || ' ' || COALESCE(description, '')) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(error_message, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	return tasks, nil
}
