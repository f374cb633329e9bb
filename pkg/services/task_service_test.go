package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateRequest() models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Title:        "Product launch video",
		Description:  "Teaser for the launch",
		ScriptStyle:  "energetic",
		VariantCount: 2,
		MediaURLs:    []string{"https://cdn.example.com/brief.md", "https://cdn.example.com/hero.png"},
	}
}

// setStatus force-sets a task row for fixture setup, bypassing the
// conditional update path under test.
func setStatus(t *testing.T, client *ent.Client, taskID string, status task.Status, mutate func(*ent.TaskUpdateOne)) {
	t.Helper()
	mut := client.Task.UpdateOneID(taskID).SetStatus(status)
	if mutate != nil {
		mutate(mut)
	}
	require.NoError(t, mut.Exec(context.Background()))
}

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	t.Run("creates pending task with workspace dir", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, 0, created.Progress)
		assert.Equal(t, task.ModeSingleScene, created.Mode)
		assert.Contains(t, created.WorkspaceDir, created.ID)
		assert.Nil(t, created.StartedAt)
		assert.Nil(t, created.CompletedAt)
	})

	t.Run("variant count boundaries", func(t *testing.T) {
		for _, count := range []int{1, 5} {
			req := validCreateRequest()
			req.VariantCount = count
			created, err := service.CreateTask(ctx, req)
			require.NoError(t, err, "variant_count=%d must be accepted", count)
			assert.Equal(t, count, created.VariantCount)
		}
		for _, count := range []int{0, 6, -1} {
			req := validCreateRequest()
			req.VariantCount = count
			_, err := service.CreateTask(ctx, req)
			require.Error(t, err, "variant_count=%d must be rejected", count)
			assert.True(t, IsValidationError(err))
		}
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateTaskRequest)
		}{
			{"missing title", func(r *models.CreateTaskRequest) { r.Title = "" }},
			{"empty media_urls", func(r *models.CreateTaskRequest) { r.MediaURLs = nil }},
			{"non-http url", func(r *models.CreateTaskRequest) { r.MediaURLs = []string{"ftp://x/a.md"} }},
			{"relative url", func(r *models.CreateTaskRequest) { r.MediaURLs = []string{"/local/a.md"} }},
			{"duplicate urls", func(r *models.CreateTaskRequest) {
				r.MediaURLs = []string{"https://x/a.md", "https://x/a.md"}
			}},
			{"unknown mode", func(r *models.CreateTaskRequest) { r.Mode = "triple_scene" }},
			{"missing style", func(r *models.CreateTaskRequest) { r.ScriptStyle = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(&req)
				_, err := service.CreateTask(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestTaskService_ApplyTaskUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	newTask := func(t *testing.T) *ent.Task {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		return created
	}

	t.Run("applies allowed transition with progress", func(t *testing.T) {
		created := newTask(t)
		outcome, err := service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Status:       strPtr("processing"),
			Progress:     intPtr(25),
			CurrentStage: strPtr("material_processing"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusProcessing, row.Status)
		assert.Equal(t, 25, row.Progress)
	})

	t.Run("rejects disallowed transition", func(t *testing.T) {
		created := newTask(t)
		// pending → completed is not in the allowlist
		outcome, err := service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Status: strPtr("completed"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateRejectedTransition, outcome)
	})

	t.Run("rejects progress regression", func(t *testing.T) {
		created := newTask(t)
		setStatus(t, client.Client, created.ID, task.StatusProcessing, func(m *ent.TaskUpdateOne) {
			m.SetProgress(50)
		})

		outcome, err := service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Progress: intPtr(25),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateRejectedRegression, outcome)

		// Equal progress re-assertion is fine.
		outcome, err = service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Progress: intPtr(50),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)
	})

	t.Run("terminal rows swallow late writes", func(t *testing.T) {
		created := newTask(t)
		setStatus(t, client.Client, created.ID, task.StatusCompleted, func(m *ent.TaskUpdateOne) {
			m.SetProgress(100).SetCompletedAt(time.Now())
		})

		outcome, err := service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Status:       strPtr("failed"),
			ErrorMessage: strPtr("late failure from abandoned worker"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateNoopTerminal, outcome)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, row.Status)
		assert.Nil(t, row.ErrorMessage)
	})

	t.Run("terminal target clears lease and stamps completed_at", func(t *testing.T) {
		created := newTask(t)
		setStatus(t, client.Client, created.ID, task.StatusProcessing, func(m *ent.TaskUpdateOne) {
			m.SetPodID("pod-1").SetLeaseExpiresAt(time.Now().Add(time.Minute))
		})

		outcome, err := service.ApplyTaskUpdate(ctx, created.ID, models.TaskUpdate{
			Status:   strPtr("completed"),
			Progress: intPtr(100),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, row.Status)
		assert.Nil(t, row.PodID)
		assert.Nil(t, row.LeaseExpiresAt)
		require.NotNil(t, row.CompletedAt)
	})

	t.Run("unknown task id", func(t *testing.T) {
		outcome, err := service.ApplyTaskUpdate(ctx, uuid.New().String(), models.TaskUpdate{
			Progress: intPtr(10),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateNotFound, outcome)
	})
}

func TestTaskService_CancelTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	t.Run("pending cancels immediately", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)

		row, err := service.CancelTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, row.Status)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("processing moves to cancelling", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, created.ID, task.StatusProcessing, nil)

		row, err := service.CancelTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelling, row.Status)

		// Second cancel is idempotent.
		row, err = service.CancelTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelling, row.Status)
	})

	t.Run("terminal task is not cancellable", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, created.ID, task.StatusFailed, nil)

		_, err = service.CancelTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})

	t.Run("unknown task id", func(t *testing.T) {
		_, err := service.CancelTask(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_RetryTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	subTasks := NewSubTaskService(client.Client)
	ctx := context.Background()

	t.Run("resets a failed task and discards sub-tasks", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = subTasks.CreateSubTasks(ctx, created.ID, 2, "energetic", []string{"narrative"})
		require.NoError(t, err)

		setStatus(t, client.Client, created.ID, task.StatusFailed, func(m *ent.TaskUpdateOne) {
			m.SetProgress(55).
				SetAttempts(2).
				SetErrorMessage("all variants failed").
				SetCompletedAt(time.Now()).
				SetPodID("pod-1")
		})

		row, err := service.RetryTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, row.Status)
		assert.Equal(t, 0, row.Progress)
		assert.Equal(t, 0, row.Attempts)
		assert.Nil(t, row.ErrorMessage)
		assert.Nil(t, row.CompletedAt)
		assert.Nil(t, row.PodID)

		remaining, err := client.SubVideoTask.Query().
			Where(subvideotask.TaskIDEQ(created.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("live task is not retryable", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = service.RetryTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotRetryable)

		setStatus(t, client.Client, created.ID, task.StatusProcessing, nil)
		_, err = service.RetryTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotRetryable)
	})

	t.Run("completed task is not retryable", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, created.ID, task.StatusCompleted, nil)

		_, err = service.RetryTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotRetryable)
	})
}

func TestTaskService_ClaimNextPendingTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	t.Run("claims oldest pending and stamps the lease", func(t *testing.T) {
		first, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		// Force distinct created_at ordering.
		require.NoError(t, client.Task.UpdateOneID(first.ID).
			SetCreatedAt(time.Now().Add(-time.Minute)).Exec(ctx))
		_, err = service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)

		claimed, err := service.ClaimNextPendingTask(ctx, "pod-1", 10, 5*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, task.StatusProcessing, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		require.NotNil(t, claimed.LeaseExpiresAt)
		assert.NotNil(t, claimed.StartedAt)
	})

	t.Run("respects the global concurrency cap", func(t *testing.T) {
		// One task is already processing from the previous subtest.
		_, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)

		claimed, err := service.ClaimNextPendingTask(ctx, "pod-2", 1, 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("returns nil when queue is empty", func(t *testing.T) {
		// Drain: claim everything claimable.
		for {
			claimed, err := service.ClaimNextPendingTask(ctx, "pod-1", 100, 5*time.Minute)
			require.NoError(t, err)
			if claimed == nil {
				break
			}
		}
		claimed, err := service.ClaimNextPendingTask(ctx, "pod-1", 100, 5*time.Minute)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func TestTaskService_Leases(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	claim := func(t *testing.T, podID string) *ent.Task {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		claimed, err := service.ClaimNextPendingTask(ctx, podID, 100, 5*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, created.ID, claimed.ID)
		return claimed
	}

	t.Run("refresh extends an owned lease", func(t *testing.T) {
		claimed := claim(t, "pod-1")
		before := *claimed.LeaseExpiresAt

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, service.RefreshLease(ctx, claimed.ID, "pod-1", 5*time.Minute))

		row, err := service.GetTask(ctx, claimed.ID, false)
		require.NoError(t, err)
		assert.True(t, row.LeaseExpiresAt.After(before))
	})

	t.Run("refresh by a non-owner reports lease lost", func(t *testing.T) {
		claimed := claim(t, "pod-1")
		err := service.RefreshLease(ctx, claimed.ID, "pod-2", 5*time.Minute)
		assert.ErrorIs(t, err, ErrLeaseLost)
	})

	t.Run("refresh after terminal reports lease lost", func(t *testing.T) {
		claimed := claim(t, "pod-1")
		setStatus(t, client.Client, claimed.ID, task.StatusFailed, nil)
		err := service.RefreshLease(ctx, claimed.ID, "pod-1", 5*time.Minute)
		assert.ErrorIs(t, err, ErrLeaseLost)
	})
}

func TestTaskService_ReclaimExpiredLeases(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	expireLease := func(t *testing.T, taskID string, status task.Status, attempts int) {
		setStatus(t, client.Client, taskID, status, func(m *ent.TaskUpdateOne) {
			m.SetPodID("pod-dead").
				SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
				SetAttempts(attempts).
				SetProgress(50)
		})
	}

	t.Run("requeues an expired processing task", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		expireLease(t, created.ID, task.StatusProcessing, 0)

		requeued, failed, err := service.ReclaimExpiredLeases(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, requeued)
		assert.Zero(t, failed)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, row.Status)
		assert.Equal(t, 0, row.Progress)
		assert.Equal(t, 1, row.Attempts)
		assert.Nil(t, row.PodID)
		assert.Nil(t, row.LeaseExpiresAt)
	})

	t.Run("fails a task over the retry budget", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		expireLease(t, created.ID, task.StatusProcessing, 3)

		requeued, failed, err := service.ReclaimExpiredLeases(ctx, 3)
		require.NoError(t, err)
		assert.Zero(t, requeued)
		assert.Equal(t, 1, failed)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "retry budget exhausted")
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("finalizes an expired cancelling task as cancelled", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		expireLease(t, created.ID, task.StatusCancelling, 0)

		_, _, err = service.ReclaimExpiredLeases(ctx, 3)
		require.NoError(t, err)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, row.Status)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("ignores live leases", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, created.ID, task.StatusProcessing, func(m *ent.TaskUpdateOne) {
			m.SetPodID("pod-1").SetLeaseExpiresAt(time.Now().Add(5 * time.Minute))
		})

		requeued, failed, err := service.ReclaimExpiredLeases(ctx, 3)
		require.NoError(t, err)
		assert.Zero(t, requeued)
		assert.Zero(t, failed)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusProcessing, row.Status)
	})
}

func TestTaskService_Retention(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	t.Run("soft deletes terminal tasks past retention", func(t *testing.T) {
		old, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, old.ID, task.StatusCompleted, func(m *ent.TaskUpdateOne) {
			m.SetCompletedAt(time.Now().Add(-40 * 24 * time.Hour))
		})

		recent, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, recent.ID, task.StatusCompleted, func(m *ent.TaskUpdateOne) {
			m.SetCompletedAt(time.Now().Add(-time.Hour))
		})

		deleted, err := service.SoftDeleteExpiredTasks(ctx, 30)
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, old.ID, deleted[0].ID)

		// Deleted rows vanish from default listings.
		list, err := service.ListTasks(ctx, models.TaskFilters{Status: string(task.StatusCompleted)})
		require.NoError(t, err)
		for _, row := range list.Tasks {
			assert.NotEqual(t, old.ID, row.ID)
		}
	})

	t.Run("reports stuck tasks without mutating them", func(t *testing.T) {
		created, err := service.CreateTask(ctx, validCreateRequest())
		require.NoError(t, err)
		setStatus(t, client.Client, created.ID, task.StatusProcessing, func(m *ent.TaskUpdateOne) {
			m.SetUpdatedAt(time.Now().Add(-time.Hour))
		})

		stuck, err := service.FindStuckTasks(ctx, 30*time.Minute)
		require.NoError(t, err)
		require.Len(t, stuck, 1)
		assert.Equal(t, created.ID, stuck[0].ID)

		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusProcessing, row.Status)
	})
}

func TestTaskService_SearchTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	mk := func(title, errMsg string) *ent.Task {
		req := validCreateRequest()
		req.Title = title
		created, err := service.CreateTask(ctx, req)
		require.NoError(t, err)
		if errMsg != "" {
			setStatus(t, client.Client, created.ID, task.StatusFailed, func(m *ent.TaskUpdateOne) {
				m.SetErrorMessage(errMsg)
			})
		}
		return created
	}

	launch := mk("Quarterly launch recap", "")
	broken := mk(fmt.Sprintf("Untitled %s", uuid.New().String()[:8]), "merge timeout while rendering")
	mk("Holiday greetings", "")

	t.Run("matches titles", func(t *testing.T) {
		found, err := service.SearchTasks(ctx, "launch recap", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, launch.ID, found[0].ID)
	})

	t.Run("matches error messages", func(t *testing.T) {
		found, err := service.SearchTasks(ctx, "merge timeout", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, broken.ID, found[0].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		found, err := service.SearchTasks(ctx, "nonexistent subject", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
