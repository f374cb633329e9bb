package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
	testdb "github.com/textloom/textloom/test/database"
)

func newCleanupHarness(t *testing.T) (*Service, *services.TaskService, *ent.Client, string) {
	client := testdb.NewTestClient(t)
	root := t.TempDir()
	tasks := services.NewTaskService(client.Client, 5, root)

	cfg := config.DefaultRetentionConfig()
	return NewService(cfg, root, tasks), tasks, client.Client, root
}

func newTerminalTask(t *testing.T, tasks *services.TaskService, client *ent.Client, completedAt time.Time) *ent.Task {
	t.Helper()
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:        "Retention test task",
		ScriptStyle:  "energetic",
		VariantCount: 1,
		MediaURLs:    []string{"https://cdn.example.com/brief.md"},
	})
	require.NoError(t, err)
	require.DirExists(t, created.WorkspaceDir)

	require.NoError(t, client.Task.UpdateOneID(created.ID).
		SetStatus(task.StatusCompleted).
		SetProgress(100).
		SetCompletedAt(completedAt).
		Exec(ctx))
	return created
}

func TestExpireOldTasks(t *testing.T) {
	service, tasks, client, _ := newCleanupHarness(t)
	ctx := context.Background()

	old := newTerminalTask(t, tasks, client, time.Now().AddDate(0, 0, -40))
	fresh := newTerminalTask(t, tasks, client, time.Now().Add(-time.Hour))

	service.expireOldTasks(ctx)

	// The expired task is soft-deleted and its workspace scrubbed.
	row, err := client.Task.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, row.DeletedAt)
	assert.NoDirExists(t, old.WorkspaceDir)

	// The fresh one is untouched.
	row, err = client.Task.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, row.DeletedAt)
	assert.DirExists(t, fresh.WorkspaceDir)

	// A second pass finds nothing new.
	service.expireOldTasks(ctx)
	row, err = client.Task.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, row.DeletedAt)
}

func TestRemoveWorkspace_Containment(t *testing.T) {
	service, _, _, root := newCleanupHarness(t)

	inside := filepath.Join(root, "task-1")
	require.NoError(t, os.MkdirAll(inside, 0o755))
	require.NoError(t, service.removeWorkspace(inside))
	assert.NoDirExists(t, inside)

	// Paths outside the workspace root are refused, not removed.
	outside := t.TempDir()
	require.NoError(t, service.removeWorkspace(outside))
	assert.DirExists(t, outside)

	// The root itself is never removed.
	require.NoError(t, service.removeWorkspace(root))
	assert.DirExists(t, root)

	// Empty paths are a no-op.
	require.NoError(t, service.removeWorkspace(""))
}

func TestReportStuckTasks(t *testing.T) {
	service, tasks, client, _ := newCleanupHarness(t)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:        "Stuck task",
		ScriptStyle:  "energetic",
		VariantCount: 1,
		MediaURLs:    []string{"https://cdn.example.com/brief.md"},
	})
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOneID(created.ID).
		SetStatus(task.StatusProcessing).
		SetPodID("pod-a").
		SetUpdatedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx))

	// Reporting never mutates the task.
	service.reportStuckTasks(ctx)

	row, err := client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-a", *row.PodID)
}
