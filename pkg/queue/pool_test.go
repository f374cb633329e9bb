package queue

import (
	"context"
	"sync"
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

// recordingExecutor records which tasks it ran. With block set it parks
// until the task context is cancelled, mimicking a long pipeline run.
type recordingExecutor struct {
	mu       sync.Mutex
	executed []string
	block    bool
	ctxErrs  map[string]error
}

func (e *recordingExecutor) Execute(ctx context.Context, t *ent.Task) error {
	e.mu.Lock()
	e.executed = append(e.executed, t.ID)
	if e.ctxErrs == nil {
		e.ctxErrs = make(map[string]error)
	}
	e.mu.Unlock()

	if e.block {
		<-ctx.Done()
		e.mu.Lock()
		e.ctxErrs[t.ID] = ctx.Err()
		e.mu.Unlock()
		return ctx.Err()
	}
	return nil
}

func (e *recordingExecutor) executedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.executed...)
}

func (e *recordingExecutor) ctxErr(taskID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctxErrs[taskID]
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.LeaseReclaimInterval = time.Hour // not under test unless overridden
	return cfg
}

func createPendingTask(t *testing.T, tasks *services.TaskService, title string) *ent.Task {
	t.Helper()
	created, err := tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:        title,
		ScriptStyle:  "energetic",
		VariantCount: 1,
		MediaURLs:    []string{"https://cdn.example.com/brief.md"},
	})
	require.NoError(t, err)
	return created
}

func TestWorkerPool_ProcessesPendingTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, 5, t.TempDir())
	executor := &recordingExecutor{}

	first := createPendingTask(t, tasks, "first")
	second := createPendingTask(t, tasks, "second")

	pool := NewWorkerPool("pod-a", client.Client, tasks, fastQueueConfig(), executor)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	require.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 2
	}, 5*time.Second, 20*time.Millisecond)

	assert.ElementsMatch(t, []string{first.ID, second.ID}, executor.executedIDs())

	// The claim moved both tasks out of the queue under this pod's lease.
	for _, id := range []string{first.ID, second.ID} {
		row, err := tasks.GetTask(context.Background(), id, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusProcessing, row.Status)
		require.NotNil(t, row.PodID)
		assert.Equal(t, "pod-a", *row.PodID)
	}
}

func TestWorkerPool_CancelTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, 5, t.TempDir())
	executor := &recordingExecutor{block: true}

	created := createPendingTask(t, tasks, "long runner")

	cfg := fastQueueConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("pod-a", client.Client, tasks, cfg, executor)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	assert.False(t, pool.CancelTask("not-running-here"))

	// Once the worker registers the task, CancelTask interrupts it.
	require.Eventually(t, func() bool {
		return pool.CancelTask(created.ID)
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		return executor.ctxErr(created.ID) != nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.ErrorIs(t, executor.ctxErr(created.ID), context.Canceled)
}

func TestWorkerPool_AbandonsTaskOnLostLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, 5, t.TempDir())
	executor := &recordingExecutor{block: true}

	created := createPendingTask(t, tasks, "lease loser")

	cfg := fastQueueConfig()
	cfg.WorkerCount = 1
	cfg.LeaseTTL = 300 * time.Millisecond // heartbeat every 100ms
	pool := NewWorkerPool("pod-a", client.Client, tasks, cfg, executor)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	require.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 1
	}, 5*time.Second, 20*time.Millisecond)

	// Another pod takes the task over, as reclamation would after a crash.
	require.NoError(t, client.Task.UpdateOneID(created.ID).
		SetPodID("pod-b").
		Exec(context.Background()))

	// The next heartbeat sees the foreign owner and aborts the executor.
	require.Eventually(t, func() bool {
		return executor.ctxErr(created.ID) != nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.ErrorIs(t, executor.ctxErr(created.ID), context.Canceled)
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, 5, t.TempDir())
	executor := &recordingExecutor{}

	cfg := fastQueueConfig()
	cfg.WorkerCount = 1
	// Slow polling so the pending task stays visible as queue depth.
	cfg.PollInterval = time.Hour
	pool := NewWorkerPool("pod-a", client.Client, tasks, cfg, executor)

	// An unstarted pool has no workers and reports unhealthy.
	health := pool.Health()
	assert.False(t, health.IsHealthy)
	assert.Zero(t, health.TotalWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	createPendingTask(t, tasks, "queued work")

	health = pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Equal(t, 1, health.QueueDepth)
	require.Len(t, health.WorkerStats, 1)
}

func TestRequeueStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, 5, t.TempDir())
	ctx := context.Background()

	stage := task.CurrentStageScriptGeneration
	orphaned := createPendingTask(t, tasks, "orphaned mid-flight")
	require.NoError(t, client.Task.UpdateOneID(orphaned.ID).
		SetStatus(task.StatusProcessing).
		SetProgress(55).
		SetAttempts(1).
		SetPodID("pod-a").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		SetCurrentStage(stage).
		SetStageMessage("scripted 1/2").
		Exec(ctx))

	cancelling := createPendingTask(t, tasks, "cancelling at crash")
	require.NoError(t, client.Task.UpdateOneID(cancelling.ID).
		SetStatus(task.StatusCancelling).
		SetPodID("pod-a").
		Exec(ctx))

	foreign := createPendingTask(t, tasks, "owned elsewhere")
	require.NoError(t, client.Task.UpdateOneID(foreign.ID).
		SetStatus(task.StatusProcessing).
		SetPodID("pod-b").
		Exec(ctx))

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "pod-a"))

	row, err := tasks.GetTask(ctx, orphaned.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, row.Status)
	assert.Equal(t, 0, row.Progress)
	assert.Equal(t, 2, row.Attempts)
	assert.Nil(t, row.PodID)
	assert.Nil(t, row.LeaseExpiresAt)
	assert.Nil(t, row.CurrentStage)
	assert.Nil(t, row.StageMessage)

	row, err = tasks.GetTask(ctx, cancelling.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, row.Status)
	assert.NotNil(t, row.CompletedAt)
	assert.Nil(t, row.PodID)

	row, err = tasks.GetTask(ctx, foreign.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-b", *row.PodID)
}
