package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	tasks    *services.TaskService
	config   *config.QueueConfig
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, tasks *services.TaskService, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		tasks:        tasks,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one task and runs it to its hand-off point.
// The claim enforces the global concurrency cap and takes a TTL lease;
// the heartbeat goroutine keeps the lease alive while the executor runs.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	t, err := w.tasks.ClaimNextPendingTask(ctx, w.podID, w.config.MaxConcurrentTasks, w.config.LeaseTTL)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNoTasksAvailable
	}

	log := slog.With("task_id", t.ID, "worker_id", w.id)
	log.Info("Task claimed", "attempts", t.Attempts)

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()

	// Register cancel function so an API cancel interrupts in-flight
	// collaborator calls instead of waiting for the next stage boundary.
	w.pool.RegisterTask(t.ID, cancelTask)
	defer w.pool.UnregisterTask(t.ID)

	// Lease heartbeat; a lost lease aborts the executor.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(context.Background())
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, t, cancelTask)

	if err := w.executor.Execute(taskCtx, t); err != nil {
		log.Error("Task execution ended with error", "error", err)
	}

	cancelHeartbeat()

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete")
	return nil
}

// runHeartbeat refreshes the task lease at a third of its TTL. When the
// refresh reports the lease lost, the task context is cancelled so the
// executor stops touching the task.
func (w *Worker) runHeartbeat(ctx context.Context, t *ent.Task, abandonTask context.CancelFunc) {
	ticker := time.NewTicker(w.config.LeaseTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.tasks.RefreshLease(ctx, t.ID, w.podID, w.config.LeaseTTL)
			if err == nil {
				continue
			}
			if errors.Is(err, services.ErrLeaseLost) {
				slog.Warn("Task lease lost, abandoning task",
					"task_id", t.ID, "worker_id", w.id)
				abandonTask()
				return
			}
			slog.Warn("Lease refresh failed", "task_id", t.ID, "error", err)
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
