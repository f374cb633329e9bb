// Package queue provides task queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/textloom/textloom/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the ENTIRE stage sequence internally: it runs stages
// 1-5 in order, observes cancellation at stage boundaries, and writes all
// intermediate and terminal state to the database as it goes. After the
// final stage the task is either terminal or handed off to the merge
// reconciler. The worker only handles: claiming, the lease heartbeat, and
// abandoning the task when the lease is lost.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) error
}

// TaskRegistry is the subset of WorkerPool used by Worker for task
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastReclaimScan  time.Time      `json:"last_reclaim_scan"`
	LeasesReclaimed  int            `json:"leases_reclaimed"`
	TasksFailedStale int            `json:"tasks_failed_stale"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
