package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are polled, claimed, leased, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tasks.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of concurrent tasks being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseTTL is the duration of a worker's claim on a task. The worker
	// refreshes the lease at LeaseTTL/3; an expired lease makes the task
	// eligible for reclamation.
	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// LeaseReclaimInterval is how often each pod scans for expired leases.
	LeaseReclaimInterval time.Duration `yaml:"lease_reclaim_interval"`

	// RetryBudget is how many times an expired-lease task may return to
	// pending before it is failed outright.
	RetryBudget int `yaml:"retry_budget"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to reach a safe point during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentTasks:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseTTL:                5 * time.Minute,
		LeaseReclaimInterval:    1 * time.Minute,
		RetryBudget:             3,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
