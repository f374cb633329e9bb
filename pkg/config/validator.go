package config

import (
	"errors"
	"fmt"
)

// validate performs validation on loaded configuration. All sections are
// checked so the operator sees every problem at once.
func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateQueue(cfg.Queue)...)
	errs = append(errs, validatePipeline(cfg.Pipeline)...)
	errs = append(errs, validatePoller(cfg.Poller)...)
	errs = append(errs, validateRetention(cfg.Retention)...)
	errs = append(errs, validateWorkspace(cfg.Workspace)...)
	errs = append(errs, validateStorage(cfg.Storage)...)

	return errors.Join(errs...)
}

func validateQueue(q *QueueConfig) []error {
	var errs []error
	if q.WorkerCount < 1 {
		errs = append(errs, NewValidationError("queue", "worker_count",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, q.WorkerCount)))
	}
	if q.MaxConcurrentTasks < 1 {
		errs = append(errs, NewValidationError("queue", "max_concurrent_tasks",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, q.MaxConcurrentTasks)))
	}
	if q.PollInterval <= 0 {
		errs = append(errs, NewValidationError("queue", "poll_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, q.PollInterval)))
	}
	if q.PollIntervalJitter < 0 || q.PollIntervalJitter >= q.PollInterval {
		errs = append(errs, NewValidationError("queue", "poll_interval_jitter",
			fmt.Errorf("%w: must be in [0, poll_interval), got %s", ErrInvalidValue, q.PollIntervalJitter)))
	}
	if q.LeaseTTL <= 0 {
		errs = append(errs, NewValidationError("queue", "lease_ttl",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, q.LeaseTTL)))
	}
	if q.LeaseReclaimInterval <= 0 {
		errs = append(errs, NewValidationError("queue", "lease_reclaim_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, q.LeaseReclaimInterval)))
	}
	if q.RetryBudget < 0 {
		errs = append(errs, NewValidationError("queue", "retry_budget",
			fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, q.RetryBudget)))
	}
	return errs
}

func validatePipeline(p *PipelineConfig) []error {
	var errs []error
	if p.VariantCountMax < 1 {
		errs = append(errs, NewValidationError("pipeline", "variant_count_max",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.VariantCountMax)))
	}
	if p.AnalysisParallelism < 1 {
		errs = append(errs, NewValidationError("pipeline", "analysis_parallelism",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.AnalysisParallelism)))
	}
	if p.ScriptParallelism < 1 {
		errs = append(errs, NewValidationError("pipeline", "script_parallelism",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.ScriptParallelism)))
	}
	if p.SubmitParallelism < 1 {
		errs = append(errs, NewValidationError("pipeline", "submit_parallelism",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.SubmitParallelism)))
	}
	if p.CollaboratorTimeout <= 0 {
		errs = append(errs, NewValidationError("pipeline", "collaborator_timeout",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, p.CollaboratorTimeout)))
	}
	if len(p.ScriptStyles) == 0 {
		errs = append(errs, NewValidationError("pipeline", "script_styles",
			fmt.Errorf("%w: must list at least one style", ErrInvalidValue)))
	}
	return errs
}

func validatePoller(p *PollerConfig) []error {
	var errs []error
	if p.PollInterval <= 0 {
		errs = append(errs, NewValidationError("poller", "poll_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, p.PollInterval)))
	}
	if p.BatchSize < 1 {
		errs = append(errs, NewValidationError("poller", "batch_size",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.BatchSize)))
	}
	if p.VideoMergeTimeout <= 0 {
		errs = append(errs, NewValidationError("poller", "video_merge_timeout",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, p.VideoMergeTimeout)))
	}
	if p.MaxConsecutiveErrors < 1 {
		errs = append(errs, NewValidationError("poller", "max_consecutive_errors",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, p.MaxConsecutiveErrors)))
	}
	switch p.SubtitleFailureMode {
	case SubtitleDegrade, SubtitleFail:
	default:
		errs = append(errs, NewValidationError("poller", "subtitle_failure_mode",
			fmt.Errorf("%w: must be %q or %q, got %q", ErrInvalidValue, SubtitleDegrade, SubtitleFail, p.SubtitleFailureMode)))
	}
	if p.SubtitleRenderTimeout <= 0 {
		errs = append(errs, NewValidationError("poller", "subtitle_render_timeout",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, p.SubtitleRenderTimeout)))
	}
	return errs
}

func validateRetention(r *RetentionConfig) []error {
	var errs []error
	if r.TaskRetentionDays < 1 {
		errs = append(errs, NewValidationError("retention", "task_retention_days",
			fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, r.TaskRetentionDays)))
	}
	if r.CleanupInterval <= 0 {
		errs = append(errs, NewValidationError("retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, r.CleanupInterval)))
	}
	if r.StuckThreshold <= 0 {
		errs = append(errs, NewValidationError("retention", "stuck_threshold",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, r.StuckThreshold)))
	}
	return errs
}

func validateWorkspace(w *WorkspaceConfig) []error {
	var errs []error
	if w.Root == "" {
		errs = append(errs, NewValidationError("workspace", "root",
			fmt.Errorf("%w: must not be empty", ErrInvalidValue)))
	}
	return errs
}

func validateStorage(st *StorageConfig) []error {
	var errs []error
	if st.Backend != "local" {
		errs = append(errs, NewValidationError("storage", "backend",
			fmt.Errorf("%w: unsupported backend %q", ErrInvalidValue, st.Backend)))
	}
	if st.LocalRoot == "" {
		errs = append(errs, NewValidationError("storage", "local_root",
			fmt.Errorf("%w: must not be empty", ErrInvalidValue)))
	}
	return errs
}
