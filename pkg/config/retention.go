package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TaskRetentionDays is how many days to keep terminal tasks before
	// soft-deleting them (setting deleted_at) and scrubbing workspaces.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// StuckThreshold is how long a processing task may go without an
	// updated_at change before it is logged for operator attention.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 30,
		CleanupInterval:   12 * time.Hour,
		StuckThreshold:    30 * time.Minute,
	}
}
