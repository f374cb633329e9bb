package config

import "time"

// SubtitleFailureMode controls how a subtitle render failure affects an
// otherwise finished sub-task.
type SubtitleFailureMode string

// Subtitle failure modes.
const (
	// SubtitleDegrade keeps the raw video and completes the sub-task with a
	// warning recorded in error_message.
	SubtitleDegrade SubtitleFailureMode = "degrade"

	// SubtitleFail fails the sub-task when subtitles cannot be rendered.
	SubtitleFail SubtitleFailureMode = "fail"
)

// PollerConfig controls the video-merge reconciler.
type PollerConfig struct {
	// PollInterval is how often the reconciler scans submitted sub-tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// BatchSize is the maximum sub-tasks reconciled per cycle.
	BatchSize int `yaml:"batch_size"`

	// VideoMergeTimeout is the wall-clock budget for an external merge job,
	// measured from submitted_at.
	VideoMergeTimeout time.Duration `yaml:"video_merge_timeout"`

	// MaxConsecutiveErrors is how many poll attempts may fail in a row
	// before the sub-task is failed as unreachable.
	MaxConsecutiveErrors int `yaml:"max_consecutive_errors"`

	// SubtitleFailureMode selects degrade-or-fail semantics for subtitle
	// render failures.
	SubtitleFailureMode SubtitleFailureMode `yaml:"subtitle_failure_mode"`

	// SubtitleRenderTimeout bounds one subtitle render call. Renders burn
	// text into video and run much longer than a status poll, so they get
	// their own budget.
	SubtitleRenderTimeout time.Duration `yaml:"subtitle_render_timeout"`
}

// DefaultPollerConfig returns the built-in poller defaults.
func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		PollInterval:          60 * time.Second,
		BatchSize:             50,
		VideoMergeTimeout:     30 * time.Minute,
		MaxConsecutiveErrors:  5,
		SubtitleFailureMode:   SubtitleDegrade,
		SubtitleRenderTimeout: 5 * time.Minute,
	}
}
