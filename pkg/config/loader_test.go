package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textloom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentTasks)
	assert.Equal(t, 5*time.Minute, cfg.Queue.LeaseTTL)
	assert.Equal(t, 3, cfg.Queue.RetryBudget)
	assert.Equal(t, 5, cfg.Pipeline.VariantCountMax)
	assert.Equal(t, 4, cfg.Pipeline.AnalysisParallelism)
	assert.Equal(t, 3, cfg.Pipeline.ScriptParallelism)
	assert.Equal(t, 3, cfg.Pipeline.SubmitParallelism)
	assert.Equal(t, 60*time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, 50, cfg.Poller.BatchSize)
	assert.Equal(t, 30*time.Minute, cfg.Poller.VideoMergeTimeout)
	assert.Equal(t, 5, cfg.Poller.MaxConsecutiveErrors)
	assert.Equal(t, SubtitleDegrade, cfg.Poller.SubtitleFailureMode)
	assert.Equal(t, 5*time.Minute, cfg.Poller.SubtitleRenderTimeout)
	assert.Equal(t, 30, cfg.Retention.TaskRetentionDays)
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultQueueConfig().WorkerCount, cfg.Queue.WorkerCount)
}

func TestInitialize_UserOverridesMergeWithDefaults(t *testing.T) {
	path := writeConfigFile(t, `
queue:
  worker_count: 8
  lease_ttl: 10m
poller:
  subtitle_failure_mode: fail
pipeline:
  variant_count_max: 2
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.LeaseTTL)
	assert.Equal(t, SubtitleFail, cfg.Poller.SubtitleFailureMode)
	assert.Equal(t, 2, cfg.Pipeline.VariantCountMax)

	// Unset values keep defaults
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentTasks)
	assert.Equal(t, 50, cfg.Poller.BatchSize)
	assert.Equal(t, 4, cfg.Pipeline.AnalysisParallelism)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEXTLOOM_WORKSPACE_ROOT", "/data/workspaces")

	path := writeConfigFile(t, `
workspace:
  root: "{{.TEXTLOOM_WORKSPACE_ROOT}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/data/workspaces", cfg.Workspace.Root)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "queue: [not a mapping")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
queue:
  worker_count: -1
poller:
  subtitle_failure_mode: explode
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "worker_count")
	assert.Contains(t, err.Error(), "subtitle_failure_mode")
}
