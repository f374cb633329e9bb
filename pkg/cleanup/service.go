// Package cleanup provides data retention and housekeeping services.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal tasks past the retention window and removes
//     their workspace directories
//   - Logs live tasks that have not progressed within the stuck threshold
//     for operator attention (they are never auto-failed)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	workspaceRoot string
	taskService   *services.TaskService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	workspaceRoot string,
	taskService *services.TaskService,
) *Service {
	return &Service{
		config:        cfg,
		workspaceRoot: workspaceRoot,
		taskService:   taskService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"stuck_threshold", s.config.StuckThreshold,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.expireOldTasks(ctx)
	s.reportStuckTasks(ctx)
}

// expireOldTasks soft-deletes expired terminal tasks and scrubs their
// workspace directories.
func (s *Service) expireOldTasks(_ context.Context) {
	expired, err := s.taskService.SoftDeleteExpiredTasks(context.Background(), s.config.TaskRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete tasks failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	slog.Info("Retention: soft-deleted expired tasks", "count", len(expired))

	for _, t := range expired {
		if err := s.removeWorkspace(t.WorkspaceDir); err != nil {
			slog.Error("Retention: workspace removal failed",
				"task_id", t.ID,
				"workspace_dir", t.WorkspaceDir,
				"error", err)
		}
	}
}

// removeWorkspace deletes a task workspace directory. The path must live
// under the configured workspace root; anything else is refused.
func (s *Service) removeWorkspace(dir string) error {
	if dir == "" {
		return nil
	}

	root, err := filepath.Abs(s.workspaceRoot)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if abs == root || !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		slog.Warn("Retention: refusing to remove path outside workspace root",
			"path", abs,
			"root", root)
		return nil
	}

	return os.RemoveAll(abs)
}

// reportStuckTasks logs live tasks with no recent updates.
func (s *Service) reportStuckTasks(_ context.Context) {
	stuck, err := s.taskService.FindStuckTasks(context.Background(), s.config.StuckThreshold)
	if err != nil {
		slog.Error("Stuck detection failed", "error", err)
		return
	}

	for _, t := range stuck {
		podID := ""
		if t.PodID != nil {
			podID = *t.PodID
		}
		slog.Warn("Task appears stuck",
			"task_id", t.ID,
			"status", t.Status,
			"current_stage", t.CurrentStage,
			"pod_id", podID,
			"updated_at", t.UpdatedAt.Format(time.RFC3339))
	}
}
