package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
)

// reclaimState tracks lease reclamation metrics (thread-safe).
type reclaimState struct {
	mu               sync.Mutex
	lastScan         time.Time
	leasesReclaimed  int
	tasksFailedStale int
}

// runLeaseReclamation periodically requeues tasks whose lease holder died.
// All pods run this independently — the reclaim is transactional and
// idempotent.
func (p *WorkerPool) runLeaseReclamation(ctx context.Context) {
	ticker := time.NewTicker(p.config.LeaseReclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			requeued, failed, err := p.tasks.ReclaimExpiredLeases(ctx, p.config.RetryBudget)
			if err != nil {
				slog.Error("Lease reclamation failed", "error", err)
				continue
			}
			if requeued > 0 || failed > 0 {
				slog.Warn("Reclaimed expired task leases",
					"requeued", requeued,
					"failed", failed)
			}

			p.reclaim.mu.Lock()
			p.reclaim.lastScan = time.Now()
			p.reclaim.leasesReclaimed += requeued
			p.reclaim.tasksFailedStale += failed
			p.reclaim.mu.Unlock()
		}
	}
}

// RequeueStartupOrphans performs a one-time recovery of tasks owned by this
// pod that were mid-flight when the pod previously crashed. Processing
// tasks go back to pending for a fresh claim; cancelling tasks are
// finalized as cancelled. Called once during startup, before the worker
// pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusIn(task.StatusProcessing, task.StatusCancelling),
			task.PodIDEQ(podID),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, t := range orphans {
		var err error
		if t.Status == task.StatusCancelling {
			err = t.Update().
				SetStatus(task.StatusCancelled).
				SetCompletedAt(now).
				SetUpdatedAt(now).
				ClearPodID().
				ClearLeaseExpiresAt().
				Exec(ctx)
		} else {
			err = t.Update().
				SetStatus(task.StatusPending).
				SetProgress(0).
				SetAttempts(t.Attempts + 1).
				SetUpdatedAt(now).
				ClearPodID().
				ClearLeaseExpiresAt().
				ClearCurrentStage().
				ClearStageMessage().
				Exec(ctx)
		}
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan requeued", "task_id", t.ID, "status", t.Status)
	}

	return nil
}
