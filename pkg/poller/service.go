// Package poller reconciles in-flight external video-merge jobs with the
// database. It advances submitted sub-tasks through subtitle rendering to
// completion, enforces the merge wall-clock timeout, and settles the
// parent task once every variant is terminal.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/pipeline"
	"github.com/textloom/textloom/pkg/ports"
	"github.com/textloom/textloom/pkg/services"
)

const pollCallTimeout = 30 * time.Second

// Service is the periodic merge reconciler. All pods may run it; every
// write goes through the conditional-update primitive, so two pods racing
// on the same sub-task cannot corrupt it.
type Service struct {
	cfg       *config.PollerConfig
	tasks     *services.TaskService
	subTasks  *services.SubTaskService
	media     *services.MediaService
	merger    ports.VideoMerger
	subtitles ports.SubtitleRenderer

	cancel context.CancelFunc
	done   chan struct{}

	// Consecutive poll failures per sub-task; reset on any successful poll.
	mu           sync.Mutex
	pollFailures map[string]int
}

// NewService creates a new poller service.
func NewService(
	cfg *config.PollerConfig,
	tasks *services.TaskService,
	subTasks *services.SubTaskService,
	media *services.MediaService,
	merger ports.VideoMerger,
	subtitles ports.SubtitleRenderer,
) *Service {
	return &Service{
		cfg:          cfg,
		tasks:        tasks,
		subTasks:     subTasks,
		media:        media,
		merger:       merger,
		subtitles:    subtitles,
		pollFailures: make(map[string]int),
	}
}

// Start launches the background reconcile loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Merge poller started",
		"poll_interval", s.cfg.PollInterval,
		"batch_size", s.cfg.BatchSize,
		"merge_timeout", s.cfg.VideoMergeTimeout,
		"subtitle_failure_mode", s.cfg.SubtitleFailureMode)
}

// Stop signals the reconcile loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Merge poller stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(ctx)
		}
	}
}

// RunCycle reconciles one batch of submitted sub-tasks. A failure on one
// sub-task never blocks the rest of the batch.
func (s *Service) RunCycle(ctx context.Context) {
	batch, err := s.subTasks.ListAwaitingMerge(ctx, s.cfg.BatchSize)
	if err != nil {
		slog.Error("Poller: failed to list submitted sub-tasks", "error", err)
		return
	}

	for _, child := range batch {
		if ctx.Err() != nil {
			return
		}
		if err := s.reconcileOne(ctx, child); err != nil {
			slog.Error("Poller: reconcile failed",
				"sub_task_id", child.ID,
				"task_id", child.TaskID,
				"error", err)
		}
	}
}

// reconcileOne advances a single submitted sub-task one observation.
func (s *Service) reconcileOne(ctx context.Context, child *ent.SubVideoTask) error {
	// A row stuck in processing_subtitles means a previous subtitle pass
	// was interrupted; pick it up again.
	if child.Status == subvideotask.StatusProcessingSubtitles {
		return s.renderSubtitles(ctx, child)
	}

	if child.SubmittedAt != nil && time.Since(*child.SubmittedAt) > s.cfg.VideoMergeTimeout {
		return s.failChild(ctx, child, "merge timeout")
	}

	pollCtx, cancel := context.WithTimeout(ctx, pollCallTimeout)
	result, err := s.merger.Poll(pollCtx, *child.ExternalMergeID)
	cancel()
	if err != nil {
		failures := s.recordPollFailure(child.ID)
		slog.Warn("Poller: merge status query failed",
			"sub_task_id", child.ID,
			"external_merge_id", *child.ExternalMergeID,
			"consecutive_failures", failures,
			"error", err)
		if failures >= s.cfg.MaxConsecutiveErrors {
			return s.failChild(ctx, child, "merge unreachable")
		}
		return nil
	}
	s.clearPollFailures(child.ID)

	switch result.State {
	case models.MergeQueued, models.MergeProcessing:
		return nil

	case models.MergeFailed:
		msg := result.ErrorMessage
		if msg == "" {
			msg = "merge service reported failure"
		}
		return s.failChild(ctx, child, msg)

	case models.MergeCompleted:
		status := string(subvideotask.StatusProcessingSubtitles)
		progress := 85
		upd := models.SubTaskUpdate{
			Status:   &status,
			Progress: &progress,
		}
		if result.VideoURL != "" {
			upd.VideoURL = &result.VideoURL
		}
		if result.ThumbnailURL != "" {
			upd.ThumbnailURL = &result.ThumbnailURL
		}
		if result.DurationMS > 0 {
			upd.DurationMS = &result.DurationMS
		}
		outcome, err := s.subTasks.ApplySubTaskUpdate(ctx, child.ID, upd)
		if err != nil {
			return err
		}
		if outcome != models.UpdateApplied {
			// Another pod got here first.
			return nil
		}
		refreshed, err := s.subTasks.GetSubTask(ctx, child.ID)
		if err != nil {
			return err
		}
		return s.renderSubtitles(ctx, refreshed)

	default:
		return fmt.Errorf("unknown merge state %q", result.State)
	}
}

// renderSubtitles burns subtitles into the merged video and completes the
// sub-task. In degrade mode a render failure still completes the variant
// with the raw video and a warning; in fail mode it fails the variant.
func (s *Service) renderSubtitles(ctx context.Context, child *ent.SubVideoTask) error {
	videoURL := ""
	if child.VideoURL != nil {
		videoURL = *child.VideoURL
	}

	script, renderErr := s.scriptFor(ctx, child.ID)
	var subtitledURL string
	if renderErr == nil {
		renderCtx, cancel := context.WithTimeout(ctx, s.cfg.SubtitleRenderTimeout)
		subtitledURL, renderErr = s.subtitles.Render(renderCtx, videoURL, script)
		cancel()
	}

	if renderErr != nil {
		if s.cfg.SubtitleFailureMode == config.SubtitleFail {
			return s.failChild(ctx, child, fmt.Sprintf("subtitle render failed: %v", renderErr))
		}
		slog.Warn("Poller: subtitle render failed, completing with raw video",
			"sub_task_id", child.ID,
			"error", renderErr)
		note := fmt.Sprintf("subtitle render failed: %v", renderErr)
		return s.completeChild(ctx, child, "", &note)
	}

	return s.completeChild(ctx, child, subtitledURL, nil)
}

// scriptFor reloads the variant's generated script for subtitle rendering.
func (s *Service) scriptFor(ctx context.Context, subTaskID string) (*models.GeneratedScript, error) {
	sc, err := s.media.GetScriptBySubTask(ctx, subTaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	script := &models.GeneratedScript{
		Style:              sc.Style,
		Titles:             sc.Titles,
		WordCount:          sc.WordCount,
		EstimatedDurationS: sc.EstimatedDurationS,
	}
	for _, raw := range sc.Scenes {
		scene := models.Scene{}
		if text, ok := raw["text"].(string); ok {
			scene.Text = text
		}
		switch d := raw["duration_s"].(type) {
		case float64:
			scene.DurationS = int(d)
		case int:
			scene.DurationS = d
		}
		if ids, ok := raw["media_item_ids"].([]any); ok {
			for _, id := range ids {
				if str, ok := id.(string); ok {
					scene.MediaItemIDs = append(scene.MediaItemIDs, str)
				}
			}
		}
		script.Scenes = append(script.Scenes, scene)
	}
	return script, nil
}

// completeChild marks a variant completed. A non-empty subtitledURL
// replaces the raw video URL.
func (s *Service) completeChild(ctx context.Context, child *ent.SubVideoTask, subtitledURL string, note *string) error {
	status := string(subvideotask.StatusCompleted)
	progress := 100
	upd := models.SubTaskUpdate{
		Status:       &status,
		Progress:     &progress,
		ErrorMessage: note,
	}
	if subtitledURL != "" {
		upd.VideoURL = &subtitledURL
	}
	if _, err := s.subTasks.ApplySubTaskUpdate(ctx, child.ID, upd); err != nil {
		return err
	}
	s.clearPollFailures(child.ID)
	return s.maybeFinalizeParent(ctx, child.TaskID)
}

// failChild marks a variant failed and settles the parent if this was the
// last live variant. A settled variant drops out of the failure counter so
// the map does not grow with dead entries.
func (s *Service) failChild(ctx context.Context, child *ent.SubVideoTask, msg string) error {
	status := string(subvideotask.StatusFailed)
	upd := models.SubTaskUpdate{
		Status:       &status,
		ErrorMessage: &msg,
	}
	if _, err := s.subTasks.ApplySubTaskUpdate(ctx, child.ID, upd); err != nil {
		return err
	}
	s.clearPollFailures(child.ID)
	return s.maybeFinalizeParent(ctx, child.TaskID)
}

// maybeFinalizeParent settles the parent task when its whole variant set
// is terminal.
func (s *Service) maybeFinalizeParent(ctx context.Context, taskID string) error {
	children, err := s.subTasks.ChildrenOf(ctx, taskID)
	if err != nil {
		return err
	}
	for _, c := range children {
		if !services.IsTerminalSubTaskStatus(c.Status) {
			return nil
		}
	}

	outcome, err := pipeline.FinalizeParent(ctx, s.tasks, taskID, children)
	if err != nil {
		return fmt.Errorf("parent aggregation failed: %w", err)
	}
	if outcome == models.UpdateApplied {
		slog.Info("Parent task settled", "task_id", taskID)
	}
	return nil
}

func (s *Service) recordPollFailure(subTaskID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pollFailures[subTaskID]++
	return s.pollFailures[subTaskID]
}

func (s *Service) clearPollFailures(subTaskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pollFailures, subTaskID)
}
