package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// runFetchStage downloads every source URL into the task workspace, uploads
// each asset to durable storage, and records a MediaItem per success.
// Already-fetched URLs are skipped, so a rerun after a crash resumes where
// the previous attempt stopped. The stage advances if at least one URL
// succeeded; per-URL failures are noted on the task and do not stop the
// others.
func (e *TaskExecutor) runFetchStage(ctx context.Context, t *ent.Task) (StageOutcome, error) {
	existing, err := e.media.ListMediaItems(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}
	fetched := make(map[string]bool, len(existing))
	for _, item := range existing {
		fetched[item.OriginalURL] = true
	}

	total := len(t.MediaUrls)
	succeeded := len(fetched)
	var failures []string

	for _, rawURL := range t.MediaUrls {
		if fetched[rawURL] {
			continue
		}

		msg := fmt.Sprintf("fetching %d/%d", succeeded+len(failures)+1, total)
		applied, err := e.reportProgress(ctx, t.ID, stageProgress(0, progressFetched, succeeded, total),
			task.CurrentStageMaterialProcessing, msg)
		if err != nil {
			return StageFailed, err
		}
		if !applied {
			return StageStalled, fmt.Errorf("progress update rejected")
		}

		media, err := e.fetchOne(ctx, t, rawURL)
		if err != nil {
			if ctx.Err() != nil {
				// Interrupted run; leave no failure note behind.
				return StageFailed, err
			}
			failures = append(failures, fmt.Sprintf("%s: %v", rawURL, err))
			continue
		}

		if _, err := e.media.UpsertMediaItem(ctx, t.ID, media); err != nil {
			return StageFailed, fmt.Errorf("failed to persist media item: %w", err)
		}
		succeeded++
	}

	if len(failures) > 0 {
		note := "some media could not be fetched: " + strings.Join(failures, "; ")
		if _, err := e.tasks.ApplyTaskUpdate(ctx, t.ID, models.TaskUpdate{ErrorMessage: &note}); err != nil {
			return StageFailed, err
		}
	}
	if succeeded == 0 {
		return StageFailed, fmt.Errorf("no media could be fetched: %s", strings.Join(failures, "; "))
	}

	msg := fmt.Sprintf("fetched %d/%d", succeeded, total)
	applied, err := e.reportProgress(ctx, t.ID, progressFetched, task.CurrentStageMaterialProcessing, msg)
	if err != nil {
		return StageFailed, err
	}
	if !applied {
		return StageStalled, fmt.Errorf("progress update rejected")
	}

	return StageAdvanced, nil
}

// fetchOne downloads a single URL and uploads the artifact to durable
// storage, with retries for transient failures.
func (e *TaskExecutor) fetchOne(ctx context.Context, t *ent.Task, rawURL string) (*models.FetchedMedia, error) {
	var media *models.FetchedMedia
	err := withRetry(ctx, func(ctx context.Context) error {
		cctx, cancel := e.collaboratorCtx(ctx)
		defer cancel()

		var err error
		media, err = e.fetcher.Fetch(cctx, rawURL, t.WorkspaceDir, t.MediaMeta)
		return err
	})
	if err != nil {
		return nil, err
	}

	if media.RemoteURL == "" {
		key := t.ID + "/" + filepath.Base(media.LocalPath)
		err := withRetry(ctx, func(ctx context.Context) error {
			cctx, cancel := e.collaboratorCtx(ctx)
			defer cancel()

			remote, err := e.uploader.Upload(cctx, media.LocalPath, key)
			if err != nil {
				return err
			}
			media.RemoteURL = remote
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("upload failed: %w", err)
		}
	}

	return media, nil
}

// stageProgress interpolates a task's progress inside the [from, to) band
// of the current stage.
func stageProgress(from, to, done, total int) int {
	if total <= 0 {
		return from
	}
	return from + (to-from)*done/total
}
