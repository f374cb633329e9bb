package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// runAnalysisStage analyzes every fetched media item with bounded
// parallelism. Items already analyzed (in either outcome) are skipped on
// rerun. The stage advances if at least one analysis is usable.
func (e *TaskExecutor) runAnalysisStage(ctx context.Context, t *ent.Task) (StageOutcome, error) {
	items, err := e.media.ListMediaItems(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}
	if len(items) == 0 {
		return StageFailed, fmt.Errorf("no media items to analyze")
	}

	prior, err := e.media.ListAnalyses(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}
	analyzed := make(map[string]bool, len(prior))
	succeeded := 0
	for _, a := range prior {
		analyzed[a.MediaItemID] = true
		if a.Status == materialanalysis.StatusCompleted {
			succeeded++
		}
	}

	total := len(items)
	done := len(analyzed)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.AnalysisParallelism)

	for _, item := range items {
		if analyzed[item.ID] {
			continue
		}
		g.Go(func() error {
			result, analyzeErr := e.analyzeOne(gctx, t, item)
			if analyzeErr != nil && gctx.Err() != nil {
				// Interrupted run, not an analysis verdict. Persisting a
				// failed row here would poison the rerun.
				return analyzeErr
			}
			failed := analyzeErr != nil
			if failed {
				result = &models.AnalysisResult{
					MediaItemID: item.ID,
					Description: fmt.Sprintf("analysis failed: %v", analyzeErr),
				}
			}
			if _, err := e.media.RecordAnalysis(gctx, t.ID, result, failed); err != nil {
				return fmt.Errorf("failed to record analysis: %w", err)
			}

			mu.Lock()
			done++
			if !failed {
				succeeded++
			}
			progress := stageProgress(progressFetched, progressAnalyzed, done, total)
			mu.Unlock()

			msg := fmt.Sprintf("analyzing %d/%d", done, total)
			if _, err := e.reportProgress(gctx, t.ID, progress, task.CurrentStageMaterialAnalysis, msg); err != nil {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return StageFailed, err
	}
	if succeeded == 0 {
		return StageFailed, fmt.Errorf("no media item could be analyzed")
	}

	applied, err := e.reportProgress(ctx, t.ID, progressAnalyzed, task.CurrentStageMaterialAnalysis,
		fmt.Sprintf("analyzed %d/%d", succeeded, total))
	if err != nil {
		return StageFailed, err
	}
	if !applied {
		return StageStalled, fmt.Errorf("progress update rejected")
	}

	return StageAdvanced, nil
}

func (e *TaskExecutor) analyzeOne(ctx context.Context, t *ent.Task, item *ent.MediaItem) (*models.AnalysisResult, error) {
	fetched := &models.FetchedMedia{
		OriginalURL: item.OriginalURL,
		LocalPath:   item.LocalPath,
		RemoteURL:   item.RemoteURL,
		MediaType:   models.MediaType(item.MediaType),
		FileSize:    item.FileSize,
		MimeType:    item.MimeType,
	}
	if item.Resolution != nil {
		fetched.Resolution = *item.Resolution
	}
	if item.DurationMs != nil {
		fetched.DurationMS = *item.DurationMs
	}

	var result *models.AnalysisResult
	err := withRetry(ctx, func(ctx context.Context) error {
		cctx, cancel := e.collaboratorCtx(ctx)
		defer cancel()

		var err error
		result, err = e.analyzer.Analyze(cctx, fetched, t.MediaMeta)
		return err
	})
	if err != nil {
		return nil, err
	}
	result.MediaItemID = item.ID
	return result, nil
}
