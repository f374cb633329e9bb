package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

// runScriptStage generates a script per variant with bounded parallelism.
// Variants already past pending are skipped on rerun. Each success persists
// the script and the merge payload before the variant is marked ready, so
// submission never runs ahead of durable script state. The stage advances
// if at least one variant reaches script_ready.
func (e *TaskExecutor) runScriptStage(ctx context.Context, t *ent.Task) (StageOutcome, error) {
	children, err := e.subTasks.ChildrenOf(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}

	analyses, err := e.media.ListCompletedAnalyses(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}
	analysisResults := make([]*models.AnalysisResult, 0, len(analyses))
	for _, a := range analyses {
		r := &models.AnalysisResult{
			MediaItemID: a.MediaItemID,
			Description: a.Description,
			Tags:        a.Tags,
		}
		if a.Theme != nil {
			r.Theme = *a.Theme
		}
		if a.QualityScore != nil {
			r.QualityScore = *a.QualityScore
		}
		analysisResults = append(analysisResults, r)
	}

	mediaItems, err := e.media.ListMediaItems(ctx, t.ID)
	if err != nil {
		return StageFailed, err
	}

	total := len(children)
	var mu sync.Mutex
	done, ready := 0, 0
	for _, c := range children {
		// Rerun after a reclaim: count variants the previous attempt
		// already settled. A variant stuck in script_generating is redone.
		if !needsScript(c.Status) {
			done++
			if c.Status != subvideotask.StatusScriptFailed {
				ready++
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.ScriptParallelism)

	for _, child := range children {
		if !needsScript(child.Status) {
			continue
		}
		g.Go(func() error {
			ok, err := e.scriptOne(gctx, t, child, analysisResults, mediaItems)
			if err != nil {
				return err
			}

			mu.Lock()
			done++
			if ok {
				ready++
			}
			progress := stageProgress(progressFannedOut, progressScripted, done, total)
			mu.Unlock()

			msg := fmt.Sprintf("scripted %d/%d", done, total)
			if _, err := e.reportProgress(gctx, t.ID, progress, task.CurrentStageScriptGeneration, msg); err != nil {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return StageFailed, err
	}
	if ready == 0 {
		return StageFailed, fmt.Errorf("all variants failed at script generation")
	}

	return StageAdvanced, nil
}

func needsScript(status subvideotask.Status) bool {
	return status == subvideotask.StatusPending || status == subvideotask.StatusScriptGenerating
}

// scriptOne drives one variant from pending to script_ready or
// script_failed. Returns whether the variant is ready for submission.
func (e *TaskExecutor) scriptOne(ctx context.Context, t *ent.Task, child *ent.SubVideoTask, analyses []*models.AnalysisResult, mediaItems []*ent.MediaItem) (bool, error) {
	if child.Status == subvideotask.StatusPending {
		generating := string(subvideotask.StatusScriptGenerating)
		genProgress := childProgressScripting
		outcome, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
			Status:   &generating,
			Progress: &genProgress,
		})
		if err != nil {
			return false, err
		}
		if outcome != models.UpdateApplied {
			// Another worker settled this variant already.
			return false, nil
		}
	}

	var script *models.GeneratedScript
	genErr := withRetry(ctx, func(ctx context.Context) error {
		cctx, cancel := e.collaboratorCtx(ctx)
		defer cancel()

		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		var err error
		script, err = e.generator.GenerateScript(cctx, &ports.ScriptRequest{
			TaskID:       t.ID,
			Title:        t.Title,
			Description:  desc,
			Mode:         string(t.Mode),
			Style:        child.ScriptStyle,
			VariantIndex: child.VariantIndex,
			Analyses:     analyses,
		})
		return err
	})

	settled := childProgressScriptDone
	if genErr != nil {
		if ctx.Err() != nil {
			// Interrupted run; the variant stays in script_generating for
			// the next attempt instead of settling script_failed.
			return false, genErr
		}
		failedStatus := string(subvideotask.StatusScriptFailed)
		errMsg := genErr.Error()
		if _, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
			Status:       &failedStatus,
			Progress:     &settled,
			ErrorMessage: &errMsg,
		}); err != nil {
			return false, err
		}
		return false, nil
	}

	saved, err := e.media.SaveScript(ctx, child.ID, script)
	if err != nil {
		return false, fmt.Errorf("failed to save script: %w", err)
	}

	readyStatus := string(subvideotask.StatusScriptReady)
	payload := buildMergePayload(t, child, script, mediaItems)
	if _, err := e.subTasks.ApplySubTaskUpdate(ctx, child.ID, models.SubTaskUpdate{
		Status:        &readyStatus,
		Progress:      &settled,
		ScriptID:      &saved.ID,
		ScriptPayload: payload,
	}); err != nil {
		return false, err
	}

	return true, nil
}

// buildMergePayload assembles the merge-service submission for one variant.
// It is persisted on the sub-task row before submit so a rerun resubmits
// the exact same request.
func buildMergePayload(t *ent.Task, child *ent.SubVideoTask, script *models.GeneratedScript, mediaItems []*ent.MediaItem) map[string]any {
	media := make([]map[string]any, 0, len(mediaItems))
	for _, item := range mediaItems {
		media = append(media, map[string]any{
			"media_item_id": item.ID,
			"remote_url":    item.RemoteURL,
			"media_type":    string(item.MediaType),
		})
	}

	return map[string]any{
		"task_id":       t.ID,
		"sub_task_id":   child.ID,
		"variant_index": child.VariantIndex,
		"mode":          string(t.Mode),
		"style":         script.Style,
		"titles":        script.Titles,
		"scenes":        script.SceneMaps(),
		"media":         media,
	}
}
