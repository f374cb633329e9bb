package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/pkg/models"
)

// MediaService manages fetched media, analyses, and generated scripts.
// All three tables are append-only; writes are idempotent so stage reruns
// after a lease reclaim never duplicate rows.
type MediaService struct {
	client *ent.Client
}

// NewMediaService creates a new MediaService
func NewMediaService(client *ent.Client) *MediaService {
	return &MediaService{client: client}
}

// UpsertMediaItem records a fetched asset. Re-fetching the same URL for the
// same task returns the existing row.
func (s *MediaService) UpsertMediaItem(ctx context.Context, taskID string, media *models.FetchedMedia) (*ent.MediaItem, error) {
	if media.OriginalURL == "" {
		return nil, NewValidationError("original_url", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.MediaItem.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetOriginalURL(media.OriginalURL).
		SetLocalPath(media.LocalPath).
		SetRemoteURL(media.RemoteURL).
		SetMediaType(mediaitem.MediaType(media.MediaType)).
		SetFileSize(media.FileSize).
		SetMimeType(media.MimeType)

	if media.Resolution != "" {
		builder.SetResolution(media.Resolution)
	}
	if media.DurationMS > 0 {
		builder.SetDurationMs(media.DurationMS)
	}

	item, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already fetched for this task; return the existing row.
			return s.getMediaItemByURL(writeCtx, taskID, media.OriginalURL)
		}
		return nil, fmt.Errorf("failed to create media item: %w", err)
	}

	return item, nil
}

func (s *MediaService) getMediaItemByURL(ctx context.Context, taskID, originalURL string) (*ent.MediaItem, error) {
	item, err := s.client.MediaItem.Query().
		Where(
			mediaitem.TaskIDEQ(taskID),
			mediaitem.OriginalURLEQ(originalURL),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing media item: %w", err)
	}
	return item, nil
}

// ListMediaItems lists a task's fetched media in fetch order
func (s *MediaService) ListMediaItems(ctx context.Context, taskID string) ([]*ent.MediaItem, error) {
	items, err := s.client.MediaItem.Query().
		Where(mediaitem.TaskIDEQ(taskID)).
		Order(ent.Asc(mediaitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	return items, nil
}

// RecordAnalysis persists one analysis result. Re-analyzing the same media
// item for the same task returns the existing row.
func (s *MediaService) RecordAnalysis(ctx context.Context, taskID string, result *models.AnalysisResult, failed bool) (*ent.MaterialAnalysis, error) {
	if result.MediaItemID == "" {
		return nil, NewValidationError("media_item_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.MaterialAnalysis.Query().
		Where(
			materialanalysis.TaskIDEQ(taskID),
			materialanalysis.MediaItemIDEQ(result.MediaItemID),
		).
		First(writeCtx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query existing analysis: %w", err)
	}

	status := materialanalysis.StatusCompleted
	if failed {
		status = materialanalysis.StatusFailed
	}

	builder := s.client.MaterialAnalysis.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetMediaItemID(result.MediaItemID).
		SetDescription(result.Description).
		SetStatus(status)

	if len(result.Tags) > 0 {
		builder.SetTags(result.Tags)
	}
	if result.Theme != "" {
		builder.SetTheme(result.Theme)
	}
	if result.QualityScore > 0 {
		builder.SetQualityScore(result.QualityScore)
	}

	analysis, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record analysis: %w", err)
	}

	return analysis, nil
}

// ListAnalyses lists every analysis row for a task, failed ones included.
// Stage reruns use this to skip items that were already attempted.
func (s *MediaService) ListAnalyses(ctx context.Context, taskID string) ([]*ent.MaterialAnalysis, error) {
	analyses, err := s.client.MaterialAnalysis.Query().
		Where(materialanalysis.TaskIDEQ(taskID)).
		Order(ent.Asc(materialanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// ListCompletedAnalyses lists only the analyses usable as script input
func (s *MediaService) ListCompletedAnalyses(ctx context.Context, taskID string) ([]*ent.MaterialAnalysis, error) {
	analyses, err := s.client.MaterialAnalysis.Query().
		Where(
			materialanalysis.TaskIDEQ(taskID),
			materialanalysis.StatusEQ(materialanalysis.StatusCompleted),
		).
		Order(ent.Asc(materialanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed analyses: %w", err)
	}
	return analyses, nil
}

// SaveScript persists a generated script for a sub-task. A second save for
// the same sub-task returns the existing row.
func (s *MediaService) SaveScript(ctx context.Context, subTaskID string, script *models.GeneratedScript) (*ent.ScriptContent, error) {
	if len(script.Scenes) == 0 {
		return nil, NewValidationError("scenes", "script must contain at least one scene")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sc, err := s.client.ScriptContent.Create().
		SetID(uuid.New().String()).
		SetSubTaskID(subTaskID).
		SetStyle(script.Style).
		SetTitles(script.Titles).
		SetWordCount(script.WordCount).
		SetSceneCount(len(script.Scenes)).
		SetEstimatedDurationS(script.EstimatedDurationS).
		SetScenes(script.SceneMaps()).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.GetScriptBySubTask(writeCtx, subTaskID)
		}
		return nil, fmt.Errorf("failed to save script: %w", err)
	}

	return sc, nil
}

// GetScriptBySubTask retrieves the script generated for a sub-task
func (s *MediaService) GetScriptBySubTask(ctx context.Context, subTaskID string) (*ent.ScriptContent, error) {
	sc, err := s.client.ScriptContent.Query().
		Where(scriptcontent.SubTaskIDEQ(subTaskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	return sc, nil
}
