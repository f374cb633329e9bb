package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func TestMediaService_UpsertMediaItem(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMediaService(client.Client)
	ctx := context.Background()

	parent := newParentTask(t, client.Client)

	fetched := &models.FetchedMedia{
		OriginalURL: "https://cdn.example.com/brief.md",
		LocalPath:   "/tmp/ws/brief.md",
		RemoteURL:   "http://localhost:8080/static/brief.md",
		MediaType:   models.MediaMarkdown,
		FileSize:    2048,
		MimeType:    "text/markdown",
	}

	t.Run("first fetch creates a row", func(t *testing.T) {
		item, err := service.UpsertMediaItem(ctx, parent.ID, fetched)
		require.NoError(t, err)
		assert.Equal(t, fetched.OriginalURL, item.OriginalURL)
		assert.Equal(t, int64(2048), item.FileSize)
	})

	t.Run("re-fetch returns the existing row", func(t *testing.T) {
		first, err := service.UpsertMediaItem(ctx, parent.ID, fetched)
		require.NoError(t, err)

		again := *fetched
		again.FileSize = 4096 // re-download may differ; original row wins
		second, err := service.UpsertMediaItem(ctx, parent.ID, &again)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, int64(2048), second.FileSize)

		items, err := service.ListMediaItems(ctx, parent.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("same url on another task is a separate row", func(t *testing.T) {
		other := newParentTask(t, client.Client)
		item, err := service.UpsertMediaItem(ctx, other.ID, fetched)
		require.NoError(t, err)
		assert.Equal(t, other.ID, item.TaskID)
	})

	t.Run("requires original_url", func(t *testing.T) {
		_, err := service.UpsertMediaItem(ctx, parent.ID, &models.FetchedMedia{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMediaService_RecordAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMediaService(client.Client)
	ctx := context.Background()

	parent := newParentTask(t, client.Client)
	item, err := service.UpsertMediaItem(ctx, parent.ID, &models.FetchedMedia{
		OriginalURL: "https://cdn.example.com/hero.png",
		LocalPath:   "/tmp/ws/hero.png",
		MediaType:   models.MediaImage,
		FileSize:    1,
		MimeType:    "image/png",
	})
	require.NoError(t, err)

	t.Run("records and deduplicates", func(t *testing.T) {
		first, err := service.RecordAnalysis(ctx, parent.ID, &models.AnalysisResult{
			MediaItemID:  item.ID,
			Description:  "Product hero shot on white background",
			Tags:         []string{"product", "studio"},
			QualityScore: 0.9,
		}, false)
		require.NoError(t, err)
		assert.Equal(t, materialanalysis.StatusCompleted, first.Status)

		second, err := service.RecordAnalysis(ctx, parent.ID, &models.AnalysisResult{
			MediaItemID: item.ID,
			Description: "different text on rerun",
		}, false)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Description, second.Description)
	})

	t.Run("failed analyses are excluded from script input", func(t *testing.T) {
		broken, err := service.UpsertMediaItem(ctx, parent.ID, &models.FetchedMedia{
			OriginalURL: "https://cdn.example.com/corrupt.mp4",
			LocalPath:   "/tmp/ws/corrupt.mp4",
			MediaType:   models.MediaVideo,
			FileSize:    1,
			MimeType:    "video/mp4",
		})
		require.NoError(t, err)

		_, err = service.RecordAnalysis(ctx, parent.ID, &models.AnalysisResult{
			MediaItemID: broken.ID,
			Description: "analysis failed: unreadable container",
		}, true)
		require.NoError(t, err)

		all, err := service.ListAnalyses(ctx, parent.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		completed, err := service.ListCompletedAnalyses(ctx, parent.ID)
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, item.ID, completed[0].MediaItemID)
	})
}

func TestMediaService_SaveScript(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMediaService(client.Client)
	subTasks := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := newParentTask(t, client.Client)
	subs, err := subTasks.CreateSubTasks(ctx, parent.ID, 1, "energetic", nil)
	require.NoError(t, err)

	script := &models.GeneratedScript{
		Style:              "energetic",
		Titles:             []string{"Launch day!", "It's here"},
		WordCount:          120,
		EstimatedDurationS: 30,
		Scenes: []models.Scene{
			{Text: "Opening hook", DurationS: 10, MediaItemIDs: []string{"m1"}},
			{Text: "Feature reveal", DurationS: 20, MediaItemIDs: []string{"m1", "m2"}},
		},
	}

	t.Run("persists scenes as JSON", func(t *testing.T) {
		saved, err := service.SaveScript(ctx, subs[0].ID, script)
		require.NoError(t, err)
		assert.Equal(t, 2, saved.SceneCount)
		assert.Equal(t, 120, saved.WordCount)
		require.Len(t, saved.Scenes, 2)
		assert.Equal(t, "Opening hook", saved.Scenes[0]["text"])
	})

	t.Run("second save returns the existing script", func(t *testing.T) {
		first, err := service.GetScriptBySubTask(ctx, subs[0].ID)
		require.NoError(t, err)

		saved, err := service.SaveScript(ctx, subs[0].ID, script)
		require.NoError(t, err)
		assert.Equal(t, first.ID, saved.ID)
	})

	t.Run("rejects empty scripts", func(t *testing.T) {
		_, err := service.SaveScript(ctx, subs[0].ID, &models.GeneratedScript{Style: "energetic"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown sub-task has no script", func(t *testing.T) {
		_, err := service.GetScriptBySubTask(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
