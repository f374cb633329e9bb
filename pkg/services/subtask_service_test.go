package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func newParentTask(t *testing.T, client *ent.Client) *ent.Task {
	t.Helper()
	svc := NewTaskService(client, 5, t.TempDir())
	req := validCreateRequest()
	req.VariantCount = 3
	created, err := svc.CreateTask(context.Background(), req)
	require.NoError(t, err)
	return created
}

func setSubStatus(t *testing.T, client *ent.Client, subTaskID string, status subvideotask.Status, mutate func(*ent.SubVideoTaskUpdateOne)) {
	t.Helper()
	mut := client.SubVideoTask.UpdateOneID(subTaskID).SetStatus(status)
	if mutate != nil {
		mutate(mut)
	}
	require.NoError(t, mut.Exec(context.Background()))
}

func TestSubTaskService_CreateSubTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubTaskService(client.Client)
	ctx := context.Background()

	t.Run("fans out with style rotation", func(t *testing.T) {
		parent := newParentTask(t, client.Client)

		subs, err := service.CreateSubTasks(ctx, parent.ID, 3, "energetic", []string{"narrative", "humorous"})
		require.NoError(t, err)
		require.Len(t, subs, 3)

		assert.Equal(t, 1, subs[0].VariantIndex)
		assert.Equal(t, "energetic", subs[0].ScriptStyle)
		assert.Equal(t, "narrative", subs[1].ScriptStyle)
		assert.Equal(t, "humorous", subs[2].ScriptStyle)
		for _, st := range subs {
			assert.Equal(t, subvideotask.StatusPending, st.Status)
			assert.Equal(t, 0, st.Progress)
		}
	})

	t.Run("rotation wraps past the style list", func(t *testing.T) {
		parent := newParentTask(t, client.Client)

		subs, err := service.CreateSubTasks(ctx, parent.ID, 4, "energetic", []string{"narrative"})
		require.NoError(t, err)
		require.Len(t, subs, 4)
		assert.Equal(t, "energetic", subs[0].ScriptStyle)
		assert.Equal(t, "narrative", subs[1].ScriptStyle)
		assert.Equal(t, "narrative", subs[2].ScriptStyle)
		assert.Equal(t, "narrative", subs[3].ScriptStyle)
	})

	t.Run("idempotent rerun returns existing rows", func(t *testing.T) {
		parent := newParentTask(t, client.Client)

		first, err := service.CreateSubTasks(ctx, parent.ID, 3, "energetic", nil)
		require.NoError(t, err)

		// Mark one in-flight, then rerun the fan-out as a reclaimed worker would.
		setSubStatus(t, client.Client, first[0].ID, subvideotask.StatusScriptReady, nil)

		again, err := service.CreateSubTasks(ctx, parent.ID, 3, "energetic", nil)
		require.NoError(t, err)
		require.Len(t, again, 3)
		assert.Equal(t, first[0].ID, again[0].ID)
		assert.Equal(t, subvideotask.StatusScriptReady, again[0].Status)
	})
}

func TestSubTaskService_ApplySubTaskUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubTaskService(client.Client)
	ctx := context.Background()

	newSub := func(t *testing.T) *ent.SubVideoTask {
		parent := newParentTask(t, client.Client)
		subs, err := service.CreateSubTasks(ctx, parent.ID, 1, "energetic", nil)
		require.NoError(t, err)
		return subs[0]
	}

	t.Run("walks the full lifecycle", func(t *testing.T) {
		sub := newSub(t)

		steps := []struct {
			status   string
			progress int
		}{
			{"script_generating", 5},
			{"script_ready", 50},
			{"video_submitting", 50},
			{"video_processing", 60},
			{"processing_subtitles", 85},
			{"completed", 100},
		}
		for _, step := range steps {
			outcome, err := service.ApplySubTaskUpdate(ctx, sub.ID, models.SubTaskUpdate{
				Status:   strPtr(step.status),
				Progress: intPtr(step.progress),
			})
			require.NoError(t, err, "step %s", step.status)
			require.Equal(t, models.UpdateApplied, outcome, "step %s", step.status)
		}

		row, err := service.GetSubTask(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusCompleted, row.Status)
		assert.Equal(t, 100, row.Progress)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("rejects stage skipping", func(t *testing.T) {
		sub := newSub(t)
		outcome, err := service.ApplySubTaskUpdate(ctx, sub.ID, models.SubTaskUpdate{
			Status: strPtr("video_processing"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateRejectedTransition, outcome)
	})

	t.Run("script_failed is terminal", func(t *testing.T) {
		sub := newSub(t)
		setSubStatus(t, client.Client, sub.ID, subvideotask.StatusScriptGenerating, nil)

		outcome, err := service.ApplySubTaskUpdate(ctx, sub.ID, models.SubTaskUpdate{
			Status:       strPtr("script_failed"),
			ErrorMessage: strPtr("generator rejected the brief"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		outcome, err = service.ApplySubTaskUpdate(ctx, sub.ID, models.SubTaskUpdate{
			Status: strPtr("script_ready"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateNoopTerminal, outcome)
	})

	t.Run("rejects progress regression", func(t *testing.T) {
		sub := newSub(t)
		setSubStatus(t, client.Client, sub.ID, subvideotask.StatusVideoProcessing, func(m *ent.SubVideoTaskUpdateOne) {
			m.SetProgress(60)
		})

		outcome, err := service.ApplySubTaskUpdate(ctx, sub.ID, models.SubTaskUpdate{
			Progress: intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateRejectedRegression, outcome)
	})

	t.Run("unknown sub-task id", func(t *testing.T) {
		outcome, err := service.ApplySubTaskUpdate(ctx, uuid.New().String(), models.SubTaskUpdate{
			Progress: intPtr(10),
		})
		require.NoError(t, err)
		assert.Equal(t, models.UpdateNotFound, outcome)
	})
}

func TestSubTaskService_StatsOf(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := newParentTask(t, client.Client)
	subs, err := service.CreateSubTasks(ctx, parent.ID, 3, "energetic", nil)
	require.NoError(t, err)

	stats, err := service.StatsOf(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.False(t, stats.AllTerminal())

	setSubStatus(t, client.Client, subs[0].ID, subvideotask.StatusCompleted, nil)
	setSubStatus(t, client.Client, subs[1].ID, subvideotask.StatusScriptFailed, nil)
	setSubStatus(t, client.Client, subs[2].ID, subvideotask.StatusFailed, nil)

	stats, err = service.StatsOf(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, SubTaskStats{Total: 3, Terminal: 3, Completed: 1, Failed: 2}, stats)
	assert.True(t, stats.AllTerminal())
}

func TestSubTaskService_ListAwaitingMerge(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := newParentTask(t, client.Client)
	subs, err := service.CreateSubTasks(ctx, parent.ID, 3, "energetic", nil)
	require.NoError(t, err)

	now := time.Now()
	// Variant 1: submitted, processing on the merge service.
	setSubStatus(t, client.Client, subs[0].ID, subvideotask.StatusVideoProcessing, func(m *ent.SubVideoTaskUpdateOne) {
		m.SetExternalMergeID("ext-1").SetSubmittedAt(now.Add(-2 * time.Minute))
	})
	// Variant 2: interrupted mid subtitle pass; must be re-picked.
	setSubStatus(t, client.Client, subs[1].ID, subvideotask.StatusProcessingSubtitles, func(m *ent.SubVideoTaskUpdateOne) {
		m.SetExternalMergeID("ext-2").SetSubmittedAt(now.Add(-1 * time.Minute))
	})
	// Variant 3: not submitted yet.

	awaiting, err := service.ListAwaitingMerge(ctx, 50)
	require.NoError(t, err)
	require.Len(t, awaiting, 2)
	// Oldest submission first.
	assert.Equal(t, subs[0].ID, awaiting[0].ID)
	assert.Equal(t, subs[1].ID, awaiting[1].ID)

	t.Run("resolves merge job ids", func(t *testing.T) {
		found, err := service.FindByExternalMergeID(ctx, "ext-2")
		require.NoError(t, err)
		assert.Equal(t, subs[1].ID, found.ID)

		_, err = service.FindByExternalMergeID(ctx, "ext-unknown")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
