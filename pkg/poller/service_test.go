package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
	testdb "github.com/textloom/textloom/test/database"
)

type stubMerger struct {
	mu        sync.Mutex
	pollCalls int
	results   map[string]*models.MergePollResult
	errs      map[string]error
}

func (m *stubMerger) Submit(context.Context, map[string]any, string) (string, error) {
	return "", errors.New("not used by the reconciler")
}

func (m *stubMerger) Poll(_ context.Context, externalID string) (*models.MergePollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollCalls++
	if err, ok := m.errs[externalID]; ok {
		return nil, err
	}
	if res, ok := m.results[externalID]; ok {
		return res, nil
	}
	return &models.MergePollResult{State: models.MergeProcessing}, nil
}

func (m *stubMerger) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollCalls
}

type stubRenderer struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (r *stubRenderer) Render(_ context.Context, videoURL string, _ *models.GeneratedScript) (string, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.fail {
		return "", errors.New("renderer down")
	}
	return videoURL + "?subtitled=1", nil
}

func (r *stubRenderer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type pollerHarness struct {
	client   *ent.Client
	tasks    *services.TaskService
	subTasks *services.SubTaskService
	media    *services.MediaService
	merger   *stubMerger
	renderer *stubRenderer
	cfg      *config.PollerConfig
	service  *Service
}

func newPollerHarness(t *testing.T) *pollerHarness {
	client := testdb.NewTestClient(t)

	h := &pollerHarness{
		client:   client.Client,
		tasks:    services.NewTaskService(client.Client, 5, t.TempDir()),
		subTasks: services.NewSubTaskService(client.Client),
		media:    services.NewMediaService(client.Client),
		merger:   &stubMerger{results: map[string]*models.MergePollResult{}, errs: map[string]error{}},
		renderer: &stubRenderer{},
	}

	h.cfg = config.DefaultPollerConfig()
	h.cfg.MaxConsecutiveErrors = 3
	h.service = NewService(h.cfg, h.tasks, h.subTasks, h.media, h.merger, h.renderer)
	return h
}

// seedSubmitted creates a processing parent with variantCount children, all
// scripted and submitted to the merge service (video_processing, ext-N).
func (h *pollerHarness) seedSubmitted(t *testing.T, variantCount int) (*ent.Task, []*ent.SubVideoTask) {
	t.Helper()
	ctx := context.Background()

	parent, err := h.tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:        "Poller test task",
		ScriptStyle:  "energetic",
		VariantCount: variantCount,
		MediaURLs:    []string{"https://cdn.example.com/brief.md"},
	})
	require.NoError(t, err)
	require.NoError(t, h.client.Task.UpdateOneID(parent.ID).
		SetStatus(task.StatusProcessing).
		SetProgress(75).
		Exec(ctx))

	subs, err := h.subTasks.CreateSubTasks(ctx, parent.ID, variantCount, "energetic", nil)
	require.NoError(t, err)

	now := time.Now()
	for i, sub := range subs {
		_, err := h.media.SaveScript(ctx, sub.ID, &models.GeneratedScript{
			Style:              "energetic",
			Titles:             []string{"Take one"},
			WordCount:          60,
			EstimatedDurationS: 30,
			Scenes: []models.Scene{
				{Text: "Scene A", DurationS: 15},
				{Text: "Scene B", DurationS: 15},
			},
		})
		require.NoError(t, err)

		require.NoError(t, h.client.SubVideoTask.UpdateOneID(sub.ID).
			SetStatus(subvideotask.StatusVideoProcessing).
			SetProgress(60).
			SetExternalMergeID("ext-" + sub.ID[:8]).
			SetSubmittedAt(now.Add(-time.Duration(i+1) * time.Minute)).
			Exec(ctx))
	}

	refreshed, err := h.subTasks.ChildrenOf(ctx, parent.ID)
	require.NoError(t, err)
	return parent, refreshed
}

func TestRunCycle_CompletedMergeRendersSubtitles(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:        models.MergeCompleted,
		VideoURL:     "https://videos.local/v1.mp4",
		ThumbnailURL: "https://videos.local/v1.jpg",
		DurationMS:   30000,
	}

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusCompleted, child.Status)
	assert.Equal(t, 100, child.Progress)
	require.NotNil(t, child.VideoURL)
	assert.Equal(t, "https://videos.local/v1.mp4?subtitled=1", *child.VideoURL)
	assert.Nil(t, child.ErrorMessage)
	assert.Equal(t, 1, h.renderer.callCount())

	// Last variant settled, so the parent is settled in the same pass.
	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
	assert.Equal(t, 100, settled.Progress)
	require.NotNil(t, settled.VideoURL)
	assert.Equal(t, "https://videos.local/v1.mp4?subtitled=1", *settled.VideoURL)
	require.NotNil(t, settled.VideoDurationMs)
	assert.Equal(t, 30000, *settled.VideoDurationMs)
}

func TestRunCycle_ProcessingMergeLeavesChildAlone(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusVideoProcessing, child.Status)
	assert.Equal(t, 1, h.merger.callCount())

	still, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, still.Status)
}

func TestRunCycle_FailedMergeFailsChild(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:        models.MergeFailed,
		ErrorMessage: "render node crashed",
	}

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusFailed, child.Status)
	require.NotNil(t, child.ErrorMessage)
	assert.Equal(t, "render node crashed", *child.ErrorMessage)

	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, settled.Status)
	require.NotNil(t, settled.ErrorMessage)
	assert.Equal(t, "all variants failed", *settled.ErrorMessage)
}

func TestRunCycle_MergeTimeout(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	_, subs := h.seedSubmitted(t, 1)
	require.NoError(t, h.client.SubVideoTask.UpdateOneID(subs[0].ID).
		SetSubmittedAt(time.Now().Add(-h.cfg.VideoMergeTimeout-time.Minute)).
		Exec(ctx))

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusFailed, child.Status)
	require.NotNil(t, child.ErrorMessage)
	assert.Equal(t, "merge timeout", *child.ErrorMessage)

	// A timed-out job is never polled.
	assert.Zero(t, h.merger.callCount())
}

func TestRunCycle_ConsecutivePollFailures(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	_, subs := h.seedSubmitted(t, 1)
	extID := *subs[0].ExternalMergeID
	h.merger.errs[extID] = errors.New("connection refused")

	// Failures below the budget leave the sub-task in flight.
	for i := 0; i < h.cfg.MaxConsecutiveErrors-1; i++ {
		h.service.RunCycle(ctx)
		child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusVideoProcessing, child.Status, "cycle %d", i+1)
	}

	// A successful poll resets the counter.
	delete(h.merger.errs, extID)
	h.service.RunCycle(ctx)
	h.merger.errs[extID] = errors.New("connection refused")
	for i := 0; i < h.cfg.MaxConsecutiveErrors-1; i++ {
		h.service.RunCycle(ctx)
	}
	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusVideoProcessing, child.Status)

	// The budget-exhausting failure settles the variant.
	h.service.RunCycle(ctx)
	child, err = h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusFailed, child.Status)
	require.NotNil(t, child.ErrorMessage)
	assert.Equal(t, "merge unreachable", *child.ErrorMessage)
}

func (h *pollerHarness) failureCount(subTaskID string) (int, bool) {
	h.service.mu.Lock()
	defer h.service.mu.Unlock()
	n, ok := h.service.pollFailures[subTaskID]
	return n, ok
}

func TestRunCycle_SettledChildDropsFailureCounter(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	_, subs := h.seedSubmitted(t, 1)
	extID := *subs[0].ExternalMergeID
	h.merger.errs[extID] = errors.New("connection refused")

	h.service.RunCycle(ctx)
	h.service.RunCycle(ctx)
	n, ok := h.failureCount(subs[0].ID)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	// The merge deadline passes before the error budget is spent; the
	// variant settles through the timeout path instead.
	require.NoError(t, h.client.SubVideoTask.UpdateOneID(subs[0].ID).
		SetSubmittedAt(time.Now().Add(-h.cfg.VideoMergeTimeout-time.Minute)).
		Exec(ctx))
	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusFailed, child.Status)
	require.NotNil(t, child.ErrorMessage)
	assert.Equal(t, "merge timeout", *child.ErrorMessage)

	// No dead entry survives the settlement.
	_, ok = h.failureCount(subs[0].ID)
	assert.False(t, ok)
}

func TestRunCycle_SubtitleFailureDegrades(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.SubtitleFailureMode = config.SubtitleDegrade
	h.renderer.fail = true
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:    models.MergeCompleted,
		VideoURL: "https://videos.local/v1.mp4",
	}

	h.service.RunCycle(ctx)

	// Degrade mode completes the variant with the raw video and a note.
	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusCompleted, child.Status)
	require.NotNil(t, child.VideoURL)
	assert.Equal(t, "https://videos.local/v1.mp4", *child.VideoURL)
	require.NotNil(t, child.ErrorMessage)
	assert.Contains(t, *child.ErrorMessage, "subtitle render failed")

	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
}

func TestRunCycle_SubtitleFailureFailsInFailMode(t *testing.T) {
	h := newPollerHarness(t)
	h.cfg.SubtitleFailureMode = config.SubtitleFail
	h.renderer.fail = true
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:    models.MergeCompleted,
		VideoURL: "https://videos.local/v1.mp4",
	}

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusFailed, child.Status)
	require.NotNil(t, child.ErrorMessage)
	assert.Contains(t, *child.ErrorMessage, "subtitle render failed")

	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, settled.Status)
}

// slowRenderer takes 200ms per render and honors its context deadline.
type slowRenderer struct{}

func (slowRenderer) Render(ctx context.Context, videoURL string, _ *models.GeneratedScript) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(200 * time.Millisecond):
		return videoURL + "?subtitled=1", nil
	}
}

func TestRunCycle_RenderUsesItsOwnTimeout(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()
	svc := NewService(h.cfg, h.tasks, h.subTasks, h.media, h.merger, slowRenderer{})

	t.Run("render over budget degrades", func(t *testing.T) {
		h.cfg.SubtitleRenderTimeout = 50 * time.Millisecond

		_, subs := h.seedSubmitted(t, 1)
		h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
			State:    models.MergeCompleted,
			VideoURL: "https://videos.local/v1.mp4",
		}

		svc.RunCycle(ctx)

		child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusCompleted, child.Status)
		require.NotNil(t, child.VideoURL)
		assert.Equal(t, "https://videos.local/v1.mp4", *child.VideoURL)
		require.NotNil(t, child.ErrorMessage)
		assert.Contains(t, *child.ErrorMessage, "subtitle render failed")
	})

	t.Run("render within budget completes with subtitles", func(t *testing.T) {
		h.cfg.SubtitleRenderTimeout = 5 * time.Second

		_, subs := h.seedSubmitted(t, 1)
		h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
			State:    models.MergeCompleted,
			VideoURL: "https://videos.local/v2.mp4",
		}

		svc.RunCycle(ctx)

		child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusCompleted, child.Status)
		require.NotNil(t, child.VideoURL)
		assert.Equal(t, "https://videos.local/v2.mp4?subtitled=1", *child.VideoURL)
		assert.Nil(t, child.ErrorMessage)
	})
}

func TestRunCycle_ResumesInterruptedSubtitlePass(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	_, subs := h.seedSubmitted(t, 1)
	// A previous pass got the merge result durable and then died.
	require.NoError(t, h.client.SubVideoTask.UpdateOneID(subs[0].ID).
		SetStatus(subvideotask.StatusProcessingSubtitles).
		SetProgress(85).
		SetVideoURL("https://videos.local/v1.mp4").
		Exec(ctx))

	h.service.RunCycle(ctx)

	child, err := h.subTasks.GetSubTask(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusCompleted, child.Status)
	require.NotNil(t, child.VideoURL)
	assert.Equal(t, "https://videos.local/v1.mp4?subtitled=1", *child.VideoURL)

	// Resuming the subtitle pass never re-polls the merge service.
	assert.Zero(t, h.merger.callCount())
}

func TestRunCycle_MixedVariantsSettlePartialSuccess(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 2)
	require.NoError(t, h.client.SubVideoTask.UpdateOneID(subs[1].ID).
		SetStatus(subvideotask.StatusFailed).
		SetErrorMessage("merge submission failed").
		Exec(ctx))
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:    models.MergeCompleted,
		VideoURL: "https://videos.local/v1.mp4",
	}

	h.service.RunCycle(ctx)

	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPartialSuccess, settled.Status)
	require.NotNil(t, settled.ErrorMessage)
	assert.Equal(t, "1 of 2 variants failed", *settled.ErrorMessage)
	require.NotNil(t, settled.VideoURL)
	assert.Equal(t, "https://videos.local/v1.mp4?subtitled=1", *settled.VideoURL)
}

func TestRunCycle_CancellingParentSettlesCancelled(t *testing.T) {
	h := newPollerHarness(t)
	ctx := context.Background()

	parent, subs := h.seedSubmitted(t, 1)
	require.NoError(t, h.client.Task.UpdateOneID(parent.ID).
		SetStatus(task.StatusCancelling).
		Exec(ctx))
	h.merger.results[*subs[0].ExternalMergeID] = &models.MergePollResult{
		State:    models.MergeCompleted,
		VideoURL: "https://videos.local/v1.mp4",
	}

	h.service.RunCycle(ctx)

	settled, err := h.tasks.GetTask(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, settled.Status)
}
