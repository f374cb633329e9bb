package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
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
	"github.com/textloom/textloom/pkg/ports"
	"github.com/textloom/textloom/pkg/services"
	testdb "github.com/textloom/textloom/test/database"
)

// Counting fakes for the collaborator ports. Failures are injected as
// permanent so tests do not sit in retry backoff.

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	fail  map[string]bool // URLs that fail
}

func (f *fakeFetcher) Fetch(_ context.Context, url, workspaceDir string, _ map[string]any) (*models.FetchedMedia, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fail[url] {
		return nil, ports.NewError(ports.Permanent, "fetch", errors.New("404 not found"))
	}
	return &models.FetchedMedia{
		OriginalURL: url,
		LocalPath:   filepath.Join(workspaceDir, filepath.Base(url)),
		MediaType:   models.MediaMarkdown,
		FileSize:    64,
		MimeType:    "text/markdown",
	}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeAnalyzer struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeAnalyzer) Analyze(_ context.Context, item *models.FetchedMedia, _ map[string]any) (*models.AnalysisResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fail {
		return nil, ports.NewError(ports.Permanent, "analyze", errors.New("unreadable asset"))
	}
	return &models.AnalysisResult{
		Description:  "analysis of " + item.OriginalURL,
		Tags:         []string{"test"},
		QualityScore: 0.8,
	}, nil
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeGenerator struct {
	mu           sync.Mutex
	calls        int
	failVariants map[int]bool
	failAll      bool
}

func (f *fakeGenerator) GenerateScript(_ context.Context, req *ports.ScriptRequest) (*models.GeneratedScript, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failAll || f.failVariants[req.VariantIndex] {
		return nil, ports.NewError(ports.Permanent, "generate_script", errors.New("generator rejected the brief"))
	}
	return &models.GeneratedScript{
		Style:              req.Style,
		Titles:             []string{"Take one", "Take two"},
		WordCount:          90,
		EstimatedDurationS: 30,
		Scenes: []models.Scene{
			{Text: "Scene A", DurationS: 10},
			{Text: "Scene B", DurationS: 10},
			{Text: "Scene C", DurationS: 10},
		},
	}, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeMerger struct {
	mu      sync.Mutex
	submits map[string]string // idempotency key → external id
	failAll bool
}

func (f *fakeMerger) Submit(_ context.Context, _ map[string]any, idempotencyKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return "", ports.NewError(ports.Permanent, "submit_merge", errors.New("payload rejected"))
	}
	if f.submits == nil {
		f.submits = make(map[string]string)
	}
	if id, ok := f.submits[idempotencyKey]; ok {
		return id, nil
	}
	id := fmt.Sprintf("ext-%d", len(f.submits)+1)
	f.submits[idempotencyKey] = id
	return id, nil
}

func (f *fakeMerger) Poll(context.Context, string) (*models.MergePollResult, error) {
	return &models.MergePollResult{State: models.MergeProcessing}, nil
}

// blockingAnalyzer parks every Analyze call until its context dies, so a
// test can interrupt the executor mid-stage.
type blockingAnalyzer struct {
	started chan struct{}
	once    sync.Once
}

func (f *blockingAnalyzer) Analyze(ctx context.Context, _ *models.FetchedMedia, _ map[string]any) (*models.AnalysisResult, error) {
	f.once.Do(func() { close(f.started) })
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, _ string, key string) (string, error) {
	return "http://storage.local/" + key, nil
}

type pipelineHarness struct {
	client    *ent.Client
	tasks     *services.TaskService
	subTasks  *services.SubTaskService
	media     *services.MediaService
	fetcher   *fakeFetcher
	analyzer  *fakeAnalyzer
	generator *fakeGenerator
	merger    *fakeMerger
	executor  *TaskExecutor
}

func newHarness(t *testing.T) *pipelineHarness {
	client := testdb.NewTestClient(t)

	h := &pipelineHarness{
		client:    client.Client,
		tasks:     services.NewTaskService(client.Client, 5, t.TempDir()),
		subTasks:  services.NewSubTaskService(client.Client),
		media:     services.NewMediaService(client.Client),
		fetcher:   &fakeFetcher{},
		analyzer:  &fakeAnalyzer{},
		generator: &fakeGenerator{},
		merger:    &fakeMerger{},
	}

	cfg := config.DefaultPipelineConfig()
	cfg.CollaboratorTimeout = 5 * time.Second

	h.executor = NewTaskExecutor(
		h.tasks, h.subTasks, h.media, cfg,
		h.fetcher, h.analyzer, h.generator, h.merger, fakeUploader{})
	return h
}

// claimTask creates a task and claims it the way a worker would.
func (h *pipelineHarness) claimTask(t *testing.T, variantCount int, urls []string) *ent.Task {
	t.Helper()
	ctx := context.Background()

	_, err := h.tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:        "Pipeline test task",
		ScriptStyle:  "energetic",
		VariantCount: variantCount,
		MediaURLs:    urls,
	})
	require.NoError(t, err)

	claimed, err := h.tasks.ClaimNextPendingTask(ctx, "pod-test", 100, 5*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	return claimed
}

func TestExecute_HappySingleVariant(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	claimed := h.claimTask(t, 1, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	// Parent handed off to the reconciler with all variants submitted.
	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, parent.Status)
	assert.Equal(t, 75, parent.Progress)
	require.NotNil(t, parent.CurrentStage)
	assert.Equal(t, task.CurrentStageVideoGeneration, *parent.CurrentStage)

	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, subvideotask.StatusVideoProcessing, child.Status)
	assert.Equal(t, 60, child.Progress)
	require.NotNil(t, child.ExternalMergeID)
	assert.Equal(t, "ext-1", *child.ExternalMergeID)
	assert.NotNil(t, child.SubmittedAt)
	assert.NotNil(t, child.ScriptID)

	// The persisted merge payload carries the idempotency identity.
	require.NotNil(t, child.ScriptPayload)
	assert.Equal(t, claimed.ID, child.ScriptPayload["task_id"])
	assert.Equal(t, child.ID, child.ScriptPayload["sub_task_id"])

	// Media fetched, uploaded, and analyzed exactly once.
	items, err := h.media.ListMediaItems(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].RemoteURL, "http://storage.local/")
	assert.Equal(t, 1, h.fetcher.callCount())
	assert.Equal(t, 1, h.analyzer.callCount())
}

func TestExecute_PartialScriptFailure(t *testing.T) {
	h := newHarness(t)
	h.generator.failVariants = map[int]bool{2: true}
	ctx := context.Background()

	claimed := h.claimTask(t, 2, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	assert.Equal(t, subvideotask.StatusVideoProcessing, children[0].Status)
	assert.Equal(t, subvideotask.StatusScriptFailed, children[1].Status)
	require.NotNil(t, children[1].ErrorMessage)

	// One variant is still in flight, so the parent stays live for the
	// reconciler to settle.
	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, parent.Status)
}

func TestExecute_AllScriptsFail(t *testing.T) {
	h := newHarness(t)
	h.generator.failAll = true
	ctx := context.Background()

	claimed := h.claimTask(t, 2, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, parent.Status)
	require.NotNil(t, parent.ErrorMessage)
	assert.Contains(t, *parent.ErrorMessage, "script generation")
	assert.NotNil(t, parent.CompletedAt)
}

func TestExecute_AllFetchesFail(t *testing.T) {
	h := newHarness(t)
	h.fetcher.fail = map[string]bool{"https://cdn.example.com/missing.md": true}
	ctx := context.Background()

	claimed := h.claimTask(t, 1, []string{"https://cdn.example.com/missing.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, parent.Status)
	require.NotNil(t, parent.ErrorMessage)
	assert.Contains(t, *parent.ErrorMessage, "no media could be fetched")
}

func TestExecute_AllSubmitsFail(t *testing.T) {
	h := newHarness(t)
	h.merger.failAll = true
	ctx := context.Background()

	claimed := h.claimTask(t, 2, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	// Every child settled terminal without reaching the merge service, so
	// the executor aggregates immediately instead of handing off.
	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, parent.Status)
	require.NotNil(t, parent.ErrorMessage)
	assert.Contains(t, *parent.ErrorMessage, "all variants failed")

	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	for _, c := range children {
		assert.Equal(t, subvideotask.StatusFailed, c.Status)
	}
}

func TestExecute_CancelBeforeFirstStage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	claimed := h.claimTask(t, 1, []string{"https://cdn.example.com/brief.md"})
	_, err := h.tasks.CancelTask(ctx, claimed.ID)
	require.NoError(t, err)

	require.NoError(t, h.executor.Execute(ctx, claimed))

	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, parent.Status)
	assert.NotNil(t, parent.CompletedAt)

	// Cancelled before fan-out: no variants, no collaborator calls past
	// the first boundary.
	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Empty(t, children)
	assert.Zero(t, h.fetcher.callCount())
}

// blockedExecutor wires a harness to an analyzer that hangs, returning the
// executor and the channel that signals the analysis call is in flight.
func blockedExecutor(h *pipelineHarness) (*TaskExecutor, chan struct{}) {
	analyzer := &blockingAnalyzer{started: make(chan struct{})}
	cfg := config.DefaultPipelineConfig()
	cfg.CollaboratorTimeout = 5 * time.Second
	executor := NewTaskExecutor(
		h.tasks, h.subTasks, h.media, cfg,
		h.fetcher, analyzer, h.generator, h.merger, fakeUploader{})
	return executor, analyzer.started
}

func TestExecute_CancelWhileAnalysisInFlight(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	executor, started := blockedExecutor(h)

	claimed := h.claimTask(t, 2, []string{"https://cdn.example.com/brief.md"})

	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()
	execDone := make(chan error, 1)
	go func() { execDone <- executor.Execute(taskCtx, claimed) }()

	// Cancel the way the API does for a running task: flag the row, then
	// interrupt the in-flight collaborator call through the task context.
	<-started
	_, err := h.tasks.CancelTask(ctx, claimed.ID)
	require.NoError(t, err)
	cancelTask()

	require.NoError(t, <-execDone)

	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, parent.Status)
	assert.NotNil(t, parent.CompletedAt)

	// The interrupted analysis is discarded, not recorded as a verdict,
	// and no variant was settled on the way out.
	analyses, err := h.media.ListAnalyses(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Empty(t, analyses)
	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestExecute_LostLeaseAbandonsWithoutWrites(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	executor, started := blockedExecutor(h)

	claimed := h.claimTask(t, 1, []string{"https://cdn.example.com/brief.md"})

	taskCtx, abandonTask := context.WithCancel(ctx)
	defer abandonTask()
	execDone := make(chan error, 1)
	go func() { execDone <- executor.Execute(taskCtx, claimed) }()

	// A heartbeat that loses the lease cancels the task context with no
	// cancellation flag on the row.
	<-started
	abandonTask()

	require.NoError(t, <-execDone)

	// The row is left exactly as the reclaiming pod expects it: still
	// processing, no error note, no failed analysis rows.
	parent, err := h.tasks.GetTask(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, parent.Status)
	assert.Nil(t, parent.ErrorMessage)

	analyses, err := h.media.ListAnalyses(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestExecute_RerunAfterReclaimIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.generator.failVariants = map[int]bool{2: true}
	ctx := context.Background()

	claimed := h.claimTask(t, 2, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	fetchCalls := h.fetcher.callCount()
	analyzeCalls := h.analyzer.callCount()
	generateCalls := h.generator.callCount()

	// Simulate a lease reclaim: the task goes back to pending with its
	// stage work persisted, and another worker claims it.
	require.NoError(t, h.client.Task.UpdateOneID(claimed.ID).
		SetStatus(task.StatusPending).
		SetProgress(0).
		ClearPodID().
		ClearLeaseExpiresAt().
		Exec(ctx))

	reclaimed, err := h.tasks.ClaimNextPendingTask(ctx, "pod-2", 100, 5*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	require.Equal(t, claimed.ID, reclaimed.ID)

	require.NoError(t, h.executor.Execute(ctx, reclaimed))

	// All stage work was already durable: nothing is refetched,
	// reanalyzed, or rescripted, and no second merge job is created.
	assert.Equal(t, fetchCalls, h.fetcher.callCount())
	assert.Equal(t, analyzeCalls, h.analyzer.callCount())
	assert.Equal(t, generateCalls, h.generator.callCount())

	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, subvideotask.StatusVideoProcessing, children[0].Status)
	require.NotNil(t, children[0].ExternalMergeID)
	assert.Equal(t, "ext-1", *children[0].ExternalMergeID)
	assert.Equal(t, subvideotask.StatusScriptFailed, children[1].Status)
}

func TestExecute_ResumesInterruptedScriptGeneration(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	claimed := h.claimTask(t, 1, []string{"https://cdn.example.com/brief.md"})
	require.NoError(t, h.executor.Execute(ctx, claimed))

	children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)

	// Simulate a crash mid script generation: the row is stuck in
	// script_generating with nothing persisted.
	require.NoError(t, h.client.SubVideoTask.UpdateOneID(children[0].ID).
		SetStatus(subvideotask.StatusScriptGenerating).
		SetProgress(5).
		ClearExternalMergeID().
		ClearSubmittedAt().
		Exec(ctx))
	require.NoError(t, h.client.Task.UpdateOneID(claimed.ID).
		SetStatus(task.StatusPending).
		SetProgress(0).
		ClearPodID().
		Exec(ctx))

	before := h.generator.callCount()
	reclaimed, err := h.tasks.ClaimNextPendingTask(ctx, "pod-2", 100, 5*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, reclaimed)

	require.NoError(t, h.executor.Execute(ctx, reclaimed))

	// The stuck variant was rescripted and resubmitted.
	assert.Equal(t, before+1, h.generator.callCount())
	row, err := h.subTasks.GetSubTask(ctx, children[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusVideoProcessing, row.Status)
}

func TestFinalizeParent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// settle runs the pipeline to the handed-off state and then forces the
	// children into the requested terminal statuses.
	settle := func(t *testing.T, variantCount int, statuses []subvideotask.Status, mutate func(int, *ent.SubVideoTaskUpdateOne)) (string, []*ent.SubVideoTask) {
		t.Helper()
		claimed := h.claimTask(t, variantCount, []string{"https://cdn.example.com/brief.md"})
		require.NoError(t, h.executor.Execute(ctx, claimed))

		children, err := h.subTasks.ChildrenOf(ctx, claimed.ID)
		require.NoError(t, err)
		require.Len(t, children, variantCount)
		for i, st := range statuses {
			mut := h.client.SubVideoTask.UpdateOneID(children[i].ID).SetStatus(st)
			if mutate != nil {
				mutate(i, mut)
			}
			require.NoError(t, mut.Exec(ctx))
		}
		children, err = h.subTasks.ChildrenOf(ctx, claimed.ID)
		require.NoError(t, err)
		return claimed.ID, children
	}

	t.Run("all variants completed", func(t *testing.T) {
		taskID, children := settle(t, 2,
			[]subvideotask.Status{subvideotask.StatusCompleted, subvideotask.StatusCompleted},
			func(i int, m *ent.SubVideoTaskUpdateOne) {
				m.SetVideoURL(fmt.Sprintf("https://videos.local/v%d.mp4", i+1)).
					SetDurationMs(30000 + i)
			})

		outcome, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		parent, err := h.tasks.GetTask(ctx, taskID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, parent.Status)
		assert.Equal(t, 100, parent.Progress)
		require.NotNil(t, parent.VideoURL)
		// First completed variant wins.
		assert.Equal(t, "https://videos.local/v1.mp4", *parent.VideoURL)
		require.NotNil(t, parent.VideoDurationMs)
		assert.Equal(t, 30000, *parent.VideoDurationMs)
	})

	t.Run("mixed outcome is partial success", func(t *testing.T) {
		taskID, children := settle(t, 2,
			[]subvideotask.Status{subvideotask.StatusFailed, subvideotask.StatusCompleted},
			func(i int, m *ent.SubVideoTaskUpdateOne) {
				if i == 1 {
					m.SetVideoURL("https://videos.local/v2.mp4")
				}
			})

		outcome, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		parent, err := h.tasks.GetTask(ctx, taskID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPartialSuccess, parent.Status)
		require.NotNil(t, parent.ErrorMessage)
		assert.Equal(t, "1 of 2 variants failed", *parent.ErrorMessage)
		require.NotNil(t, parent.VideoURL)
		assert.Equal(t, "https://videos.local/v2.mp4", *parent.VideoURL)
	})

	t.Run("no variant completed", func(t *testing.T) {
		taskID, children := settle(t, 2,
			[]subvideotask.Status{subvideotask.StatusFailed, subvideotask.StatusScriptFailed}, nil)

		outcome, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		parent, err := h.tasks.GetTask(ctx, taskID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, parent.Status)
		require.NotNil(t, parent.ErrorMessage)
		assert.Equal(t, "all variants failed", *parent.ErrorMessage)
	})

	t.Run("cancelling parent finalizes as cancelled", func(t *testing.T) {
		taskID, children := settle(t, 1,
			[]subvideotask.Status{subvideotask.StatusCompleted}, nil)
		require.NoError(t, h.client.Task.UpdateOneID(taskID).
			SetStatus(task.StatusCancelling).Exec(ctx))

		outcome, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)
		assert.Equal(t, models.UpdateApplied, outcome)

		parent, err := h.tasks.GetTask(ctx, taskID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, parent.Status)
	})

	t.Run("terminal parent is a no-op", func(t *testing.T) {
		taskID, children := settle(t, 1,
			[]subvideotask.Status{subvideotask.StatusCompleted}, nil)

		_, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)

		outcome, err := FinalizeParent(ctx, h.tasks, taskID, children)
		require.NoError(t, err)
		assert.Equal(t, models.UpdateNoopTerminal, outcome)
	})
}

func TestStageProgress(t *testing.T) {
	assert.Equal(t, 25, stageProgress(0, 25, 1, 1))
	assert.Equal(t, 12, stageProgress(0, 25, 1, 2))
	assert.Equal(t, 55, stageProgress(55, 75, 0, 4))
	assert.Equal(t, 75, stageProgress(55, 75, 4, 4))
	// Degenerate totals stay at the stage floor.
	assert.Equal(t, 50, stageProgress(50, 75, 0, 0))
}
