package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
	testdb "github.com/textloom/textloom/test/database"
)

type apiHarness struct {
	client *ent.Client
	tasks  *services.TaskService
	router *gin.Engine
}

func newAPIHarness(t *testing.T) *apiHarness {
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)

	cfg := config.Default()
	cfg.Storage.LocalRoot = t.TempDir()

	tasks := services.NewTaskService(client.Client, cfg.Pipeline.VariantCountMax, t.TempDir())
	subTasks := services.NewSubTaskService(client.Client)
	media := services.NewMediaService(client.Client)

	server := NewServer(client, tasks, subTasks, media, nil, cfg)
	return &apiHarness{
		client: client.Client,
		tasks:  tasks,
		router: server.Router(),
	}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func validBody() models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Title:        "Launch video",
		VariantCount: 2,
		MediaURLs:    []string{"https://cdn.example.com/brief.md"},
	}
}

func TestCreateTaskEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("creates a pending task", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/api/v1/tasks", validBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created ent.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, task.StatusPending, created.Status)
		// Default style comes from configuration when the request omits it.
		assert.Equal(t, "energetic", created.ScriptStyle)
	})

	t.Run("rejects invalid variant count", func(t *testing.T) {
		body := validBody()
		body.VariantCount = 99
		w := h.do(t, http.MethodPost, "/api/v1/tasks", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var e errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, "INVALID_SPEC", e.Error.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTaskEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	created, err := h.tasks.CreateTask(context.Background(), validBody())
	require.NoError(t, err)

	t.Run("returns task with sub-tasks", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail models.TaskDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, created.ID, detail.Task.ID)
		assert.Empty(t, detail.SubTasks)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks/does-not-exist", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var e errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, "NOT_FOUND", e.Error.Code)
	})
}

func TestListTasksEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		body := validBody()
		body.Title = fmt.Sprintf("Task %d", i)
		_, err := h.tasks.CreateTask(ctx, body)
		require.NoError(t, err)
	}

	t.Run("lists with pagination", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks?limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.TaskListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Tasks, 2)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks?status=pending", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.TaskListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.TotalCount)

		w = h.do(t, http.MethodGet, "/api/v1/tasks?status=completed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks?status=sideways", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed created_after", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks?created_after=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelTaskEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	t.Run("cancels a pending task outright", func(t *testing.T) {
		created, err := h.tasks.CreateTask(ctx, validBody())
		require.NoError(t, err)

		w := h.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cancelled ent.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
		assert.Equal(t, task.StatusCancelled, cancelled.Status)
	})

	t.Run("terminal task is a conflict", func(t *testing.T) {
		created, err := h.tasks.CreateTask(ctx, validBody())
		require.NoError(t, err)
		require.NoError(t, h.client.Task.UpdateOneID(created.ID).
			SetStatus(task.StatusCompleted).Exec(ctx))

		w := h.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/cancel", nil)
		require.Equal(t, http.StatusConflict, w.Code)

		var e errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, "ALREADY_TERMINAL", e.Error.Code)
	})
}

func TestRetryTaskEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	t.Run("retries a failed task", func(t *testing.T) {
		created, err := h.tasks.CreateTask(ctx, validBody())
		require.NoError(t, err)
		require.NoError(t, h.client.Task.UpdateOneID(created.ID).
			SetStatus(task.StatusFailed).
			SetProgress(55).
			SetErrorMessage("stage script_generation failed").
			Exec(ctx))

		w := h.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/retry", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var retried ent.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &retried))
		assert.Equal(t, task.StatusPending, retried.Status)
		assert.Equal(t, 0, retried.Progress)
	})

	t.Run("pending task is not retryable", func(t *testing.T) {
		created, err := h.tasks.CreateTask(ctx, validBody())
		require.NoError(t, err)

		w := h.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/retry", nil)
		require.Equal(t, http.StatusConflict, w.Code)

		var e errorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, "NOT_RETRYABLE", e.Error.Code)
	})
}

func TestSearchTasksEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	body := validBody()
	body.Title = "Quarterly launch recap"
	_, err := h.tasks.CreateTask(ctx, body)
	require.NoError(t, err)

	t.Run("finds by title", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks/search?q=launch", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Tasks []*ent.Task `json:"tasks"`
			Count int         `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("short queries are rejected", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/api/v1/tasks/search?q=ab", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	// Without a worker pool (API-only process) health reflects the DB.
	w := h.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
