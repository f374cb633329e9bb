package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SPEC", "invalid request body: "+err.Error())
		return
	}

	if req.ScriptStyle == "" && len(s.cfg.Pipeline.ScriptStyles) > 0 {
		req.ScriptStyle = s.cfg.Pipeline.ScriptStyles[0]
	}

	t, err := s.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	filters := models.TaskFilters{
		Limit: 25,
	}

	if v := c.Query("status"); v != "" {
		if err := task.StatusValidator(task.Status(v)); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_SPEC", "invalid status: "+v)
			return
		}
		filters.Status = v
	}
	filters.Mode = c.Query("mode")

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_SPEC", "invalid created_after: must be RFC3339")
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_SPEC", "invalid created_before: must be RFC3339")
			return
		}
		filters.CreatedBefore = &t
	}

	result, err := s.tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	taskID := c.Param("id")

	t, err := s.tasks.GetTask(c.Request.Context(), taskID, true)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	children, err := s.subTasks.ChildrenOf(c.Request.Context(), taskID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &models.TaskDetailResponse{
		Task:     t,
		SubTasks: children,
	})
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")

	// Record the request in the database first (pending → cancelled,
	// processing → cancelling).
	t, err := s.tasks.CancelTask(c.Request.Context(), taskID)

	// Always try the fast path on this pod: cancelling the in-flight
	// context aborts collaborator calls without waiting for the next
	// stage boundary.
	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}

	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// retryTaskHandler handles POST /api/v1/tasks/:id/retry.
func (s *Server) retryTaskHandler(c *gin.Context) {
	taskID := c.Param("id")

	t, err := s.tasks.RetryTask(c.Request.Context(), taskID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// searchTasksHandler handles GET /api/v1/tasks/search.
func (s *Server) searchTasksHandler(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 3 {
		respondError(c, http.StatusBadRequest, "INVALID_SPEC", "search query must be at least 3 characters")
		return
	}

	limit := 25
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	tasks, err := s.tasks.SearchTasks(c.Request.Context(), query, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}
