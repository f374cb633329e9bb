// Package api exposes the task management HTTP surface: task CRUD,
// cancel/retry, search, and health.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/database"
	"github.com/textloom/textloom/pkg/queue"
	"github.com/textloom/textloom/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	db       *database.Client
	tasks    *services.TaskService
	subTasks *services.SubTaskService
	media    *services.MediaService
	pool     *queue.WorkerPool
	cfg      *config.Config
}

// NewServer creates a new API server.
func NewServer(
	db *database.Client,
	tasks *services.TaskService,
	subTasks *services.SubTaskService,
	media *services.MediaService,
	pool *queue.WorkerPool,
	cfg *config.Config,
) *Server {
	return &Server{
		db:       db,
		tasks:    tasks,
		subTasks: subTasks,
		media:    media,
		pool:     pool,
		cfg:      cfg,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/tasks", s.listTasksHandler)
		v1.GET("/tasks/search", s.searchTasksHandler)
		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
		v1.POST("/tasks/:id/retry", s.retryTaskHandler)
		v1.GET("/health", s.healthHandler)
	}

	if s.cfg.Storage.Backend == "local" {
		r.Static("/static", s.cfg.Storage.LocalRoot)
	}

	return r
}
