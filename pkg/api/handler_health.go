package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textloom/textloom/pkg/database"
	"github.com/textloom/textloom/pkg/version"
)

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	var pool any
	poolHealthy := true
	if s.pool != nil {
		ph := s.pool.Health()
		pool = ph
		poolHealthy = ph.IsHealthy
	}

	body := gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"pool":     pool,
	}

	if dbErr != nil || !poolHealthy {
		body["status"] = "unhealthy"
		if dbErr != nil {
			body["error"] = dbErr.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
