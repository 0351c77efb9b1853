package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

// HealthHandler serves the read-only aggregate endpoints.
type HealthHandler struct {
	statsService *services.StatsService
}

func NewHealthHandler(stores *storage.Stores) *HealthHandler {
	return &HealthHandler{statsService: services.NewStatsService(stores)}
}

// Health reports service and database status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"
	status := "healthy"
	if !h.statsService.DatabaseConnected(c.Request.Context()) {
		database = "disconnected"
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Portfolio API is running",
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Collections returns total and active record counts per collection
// GET /test/collections
func (h *HealthHandler) Collections(c *gin.Context) {
	counts, err := h.statsService.Collections(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"collections": counts})
}
