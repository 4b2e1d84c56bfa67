package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe samples the state of the database connection
type DatabaseProbe interface {
	Health(ctx context.Context) database.PoolHealth
}

// HealthHandler answers liveness checks
type HealthHandler struct {
	db DatabaseProbe
}

// NewHealthHandler creates a health handler. A nil probe reports the process only.
func NewHealthHandler(db DatabaseProbe) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	health := h.db.Health(c.Request.Context())
	if !health.Healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": health})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": health})
}
