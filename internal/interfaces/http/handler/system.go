package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/batchtrack/backend/internal/infrastructure/persistence"
)

// SystemHandler serves health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	name    string
	started time.Time
}

func NewSystemHandler(db *persistence.Database, name string) *SystemHandler {
	return &SystemHandler{db: db, name: name, started: time.Now()}
}

// Health handles GET /health. It reports degraded with a 503 when the
// database is unreachable so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	dbStatus := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	// Health checks skip the response envelope; probes want a flat document
	c.JSON(httpStatus, gin.H{
		"service":  h.name,
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
