package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	RespondOK(c, http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether downstream dependencies are reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			RespondError(c, http.StatusServiceUnavailable, "NOT_READY", "database unreachable")
			return
		}
	}
	RespondOK(c, http.StatusOK, gin.H{"status": "ready"})
}
