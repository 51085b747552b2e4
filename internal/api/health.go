// Package api provides the read-only HTTP API over a loaded graph.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	stats     GraphStats
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(stats GraphStats, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		stats:     stats,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.stats != nil {
		resp.Nodes = h.stats.NodeCount()
		resp.Edges = h.stats.EdgeCount()
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. A graph with no nodes cannot answer
// any analysis request, so it reports not_ready.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.stats == nil || h.stats.NodeCount() == 0 {
		h.log.Warn("readiness: graph is empty")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": gin.H{"graph": "empty"}})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": gin.H{"graph": "ok"}})
}
