package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/models"
)

// AnalysisHandler serves traversal and statistics endpoints.
type AnalysisHandler struct {
	svc AnalysisService
	log *logrus.Logger
}

// NewAnalysisHandler creates an AnalysisHandler with the given service and logger.
func NewAnalysisHandler(svc AnalysisService, log *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: log}
}

// histogramResponse wraps a histogram with its node total.
type histogramResponse struct {
	Histogram models.Histogram `json:"histogram"`
	Total     int              `json:"total"`
}

// Report handles GET /api/v1/report?source=.
func (h *AnalysisHandler) Report(c *gin.Context) {
	source, provided := c.GetQuery("source")
	if provided {
		if err := validatePathID(source); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid source: "+err.Error())

			return
		}
	}

	report, err := h.svc.Report(c.Request.Context(), source)
	if err != nil {
		respondServiceError(c, h.log, "building report", err)

		return
	}

	c.JSON(http.StatusOK, report)
}

// Distances handles GET /api/v1/distances/:id.
func (h *AnalysisHandler) Distances(c *gin.Context) {
	source := c.Param("id")
	if err := validatePathID(source); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Distances(c.Request.Context(), source)
	if err != nil {
		respondServiceError(c, h.log, "computing distances", err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// Neighbors handles GET /api/v1/nodes/:id/neighbors.
func (h *AnalysisHandler) Neighbors(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Neighbors(c.Request.Context(), nodeID)
	if err != nil {
		respondServiceError(c, h.log, "getting neighbors", err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// Path handles GET /api/v1/path/:from/:to.
func (h *AnalysisHandler) Path(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	if err := validatePathID(from); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from: "+err.Error())

		return
	}

	if err := validatePathID(to); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to: "+err.Error())

		return
	}

	result, err := h.svc.ShortestPath(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, h.log, "finding shortest path", err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// DegreeHistogram handles GET /api/v1/histograms/degree.
func (h *AnalysisHandler) DegreeHistogram(c *gin.Context) {
	hist, err := h.svc.DegreeHistogram(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "degree histogram", err)

		return
	}

	c.JSON(http.StatusOK, histogramResponse{Histogram: hist, Total: hist.Total()})
}

// SecondOrderHistogram handles GET /api/v1/histograms/second-order.
func (h *AnalysisHandler) SecondOrderHistogram(c *gin.Context) {
	hist, err := h.svc.SecondOrderHistogram(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "second-order histogram", err)

		return
	}

	c.JSON(http.StatusOK, histogramResponse{Histogram: hist, Total: hist.Total()})
}
