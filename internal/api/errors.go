package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/httputil"
	"github.com/persistorai/friendgraph/internal/metrics"
	"github.com/persistorai/friendgraph/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps analysis errors onto HTTP responses. Anything
// unrecognised is logged and hidden behind a 500.
func respondServiceError(c *gin.Context, log *logrus.Logger, op string, err error) {
	switch {
	case errors.Is(err, models.ErrNodeNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")
	case errors.Is(err, models.ErrNoPath):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "no path found")
	case errors.Is(err, models.ErrEmptyGraph):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "graph is empty")
	default:
		log.WithError(err).Error(op)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
