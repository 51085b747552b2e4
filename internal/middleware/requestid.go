package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a UUID. A client-supplied X-Request-ID is
// reused only when it parses as a UUID; anything else gets a fresh ID.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			if parsed, err := uuid.Parse(clientID); err == nil {
				id = parsed.String()
			} else {
				log.WithFields(logrus.Fields{
					"request_id":        id,
					"client_request_id": clientID,
				}).Debug("ignoring non-uuid client request id")
			}
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
