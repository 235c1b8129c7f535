package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/yt-transcript-service/internal/logger"
)

// HeaderRequestID is the request ID header read from and written to clients.
const HeaderRequestID = "X-Request-Id"

// RequestID propagates an inbound request ID or assigns a fresh one, storing
// it under logger.FieldRequestID so downstream middleware logs correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
