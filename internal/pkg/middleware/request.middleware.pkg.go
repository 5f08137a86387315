package middleware

import (
	"draftorder-gateway/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestInit assigns a request ID for log correlation. An inbound
// X-Request-ID is honored so callers can trace through their own IDs.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestId", requestID)
		c.Header("X-Request-ID", requestID)

		logger.HTTP.Printf("method=%s path=%s requestId=%s", c.Request.Method, c.Request.URL.Path, requestID)
		c.Next()
	}
}
