package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "request_id"

// RequestID assigns each request an id, honoring one supplied by the caller,
// and echoes it back in the X-Request-Id header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = strings.ReplaceAll(uuid.New().String(), "-", "")
		}

		c.Set(ContextRequestID, requestID)

		ctx := context.WithValue(c.Request.Context(), ContextRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-Id", requestID)

		c.Next()
	}
}

// GetRequestID gets the request id from context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(ContextRequestID); exists {
		return id.(string)
	}
	return ""
}
