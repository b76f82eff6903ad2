package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unseenapp/unseen-users/internal/constants"
)

// RequestID attaches a correlation id to every request. An incoming
// X-Request-Id is propagated; otherwise a new one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID returns the correlation id for the current request.
func GetRequestID(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(constants.ContextKeyRequestID)
	if !exists {
		return "", false
	}

	id, ok := requestID.(string)
	return id, ok
}
