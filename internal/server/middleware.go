package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rishtahub/rishtahub/internal/config"
	"github.com/rishtahub/rishtahub/internal/utils/token"
)

const (
	ctxRequesterID = "requesterID"
	ctxRequestID   = "requestID"

	headerRequestID = "X-Request-ID"
)

// RequesterID returns the authenticated user id placed on the context by
// AuthRequired. Zero is only possible on routes missing the middleware.
func RequesterID(c *gin.Context) uint64 {
	if v, ok := c.Get(ctxRequesterID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// RequestID ensures every request carries an id, taken from the incoming
// header or freshly generated, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// AuthRequired validates the Bearer token and resolves the requester
// identity for downstream handlers.
func AuthRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authentication required",
			})
			return
		}

		userID, err := token.Parse(cfg.JWT.Secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(ctxRequesterID, userID)
		c.Next()
	}
}
