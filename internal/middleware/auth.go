package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"lifedesk/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth validates the static API key header. When no key is configured the
// middleware is a no-op.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
