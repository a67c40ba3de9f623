package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dalopezos28/salon-bienestar/internal/config"
)

const adminTokenHeader = "X-Admin-Token"

// AdminMiddleware guards the review endpoints with the shared operational
// token from config. There are no user accounts; the site itself is public.
func AdminMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(adminTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_admin_token"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_admin_token"})
			return
		}

		c.Next()
	}
}
