// README: Auth middleware; verifies Firebase ID tokens on protected routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/infra"
)

const callerUIDKey = "caller_uid"

// Auth rejects requests without a valid "Authorization: Bearer <id token>" header
// and stores the caller's UID on the context.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		id, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerUIDKey, id.UID)
		c.Next()
	}
}

// CallerUID returns the UID set by Auth, or "" on unauthenticated routes.
func CallerUID(c *gin.Context) string {
	return c.GetString(callerUIDKey)
}
