package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const usernameKey = "auth.username"

// RequireAuth is gin middleware that extracts and validates a Bearer token
// from the Authorization header and stores the asserted username in the
// request context. Missing credentials and bad tokens both abort with 401;
// the bodies differ so clients can tell "log in" from "log in again".
func RequireAuth(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		username, err := issuer.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}

// Username returns the authenticated username stored by RequireAuth.
func Username(c *gin.Context) (string, bool) {
	v, ok := c.Get(usernameKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
