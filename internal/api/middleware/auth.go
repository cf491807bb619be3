package middleware

import (
	"net/http"
	"strings"

	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionClaimsKey is the gin context key holding the admin session claims
const SessionClaimsKey = "session_claims"

// RequireAdmin validates the admin session token and promotes its embedded
// tenant key to the trusted resolution signal, overriding weaker ones.
func RequireAdmin(sessions service.SessionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		claims, err := sessions.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		c.Set(SessionClaimsKey, claims)
		if claims.TenantKey != "" {
			SetTenantKey(c, claims.TenantKey)
		}

		c.Next()
	}
}

// SessionClaims reads the admin session claims from the gin context
func SessionClaims(c *gin.Context) (*service.SessionClaims, bool) {
	v, ok := c.Get(SessionClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.SessionClaims)
	return claims, ok
}
