package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/usecase"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// Context keys set by AuthMiddleWare.
const (
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

// AuthMiddleWare resolves the principal from the session cookie, falling back
// to an Authorization bearer header, and places the principal id and role in
// the gin context. Requests with no valid token are rejected with 401.
func AuthMiddleWare(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := jwtService.ParseSessionToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(ContextPrincipalID, claims.PrincipalID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose principal does not carry the given role.
func RequireRole(role entity.PrincipalRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(ContextRole)
		if !exists || got != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
