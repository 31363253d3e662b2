package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// SessionContextKey is where AuthMiddleware stores the validated session.
const SessionContextKey = "session"

// AuthMiddleware creates a Gin middleware that requires a session token
// obtained from the shared-password login.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		session, err := authService.ValidateSession(parts[1])
		if err != nil {
			utils.LogDebug("Rejected session token", map[string]interface{}{"error": err.Error()})
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired session", ""))
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(c *gin.Context) (*services.SessionResponse, bool) {
	v, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*services.SessionResponse)
	return session, ok
}
