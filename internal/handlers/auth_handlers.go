package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stable_backend/internal/middleware"
	"stable_backend/internal/services"
	"stable_backend/pkg/utils"
)

// AuthHandler holds the shared-password gate service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login exchanges the shared password for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	session, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			utils.LogWarn("Login: invalid shared password", map[string]interface{}{"client_ip": c.ClientIP()})
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid password.", ""))
			return
		}
		utils.LogError(err, "Login: Error from authService.Login")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession echoes the session attached by AuthMiddleware.
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No active session.", ""))
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout is stateless: the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
