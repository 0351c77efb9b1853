package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/services"
	"portfolio-backend/pkg/response"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login checks the configured credential pair and returns a bearer token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{
			Messages: []string{"request body must be JSON with username and password"},
		})
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Logout revokes the presented bearer token. The auth middleware has
// already rejected missing or invalid tokens with 401.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(middleware.GetToken(c))
	response.Message(c, "Logout successful")
}
