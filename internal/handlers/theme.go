package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ThemeHandler struct {
	themeService *services.ThemeService
}

func NewThemeHandler(store storage.ThemeStore) *ThemeHandler {
	return &ThemeHandler{themeService: services.NewThemeService(store)}
}

// List returns all active themes, newest first
// GET /theme
func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.themeService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, themes, len(themes))
}

// GetByName returns the first active theme matching the name
// GET /theme/:themeName
func (h *ThemeHandler) GetByName(c *gin.Context) {
	theme, err := h.themeService.GetByName(c.Request.Context(), c.Param("themeName"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, theme)
}

// Create creates a new theme (requires auth)
// POST /theme
func (h *ThemeHandler) Create(c *gin.Context) {
	var req models.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	theme, err := h.themeService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, theme)
}

// Update applies a partial update to an active theme (requires auth)
// PUT /theme/:themeName
func (h *ThemeHandler) Update(c *gin.Context) {
	var req models.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	theme, err := h.themeService.Update(c.Request.Context(), c.Param("themeName"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, theme)
}

// Delete soft-deletes an active theme
// DELETE /theme/:themeName
func (h *ThemeHandler) Delete(c *gin.Context) {
	if err := h.themeService.Delete(c.Request.Context(), c.Param("themeName")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Theme deleted successfully")
}
