package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(store storage.UserStore) *UserHandler {
	return &UserHandler{userService: services.NewUserService(store)}
}

// List returns all active users, newest first
// GET /user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, users, len(users))
}

// GetByUsername returns the first active user matching the username
// GET /user/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Create creates a new user
// POST /user
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Update applies a partial update to an active user
// PUT /user/:username
func (h *UserHandler) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete soft-deletes an active user
// DELETE /user/:username
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("username")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
