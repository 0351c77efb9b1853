package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(store storage.ProjectStore, users storage.UserStore) *ProjectHandler {
	return &ProjectHandler{projectService: services.NewProjectService(store, users)}
}

// List returns active projects, optionally filtered by status and userId
// GET /project?status=&userId=
func (h *ProjectHandler) List(c *gin.Context) {
	filter := storage.ProjectFilter{
		Status: c.Query("status"),
		UserID: c.Query("userId"),
	}

	projects, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, projects, len(projects))
}

// GetByID returns the active project with the given id
// GET /project/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project)
}

// Create creates a new project owned by an existing user (requires auth)
// POST /project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project)
}

// Update applies a partial update to an active project
// PUT /project/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project)
}

// Delete soft-deletes an active project
// DELETE /project/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Project deleted successfully")
}
