package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(store storage.SkillStore) *SkillHandler {
	return &SkillHandler{skillService: services.NewSkillService(store)}
}

// List returns active skills, optionally filtered by category
// (case-insensitive) and proficiencyLevel
// GET /skill?category=&proficiencyLevel=
func (h *SkillHandler) List(c *gin.Context) {
	filter := storage.SkillFilter{Category: c.Query("category")}

	// Out-of-range or non-numeric proficiency filters are dropped, not
	// rejected.
	if raw := c.Query("proficiencyLevel"); raw != "" {
		if level, err := strconv.Atoi(raw); err == nil && level >= 1 && level <= 5 {
			filter.ProficiencyLevel = &level
		}
	}

	skills, err := h.skillService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, skills, len(skills))
}

// GetByName returns the first active skill matching the name
// GET /skill/:name
func (h *SkillHandler) GetByName(c *gin.Context) {
	skill, err := h.skillService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skill)
}

// Create creates a new skill
// POST /skill
func (h *SkillHandler) Create(c *gin.Context) {
	var req models.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, skill)
}

// Update applies a partial update to an active skill
// PUT /skill/:name
func (h *SkillHandler) Update(c *gin.Context) {
	var req models.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, &response.ValidationError{Messages: []string{"request body must be valid JSON"}})
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), c.Param("name"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skill)
}

// Delete soft-deletes an active skill
// DELETE /skill/:name
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Skill deleted successfully")
}
