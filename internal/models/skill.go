package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is a proficiency entry, keyed by its unique name. Category is
// normalized to lowercase before storage.
type Skill struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Category         string             `bson:"category" json:"category"`
	ProficiencyLevel int                `bson:"proficiencyLevel" json:"proficiencyLevel"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateSkillRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel int    `json:"proficiencyLevel"`
	Description      string `json:"description"`
}

func (r *CreateSkillRequest) Validate() []string {
	var violations []string

	if r.Name == "" {
		violations = append(violations, "name is required")
	} else if len(r.Name) < 2 || len(r.Name) > 50 {
		violations = append(violations, fmt.Sprintf("name must be between 2 and 50 characters (got %d)", len(r.Name)))
	}
	if r.Category == "" {
		violations = append(violations, "category is required")
	} else if !isValidCategory(r.Category) {
		violations = append(violations, categoryMessage())
	}
	if r.ProficiencyLevel < 1 || r.ProficiencyLevel > 5 {
		violations = append(violations, "proficiencyLevel must be an integer between 1 and 5")
	}
	if len(r.Description) > 200 {
		violations = append(violations, fmt.Sprintf("description must be at most 200 characters (got %d)", len(r.Description)))
	}

	return violations
}

func (r *CreateSkillRequest) Entity(now time.Time) *Skill {
	return &Skill{
		Name:             r.Name,
		Category:         strings.ToLower(r.Category),
		ProficiencyLevel: r.ProficiencyLevel,
		Description:      r.Description,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// UpdateSkillRequest is a partial update; name is the immutable key and has
// no field here.
type UpdateSkillRequest struct {
	Category         *string `json:"category"`
	ProficiencyLevel *int    `json:"proficiencyLevel"`
	Description      *string `json:"description"`
}

func (r *UpdateSkillRequest) Validate() []string {
	var violations []string

	if r.Category != nil && !isValidCategory(*r.Category) {
		violations = append(violations, categoryMessage())
	}
	if r.ProficiencyLevel != nil && (*r.ProficiencyLevel < 1 || *r.ProficiencyLevel > 5) {
		violations = append(violations, "proficiencyLevel must be an integer between 1 and 5")
	}
	if r.Description != nil && len(*r.Description) > 200 {
		violations = append(violations, fmt.Sprintf("description must be at most 200 characters (got %d)", len(*r.Description)))
	}

	return violations
}

func (r *UpdateSkillRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Category != nil {
		fields["category"] = strings.ToLower(*r.Category)
	}
	if r.ProficiencyLevel != nil {
		fields["proficiencyLevel"] = *r.ProficiencyLevel
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}
