package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio entry keyed by its generated ObjectID. UserID
// references the owning User; the reference is checked at creation time but
// never cascaded, so a project may outlive its user's active state.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	GithubURL    string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LiveURL      string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	Status       string             `bson:"status" json:"status"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// User is populated on create/update responses with the referenced
	// user's summary; it is never persisted.
	User *UserSummary `bson:"-" json:"user,omitempty"`
}

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Status       string   `json:"status"`
	UserID       string   `json:"userId"`
}

func (r *CreateProjectRequest) Validate() []string {
	var violations []string

	if r.Title == "" {
		violations = append(violations, "title is required")
	} else if len(r.Title) < 3 || len(r.Title) > 100 {
		violations = append(violations, fmt.Sprintf("title must be between 3 and 100 characters (got %d)", len(r.Title)))
	}
	if r.Description == "" {
		violations = append(violations, "description is required")
	} else if len(r.Description) < 10 || len(r.Description) > 1000 {
		violations = append(violations, fmt.Sprintf("description must be between 10 and 1000 characters (got %d)", len(r.Description)))
	}
	if len(r.Technologies) == 0 {
		violations = append(violations, "technologies must be a non-empty list")
	}
	if r.GithubURL != "" && !githubRe.MatchString(r.GithubURL) {
		violations = append(violations, "githubUrl must be a valid GitHub URL (https://github.com/...)")
	}
	if r.LiveURL != "" && !urlRe.MatchString(r.LiveURL) {
		violations = append(violations, "liveUrl must be a valid URL")
	}
	if r.Status != "" && !isValidStatus(r.Status) {
		violations = append(violations, statusMessage())
	}
	if r.UserID == "" {
		violations = append(violations, "userId is required")
	}

	return violations
}

// Entity builds a Project from a validated create request. userID is the
// already-resolved owner id; status defaults to planning.
func (r *CreateProjectRequest) Entity(userID primitive.ObjectID, now time.Time) *Project {
	status := r.Status
	if status == "" {
		status = "planning"
	}
	return &Project{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		GithubURL:    r.GithubURL,
		LiveURL:      r.LiveURL,
		Status:       status,
		UserID:       userID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpdateProjectRequest is a partial update. The generated id is the
// immutable key; userId is likewise fixed at creation and has no field here.
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Status       *string   `json:"status"`
}

func (r *UpdateProjectRequest) Validate() []string {
	var violations []string

	if r.Title != nil && (len(*r.Title) < 3 || len(*r.Title) > 100) {
		violations = append(violations, fmt.Sprintf("title must be between 3 and 100 characters (got %d)", len(*r.Title)))
	}
	if r.Description != nil && (len(*r.Description) < 10 || len(*r.Description) > 1000) {
		violations = append(violations, fmt.Sprintf("description must be between 10 and 1000 characters (got %d)", len(*r.Description)))
	}
	if r.Technologies != nil && len(*r.Technologies) == 0 {
		violations = append(violations, "technologies must be a non-empty list")
	}
	if r.GithubURL != nil && *r.GithubURL != "" && !githubRe.MatchString(*r.GithubURL) {
		violations = append(violations, "githubUrl must be a valid GitHub URL (https://github.com/...)")
	}
	if r.LiveURL != nil && *r.LiveURL != "" && !urlRe.MatchString(*r.LiveURL) {
		violations = append(violations, "liveUrl must be a valid URL")
	}
	if r.Status != nil && !isValidStatus(*r.Status) {
		violations = append(violations, statusMessage())
	}

	return violations
}

func (r *UpdateProjectRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Technologies != nil {
		fields["technologies"] = *r.Technologies
	}
	if r.GithubURL != nil {
		fields["githubUrl"] = *r.GithubURL
	}
	if r.LiveURL != nil {
		fields["liveUrl"] = *r.LiveURL
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}
