package models

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validProjectRequest() CreateProjectRequest {
	return CreateProjectRequest{
		Title:        "Portfolio API",
		Description:  "A REST API for managing portfolio content",
		Technologies: []string{"Go", "MongoDB"},
		GithubURL:    "https://github.com/janedoe/portfolio-api",
		LiveURL:      "https://portfolio.example.com",
		Status:       "in-progress",
		UserID:       primitive.NewObjectID().Hex(),
	}
}

func TestCreateProjectRequest_Valid(t *testing.T) {
	req := validProjectRequest()
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestCreateProjectRequest_TitleLength(t *testing.T) {
	testCases := []struct {
		length int
		valid  bool
	}{
		{2, false},
		{3, true},
		{100, true},
		{101, false},
	}

	for _, tc := range testCases {
		req := validProjectRequest()
		req.Title = strings.Repeat("t", tc.length)
		violations := req.Validate()
		if tc.valid && len(violations) != 0 {
			t.Errorf("title length %d: expected valid, got %v", tc.length, violations)
		}
		if !tc.valid && len(violations) == 0 {
			t.Errorf("title length %d: expected violation, got none", tc.length)
		}
	}
}

func TestCreateProjectRequest_DescriptionLength(t *testing.T) {
	req := validProjectRequest()
	req.Description = strings.Repeat("d", 9)
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("9-char description should be rejected")
	}

	req.Description = strings.Repeat("d", 1000)
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("1000-char description should be valid, got %v", violations)
	}

	req.Description = strings.Repeat("d", 1001)
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("1001-char description should be rejected")
	}
}

func TestCreateProjectRequest_URLs(t *testing.T) {
	req := validProjectRequest()
	req.GithubURL = "https://gitlab.com/janedoe/project"
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("non-github URL should be rejected for githubUrl")
	}

	req = validProjectRequest()
	req.LiveURL = "ftp://example.com"
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("non-http URL should be rejected for liveUrl")
	}

	// Both URL fields are optional
	req = validProjectRequest()
	req.GithubURL = ""
	req.LiveURL = ""
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("empty URLs should be valid, got %v", violations)
	}
}

func TestCreateProjectRequest_Status(t *testing.T) {
	for _, status := range ProjectStatuses {
		req := validProjectRequest()
		req.Status = status
		if violations := req.Validate(); len(violations) != 0 {
			t.Errorf("status %q: expected valid, got %v", status, violations)
		}
	}

	req := validProjectRequest()
	req.Status = "finished"
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("unknown status should be rejected")
	}
}

func TestCreateProjectRequest_EmptyTechnologies(t *testing.T) {
	req := validProjectRequest()
	req.Technologies = nil
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("empty technologies should be rejected")
	}

	req.Technologies = []string{}
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("empty technologies slice should be rejected")
	}
}

func TestCreateProjectRequest_EntityDefaultsStatus(t *testing.T) {
	req := validProjectRequest()
	req.Status = ""
	userID := primitive.NewObjectID()
	now := time.Now()

	project := req.Entity(userID, now)
	if project.Status != "planning" {
		t.Errorf("expected default status planning, got %s", project.Status)
	}
	if project.UserID != userID {
		t.Error("entity should carry the resolved owner id")
	}
	if !project.IsActive {
		t.Error("new project should be active")
	}
}

func TestUpdateProjectRequest_PartialValidation(t *testing.T) {
	short := "ab"
	req := UpdateProjectRequest{Title: &short}
	if violations := req.Validate(); len(violations) != 1 {
		t.Errorf("expected 1 violation for short title, got %v", violations)
	}

	empty := UpdateProjectRequest{}
	if violations := empty.Validate(); len(violations) != 0 {
		t.Errorf("empty update should be valid, got %v", violations)
	}
}

func TestUpdateProjectRequest_Fields(t *testing.T) {
	status := "completed"
	techs := []string{"Go"}
	req := UpdateProjectRequest{Status: &status, Technologies: &techs}

	fields := req.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
	}
	if fields["status"] != "completed" {
		t.Errorf("unexpected status field: %v", fields["status"])
	}
}
