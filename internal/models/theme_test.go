package models

import (
	"testing"
	"time"
)

func validThemeRequest() CreateThemeRequest {
	return CreateThemeRequest{
		ThemeName:      "dark",
		PrimaryColor:   "#1A1A2E",
		SecondaryColor: "#E94560",
		FontFamily:     "Roboto",
	}
}

func TestCreateThemeRequest_Valid(t *testing.T) {
	req := validThemeRequest()
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestCreateThemeRequest_HexColors(t *testing.T) {
	testCases := []struct {
		color string
		valid bool
	}{
		{"#FF5733", true},
		{"#abc", true},
		{"#ABCDEF", true},
		{"FF5733", false},
		{"#GG5733", false},
		{"#FF57", false},
		{"#FF5733AA", false},
		{"red", false},
	}

	for _, tc := range testCases {
		req := validThemeRequest()
		req.PrimaryColor = tc.color
		violations := req.Validate()
		if tc.valid && len(violations) != 0 {
			t.Errorf("color %q: expected valid, got %v", tc.color, violations)
		}
		if !tc.valid && len(violations) == 0 {
			t.Errorf("color %q: expected violation, got none", tc.color)
		}
	}
}

func TestCreateThemeRequest_FontFamilyCaseSensitive(t *testing.T) {
	req := validThemeRequest()
	req.FontFamily = "roboto"
	if violations := req.Validate(); len(violations) == 0 {
		t.Error("lowercase font family should be rejected")
	}

	req.FontFamily = "Open Sans"
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("expected no violations for Open Sans, got %v", violations)
	}
}

func TestCreateThemeRequest_CollectsAllViolations(t *testing.T) {
	req := CreateThemeRequest{}
	violations := req.Validate()
	if len(violations) != 4 {
		t.Errorf("expected 4 violations for empty request, got %d: %v", len(violations), violations)
	}
}

func TestCreateThemeRequest_Entity(t *testing.T) {
	req := validThemeRequest()
	now := time.Now()
	theme := req.Entity(now)

	if !theme.IsActive {
		t.Error("new theme should be active")
	}
	if !theme.CreatedAt.Equal(now) || !theme.UpdatedAt.Equal(now) {
		t.Error("createdAt and updatedAt should both equal the creation time")
	}
	if theme.ThemeName != "dark" {
		t.Errorf("unexpected theme name: %s", theme.ThemeName)
	}
}

func TestUpdateThemeRequest_EmptyIsValid(t *testing.T) {
	req := UpdateThemeRequest{}
	if violations := req.Validate(); len(violations) != 0 {
		t.Errorf("empty update should be valid, got %v", violations)
	}
	if fields := req.Fields(); len(fields) != 0 {
		t.Errorf("empty update should produce no fields, got %v", fields)
	}
}

func TestUpdateThemeRequest_Fields(t *testing.T) {
	color := "#FFFFFF"
	req := UpdateThemeRequest{PrimaryColor: &color}

	fields := req.Fields()
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields["primaryColor"] != "#FFFFFF" {
		t.Errorf("unexpected primaryColor: %v", fields["primaryColor"])
	}
}

func TestUpdateThemeRequest_InvalidColor(t *testing.T) {
	color := "not-a-color"
	req := UpdateThemeRequest{SecondaryColor: &color}
	if violations := req.Validate(); len(violations) != 1 {
		t.Errorf("expected 1 violation, got %v", violations)
	}
}
