package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Field validation rules shared by the create and update request types.
// Validation is not fail-fast: every violation in a request is collected and
// reported together.

var (
	hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	githubRe   = regexp.MustCompile(`^https://github\.com/.+`)
	urlRe      = regexp.MustCompile(`^https?://.+`)
)

// FontFamilies are the allowed theme fonts. Matching is case-sensitive.
var FontFamilies = []string{
	"Arial", "Helvetica", "Georgia", "Roboto", "Open Sans", "Lato", "Montserrat",
}

// SkillCategories are the allowed skill categories. Input is lowercased
// before checking, so matching is effectively case-insensitive.
var SkillCategories = []string{
	"frontend", "backend", "database", "devops", "mobile", "design", "other",
}

// ProjectStatuses are the allowed project lifecycle states.
var ProjectStatuses = []string{
	"planning", "in-progress", "completed", "on-hold",
}

func isValidFontFamily(font string) bool {
	for _, f := range FontFamilies {
		if f == font {
			return true
		}
	}
	return false
}

func isValidCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == strings.ToLower(category) {
			return true
		}
	}
	return false
}

func isValidStatus(status string) bool {
	for _, s := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func fontFamilyMessage() string {
	return fmt.Sprintf("fontFamily must be one of: %s", strings.Join(FontFamilies, ", "))
}

func categoryMessage() string {
	return fmt.Sprintf("category must be one of: %s", strings.Join(SkillCategories, ", "))
}

func statusMessage() string {
	return fmt.Sprintf("status must be one of: %s", strings.Join(ProjectStatuses, ", "))
}
