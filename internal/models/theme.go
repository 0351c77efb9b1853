package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theme is a site color/typography theme, keyed by its unique themeName.
type Theme struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ThemeName      string             `bson:"themeName" json:"themeName"`
	PrimaryColor   string             `bson:"primaryColor" json:"primaryColor"`
	SecondaryColor string             `bson:"secondaryColor" json:"secondaryColor"`
	FontFamily     string             `bson:"fontFamily" json:"fontFamily"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateThemeRequest struct {
	ThemeName      string `json:"themeName"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
}

// Validate collects every violation in the request. An empty result means
// the request is valid.
func (r *CreateThemeRequest) Validate() []string {
	var violations []string

	if r.ThemeName == "" {
		violations = append(violations, "themeName is required")
	}
	if r.PrimaryColor == "" {
		violations = append(violations, "primaryColor is required")
	} else if !hexColorRe.MatchString(r.PrimaryColor) {
		violations = append(violations, "primaryColor must be a valid hex color (e.g. #FF5733)")
	}
	if r.SecondaryColor == "" {
		violations = append(violations, "secondaryColor is required")
	} else if !hexColorRe.MatchString(r.SecondaryColor) {
		violations = append(violations, "secondaryColor must be a valid hex color (e.g. #33FF57)")
	}
	if r.FontFamily == "" {
		violations = append(violations, "fontFamily is required")
	} else if !isValidFontFamily(r.FontFamily) {
		violations = append(violations, fontFamilyMessage())
	}

	return violations
}

// Entity builds a Theme from a validated create request with fresh
// timestamps and isActive set.
func (r *CreateThemeRequest) Entity(now time.Time) *Theme {
	return &Theme{
		ThemeName:      r.ThemeName,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		FontFamily:     r.FontFamily,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateThemeRequest is a partial update. themeName is the immutable key and
// deliberately has no field here, so a payload attempting to change it is
// silently dropped at bind time.
type UpdateThemeRequest struct {
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	FontFamily     *string `json:"fontFamily"`
}

// Validate runs the per-field validators on whichever fields are present.
func (r *UpdateThemeRequest) Validate() []string {
	var violations []string

	if r.PrimaryColor != nil && !hexColorRe.MatchString(*r.PrimaryColor) {
		violations = append(violations, "primaryColor must be a valid hex color (e.g. #FF5733)")
	}
	if r.SecondaryColor != nil && !hexColorRe.MatchString(*r.SecondaryColor) {
		violations = append(violations, "secondaryColor must be a valid hex color (e.g. #33FF57)")
	}
	if r.FontFamily != nil && !isValidFontFamily(*r.FontFamily) {
		violations = append(violations, fontFamilyMessage())
	}

	return violations
}

// Fields returns the set-field map applied by the store.
func (r *UpdateThemeRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.PrimaryColor != nil {
		fields["primaryColor"] = *r.PrimaryColor
	}
	if r.SecondaryColor != nil {
		fields["secondaryColor"] = *r.SecondaryColor
	}
	if r.FontFamily != nil {
		fields["fontFamily"] = *r.FontFamily
	}
	return fields
}
