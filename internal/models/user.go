package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a portfolio owner, keyed by its unique username. Both username and
// email carry unique indexes.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the slice of user fields inlined into project responses.
type UserSummary struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
}

func (r *CreateUserRequest) Validate() []string {
	var violations []string

	if r.Username == "" {
		violations = append(violations, "username is required")
	} else if len(r.Username) < 3 || len(r.Username) > 20 || !usernameRe.MatchString(r.Username) {
		violations = append(violations, "username must be 3-20 characters and contain only letters, numbers, and underscores")
	}
	if r.Email == "" {
		violations = append(violations, "email is required")
	} else if !emailRe.MatchString(r.Email) {
		violations = append(violations, "email must be a valid email address")
	}
	if r.FullName == "" {
		violations = append(violations, "fullName is required")
	} else if len(r.FullName) < 2 {
		violations = append(violations, "fullName must be at least 2 characters")
	}
	if len(r.Bio) > 500 {
		violations = append(violations, fmt.Sprintf("bio must be at most 500 characters (got %d)", len(r.Bio)))
	}

	return violations
}

func (r *CreateUserRequest) Entity(now time.Time) *User {
	return &User{
		Username:  r.Username,
		Email:     r.Email,
		FullName:  r.FullName,
		Bio:       r.Bio,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateUserRequest is a partial update; username is the immutable key and
// has no field here, so it is dropped at bind time.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	Bio      *string `json:"bio"`
}

func (r *UpdateUserRequest) Validate() []string {
	var violations []string

	if r.Email != nil && !emailRe.MatchString(*r.Email) {
		violations = append(violations, "email must be a valid email address")
	}
	if r.FullName != nil && len(*r.FullName) < 2 {
		violations = append(violations, "fullName must be at least 2 characters")
	}
	if r.Bio != nil && len(*r.Bio) > 500 {
		violations = append(violations, fmt.Sprintf("bio must be at most 500 characters (got %d)", len(*r.Bio)))
	}

	return violations
}

func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.FullName != nil {
		fields["fullName"] = *r.FullName
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	return fields
}
