// Package storage defines the persistence contracts for the four entity
// collections. Implementations return the tagged error set from
// pkg/response so every handler failure funnels through one mapper:
// response.ErrNotFound, response.ErrInvalidID, *response.DuplicateError and
// response.ErrUnavailable.
package storage

import (
	"context"

	"portfolio-backend/internal/models"
)

// ThemeStore persists Theme records keyed by themeName.
type ThemeStore interface {
	// List returns active themes, newest-created first.
	List(ctx context.Context) ([]models.Theme, error)
	// GetByName matches active themes by case-insensitive substring on
	// themeName and returns the first match in query order.
	GetByName(ctx context.Context, name string) (*models.Theme, error)
	Insert(ctx context.Context, theme *models.Theme) error
	// Update applies fields (plus a refreshed updatedAt) to the active
	// theme matched by name and returns the updated record.
	Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Theme, error)
	// SoftDelete marks the active theme matched by name inactive.
	SoftDelete(ctx context.Context, name string) error
	Count(ctx context.Context) (total, active int64, err error)
}

// UserStore persists User records keyed by username.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByID resolves a user by ObjectID hex regardless of isActive; it is
	// the existence check behind Project ownership references.
	GetByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error)
	SoftDelete(ctx context.Context, username string) error
	Count(ctx context.Context) (total, active int64, err error)
}

// ProjectFilter restricts List to exact matches on the given fields.
type ProjectFilter struct {
	Status string
	UserID string
}

// ProjectStore persists Project records keyed by generated ObjectID.
type ProjectStore interface {
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Project, error)
	SoftDelete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, active int64, err error)
}

// SkillFilter restricts List. Category matches case-insensitively;
// ProficiencyLevel, when non-nil, matches exactly (callers drop out-of-range
// values before building the filter).
type SkillFilter struct {
	Category         string
	ProficiencyLevel *int
}

// SkillStore persists Skill records keyed by name.
type SkillStore interface {
	List(ctx context.Context, filter SkillFilter) ([]models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	Insert(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Skill, error)
	SoftDelete(ctx context.Context, name string) error
	Count(ctx context.Context) (total, active int64, err error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Stores bundles the four entity stores and the health check for injection
// into services and handlers.
type Stores struct {
	Themes   ThemeStore
	Users    UserStore
	Projects ProjectStore
	Skills   SkillStore
	Health   HealthChecker
}
