package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/pkg/response"
)

type UserStore struct {
	s *Store
}

func (u *UserStore) List(ctx context.Context) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := []models.User{}
	for _, usr := range u.s.users {
		if usr.IsActive {
			users = append(users, *usr)
		}
	}
	sortNewestFirst(users, func(usr models.User) time.Time { return usr.CreatedAt })
	return users, nil
}

func (u *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, usr := range u.s.users {
		if usr.IsActive && matchesKey(usr.Username, username) {
			copy := *usr
			return &copy, nil
		}
	}
	return nil, response.ErrNotFound
}

// GetByID resolves regardless of isActive, matching the reference check on
// project creation.
func (u *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, usr := range u.s.users {
		if usr.ID == oid {
			copy := *usr
			return &copy, nil
		}
	}
	return nil, response.ErrNotFound
}

func (u *UserStore) Insert(ctx context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, usr := range u.s.users {
		if usr.Username == user.Username {
			return &response.DuplicateError{Field: "username"}
		}
		if usr.Email == user.Email {
			return &response.DuplicateError{Field: "email"}
		}
	}

	user.ID = primitive.NewObjectID()
	stored := *user
	u.s.users = append(u.s.users, &stored)
	return nil
}

func (u *UserStore) Update(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, usr := range u.s.users {
		if !usr.IsActive || !matchesKey(usr.Username, username) {
			continue
		}
		if email, ok := fields["email"].(string); ok {
			for _, other := range u.s.users {
				if other != usr && other.Email == email {
					return nil, &response.DuplicateError{Field: "email"}
				}
			}
		}
		for k, v := range fields {
			switch k {
			case "email":
				usr.Email = v.(string)
			case "fullName":
				usr.FullName = v.(string)
			case "bio":
				usr.Bio = v.(string)
			}
		}
		usr.UpdatedAt = time.Now().UTC()
		copy := *usr
		return &copy, nil
	}
	return nil, response.ErrNotFound
}

func (u *UserStore) SoftDelete(ctx context.Context, username string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, usr := range u.s.users {
		if usr.IsActive && matchesKey(usr.Username, username) {
			usr.IsActive = false
			usr.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return response.ErrNotFound
}

func (u *UserStore) Count(ctx context.Context) (int64, int64, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	var active int64
	for _, usr := range u.s.users {
		if usr.IsActive {
			active++
		}
	}
	return int64(len(u.s.users)), active, nil
}
