package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/pkg/response"
)

type ThemeStore struct {
	s *Store
}

func (t *ThemeStore) List(ctx context.Context) ([]models.Theme, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	themes := []models.Theme{}
	for _, th := range t.s.themes {
		if th.IsActive {
			themes = append(themes, *th)
		}
	}
	sortNewestFirst(themes, func(th models.Theme) time.Time { return th.CreatedAt })
	return themes, nil
}

func (t *ThemeStore) GetByName(ctx context.Context, name string) (*models.Theme, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	for _, th := range t.s.themes {
		if th.IsActive && matchesKey(th.ThemeName, name) {
			copy := *th
			return &copy, nil
		}
	}
	return nil, response.ErrNotFound
}

func (t *ThemeStore) Insert(ctx context.Context, theme *models.Theme) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	// Uniqueness spans soft-deleted records, matching the unique index.
	for _, th := range t.s.themes {
		if th.ThemeName == theme.ThemeName {
			return &response.DuplicateError{Field: "themeName"}
		}
	}

	theme.ID = primitive.NewObjectID()
	stored := *theme
	t.s.themes = append(t.s.themes, &stored)
	return nil
}

func (t *ThemeStore) Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Theme, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, th := range t.s.themes {
		if !th.IsActive || !matchesKey(th.ThemeName, name) {
			continue
		}
		for k, v := range fields {
			switch k {
			case "primaryColor":
				th.PrimaryColor = v.(string)
			case "secondaryColor":
				th.SecondaryColor = v.(string)
			case "fontFamily":
				th.FontFamily = v.(string)
			}
		}
		th.UpdatedAt = time.Now().UTC()
		copy := *th
		return &copy, nil
	}
	return nil, response.ErrNotFound
}

func (t *ThemeStore) SoftDelete(ctx context.Context, name string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, th := range t.s.themes {
		if th.IsActive && matchesKey(th.ThemeName, name) {
			th.IsActive = false
			th.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return response.ErrNotFound
}

func (t *ThemeStore) Count(ctx context.Context) (int64, int64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var active int64
	for _, th := range t.s.themes {
		if th.IsActive {
			active++
		}
	}
	return int64(len(t.s.themes)), active, nil
}
