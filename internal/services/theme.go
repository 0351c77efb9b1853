package services

import (
	"context"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ThemeService struct {
	store storage.ThemeStore
}

func NewThemeService(store storage.ThemeStore) *ThemeService {
	return &ThemeService{store: store}
}

// List returns active themes, newest first.
func (s *ThemeService) List(ctx context.Context) ([]models.Theme, error) {
	return s.store.List(ctx)
}

func (s *ThemeService) GetByName(ctx context.Context, name string) (*models.Theme, error) {
	return s.store.GetByName(ctx, name)
}

func (s *ThemeService) Create(ctx context.Context, req *models.CreateThemeRequest) (*models.Theme, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}

	theme := req.Entity(time.Now().UTC())
	if err := s.store.Insert(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Update applies the present fields to the active theme matched by name.
// An empty payload still refreshes updatedAt.
func (s *ThemeService) Update(ctx context.Context, name string, req *models.UpdateThemeRequest) (*models.Theme, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}
	return s.store.Update(ctx, name, req.Fields())
}

func (s *ThemeService) Delete(ctx context.Context, name string) error {
	return s.store.SoftDelete(ctx, name)
}
