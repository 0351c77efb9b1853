package services

import (
	"context"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type UserService struct {
	store storage.UserStore
}

func NewUserService(store storage.UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.List(ctx)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.store.GetByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}

	user := req.Entity(time.Now().UTC())
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}
	return s.store.Update(ctx, username, req.Fields())
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.store.SoftDelete(ctx, username)
}
