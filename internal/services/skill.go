package services

import (
	"context"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type SkillService struct {
	store storage.SkillStore
}

func NewSkillService(store storage.SkillStore) *SkillService {
	return &SkillService{store: store}
}

func (s *SkillService) List(ctx context.Context, filter storage.SkillFilter) ([]models.Skill, error) {
	return s.store.List(ctx, filter)
}

func (s *SkillService) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.store.GetByName(ctx, name)
}

func (s *SkillService) Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}

	skill := req.Entity(time.Now().UTC())
	if err := s.store.Insert(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, name string, req *models.UpdateSkillRequest) (*models.Skill, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}
	return s.store.Update(ctx, name, req.Fields())
}

func (s *SkillService) Delete(ctx context.Context, name string) error {
	return s.store.SoftDelete(ctx, name)
}
