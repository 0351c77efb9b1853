package services

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ProjectService struct {
	store storage.ProjectStore
	users storage.UserStore
}

func NewProjectService(store storage.ProjectStore, users storage.UserStore) *ProjectService {
	return &ProjectService{store: store, users: users}
}

func (s *ProjectService) List(ctx context.Context, filter storage.ProjectFilter) ([]models.Project, error) {
	return s.store.List(ctx, filter)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the request, resolves the owner reference, and inserts.
// The existence check and the insert are two separate store calls with no
// transaction between them: a user soft-deleted in that window leaves the
// new project referencing an inactive user. That weak-consistency window is
// accepted, not worked around.
func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}

	owner, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			// A well-formed id that resolves to nothing is a validation
			// failure, not an id-format error.
			return nil, &response.ValidationError{
				Messages: []string{"userId does not reference an existing user"},
			}
		}
		return nil, err
	}

	project := req.Entity(owner.ID, time.Now().UTC())
	if err := s.store.Insert(ctx, project); err != nil {
		return nil, err
	}

	project.User = owner.Summary()
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &response.ValidationError{Messages: violations}
	}

	project, err := s.store.Update(ctx, id, req.Fields())
	if err != nil {
		return nil, err
	}

	if owner, err := s.users.GetByID(ctx, project.UserID.Hex()); err == nil {
		project.User = owner.Summary()
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.SoftDelete(ctx, id)
}
