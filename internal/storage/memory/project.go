package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type ProjectStore struct {
	s *Store
}

func (p *ProjectStore) List(ctx context.Context, filter storage.ProjectFilter) ([]models.Project, error) {
	var userID primitive.ObjectID
	if filter.UserID != "" {
		var err error
		userID, err = primitive.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return nil, response.ErrInvalidID
		}
	}

	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	projects := []models.Project{}
	for _, pr := range p.s.projects {
		if !pr.IsActive {
			continue
		}
		if filter.Status != "" && pr.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && pr.UserID != userID {
			continue
		}
		projects = append(projects, *pr)
	}
	sortNewestFirst(projects, func(pr models.Project) time.Time { return pr.CreatedAt })
	return projects, nil
}

func (p *ProjectStore) GetByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}

	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	for _, pr := range p.s.projects {
		if pr.IsActive && pr.ID == oid {
			copy := *pr
			return &copy, nil
		}
	}
	return nil, response.ErrNotFound
}

func (p *ProjectStore) Insert(ctx context.Context, project *models.Project) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	project.ID = primitive.NewObjectID()
	stored := *project
	stored.User = nil
	p.s.projects = append(p.s.projects, &stored)
	return nil
}

func (p *ProjectStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, response.ErrInvalidID
	}

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, pr := range p.s.projects {
		if !pr.IsActive || pr.ID != oid {
			continue
		}
		for k, v := range fields {
			switch k {
			case "title":
				pr.Title = v.(string)
			case "description":
				pr.Description = v.(string)
			case "technologies":
				pr.Technologies = v.([]string)
			case "githubUrl":
				pr.GithubURL = v.(string)
			case "liveUrl":
				pr.LiveURL = v.(string)
			case "status":
				pr.Status = v.(string)
			}
		}
		pr.UpdatedAt = time.Now().UTC()
		copy := *pr
		return &copy, nil
	}
	return nil, response.ErrNotFound
}

func (p *ProjectStore) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return response.ErrInvalidID
	}

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, pr := range p.s.projects {
		if pr.IsActive && pr.ID == oid {
			pr.IsActive = false
			pr.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return response.ErrNotFound
}

func (p *ProjectStore) Count(ctx context.Context) (int64, int64, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	var active int64
	for _, pr := range p.s.projects {
		if pr.IsActive {
			active++
		}
	}
	return int64(len(p.s.projects)), active, nil
}
