package memory

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/response"
)

type SkillStore struct {
	s *Store
}

func (k *SkillStore) List(ctx context.Context, filter storage.SkillFilter) ([]models.Skill, error) {
	category := strings.ToLower(filter.Category)

	k.s.mu.RLock()
	defer k.s.mu.RUnlock()

	skills := []models.Skill{}
	for _, sk := range k.s.skills {
		if !sk.IsActive {
			continue
		}
		if category != "" && sk.Category != category {
			continue
		}
		if filter.ProficiencyLevel != nil && sk.ProficiencyLevel != *filter.ProficiencyLevel {
			continue
		}
		skills = append(skills, *sk)
	}
	sortNewestFirst(skills, func(sk models.Skill) time.Time { return sk.CreatedAt })
	return skills, nil
}

func (k *SkillStore) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()

	for _, sk := range k.s.skills {
		if sk.IsActive && matchesKey(sk.Name, name) {
			copy := *sk
			return &copy, nil
		}
	}
	return nil, response.ErrNotFound
}

func (k *SkillStore) Insert(ctx context.Context, skill *models.Skill) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()

	for _, sk := range k.s.skills {
		if sk.Name == skill.Name {
			return &response.DuplicateError{Field: "name"}
		}
	}

	skill.ID = primitive.NewObjectID()
	stored := *skill
	k.s.skills = append(k.s.skills, &stored)
	return nil
}

func (k *SkillStore) Update(ctx context.Context, name string, fields map[string]interface{}) (*models.Skill, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()

	for _, sk := range k.s.skills {
		if !sk.IsActive || !matchesKey(sk.Name, name) {
			continue
		}
		for key, v := range fields {
			switch key {
			case "category":
				sk.Category = v.(string)
			case "proficiencyLevel":
				sk.ProficiencyLevel = v.(int)
			case "description":
				sk.Description = v.(string)
			}
		}
		sk.UpdatedAt = time.Now().UTC()
		copy := *sk
		return &copy, nil
	}
	return nil, response.ErrNotFound
}

func (k *SkillStore) SoftDelete(ctx context.Context, name string) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()

	for _, sk := range k.s.skills {
		if sk.IsActive && matchesKey(sk.Name, name) {
			sk.IsActive = false
			sk.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return response.ErrNotFound
}

func (k *SkillStore) Count(ctx context.Context) (int64, int64, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()

	var active int64
	for _, sk := range k.s.skills {
		if sk.IsActive {
			active++
		}
	}
	return int64(len(k.s.skills)), active, nil
}
