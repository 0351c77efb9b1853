// Package memory implements the storage interfaces with in-process state.
// It backs the service and handler test suites and the --memory development
// mode. Semantics mirror the mongodb package: soft-deleted records stay
// invisible to reads but still occupy their natural key.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/storage"
)

// Store holds all four collections behind one lock.
type Store struct {
	mu       sync.RWMutex
	themes   []*models.Theme
	users    []*models.User
	projects []*models.Project
	skills   []*models.Skill
}

func New() *Store {
	return &Store{}
}

// Stores returns the bundle of entity stores backed by this instance.
func (s *Store) Stores() *storage.Stores {
	return &storage.Stores{
		Themes:   &ThemeStore{s: s},
		Users:    &UserStore{s: s},
		Projects: &ProjectStore{s: s},
		Skills:   &SkillStore{s: s},
		Health:   s,
	}
}

// Ping always succeeds; the memory backend has no connection to lose.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// matchesKey reports whether value matches the case-insensitive substring
// lookup used for natural keys.
func matchesKey(value, key string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(key))
}

// sortNewestFirst orders creation times descending, keeping insertion order
// for equal timestamps.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
