package services

import (
	"context"

	"portfolio-backend/internal/storage"
)

// StatsService serves the read-only aggregate endpoints: it fans count
// queries out across all four stores and merges the results. It never
// mutates anything.
type StatsService struct {
	stores *storage.Stores
}

func NewStatsService(stores *storage.Stores) *StatsService {
	return &StatsService{stores: stores}
}

// DatabaseConnected reports store reachability for the health endpoint.
func (s *StatsService) DatabaseConnected(ctx context.Context) bool {
	return s.stores.Health.Ping(ctx) == nil
}

type CollectionStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// Collections returns total and active record counts per collection.
func (s *StatsService) Collections(ctx context.Context) (map[string]CollectionStats, error) {
	counts := make(map[string]CollectionStats, 4)

	for name, count := range map[string]func(context.Context) (int64, int64, error){
		"themes":   s.stores.Themes.Count,
		"users":    s.stores.Users.Count,
		"projects": s.stores.Projects.Count,
		"skills":   s.stores.Skills.Count,
	} {
		total, active, err := count(ctx)
		if err != nil {
			return nil, err
		}
		counts[name] = CollectionStats{Total: total, Active: active}
	}
	return counts, nil
}
