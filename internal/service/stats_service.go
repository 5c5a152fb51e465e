package service

import (
	"context"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

// StatsService reports portal-wide counters to placement staff.
type StatsService struct {
	stats repository.StatsRepository
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// ComputeStats returns totals with every application status present.
func (s *StatsService) ComputeStats(ctx context.Context, actor *domain.User) (*domain.Stats, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpViewStats); err != nil {
		return nil, err
	}
	stats, err := s.stats.Get(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	if stats.ApplicationsByStatus == nil {
		stats.ApplicationsByStatus = make(map[domain.ApplicationStatus]int)
	}
	for _, status := range domain.ApplicationStatuses() {
		if _, ok := stats.ApplicationsByStatus[status]; !ok {
			stats.ApplicationsByStatus[status] = 0
		}
	}
	return stats, nil
}
