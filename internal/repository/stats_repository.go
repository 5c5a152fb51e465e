package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
)

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Get(ctx context.Context) (*domain.Stats, error) {
	stats := NewStats()

	const totals = `
        SELECT
            (SELECT COUNT(*) FROM jobs),
            (SELECT COUNT(*) FROM applications),
            (SELECT COUNT(*) FROM users WHERE role=$1),
            (SELECT COUNT(*) FROM users WHERE role=$2)`
	if err := r.pool.QueryRow(ctx, totals, domain.RoleStudent, domain.RoleEmployer).Scan(
		&stats.TotalJobs,
		&stats.TotalApplications,
		&stats.TotalStudents,
		&stats.TotalEmployers,
	); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.ApplicationStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ApplicationsByStatus[status] = count
	}
	return stats, rows.Err()
}

// NewStats returns zeroed stats with every known status present.
func NewStats() *domain.Stats {
	byStatus := make(map[domain.ApplicationStatus]int, len(domain.ApplicationStatuses()))
	for _, status := range domain.ApplicationStatuses() {
		byStatus[status] = 0
	}
	return &domain.Stats{ApplicationsByStatus: byStatus}
}
