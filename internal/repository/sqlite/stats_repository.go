package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

type statusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context) (*domain.Stats, error) {
	stats := repository.NewStats()

	counts := []struct {
		dest  *int
		query string
		args  []any
	}{
		{&stats.TotalJobs, `SELECT COUNT(*) FROM jobs`, nil},
		{&stats.TotalApplications, `SELECT COUNT(*) FROM applications`, nil},
		{&stats.TotalStudents, `SELECT COUNT(*) FROM users WHERE role = ?`, []any{string(domain.RoleStudent)}},
		{&stats.TotalEmployers, `SELECT COUNT(*) FROM users WHERE role = ?`, []any{string(domain.RoleEmployer)}},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query, c.args...); err != nil {
			return nil, err
		}
	}

	var byStatus []statusCount
	if err := r.db.SelectContext(ctx, &byStatus,
		`SELECT status, COUNT(*) AS count FROM applications GROUP BY status`); err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ApplicationsByStatus[domain.ApplicationStatus(row.Status)] = row.Count
	}
	return stats, nil
}
