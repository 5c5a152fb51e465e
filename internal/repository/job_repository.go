package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
)

const jobColumns = `id, employer_id, title, description, requirements, location, salary, posted_at`

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (employer_id, title, description, requirements, location, salary, posted_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	return translate(r.pool.QueryRow(ctx, query,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.Salary,
		job.PostedAt,
	).Scan(&job.ID))
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id)
	job, err := scanJob(row)
	if err != nil {
		return nil, translate(err)
	}
	return job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE employer_id=$1 ORDER BY seq`, employerID)
}

func (r *jobRepository) query(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	return result, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.Location,
		&job.Salary,
		&job.PostedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
