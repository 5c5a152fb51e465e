package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
)

const applicationColumns = `id, job_id, student_id, status, created_at, updated_at`

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, student_id, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$4)
        RETURNING id, updated_at`
	return translate(r.pool.QueryRow(ctx, query,
		app.JobID,
		app.StudentID,
		app.Status,
		app.CreatedAt,
	).Scan(&app.ID, &app.UpdatedAt))
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id=$1`, id)
	app, err := scanApplication(row)
	if err != nil {
		return nil, translate(err)
	}
	return app, nil
}

func (r *applicationRepository) FindByStudentAndJob(ctx context.Context, studentID, jobID string) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE student_id=$1 AND job_id=$2`, studentID, jobID)
	app, err := scanApplication(row)
	if err != nil {
		return nil, translate(err)
	}
	return app, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE student_id=$1 ORDER BY seq`, studentID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id=$1 ORDER BY seq`, jobID)
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY seq`)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	const query = `
        UPDATE applications SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + applicationColumns
	app, err := scanApplication(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		return nil, translate(err)
	}
	return app, nil
}

func (r *applicationRepository) query(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	return result, rows.Err()
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.StudentID,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}
