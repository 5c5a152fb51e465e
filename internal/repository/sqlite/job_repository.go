package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

const jobColumns = `id, employer_id, title, description, requirements, location, salary, posted_at`

type jobRow struct {
	ID           string    `db:"id"`
	EmployerID   string    `db:"employer_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Requirements string    `db:"requirements"`
	Location     string    `db:"location"`
	Salary       string    `db:"salary"`
	PostedAt     time.Time `db:"posted_at"`
}

func (r jobRow) toDomain() domain.Job {
	return domain.Job{
		ID:           r.ID,
		EmployerID:   r.EmployerID,
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Salary:       r.Salary,
		PostedAt:     r.PostedAt,
	}
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	id := uuid.NewString()
	query := `
		INSERT INTO jobs (id, employer_id, title, description, requirements, location, salary, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		id,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.Salary,
		job.PostedAt,
	); err != nil {
		return translate(err)
	}
	job.ID = id
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var row jobRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id); err != nil {
		return nil, translate(err)
	}
	job := row.toDomain()
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE employer_id = ? ORDER BY seq`, employerID)
}

func (r *jobRepository) query(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	jobs := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, row.toDomain())
	}
	return jobs, nil
}
