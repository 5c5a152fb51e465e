package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

const applicationColumns = `id, job_id, student_id, status, created_at, updated_at`

type applicationRow struct {
	ID        string    `db:"id"`
	JobID     string    `db:"job_id"`
	StudentID string    `db:"student_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r applicationRow) toDomain() domain.Application {
	return domain.Application{
		ID:        r.ID,
		JobID:     r.JobID,
		StudentID: r.StudentID,
		Status:    domain.ApplicationStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	id := uuid.NewString()
	query := `
		INSERT INTO applications (id, job_id, student_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		id,
		app.JobID,
		app.StudentID,
		string(app.Status),
		app.CreatedAt,
		app.CreatedAt,
	); err != nil {
		return translate(err)
	}
	app.ID = id
	app.UpdatedAt = app.CreatedAt
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return r.get(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
}

func (r *applicationRepository) FindByStudentAndJob(ctx context.Context, studentID, jobID string) (*domain.Application, error) {
	return r.get(ctx, `SELECT `+applicationColumns+` FROM applications WHERE student_id = ? AND job_id = ?`, studentID, jobID)
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE student_id = ? ORDER BY seq`, studentID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = ? ORDER BY seq`, jobID)
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY seq`)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *applicationRepository) get(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	var row applicationRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translate(err)
	}
	app := row.toDomain()
	return &app, nil
}

func (r *applicationRepository) query(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	apps := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, row.toDomain())
	}
	return apps, nil
}
