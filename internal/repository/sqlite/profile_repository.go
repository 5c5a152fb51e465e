package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

type studentRow struct {
	UserID         string  `db:"user_id"`
	Department     string  `db:"department"`
	CGPA           float64 `db:"cgpa"`
	GraduationYear int     `db:"graduation_year"`
	ResumeURL      string  `db:"resume_url"`
}

type employerRow struct {
	UserID      string `db:"user_id"`
	CompanyName string `db:"company_name"`
	Industry    string `db:"industry"`
	Website     string `db:"website"`
	IsApproved  bool   `db:"is_approved"`
}

func (r employerRow) toDomain() *domain.EmployerProfile {
	return &domain.EmployerProfile{
		UserID:      r.UserID,
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		Website:     r.Website,
		IsApproved:  r.IsApproved,
	}
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	query := `
		SELECT user_id, department, cgpa, graduation_year, resume_url
		FROM student_profiles
		WHERE user_id = ?
	`
	var row studentRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return nil, translate(err)
	}
	return &domain.StudentProfile{
		UserID:         row.UserID,
		Department:     row.Department,
		CGPA:           row.CGPA,
		GraduationYear: row.GraduationYear,
		ResumeURL:      row.ResumeURL,
	}, nil
}

func (r *profileRepository) GetEmployer(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT user_id, company_name, industry, website, is_approved
		FROM employer_profiles
		WHERE user_id = ?
	`
	var row employerRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return nil, translate(err)
	}
	return row.toDomain(), nil
}

func (r *profileRepository) SetEmployerApproval(ctx context.Context, userID string, approved bool) (*domain.EmployerProfile, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE employer_profiles SET is_approved = ? WHERE user_id = ?`, approved, userID)
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
	return r.GetEmployer(ctx, userID)
}
