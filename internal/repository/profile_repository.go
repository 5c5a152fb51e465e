package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	const query = `
        SELECT user_id, department, cgpa, graduation_year, resume_url
        FROM student_profiles WHERE user_id=$1`

	var profile domain.StudentProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Department,
		&profile.CGPA,
		&profile.GraduationYear,
		&profile.ResumeURL,
	); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetEmployer(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	const query = `
        SELECT user_id, company_name, industry, website, is_approved
        FROM employer_profiles WHERE user_id=$1`

	var profile domain.EmployerProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.CompanyName,
		&profile.Industry,
		&profile.Website,
		&profile.IsApproved,
	); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) SetEmployerApproval(ctx context.Context, userID string, approved bool) (*domain.EmployerProfile, error) {
	const query = `
        UPDATE employer_profiles SET is_approved=$1
        WHERE user_id=$2
        RETURNING user_id, company_name, industry, website, is_approved`

	var profile domain.EmployerProfile
	if err := r.pool.QueryRow(ctx, query, approved, userID).Scan(
		&profile.UserID,
		&profile.CompanyName,
		&profile.Industry,
		&profile.Website,
		&profile.IsApproved,
	); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}
