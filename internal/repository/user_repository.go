package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/placement-service/internal/domain"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) CreateAccount(ctx context.Context, account *Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	user := account.User
	const insertUser = `
        INSERT INTO users (username, password_hash, role, name, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertUser,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Name,
		user.Email,
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		return translate(err)
	}

	if account.Student != nil {
		account.Student.UserID = user.ID
		if err := insertStudent(ctx, tx, account.Student); err != nil {
			return fmt.Errorf("insert student profile: %w", translate(err))
		}
	}
	if account.Employer != nil {
		account.Employer.UserID = user.ID
		if err := insertEmployer(ctx, tx, account.Employer); err != nil {
			return fmt.Errorf("insert employer profile: %w", translate(err))
		}
	}

	return tx.Commit(ctx)
}

func insertStudent(ctx context.Context, tx pgx.Tx, profile *domain.StudentProfile) error {
	const query = `
        INSERT INTO student_profiles (user_id, department, cgpa, graduation_year, resume_url)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query,
		profile.UserID,
		profile.Department,
		profile.CGPA,
		profile.GraduationYear,
		profile.ResumeURL,
	)
	return err
}

func insertEmployer(ctx context.Context, tx pgx.Tx, profile *domain.EmployerProfile) error {
	const query = `
        INSERT INTO employer_profiles (user_id, company_name, industry, website, is_approved)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query,
		profile.UserID,
		profile.CompanyName,
		profile.Industry,
		profile.Website,
		profile.IsApproved,
	)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, role, name, email, created_at
        FROM users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, role, name, email, created_at
        FROM users WHERE username=$1`
	return r.scanOne(ctx, query, username)
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
