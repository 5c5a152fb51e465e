package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		Name:         r.Name,
		Email:        r.Email,
		CreatedAt:    r.CreatedAt,
	}
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateAccount(ctx context.Context, account *repository.Account) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	user := account.User
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	query := `
		INSERT INTO users (id, username, password_hash, role, name, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		id,
		user.Username,
		user.PasswordHash,
		string(user.Role),
		user.Name,
		user.Email,
		createdAt,
	); err != nil {
		return translate(err)
	}

	if account.Student != nil {
		profile := account.Student
		query := `
			INSERT INTO student_profiles (user_id, department, cgpa, graduation_year, resume_url)
			VALUES (?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, query,
			id, profile.Department, profile.CGPA, profile.GraduationYear, profile.ResumeURL,
		); err != nil {
			return fmt.Errorf("failed to create student profile: %w", translate(err))
		}
		profile.UserID = id
	}
	if account.Employer != nil {
		profile := account.Employer
		query := `
			INSERT INTO employer_profiles (user_id, company_name, industry, website, is_approved)
			VALUES (?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, query,
			id, profile.CompanyName, profile.Industry, profile.Website, profile.IsApproved,
		); err != nil {
			return fmt.Errorf("failed to create employer profile: %w", translate(err))
		}
		profile.UserID = id
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	user.ID = id
	user.CreatedAt = createdAt
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, role, name, email, created_at
		FROM users
		WHERE id = ?
	`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, translate(err)
	}
	return row.toDomain(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, role, name, email, created_at
		FROM users
		WHERE username = ?
	`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		return nil, translate(err)
	}
	return row.toDomain(), nil
}
