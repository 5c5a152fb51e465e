package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/placement-service/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Account is a user together with the profile that belongs to its role.
type Account struct {
	User     *domain.User
	Student  *domain.StudentProfile
	Employer *domain.EmployerProfile
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	// CreateAccount stores the user and its profile in one transaction.
	CreateAccount(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ProfileRepository reads role profiles.
type ProfileRepository interface {
	GetStudent(ctx context.Context, userID string) (*domain.StudentProfile, error)
	GetEmployer(ctx context.Context, userID string) (*domain.EmployerProfile, error)
	SetEmployerApproval(ctx context.Context, userID string, approved bool) (*domain.EmployerProfile, error)
}

// JobRepository encapsulates job persistence. Lists are in posting order.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error)
}

// ApplicationRepository encapsulates application persistence. Lists are in creation order.
type ApplicationRepository interface {
	// Create fails with ErrDuplicate when the student already applied to the job.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	FindByStudentAndJob(ctx context.Context, studentID, jobID string) (*domain.Application, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

// StatsRepository computes aggregate counters.
type StatsRepository interface {
	Get(ctx context.Context) (*domain.Stats, error)
}

// Store bundles every repository a persistence provider offers.
type Store struct {
	Users        UserRepository
	Profiles     ProfileRepository
	Jobs         JobRepository
	Applications ApplicationRepository
	Stats        StatsRepository
}
