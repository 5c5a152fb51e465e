package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
)

// Seeder loads the demo accounts and job used for local development.
type Seeder struct {
	auth   *AuthService
	users  repository.UserRepository
	jobs   repository.JobRepository
	logger *zap.Logger
}

// NewSeeder constructs a seeder writing through authSvc and jobs.
func NewSeeder(authSvc *AuthService, users repository.UserRepository, jobs repository.JobRepository, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{auth: authSvc, users: users, jobs: jobs, logger: logger}
}

var demoAccounts = []RegisterInput{
	{
		Username: "admin",
		Password: "admin123",
		Role:     domain.RoleAdmin,
		Name:     "System Admin",
		Email:    "admin@college.edu",
	},
	{
		Username: "techcorp",
		Password: "emp123",
		Role:     domain.RoleEmployer,
		Name:     "Tech Corp HR",
		Email:    "hr@techcorp.com",
		Employer: &EmployerDetails{
			CompanyName: "Tech Corp",
			Industry:    "Software",
			Website:     "https://techcorp.com",
		},
	},
	{
		Username: "alice",
		Password: "student123",
		Role:     domain.RoleStudent,
		Name:     "Alice Smith",
		Email:    "alice@student.edu",
		Student: &StudentDetails{
			Department:     "Computer Science",
			CGPA:           3.8,
			GraduationYear: 2024,
			ResumeURL:      "https://example.com/resume.pdf",
		},
	},
}

// Seed inserts the demo data. It does nothing when the admin account exists,
// and reports whether anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	if _, err := s.users.GetByUsername(ctx, "admin"); err == nil {
		s.logger.Info("demo data already present, skipping seed")
		return false, nil
	} else if !isNotFound(err) {
		return false, internalError(err)
	}

	created := make(map[string]*domain.User, len(demoAccounts))
	for _, input := range demoAccounts {
		// the demo employer must be able to post regardless of auto-approval
		user, err := s.auth.createAccount(ctx, input, true)
		if err != nil {
			return false, err
		}
		created[user.Username] = user
	}

	job := &domain.Job{
		EmployerID:   created["techcorp"].ID,
		Title:        "Junior React Developer",
		Description:  "We are looking for a junior developer with React skills.",
		Requirements: "React, Node.js, TypeScript",
		Location:     "Remote",
		Salary:       "$60,000",
		PostedAt:     time.Now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return false, internalError(err)
	}

	s.logger.Info("seeded demo data",
		zap.Int("accounts", len(created)),
		zap.String("job_id", job.ID))
	return true, nil
}
