package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/persistence"
	"github.com/spec-kit/placement-service/internal/repository"
	sqliterepo "github.com/spec-kit/placement-service/internal/repository/sqlite"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

type testEnv struct {
	store      *repository.Store
	sessions   *auth.MemorySessionStore
	dispatcher events.Dispatcher
	auth       *AuthService
	jobs       *JobService
	apps       *ApplicationService
	employers  *EmployerService
	stats      *StatsService
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SessionSecret:       "test-secret",
		SessionTTLHours:     24,
		ScryptN:             1024,
		ScryptR:             8,
		ScryptP:             1,
		EmployerAutoApprove: true,
	}
}

func newTestEnv(t *testing.T, cfg config.AuthConfig) *testEnv {
	t.Helper()

	db, err := persistence.NewSQLite(config.SQLiteConfig{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(db.Close)
	if err := sqliterepo.Migrate(context.Background(), db.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := sqliterepo.NewStore(db.DB)
	sessions := auth.NewMemorySessionStore(cfg.SessionTTL())
	dispatcher := events.NewInMemoryDispatcher()

	authSvc, err := NewAuthService(cfg, AuthDependencies{
		UserRepo:    store.Users,
		ProfileRepo: store.Profiles,
		Sessions:    sessions,
		Dispatcher:  dispatcher,
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	return &testEnv{
		store:      store,
		sessions:   sessions,
		dispatcher: dispatcher,
		auth:       authSvc,
		jobs:       NewJobService(store.Jobs, store.Profiles, dispatcher, nil),
		apps:       NewApplicationService(store.Applications, store.Jobs, dispatcher, nil),
		employers:  NewEmployerService(store.Profiles, dispatcher, nil),
		stats:      NewStatsService(store.Stats),
	}
}

func (e *testEnv) register(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	input := RegisterInput{
		Username: username,
		Password: "secret123",
		Role:     role,
		Name:     username,
		Email:    username + "@example.com",
	}
	switch role {
	case domain.RoleStudent:
		input.Student = &StudentDetails{Department: "CS", CGPA: 3.2, GraduationYear: 2025}
	case domain.RoleEmployer:
		input.Employer = &EmployerDetails{CompanyName: username + " Ltd"}
	}
	user, _, err := e.auth.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
	return user
}

func (e *testEnv) postJob(t *testing.T, employer *domain.User, title string) *domain.Job {
	t.Helper()
	job, err := e.jobs.CreateJob(context.Background(), employer, JobCreateInput{
		Title:       title,
		Description: "Build things",
		Location:    "Remote",
	})
	if err != nil {
		t.Fatalf("CreateJob(%s): %v", title, err)
	}
	return job
}

func (e *testEnv) apply(t *testing.T, student *domain.User, job *domain.Job) *domain.Application {
	t.Helper()
	app, err := e.apps.CreateApplication(context.Background(), student, job.ID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	return app
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !apperrors.HasCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }
