package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

func TestRegisterCreatesProfileAndSession(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	ctx := context.Background()

	var published []events.Event
	env.dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	user, issued, err := env.auth.Register(ctx, RegisterInput{
		Username: "alice",
		Password: "student123",
		Role:     domain.RoleStudent,
		Name:     "Alice",
		Email:    "alice@student.edu",
		Student:  &StudentDetails{Department: "Computer Science", CGPA: 3.8, GraduationYear: 2024},
		Employer: &EmployerDetails{CompanyName: "ignored"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "student123" {
		t.Fatal("password was not hashed")
	}
	if issued.Token == "" || !issued.ExpiresAt.After(time.Now()) {
		t.Fatalf("unexpected session %+v", issued)
	}

	current, err := env.auth.CurrentUser(ctx, issued.Token)
	if err != nil || current.ID != user.ID {
		t.Fatalf("CurrentUser = %v, %v", current, err)
	}

	student, employer, err := env.auth.Profiles(ctx, user)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if student == nil || student.Department != "Computer Science" || employer != nil {
		t.Fatalf("unexpected profiles %+v %+v", student, employer)
	}
	if _, err := env.store.Profiles.GetEmployer(ctx, user.ID); err == nil {
		t.Fatal("employer details must be ignored for students")
	}

	if len(published) != 1 || published[0].ResourceID != user.ID {
		t.Fatalf("expected one registration event, got %+v", published)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())

	cases := []struct {
		name  string
		input RegisterInput
		field string
	}{
		{"missing username", RegisterInput{Password: "secret123", Role: domain.RoleAdmin, Name: "x", Email: "x@x.io"}, "username"},
		{"short password", RegisterInput{Username: "bob", Password: "123", Role: domain.RoleAdmin, Name: "x", Email: "x@x.io"}, "password"},
		{"unknown role", RegisterInput{Username: "bob", Password: "secret123", Role: "janitor", Name: "x", Email: "x@x.io"}, "role"},
		{"bad email", RegisterInput{Username: "bob", Password: "secret123", Role: domain.RoleAdmin, Name: "x", Email: "nope"}, "email"},
		{"student without details", RegisterInput{Username: "bob", Password: "secret123", Role: domain.RoleStudent, Name: "x", Email: "x@x.io"}, "student_details"},
		{"employer without company", RegisterInput{
			Username: "bob", Password: "secret123", Role: domain.RoleEmployer, Name: "x", Email: "x@x.io",
			Employer: &EmployerDetails{},
		}, "employer_details.company_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.auth.Register(context.Background(), tc.input)
			assertCode(t, err, apperrors.CodeValidation)
			details := apperrors.ToDomainError(err).Details
			if details["field"] != tc.field {
				t.Fatalf("expected field %q, got %v (%v)", tc.field, details["field"], err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	env.register(t, "admin", domain.RoleAdmin)

	_, _, err := env.auth.Register(context.Background(), RegisterInput{
		Username: "admin", Password: "other123", Role: domain.RoleOfficer, Name: "Other", Email: "o@x.io",
	})
	assertCode(t, err, apperrors.CodeDuplicateUsername)
}

func TestEmployerApprovalDefault(t *testing.T) {
	cfg := testAuthConfig()
	cfg.EmployerAutoApprove = false
	env := newTestEnv(t, cfg)

	employer := env.register(t, "acme", domain.RoleEmployer)
	_, profile, err := env.auth.Profiles(context.Background(), employer)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if profile == nil || profile.IsApproved {
		t.Fatalf("expected unapproved employer, got %+v", profile)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	env.register(t, "alice", domain.RoleStudent)
	ctx := context.Background()

	_, _, wrongPassword := env.auth.Login(ctx, LoginInput{Username: "alice", Password: "wrong-password"})
	_, _, unknownUser := env.auth.Login(ctx, LoginInput{Username: "mallory", Password: "secret123"})

	assertCode(t, wrongPassword, apperrors.CodeUnauthorized)
	assertCode(t, unknownUser, apperrors.CodeUnauthorized)
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failures differ: %q vs %q", wrongPassword, unknownUser)
	}

	user, issued, err := env.auth.Login(ctx, LoginInput{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "alice" || issued.Token == "" {
		t.Fatalf("unexpected login result %+v %+v", user, issued)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	env.register(t, "alice", domain.RoleStudent)
	ctx := context.Background()

	_, issued, err := env.auth.Login(ctx, LoginInput{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := env.auth.Logout(ctx, issued.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	_, err = env.auth.CurrentUser(ctx, issued.Token)
	assertCode(t, err, apperrors.CodeUnauthorized)

	// logging out twice, or with garbage, still succeeds
	if err := env.auth.Logout(ctx, issued.Token); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	if err := env.auth.Logout(ctx, "not-a-token"); err != nil {
		t.Fatalf("Logout garbage: %v", err)
	}
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := env.auth.CurrentUser(ctx, token)
		assertCode(t, err, apperrors.CodeUnauthorized)
	}
}

func TestCurrentUserExpiredSession(t *testing.T) {
	env := newTestEnv(t, testAuthConfig())
	env.register(t, "alice", domain.RoleStudent)
	ctx := context.Background()

	_, issued, err := env.auth.Login(ctx, LoginInput{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock := &fixedClock{now: time.Now().Add(25 * time.Hour)}
	env.sessions.WithClock(clock.Now)

	_, err = env.auth.CurrentUser(ctx, issued.Token)
	assertCode(t, err, apperrors.CodeUnauthorized)
}
