package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

const invalidCredentials = "invalid credentials"

// StudentDetails is the profile captured when a student registers.
type StudentDetails struct {
	Department     string  `json:"department" validate:"required,max=128"`
	CGPA           float64 `json:"cgpa" validate:"gte=0,lte=10"`
	GraduationYear int     `json:"graduation_year" validate:"required,gte=1950,lte=2100"`
	ResumeURL      string  `json:"resume_url" validate:"omitempty,url,max=512"`
}

// EmployerDetails is the profile captured when an employer registers.
type EmployerDetails struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Industry    string `json:"industry" validate:"max=128"`
	Website     string `json:"website" validate:"omitempty,url,max=512"`
}

// RegisterInput carries a new account. Only the details matching Role are kept.
type RegisterInput struct {
	Username string           `json:"username" validate:"required,min=3,max=64"`
	Password string           `json:"password" validate:"required,min=6,max=128"`
	Role     domain.Role      `json:"role" validate:"required,oneof=student employer officer admin"`
	Name     string           `json:"name" validate:"required,max=128"`
	Email    string           `json:"email" validate:"required,email,max=254"`
	Student  *StudentDetails  `json:"student_details" validate:"required_if=Role student"`
	Employer *EmployerDetails `json:"employer_details" validate:"required_if=Role employer"`
}

// LoginInput carries credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IssuedSession is the client-facing handle of a fresh session.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService is the identity provider: accounts, credentials and sessions.
type AuthService struct {
	users               repository.UserRepository
	profiles            repository.ProfileRepository
	sessions            auth.SessionStore
	tokens              *auth.TokenManager
	hasher              auth.Hasher
	events              publisher
	logger              *zap.Logger
	employerAutoApprove bool
	dummyCredential     string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Sessions    auth.SessionStore
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) (*AuthService, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	hasher := auth.NewHasher(cfg.ScryptN, cfg.ScryptR, cfg.ScryptP)

	// verified against when the username is unknown so both failures cost the same
	dummy, err := hasher.Hash("placement-portal-dummy-password")
	if err != nil {
		return nil, err
	}

	return &AuthService{
		users:               deps.UserRepo,
		profiles:            deps.ProfileRepo,
		sessions:            deps.Sessions,
		tokens:              auth.NewTokenManager(cfg.SessionSecret),
		hasher:              hasher,
		events:              publisher{dispatcher: deps.Dispatcher, logger: logger},
		logger:              logger,
		employerAutoApprove: cfg.EmployerAutoApprove,
		dummyCredential:     dummy,
	}, nil
}

// Register creates an account with its role profile and opens a session for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *IssuedSession, error) {
	user, err := s.createAccount(ctx, input, s.employerAutoApprove)
	if err != nil {
		return nil, nil, err
	}

	issued, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:       events.EventUserRegistered,
		ResourceID: user.ID,
		Actor:      actorOf(user),
		Payload:    events.UserRegisteredPayload{Username: user.Username, Role: user.Role},
	})
	return user, issued, nil
}

// createAccount validates input, hashes the password and stores user plus profile.
func (s *AuthService) createAccount(ctx context.Context, input RegisterInput, approveEmployer bool) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Role != domain.RoleStudent {
		input.Student = nil
	}
	if input.Role != domain.RoleEmployer {
		input.Employer = nil
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewDuplicateUsername(input.Username)
	} else if !isNotFound(err) {
		return nil, internalError(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, internalError(err)
	}

	account := &repository.Account{
		User: &domain.User{
			Username:     input.Username,
			PasswordHash: hash,
			Role:         input.Role,
			Name:         input.Name,
			Email:        input.Email,
		},
	}
	if d := input.Student; d != nil {
		account.Student = &domain.StudentProfile{
			Department:     strings.TrimSpace(d.Department),
			CGPA:           d.CGPA,
			GraduationYear: d.GraduationYear,
			ResumeURL:      strings.TrimSpace(d.ResumeURL),
		}
	}
	if d := input.Employer; d != nil {
		account.Employer = &domain.EmployerProfile{
			CompanyName: strings.TrimSpace(d.CompanyName),
			Industry:    strings.TrimSpace(d.Industry),
			Website:     strings.TrimSpace(d.Website),
			IsApproved:  approveEmployer,
		}
	}

	if err := s.users.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewDuplicateUsername(input.Username)
		}
		return nil, internalError(err)
	}
	return account.User, nil
}

// Login verifies credentials. Unknown users and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, *IssuedSession, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := validateInput(input); err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if !isNotFound(err) {
			return nil, nil, internalError(err)
		}
		s.hasher.Verify(input.Password, s.dummyCredential)
		return nil, nil, apperrors.NewUnauthorized(invalidCredentials)
	}
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, nil, apperrors.NewUnauthorized(invalidCredentials)
	}

	issued, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, issued, nil
}

// Logout ends the session behind token. Unknown or invalid tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to delete session", zap.Error(err))
	}
	return nil
}

// CurrentUser resolves token to its user. Any failure is reported as Unauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorized("not authenticated")
	}
	sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("not authenticated")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return nil, apperrors.NewUnauthorized("not authenticated")
		}
		return nil, internalError(err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewUnauthorized("not authenticated")
		}
		return nil, internalError(err)
	}
	return user, nil
}

// Profiles returns the role profile of user; at most one of the results is non-nil.
func (s *AuthService) Profiles(ctx context.Context, user *domain.User) (*domain.StudentProfile, *domain.EmployerProfile, error) {
	switch user.Role {
	case domain.RoleStudent:
		profile, err := s.profiles.GetStudent(ctx, user.ID)
		if err != nil && !isNotFound(err) {
			return nil, nil, internalError(err)
		}
		return profile, nil, nil
	case domain.RoleEmployer:
		profile, err := s.profiles.GetEmployer(ctx, user.ID)
		if err != nil && !isNotFound(err) {
			return nil, nil, internalError(err)
		}
		return nil, profile, nil
	default:
		return nil, nil, nil
	}
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*IssuedSession, error) {
	session, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, internalError(err)
	}
	token, err := s.tokens.Sign(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, internalError(err)
	}
	return &IssuedSession{Token: token, ExpiresAt: session.ExpiresAt}, nil
}
