package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// ApplicationService runs the application lifecycle.
type ApplicationService struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	events publisher
	logger *zap.Logger
	now    func() time.Time
}

// NewApplicationService constructs the service.
func NewApplicationService(apps repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		apps:   apps,
		jobs:   jobs,
		events: publisher{dispatcher: dispatcher, logger: logger},
		logger: logger,
		now:    time.Now,
	}
}

// CreateApplication files an application by student for jobID.
func (s *ApplicationService) CreateApplication(ctx context.Context, student *domain.User, jobID string) (*domain.Application, error) {
	if err := auth.AuthorizeOperation(student, auth.OpCreateApplication); err != nil {
		return nil, err
	}
	if jobID == "" {
		return nil, apperrors.NewValidationError("job_id is required", map[string]any{"field": "job_id"})
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": jobID})
		}
		return nil, internalError(err)
	}

	if _, err := s.apps.FindByStudentAndJob(ctx, student.ID, jobID); err == nil {
		return nil, alreadyApplied(jobID)
	} else if !isNotFound(err) {
		return nil, internalError(err)
	}

	now := s.now().UTC()
	app := &domain.Application{
		JobID:     jobID,
		StudentID: student.ID,
		Status:    domain.ApplicationStatusApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		// a concurrent request won the race past the pre-check
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, alreadyApplied(jobID)
		}
		return nil, internalError(err)
	}

	s.events.publish(ctx, events.Event{
		Type:       events.EventApplicationCreated,
		ResourceID: app.ID,
		Actor:      actorOf(student),
		Payload:    events.ApplicationCreatedPayload{JobID: jobID, StudentID: student.ID},
	})
	return app, nil
}

// ListApplicationsForViewer returns the applications visible to viewer.
// Students see their own, employers those on their jobs grouped by job,
// officers and admins everything.
func (s *ApplicationService) ListApplicationsForViewer(ctx context.Context, viewer *domain.User) ([]domain.Application, error) {
	if err := auth.AuthorizeOperation(viewer, auth.OpListApplications); err != nil {
		return nil, err
	}

	var (
		apps []domain.Application
		err  error
	)
	switch viewer.Role {
	case domain.RoleStudent:
		apps, err = s.apps.ListByStudent(ctx, viewer.ID)
	case domain.RoleEmployer:
		apps, err = s.listForEmployer(ctx, viewer.ID)
	case domain.RoleOfficer, domain.RoleAdmin:
		apps, err = s.apps.ListAll(ctx)
	}
	if err != nil {
		return nil, internalError(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

func (s *ApplicationService) listForEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	jobs, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	var apps []domain.Application
	for _, job := range jobs {
		forJob, err := s.apps.ListByJob(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		apps = append(apps, forJob...)
	}
	return apps, nil
}

// UpdateStatus moves an application forward in its lifecycle.
// Employers may only touch applications on their own jobs.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.User, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpUpdateApplicationStatus); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status",
			map[string]any{"field": "status", "value": string(status)})
	}

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if isNotFound(err) {
			return nil, applicationNotFound(applicationID)
		}
		return nil, internalError(err)
	}

	if actor.Role == domain.RoleEmployer {
		job, err := s.jobs.GetByID(ctx, app.JobID)
		if err != nil && !isNotFound(err) {
			return nil, internalError(err)
		}
		if job == nil || job.EmployerID != actor.ID {
			return nil, applicationNotFound(applicationID)
		}
	}

	if app.Status == status {
		return app, nil
	}
	if app.Status.Terminal() {
		return nil, apperrors.NewValidationError("application is already "+string(app.Status),
			map[string]any{"from": string(app.Status), "to": string(status)})
	}
	if !app.Status.CanTransitionTo(status) {
		return nil, apperrors.NewValidationError("cannot move application from "+string(app.Status)+" to "+string(status),
			map[string]any{"from": string(app.Status), "to": string(status)})
	}

	previous := app.Status
	updated, err := s.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if isNotFound(err) {
			return nil, applicationNotFound(applicationID)
		}
		return nil, internalError(err)
	}

	s.logger.Info("application status changed",
		zap.String("application_id", applicationID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
		zap.String("actor_id", actor.ID))
	s.events.publish(ctx, events.Event{
		Type:       events.EventApplicationStatusChanged,
		ResourceID: applicationID,
		Actor:      actorOf(actor),
		Payload:    events.ApplicationStatusChangedPayload{OldStatus: previous, NewStatus: status},
	})
	return updated, nil
}

func alreadyApplied(jobID string) error {
	return apperrors.NewConflict("already applied to this job", map[string]any{"job_id": jobID})
}

func applicationNotFound(id string) error {
	return apperrors.NewNotFound("application", map[string]any{"id": id})
}
