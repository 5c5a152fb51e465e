package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// JobCreateInput carries a new posting. Requirements is a comma-delimited tag list.
type JobCreateInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required,max=10000"`
	Requirements string `json:"requirements" validate:"max=1000"`
	Location     string `json:"location" validate:"required,max=200"`
	Salary       string `json:"salary" validate:"max=100"`
}

// JobService manages job postings.
type JobService struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	events   publisher
	now      func() time.Time
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, profiles repository.ProfileRepository, dispatcher events.Dispatcher, logger *zap.Logger) *JobService {
	return &JobService{
		jobs:     jobs,
		profiles: profiles,
		events:   publisher{dispatcher: dispatcher, logger: logger},
		now:      time.Now,
	}
}

// ListJobs returns every posting in posting order.
func (s *JobService) ListJobs(ctx context.Context, actor *domain.User) ([]domain.Job, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpListJobs); err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return jobs, nil
}

// GetJob fetches one posting.
func (s *JobService) GetJob(ctx context.Context, actor *domain.User, id string) (*domain.Job, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpGetJob); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": id})
		}
		return nil, internalError(err)
	}
	return job, nil
}

// CreateJob posts a job owned by actor. Only approved employers may post.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.User, input JobCreateInput) (*domain.Job, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpCreateJob); err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)
	input.Salary = strings.TrimSpace(input.Salary)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetEmployer(ctx, actor.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewForbidden("employer profile required")
		}
		return nil, internalError(err)
	}
	if !profile.IsApproved {
		return nil, apperrors.NewForbidden("employer is not approved")
	}

	job := &domain.Job{
		EmployerID:   actor.ID,
		Title:        input.Title,
		Description:  input.Description,
		Requirements: strings.Join(domain.Job{Requirements: input.Requirements}.Tags(), ", "),
		Location:     input.Location,
		Salary:       input.Salary,
		PostedAt:     s.now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, internalError(err)
	}

	s.events.publish(ctx, events.Event{
		Type:       events.EventJobPosted,
		ResourceID: job.ID,
		Actor:      actorOf(actor),
		Payload:    events.JobPostedPayload{Title: job.Title, Location: job.Location},
	})
	return job, nil
}
