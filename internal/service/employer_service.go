package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// EmployerService lets placement staff vet employer accounts.
type EmployerService struct {
	profiles repository.ProfileRepository
	events   publisher
}

// NewEmployerService constructs the service.
func NewEmployerService(profiles repository.ProfileRepository, dispatcher events.Dispatcher, logger *zap.Logger) *EmployerService {
	return &EmployerService{
		profiles: profiles,
		events:   publisher{dispatcher: dispatcher, logger: logger},
	}
}

// SetApproval grants or revokes an employer's right to post jobs.
func (s *EmployerService) SetApproval(ctx context.Context, actor *domain.User, employerID string, approved bool) (*domain.EmployerProfile, error) {
	if err := auth.AuthorizeOperation(actor, auth.OpSetEmployerApproval); err != nil {
		return nil, err
	}

	profile, err := s.profiles.SetEmployerApproval(ctx, employerID, approved)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFound("employer", map[string]any{"id": employerID})
		}
		return nil, internalError(err)
	}

	s.events.publish(ctx, events.Event{
		Type:       events.EventEmployerApprovalChanged,
		ResourceID: employerID,
		Actor:      actorOf(actor),
		Payload:    events.EmployerApprovalChangedPayload{Approved: approved},
	})
	return profile, nil
}
