package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/events"
)

// ActivityService writes domain events to the log as an audit trail.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger.Named("activity"),
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	a.dispatcher.Subscribe(events.EventJobPosted, a.handleJobPosted)
	a.dispatcher.Subscribe(events.EventApplicationCreated, a.handleApplicationCreated)
	a.dispatcher.Subscribe(events.EventApplicationStatusChanged, a.handleApplicationStatusChanged)
	a.dispatcher.Subscribe(events.EventEmployerApprovalChanged, a.handleEmployerApprovalChanged)
}

func (a *ActivityService) handleUserRegistered(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.UserRegisteredPayload)
	a.logger.Info("UserRegistered", append(a.fields(event),
		zap.String("username", payload.Username),
		zap.String("role", string(payload.Role)))...)
	return nil
}

func (a *ActivityService) handleJobPosted(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.JobPostedPayload)
	a.logger.Info("JobPosted", append(a.fields(event),
		zap.String("title", payload.Title),
		zap.String("location", payload.Location))...)
	return nil
}

func (a *ActivityService) handleApplicationCreated(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.ApplicationCreatedPayload)
	a.logger.Info("ApplicationCreated", append(a.fields(event),
		zap.String("job_id", payload.JobID),
		zap.String("student_id", payload.StudentID))...)
	return nil
}

func (a *ActivityService) handleApplicationStatusChanged(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.ApplicationStatusChangedPayload)
	a.logger.Info("ApplicationStatusChanged", append(a.fields(event),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))...)
	return nil
}

func (a *ActivityService) handleEmployerApprovalChanged(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.EmployerApprovalChangedPayload)
	a.logger.Info("EmployerApprovalChanged", append(a.fields(event),
		zap.Bool("approved", payload.Approved))...)
	return nil
}

func (a *ActivityService) fields(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("resource_id", event.ResourceID),
		zap.String("actor_id", event.Actor.UserID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Time("at", event.Timestamp),
	}
}
