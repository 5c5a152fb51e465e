package events

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered           EventType = "user_registered"
	EventJobPosted                EventType = "job_posted"
	EventApplicationCreated       EventType = "application_created"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventEmployerApprovalChanged  EventType = "employer_approval_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

// ApplicationCreatedPayload payload.
type ApplicationCreatedPayload struct {
	JobID     string `json:"job_id"`
	StudentID string `json:"student_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	OldStatus domain.ApplicationStatus `json:"old_status"`
	NewStatus domain.ApplicationStatus `json:"new_status"`
}

// EmployerApprovalChangedPayload payload.
type EmployerApprovalChangedPayload struct {
	Approved bool `json:"approved"`
}
