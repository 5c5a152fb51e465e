package domain

import "time"

// ApplicationStatus enumerates lifecycle states for applications.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every known status in lifecycle order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReviewing,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:   {ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewing: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Re-applying the current status is always allowed and changes nothing.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application links a student to a job.
type Application struct {
	ID        string
	JobID     string
	StudentID string
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
