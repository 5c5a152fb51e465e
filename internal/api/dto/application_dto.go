package dto

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
)

// CreateApplicationRequest payload.
type CreateApplicationRequest struct {
	JobID string `json:"job_id"`
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// ApplicationResponse view.
type ApplicationResponse struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"job_id"`
	StudentID string                   `json:"student_id"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// NewApplicationResponse maps an application.
func NewApplicationResponse(app domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		StudentID: app.StudentID,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

// NewApplicationList maps applications, never returning nil.
func NewApplicationList(apps []domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationResponse(app))
	}
	return out
}

// StatsResponse view of the aggregate counters.
type StatsResponse struct {
	TotalJobs            int                              `json:"total_jobs"`
	TotalApplications    int                              `json:"total_applications"`
	TotalStudents        int                              `json:"total_students"`
	TotalEmployers       int                              `json:"total_employers"`
	ApplicationsByStatus map[domain.ApplicationStatus]int `json:"applications_by_status"`
}

// NewStatsResponse maps stats.
func NewStatsResponse(stats *domain.Stats) StatsResponse {
	return StatsResponse{
		TotalJobs:            stats.TotalJobs,
		TotalApplications:    stats.TotalApplications,
		TotalStudents:        stats.TotalStudents,
		TotalEmployers:       stats.TotalEmployers,
		ApplicationsByStatus: stats.ApplicationsByStatus,
	}
}
