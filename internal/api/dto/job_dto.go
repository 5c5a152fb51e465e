package dto

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
}

// ToInput maps the payload to the service input.
func (r CreateJobRequest) ToInput() service.JobCreateInput {
	return service.JobCreateInput{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		Salary:       r.Salary,
	}
}

// JobResponse view.
type JobResponse struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Tags         []string  `json:"tags"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	PostedAt     time.Time `json:"posted_at"`
}

// NewJobResponse maps a job.
func NewJobResponse(job domain.Job) JobResponse {
	return JobResponse{
		ID:           job.ID,
		EmployerID:   job.EmployerID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Tags:         job.Tags(),
		Location:     job.Location,
		Salary:       job.Salary,
		PostedAt:     job.PostedAt,
	}
}

// NewJobList maps jobs, never returning nil.
func NewJobList(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, NewJobResponse(job))
	}
	return out
}

// SetApprovalRequest payload for employer vetting.
type SetApprovalRequest struct {
	Approved *bool `json:"approved"`
}
