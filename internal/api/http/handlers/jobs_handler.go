package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/service"
)

// JobsHandler exposes job endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobs.ListJobs(c.UserContext(), user)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewJobList(jobs))
}

// Get handles GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.GetJob(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewJobResponse(*job))
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateJobRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	job, err := h.jobs.CreateJob(c.UserContext(), user, req.ToInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto.NewJobResponse(*job))
}
