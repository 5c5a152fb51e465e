package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/service"
)

// ApplicationsHandler exposes the application workflow.
type ApplicationsHandler struct {
	apps *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(apps *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{apps: apps}
}

// List handles GET /api/applications, scoped to the caller.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	apps, err := h.apps.ListApplicationsForViewer(c.UserContext(), user)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewApplicationList(apps))
}

// Create handles POST /api/applications.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateApplicationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	app, err := h.apps.CreateApplication(c.UserContext(), user, req.JobID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto.NewApplicationResponse(*app))
}

// UpdateStatus handles PATCH /api/applications/:id/status.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	app, err := h.apps.UpdateStatus(c.UserContext(), user, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewApplicationResponse(*app))
}
