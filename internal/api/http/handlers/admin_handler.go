package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/service"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// AdminHandler exposes endpoints reserved for placement staff.
type AdminHandler struct {
	stats     *service.StatsService
	employers *service.EmployerService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(stats *service.StatsService, employers *service.EmployerService) *AdminHandler {
	return &AdminHandler{stats: stats, employers: employers}
}

// Stats handles GET /api/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	stats, err := h.stats.ComputeStats(c.UserContext(), user)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewStatsResponse(stats))
}

// SetEmployerApproval handles PATCH /api/employers/:id/approval.
func (h *AdminHandler) SetEmployerApproval(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.SetApprovalRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Approved == nil {
		return apperrors.NewValidationError("approved is required", map[string]any{"field": "approved"})
	}

	profile, err := h.employers.SetApproval(c.UserContext(), user, c.Params("id"), *req.Approved)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewEmployerProfileResponse(profile))
}
