package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

func currentUser(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal.User, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}
