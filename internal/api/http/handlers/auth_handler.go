package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
)

// CookieSettings controls the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, issued, err := h.auth.Register(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return h.sessionResponse(c, http.StatusCreated, user, issued)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, issued, err := h.auth.Login(c.UserContext(), service.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return err
	}
	return h.sessionResponse(c, http.StatusOK, user, issued)
}

// Logout handles POST /api/auth/logout. It always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), auth.TokenFromRequest(c, h.cookie.Name)); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return respond(c, http.StatusOK, fiber.Map{"message": "logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	student, employer, err := h.auth.Profiles(c.UserContext(), user)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.MeResponse{
		User:     dto.NewUserResponse(user),
		Student:  dto.NewStudentProfileResponse(student),
		Employer: dto.NewEmployerProfileResponse(employer),
	})
}

func (h *AuthHandler) sessionResponse(c *fiber.Ctx, status int, user *domain.User, issued *service.IssuedSession) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    issued.Token,
		Path:     "/",
		Expires:  issued.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return respond(c, status, fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{Token: issued.Token, ExpiresAt: issued.ExpiresAt},
	})
}
