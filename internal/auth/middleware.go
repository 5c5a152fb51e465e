package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User  *domain.User
	Token string
}

// Authenticator resolves a session token to its user.
type Authenticator interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware validates session tokens and loads principals.
type AuthMiddleware struct {
	identity   Authenticator
	cookieName string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(identity Authenticator, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, cookieName: cookieName}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := TokenFromRequest(c, m.cookieName)
	if token == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := m.identity.CurrentUser(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(principalKey, &Principal{User: user, Token: token})
	return c.Next()
}

// RequirePermission rejects principals whose role may not perform op.
func RequirePermission(op Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if err := AuthorizeOperation(principal.User, op); err != nil {
			return err
		}
		return c.Next()
	}
}

// TokenFromRequest reads the session token from the cookie, then from a bearer header.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if cookieName != "" {
		if token := c.Cookies(cookieName); token != "" {
			return token
		}
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal.User != nil
}
