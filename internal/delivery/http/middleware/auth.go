package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/token"
	"github.com/safedumaguide/api/internal/pkg/utils"
)

const viewerKey = "viewer"

// Auth resolves the per-request Viewer from the bearer token. Required
// rejects unauthenticated requests with 401 in one place so handlers
// never re-derive the check; Optional leaves an anonymous viewer for
// public read endpoints.
type Auth struct {
	tokens *token.Manager
}

func NewAuth(tokens *token.Manager) *Auth {
	return &Auth{tokens: tokens}
}

func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := a.resolve(c)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		c.Locals(viewerKey, viewer)
		return c.Next()
	}
}

func (a *Auth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := a.resolve(c)
		if !ok {
			viewer = domain.Viewer{Role: domain.RoleUser}
		}
		c.Locals(viewerKey, viewer)
		return c.Next()
	}
}

func (a *Auth) resolve(c *fiber.Ctx) (domain.Viewer, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Viewer{}, false
	}

	claims, err := a.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return domain.Viewer{}, false
	}

	userID, err := claims.UserID()
	if err != nil {
		return domain.Viewer{}, false
	}

	role := domain.Role(claims.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	return domain.Viewer{UserID: &userID, Role: role}, true
}

// ViewerFromCtx returns the viewer stored by Required or Optional.
func ViewerFromCtx(c *fiber.Ctx) domain.Viewer {
	if v, ok := c.Locals(viewerKey).(domain.Viewer); ok {
		return v
	}
	return domain.Viewer{Role: domain.RoleUser}
}
