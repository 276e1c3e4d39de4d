package guard

import (
	"context"
	"net/http"

	"courier-console/internal/core/logger"
	"courier-console/internal/core/metrics"
	session "courier-console/internal/features/session/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	localsSession   = "session"
	localsSessionID = "sid"
)

// AccessDeniedMessage is shown on the access-denied view.
const AccessDeniedMessage = "You do not have permission to access this page"

// SessionResolver maps a session id to its current session.
type SessionResolver interface {
	Resolve(ctx context.Context, sid string) session.Session
}

// AccessDeniedView is the body of a 403 response.
type AccessDeniedView struct {
	View               string `json:"view"`
	Message            string `json:"message"`
	RequiredPermission string `json:"requiredPermission"`
}

// New returns middleware that resolves the caller's session from cookieName and
// applies Decide to every request.
func New(resolver SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		current := resolver.Resolve(c.Context(), sid)

		c.Locals(localsSessionID, sid)
		c.Locals(localsSession, current)

		decision := Decide(current, c.Path())
		metrics.GuardDecisions.WithLabelValues(string(decision.Outcome)).Inc()

		switch decision.Outcome {
		case OutcomeRedirectLogin, OutcomeRedirectHome:
			return c.Redirect(decision.Location, http.StatusFound)
		case OutcomeAccessDenied:
			rayID, _ := c.Locals("requestid").(string)
			logger.ForRequest(rayID).Info("Access denied",
				zap.String("path", c.Path()),
				zap.String("role", string(current.RoleName())),
				zap.String("required", string(decision.Required)),
			)
			return c.Status(http.StatusForbidden).JSON(AccessDeniedView{
				View:               "access-denied",
				Message:            AccessDeniedMessage,
				RequiredPermission: string(decision.Required),
			})
		}

		return c.Next()
	}
}

// SessionFrom returns the session the guard attached to c.
func SessionFrom(c *fiber.Ctx) session.Session {
	s, _ := c.Locals(localsSession).(session.Session)
	return s
}

// SessionIDFrom returns the session id the guard attached to c.
func SessionIDFrom(c *fiber.Ctx) string {
	sid, _ := c.Locals(localsSessionID).(string)
	return sid
}
