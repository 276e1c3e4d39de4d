// Package guardtest provides fixed sessions for exercising handlers behind the guard.
package guardtest

import (
	"context"
	"net/http"

	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/access/guard"
	session "courier-console/internal/features/session/domain"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie used by Mount.
const CookieName = "console_sid"

// Resolver resolves session ids from a fixed map.
type Resolver map[string]session.Session

// Resolve implements guard.SessionResolver.
func (r Resolver) Resolve(_ context.Context, sid string) session.Session {
	return r[sid]
}

// SignedIn returns an authenticated session with role and token "tok-<role>".
func SignedIn(role access.RoleName) session.Session {
	return session.Session{
		User:            &session.User{ID: "u-" + string(role), Email: "user@courier.test"},
		Role:            &access.Role{Name: role},
		AccessToken:     "tok-" + string(role),
		IsAuthenticated: true,
	}
}

// Mount installs the guard on app with r as its session source.
func Mount(app *fiber.App, r Resolver) {
	app.Use(guard.New(r, CookieName))
}

// WithSession adds the session cookie for sid to req.
func WithSession(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
	return req
}
