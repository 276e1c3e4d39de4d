package handler

import (
	"errors"
	"net/http"
	"time"

	"courier-console/internal/core/apierror"
	"courier-console/internal/core/backend"
	"courier-console/internal/core/config"
	"courier-console/internal/core/logger"
	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/session/domain"
	"courier-console/internal/features/session/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoginPrompt is shown on the login view.
const LoginPrompt = "Sign in to manage deliveries"

// SessionHandler handles HTTP requests for login, logout and the current session.
type SessionHandler struct {
	service ports.SessionService
	cfg     config.SessionConfig
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service ports.SessionService, cfg config.SessionConfig) *SessionHandler {
	return &SessionHandler{
		service: service,
		cfg:     cfg,
	}
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionView is the public shape of a session. Tokens are never exposed.
type SessionView struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *domain.User        `json:"user,omitempty"`
	Role            *access.Role        `json:"role,omitempty"`
	Permissions     []access.Permission `json:"permissions"`
}

// NewSessionView builds the public view of s.
func NewSessionView(s domain.Session) SessionView {
	return SessionView{
		IsAuthenticated: s.IsAuthenticated,
		User:            s.User,
		Role:            s.Role,
		Permissions:     access.GetPermissions(s.RoleName()),
	}
}

// LoginView handles GET / and GET /login.
// @Summary Login view
// @Description Shown to visitors without a session. Signed-in users are redirected to /dashboard.
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SessionHandler) LoginView(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"view":    "login",
		"message": LoginPrompt,
	})
}

// Login handles POST /auth/login.
// @Summary Sign in
// @Description Authenticates against the backend and sets the session cookie.
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} SessionView
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /auth/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apierror.Send(c, http.StatusBadRequest, "Invalid request body")
	}

	sid, session, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrMissingLogin) {
			return apierror.Send(c, http.StatusBadRequest, "Email and password are required")
		}
		var be *backend.Error
		if errors.As(err, &be) {
			return apierror.Backend(c, "Failed to sign in", err)
		}
		logger.ForRequest(apierror.RayID(c)).Error("Failed to sign in", zap.Error(err))
		return apierror.Send(c, http.StatusInternalServerError, backend.FallbackMessage)
	}

	// Signing in again replaces the browser's previous session.
	if previous := c.Cookies(h.cfg.CookieName); previous != "" && previous != sid {
		if err := h.service.Logout(c.Context(), previous); err != nil {
			logger.ForRequest(apierror.RayID(c)).Warn("Failed to clear previous session", zap.Error(err))
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TTL),
		Secure:   h.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Status(http.StatusOK).JSON(NewSessionView(session))
}

// Logout handles POST /auth/logout.
// @Summary Sign out
// @Description Clears the session in memory and in durable storage.
// @Tags Session
// @Produce json
// @Success 200 {object} apierror.ErrorResponse
// @Failure 500 {object} apierror.ErrorResponse
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(h.cfg.CookieName)

	if err := h.service.Logout(c.Context(), c.Cookies(h.cfg.CookieName)); err != nil {
		logger.ForRequest(apierror.RayID(c)).Error("Failed to sign out", zap.Error(err))
		return apierror.Send(c, http.StatusInternalServerError, backend.FallbackMessage)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Signed out",
	})
}

// GetSession handles GET /auth/session.
// @Summary Current session
// @Tags Session
// @Produce json
// @Success 200 {object} SessionView
// @Router /auth/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session := h.service.Resolve(c.Context(), c.Cookies(h.cfg.CookieName))
	return c.Status(http.StatusOK).JSON(NewSessionView(session))
}

// RefreshSession handles POST /auth/session/refresh.
// @Summary Refresh the role
// @Description Re-reads the profile from the backend and adopts the role it reports.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionView
// @Failure 401 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /auth/session/refresh [post]
func (h *SessionHandler) RefreshSession(c *fiber.Ctx) error {
	session, err := h.service.RefreshRole(c.Context(), c.Cookies(h.cfg.CookieName))
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return apierror.Send(c, http.StatusUnauthorized, "Not signed in")
		}
		return apierror.Backend(c, "Failed to refresh session", err)
	}

	return c.Status(http.StatusOK).JSON(NewSessionView(session))
}
