package handler

import (
	"context"
	"net/http"

	"courier-console/internal/core/apierror"
	"courier-console/internal/core/logger"
	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/access/guard"
	notices "courier-console/internal/features/notices/domain"
	sessionhandler "courier-console/internal/features/session/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeLister reads the notices queued for a session.
type NoticeLister interface {
	List(ctx context.Context, sid string) ([]notices.Notice, error)
}

// DashboardView is the landing page of a signed-in user.
type DashboardView struct {
	sessionhandler.SessionView
	Navigation []access.Route   `json:"navigation"`
	Notices    []notices.Notice `json:"notices"`
}

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	notices NoticeLister
}

// NewDashboardHandler creates a new instance of DashboardHandler.
func NewDashboardHandler(notices NoticeLister) *DashboardHandler {
	return &DashboardHandler{notices: notices}
}

// GetDashboard handles GET /dashboard.
// @Summary Dashboard
// @Description Returns the signed-in user, their permissions, the menu entries they may open and pending notices.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardView
// @Failure 403 {object} guard.AccessDeniedView
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	session := guard.SessionFrom(c)

	pending, err := h.notices.List(c.Context(), guard.SessionIDFrom(c))
	if err != nil {
		// The page still renders without its toasts.
		logger.ForRequest(apierror.RayID(c)).Warn("Failed to load notices", zap.Error(err))
	}
	if pending == nil {
		pending = []notices.Notice{}
	}

	return c.Status(http.StatusOK).JSON(DashboardView{
		SessionView: sessionhandler.NewSessionView(session),
		Navigation:  access.NavigationFor(session.RoleName()),
		Notices:     pending,
	})
}
