package handler

import (
	"net/http"

	"courier-console/internal/core/apierror"
	"courier-console/internal/core/logger"
	"courier-console/internal/features/access/guard"
	"courier-console/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for session notices.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		service: service,
	}
}

// GetNotices handles GET /dashboard/notices.
// @Summary List notices
// @Description Returns the toasts queued for the current session, oldest first.
// @Tags Notices
// @Produce json
// @Success 200 {array} domain.Notice
// @Failure 500 {object} apierror.ErrorResponse
// @Router /dashboard/notices [get]
func (h *NoticeHandler) GetNotices(c *fiber.Ctx) error {
	notices, err := h.service.List(c.Context(), guard.SessionIDFrom(c))
	if err != nil {
		logger.ForRequest(apierror.RayID(c)).Error("Failed to get notices", zap.Error(err))
		return apierror.Send(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(notices)
}

// DismissNotices handles DELETE /dashboard/notices.
// @Summary Dismiss notices
// @Tags Notices
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} apierror.ErrorResponse
// @Router /dashboard/notices [delete]
func (h *NoticeHandler) DismissNotices(c *fiber.Ctx) error {
	if err := h.service.Dismiss(c.Context(), guard.SessionIDFrom(c)); err != nil {
		logger.ForRequest(apierror.RayID(c)).Error("Failed to dismiss notices", zap.Error(err))
		return apierror.Send(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notices dismissed",
	})
}
