package apierror

import (
	"courier-console/internal/core/backend"
	"courier-console/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the user-facing error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
	// Fields holds per-field validation messages, keyed by JSON field name.
	Fields map[string]string `json:"fields,omitempty"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// Send writes an ErrorResponse with status.
func Send(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// Backend logs err and answers with the backend's message, or the generic fallback.
func Backend(c *fiber.Ctx, action string, err error) error {
	rayID := RayID(c)
	logger.ForRequest(rayID).Error(action, zap.Error(err))

	return c.Status(backend.HTTPStatus(err)).JSON(ErrorResponse{
		Message: backend.UserMessage(err),
		RayID:   rayID,
	})
}
