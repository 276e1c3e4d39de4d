package handler

import (
	"errors"
	"net/http"

	"courier-console/internal/core/apierror"
	"courier-console/internal/features/access/guard"
	"courier-console/internal/features/resources/domain"
	"courier-console/internal/features/resources/service"

	"github.com/gofiber/fiber/v2"
)

// ResourceHandler exposes CRUD routes for every managed kind.
type ResourceHandler struct {
	service *service.ResourceService
}

// NewResourceHandler creates a new instance of ResourceHandler.
func NewResourceHandler(service *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// Register mounts /<kind> and /<kind>/:id for every kind.
func (h *ResourceHandler) Register(app fiber.Router) {
	for _, kind := range domain.Kinds() {
		base := "/" + string(kind)
		app.Get(base, h.List(kind))
		app.Post(base, h.Create(kind))
		app.Get(base+"/:id", h.Get(kind))
		app.Patch(base+"/:id", h.Update(kind))
		app.Delete(base+"/:id", h.Delete(kind))
	}
}

func callerFrom(c *fiber.Ctx) service.Caller {
	return service.Caller{
		SessionID: guard.SessionIDFrom(c),
		Token:     guard.SessionFrom(c).AccessToken,
	}
}

// List handles GET /<kind>.
// @Summary List resources
// @Tags Resources
// @Produce json
// @Param kind path string true "branch, staff, customer, fleet, pricing, roles or permissions"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search"
// @Success 200 {object} domain.Result
// @Failure 502 {object} apierror.ErrorResponse
// @Router /{kind} [get]
func (h *ResourceHandler) List(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := map[string]string{
			"page":   c.Query("page"),
			"limit":  c.Query("limit"),
			"search": c.Query("search"),
		}

		res, err := h.service.List(c.Context(), callerFrom(c), kind, query)
		if err != nil {
			return fail(c, "Failed to list "+string(kind), err)
		}
		return c.Status(http.StatusOK).JSON(res)
	}
}

// Get handles GET /<kind>/:id.
// @Summary Get a resource
// @Tags Resources
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID"
// @Success 200 {object} domain.Result
// @Failure 404 {object} apierror.ErrorResponse
// @Router /{kind}/{id} [get]
func (h *ResourceHandler) Get(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.service.Get(c.Context(), callerFrom(c), kind, c.Params("id"))
		if err != nil {
			return fail(c, "Failed to fetch "+string(kind), err)
		}
		return c.Status(http.StatusOK).JSON(res)
	}
}

// Create handles POST /<kind>.
// @Summary Create a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind"
// @Success 201 {object} domain.Result
// @Failure 400 {object} apierror.ErrorResponse
// @Router /{kind} [post]
func (h *ResourceHandler) Create(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.service.Create(c.Context(), callerFrom(c), kind, c.Body())
		if err != nil {
			return fail(c, "Failed to create "+string(kind), err)
		}
		return c.Status(http.StatusCreated).JSON(res)
	}
}

// Update handles PATCH /<kind>/:id.
// @Summary Update a resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID"
// @Success 200 {object} domain.Result
// @Failure 400 {object} apierror.ErrorResponse
// @Router /{kind}/{id} [patch]
func (h *ResourceHandler) Update(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.service.Update(c.Context(), callerFrom(c), kind, c.Params("id"), c.Body())
		if err != nil {
			return fail(c, "Failed to update "+string(kind), err)
		}
		return c.Status(http.StatusOK).JSON(res)
	}
}

// Delete handles DELETE /<kind>/:id.
// @Summary Delete a resource
// @Description Requires confirm=true; otherwise answers 428 with a confirmation prompt.
// @Tags Resources
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID"
// @Param confirm query bool true "Confirm deletion"
// @Success 200 {object} domain.Result
// @Failure 428 {object} apierror.ErrorResponse
// @Router /{kind}/{id} [delete]
func (h *ResourceHandler) Delete(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		confirmed := c.QueryBool("confirm", false)

		res, err := h.service.Delete(c.Context(), callerFrom(c), kind, c.Params("id"), confirmed)
		if err != nil {
			return fail(c, "Failed to delete "+string(kind), err)
		}
		return c.Status(http.StatusOK).JSON(res)
	}
}

func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrConfirmationRequired):
		return apierror.Send(c, http.StatusPreconditionRequired, domain.ConfirmPrompt)
	case errors.Is(err, domain.ErrInvalidBody):
		return apierror.Send(c, http.StatusBadRequest, "Request body must be a JSON object")
	case errors.Is(err, domain.ErrMissingID):
		return apierror.Send(c, http.StatusBadRequest, "Resource id is required")
	default:
		return apierror.Backend(c, action, err)
	}
}
