package handler

import (
	"errors"
	"net/http"
	"strconv"

	"courier-console/internal/core/apierror"
	"courier-console/internal/features/access/guard"
	"courier-console/internal/features/orders/domain"
	"courier-console/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the order workflow and dispatch.
type OrderHandler struct {
	workflow *service.Workflow
	composer *service.Composer
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(workflow *service.Workflow, composer *service.Composer) *OrderHandler {
	return &OrderHandler{
		workflow: workflow,
		composer: composer,
	}
}

// Register mounts the order and dispatch routes. Draft routes come before /order/:id.
func (h *OrderHandler) Register(app fiber.Router) {
	app.Get("/order/draft", h.GetDraft)
	app.Put("/order/draft", h.SaveDraft)
	app.Delete("/order/draft", h.DiscardDraft)
	app.Post("/order/draft/estimate", h.EstimateDraft)
	app.Post("/order/draft/submit", h.SubmitDraft)
	app.Post("/order/accept", h.AcceptDropoff)
	app.Get("/order", h.ListOrders)
	app.Get("/order/:id", h.GetOrder)
	app.Post("/order/:id/actions/request-approval", h.RequestApproval)
	app.Post("/order/:id/actions/accept-dropoff", h.AcceptDropoffAction)
	app.Get("/dispatch/drivers", h.SearchDrivers)
	app.Post("/dispatch/assign-pickup", h.AssignPickup)
}

// MessageResponse carries the outcome of a transition.
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmitResponse is returned when a draft becomes an order.
type SubmitResponse struct {
	TrackingCode string `json:"trackingCode"`
}

// AcceptRequest represents the request body for accepting a drop-off.
type AcceptRequest struct {
	TrackingCode string `json:"trackingCode"`
}

// AssignRequest represents the request body for assigning a driver.
type AssignRequest struct {
	OrderID  string `json:"orderId"`
	DriverID string `json:"driverId"`
}

func actorFrom(c *fiber.Ctx) domain.Actor {
	return domain.Actor{
		SessionID: guard.SessionIDFrom(c),
		Token:     guard.SessionFrom(c).AccessToken,
	}
}

// GetDraft handles GET /order/draft.
// @Summary Current draft
// @Tags Orders
// @Produce json
// @Success 200 {object} service.DraftView
// @Router /order/draft [get]
func (h *OrderHandler) GetDraft(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.composer.Get(guard.SessionIDFrom(c)))
}

// SaveDraft handles PUT /order/draft.
// @Summary Save the draft
// @Description Replaces the session's draft order. Any previous estimate is discarded.
// @Tags Orders
// @Accept json
// @Produce json
// @Param draft body domain.Draft true "Draft order"
// @Success 200 {object} service.DraftView
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Router /order/draft [put]
func (h *OrderHandler) SaveDraft(c *fiber.Ctx) error {
	var draft domain.Draft
	if err := c.BodyParser(&draft); err != nil {
		return apierror.Send(c, http.StatusBadRequest, "Invalid request body")
	}

	view, err := h.composer.Save(guard.SessionIDFrom(c), draft)
	if err != nil {
		return h.fail(c, "Failed to save draft", err)
	}

	return c.Status(http.StatusOK).JSON(view)
}

// DiscardDraft handles DELETE /order/draft.
// @Summary Discard the draft
// @Tags Orders
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Router /order/draft [delete]
func (h *OrderHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.composer.Discard(guard.SessionIDFrom(c)); err != nil {
		return h.fail(c, "Failed to discard draft", err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Draft discarded"})
}

// EstimateDraft handles POST /order/draft/estimate.
// @Summary Estimate the draft's price
// @Description Prices the draft without creating an order. A result for a draft that changed meanwhile is reported as stale.
// @Tags Orders
// @Produce json
// @Success 200 {object} service.EstimateResult
// @Failure 404 {object} apierror.ErrorResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Failure 422 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order/draft/estimate [post]
func (h *OrderHandler) EstimateDraft(c *fiber.Ctx) error {
	result, err := h.composer.Estimate(c.Context(), actorFrom(c))
	if err != nil {
		return h.fail(c, "Failed to estimate draft", err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// SubmitDraft handles POST /order/draft/submit.
// @Summary Submit the draft
// @Description Creates the order. The draft is cleared on success and kept on failure.
// @Tags Orders
// @Produce json
// @Success 201 {object} SubmitResponse
// @Failure 404 {object} apierror.ErrorResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Failure 422 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order/draft/submit [post]
func (h *OrderHandler) SubmitDraft(c *fiber.Ctx) error {
	code, err := h.composer.Submit(c.Context(), actorFrom(c))
	if err != nil {
		return h.fail(c, "Failed to submit draft", err)
	}

	return c.Status(http.StatusCreated).JSON(SubmitResponse{TrackingCode: code})
}

// ListOrders handles GET /order.
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search"
// @Param status query string false "Status"
// @Success 200 {array} service.OrderView
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	query := map[string]string{
		"page":   c.Query("page"),
		"limit":  c.Query("limit"),
		"search": c.Query("search"),
		"status": c.Query("status"),
	}

	orders, err := h.workflow.ListOrders(c.Context(), actorFrom(c), query)
	if err != nil {
		return h.fail(c, "Failed to list orders", err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /order/:id.
// @Summary Get an order
// @Description Returns the order with the action currently offered for it.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} apierror.ErrorResponse
// @Router /order/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	view, err := h.workflow.GetOrder(c.Context(), actorFrom(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to fetch order", err)
	}

	return c.Status(http.StatusOK).JSON(view)
}

// RequestApproval handles POST /order/:id/actions/request-approval.
// @Summary Request approval
// @Description Drop-offs are validated with the given (or recorded) physical attributes first.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param verification body domain.Verification false "Verified attributes (drop-off only)"
// @Success 200 {object} MessageResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Failure 422 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order/{id}/actions/request-approval [post]
func (h *OrderHandler) RequestApproval(c *fiber.Ctx) error {
	var verification *domain.Verification
	if len(c.Body()) > 0 {
		verification = &domain.Verification{}
		if err := c.BodyParser(verification); err != nil {
			return apierror.Send(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	err := h.workflow.Perform(c.Context(), actorFrom(c), c.Params("id"), domain.ActionRequestApproval, verification)
	if err != nil {
		return h.fail(c, "Failed to request approval", err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Approval requested"})
}

// AcceptDropoffAction handles POST /order/:id/actions/accept-dropoff.
// @Summary Accept drop-off for an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 409 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order/{id}/actions/accept-dropoff [post]
func (h *OrderHandler) AcceptDropoffAction(c *fiber.Ctx) error {
	err := h.workflow.Perform(c.Context(), actorFrom(c), c.Params("id"), domain.ActionAcceptDropoff, nil)
	if err != nil {
		return h.fail(c, "Failed to accept drop-off", err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Drop-off accepted"})
}

// AcceptDropoff handles POST /order/accept.
// @Summary Accept a drop-off by tracking code
// @Description Marks a shipment as physically received at the branch.
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body AcceptRequest true "Tracking code"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /order/accept [post]
func (h *OrderHandler) AcceptDropoff(c *fiber.Ctx) error {
	var req AcceptRequest
	if err := c.BodyParser(&req); err != nil {
		return apierror.Send(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.workflow.AcceptDropoff(c.Context(), actorFrom(c), req.TrackingCode); err != nil {
		return h.fail(c, "Failed to accept drop-off", err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Drop-off accepted"})
}

// SearchDrivers handles GET /dispatch/drivers.
// @Summary Search drivers
// @Description Case-insensitive name or email substring search with pagination.
// @Tags Dispatch
// @Produce json
// @Param search query string false "Name or email fragment"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} domain.DriverPage
// @Failure 502 {object} apierror.ErrorResponse
// @Router /dispatch/drivers [get]
func (h *OrderHandler) SearchDrivers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultPageSize)))

	result, err := h.workflow.SearchDrivers(c.Context(), actorFrom(c), c.Query("search"), page, limit)
	if err != nil {
		return h.fail(c, "Failed to search drivers", err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// AssignPickup handles POST /dispatch/assign-pickup.
// @Summary Assign a driver
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param body body AssignRequest true "Order and driver"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} apierror.ErrorResponse
// @Failure 502 {object} apierror.ErrorResponse
// @Router /dispatch/assign-pickup [post]
func (h *OrderHandler) AssignPickup(c *fiber.Ctx) error {
	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apierror.Send(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.workflow.AssignDriver(c.Context(), actorFrom(c), req.OrderID, req.DriverID); err != nil {
		return h.fail(c, "Failed to assign driver", err)
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Driver assigned"})
}

func (h *OrderHandler) fail(c *fiber.Ctx, action string, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusUnprocessableEntity).JSON(apierror.ErrorResponse{
			Message: "Please correct the highlighted fields",
			RayID:   apierror.RayID(c),
			Fields:  verr.Fields,
		})
	case errors.Is(err, domain.ErrNoDraft):
		return apierror.Send(c, http.StatusNotFound, "No draft order")
	case errors.Is(err, domain.ErrBusy):
		return apierror.Send(c, http.StatusConflict, "Please wait for the current request to finish")
	case errors.Is(err, domain.ErrActionNotAvailable):
		return apierror.Send(c, http.StatusConflict, "This action is not available for the order")
	case errors.Is(err, domain.ErrMissingReference):
		return apierror.Send(c, http.StatusBadRequest, "Order, tracking code and driver are required")
	default:
		return apierror.Backend(c, action, err)
	}
}
