package service

import (
	"context"
	"strings"

	"courier-console/internal/core/backend"
	"courier-console/internal/core/logger"
	"courier-console/internal/core/metrics"
	"courier-console/internal/features/orders/domain"
	"courier-console/internal/features/orders/ports"

	"go.uber.org/zap"
)

// Notice titles for workflow outcomes.
const (
	titleEstimate        = "Price estimate"
	titleSubmit          = "Order submission"
	titleRequestApproval = "Approval request"
	titleAcceptDropoff   = "Drop-off acceptance"
	titleAssignDriver    = "Driver assignment"
)

// OrderView is an order together with the action the console offers for it.
type OrderView struct {
	domain.Order
	Action      domain.Action `json:"action,omitempty"`
	ActionLabel string        `json:"actionLabel,omitempty"`
}

func newOrderView(o domain.Order) OrderView {
	action := domain.AvailableAction(o)
	return OrderView{Order: o, Action: action, ActionLabel: action.Label()}
}

// Workflow drives a draft to submission and triggers the backend's operational
// transitions. It holds no order state: the backend is the system of record.
type Workflow struct {
	gateway  ports.Gateway
	notifier ports.Notifier
}

// NewWorkflow creates a new Workflow.
func NewWorkflow(gateway ports.Gateway, notifier ports.Notifier) *Workflow {
	return &Workflow{
		gateway:  gateway,
		notifier: notifier,
	}
}

// Estimate validates draft and asks the backend to price it.
func (w *Workflow) Estimate(ctx context.Context, actor domain.Actor, draft domain.Draft) (*domain.Quote, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		return nil, err
	}

	quote, err := w.gateway.Estimate(ctx, actor.Token, domain.ToPayload(draft))
	metrics.ObserveWorkflow("estimate", err)
	if err != nil {
		w.fail(ctx, actor, titleEstimate, err)
		return nil, err
	}

	quote.Formatted = domain.FormatPrice(quote.FinalPrice, quote.Currency)
	return quote, nil
}

// Submit validates draft and creates the order, returning its tracking code.
func (w *Workflow) Submit(ctx context.Context, actor domain.Actor, draft domain.Draft) (string, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		return "", err
	}

	code, msg, err := w.gateway.Create(ctx, actor.Token, domain.ToPayload(draft))
	metrics.ObserveWorkflow("submit", err)
	if err != nil {
		w.fail(ctx, actor, titleSubmit, err)
		return "", err
	}

	w.succeed(ctx, actor, titleSubmit, msg, "Order created with tracking code "+code)
	return code, nil
}

// RequestApproval asks for approval of an order. Drop-offs are validated first with
// verification, since staff have not yet checked their physical attributes.
func (w *Workflow) RequestApproval(ctx context.Context, actor domain.Actor, orderID string, fulfillment domain.FulfillmentType, verification *domain.Verification) error {
	if strings.TrimSpace(orderID) == "" {
		return domain.ErrMissingReference
	}

	if fulfillment == domain.FulfillmentDropoff {
		if verification == nil {
			return &domain.ValidationError{Fields: map[string]string{"weight": "is required"}}
		}
		if err := domain.ValidateVerification(*verification); err != nil {
			return err
		}
		if _, err := w.gateway.Validate(ctx, actor.Token, orderID, *verification); err != nil {
			metrics.ObserveWorkflow("request_approval", err)
			w.fail(ctx, actor, titleRequestApproval, err)
			return err
		}
	}

	msg, err := w.gateway.RequestApproval(ctx, actor.Token, []string{orderID})
	metrics.ObserveWorkflow("request_approval", err)
	if err != nil {
		w.fail(ctx, actor, titleRequestApproval, err)
		return err
	}

	w.succeed(ctx, actor, titleRequestApproval, msg, "Approval requested")
	return nil
}

// AcceptDropoff marks the shipment with trackingCode as received at the branch.
func (w *Workflow) AcceptDropoff(ctx context.Context, actor domain.Actor, trackingCode string) error {
	if strings.TrimSpace(trackingCode) == "" {
		return domain.ErrMissingReference
	}

	msg, err := w.gateway.AcceptDropoff(ctx, actor.Token, trackingCode)
	metrics.ObserveWorkflow("accept_dropoff", err)
	if err != nil {
		w.fail(ctx, actor, titleAcceptDropoff, err)
		return err
	}

	w.succeed(ctx, actor, titleAcceptDropoff, msg, "Drop-off accepted")
	return nil
}

// AssignDriver attaches driverID to orderID for pickup.
func (w *Workflow) AssignDriver(ctx context.Context, actor domain.Actor, orderID, driverID string) error {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(driverID) == "" {
		return domain.ErrMissingReference
	}

	msg, err := w.gateway.AssignPickup(ctx, actor.Token, orderID, driverID)
	metrics.ObserveWorkflow("assign_driver", err)
	if err != nil {
		w.fail(ctx, actor, titleAssignDriver, err)
		return err
	}

	w.succeed(ctx, actor, titleAssignDriver, msg, "Driver assigned")
	return nil
}

// SearchDrivers returns one page of drivers whose name or email contains search.
func (w *Workflow) SearchDrivers(ctx context.Context, actor domain.Actor, search string, page, limit int) (*domain.DriverPage, error) {
	drivers, err := w.gateway.ListDrivers(ctx, actor.Token, search)
	if err != nil {
		return nil, err
	}

	result := domain.PaginateDrivers(domain.FilterDrivers(drivers, search), page, limit)
	return &result, nil
}

// GetOrder loads an order with its available action.
func (w *Workflow) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*OrderView, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.ErrMissingReference
	}

	order, err := w.gateway.GetOrder(ctx, actor.Token, orderID)
	if err != nil {
		return nil, err
	}

	view := newOrderView(*order)
	return &view, nil
}

// ListOrders lists orders with their available actions.
func (w *Workflow) ListOrders(ctx context.Context, actor domain.Actor, query map[string]string) ([]OrderView, error) {
	orders, err := w.gateway.ListOrders(ctx, actor.Token, query)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views, nil
}

// Perform runs action on orderID if the order's current state offers it. For a
// drop-off approval without an explicit verification, the order's recorded
// attributes are sent.
func (w *Workflow) Perform(ctx context.Context, actor domain.Actor, orderID string, action domain.Action, verification *domain.Verification) error {
	view, err := w.GetOrder(ctx, actor, orderID)
	if err != nil {
		return err
	}

	if view.Action == domain.ActionNone || view.Action != action {
		return domain.ErrActionNotAvailable
	}

	switch action {
	case domain.ActionRequestApproval:
		if verification == nil && view.FulfillmentType == domain.FulfillmentDropoff {
			v := domain.VerificationOf(view.Order)
			verification = &v
		}
		return w.RequestApproval(ctx, actor, view.ID, view.FulfillmentType, verification)
	case domain.ActionAcceptDropoff:
		return w.AcceptDropoff(ctx, actor, view.TrackingCode)
	default:
		return domain.ErrActionNotAvailable
	}
}

func (w *Workflow) succeed(ctx context.Context, actor domain.Actor, title, msg, fallback string) {
	if msg == "" {
		msg = fallback
	}
	w.notifier.Success(ctx, actor.SessionID, title, msg)
}

func (w *Workflow) fail(ctx context.Context, actor domain.Actor, title string, err error) {
	logger.Get().Warn("Order workflow operation failed",
		zap.String("operation", title),
		zap.Error(err),
	)
	w.notifier.Failure(ctx, actor.SessionID, title, backend.UserMessage(err))
}
