package ports

import (
	"context"

	"courier-console/internal/features/orders/domain"
)

// Gateway is the secondary port to the backend's order, pricing and dispatch endpoints.
// Methods that trigger a backend transition return the backend's message.
type Gateway interface {
	Estimate(ctx context.Context, token string, payload domain.Payload) (*domain.Quote, error)
	Create(ctx context.Context, token string, payload domain.Payload) (trackingCode, message string, err error)
	Validate(ctx context.Context, token, orderID string, v domain.Verification) (string, error)
	RequestApproval(ctx context.Context, token string, orderIDs []string) (string, error)
	AcceptDropoff(ctx context.Context, token, trackingCode string) (string, error)
	AssignPickup(ctx context.Context, token, orderID, driverID string) (string, error)
	GetOrder(ctx context.Context, token, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, token string, query map[string]string) ([]domain.Order, error)
	ListDrivers(ctx context.Context, token, search string) ([]domain.Driver, error)
}

// Notifier publishes the outcome of a workflow operation to the caller's session.
type Notifier interface {
	Success(ctx context.Context, sid, title, message string)
	Failure(ctx context.Context, sid, title, message string)
}
