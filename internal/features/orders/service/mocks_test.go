package service

import (
	"context"
	"sync"

	"courier-console/internal/features/orders/domain"

	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of ports.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Estimate(ctx context.Context, token string, payload domain.Payload) (*domain.Quote, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockGateway) Create(ctx context.Context, token string, payload domain.Payload) (string, string, error) {
	args := m.Called(ctx, token, payload)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGateway) Validate(ctx context.Context, token, orderID string, v domain.Verification) (string, error) {
	args := m.Called(ctx, token, orderID, v)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) RequestApproval(ctx context.Context, token string, orderIDs []string) (string, error) {
	args := m.Called(ctx, token, orderIDs)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) AcceptDropoff(ctx context.Context, token, trackingCode string) (string, error) {
	args := m.Called(ctx, token, trackingCode)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) AssignPickup(ctx context.Context, token, orderID, driverID string) (string, error) {
	args := m.Called(ctx, token, orderID, driverID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) GetOrder(ctx context.Context, token, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockGateway) ListOrders(ctx context.Context, token string, query map[string]string) ([]domain.Order, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockGateway) ListDrivers(ctx context.Context, token, search string) ([]domain.Driver, error) {
	args := m.Called(ctx, token, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

type notice struct {
	sid, title, message string
	success             bool
}

// recordingNotifier keeps every published notice.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Success(_ context.Context, sid, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{sid: sid, title: title, message: message, success: true})
}

func (n *recordingNotifier) Failure(_ context.Context, sid, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{sid: sid, title: title, message: message})
}

func (n *recordingNotifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice(nil), n.notices...)
}

var actor = domain.Actor{SessionID: "sid-1", Token: "tok1"}

func ptr(f float64) *float64 { return &f }

func validDraft() domain.Draft {
	return domain.Draft{
		CustomerID:        "c1",
		PickupAddress:     "12 Marina Rd, Lagos",
		PickupLatitude:    ptr(6.4541),
		PickupLongitude:   ptr(3.3947),
		ReceiverName:      "Ada Obi",
		ReceiverEmail:     "ada@example.com",
		ReceiverPhone:     "+2348000000000",
		DeliveryAddress:   "4 Allen Ave, Ikeja",
		DeliveryLatitude:  ptr(6.6018),
		DeliveryLongitude: ptr(3.3515),
		ServiceType:       domain.ServiceTypeStandard,
		FulfillmentType:   domain.FulfillmentDropoff,
		ShipmentType:      domain.ShipmentDocument,
		Weight:            1.2,
		Destination:       domain.ScopeRegional,
	}
}
