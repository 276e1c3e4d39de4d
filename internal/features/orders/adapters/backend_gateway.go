package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"courier-console/internal/core/backend"
	"courier-console/internal/features/orders/domain"
)

// BackendGateway implements ports.Gateway over the backend REST API.
type BackendGateway struct {
	client *backend.Client
}

// NewBackendGateway creates a new BackendGateway.
func NewBackendGateway(client *backend.Client) *BackendGateway {
	return &BackendGateway{client: client}
}

// Estimate prices a payload without creating anything.
func (g *BackendGateway) Estimate(ctx context.Context, token string, payload domain.Payload) (*domain.Quote, error) {
	var data struct {
		Result struct {
			FinalPrice float64 `json:"finalPrice"`
			Currency   string  `json:"currency"`
		} `json:"result"`
	}
	if _, err := g.client.Do(ctx, http.MethodPost, "/pricing/order/summary", token, payload, &data); err != nil {
		return nil, err
	}

	return &domain.Quote{
		FinalPrice: data.Result.FinalPrice,
		Currency:   data.Result.Currency,
	}, nil
}

// Create submits a payload as a new order.
func (g *BackendGateway) Create(ctx context.Context, token string, payload domain.Payload) (string, string, error) {
	var data struct {
		TrackingCode string `json:"trackingCode"`
	}
	env, err := g.client.Do(ctx, http.MethodPost, "/order", token, payload, &data)
	if err != nil {
		return "", "", err
	}
	if data.TrackingCode == "" {
		return "", "", &backend.Error{StatusCode: http.StatusOK, Err: fmt.Errorf("order created without tracking code")}
	}
	return data.TrackingCode, env.Message, nil
}

// Validate records the verified physical description of a drop-off.
func (g *BackendGateway) Validate(ctx context.Context, token, orderID string, v domain.Verification) (string, error) {
	return g.send(ctx, http.MethodPatch, "/order/validate/"+url.PathEscape(orderID), token, v)
}

// RequestApproval asks for approval of the given orders.
func (g *BackendGateway) RequestApproval(ctx context.Context, token string, orderIDs []string) (string, error) {
	return g.send(ctx, http.MethodPost, "/order/request/approval", token, map[string][]string{"orderIds": orderIDs})
}

// AcceptDropoff marks a shipment as received at a branch.
func (g *BackendGateway) AcceptDropoff(ctx context.Context, token, trackingCode string) (string, error) {
	return g.send(ctx, http.MethodPost, "/order/accept", token, map[string]string{"trackingCode": trackingCode})
}

// AssignPickup attaches a driver to an order.
func (g *BackendGateway) AssignPickup(ctx context.Context, token, orderID, driverID string) (string, error) {
	return g.send(ctx, http.MethodPost, "/dispatch/assign-pickup", token, map[string]string{
		"orderId":  orderID,
		"driverId": driverID,
	})
}

// GetOrder fetches one order.
func (g *BackendGateway) GetOrder(ctx context.Context, token, orderID string) (*domain.Order, error) {
	var order domain.Order
	if _, err := g.client.Do(ctx, http.MethodGet, "/order/"+url.PathEscape(orderID), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders lists orders, passing query through to the backend.
func (g *BackendGateway) ListOrders(ctx context.Context, token string, query map[string]string) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	if _, err := g.client.Do(ctx, http.MethodGet, "/order"+encodeQuery(query), token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListDrivers fetches drivers, letting the backend pre-filter when it supports search.
func (g *BackendGateway) ListDrivers(ctx context.Context, token, search string) ([]domain.Driver, error) {
	drivers := make([]domain.Driver, 0)
	if _, err := g.client.Do(ctx, http.MethodGet, "/driver"+encodeQuery(map[string]string{"search": search}), token, nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (g *BackendGateway) send(ctx context.Context, method, path, token string, body any) (string, error) {
	env, err := g.client.Do(ctx, method, path, token, body, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func encodeQuery(query map[string]string) string {
	values := url.Values{}
	for k, v := range query {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
