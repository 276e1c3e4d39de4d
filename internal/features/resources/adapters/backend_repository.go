package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"courier-console/internal/core/backend"
	"courier-console/internal/features/resources/domain"
)

// BackendRepository implements ports.Repository over the backend REST API.
type BackendRepository struct {
	client *backend.Client
}

// NewBackendRepository creates a new BackendRepository.
func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) List(ctx context.Context, token string, kind domain.Kind, query map[string]string) (*domain.Result, error) {
	values := url.Values{}
	for k, v := range query {
		if v != "" {
			values.Set(k, v)
		}
	}
	path := kind.BackendPath()
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	return r.call(ctx, http.MethodGet, path, token, nil)
}

func (r *BackendRepository) Get(ctx context.Context, token string, kind domain.Kind, id string) (*domain.Result, error) {
	return r.call(ctx, http.MethodGet, itemPath(kind, id), token, nil)
}

func (r *BackendRepository) Create(ctx context.Context, token string, kind domain.Kind, body json.RawMessage) (*domain.Result, error) {
	return r.call(ctx, http.MethodPost, kind.BackendPath(), token, body)
}

func (r *BackendRepository) Update(ctx context.Context, token string, kind domain.Kind, id string, body json.RawMessage) (*domain.Result, error) {
	return r.call(ctx, http.MethodPatch, itemPath(kind, id), token, body)
}

func (r *BackendRepository) Delete(ctx context.Context, token string, kind domain.Kind, id string) (*domain.Result, error) {
	return r.call(ctx, http.MethodDelete, itemPath(kind, id), token, nil)
}

func (r *BackendRepository) call(ctx context.Context, method, path, token string, body json.RawMessage) (*domain.Result, error) {
	// A nil RawMessage must not reach Do as a non-nil interface.
	var payload any
	if body != nil {
		payload = body
	}

	env, err := r.client.Do(ctx, method, path, token, payload, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Result{Message: env.Message, Data: env.Data}, nil
}

func itemPath(kind domain.Kind, id string) string {
	return kind.BackendPath() + "/" + url.PathEscape(id)
}
