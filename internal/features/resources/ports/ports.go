package ports

import (
	"context"
	"encoding/json"

	"courier-console/internal/features/resources/domain"
)

// Repository performs CRUD calls for a resource kind on behalf of a signed-in user.
type Repository interface {
	List(ctx context.Context, token string, kind domain.Kind, query map[string]string) (*domain.Result, error)
	Get(ctx context.Context, token string, kind domain.Kind, id string) (*domain.Result, error)
	Create(ctx context.Context, token string, kind domain.Kind, body json.RawMessage) (*domain.Result, error)
	Update(ctx context.Context, token string, kind domain.Kind, id string, body json.RawMessage) (*domain.Result, error)
	Delete(ctx context.Context, token string, kind domain.Kind, id string) (*domain.Result, error)
}

// Notifier reports the outcome of a change to the user's session.
type Notifier interface {
	Success(ctx context.Context, sid, title, message string)
	Failure(ctx context.Context, sid, title, message string)
}
