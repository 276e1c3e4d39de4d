package ports

import (
	"context"

	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/session/domain"
)

// SessionService defines the primary port for browser sessions.
type SessionService interface {
	Resolve(ctx context.Context, sid string) domain.Session
	Login(ctx context.Context, email, password string) (string, domain.Session, error)
	Logout(ctx context.Context, sid string) error
	SetRole(ctx context.Context, sid string, role *access.Role) (domain.Session, error)
	RefreshRole(ctx context.Context, sid string) (domain.Session, error)
}

// Storage is the durable mirror of a session, keyed by session id.
type Storage interface {
	Save(ctx context.Context, sid string, rec domain.Record) error
	Load(ctx context.Context, sid string) (domain.Record, error)
	Clear(ctx context.Context, sid string) error
}

// AuthProvider authenticates against the backend.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
	Profile(ctx context.Context, accessToken string) (*domain.UserRecord, error)
}
