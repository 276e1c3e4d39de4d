package adapters

import (
	"context"
	"errors"
	"net/http"

	"courier-console/internal/core/backend"
	"courier-console/internal/features/session/domain"
)

// ErrMalformedLogin is returned when the backend accepts a login but omits the user or token.
var ErrMalformedLogin = errors.New("login response is missing user or access token")

// BackendAuthAdapter implements ports.AuthProvider against the backend's /auth endpoints.
type BackendAuthAdapter struct {
	client *backend.Client
}

// NewBackendAuthAdapter creates a new BackendAuthAdapter.
func NewBackendAuthAdapter(client *backend.Client) *BackendAuthAdapter {
	return &BackendAuthAdapter{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User   domain.UserRecord `json:"user"`
	Tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"tokens"`
}

// Login exchanges email and password for a user record and tokens.
func (a *BackendAuthAdapter) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var data loginResponse
	if _, err := a.client.Do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &data); err != nil {
		return nil, err
	}

	if data.User.ID == "" || data.Tokens.AccessToken == "" {
		return nil, ErrMalformedLogin
	}

	return &domain.Credentials{
		User:         data.User,
		AccessToken:  data.Tokens.AccessToken,
		RefreshToken: data.Tokens.RefreshToken,
	}, nil
}

// Profile fetches the current user, including the role the backend now assigns.
func (a *BackendAuthAdapter) Profile(ctx context.Context, accessToken string) (*domain.UserRecord, error) {
	var data struct {
		User domain.UserRecord `json:"user"`
	}
	if _, err := a.client.Do(ctx, http.MethodGet, "/auth/me", accessToken, nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}
