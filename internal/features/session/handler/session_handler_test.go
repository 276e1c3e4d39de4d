package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courier-console/internal/core/backend"
	"courier-console/internal/core/config"
	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/session/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessionService is a mock implementation of ports.SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Resolve(ctx context.Context, sid string) domain.Session {
	args := m.Called(ctx, sid)
	return args.Get(0).(domain.Session)
}

func (m *MockSessionService) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(domain.Session), args.Error(2)
}

func (m *MockSessionService) Logout(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

func (m *MockSessionService) SetRole(ctx context.Context, sid string, role *access.Role) (domain.Session, error) {
	args := m.Called(ctx, sid, role)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionService) RefreshRole(ctx context.Context, sid string) (domain.Session, error) {
	args := m.Called(ctx, sid)
	return args.Get(0).(domain.Session), args.Error(1)
}

var testCfg = config.SessionConfig{CookieName: "console_sid", CookieSecure: true, TTL: time.Hour}

func hrSession() domain.Session {
	return domain.Session{
		User:            &domain.User{ID: "u1", Email: "hr@courier.test"},
		Role:            &access.Role{Name: access.RoleHRManager},
		AccessToken:     "access",
		IsAuthenticated: true,
	}
}

func setupApp(service *MockSessionService) *fiber.App {
	app := fiber.New()
	h := NewSessionHandler(service, testCfg)
	app.Get("/", h.LoginView)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/logout", h.Logout)
	app.Get("/auth/session", h.GetSession)
	app.Post("/auth/session/refresh", h.RefreshSession)
	return app
}

func loginRequest(email, password string) *http.Request {
	body, _ := json.Marshal(LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSessionHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Login", mock.Anything, "hr@courier.test", "secret").Return("sid-1", hrSession(), nil).Once()

		resp, err := setupApp(svc).Test(loginRequest("hr@courier.test", "secret"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "console_sid" {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.Equal(t, "sid-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)

		var view map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, true, view["isAuthenticated"])
		assert.NotContains(t, view, "accessToken")
		assert.Len(t, view["permissions"], 5)
		svc.AssertExpectations(t)
	})

	t.Run("ReplacesPreviousSession", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Login", mock.Anything, "hr@courier.test", "secret").Return("sid-2", hrSession(), nil).Once()
		svc.On("Logout", mock.Anything, "sid-1").Return(nil).Once()

		req := loginRequest("hr@courier.test", "secret")
		req.AddCookie(&http.Cookie{Name: "console_sid", Value: "sid-1"})
		resp, err := setupApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("PreviousSessionCleanupFailureIsIgnored", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Login", mock.Anything, "hr@courier.test", "secret").Return("sid-2", hrSession(), nil).Once()
		svc.On("Logout", mock.Anything, "sid-1").Return(errors.New("redis down")).Once()

		req := loginRequest("hr@courier.test", "secret")
		req.AddCookie(&http.Cookie{Name: "console_sid", Value: "sid-1"})
		resp, err := setupApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Login", mock.Anything, "", "").Return("", domain.Session{}, domain.ErrMissingLogin).Once()

		resp, err := setupApp(svc).Test(loginRequest("", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectedByBackend", func(t *testing.T) {
		svc := new(MockSessionService)
		rejected := &backend.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
		svc.On("Login", mock.Anything, "hr@courier.test", "wrong").Return("", domain.Session{}, rejected).Once()

		resp, err := setupApp(svc).Test(loginRequest("hr@courier.test", "wrong"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid email or password", body["message"])
	})

	t.Run("InvalidBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := setupApp(new(MockSessionService)).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Logout", mock.Anything, "sid-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "console_sid", Value: "sid-1"})
		resp, err := setupApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("StorageError", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("Logout", mock.Anything, "sid-1").Return(errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "console_sid", Value: "sid-1"})
		resp, err := setupApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Resolve", mock.Anything, "").Return(domain.Session{}).Once()

	resp, err := setupApp(svc).Test(httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var view SessionView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.False(t, view.IsAuthenticated)
	assert.Empty(t, view.Permissions)
}

func TestSessionHandler_RefreshSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockSessionService)
		updated := hrSession()
		updated.Role = &access.Role{Name: access.RoleSuperAdmin}
		svc.On("RefreshRole", mock.Anything, "sid-1").Return(updated, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/session/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "console_sid", Value: "sid-1"})
		resp, err := setupApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var view SessionView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, access.RoleSuperAdmin, view.Role.Name)
		assert.Len(t, view.Permissions, len(access.AllPermissions()))
	})

	t.Run("NotSignedIn", func(t *testing.T) {
		svc := new(MockSessionService)
		svc.On("RefreshRole", mock.Anything, "").Return(domain.Session{}, domain.ErrNotAuthenticated).Once()

		resp, err := setupApp(svc).Test(httptest.NewRequest(http.MethodPost, "/auth/session/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestSessionHandler_LoginView(t *testing.T) {
	resp, err := setupApp(new(MockSessionService)).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
