package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	access "courier-console/internal/features/access/domain"
	"courier-console/internal/features/access/guard/guardtest"
	"courier-console/internal/features/notices/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNoticeService is a mock implementation of ports.NoticeService
type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) Publish(ctx context.Context, sid, title, message string, noticeType domain.NoticeType) error {
	args := m.Called(ctx, sid, title, message, noticeType)
	return args.Error(0)
}

func (m *MockNoticeService) List(ctx context.Context, sid string) ([]domain.Notice, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}

func (m *MockNoticeService) Dismiss(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

func setupApp(service *MockNoticeService) *fiber.App {
	app := fiber.New()
	guardtest.Mount(app, guardtest.Resolver{"sid-1": guardtest.SignedIn(access.RoleFinanceManager)})
	handler := NewNoticeHandler(service)
	app.Get("/dashboard/notices", handler.GetNotices)
	app.Delete("/dashboard/notices", handler.DismissNotices)
	return app
}

func TestNoticeHandler_GetNotices(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockNoticeService)
		mockService.On("List", mock.Anything, "sid-1").Return([]domain.Notice{
			{Title: "Order submission", Message: "Order created", Type: domain.NoticeTypeSuccess},
		}, nil).Once()

		req := guardtest.WithSession(httptest.NewRequest(http.MethodGet, "/dashboard/notices", nil), "sid-1")
		resp, err := setupApp(mockService).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var notices []domain.Notice
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&notices))
		require.Len(t, notices, 1)
		assert.Equal(t, "Order created", notices[0].Message)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockNoticeService)
		mockService.On("List", mock.Anything, "sid-1").Return(nil, errors.New("redis down")).Once()

		req := guardtest.WithSession(httptest.NewRequest(http.MethodGet, "/dashboard/notices", nil), "sid-1")
		resp, err := setupApp(mockService).Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Anonymous", func(t *testing.T) {
		mockService := new(MockNoticeService)

		resp, err := setupApp(mockService).Test(httptest.NewRequest(http.MethodGet, "/dashboard/notices", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestNoticeHandler_DismissNotices(t *testing.T) {
	mockService := new(MockNoticeService)
	mockService.On("Dismiss", mock.Anything, "sid-1").Return(nil).Once()

	req := guardtest.WithSession(httptest.NewRequest(http.MethodDelete, "/dashboard/notices", nil), "sid-1")
	resp, err := setupApp(mockService).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
