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
	notices "courier-console/internal/features/notices/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotices struct {
	items []notices.Notice
	err   error
}

func (s stubNotices) List(context.Context, string) ([]notices.Notice, error) {
	return s.items, s.err
}

type dashboardBody struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	Permissions     []access.Permission `json:"permissions"`
	Navigation      []access.Route      `json:"navigation"`
	Notices         []notices.Notice    `json:"notices"`
}

func get(t *testing.T, lister NoticeLister, role access.RoleName) (*http.Response, dashboardBody) {
	t.Helper()

	app := fiber.New()
	guardtest.Mount(app, guardtest.Resolver{"sid": guardtest.SignedIn(role)})
	app.Get("/dashboard", NewDashboardHandler(lister).GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(guardtest.WithSession(req, "sid"))
	require.NoError(t, err)

	var body dashboardBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestGetDashboard_NavigationFollowsRole(t *testing.T) {
	resp, body := get(t, stubNotices{}, access.RoleHRManager)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.IsAuthenticated)
	assert.Equal(t, access.GetPermissions(access.RoleHRManager), body.Permissions)

	paths := make([]string, 0, len(body.Navigation))
	for _, r := range body.Navigation {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/dashboard", "/branch", "/staff", "/pricing", "/report"}, paths)
}

func TestGetDashboard_IncludesNotices(t *testing.T) {
	lister := stubNotices{items: []notices.Notice{{Title: "Order submission", Message: "Created", Type: notices.NoticeTypeSuccess}}}

	_, body := get(t, lister, access.RoleSuperAdmin)
	require.Len(t, body.Notices, 1)
	assert.Equal(t, "Created", body.Notices[0].Message)
}

func TestGetDashboard_NoticeFailureStillRenders(t *testing.T) {
	resp, body := get(t, stubNotices{err: errors.New("redis down")}, access.RoleSuperAdmin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body.Notices)
	assert.Empty(t, body.Notices)
}
