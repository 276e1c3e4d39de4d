package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupRoute(t *testing.T) {
	tests := []struct {
		path       string
		found      bool
		permission Permission
	}{
		{"/staff", true, PermissionStaff},
		{"/staff/42/edit", true, PermissionStaff},
		{"/staffing", false, ""},
		{"/roles", true, PermissionRole},
		{"/permissions/new", true, PermissionPermission},
		{"/dispatch", true, PermissionDispatch},
		{"/dispatch/assign-pickup", true, PermissionDispatch},
		{"/order/draft/estimate", true, PermissionOrders},
		{"/dashboard/notices", true, PermissionDashboard},
		{"/", false, ""},
		{"/unknown", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, ok := LookupRoute(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.permission, route.Permission)
		})
	}
}

func TestRoutes_EveryPathHasOnePermission(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Routes {
		assert.NotEmpty(t, r.Permission, r.Path)
		assert.False(t, seen[r.Path], "duplicate route %s", r.Path)
		seen[r.Path] = true
	}
}

func TestNavigationFor(t *testing.T) {
	nav := NavigationFor(RoleHRManager)

	paths := make([]string, 0, len(nav))
	for _, r := range nav {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/dashboard", "/branch", "/staff", "/pricing", "/report"}, paths)

	assert.Empty(t, NavigationFor("NOBODY"))
	assert.Len(t, NavigationFor(RoleSuperAdmin), len(Routes))
}
