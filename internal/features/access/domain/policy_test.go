package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_UnknownRoles(t *testing.T) {
	for _, role := range []RoleName{"", "GUEST", "super_admin", "DRIVER"} {
		for _, p := range AllPermissions() {
			assert.False(t, HasPermission(role, p), "role %q permission %s", role, p)
		}
	}
}

func TestHasPermission_MatchesTable(t *testing.T) {
	for _, role := range KnownRoles() {
		granted := rolePermissions[role]
		for _, p := range AllPermissions() {
			_, want := granted[p]
			assert.Equal(t, want, HasPermission(role, p), "role %s permission %s", role, p)
		}
	}
}

func TestHasPermission_UnknownPermission(t *testing.T) {
	assert.False(t, HasPermission(RoleSuperAdmin, Permission("LAUNCH_ROCKETS")))
}

func TestHasPermission_Table(t *testing.T) {
	tests := []struct {
		name       string
		role       RoleName
		permission Permission
		expected   bool
	}{
		{"SuperAdminHasRole", RoleSuperAdmin, PermissionRole, true},
		{"HRHasStaff", RoleHRManager, PermissionStaff, true},
		{"HRHasPricing", RoleHRManager, PermissionPricing, true},
		{"HRLacksRole", RoleHRManager, PermissionRole, false},
		{"HRLacksOrders", RoleHRManager, PermissionOrders, false},
		{"OpsHasDispatch", RoleOperationalManager, PermissionDispatch, true},
		{"OpsLacksStaff", RoleOperationalManager, PermissionStaff, false},
		{"CustomerManagerHasCustomer", RoleCustomerManager, PermissionCustomer, true},
		{"FinanceLacksFleet", RoleFinanceManager, PermissionFleet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestHasAnyPermission(t *testing.T) {
	assert.True(t, HasAnyPermission(RoleHRManager, []Permission{PermissionRole, PermissionStaff}))
	assert.False(t, HasAnyPermission(RoleHRManager, []Permission{PermissionRole, PermissionFleet}))
	assert.False(t, HasAnyPermission(RoleHRManager, nil))
	assert.False(t, HasAnyPermission("", []Permission{PermissionDashboard}))
}

func TestGetPermissions(t *testing.T) {
	assert.Empty(t, GetPermissions(""))
	assert.Empty(t, GetPermissions("NOBODY"))
	assert.NotNil(t, GetPermissions("NOBODY"))

	assert.Equal(t, AllPermissions(), GetPermissions(RoleSuperAdmin))
	assert.Equal(t, []Permission{
		PermissionDashboard,
		PermissionStaff,
		PermissionBranch,
		PermissionPricing,
		PermissionReport,
	}, GetPermissions(RoleHRManager))
}
