package domain

// rolePermissions is the static role table. It is never mutated after init.
var rolePermissions = map[RoleName]map[Permission]struct{}{
	RoleSuperAdmin: setOf(AllPermissions()...),
	RoleOperationalManager: setOf(
		PermissionDashboard,
		PermissionOrders,
		PermissionFleet,
		PermissionDispatch,
		PermissionBranch,
		PermissionCustomer,
		PermissionPricing,
		PermissionReport,
	),
	RoleHRManager: setOf(
		PermissionDashboard,
		PermissionStaff,
		PermissionBranch,
		PermissionPricing,
		PermissionReport,
	),
	RoleCustomerManager: setOf(
		PermissionDashboard,
		PermissionCustomer,
		PermissionOrders,
		PermissionReport,
	),
	RoleFinanceManager: setOf(
		PermissionDashboard,
		PermissionPricing,
		PermissionOrders,
		PermissionReport,
	),
}

func setOf(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// HasPermission reports whether role grants permission. Empty or unknown roles get nothing.
func HasPermission(role RoleName, permission Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[permission]
	return ok
}

// HasAnyPermission reports whether role grants at least one of permissions.
func HasAnyPermission(role RoleName, permissions []Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// GetPermissions returns role's permissions in display order, or an empty slice.
func GetPermissions(role RoleName) []Permission {
	perms := make([]Permission, 0)
	if _, ok := rolePermissions[role]; !ok {
		return perms
	}
	for _, p := range AllPermissions() {
		if HasPermission(role, p) {
			perms = append(perms, p)
		}
	}
	return perms
}

// KnownRoles lists the roles present in the static table.
func KnownRoles() []RoleName {
	return []RoleName{
		RoleSuperAdmin,
		RoleOperationalManager,
		RoleHRManager,
		RoleCustomerManager,
		RoleFinanceManager,
	}
}
