package domain

// Permission is a named capability gating a feature area.
type Permission string

const (
	PermissionDashboard  Permission = "DASHBOARD"
	PermissionOrders     Permission = "ORDERS"
	PermissionFleet      Permission = "FLEET"
	PermissionStaff      Permission = "STAFF"
	PermissionBranch     Permission = "BRANCH"
	PermissionCustomer   Permission = "CUSTOMER"
	PermissionDispatch   Permission = "DISPATCH"
	PermissionPricing    Permission = "PRICING"
	PermissionReport     Permission = "REPORT"
	PermissionRole       Permission = "ROLE"
	PermissionPermission Permission = "PERMISSION"
)

// AllPermissions lists every permission in display order.
func AllPermissions() []Permission {
	return []Permission{
		PermissionDashboard,
		PermissionOrders,
		PermissionFleet,
		PermissionStaff,
		PermissionBranch,
		PermissionCustomer,
		PermissionDispatch,
		PermissionPricing,
		PermissionReport,
		PermissionRole,
		PermissionPermission,
	}
}

// RoleName identifies a role from the fixed enumeration.
type RoleName string

const (
	RoleSuperAdmin         RoleName = "SUPER_ADMIN"
	RoleOperationalManager RoleName = "OPERATIONAL_MANAGER"
	RoleHRManager          RoleName = "HR_MANAGER"
	RoleCustomerManager    RoleName = "CUSTOMER_MANAGER"
	RoleFinanceManager     RoleName = "FINANCE_MANAGER"
)

// Role is a named bundle of permissions assigned to a user.
type Role struct {
	Name        RoleName `json:"name"`
	Description string   `json:"description,omitempty"`
}
