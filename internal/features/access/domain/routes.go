package domain

import "strings"

// Route declares the permission a console path requires. Path matches itself and
// everything below it on a segment boundary.
type Route struct {
	Path       string     `json:"path"`
	Permission Permission `json:"permission"`
	Title      string     `json:"title"`
}

// Routes is the console's authorization policy, one entry per gated area.
var Routes = []Route{
	{Path: "/dashboard", Permission: PermissionDashboard, Title: "Dashboard"},
	{Path: "/branch", Permission: PermissionBranch, Title: "Branches"},
	{Path: "/staff", Permission: PermissionStaff, Title: "Staff"},
	{Path: "/order", Permission: PermissionOrders, Title: "Orders"},
	{Path: "/fleet", Permission: PermissionFleet, Title: "Fleet"},
	{Path: "/customer", Permission: PermissionCustomer, Title: "Customers"},
	{Path: "/pricing", Permission: PermissionPricing, Title: "Pricing"},
	{Path: "/roles", Permission: PermissionRole, Title: "Roles"},
	{Path: "/permissions", Permission: PermissionPermission, Title: "Permissions"},
	{Path: "/dispatch", Permission: PermissionDispatch, Title: "Dispatch"},
	{Path: "/report", Permission: PermissionReport, Title: "Reports"},
}

// LookupRoute returns the longest route matching path.
func LookupRoute(path string) (Route, bool) {
	var best Route
	found := false
	for _, r := range Routes {
		if !matches(r.Path, path) {
			continue
		}
		if !found || len(r.Path) > len(best.Path) {
			best = r
			found = true
		}
	}
	return best, found
}

func matches(prefix, path string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// NavigationFor returns the routes role may open.
func NavigationFor(role RoleName) []Route {
	nav := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if HasPermission(role, r.Permission) {
			nav = append(nav, r)
		}
	}
	return nav
}
