package domain

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Driver is a courier who can be assigned to a pickup.
type Driver struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status,omitempty"`
}

// FullName joins the driver's first and last name.
func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// DriverPage is one page of a driver search.
type DriverPage struct {
	Items []Driver `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// FilterDrivers keeps drivers whose name or email contains search, ignoring case.
func FilterDrivers(drivers []Driver, search string) []Driver {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return drivers
	}

	out := make([]Driver, 0, len(drivers))
	for _, d := range drivers {
		if strings.Contains(strings.ToLower(d.FullName()), search) ||
			strings.Contains(strings.ToLower(d.Email), search) {
			out = append(out, d)
		}
	}
	return out
}

// PaginateDrivers returns the 1-based page of drivers. Out-of-range values are clamped.
func PaginateDrivers(drivers []Driver, page, limit int) DriverPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	// Compare before multiplying: (page-1)*limit overflows for huge pages.
	start := len(drivers)
	if page-1 <= len(drivers)/limit {
		start = min((page-1)*limit, len(drivers))
	}
	end := start + limit
	if end > len(drivers) {
		end = len(drivers)
	}

	items := make([]Driver, end-start)
	copy(items, drivers[start:end])

	return DriverPage{
		Items: items,
		Total: len(drivers),
		Page:  page,
		Limit: limit,
	}
}
