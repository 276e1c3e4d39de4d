package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrUnknownKind          = errors.New("unknown resource kind")
	ErrMissingID            = errors.New("resource id is required")
	ErrInvalidBody          = errors.New("request body must be a JSON object")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
)

// ConfirmPrompt is returned when a delete arrives without confirmation.
const ConfirmPrompt = "This cannot be undone. Repeat the request with confirm=true to delete."

// Kind is a back-office entity managed through plain CRUD.
type Kind string

const (
	KindBranch      Kind = "branch"
	KindStaff       Kind = "staff"
	KindCustomer    Kind = "customer"
	KindFleet       Kind = "fleet"
	KindPricing     Kind = "pricing"
	KindRoles       Kind = "roles"
	KindPermissions Kind = "permissions"
)

// backendPaths maps each kind to its collection on the backend.
var backendPaths = map[Kind]string{
	KindBranch:      "/branch",
	KindStaff:       "/staff",
	KindCustomer:    "/customer",
	KindFleet:       "/vehicle",
	KindPricing:     "/pricing",
	KindRoles:       "/roles",
	KindPermissions: "/permissions",
}

// Kinds lists every managed kind in menu order.
func Kinds() []Kind {
	return []Kind{KindBranch, KindStaff, KindCustomer, KindFleet, KindPricing, KindRoles, KindPermissions}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := backendPaths[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// BackendPath is the backend collection path for k.
func (k Kind) BackendPath() string {
	return backendPaths[k]
}

// Result is the backend's answer, kept opaque: the console does not own these schemas.
type Result struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// ValidateBody checks that raw is a single JSON object.
func ValidateBody(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidBody
	}
	return nil
}
