package domain

import (
	"errors"
	"sync"

	access "courier-console/internal/features/access/domain"
)

var (
	// ErrIncompleteCredentials is returned when a login result lacks a user or access token.
	ErrIncompleteCredentials = errors.New("user and access token are required")
	// ErrMissingLogin is returned when email or password is blank.
	ErrMissingLogin = errors.New("email and password are required")
	// ErrNotAuthenticated is returned by operations that need a signed-in session.
	ErrNotAuthenticated = errors.New("session is not authenticated")
)

// User is the authenticated identity. The role lives on Session, not here.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	BranchID  string `json:"branchId,omitempty"`
}

// UserRecord is the wire form of a user as the backend sends it, with the role embedded.
type UserRecord struct {
	User
	Role *access.Role `json:"role,omitempty"`
}

// Split separates the identity from its embedded role.
func (r UserRecord) Split() (*User, *access.Role) {
	user := r.User
	var role *access.Role
	if r.Role != nil && r.Role.Name != "" {
		copied := *r.Role
		role = &copied
	}
	return &user, role
}

// Credentials is a successful login result.
type Credentials struct {
	User         UserRecord
	AccessToken  string
	RefreshToken string
}

// Session is the current authenticated identity, role and credentials.
type Session struct {
	User            *User        `json:"user"`
	Role            *access.Role `json:"role"`
	AccessToken     string       `json:"-"`
	RefreshToken    string       `json:"-"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// RoleName returns the role name, or "" when no role is set.
func (s Session) RoleName() access.RoleName {
	if s.Role == nil {
		return ""
	}
	return s.Role.Name
}

// Store owns one Session. Every mutation replaces all fields under the lock, so
// readers never observe a partial update.
type Store struct {
	mu      sync.RWMutex
	session Session
}

// NewStore returns an empty, unauthenticated store.
func NewStore() *Store {
	return &Store{}
}

// Hydrate replaces the session with the given values.
func (s *Store) Hydrate(user *User, role *access.Role, accessToken, refreshToken string) {
	next := Session{
		User:         cloneUser(user),
		Role:         cloneRole(role),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	next.IsAuthenticated = next.User != nil && next.AccessToken != ""

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()
}

// SetCredentials installs a login result.
func (s *Store) SetCredentials(user *User, role *access.Role, accessToken, refreshToken string) error {
	if user == nil || accessToken == "" {
		return ErrIncompleteCredentials
	}
	s.Hydrate(user, role, accessToken, refreshToken)
	return nil
}

// SetRole replaces only the role.
func (s *Store) SetRole(role *access.Role) {
	s.mu.Lock()
	next := s.session
	next.Role = cloneRole(role)
	s.session = next
	s.mu.Unlock()
}

// Logout clears every field.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session = Session{}
	s.mu.Unlock()
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.session
	out.User = cloneUser(s.session.User)
	out.Role = cloneRole(s.session.Role)
	return out
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneRole(r *access.Role) *access.Role {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
