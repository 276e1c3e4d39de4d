package guard

import (
	"strings"

	access "courier-console/internal/features/access/domain"
	session "courier-console/internal/features/session/domain"
)

// Outcome is what the guard does with a navigation request.
type Outcome string

const (
	// OutcomeRender lets the request through to its handler.
	OutcomeRender Outcome = "render"
	// OutcomeRedirectLogin sends an unauthenticated visitor to the login view.
	OutcomeRedirectLogin Outcome = "redirect_login"
	// OutcomeRedirectHome sends a signed-in user away from the login view.
	OutcomeRedirectHome Outcome = "redirect_home"
	// OutcomeAccessDenied renders the access-denied view.
	OutcomeAccessDenied Outcome = "access_denied"
)

const (
	// LoginPath is where unauthenticated requests are redirected.
	LoginPath = "/"
	// HomePath is where authenticated users land.
	HomePath = "/dashboard"
)

// Decision is the guard's verdict for one request.
type Decision struct {
	Outcome  Outcome
	Location string
	// Required is set for OutcomeAccessDenied.
	Required access.Permission
}

var rootPaths = map[string]struct{}{
	"/":      {},
	"/login": {},
}

// publicPrefixes are served regardless of authentication.
var publicPrefixes = []string{"/auth", "/swagger", "/metrics", "/healthz"}

// Decide evaluates path against s. It is pure: the role is read from the session
// only, and authorization runs only after authentication succeeds.
func Decide(s session.Session, path string) Decision {
	path = normalize(path)

	if _, ok := rootPaths[path]; ok {
		if s.IsAuthenticated {
			return Decision{Outcome: OutcomeRedirectHome, Location: HomePath}
		}
		return Decision{Outcome: OutcomeRender}
	}

	if isPublic(path) {
		return Decision{Outcome: OutcomeRender}
	}

	if !s.IsAuthenticated {
		return Decision{Outcome: OutcomeRedirectLogin, Location: LoginPath}
	}

	route, ok := access.LookupRoute(path)
	if !ok {
		return Decision{Outcome: OutcomeRender}
	}

	if !access.HasPermission(s.RoleName(), route.Permission) {
		return Decision{Outcome: OutcomeAccessDenied, Required: route.Permission}
	}

	return Decision{Outcome: OutcomeRender}
}

func isPublic(path string) bool {
	for _, p := range publicPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// normalize lower-cases path and drops trailing slashes, so the table sees the
// same path Fiber's case-insensitive router would dispatch.
func normalize(path string) string {
	if path == "" {
		return "/"
	}
	path = strings.ToLower(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
