// Package guard gates navigation by authentication state and role. It
// is a pure decision layer: callers hand it a session snapshot and a
// requested path, and act on the returned Decision.
package guard

import "github.com/rentwise/property-system/pkg/session"

// State is the outcome of evaluating a navigation attempt.
type State int

const (
	// StateUnknown means the session has not been hydrated yet. No
	// redirect may be issued in this state, otherwise every reload
	// flashes through the login page.
	StateUnknown State = iota
	StateUnauthenticated
	StateWrongRole
	StateAllowed
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateWrongRole:
		return "wrong_role"
	case StateAllowed:
		return "allowed"
	}
	return "invalid"
}

// PublicEntryRoute is where unauthenticated visitors are sent.
const PublicEntryRoute = "/login"

// LandingRoute maps a role to its dashboard. The mapping is total:
// any value outside the known enum falls back to the tenant dashboard,
// so a redirect target always exists.
func LandingRoute(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return "/admin/dashboard"
	case session.RoleOwner:
		return "/owner/dashboard"
	default:
		return "/tenant/dashboard"
	}
}

// Decision tells the caller what to render. RedirectTo is empty when
// the requested content should be shown. ReturnTo captures the
// originally requested path so a later login can send the visitor back.
type Decision struct {
	State      State
	RedirectTo string
	ReturnTo   string
}

// Evaluate decides whether the session may see the route at
// requestedPath. An empty allowed set admits any authenticated user.
func Evaluate(snap session.Snapshot, requestedPath string, allowed ...session.Role) Decision {
	if !snap.Hydrated {
		return Decision{State: StateUnknown}
	}

	if !snap.Authenticated || snap.User == nil {
		return Decision{
			State:      StateUnauthenticated,
			RedirectTo: PublicEntryRoute,
			ReturnTo:   requestedPath,
		}
	}

	if len(allowed) > 0 && !roleAllowed(snap.User.Role, allowed) {
		return Decision{
			State:      StateWrongRole,
			RedirectTo: LandingRoute(snap.User.Role),
		}
	}

	return Decision{State: StateAllowed}
}

// EvaluatePublicOnly is the reverse guard for pages like login and
// register: an authenticated user is sent to their own landing route.
func EvaluatePublicOnly(snap session.Snapshot) Decision {
	if !snap.Hydrated {
		return Decision{State: StateUnknown}
	}

	if snap.Authenticated && snap.User != nil {
		// An authenticated user is the wrong audience for a
		// public-only page.
		return Decision{
			State:      StateWrongRole,
			RedirectTo: LandingRoute(snap.User.Role),
		}
	}

	return Decision{State: StateAllowed}
}

func roleAllowed(role session.Role, allowed []session.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
