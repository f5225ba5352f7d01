package guard

import (
	"testing"

	"github.com/rentwise/property-system/pkg/session"
)

func authedSnap(role session.Role) session.Snapshot {
	return session.Snapshot{
		User:          &session.User{ID: "user-1", Name: "Test", Email: "t@example.com", Role: role},
		Token:         "token",
		Authenticated: true,
		Hydrated:      true,
	}
}

func TestEvaluate_NotHydrated_NoRedirect(t *testing.T) {
	d := Evaluate(session.Snapshot{}, "/owner/dashboard", session.RoleOwner)
	if d.State != StateUnknown {
		t.Fatalf("expected unknown state, got %s", d.State)
	}
	if d.RedirectTo != "" {
		t.Fatalf("must not redirect before hydration, got %q", d.RedirectTo)
	}
}

func TestEvaluate_Unauthenticated_RedirectsToLogin(t *testing.T) {
	snap := session.Snapshot{Hydrated: true}

	d := Evaluate(snap, "/owner/dashboard", session.RoleOwner)
	if d.State != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", d.State)
	}
	if d.RedirectTo != "/login" {
		t.Fatalf("expected redirect to /login, got %q", d.RedirectTo)
	}
	if d.ReturnTo != "/owner/dashboard" {
		t.Fatalf("expected original path captured, got %q", d.ReturnTo)
	}
}

func TestEvaluate_WrongRole_RedirectsToOwnLanding(t *testing.T) {
	d := Evaluate(authedSnap(session.RoleTenant), "/admin/dashboard", session.RoleAdmin)
	if d.State != StateWrongRole {
		t.Fatalf("expected wrong role, got %s", d.State)
	}
	if d.RedirectTo != "/tenant/dashboard" {
		t.Fatalf("tenant must land on /tenant/dashboard, got %q", d.RedirectTo)
	}
}

func TestEvaluate_AllowedRole(t *testing.T) {
	d := Evaluate(authedSnap(session.RoleOwner), "/owner/dashboard", session.RoleOwner)
	if d.State != StateAllowed {
		t.Fatalf("expected allowed, got %s", d.State)
	}
	if d.RedirectTo != "" {
		t.Fatalf("allowed must not redirect, got %q", d.RedirectTo)
	}
}

func TestEvaluate_NoRoleRestriction(t *testing.T) {
	d := Evaluate(authedSnap(session.RoleTenant), "/profile")
	if d.State != StateAllowed {
		t.Fatalf("expected allowed for unrestricted route, got %s", d.State)
	}
}

func TestLandingRoute_TotalOverRoles(t *testing.T) {
	cases := map[session.Role]string{
		session.RoleAdmin:  "/admin/dashboard",
		session.RoleOwner:  "/owner/dashboard",
		session.RoleTenant: "/tenant/dashboard",
	}
	for role, want := range cases {
		if got := LandingRoute(role); got != want {
			t.Fatalf("LandingRoute(%s) = %q, want %q", role, got, want)
		}
	}

	// Unknown values still land somewhere.
	if got := LandingRoute("MYSTERY"); got != "/tenant/dashboard" {
		t.Fatalf("unknown role must fall back to tenant landing, got %q", got)
	}
}

func TestEvaluatePublicOnly(t *testing.T) {
	if d := EvaluatePublicOnly(session.Snapshot{}); d.State != StateUnknown || d.RedirectTo != "" {
		t.Fatalf("not hydrated must render nothing decisive: %+v", d)
	}

	if d := EvaluatePublicOnly(session.Snapshot{Hydrated: true}); d.State != StateAllowed {
		t.Fatalf("unauthenticated visitor may see public page: %+v", d)
	}

	d := EvaluatePublicOnly(authedSnap(session.RoleAdmin))
	if d.RedirectTo != "/admin/dashboard" {
		t.Fatalf("authenticated admin must be sent to admin landing, got %q", d.RedirectTo)
	}
}
