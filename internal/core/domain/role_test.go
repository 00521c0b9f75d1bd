package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Donor":     RoleDonor,
		"donor":     RoleDonor,
		" HOSPITAL": RoleHospital,
		"Admin":     RoleAdmin,
		"recipient": RoleRecipient,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"", "Guest", "nurse"} {
		if _, err := ParseRole(in); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", in, err)
		}
	}
}

func TestRolePaths(t *testing.T) {
	if got := RoleHospital.BasePath(); got != "/hospital" {
		t.Fatalf("unexpected base path: %s", got)
	}
	if got := RoleHospital.DashboardPath(); got != "/hospital/dashboard" {
		t.Fatalf("unexpected dashboard path: %s", got)
	}
	if r, ok := RoleFromSlug("admin"); !ok || r != RoleAdmin {
		t.Fatalf("RoleFromSlug(admin) = %s, %v", r, ok)
	}
	if _, ok := RoleFromSlug("Admin"); ok {
		t.Fatalf("slugs are lower-case only")
	}
	if Role("Guest").Valid() {
		t.Fatalf("Guest must not be a valid role")
	}
}

func TestSessionFromFields(t *testing.T) {
	s := SessionFromFields(map[string]string{
		FieldUserRole:    "Hospital",
		FieldIsLoggedIn:  "true",
		FieldCurrentUser: "x@y.com",
	}, RoleDonor)
	if s.Role != RoleHospital || !s.LoggedIn || s.User != "x@y.com" {
		t.Fatalf("unexpected session: %+v", s)
	}

	s = SessionFromFields(map[string]string{FieldUserRole: "Pirate", FieldIsLoggedIn: "yes", FieldCurrentUser: "x"}, RoleDonor)
	if s.Role != RoleDonor || s.LoggedIn || s.User != "" {
		t.Fatalf("garbage fields must fall back to anonymous donor, got %+v", s)
	}

	s = SessionFromFields(nil, RoleRecipient)
	if s.Role != RoleRecipient || s.LoggedIn {
		t.Fatalf("empty fields must use the default role, got %+v", s)
	}
}

func TestSessionFields_LoggedOutDropsUser(t *testing.T) {
	fields := Session{Role: RoleAdmin}.Fields()
	if _, ok := fields[FieldCurrentUser]; ok {
		t.Fatalf("logged-out session must not persist a user: %+v", fields)
	}
	if _, ok := fields[FieldIsLoggedIn]; ok {
		t.Fatalf("logged-out session must not persist isLoggedIn: %+v", fields)
	}
}
