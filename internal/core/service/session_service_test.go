package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloodchain/portal/internal/core/domain"
)

func TestSessionService_CurrentDefaults(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), domain.RoleDonor, zerolog.Nop())

	sess, err := svc.Current(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Role != domain.RoleDonor || sess.LoggedIn || sess.User != "" {
		t.Fatalf("expected anonymous donor session, got %+v", sess)
	}
}

func TestSessionService_CurrentIgnoresMalformedFields(t *testing.T) {
	store := newStubSessionStore()
	store.data["sid"] = map[string]string{
		domain.FieldUserRole:    "Pirate",
		domain.FieldIsLoggedIn:  "yes",
		domain.FieldCurrentUser: "x@y.z",
	}
	svc := NewSessionService(store, domain.RoleHospital, zerolog.Nop())

	sess, _ := svc.Current(context.Background(), "sid")
	if sess.Role != domain.RoleHospital || sess.LoggedIn || sess.User != "" {
		t.Fatalf("malformed fields should fall back to defaults, got %+v", sess)
	}
}

func TestSessionService_LoginLogout(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, domain.RoleDonor, zerolog.Nop())
	ctx := context.Background()

	sess, err := svc.Login(ctx, "sid", domain.RoleHospital, "h@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role.DashboardPath() != "/hospital/dashboard" {
		t.Fatalf("unexpected dashboard %s", sess.Role.DashboardPath())
	}
	if got := store.data["sid"]; got["userRole"] != "Hospital" || got["isLoggedIn"] != "true" || got["currentUser"] != "h@example.com" {
		t.Fatalf("unexpected persisted fields %v", got)
	}

	reloaded, _ := svc.Current(ctx, "sid")
	if reloaded != sess {
		t.Fatalf("expected %+v after reload, got %+v", sess, reloaded)
	}

	if err := svc.Logout(ctx, "sid"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(store.data["sid"]) != 0 {
		t.Fatalf("logout must clear all fields, got %v", store.data["sid"])
	}
	after, _ := svc.Current(ctx, "sid")
	if after.LoggedIn || after.Role != domain.RoleDonor {
		t.Fatalf("expected default anonymous session after logout, got %+v", after)
	}
}

func TestSessionService_LoginInvalidRole(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, domain.RoleDonor, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "sid", domain.Role("Nurse"), "n@x"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if len(store.data) != 0 {
		t.Fatalf("nothing should be written on invalid role")
	}
}

func TestSessionService_LoginStoreError(t *testing.T) {
	store := newStubSessionStore()
	store.writeErr = errStoreDown
	svc := NewSessionService(store, domain.RoleDonor, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "sid", domain.RoleAdmin, "a@x"); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestSessionService_SwitchRole(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, domain.RoleDonor, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.SwitchRole(ctx, "sid", domain.RoleAdmin); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	if _, err := svc.Login(ctx, "sid", domain.RoleDonor, "d@x"); err != nil {
		t.Fatalf("login: %v", err)
	}
	sess, err := svc.SwitchRole(ctx, "sid", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if sess.Role != domain.RoleAdmin || !sess.LoggedIn || sess.User != "d@x" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if store.data["sid"]["userRole"] != "Admin" {
		t.Fatalf("switched role not persisted: %v", store.data["sid"])
	}
}
