package handler

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_Register(t *testing.T) {
	v := NewValidator()
	valid := registerForm{
		Name: "Ana", Email: "ana@example.com", Password: "pw", ConfirmPassword: "pw",
		Role: "Donor", BloodGroup: "O+",
	}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	tests := []struct {
		name string
		edit func(*registerForm)
		want string
	}{
		{"password mismatch", func(f *registerForm) { f.ConfirmPassword = "other" }, mismatchMessage},
		{"donor without blood group", func(f *registerForm) { f.BloodGroup = "" }, "blood group is required for this role"},
		{"recipient without blood group", func(f *registerForm) { f.Role, f.BloodGroup = "Recipient", "" }, "blood group is required for this role"},
		{"hospital without name", func(f *registerForm) { f.Role, f.BloodGroup = "Hospital", "" }, "hospital is required for this role"},
		{"bad email", func(f *registerForm) { f.Email = "nope" }, "email must be a valid email"},
		{"unknown role", func(f *registerForm) { f.Role = "Nurse" }, "role must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.edit(&f)
			err := v.Validate(&f)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.Contains(ve.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, ve.Error())
			}
		})
	}
}

func TestValidator_AdminNeedsNoExtras(t *testing.T) {
	f := registerForm{Name: "Root", Email: "root@example.com", Password: "pw", ConfirmPassword: "pw", Role: "Admin"}
	if err := NewValidator().Validate(&f); err != nil {
		t.Fatalf("admin registration rejected: %v", err)
	}
}

func TestUserMessage(t *testing.T) {
	msg, ok := userMessage(&ValidationError{Messages: []string{"email is required", mismatchMessage}})
	if !ok || msg != mismatchMessage {
		t.Fatalf("password mismatch should win, got %q", msg)
	}

	msg, ok = userMessage(&ValidationError{Messages: []string{"email is required"}})
	if !ok || msg != "Email is required." {
		t.Fatalf("unexpected message %q", msg)
	}

	if _, ok := userMessage(errors.New("disk on fire")); ok {
		t.Fatalf("unknown errors must not be shown to users")
	}
}
