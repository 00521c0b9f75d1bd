package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"routes", "hospital"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("routes: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 hospital routes, got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "/hospital/dashboard") || !strings.Contains(lines[1], "(placeholder)") {
		t.Fatalf("unexpected first route: %q", lines[1])
	}
	if !strings.Contains(out.String(), "/hospital/inventory") || !strings.Contains(out.String(), "inventory") {
		t.Fatalf("inventory route missing:\n%s", out.String())
	}
}

func TestRoutesCommand_UnknownRole(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"routes", "nurse"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown role")
	}
}
