package config

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/bloodchain/portal/internal/core/domain"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	return LoadWith(context.Background(), envconfig.MapLookuper(env))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults %+v", cfg)
	}
	if cfg.Session.Backend != BackendMemory || cfg.Fixtures.Backend != BackendEmbedded {
		t.Fatalf("unexpected backends %q / %q", cfg.Session.Backend, cfg.Fixtures.Backend)
	}
	if cfg.Session.TTL != 24*time.Hour || cfg.Session.Cookie != "bloodchain_session" {
		t.Fatalf("unexpected session defaults %+v", cfg.Session)
	}
	if cfg.Role() != domain.RoleDonor || !cfg.CSRFEnabled {
		t.Fatalf("unexpected role/csrf defaults %q %v", cfg.Role(), cfg.CSRFEnabled)
	}
	if cfg.Session.Secret == "" || !cfg.Session.GeneratedSecret {
		t.Fatalf("expected a generated development secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"PORT":            "9090",
		"SESSION_BACKEND": "redis",
		"SESSION_SECRET":  "s3cret",
		"SESSION_TTL":     "30m",
		"FIXTURE_BACKEND": "mongo",
		"DEFAULT_ROLE":    "hospital",
		"REDIS_DB":        "3",
		"CSRF_ENABLED":    "false",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Session.Backend != BackendRedis || cfg.Fixtures.Backend != BackendMongo {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Session.Secret != "s3cret" || cfg.Session.GeneratedSecret || cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Role() != domain.RoleHospital || cfg.Redis.DB != 3 || cfg.CSRFEnabled {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"session backend", map[string]string{"SESSION_BACKEND": "memcached"}, "SESSION_BACKEND"},
		{"fixture backend", map[string]string{"FIXTURE_BACKEND": "sqlite"}, "FIXTURE_BACKEND"},
		{"default role", map[string]string{"DEFAULT_ROLE": "Nurse"}, "DEFAULT_ROLE"},
		{"ttl", map[string]string{"SESSION_TTL": "-1h"}, "SESSION_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.env)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	_, err := load(t, map[string]string{"ENV": "production"})
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}
