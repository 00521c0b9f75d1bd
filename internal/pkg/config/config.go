package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/bloodchain/portal/internal/core/domain"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendEmbedded = "embedded"
	BackendMongo    = "mongo"

	envProduction = "production"
)

var ErrMissingSecret = errors.New("SESSION_SECRET is required in production")

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Fixtures FixtureConfig

	DefaultRole  string `env:"DEFAULT_ROLE,  default=Donor"`
	CSRFEnabled  bool   `env:"CSRF_ENABLED,  default=true"`
	CookieSecure bool   `env:"COOKIE_SECURE, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Secret  string        `env:"SESSION_SECRET"`
	Cookie  string        `env:"SESSION_COOKIE,  default=bloodchain_session"`
	TTL     time.Duration `env:"SESSION_TTL,     default=24h"`
	Backend string        `env:"SESSION_BACKEND, default=memory"`

	// GeneratedSecret is set when Validate had to invent a development secret.
	GeneratedSecret bool
}

type FixtureConfig struct {
	Backend string `env:"FIXTURE_BACKEND, default=embedded"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bloodchain"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l, then validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == envProduction }

// Role returns the parsed default role.
func (c *Config) Role() domain.Role {
	r, err := domain.ParseRole(c.DefaultRole)
	if err != nil {
		return domain.RoleDonor
	}
	return r
}

// Validate rejects unknown backends and roles. Outside production a missing
// session secret is replaced by a random one, so sessions do not survive a restart.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	switch c.Fixtures.Backend {
	case BackendEmbedded, BackendMongo:
	default:
		return fmt.Errorf("config: unknown FIXTURE_BACKEND %q", c.Fixtures.Backend)
	}
	if _, err := domain.ParseRole(c.DefaultRole); err != nil {
		return fmt.Errorf("config: DEFAULT_ROLE %q: %w", c.DefaultRole, err)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.Session.TTL)
	}

	if c.Session.Secret == "" {
		if c.IsProduction() {
			return ErrMissingSecret
		}
		c.Session.Secret = randomSecret()
		c.Session.GeneratedSecret = true
	}
	return nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("dev-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
