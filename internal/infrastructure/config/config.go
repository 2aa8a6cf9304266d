package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is shared by the CLI and the stand-in backend.
type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Endpoints EndpointsConfig
	Session   SessionConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Stub      StubConfig
}

// EndpointsConfig holds the base URLs of the three remote services.
type EndpointsConfig struct {
	Auth     string `env:"AUTH_URL,     default=https://functions.poehali.dev/167a0b83-54c6-4633-b7bb-fcb4980138db"`
	Bookings string `env:"BOOKINGS_URL, default=https://functions.poehali.dev/3dbee73c-614c-4e39-b4cc-23cc87992acd"`
	Admin    string `env:"ADMIN_URL,    default=https://functions.poehali.dev/01621918-0e10-4f1d-a17d-09c071eafdf0"`
}

// SessionConfig selects where the session pair is persisted.
//
// TTL applies to the redis backend only. The default of zero keeps the session
// until logout. A positive value lets redis drop the session by itself, which
// ends it without a logout; set it only when that is wanted.
type SessionConfig struct {
	Backend string        `env:"SESSION_BACKEND, default=file"`
	File    string        `env:"SESSION_FILE,    default=.transfer/session.json"`
	Profile string        `env:"SESSION_PROFILE, default=default"`
	TTL     time.Duration `env:"SESSION_TTL,     default=0s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=transfer"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// StubConfig configures the stand-in backend.
type StubConfig struct {
	Port          string        `env:"PORT,           default=8080"`
	JWTSecret     string        `env:"JWT_SECRET,     default=dev-secret"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=720h"`
	AdminEmail    string        `env:"ADMIN_EMAIL,    default=admin@transfer.local"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=admin123"`
	UsersBackend  string        `env:"STUB_USERS,     default=memory"`
}

// Session backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	switch c.Stub.UsersBackend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("config: unknown STUB_USERS %q", c.Stub.UsersBackend)
	}
	return nil
}
