// Package app wires configuration into the concrete session store, API
// client and stand-in backend used by the binaries.
package app

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abkhaztransfer/transfer-client/internal/client"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/config"
	mongostore "github.com/abkhaztransfer/transfer-client/internal/infrastructure/db/mongo"
	redisstore "github.com/abkhaztransfer/transfer-client/internal/infrastructure/db/redis"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/session"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi/handler"
)

// Closer releases connections opened during wiring.
type Closer func(context.Context) error

func noopCloser(context.Context) error { return nil }

// OpenSessionStore builds the store selected by SESSION_BACKEND.
func OpenSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, Closer, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return session.NewMemoryStore(), noopCloser, nil

	case config.BackendFile:
		return session.NewFileStore(cfg.Session.File), noopCloser, nil

	case config.BackendRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		store := redisstore.NewSessionStore(rdb, cfg.Session.Profile, cfg.Session.TTL)
		return store, func(context.Context) error { return rdb.Close() }, nil

	case config.BackendMongo:
		mc, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongostore.NewSessionStore(db, cfg.Session.Profile), mc.Disconnect, nil
	}
	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
}

// NewClient builds the API client against the configured endpoints.
func NewClient(cfg *config.Config, store ports.SessionStore, log zerolog.Logger) *client.Client {
	return client.New(client.Endpoints{
		Auth:     cfg.Endpoints.Auth,
		Bookings: cfg.Endpoints.Bookings,
		Admin:    cfg.Endpoints.Admin,
	}, store, nil, log)
}

// NewStubServer builds the stand-in backend. With STUB_USERS=mongo accounts
// live in MongoDB and the database joins the readiness checks.
func NewStubServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*echo.Echo, Closer, error) {
	opts := stubapi.Options{
		JWTSecret:     cfg.Stub.JWTSecret,
		TokenTTL:      cfg.Stub.TokenTTL,
		AdminEmail:    cfg.Stub.AdminEmail,
		AdminPassword: cfg.Stub.AdminPassword,
		Checks:        map[string]handler.Check{},
		Log:           log,
	}
	closer := Closer(noopCloser)

	if cfg.Stub.UsersBackend == config.BackendMongo {
		mc, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		users := mongostore.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = mc.Disconnect(ctx)
			return nil, nil, err
		}
		opts.Users = users
		opts.Checks["mongodb"] = mongostore.Pinger(db)
		closer = mc.Disconnect
	}

	e, err := stubapi.New(ctx, opts)
	if err != nil {
		_ = closer(ctx)
		return nil, nil, err
	}
	return e, closer, nil
}
