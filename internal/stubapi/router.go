// Package stubapi is a local stand-in for the transfer booking backend. It
// speaks the same wire contract as the production endpoints and keeps its
// data in memory, which makes it a fixture for development and client tests.
package stubapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/core/service"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/db/memory"
	_ "github.com/abkhaztransfer/transfer-client/internal/stubapi/docs"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi/handler"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi/middleware"
)

// Options configures New.
type Options struct {
	// Users stores accounts; nil selects an in-memory repository.
	Users         ports.UserRepository
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
	// Checks are extra readiness probes served on /health/ready.
	Checks map[string]handler.Check
	Log    zerolog.Logger
}

// New wires repositories and services, seeds the catalog and the admin
// account and returns the ready router.
func New(ctx context.Context, opts Options) (*echo.Echo, error) {
	users := opts.Users
	if users == nil {
		users = memory.NewUserRepository()
	}
	catalog := memory.NewCatalogRepository()
	if err := catalog.Seed(ctx, time.Now()); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	authService := service.NewAuthService(users, opts.JWTSecret, opts.TokenTTL)
	if opts.AdminEmail != "" {
		if err := authService.EnsureAdmin(ctx, opts.AdminEmail, opts.AdminPassword); err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
	}

	return NewRouter(Deps{
		Auth:      authService,
		Bookings:  service.NewBookingService(memory.NewBookingRepository(), catalog, users),
		Catalog:   service.NewCatalogService(catalog),
		JWTSecret: opts.JWTSecret,
		Checks:    opts.Checks,
		Log:       opts.Log,
	}), nil
}

// Deps are the services behind the routes.
type Deps struct {
	Auth      ports.AuthService
	Bookings  ports.BookingService
	Catalog   ports.CatalogService
	JWTSecret string
	Checks    map[string]handler.Check
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Authorization"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "stubapi",
		Registerer: reg,
	}))
	e.Use(middleware.Auth(d.JWTSecret))

	authHandler := handler.NewAuthHandler(d.Auth)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	adminHandler := handler.NewAdminHandler(d.Bookings, d.Catalog)
	healthHandler := handler.NewHealthHandler(d.Checks)

	// --- Auth ---
	e.POST("/auth", authHandler.Post)
	e.GET("/auth", authHandler.Verify)

	// --- Bookings: guests may create, everything else checks the caller ---
	e.POST("/bookings", bookingHandler.Create)
	e.GET("/bookings", bookingHandler.Get)
	e.PUT("/bookings", bookingHandler.Update)
	e.DELETE("/bookings", bookingHandler.Cancel)

	// --- Admin ---
	e.Match([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		"/admin", adminHandler.Handle, middleware.RBAC(domain.RoleAdmin))

	// --- Ops ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
