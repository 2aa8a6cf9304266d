// Command stubapi serves the in-memory stand-in for the transfer booking
// backend on PORT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/abkhaztransfer/transfer-client/internal/app"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/config"
	"github.com/abkhaztransfer/transfer-client/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "stubapi"})
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "stubapi"})
	if envErr != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	e, closer, err := app.NewStubServer(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	go func() {
		log.Info().Str("port", cfg.Stub.Port).Str("users", cfg.Stub.UsersBackend).Msg("stub api listening")
		if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if err := closer(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("close connections")
	}
	log.Info().Msg("stub api stopped")
}
