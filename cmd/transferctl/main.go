// Command transferctl is a terminal front end for the transfer booking API.
//
//	transferctl login -email a@b.c -password secret
//	transferctl book -from Sukhum -to Gagra -date 2026-07-01 -time 10:00 -tariff 1
//	transferctl bookings
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/abkhaztransfer/transfer-client/internal/app"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/config"
	"github.com/abkhaztransfer/transfer-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "transferctl"})

	store, closer, err := app.OpenSessionStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := run(ctx, app.NewClient(cfg, store, logger.Component("client")), os.Args[1:], os.Stdout, os.Stderr)
	if err := closer(context.Background()); err != nil {
		log.Warn().Err(err).Msg("close session store")
	}
	os.Exit(code)
}
