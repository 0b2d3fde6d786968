// Command migrate applies the embedded schema migrations and exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"court-booking/internal/infra/db"
	"court-booking/internal/pkg/config"
	"court-booking/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	sqlDB, cleanup, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := migrations.Apply(ctx, sqlDB)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", len(applied), "versions", applied)
	return nil
}
