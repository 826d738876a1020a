package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/forgecrew/workshophub/internal/app/repositories/postgres"
	"github.com/forgecrew/workshophub/internal/bootstrap"
	"github.com/forgecrew/workshophub/internal/config"
	"github.com/forgecrew/workshophub/internal/db"
	"github.com/forgecrew/workshophub/internal/seed"
)

// Maintenance entrypoint: connects to the configured database and upserts
// the fixed accounts and default settings. No flags.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.DatabaseConfigured() {
		return fmt.Errorf("DATABASE_URL is not set; seeding requires a database")
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	// A fresh database has no tables yet; migrate before seeding.
	if err := bootstrap.RunMigrations(database, log.Logger); err != nil {
		return err
	}

	repos := postgres.NewRepositories(database.Pool)
	if err := seed.EnsureDefaults(context.Background(), repos, log.Logger); err != nil {
		return err
	}

	fmt.Println("seed complete")
	return nil
}
