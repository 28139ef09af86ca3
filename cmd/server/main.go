// Package main implements the entry point for the course API server, which
// serves signup, signin and course management for admins and users of the
// course marketplace.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/platform/backend"
	"github.com/phrazzld/course-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, reset) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("course-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, then either runs the requested migration
// command or serves HTTP until interrupted.
func run(ctx context.Context, migrateCmd string) error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if migrateCmd != "" {
		return backend.Migrate(ctx, cfg.Database, migrateCmd, log)
	}

	stores, err := backend.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, stores)
	if err != nil {
		_ = stores.Close(context.Background())
		return err
	}
	return app.Run(ctx)
}

// loadDotEnv loads variables from path when the file exists. Variables
// already present in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
