package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/platform/mongodb"
	"github.com/phrazzld/course-api/internal/platform/postgres"
)

// Migrate runs a schema command against the configured backend. Postgres
// runs the embedded goose migrations. MongoDB has no schema: "up" creates
// its indexes and every other command is rejected.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, command string, logger *slog.Logger) error {
	logger.Info("Executing migrations",
		"command", command,
		"driver", cfg.Driver)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := OpenPostgres(ctx, cfg.URL, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing database connection", "error", err)
			}
		}()
		return postgres.Migrate(ctx, db, command, logger)

	case config.DriverMongo:
		if command != postgres.MigrateUp {
			return fmt.Errorf("migration command %q is not supported for %s", command, config.DriverMongo)
		}
		client, err := mongodb.Connect(ctx, cfg.URL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to mongo: %w", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("Error closing database connection", "error", err)
			}
		}()
		if err := mongodb.EnsureIndexes(ctx, client.Database(cfg.Name)); err != nil {
			return fmt.Errorf("failed to ensure mongo indexes: %w", err)
		}
		logger.Info("Mongo indexes ensured", "database", cfg.Name)
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
