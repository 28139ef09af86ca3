package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/backend"
	"github.com/phrazzld/course-api/internal/service/auth"
)

// application holds all the components needed to run the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	stores *backend.Stores

	hasher      auth.PasswordHasher
	adminTokens auth.TokenService
	userTokens  auth.TokenService
}

// newApplication creates a new application instance with all dependencies.
func newApplication(cfg *config.Config, logger *slog.Logger, stores *backend.Stores) (*application, error) {
	adminTokens, err := auth.NewTokenService(domain.ActorAdmin, cfg.Auth.AdminJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin token service: %w", err)
	}
	userTokens, err := auth.NewTokenService(domain.ActorUser, cfg.Auth.UserJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create user token service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		stores:      stores,
		hasher:      auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		adminTokens: adminTokens,
		userTokens:  userTokens,
	}, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	return startHTTPServer(ctx, app)
}

// cleanup releases application resources.
func (app *application) cleanup() {
	app.logger.Info("Cleaning up application resources")
	if err := app.stores.Close(context.Background()); err != nil {
		app.logger.Error("Error closing database connection", "error", err)
	}
}
