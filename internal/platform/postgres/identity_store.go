package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

// PostgresIdentityStore implements store.IdentityStore for one actor type.
// Admins and users live in separate tables with the same columns.
type PostgresIdentityStore struct {
	db     store.DBTX
	actor  domain.ActorType
	table  string
	logger *slog.Logger
}

// Ensure PostgresIdentityStore implements store.IdentityStore interface
var _ store.IdentityStore = (*PostgresIdentityStore)(nil)

// NewPostgresIdentityStore creates an identity store for actor backed by
// its table ("admins" or "users"). If logger is nil, a default logger will
// be used.
func NewPostgresIdentityStore(db store.DBTX, actor domain.ActorType, logger *slog.Logger) (*PostgresIdentityStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	table := actor.Collection()
	if table == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActorType, actor)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresIdentityStore{
		db:     db,
		actor:  actor,
		table:  table,
		logger: logger.With(slog.String("component", "identity_store"), slog.String("actor", actor.String())),
	}, nil
}

// ActorType implements store.IdentityStore.ActorType
func (s *PostgresIdentityStore) ActorType() domain.ActorType {
	return s.actor
}

// Create implements store.IdentityStore.Create
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := identity.Validate(); err != nil {
		log.Warn("identity validation failed during create",
			slog.String("error", err.Error()),
			slog.String("identity_id", identity.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	// The table name comes from domain.ActorType.Collection, never from input.
	query := `INSERT INTO ` + s.table + ` (id, email, password, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		identity.ID,
		identity.Email,
		identity.HashedPassword,
		identity.FirstName,
		identity.LastName,
		identity.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already registered", slog.String("identity_id", identity.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create identity",
			slog.String("error", redact.Error(err)),
			slog.String("identity_id", identity.ID.String()))
		return MapError(err)
	}

	log.Debug("identity created", slog.String("identity_id", identity.ID.String()))
	return nil
}

// GetByEmail implements store.IdentityStore.GetByEmail
// Matching is exact and case-sensitive.
func (s *PostgresIdentityStore) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, email, password, first_name, last_name, created_at
		FROM ` + s.table + `
		WHERE email = $1`

	var identity domain.Identity
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&identity.ID,
		&identity.Email,
		&identity.HashedPassword,
		&identity.FirstName,
		&identity.LastName,
		&identity.CreatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrIdentityNotFound
		}
		log.Error("failed to get identity by email", slog.String("error", redact.Error(err)))
		return nil, mapped
	}

	return &identity, nil
}
