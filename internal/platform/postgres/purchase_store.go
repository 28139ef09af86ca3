package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

// PostgresPurchaseStore implements the store.PurchaseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPurchaseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresPurchaseStore implements store.PurchaseStore interface
var _ store.PurchaseStore = (*PostgresPurchaseStore)(nil)

// NewPostgresPurchaseStore creates a new PostgreSQL implementation of the PurchaseStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPurchaseStore(db store.DBTX, logger *slog.Logger) *PostgresPurchaseStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPurchaseStore{
		db:     db,
		logger: logger.With(slog.String("component", "purchase_store")),
	}
}

// Create implements store.PurchaseStore.Create
// Returns store.ErrInvalidEntity if the user or course does not exist.
func (s *PostgresPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := purchase.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO purchases (id, user_id, course_id) VALUES ($1, $2, $3)`,
		purchase.ID, purchase.UserID, purchase.CourseID)
	if err != nil {
		log.Error("failed to create purchase",
			slog.String("error", redact.Error(err)),
			slog.String("purchase_id", purchase.ID.String()))
		return MapError(err)
	}
	return nil
}

// ListByUser implements store.PurchaseStore.ListByUser
func (s *PostgresPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) (purchases []domain.Purchase, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, course_id FROM purchases WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		log.Error("failed to query purchases",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = MapError(closeErr)
		}
	}()

	purchases = []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.CourseID); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return purchases, nil
}
