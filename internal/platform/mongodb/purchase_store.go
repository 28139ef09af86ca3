package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

// MongoPurchaseStore implements store.PurchaseStore on the purchases collection.
type MongoPurchaseStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure MongoPurchaseStore implements store.PurchaseStore interface
var _ store.PurchaseStore = (*MongoPurchaseStore)(nil)

// NewMongoPurchaseStore creates a purchase store in db.
func NewMongoPurchaseStore(db *mongo.Database, logger *slog.Logger) *MongoPurchaseStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoPurchaseStore{
		coll:   db.Collection(PurchaseCollection),
		logger: logger.With(slog.String("component", "purchase_store")),
	}
}

// Create implements store.PurchaseStore.Create
func (s *MongoPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := purchase.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, newPurchaseDocument(purchase)); err != nil {
		log.Error("failed to create purchase",
			slog.String("error", redact.Error(err)),
			slog.String("purchase_id", purchase.ID.String()))
		return MapError(err)
	}
	return nil
}

// ListByUser implements store.PurchaseStore.ListByUser
func (s *MongoPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, bson.D{{Key: "userId", Value: userID.String()}})
	if err != nil {
		log.Error("failed to query purchases",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	var docs []purchaseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", MapError(err))
	}

	purchases := make([]domain.Purchase, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}
