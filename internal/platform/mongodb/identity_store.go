package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

// MongoIdentityStore implements store.IdentityStore for one actor type,
// backed by that actor's collection.
type MongoIdentityStore struct {
	coll   *mongo.Collection
	actor  domain.ActorType
	logger *slog.Logger
}

// Ensure MongoIdentityStore implements store.IdentityStore interface
var _ store.IdentityStore = (*MongoIdentityStore)(nil)

// NewMongoIdentityStore creates an identity store for actor in db.
func NewMongoIdentityStore(db *mongo.Database, actor domain.ActorType, logger *slog.Logger) (*MongoIdentityStore, error) {
	name := actor.Collection()
	if name == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActorType, actor)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoIdentityStore{
		coll:   db.Collection(name),
		actor:  actor,
		logger: logger.With(slog.String("component", "identity_store"), slog.String("actor", actor.String())),
	}, nil
}

// ActorType implements store.IdentityStore.ActorType
func (s *MongoIdentityStore) ActorType() domain.ActorType {
	return s.actor
}

// Create implements store.IdentityStore.Create
// Uniqueness comes from the email index created by EnsureIndexes.
func (s *MongoIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := identity.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, newIdentityDocument(identity)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug("email already registered", slog.String("identity_id", identity.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create identity",
			slog.String("error", redact.Error(err)),
			slog.String("identity_id", identity.ID.String()))
		return MapError(err)
	}
	return nil
}

// GetByEmail implements store.IdentityStore.GetByEmail
func (s *MongoIdentityStore) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc identityDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrIdentityNotFound
		}
		log.Error("failed to get identity by email", slog.String("error", redact.Error(err)))
		return nil, mapped
	}

	return doc.toDomain()
}
