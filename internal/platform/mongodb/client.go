package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/redact"
)

// Collection names.
const (
	CourseCollection   = "courses"
	PurchaseCollection = "purchases"
)

// connectTimeout bounds the initial ping.
const connectTimeout = 10 * time.Second

// Connect opens a client for uri and verifies it with a ping against the
// primary.
func Connect(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %s", redact.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %s", redact.Error(err))
	}

	logger.Info("mongo connection established", slog.String("uri", redact.String(uri)))
	return client, nil
}

// EnsureIndexes creates the indexes the stores rely on: unique emails per
// actor type and the lookup keys for courses and purchases. It is safe to
// call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, actor := range []domain.ActorType{domain.ActorAdmin, domain.ActorUser} {
		_, err := db.Collection(actor.Collection()).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		})
		if err != nil {
			return fmt.Errorf("create %s email index: %w", actor, err)
		}
	}

	if _, err := db.Collection(CourseCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "creatorId", Value: 1}},
		Options: options.Index().SetName("creator_id"),
	}); err != nil {
		return fmt.Errorf("create course creator index: %w", err)
	}

	if _, err := db.Collection(PurchaseCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("user_id"),
	}); err != nil {
		return fmt.Errorf("create purchase user index: %w", err)
	}

	return nil
}
