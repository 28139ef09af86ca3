package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/mongodb"
	"github.com/phrazzld/course-api/internal/platform/postgres"
	"github.com/phrazzld/course-api/internal/store"
)

// Postgres pool settings.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Stores bundles the stores of one backend with the function that releases
// its connections.
type Stores struct {
	Admins    store.IdentityStore
	Users     store.IdentityStore
	Courses   store.CourseStore
	Purchases store.PurchaseStore

	closer func(ctx context.Context) error
}

// Identities returns the identity store for actor.
func (s *Stores) Identities(actor domain.ActorType) (store.IdentityStore, error) {
	switch actor {
	case domain.ActorAdmin:
		return s.Admins, nil
	case domain.ActorUser:
		return s.Users, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActorType, actor)
	}
}

// Close releases the backend connection. It is safe on stores built
// without a closer.
func (s *Stores) Close(ctx context.Context) error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}

// Open connects to the configured backend and builds its stores. For
// MongoDB the unique and lookup indexes are ensured before returning.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := OpenPostgres(ctx, cfg.URL, logger)
		if err != nil {
			return nil, err
		}
		stores, err := newPostgresStores(db, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return stores, nil

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		db := client.Database(cfg.Name)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("failed to ensure mongo indexes: %w", err)
		}
		stores, err := newMongoStores(client, db, logger)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return stores, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenPostgres establishes a connection to the database and configures connection pools.
func OpenPostgres(ctx context.Context, url string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", "driver", config.DriverPostgres)
	return db, nil
}

func newPostgresStores(db *sql.DB, logger *slog.Logger) (*Stores, error) {
	admins, err := postgres.NewPostgresIdentityStore(db, domain.ActorAdmin, logger)
	if err != nil {
		return nil, err
	}
	users, err := postgres.NewPostgresIdentityStore(db, domain.ActorUser, logger)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Admins:    admins,
		Users:     users,
		Courses:   postgres.NewPostgresCourseStore(db, logger),
		Purchases: postgres.NewPostgresPurchaseStore(db, logger),
		closer:    func(context.Context) error { return db.Close() },
	}, nil
}

func newMongoStores(client *mongo.Client, db *mongo.Database, logger *slog.Logger) (*Stores, error) {
	admins, err := mongodb.NewMongoIdentityStore(db, domain.ActorAdmin, logger)
	if err != nil {
		return nil, err
	}
	users, err := mongodb.NewMongoIdentityStore(db, domain.ActorUser, logger)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Admins:    admins,
		Users:     users,
		Courses:   mongodb.NewMongoCourseStore(db, logger),
		Purchases: mongodb.NewMongoPurchaseStore(db, logger),
		closer:    client.Disconnect,
	}, nil
}
