package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"matchmate_backend/internal/logger"
)

// Collection names.
const (
	CollectionUsers    = "user"
	CollectionBiodata  = "bioData"
	CollectionFavorite = "favorite"
	CollectionContact  = "contactReq"
	CollectionReview   = "review"
	CollectionCounters = "counters"
)

// Config holds the document-store connection settings.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
}

// Mongo is the managed store client. It is constructed once at startup,
// injected into repositories and closed on shutdown — never referenced as
// ambient state.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client, configures the pool and verifies the connection
// with a bounded ping.
func Connect(ctx context.Context, cfg Config) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connection established", "database", cfg.Database, "max_pool_size", cfg.MaxPoolSize)

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle bound to the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close releases the connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	logger.Info("MongoDB connection closed")
	return nil
}

// EnsureIndexes creates the indexes the data model relies on: unique user
// emails, one biodata per email, and the (email, serverId) favorite pair.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	userIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection(CollectionUsers).Indexes().CreateOne(ctx, userIdx); err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	bioIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "bioId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection(CollectionBiodata).Indexes().CreateOne(ctx, bioIdx); err != nil {
		return fmt.Errorf("failed to create biodata bioId index: %w", err)
	}

	favIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "serverId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection(CollectionFavorite).Indexes().CreateOne(ctx, favIdx); err != nil {
		return fmt.Errorf("failed to create favorite pair index: %w", err)
	}

	return nil
}
