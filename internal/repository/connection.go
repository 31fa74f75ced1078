package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettings carries the connection knobs for the storefront document
// store. Zero values fall back to local-development defaults.
type MongoSettings struct {
	URI                    string
	Database               string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
}

const (
	defaultConnectTimeout         = 10 * time.Second
	defaultServerSelectionTimeout = 5 * time.Second
	defaultMaxPoolSize            = 100
	defaultMinPoolSize            = 10
)

func (s MongoSettings) clientOptions() *options.ClientOptions {
	if s.ConnectTimeout <= 0 {
		s.ConnectTimeout = defaultConnectTimeout
	}
	if s.ServerSelectionTimeout <= 0 {
		s.ServerSelectionTimeout = defaultServerSelectionTimeout
	}
	if s.MaxPoolSize == 0 {
		s.MaxPoolSize = defaultMaxPoolSize
	}
	if s.MinPoolSize == 0 {
		s.MinPoolSize = defaultMinPoolSize
	}

	return options.Client().
		ApplyURI(s.URI).
		SetConnectTimeout(s.ConnectTimeout).
		SetServerSelectionTimeout(s.ServerSelectionTimeout).
		SetMaxPoolSize(s.MaxPoolSize).
		SetMinPoolSize(s.MinPoolSize)
}

// Connect dials the document store and verifies it is reachable before any
// repository is built on top of it. The caller owns the returned client and
// disconnects it on shutdown.
func Connect(ctx context.Context, settings MongoSettings) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, settings.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(settings.Database), nil
}
