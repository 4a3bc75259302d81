package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// ConnectWithRetry calls Connect at a fixed interval until it succeeds or the
// attempt budget is spent. Used at startup so a database that comes up a few
// seconds after the service does not kill the process.
func ConnectWithRetry(ctx context.Context, cfg Config, attempts uint64, interval time.Duration, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	var client *mongo.Client
	var db *mongo.Database

	backoff := retry.WithMaxRetries(attempts, retry.NewConstant(interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var connectErr error
		client, db, connectErr = Connect(ctx, cfg)
		if connectErr != nil {
			log.Warn().Err(connectErr).Msg("mongo not ready, retrying")
			return retry.RetryableError(connectErr)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect with retry: %w", err)
	}
	return client, db, nil
}
