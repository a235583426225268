package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/config"
)

const connectAttempts = 3

// Connect liga ao MongoDB, com algumas tentativas antes de desistir.
// Atlas costuma demorar a acordar em planos gratuitos.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		tryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := mongo.Connect(tryCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = client.Ping(tryCtx, nil)
			if err != nil {
				_ = client.Disconnect(tryCtx)
			}
		}
		cancel()
		if err == nil {
			return client, nil
		}
		lastErr = err
		if attempt < connectAttempts {
			time.Sleep(2 * time.Second)
		}
	}
	return nil, lastErr
}

// Disconnect fecha a ligação com um prazo limitado.
func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
