package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineFilm/mongo"
)

// NewMongoClient connects to the document store and verifies the
// connection with a ping before the run starts.
func NewMongoClient(ctx context.Context, env *Env) (mongo.Client, error) {
	client, err := mongo.NewClient(env.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func CloseMongoConnection(ctx context.Context, client mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
