package bootstrap

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/NineFilm/mongo"
	"github.com/olivere/elastic/v7"
)

// Application bundles the resolved environment and the two store
// clients for the lifetime of one run.
type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Search *elastic.Client
}

func App(ctx context.Context) (*Application, error) {
	env, err := NewEnv()
	if err != nil {
		return nil, err
	}
	mongoClient, err := NewMongoClient(ctx, env)
	if err != nil {
		return nil, err
	}
	searchClient, err := NewSearchClient(ctx, env)
	if err != nil {
		_ = CloseMongoConnection(ctx, mongoClient)
		return nil, err
	}
	return &Application{Env: env, Mongo: mongoClient, Search: searchClient}, nil
}

// Close releases the store connections. It runs on every exit path,
// success or failure, so a failed run never leaks sockets.
func (app *Application) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.Search.Stop()
	return CloseMongoConnection(ctx, app.Mongo)
}
