package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/Super-Badmen-Viper/NineFilm/bootstrap"
	"github.com/Super-Badmen-Viper/NineFilm/repository"
	"github.com/Super-Badmen-Viper/NineFilm/usecase"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("load failed: %v", err)
	}
	log.Print("load complete")
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.App(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close connections: %v", err)
		}
	}()

	env := app.Env
	loader := usecase.NewLoaderUsecase(
		usecase.LoaderConfig{
			MovieFile:      env.MovieFile,
			RatingFile:     env.RatingFile,
			TagFile:        env.TagFile,
			Parallelism:    env.Parallelism,
			PublishTimeout: env.PublishTimeout,
		},
		repository.NewMovieSearchRepository(app.Search, env.ESIndex),
		repository.NewDatasetRepository(app.Mongo.Database(env.MongoDB)),
	)
	return loader.Run(ctx)
}
