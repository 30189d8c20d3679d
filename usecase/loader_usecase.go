package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
)

// LoaderConfig carries the run parameters, resolved once at startup
// and never mutated afterwards.
type LoaderConfig struct {
	MovieFile      string
	RatingFile     string
	TagFile        string
	Parallelism    int
	PublishTimeout time.Duration
}

type loaderUsecase struct {
	cfg      LoaderConfig
	search   domain.MovieSearchRepository
	datasets domain.DatasetRepository
}

func NewLoaderUsecase(cfg LoaderConfig, search domain.MovieSearchRepository, datasets domain.DatasetRepository) domain.LoaderUsecase {
	return &loaderUsecase{cfg: cfg, search: search, datasets: datasets}
}

// Run executes one full load: parse the three datasets, aggregate and
// join the tags, then rewrite both sinks. Errors are not retried; the
// first failure aborts the run with the failing stage in the message.
func (u *loaderUsecase) Run(ctx context.Context) error {
	state := &runState{}
	defer state.release()

	var err error
	if state.movies, err = LoadMovies(u.cfg.MovieFile, u.cfg.Parallelism); err != nil {
		return fmt.Errorf("parse movies: %w", err)
	}
	log.Printf("parsed %d movies from %s", len(state.movies), u.cfg.MovieFile)

	if state.ratings, err = LoadRatings(u.cfg.RatingFile, u.cfg.Parallelism); err != nil {
		return fmt.Errorf("parse ratings: %w", err)
	}
	log.Printf("parsed %d ratings from %s", len(state.ratings), u.cfg.RatingFile)

	if state.tags, err = LoadTags(u.cfg.TagFile, u.cfg.Parallelism); err != nil {
		return fmt.Errorf("parse tags: %w", err)
	}
	log.Printf("parsed %d tags from %s", len(state.tags), u.cfg.TagFile)

	state.movieTags = AggregateTags(state.tags, u.cfg.Parallelism)
	log.Printf("aggregated tags for %d movies", len(state.movieTags))

	state.enriched = EnrichMovies(state.movies, state.movieTags)

	// Search index first, then document store. The order is fixed so
	// a mid-run failure always leaves the same sink stale; there is no
	// cross-sink rollback.
	if err := u.publish(ctx, "publish search index", func(ctx context.Context) error {
		return u.search.PublishMovies(ctx, state.enriched)
	}); err != nil {
		return err
	}
	if err := u.publish(ctx, "publish document store", func(ctx context.Context) error {
		return u.datasets.PublishAll(ctx, state.movies, state.ratings, state.tags)
	}); err != nil {
		return err
	}
	return nil
}

func (u *loaderUsecase) publish(ctx context.Context, stage string, fn func(context.Context) error) error {
	if u.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.PublishTimeout)
		defer cancel()
	}
	if err := fn(ctx); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}

// runState holds the record sets of one run so they can all be dropped
// together once the sinks are written.
type runState struct {
	movies    []domain.Movie
	ratings   []domain.Rating
	tags      []domain.Tag
	movieTags []domain.MovieTags
	enriched  []domain.SearchMovie
}

func (s *runState) release() {
	s.movies, s.ratings, s.tags, s.movieTags, s.enriched = nil, nil, nil, nil, nil
}
