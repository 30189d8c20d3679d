package domain

import "context"

// DatasetRepository replaces the document-store collections with the
// raw record sets of one run. The replace is a full drop-recreate, not
// an upsert: re-running against the same input leaves the store in the
// same state.
type DatasetRepository interface {
	PublishAll(ctx context.Context, movies []Movie, ratings []Rating, tags []Tag) error
}

// MovieSearchRepository replaces the search index with the enriched
// movie documents of one run, keyed by mid.
type MovieSearchRepository interface {
	PublishMovies(ctx context.Context, movies []SearchMovie) error
}

// LoaderUsecase runs the whole ingest, transform and publish pipeline
// once. Any stage failure aborts the run; a failure between the two
// publish steps leaves the sinks out of sync until the next clean run.
type LoaderUsecase interface {
	Run(ctx context.Context) error
}
