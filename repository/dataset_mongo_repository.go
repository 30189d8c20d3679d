package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"github.com/Super-Badmen-Viper/NineFilm/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

// datasetMongoRepository rewrites the Movie, Rating and Tag collections
// from scratch on every run: drop, bulk insert, then recreate the
// lookup indexes. There is no incremental path.
type datasetMongoRepository struct {
	db mongo.Database
}

func NewDatasetRepository(db mongo.Database) domain.DatasetRepository {
	return &datasetMongoRepository{db: db}
}

func (r *datasetMongoRepository) PublishAll(ctx context.Context, movies []domain.Movie, ratings []domain.Rating, tags []domain.Tag) error {
	if err := r.replaceCollection(ctx, domain.CollectionMovie, movieDocs(movies)); err != nil {
		return err
	}
	if err := r.replaceCollection(ctx, domain.CollectionRating, ratingDocs(ratings)); err != nil {
		return err
	}
	if err := r.replaceCollection(ctx, domain.CollectionTag, tagDocs(tags)); err != nil {
		return err
	}
	if err := mongo.CreateIndexes(ctx, r.db); err != nil {
		return err
	}
	return r.logCounts(ctx)
}

func (r *datasetMongoRepository) replaceCollection(ctx context.Context, name string, docs []interface{}) error {
	coll := r.db.Collection(name)
	if err := coll.Drop(ctx); err != nil {
		return fmt.Errorf("drop collection %s: %w", name, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert into collection %s: %w", name, err)
	}
	return nil
}

func (r *datasetMongoRepository) logCounts(ctx context.Context) error {
	for _, name := range []string{domain.CollectionMovie, domain.CollectionRating, domain.CollectionTag} {
		n, err := r.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return fmt.Errorf("count collection %s: %w", name, err)
		}
		log.Printf("collection %s: %d documents", name, n)
	}
	return nil
}

func movieDocs(movies []domain.Movie) []interface{} {
	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}
	return docs
}

func ratingDocs(ratings []domain.Rating) []interface{} {
	docs := make([]interface{}, len(ratings))
	for i := range ratings {
		docs[i] = ratings[i]
	}
	return docs
}

func tagDocs(tags []domain.Tag) []interface{} {
	docs := make([]interface{}, len(tags))
	for i := range tags {
		docs[i] = tags[i]
	}
	return docs
}
