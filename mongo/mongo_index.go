package mongo

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes builds the lookup indexes over the freshly reloaded
// collections: mid on all three, uid on Rating and Tag. Any failure is
// fatal to the run.
func CreateIndexes(ctx context.Context, db Database) error {
	movieCollection := db.Collection(domain.CollectionMovie)
	if err := createIndex(ctx, movieCollection, bson.D{{Key: "mid", Value: 1}}, "mid"); err != nil {
		return fmt.Errorf("collection %s: %w", domain.CollectionMovie, err)
	}

	ratingCollection := db.Collection(domain.CollectionRating)
	if err := createIndex(ctx, ratingCollection, bson.D{{Key: "mid", Value: 1}}, "mid"); err != nil {
		return fmt.Errorf("collection %s: %w", domain.CollectionRating, err)
	}
	if err := createIndex(ctx, ratingCollection, bson.D{{Key: "uid", Value: 1}}, "uid"); err != nil {
		return fmt.Errorf("collection %s: %w", domain.CollectionRating, err)
	}

	tagCollection := db.Collection(domain.CollectionTag)
	if err := createIndex(ctx, tagCollection, bson.D{{Key: "mid", Value: 1}}, "mid"); err != nil {
		return fmt.Errorf("collection %s: %w", domain.CollectionTag, err)
	}
	if err := createIndex(ctx, tagCollection, bson.D{{Key: "uid", Value: 1}}, "uid"); err != nil {
		return fmt.Errorf("collection %s: %w", domain.CollectionTag, err)
	}

	return nil
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string) error {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index %q: %w", name, err)
	}
	return nil
}
