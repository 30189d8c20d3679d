package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	nfmongo "github.com/Super-Badmen-Viper/NineFilm/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeDatabase struct {
	ops   []string
	colls map[string]*fakeCollection
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{colls: make(map[string]*fakeCollection)}
}

func (d *fakeDatabase) Collection(name string) nfmongo.Collection {
	if c, ok := d.colls[name]; ok {
		return c
	}
	c := &fakeCollection{name: name, db: d}
	d.colls[name] = c
	return c
}

type fakeCollection struct {
	name      string
	db        *fakeDatabase
	docs      []interface{}
	indexes   []string
	dropErr   error
	insertErr error
	indexErr  error
}

func (c *fakeCollection) Drop(context.Context) error {
	c.db.ops = append(c.db.ops, "drop "+c.name)
	if c.dropErr != nil {
		return c.dropErr
	}
	c.docs = nil
	return nil
}

func (c *fakeCollection) InsertMany(_ context.Context, documents []interface{}) ([]interface{}, error) {
	c.db.ops = append(c.db.ops, "insert "+c.name)
	if c.insertErr != nil {
		return nil, c.insertErr
	}
	c.docs = append(c.docs, documents...)
	return make([]interface{}, len(documents)), nil
}

func (c *fakeCollection) CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error) {
	return int64(len(c.docs)), nil
}

func (c *fakeCollection) Indexes() nfmongo.IndexView {
	return &fakeIndexView{coll: c}
}

type fakeIndexView struct{ coll *fakeCollection }

func (v *fakeIndexView) CreateOne(_ context.Context, model driver.IndexModel) (string, error) {
	if v.coll.indexErr != nil {
		return "", v.coll.indexErr
	}
	name := ""
	if model.Options != nil && model.Options.Name != nil {
		name = *model.Options.Name
	}
	v.coll.indexes = append(v.coll.indexes, name)
	return name, nil
}

func sampleDataset() ([]domain.Movie, []domain.Rating, []domain.Tag) {
	movies := []domain.Movie{{Mid: 1, Name: "Toy Story (1995)"}}
	ratings := []domain.Rating{{Uid: 1, Mid: 1, Score: 5, Timestamp: 1260759144}}
	tags := []domain.Tag{
		{Uid: 15, Mid: 1, Text: "dentist", Timestamp: 1193435061},
		{Uid: 7, Mid: 1, Text: "family", Timestamp: 1193435062},
	}
	return movies, ratings, tags
}

func TestPublishAllReplacesCollections(t *testing.T) {
	db := newFakeDatabase()
	movies, ratings, tags := sampleDataset()

	err := NewDatasetRepository(db).PublishAll(context.Background(), movies, ratings, tags)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"drop Movie", "insert Movie",
		"drop Rating", "insert Rating",
		"drop Tag", "insert Tag",
	}, db.ops)

	assert.Len(t, db.colls[domain.CollectionMovie].docs, 1)
	assert.Len(t, db.colls[domain.CollectionRating].docs, 1)
	assert.Len(t, db.colls[domain.CollectionTag].docs, 2)

	assert.Equal(t, []string{"mid"}, db.colls[domain.CollectionMovie].indexes)
	assert.Equal(t, []string{"mid", "uid"}, db.colls[domain.CollectionRating].indexes)
	assert.Equal(t, []string{"mid", "uid"}, db.colls[domain.CollectionTag].indexes)
}

func TestPublishAllIsIdempotent(t *testing.T) {
	db := newFakeDatabase()
	movies, ratings, tags := sampleDataset()
	repo := NewDatasetRepository(db)

	require.NoError(t, repo.PublishAll(context.Background(), movies, ratings, tags))
	require.NoError(t, repo.PublishAll(context.Background(), movies, ratings, tags))

	// The second run dropped everything before writing, so counts match
	// a single run.
	assert.Len(t, db.colls[domain.CollectionMovie].docs, 1)
	assert.Len(t, db.colls[domain.CollectionRating].docs, 1)
	assert.Len(t, db.colls[domain.CollectionTag].docs, 2)
}

func TestPublishAllEmptyDatasets(t *testing.T) {
	db := newFakeDatabase()

	err := NewDatasetRepository(db).PublishAll(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	// Collections are still dropped, but nothing is inserted.
	assert.Equal(t, []string{"drop Movie", "drop Rating", "drop Tag"}, db.ops)
}

func TestPublishAllInsertFailureIsFatal(t *testing.T) {
	db := newFakeDatabase()
	db.Collection(domain.CollectionRating)
	db.colls[domain.CollectionRating].insertErr = errors.New("socket closed")
	movies, ratings, tags := sampleDataset()

	err := NewDatasetRepository(db).PublishAll(context.Background(), movies, ratings, tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rating")

	// The Tag collection was never touched.
	assert.NotContains(t, db.ops, "drop Tag")
}

func TestPublishAllIndexFailureIsFatal(t *testing.T) {
	db := newFakeDatabase()
	db.Collection(domain.CollectionTag)
	db.colls[domain.CollectionTag].indexErr = errors.New("index build failed")
	movies, ratings, tags := sampleDataset()

	err := NewDatasetRepository(db).PublishAll(context.Background(), movies, ratings, tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tag")
}
