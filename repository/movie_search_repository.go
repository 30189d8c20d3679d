package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"github.com/olivere/elastic/v7"
)

// movieSearchRepository rebuilds the search index on every run. The
// index is deleted and recreated even though documents carry external
// ids, so stale fields from a previous schema never survive a reload.
type movieSearchRepository struct {
	client *elastic.Client
	index  string
}

func NewMovieSearchRepository(client *elastic.Client, index string) domain.MovieSearchRepository {
	return &movieSearchRepository{client: client, index: index}
}

func (r *movieSearchRepository) PublishMovies(ctx context.Context, movies []domain.SearchMovie) error {
	exists, err := r.client.IndexExists(r.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", r.index, err)
	}
	if exists {
		if _, err := r.client.DeleteIndex(r.index).Do(ctx); err != nil {
			return fmt.Errorf("delete index %s: %w", r.index, err)
		}
	}
	// No explicit mapping: field types are inferred from the first
	// documents written.
	if _, err := r.client.CreateIndex(r.index).Do(ctx); err != nil {
		return fmt.Errorf("create index %s: %w", r.index, err)
	}

	if len(movies) == 0 {
		return nil
	}

	bulk := r.client.Bulk().Index(r.index)
	for i := range movies {
		bulk.Add(elastic.NewBulkIndexRequest().
			Id(strconv.Itoa(movies[i].Mid)).
			Doc(movies[i]))
	}
	resp, err := bulk.Do(ctx)
	if err != nil {
		return fmt.Errorf("bulk write index %s: %w", r.index, err)
	}
	if resp.Errors {
		for _, item := range resp.Failed() {
			if item.Error != nil {
				return fmt.Errorf("bulk write index %s: document %s: %s", r.index, item.Id, item.Error.Reason)
			}
		}
		return fmt.Errorf("bulk write index %s: unspecified item failure", r.index)
	}
	log.Printf("index %s: %d documents", r.index, len(resp.Indexed()))
	return nil
}
