package usecase

import "github.com/Super-Badmen-Viper/NineFilm/domain"

// EnrichMovies left-joins the aggregated tag text onto the catalog by
// movie id. Every movie row appears exactly once in the output; movies
// without tags keep an empty Tags field.
func EnrichMovies(movies []domain.Movie, movieTags []domain.MovieTags) []domain.SearchMovie {
	tagsByMid := make(map[int]string, len(movieTags))
	for _, mt := range movieTags {
		tagsByMid[mt.Mid] = mt.Tags
	}
	out := make([]domain.SearchMovie, len(movies))
	for i, m := range movies {
		out[i] = domain.SearchMovie{Movie: m, Tags: tagsByMid[m.Mid]}
	}
	return out
}
