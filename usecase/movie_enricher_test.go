package usecase

import (
	"strings"
	"testing"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichMoviesKeepsCardinality(t *testing.T) {
	movies := []domain.Movie{{Mid: 1, Name: "Toy Story (1995)"}, {Mid: 2, Name: "Jumanji (1995)"}, {Mid: 3, Name: "Heat (1995)"}}
	movieTags := []domain.MovieTags{{Mid: 2, Tags: "board game|jungle"}}

	out := EnrichMovies(movies, movieTags)
	require.Len(t, out, len(movies))
}

func TestEnrichMoviesJoin(t *testing.T) {
	movies := []domain.Movie{{Mid: 1, Name: "Toy Story (1995)"}, {Mid: 2, Name: "Jumanji (1995)"}}
	movieTags := []domain.MovieTags{
		{Mid: 1, Tags: "dentist|family"},
		{Mid: 99, Tags: "orphaned"},
	}

	out := EnrichMovies(movies, movieTags)
	require.Len(t, out, 2)

	assert.ElementsMatch(t, []string{"dentist", "family"}, strings.Split(out[0].Tags, "|"))
	assert.NotContains(t, out[0].Tags, "orphaned")
	assert.Empty(t, out[1].Tags)
	assert.Equal(t, movies[0], out[0].Movie)
	assert.Equal(t, movies[1], out[1].Movie)
}

func TestEnrichMoviesNoTags(t *testing.T) {
	movies := []domain.Movie{{Mid: 1}}
	out := EnrichMovies(movies, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Tags)
}
