package domain

const (
	CollectionMovie = "Movie"
)
const (
	CollectionRating = "Rating"
)
const (
	CollectionTag = "Tag"
)
