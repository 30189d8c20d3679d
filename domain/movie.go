package domain

// Movie is one row of the movie catalog dataset. Genres, cast and
// directors arrive as delimited strings in the source files and are
// carried through as-is; nothing downstream needs them split.
type Movie struct {
	Mid            int    `bson:"mid" json:"mid"`
	Name           string `bson:"name" json:"name"`
	Description    string `bson:"description" json:"description"`
	Runtime        string `bson:"runtime" json:"runtime"`
	ReleaseDate    string `bson:"release_date" json:"release_date"`
	ProductionYear string `bson:"production_year" json:"production_year"`
	Language       string `bson:"language" json:"language"`
	Genres         string `bson:"genres" json:"genres"`
	Cast           string `bson:"cast" json:"cast"`
	Directors      string `bson:"directors" json:"directors"`
}

// SearchMovie is the document shape written to the search index: the
// catalog row plus the aggregated tag text for that movie. Tags is empty
// when no user ever tagged the movie.
type SearchMovie struct {
	Movie `bson:",inline"`
	Tags  string `bson:"tags,omitempty" json:"tags,omitempty"`
}
