package domain

// Tag is one free-text annotation a user attached to a movie.
type Tag struct {
	Uid       int    `bson:"uid" json:"uid"`
	Mid       int    `bson:"mid" json:"mid"`
	Text      string `bson:"tag" json:"tag"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// MovieTags holds the distinct tag texts of one movie joined into a
// single string. It exists only between the aggregation and enrichment
// steps and is never persisted on its own.
type MovieTags struct {
	Mid  int
	Tags string
}
