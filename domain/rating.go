package domain

// Rating is one user-to-movie score event. Duplicates are legal in the
// source data and are preserved, so the type carries no identity beyond
// its field values.
type Rating struct {
	Uid       int     `bson:"uid" json:"uid"`
	Mid       int     `bson:"mid" json:"mid"`
	Score     float64 `bson:"score" json:"score"`
	Timestamp int64   `bson:"timestamp" json:"timestamp"`
}
