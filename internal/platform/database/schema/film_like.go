package schema

// FilmLikeTable represents the 'film_like' association table.
//
// The films.rate column is derived from this table and the two are only
// ever written together, inside one transaction.
type FilmLikeTable struct {
	Table  string
	FilmID string
	UserID string
}

// FilmLike is the schema definition for film_like
var FilmLike = FilmLikeTable{
	Table:  "film_like",
	FilmID: "film_id",
	UserID: "user_id",
}

// Columns returns all standard column names
func (t FilmLikeTable) Columns() []string {
	return []string{t.FilmID, t.UserID}
}
