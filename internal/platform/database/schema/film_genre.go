package schema

// FilmGenreTable represents the 'film_genre' association table
type FilmGenreTable struct {
	Table   string
	FilmID  string
	GenreID string
}

// FilmGenre is the schema definition for film_genre
var FilmGenre = FilmGenreTable{
	Table:   "film_genre",
	FilmID:  "film_id",
	GenreID: "genre_id",
}

// Columns returns all standard column names
func (t FilmGenreTable) Columns() []string {
	return []string{t.FilmID, t.GenreID}
}
