package schema

// FilmTable represents the 'films' table
type FilmTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	ReleaseDate string
	Duration    string
	Rate        string
	MpaID       string
}

// Film is the schema definition for films
var Film = FilmTable{
	Table:       "films",
	ID:          "film_id",
	Name:        "name",
	Description: "description",
	ReleaseDate: "release_date",
	Duration:    "duration",
	Rate:        "rate",
	MpaID:       "mpa_id",
}

// Columns returns all standard column names
func (t FilmTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.ReleaseDate, t.Duration, t.Rate, t.MpaID}
}
