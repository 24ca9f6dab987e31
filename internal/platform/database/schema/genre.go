package schema

// GenreTable represents the 'genre' reference table
type GenreTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for genre
var Genre = GenreTable{
	Table: "genre",
	ID:    "genre_id",
	Name:  "name",
}

// Columns returns all standard column names
func (t GenreTable) Columns() []string {
	return []string{t.ID, t.Name}
}
