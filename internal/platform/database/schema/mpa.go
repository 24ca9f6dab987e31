package schema

// MpaTable represents the 'mpa' content-rating reference table
type MpaTable struct {
	Table string
	ID    string
	Name  string
}

// Mpa is the schema definition for mpa
var Mpa = MpaTable{
	Table: "mpa",
	ID:    "mpa_id",
	Name:  "name",
}

// Columns returns all standard column names
func (t MpaTable) Columns() []string {
	return []string{t.ID, t.Name}
}
