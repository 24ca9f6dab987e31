/*
Package reference manages the reference catalogs of Filmorate.

It handles the retrieval of fixed lookup entities that are shared across
films: MPA age ratings and content genres. Both catalogs are seeded at
schema creation time and are read-only through the API.

# Core Responsibility

  - Ratings: Maintains the [Mpa] age-certification scale (G through NC-17).
  - Genres: Maintains the [Genre] taxonomy films are classified with.

This package provides the "Common Language" used by the film catalog to
describe content.
*/
package reference

// # Rating Domain

// Mpa represents an age-certification rating from the MPA scale.
type Mpa struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// # Genre Domain

// Genre represents a content category a film can be classified with.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// # Field Identifiers

// Global field names for validation in the reference domain.
const (
	FieldID   = "id"
	FieldName = "name"
)
