// Copyright (c) 2026 Filmorate. All rights reserved.

package reference

import (
	"context"

	"github.com/filmorate/filmorate/internal/platform/apperr"
)

// MemoryRepository implements [Repository] with fixed in-process catalogs.
//
// The catalogs mirror the rows seeded into the relational backend by the
// schema migrations, so both backends expose identical reference data.
type MemoryRepository struct {
	ratings []*Mpa
	genres  []*Genre
}

// NewMemoryRepository returns a repository seeded with the standard catalogs.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		ratings: []*Mpa{
			{ID: 1, Name: "G"},
			{ID: 2, Name: "PG"},
			{ID: 3, Name: "PG-13"},
			{ID: 4, Name: "R"},
			{ID: 5, Name: "NC-17"},
		},
		genres: []*Genre{
			{ID: 1, Name: "Комедия"},
			{ID: 2, Name: "Драма"},
			{ID: 3, Name: "Мультфильм"},
			{ID: 4, Name: "Триллер"},
			{ID: 5, Name: "Документальный"},
			{ID: 6, Name: "Боевик"},
		},
	}
}

func (repository *MemoryRepository) ListMpa(_ context.Context) ([]*Mpa, error) {
	out := make([]*Mpa, len(repository.ratings))
	copy(out, repository.ratings)
	return out, nil
}

func (repository *MemoryRepository) GetMpa(_ context.Context, id int) (*Mpa, error) {
	for _, m := range repository.ratings {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Mpa rating")
}

func (repository *MemoryRepository) ListGenres(_ context.Context) ([]*Genre, error) {
	out := make([]*Genre, len(repository.genres))
	copy(out, repository.genres)
	return out, nil
}

func (repository *MemoryRepository) GetGenre(_ context.Context, id int) (*Genre, error) {
	for _, g := range repository.genres {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Genre")
}
