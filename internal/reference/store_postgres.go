// Copyright (c) 2026 Filmorate. All rights reserved.

package reference

import (
	"context"
	"fmt"

	"github.com/filmorate/filmorate/internal/platform/database/schema"
	"github.com/filmorate/filmorate/internal/platform/dberr"
	"github.com/filmorate/filmorate/internal/platform/postgres"
)

// PostgresRepository implements [Repository] against the relational backend.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListMpa(context context.Context) ([]*Mpa, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Mpa.ID,
		schema.Mpa.Name,
		schema.Mpa.Table,
		schema.Mpa.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_mpa")
	}
	defer rows.Close()

	var ratings []*Mpa
	for rows.Next() {
		m := &Mpa{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_mpa")
		}
		ratings = append(ratings, m)
	}

	return ratings, nil
}

func (repository *PostgresRepository) GetMpa(context context.Context, id int) (*Mpa, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Mpa.ID,
		schema.Mpa.Name,
		schema.Mpa.Table,
		schema.Mpa.ID,
	)

	m := &Mpa{}
	err := repository.db.QueryRow(context, query, id).Scan(&m.ID, &m.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_mpa")
	}

	return m, nil
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Genre.ID,
		schema.Genre.Name,
		schema.Genre.Table,
		schema.Genre.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, nil
}

func (repository *PostgresRepository) GetGenre(context context.Context, id int) (*Genre, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Genre.ID,
		schema.Genre.Name,
		schema.Genre.Table,
		schema.Genre.ID,
	)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}

	return g, nil
}
