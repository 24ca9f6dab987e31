// Copyright (c) 2026 Filmorate. All rights reserved.

package film

import (
	"context"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/platform/dberr"
	"github.com/filmorate/filmorate/internal/platform/postgres"
	"github.com/filmorate/filmorate/internal/reference"
)

// PostgresRepository implements [Repository] against the relational backend.
//
// The films.rate column is derived from the film_like table; every write
// that touches one touches the other inside the same transaction.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed film store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// filmColumns is the shared SELECT shape for hydrating films with their
// MPA rating joined in.
const filmColumns = `
	f.film_id, f.name, f.description, f.release_date, f.duration, f.rate,
	m.mpa_id, m.name
`

// # Catalog Implementation

/*
Create inserts a new film and its genre links.

Description: Executes within a transaction: the film row and its
film_genre rows appear together or not at all. The generated identifier
is scanned back into the entity.

Parameters:
  - context: context.Context
  - film: *Film

Returns:
  - error: ValidationError on unknown rating/genre ids, persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, film *Film) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_film_tx")
	}
	defer transaction.Rollback(context)

	const insertQuery = `
		INSERT INTO films (name, description, release_date, duration, rate, mpa_id)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING film_id
	`
	err = transaction.QueryRow(context, insertQuery,
		film.Name, film.Description, film.ReleaseDate, film.Duration, mpaID(film),
	).Scan(&film.ID)
	if err != nil {
		return dberr.Wrap(err, "create_film")
	}

	const genreQuery = `INSERT INTO film_genre (film_id, genre_id) VALUES ($1, $2)`
	for _, genre := range film.Genres {
		if _, err := transaction.Exec(context, genreQuery, film.ID, genre.ID); err != nil {
			return dberr.Wrap(err, "link_film_genre")
		}
	}

	return transaction.Commit(context)
}

/*
Update replaces the catalog fields and genre links of an existing film.

Description: The rate column and the film_like table are untouched, so
likes survive catalog edits. Genre links are rewritten wholesale.

Parameters:
  - context: context.Context
  - film: *Film

Returns:
  - error: apperr.NotFound for an unknown id, persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, film *Film) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_film_tx")
	}
	defer transaction.Rollback(context)

	const updateQuery = `
		UPDATE films
		SET name = $2, description = $3, release_date = $4, duration = $5, mpa_id = $6
		WHERE film_id = $1
	`
	result, err := transaction.Exec(context, updateQuery,
		film.ID, film.Name, film.Description, film.ReleaseDate, film.Duration, mpaID(film),
	)
	if err != nil {
		return dberr.Wrap(err, "update_film")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Film")
	}

	if _, err := transaction.Exec(context, `DELETE FROM film_genre WHERE film_id = $1`, film.ID); err != nil {
		return dberr.Wrap(err, "clear_film_genres")
	}

	const genreQuery = `INSERT INTO film_genre (film_id, genre_id) VALUES ($1, $2)`
	for _, genre := range film.Genres {
		if _, err := transaction.Exec(context, genreQuery, film.ID, genre.ID); err != nil {
			return dberr.Wrap(err, "link_film_genre")
		}
	}

	return transaction.Commit(context)
}

/*
GetByID retrieves a single film with its rating, genres, and like set.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Film: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM films f
		LEFT JOIN mpa m ON f.mpa_id = m.mpa_id
		WHERE f.film_id = $1
	`

	record, err := scanFilm(repository.db.QueryRow(context, query, id))
	if err != nil {
		if wrapped := dberr.Wrap(err, "get_film_by_id"); !apperr.IsNotFound(wrapped) {
			return nil, wrapped
		}
		return nil, apperr.NotFound("Film")
	}

	if err := repository.attachDetails(context, []*Film{record}); err != nil {
		return nil, err
	}

	return record, nil
}

/*
List retrieves all films with their ratings, genres, and like sets.

Description: One query per concern — films, genre links, likes — joined
in memory to avoid an N+1 pattern.

Parameters:
  - context: context.Context

Returns:
  - []*Film: All films ordered by identifier
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM films f
		LEFT JOIN mpa m ON f.mpa_id = m.mpa_id
		ORDER BY f.film_id ASC
	`

	films, err := repository.queryFilms(context, query)
	if err != nil {
		return nil, err
	}

	if err := repository.attachDetails(context, films); err != nil {
		return nil, err
	}

	return films, nil
}

// # Engagement Implementation

/*
PutLike records a like and bumps the derived rate.

Description: Executes within a transaction to guarantee atomicity.
1. Inserts the film_like row; a duplicate is a conflict.
2. Increments films.rate.
Rolls back completely if any stage fails to prevent counter drift.

Parameters:
  - context: context.Context
  - filmID, userID: int

Returns:
  - error: apperr.NotFound for an unknown film, apperr.Conflict for a
    duplicate like
*/
func (repository *PostgresRepository) PutLike(context context.Context, filmID, userID int) error {
	if err := repository.checkFilm(context, filmID); err != nil {
		return err
	}

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_put_like_tx")
	}
	defer transaction.Rollback(context)

	const likeQuery = `INSERT INTO film_like (film_id, user_id) VALUES ($1, $2)`
	if _, err := transaction.Exec(context, likeQuery, filmID, userID); err != nil {
		wrapped := dberr.Wrap(err, "insert_like")
		if apperr.IsConflict(wrapped) {
			return apperr.Conflict("User has already liked this film")
		}
		return wrapped
	}

	const rateQuery = `UPDATE films SET rate = rate + 1 WHERE film_id = $1`
	if _, err := transaction.Exec(context, rateQuery, filmID); err != nil {
		return dberr.Wrap(err, "increment_film_rate")
	}

	return transaction.Commit(context)
}

/*
DeleteLike withdraws a like and decrements the derived rate.

Description: Only decrements when a row was actually removed, so repeated
or stale unlikes cannot drive the counter negative. A like that was never
put is reported distinctly from a missing film.

Parameters:
  - context: context.Context
  - filmID, userID: int

Returns:
  - error: apperr.NotFound ("Film" or "Like not found")
*/
func (repository *PostgresRepository) DeleteLike(context context.Context, filmID, userID int) error {
	if err := repository.checkFilm(context, filmID); err != nil {
		return err
	}

	// Transactional State Setup
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_like_tx")
	}
	defer transaction.Rollback(context)

	const deleteQuery = `DELETE FROM film_like WHERE film_id = $1 AND user_id = $2`
	result, err := transaction.Exec(context, deleteQuery, filmID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_like")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFoundMsg("Like not found")
	}

	const rateQuery = `UPDATE films SET rate = GREATEST(0, rate - 1) WHERE film_id = $1`
	if _, err := transaction.Exec(context, rateQuery, filmID); err != nil {
		return dberr.Wrap(err, "decrement_film_rate")
	}

	return transaction.Commit(context)
}

// # Ranking Implementation

/*
Popular retrieves the top films by like count.

Description: ORDER BY rate DESC with film_id ASC as the tiebreaker keeps
the ranking stable across calls and backends.

Parameters:
  - context: context.Context
  - count: int

Returns:
  - []*Film: Ranked films, at most count entries
  - error: Retrieval failures
*/
func (repository *PostgresRepository) Popular(context context.Context, count int) ([]*Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM films f
		LEFT JOIN mpa m ON f.mpa_id = m.mpa_id
		ORDER BY f.rate DESC, f.film_id ASC
		LIMIT $1
	`

	films, err := repository.queryFilms(context, query, count)
	if err != nil {
		return nil, err
	}

	if err := repository.attachDetails(context, films); err != nil {
		return nil, err
	}

	return films, nil
}

// # Internal Helpers

// checkFilm fails fast with a typed error before any transaction starts.
func (repository *PostgresRepository) checkFilm(context context.Context, filmID int) error {
	const query = `SELECT EXISTS (SELECT 1 FROM films WHERE film_id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, filmID).Scan(&exists); err != nil {
		return dberr.Wrap(err, "film_exists")
	}
	if !exists {
		return apperr.NotFound("Film")
	}

	return nil
}

// queryFilms runs a film-shaped SELECT and hydrates the result rows.
func (repository *PostgresRepository) queryFilms(context context.Context, query string, args ...any) ([]*Film, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_films")
	}
	defer rows.Close()

	films := make([]*Film, 0)
	for rows.Next() {
		record, err := scanFilm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, record)
	}

	return films, nil
}

// attachDetails loads genre links and like sets for the given films in
// two set-based queries.
func (repository *PostgresRepository) attachDetails(context context.Context, films []*Film) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]int, 0, len(films))
	lookup := make(map[int]*Film, len(films))
	for _, record := range films {
		ids = append(ids, record.ID)
		lookup[record.ID] = record
		record.Genres = make([]reference.Genre, 0)
	}

	const genreQuery = `
		SELECT fg.film_id, g.genre_id, g.name
		FROM film_genre fg
		JOIN genre g ON fg.genre_id = g.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id ASC, g.genre_id ASC
	`
	genreRows, err := repository.db.Query(context, genreQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_film_genres")
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var filmID int
		genre := reference.Genre{}
		if err := genreRows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return dberr.Wrap(err, "scan_film_genre")
		}
		if record, ok := lookup[filmID]; ok {
			record.Genres = append(record.Genres, genre)
		}
	}
	genreRows.Close()

	const likeQuery = `
		SELECT film_id, user_id
		FROM film_like
		WHERE film_id = ANY($1)
		ORDER BY film_id ASC, user_id ASC
	`
	likeRows, err := repository.db.Query(context, likeQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_film_likes")
	}
	defer likeRows.Close()

	for likeRows.Next() {
		var filmID, userID int
		if err := likeRows.Scan(&filmID, &userID); err != nil {
			return dberr.Wrap(err, "scan_film_like")
		}
		if record, ok := lookup[filmID]; ok {
			record.UserLikes = append(record.UserLikes, userID)
		}
	}

	return nil
}

// scanFilm hydrates one film row, folding the nullable MPA join columns
// into the optional rating entity.
func scanFilm(row interface{ Scan(dest ...any) error }) (*Film, error) {
	record := &Film{}
	var ratingID *int
	var ratingName *string

	err := row.Scan(
		&record.ID, &record.Name, &record.Description, &record.ReleaseDate,
		&record.Duration, &record.Rate, &ratingID, &ratingName,
	)
	if err != nil {
		return nil, err
	}

	if ratingID != nil && ratingName != nil {
		record.Mpa = &reference.Mpa{ID: *ratingID, Name: *ratingName}
	}

	return record, nil
}

// mpaID extracts the nullable rating foreign key from a film payload.
func mpaID(film *Film) any {
	if film.Mpa == nil {
		return nil
	}
	return film.Mpa.ID
}
