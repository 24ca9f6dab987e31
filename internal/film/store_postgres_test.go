// Copyright (c) 2026 Filmorate. All rights reserved.

package film_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/filmorate/internal/film"
	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/reference"
	"github.com/filmorate/filmorate/pkg/date"
)

var filmRowColumns = []string{
	"film_id", "name", "description", "release_date", "duration", "rate", "mpa_id", "mpa_name",
}

func newFilmMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *film.PostgresRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, film.NewPostgresRepository(mock)
}

// expectFilmExists arms the film existence probe.
func expectFilmExists(mock pgxmock.PgxPoolIface, id int, exists bool) {
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))
}

// expectDetailQueries arms the genre-link and like-set hydration queries.
func expectDetailQueries(mock pgxmock.PgxPoolIface) {
	mock.ExpectQuery("FROM film_genre fg").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"film_id", "genre_id", "name"}))

	mock.ExpectQuery("FROM film_like").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"film_id", "user_id"}))
}

/*
TestFilmPostgres_Create verifies the transactional film plus genre-link insert.
*/
func TestFilmPostgres_Create(t *testing.T) {
	mock, repo := newFilmMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO films").
		WithArgs("Heat", "Crime drama", pgxmock.AnyArg(), 170, 4).
		WillReturnRows(pgxmock.NewRows([]string{"film_id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO film_genre").
		WithArgs(5, 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	record := &film.Film{
		Name:        "Heat",
		Description: "Crime drama",
		ReleaseDate: date.New(1995, time.December, 15),
		Duration:    170,
		Mpa:         &reference.Mpa{ID: 4, Name: "R"},
		Genres:      []reference.Genre{{ID: 2, Name: "Драма"}},
	}

	require.NoError(t, repo.Create(context.Background(), record))
	assert.Equal(t, 5, record.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFilmPostgres_Update covers the rewrite of genre links and the
zero-rows NotFound contract.
*/
func TestFilmPostgres_Update(t *testing.T) {
	t.Run("rewrites_genre_links", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE films").
			WithArgs(5, "Heat", "Crime drama", pgxmock.AnyArg(), 170, nil).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("DELETE FROM film_genre").
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO film_genre").
			WithArgs(5, 6).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		record := &film.Film{
			ID:          5,
			Name:        "Heat",
			Description: "Crime drama",
			ReleaseDate: date.New(1995, time.December, 15),
			Duration:    170,
			Genres:      []reference.Genre{{ID: 6, Name: "Боевик"}},
		}

		require.NoError(t, repo.Update(context.Background(), record))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_id", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE films").
			WithArgs(404, "Ghost", "", pgxmock.AnyArg(), 90, nil).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		record := &film.Film{ID: 404, Name: "Ghost", Duration: 90, ReleaseDate: date.New(2000, time.January, 1)}
		err := repo.Update(context.Background(), record)
		assert.True(t, apperr.IsNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestFilmPostgres_GetByID verifies hydration with a null MPA join.
*/
func TestFilmPostgres_GetByID(t *testing.T) {
	mock, repo := newFilmMockRepo(t)

	release := time.Date(1995, time.December, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM films f").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows(filmRowColumns).
			AddRow(5, "Heat", "Crime drama", release, 170, 2, nil, nil))
	expectDetailQueries(mock)

	record, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Heat", record.Name)
	assert.Equal(t, 2, record.Rate)
	assert.Nil(t, record.Mpa, "null join columns map to no rating")
	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFilmPostgres_PutLike covers the transactional like insert with its
derived-rate increment, the duplicate conflict, and the missing film.
*/
func TestFilmPostgres_PutLike(t *testing.T) {
	t.Run("inserts_and_increments", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		expectFilmExists(mock, 5, true)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO film_like").
			WithArgs(5, 7).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE films SET rate = rate").
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.PutLike(context.Background(), 5, 7))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_like", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		expectFilmExists(mock, 5, true)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO film_like").
			WithArgs(5, 7).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.PutLike(context.Background(), 5, 7)
		require.Error(t, err)
		assert.True(t, apperr.IsConflict(err))
		assert.Equal(t, "User has already liked this film", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_film", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		expectFilmExists(mock, 404, false)

		err := repo.PutLike(context.Background(), 404, 7)
		require.Error(t, err)
		assert.Equal(t, "Film not found", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestFilmPostgres_DeleteLike covers withdrawal with its guarded decrement
and the distinct never-liked error.
*/
func TestFilmPostgres_DeleteLike(t *testing.T) {
	t.Run("deletes_and_decrements", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		expectFilmExists(mock, 5, true)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM film_like").
			WithArgs(5, 7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("UPDATE films SET rate = GREATEST").
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteLike(context.Background(), 5, 7))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("never_liked", func(t *testing.T) {
		mock, repo := newFilmMockRepo(t)

		expectFilmExists(mock, 5, true)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM film_like").
			WithArgs(5, 7).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		err := repo.DeleteLike(context.Background(), 5, 7)
		require.Error(t, err)
		assert.Equal(t, "Like not found", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestFilmPostgres_Popular verifies the ranked query shape and hydration.
*/
func TestFilmPostgres_Popular(t *testing.T) {
	mock, repo := newFilmMockRepo(t)

	release := time.Date(1999, time.October, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("ORDER BY f.rate DESC").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(filmRowColumns).
			AddRow(3, "Third", "", release, 100, 2, nil, nil).
			AddRow(1, "First", "", release, 100, 1, nil, nil))
	expectDetailQueries(mock)

	ranked, err := repo.Popular(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 3, ranked[0].ID)
	assert.Equal(t, 1, ranked[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
