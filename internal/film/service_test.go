// Copyright (c) 2026 Filmorate. All rights reserved.

package film_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/filmorate/internal/film"
	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/reference"
	"github.com/filmorate/filmorate/internal/user"
	"github.com/filmorate/filmorate/pkg/date"
)

type fixture struct {
	films *film.Service
	users *user.Service
}

func newFixture() *fixture {
	users := user.NewService(user.NewMemoryRepository())
	catalog := reference.NewService(reference.NewMemoryRepository())
	films := film.NewService(film.NewMemoryRepository(), users, catalog, nil)

	return &fixture{films: films, users: users}
}

func validFilm(name string) *film.Film {
	return &film.Film{
		Name:        name,
		Description: "A test picture",
		ReleaseDate: date.New(1999, time.October, 1),
		Duration:    120,
	}
}

// addFilm persists a film through the service, failing the test on error.
func addFilm(t *testing.T, fx *fixture, name string) *film.Film {
	t.Helper()

	record := validFilm(name)
	require.NoError(t, fx.films.Add(context.Background(), record))
	return record
}

// registerUser creates an account for engagement scenarios.
func registerUser(t *testing.T, fx *fixture, login string) *user.User {
	t.Helper()

	account := &user.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: date.New(1990, time.March, 14),
	}
	require.NoError(t, fx.users.Create(context.Background(), account))
	return account
}

/*
TestAdd_AssignsIDAndHydratesReferences verifies identity assignment and
reference resolution.
*/
func TestAdd_AssignsIDAndHydratesReferences(t *testing.T) {
	fx := newFixture()

	record := validFilm("Heat")
	record.ID = 99
	record.Rate = 42
	record.Mpa = &reference.Mpa{ID: 4}
	record.Genres = []reference.Genre{{ID: 2}, {ID: 6}, {ID: 2}}

	require.NoError(t, fx.films.Add(context.Background(), record))

	assert.Equal(t, 1, record.ID, "client-supplied id is ignored")
	assert.Equal(t, 0, record.Rate, "rate starts at zero")
	assert.Equal(t, "R", record.Mpa.Name, "rating hydrated from the catalog")

	require.Len(t, record.Genres, 2, "duplicate genres collapse")
	assert.Equal(t, "Драма", record.Genres[0].Name)
	assert.Equal(t, "Боевик", record.Genres[1].Name)
}

/*
TestAdd_Validation covers the catalog payload rules.
*/
func TestAdd_Validation(t *testing.T) {
	fx := newFixture()

	cases := []struct {
		name   string
		mutate func(*film.Film)
	}{
		{"missing_name", func(f *film.Film) { f.Name = "" }},
		{"oversized_description", func(f *film.Film) { f.Description = strings.Repeat("x", 201) }},
		{"release_before_first_screening", func(f *film.Film) { f.ReleaseDate = date.New(1895, time.December, 27) }},
		{"zero_duration", func(f *film.Film) { f.Duration = 0 }},
		{"negative_duration", func(f *film.Film) { f.Duration = -90 }},
		{"unknown_mpa", func(f *film.Film) { f.Mpa = &reference.Mpa{ID: 42} }},
		{"unknown_genre", func(f *film.Film) { f.Genres = []reference.Genre{{ID: 42}} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := validFilm("Broken")
			tc.mutate(record)

			err := fx.films.Add(context.Background(), record)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestAdd_BoundaryReleaseDate verifies the exact lower bound is accepted.
*/
func TestAdd_BoundaryReleaseDate(t *testing.T) {
	fx := newFixture()

	record := validFilm("First Screening")
	record.ReleaseDate = date.New(1895, time.December, 28)
	assert.NoError(t, fx.films.Add(context.Background(), record))

	long := validFilm("Exactly 200")
	long.Description = strings.Repeat("y", 200)
	assert.NoError(t, fx.films.Add(context.Background(), long))
}

/*
TestUpdate covers field replacement, like preservation, and the
missing-id contract.
*/
func TestUpdate(t *testing.T) {
	fx := newFixture()
	record := addFilm(t, fx, "Original")
	liker := registerUser(t, fx, "alice")
	require.NoError(t, fx.films.PutLike(context.Background(), record.ID, liker.ID))

	t.Run("preserves_likes_and_rate", func(t *testing.T) {
		changed := validFilm("Renamed")
		changed.ID = record.ID
		require.NoError(t, fx.films.Update(context.Background(), changed))

		got, err := fx.films.Get(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 1, got.Rate)
		assert.Equal(t, []int{liker.ID}, got.UserLikes)
	})

	t.Run("unknown_id", func(t *testing.T) {
		ghost := validFilm("Ghost")
		ghost.ID = 404
		err := fx.films.Update(context.Background(), ghost)
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestPutLike covers the like round trip and its rejection paths.
*/
func TestPutLike(t *testing.T) {
	fx := newFixture()
	record := addFilm(t, fx, "Likeable")
	alice := registerUser(t, fx, "alice")
	bob := registerUser(t, fx, "bob")

	t.Run("increments_rate", func(t *testing.T) {
		require.NoError(t, fx.films.PutLike(context.Background(), record.ID, alice.ID))
		require.NoError(t, fx.films.PutLike(context.Background(), record.ID, bob.ID))

		got, err := fx.films.Get(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Rate)
		assert.True(t, got.LikedBy(alice.ID))
	})

	t.Run("duplicate_like_leaves_state_unchanged", func(t *testing.T) {
		err := fx.films.PutLike(context.Background(), record.ID, alice.ID)
		assert.True(t, apperr.IsConflict(err))

		got, err := fx.films.Get(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Rate)
	})

	t.Run("negative_id", func(t *testing.T) {
		err := fx.films.PutLike(context.Background(), -1, alice.ID)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("missing_user", func(t *testing.T) {
		err := fx.films.PutLike(context.Background(), record.ID, 404)
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("missing_film", func(t *testing.T) {
		err := fx.films.PutLike(context.Background(), 404, alice.ID)
		require.Error(t, err)
		assert.Equal(t, "Film not found", err.Error())
	})
}

/*
TestDeleteLike verifies withdrawal and the distinct never-liked error.
*/
func TestDeleteLike(t *testing.T) {
	fx := newFixture()
	record := addFilm(t, fx, "Likeable")
	alice := registerUser(t, fx, "alice")
	bob := registerUser(t, fx, "bob")
	require.NoError(t, fx.films.PutLike(context.Background(), record.ID, alice.ID))

	t.Run("decrements_rate", func(t *testing.T) {
		require.NoError(t, fx.films.DeleteLike(context.Background(), record.ID, alice.ID))

		got, err := fx.films.Get(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Rate)
		assert.False(t, got.LikedBy(alice.ID))
	})

	t.Run("never_liked", func(t *testing.T) {
		err := fx.films.DeleteLike(context.Background(), record.ID, bob.ID)
		require.Error(t, err)
		assert.Equal(t, "Like not found", err.Error())
	})

	t.Run("missing_film", func(t *testing.T) {
		err := fx.films.DeleteLike(context.Background(), 404, alice.ID)
		require.Error(t, err)
		assert.Equal(t, "Film not found", err.Error())
	})
}

/*
TestPopular verifies rate-descending order, stable ties, truncation, and
the negative-count rejection.
*/
func TestPopular(t *testing.T) {
	fx := newFixture()

	first := addFilm(t, fx, "First")
	second := addFilm(t, fx, "Second")
	third := addFilm(t, fx, "Third")

	alice := registerUser(t, fx, "alice")
	bob := registerUser(t, fx, "bob")

	// third gets two likes, first gets one, second gets none.
	require.NoError(t, fx.films.PutLike(context.Background(), third.ID, alice.ID))
	require.NoError(t, fx.films.PutLike(context.Background(), third.ID, bob.ID))
	require.NoError(t, fx.films.PutLike(context.Background(), first.ID, alice.ID))

	t.Run("ordering", func(t *testing.T) {
		ranked, err := fx.films.Popular(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, ranked, 3)

		assert.Equal(t, third.ID, ranked[0].ID)
		assert.Equal(t, first.ID, ranked[1].ID)
		assert.Equal(t, second.ID, ranked[2].ID)
	})

	t.Run("truncation_is_a_prefix", func(t *testing.T) {
		top2, err := fx.films.Popular(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, top2, 2)
		assert.Equal(t, third.ID, top2[0].ID)
		assert.Equal(t, first.ID, top2[1].ID)
	})

	t.Run("ties_resolve_by_id", func(t *testing.T) {
		// second and a fresh film both have zero likes; lower id ranks first.
		fourth := addFilm(t, fx, "Fourth")

		ranked, err := fx.films.Popular(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, ranked, 4)
		assert.Equal(t, second.ID, ranked[2].ID)
		assert.Equal(t, fourth.ID, ranked[3].ID)
	})

	t.Run("zero_count_defaults", func(t *testing.T) {
		ranked, err := fx.films.Popular(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, ranked, 4)
	})

	t.Run("negative_count", func(t *testing.T) {
		_, err := fx.films.Popular(context.Background(), -1)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}
