/*
Package film implements the catalog and engagement domain of Filmorate.

It handles the lifecycle of film records, the idempotency-checked like
engagement between users and films, and popularity ranking derived from
the like counts.

# Core Responsibility

  - Catalog: Manages [Film] records with their MPA rating and genres.
  - Engagement: Tracks which users like which films. A user can hold at
    most one like per film.
  - Ranking: Orders films by like count for the popularity feed.

# Invariants

The Rate field always equals the size of the like set. The two are only
ever changed together, through [Film.AddLike] and [Film.RemoveLike] in
the in-process backend, or inside one transaction in the relational one.
*/
package film

import (
	"time"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/reference"
	"github.com/filmorate/filmorate/pkg/date"
	"github.com/filmorate/filmorate/pkg/slice"
)

// EarliestReleaseDate is the lower bound for film release dates: the day
// of the first public film screening.
var EarliestReleaseDate = date.New(1895, time.December, 28)

// MaxDescriptionLen bounds the description field.
const MaxDescriptionLen = 200

// Film represents a catalog entry.
//
// UserLikes holds the ids of users who like the film; Rate mirrors its
// length at all times.
type Film struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ReleaseDate date.Date         `json:"releaseDate"`
	Duration    int               `json:"duration"`
	Mpa         *reference.Mpa    `json:"mpa,omitempty"`
	Genres      []reference.Genre `json:"genres"`
	Rate        int               `json:"rate"`
	UserLikes   []int             `json:"-"`
}

// AddLike records a like from userID, keeping Rate in step with the set.
// A second like from the same user is a conflict, not an increment.
func (f *Film) AddLike(userID int) error {
	if slice.Contains(f.UserLikes, userID) {
		return apperr.Conflict("User has already liked this film")
	}

	f.UserLikes = append(append([]int(nil), f.UserLikes...), userID)
	f.Rate = len(f.UserLikes)
	return nil
}

// RemoveLike withdraws a like from userID. Removing a like that was
// never put is an error distinct from an unknown film or user.
func (f *Film) RemoveLike(userID int) error {
	if !slice.Contains(f.UserLikes, userID) {
		return apperr.NotFoundMsg("Like not found")
	}

	f.UserLikes = slice.Filter(f.UserLikes, func(id int) bool { return id != userID })
	f.Rate = len(f.UserLikes)
	return nil
}

// LikedBy reports whether userID currently likes the film.
func (f *Film) LikedBy(userID int) bool {
	return slice.Contains(f.UserLikes, userID)
}

// # Field Identifiers

// Global field names for validation in the film domain.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldReleaseDate = "releaseDate"
	FieldDuration    = "duration"
	FieldMpa         = "mpa"
	FieldGenres      = "genres"
	FieldUserID      = "userId"
	FieldCount       = "count"
)
