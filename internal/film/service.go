// Copyright (c) 2026 Filmorate. All rights reserved.

package film

import (
	"context"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/platform/validate"
	"github.com/filmorate/filmorate/internal/reference"
)

// DefaultPopularCount is the ranking size served when no count is given.
const DefaultPopularCount = 10

// UserDirectory is the slice of the user domain the film service needs:
// existence checks for the accounts that put and withdraw likes.
type UserDirectory interface {
	Exists(context context.Context, id int) (bool, error)
}

// Catalog resolves MPA ratings and genres so film payloads can be
// validated and hydrated against the reference data.
type Catalog interface {
	GetMpa(context context.Context, id int) (*reference.Mpa, error)
	GetGenre(context context.Context, id int) (*reference.Genre, error)
}

// # Service Layer

// Service orchestrates business rules for the film catalog, likes, and
// popularity ranking.
//
// The ranking cache is optional: a nil cache disables caching without
// changing behavior.
type Service struct {
	repo    Repository
	users   UserDirectory
	catalog Catalog
	cache   *RankingCache
}

// NewService constructs a new film [Service].
func NewService(repo Repository, users UserDirectory, catalog Catalog, cache *RankingCache) *Service {
	return &Service{repo: repo, users: users, catalog: catalog, cache: cache}
}

// # Catalog Methods

/*
Add validates and persists a new film.

Description: The MPA rating and genres are resolved against the reference
catalogs — unknown ids are rejected, known ones are hydrated with their
names. Duplicate genre entries collapse to one. The identifier is
assigned by the repository.

Parameters:
  - context: context.Context
  - film: *Film

Returns:
  - error: Validation failures (apperr.ValidationError) or storage errors
*/
func (service *Service) Add(context context.Context, film *Film) error {
	if err := validateFilm(film); err != nil {
		return err
	}

	if err := service.hydrateReferences(context, film); err != nil {
		return err
	}

	film.ID = 0
	film.Rate = 0
	film.UserLikes = nil

	if err := service.repo.Create(context, film); err != nil {
		return err
	}

	service.invalidateRanking(context)
	return nil
}

/*
Update validates and applies changes to an existing film.

Description: Likes and the derived rate survive the update untouched;
only the catalog fields change.

Parameters:
  - context: context.Context
  - film: *Film (ID selects the target record)

Returns:
  - error: Validation failures, apperr.NotFound, or storage errors
*/
func (service *Service) Update(context context.Context, film *Film) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, film.ID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := validateFilm(film); err != nil {
		return err
	}

	if err := service.hydrateReferences(context, film); err != nil {
		return err
	}

	if err := service.repo.Update(context, film); err != nil {
		return err
	}

	service.invalidateRanking(context)
	return nil
}

/*
Get retrieves a single film by its identifier.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Film: Hydrated film
  - error: apperr.NotFound or storage errors
*/
func (service *Service) Get(context context.Context, id int) (*Film, error) {
	return service.repo.GetByID(context, id)
}

/*
List returns every film ordered by identifier.

Parameters:
  - context: context.Context

Returns:
  - []*Film: All films
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context) ([]*Film, error) {
	return service.repo.List(context)
}

// # Engagement Methods

/*
PutLike records a like from a user on a film.

Description: Both the film and the user must exist. A repeated like from
the same user is a conflict and leaves the rate unchanged.

Parameters:
  - context: context.Context
  - filmID, userID: int

Returns:
  - error: apperr.ValidationError for invalid ids, apperr.NotFound naming
    the missing entity, apperr.Conflict for a duplicate like
*/
func (service *Service) PutLike(context context.Context, filmID, userID int) error {
	if err := service.checkEngagement(context, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.PutLike(context, filmID, userID); err != nil {
		return err
	}

	service.invalidateRanking(context)
	return nil
}

/*
DeleteLike withdraws a like from a user on a film.

Description: Withdrawing a like that was never put fails with a distinct
"Like not found" error, so clients can tell a stale unlike apart from a
missing film or user.

Parameters:
  - context: context.Context
  - filmID, userID: int

Returns:
  - error: apperr.ValidationError for invalid ids, apperr.NotFound
*/
func (service *Service) DeleteLike(context context.Context, filmID, userID int) error {
	if err := service.checkEngagement(context, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.DeleteLike(context, filmID, userID); err != nil {
		return err
	}

	service.invalidateRanking(context)
	return nil
}

// # Ranking Methods

/*
Popular returns the top films ranked by like count.

Description: Films are ordered by rate descending with ties resolved by
identifier ascending. When a ranking cache is configured, results are
served from it until the next like or catalog change.

Parameters:
  - context: context.Context
  - count: int (zero falls back to [DefaultPopularCount])

Returns:
  - []*Film: Ranked films, at most count entries
  - error: apperr.ValidationError for a negative count, storage errors
*/
func (service *Service) Popular(context context.Context, count int) ([]*Film, error) {
	validator := &validate.Validator{}
	validator.NonNegative(FieldCount, count)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if count == 0 {
		count = DefaultPopularCount
	}

	if service.cache != nil {
		if films, ok := service.cache.Get(context, count); ok {
			return films, nil
		}
	}

	films, err := service.repo.Popular(context, count)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Set(context, count, films)
	}

	return films, nil
}

// # Internal Helpers

// checkEngagement validates the id pair and resolves the user, so a
// missing account is reported as such rather than as a like failure.
func (service *Service) checkEngagement(context context.Context, filmID, userID int) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, filmID).Positive(FieldUserID, userID)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.users.Exists(context, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User")
	}

	return nil
}

// hydrateReferences resolves the MPA rating and genres against the
// reference catalogs, rejecting unknown ids and filling in names.
func (service *Service) hydrateReferences(context context.Context, film *Film) error {
	if film.Mpa != nil {
		rating, err := service.catalog.GetMpa(context, film.Mpa.ID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return validate.RequiredError(FieldMpa, "Unknown MPA rating id")
			}
			return err
		}
		film.Mpa = rating
	}

	if len(film.Genres) == 0 {
		return nil
	}

	hydrated := make([]reference.Genre, 0, len(film.Genres))
	seen := make(map[int]struct{}, len(film.Genres))
	for _, entry := range film.Genres {
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}

		genre, err := service.catalog.GetGenre(context, entry.ID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return validate.RequiredError(FieldGenres, "Unknown genre id")
			}
			return err
		}
		hydrated = append(hydrated, *genre)
	}
	film.Genres = hydrated

	return nil
}

// invalidateRanking drops any cached popularity results. Failures are
// absorbed inside the cache, so writes never fail on a cache hiccup.
func (service *Service) invalidateRanking(context context.Context) {
	if service.cache != nil {
		service.cache.Invalidate(context)
	}
}

// # Validation

// validateFilm applies the catalog payload rules shared by add and update.
func validateFilm(film *Film) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, film.Name)
	validator.MaxLen(FieldDescription, film.Description, MaxDescriptionLen)
	validator.NotBefore(FieldReleaseDate, film.ReleaseDate, EarliestReleaseDate)
	validator.Positive(FieldDuration, film.Duration)

	return validator.Err()
}
