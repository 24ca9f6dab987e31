// Copyright (c) 2026 Filmorate. All rights reserved.

package film

import "context"

// # Film Data Access

// Repository defines the data access contract for the film catalog,
// likes, and popularity ranking.
type Repository interface {

	// ## Catalog Data Access

	/*
		Create persists a new film and assigns its identifier.

		Parameters:
		  - context: context.Context
		  - film: *Film (ID is populated on success)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, film *Film) error

	/*
		Update replaces the catalog fields of an existing film.
		The like set and derived rate are preserved.

		Parameters:
		  - context: context.Context
		  - film: *Film

		Returns:
		  - error: apperr.NotFound if the id is unknown
	*/
	Update(context context.Context, film *Film) error

	/*
		GetByID retrieves a single film with its rating, genres, and likes.

		Parameters:
		  - context: context.Context
		  - id: int identifier

		Returns:
		  - *Film: Hydrated catalog entity
		  - error: apperr.NotFound if missing
	*/
	GetByID(context context.Context, id int) (*Film, error)

	/*
		List retrieves every film ordered by identifier.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Film: All films
		  - error: Retrieval failures
	*/
	List(context context.Context) ([]*Film, error)

	// ## Engagement Data Access

	/*
		PutLike records a like from a user on a film.

		Description: The like set and the derived rate change together,
		atomically. A repeated like from the same user is a conflict and
		leaves the film unchanged.

		Parameters:
		  - context: context.Context
		  - filmID, userID: int

		Returns:
		  - error: apperr.NotFound for an unknown film,
		    apperr.Conflict for a duplicate like
	*/
	PutLike(context context.Context, filmID, userID int) error

	/*
		DeleteLike withdraws a like from a user on a film.

		Parameters:
		  - context: context.Context
		  - filmID, userID: int

		Returns:
		  - error: apperr.NotFound for an unknown film, or a distinct
		    "Like not found" for a like that was never put
	*/
	DeleteLike(context context.Context, filmID, userID int) error

	// ## Ranking Data Access

	/*
		Popular retrieves the top films by like count.

		Description: Ordered by rate descending; ties resolve by
		identifier ascending, so the ranking is stable across calls.

		Parameters:
		  - context: context.Context
		  - count: int (maximum number of films)

		Returns:
		  - []*Film: Ranked films
		  - error: Retrieval failures
	*/
	Popular(context context.Context, count int) ([]*Film, error)
}
