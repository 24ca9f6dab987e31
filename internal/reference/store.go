// Copyright (c) 2026 Filmorate. All rights reserved.

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for the reference catalogs.
type Repository interface {

	// ## Rating Data Access

	/*
		ListMpa retrieves all MPA ratings ordered by identifier.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Mpa: Collection of ratings
		  - error: Database retrieval failures
	*/
	ListMpa(context context.Context) ([]*Mpa, error)

	/*
		GetMpa fetches a single rating by its primary key.

		Parameters:
		  - context: context.Context
		  - id: int identifier

		Returns:
		  - *Mpa: The hydrated rating entity
		  - error: apperr.NotFound if missing
	*/
	GetMpa(context context.Context, id int) (*Mpa, error)

	// ## Genre Data Access

	/*
		ListGenres retrieves all genres ordered by identifier.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Genre: Collection of genres
		  - error: Database retrieval failures
	*/
	ListGenres(context context.Context) ([]*Genre, error)

	/*
		GetGenre fetches a single genre by its primary key.

		Parameters:
		  - context: context.Context
		  - id: int identifier

		Returns:
		  - *Genre: The hydrated genre entity
		  - error: apperr.NotFound if missing
	*/
	GetGenre(context context.Context, id int) (*Genre, error)
}
