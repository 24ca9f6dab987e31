// Copyright (c) 2026 Filmorate. All rights reserved.

package reference

import "context"

// # Service Layer

// Service orchestrates access to the reference catalogs.
//
// The catalogs are immutable at runtime, so the service is a thin
// pass-through that exists to keep the handler layer symmetric with the
// other domains.
type Service struct {
	repo Repository
}

// NewService constructs a new reference [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Rating Methods

/*
ListMpa returns the complete MPA rating scale.

Parameters:
  - context: context.Context

Returns:
  - []*Mpa: Ratings ordered by identifier
  - error: Retrieval failures
*/
func (service *Service) ListMpa(context context.Context) ([]*Mpa, error) {
	return service.repo.ListMpa(context)
}

/*
GetMpa retrieves a specific rating by its identifier.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Mpa: Hydrated rating entity
  - error: apperr.NotFound or database errors
*/
func (service *Service) GetMpa(context context.Context, id int) (*Mpa, error) {
	return service.repo.GetMpa(context, id)
}

// # Genre Methods

/*
ListGenres returns all genres films can be classified with.

Parameters:
  - context: context.Context

Returns:
  - []*Genre: Genres ordered by identifier
  - error: Retrieval failures
*/
func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

/*
GetGenre retrieves a specific genre by its identifier.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Genre: Hydrated genre entity
  - error: apperr.NotFound or database errors
*/
func (service *Service) GetGenre(context context.Context, id int) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}
