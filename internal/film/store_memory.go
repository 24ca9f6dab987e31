// Copyright (c) 2026 Filmorate. All rights reserved.

package film

import (
	"context"
	"sort"

	"github.com/filmorate/filmorate/internal/platform/memstore"
)

// MemoryRepository implements [Repository] on the in-process store.
//
// Like writes go through the store's mutate primitive so the like set and
// the derived rate change inside one critical section.
type MemoryRepository struct {
	films *memstore.Store[Film]
}

// NewMemoryRepository returns an empty in-process implementation.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		films: memstore.New("Film",
			func(f Film) int { return f.ID },
			func(f Film, id int) Film { f.ID = id; return f },
		),
	}
}

func (repository *MemoryRepository) Create(_ context.Context, film *Film) error {
	*film = repository.films.Add(*film)
	return nil
}

// Update replaces the catalog fields while carrying the like set and its
// derived rate over, so an edit can never reset a film's popularity.
func (repository *MemoryRepository) Update(_ context.Context, film *Film) error {
	updated, err := repository.films.Mutate(film.ID, func(existing Film) (Film, error) {
		next := *film
		next.UserLikes = existing.UserLikes
		next.Rate = existing.Rate
		return next, nil
	})
	if err != nil {
		return err
	}

	*film = updated
	return nil
}

func (repository *MemoryRepository) GetByID(_ context.Context, id int) (*Film, error) {
	record, err := repository.films.Get(id)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Film, error) {
	all := repository.films.GetAll()

	out := make([]*Film, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}

	return out, nil
}

func (repository *MemoryRepository) PutLike(_ context.Context, filmID, userID int) error {
	_, err := repository.films.Mutate(filmID, func(record Film) (Film, error) {
		if err := record.AddLike(userID); err != nil {
			return record, err
		}
		return record, nil
	})

	return err
}

func (repository *MemoryRepository) DeleteLike(_ context.Context, filmID, userID int) error {
	_, err := repository.films.Mutate(filmID, func(record Film) (Film, error) {
		if err := record.RemoveLike(userID); err != nil {
			return record, err
		}
		return record, nil
	})

	return err
}

// Popular ranks by rate descending. The stable sort over the
// insertion-ordered snapshot resolves ties by identifier, matching the
// relational backend's ORDER BY rate DESC, film_id ASC.
func (repository *MemoryRepository) Popular(_ context.Context, count int) ([]*Film, error) {
	all := repository.films.GetAll()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rate > all[j].Rate
	})

	if count < len(all) {
		all = all[:count]
	}

	out := make([]*Film, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}

	return out, nil
}
