// Copyright (c) 2026 Filmorate. All rights reserved.

package user

import (
	"context"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/platform/memstore"
	"github.com/filmorate/filmorate/pkg/slice"
)

// MemoryRepository implements [Repository] on the in-process store.
//
// Friendship edges live inside the user records themselves, so symmetric
// writes go through the store's pair primitive: both friend sets change
// inside one critical section, or neither does.
type MemoryRepository struct {
	users *memstore.Store[User]
}

// NewMemoryRepository returns an empty in-process implementation.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: memstore.New("User",
			func(u User) int { return u.ID },
			func(u User, id int) User { u.ID = id; return u },
		),
	}
}

func (repository *MemoryRepository) Create(_ context.Context, user *User) error {
	*user = repository.users.Add(*user)
	return nil
}

// Update replaces the account fields while carrying the friend set over,
// so a profile update can never sever existing friendships.
func (repository *MemoryRepository) Update(_ context.Context, user *User) error {
	updated, err := repository.users.Mutate(user.ID, func(existing User) (User, error) {
		next := *user
		next.Friends = existing.Friends
		return next, nil
	})
	if err != nil {
		return err
	}

	*user = updated
	return nil
}

func (repository *MemoryRepository) GetByID(_ context.Context, id int) (*User, error) {
	record, err := repository.users.Get(id)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (repository *MemoryRepository) List(_ context.Context) ([]*User, error) {
	all := repository.users.GetAll()

	out := make([]*User, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}

	return out, nil
}

func (repository *MemoryRepository) Exists(_ context.Context, id int) (bool, error) {
	return repository.users.Has(id), nil
}

func (repository *MemoryRepository) AddFriend(_ context.Context, userID, friendID int) error {
	if err := repository.checkPair(userID, friendID); err != nil {
		return err
	}

	return repository.users.UpdatePair(userID, friendID, func(a, b User) (User, User, error) {
		if a.HasFriend(friendID) {
			return a, b, apperr.Conflict("Users are already friends")
		}

		a.Friends = append(append([]int(nil), a.Friends...), friendID)
		b.Friends = append(append([]int(nil), b.Friends...), userID)
		return a, b, nil
	})
}

func (repository *MemoryRepository) DeleteFriend(_ context.Context, userID, friendID int) error {
	if err := repository.checkPair(userID, friendID); err != nil {
		return err
	}

	// A missing edge is not an error: the delete is a no-op.
	return repository.users.UpdatePair(userID, friendID, func(a, b User) (User, User, error) {
		a.Friends = slice.Filter(a.Friends, func(id int) bool { return id != friendID })
		b.Friends = slice.Filter(b.Friends, func(id int) bool { return id != userID })
		return a, b, nil
	})
}

func (repository *MemoryRepository) ListFriends(_ context.Context, userID int) ([]*User, error) {
	record, err := repository.users.Get(userID)
	if err != nil {
		return nil, err
	}

	return repository.collect(record.Friends)
}

func (repository *MemoryRepository) CommonFriends(_ context.Context, userID, otherID int) ([]*User, error) {
	first, err := repository.users.Get(userID)
	if err != nil {
		return nil, apperr.NotFound("User")
	}

	second, err := repository.users.Get(otherID)
	if err != nil {
		return nil, apperr.NotFound("Friend")
	}

	return repository.collect(slice.Intersect(first.Friends, second.Friends))
}

// checkPair resolves both sides up front so errors can name the one missing.
func (repository *MemoryRepository) checkPair(userID, friendID int) error {
	if !repository.users.Has(userID) {
		return apperr.NotFound("User")
	}
	if !repository.users.Has(friendID) {
		return apperr.NotFound("Friend")
	}
	return nil
}

// collect resolves a list of ids into user records, skipping none: the
// symmetric invariant guarantees every referenced id exists.
func (repository *MemoryRepository) collect(ids []int) ([]*User, error) {
	out := make([]*User, 0, len(ids))
	for _, id := range ids {
		record, err := repository.users.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, &record)
	}

	return out, nil
}
