// Copyright (c) 2026 Filmorate. All rights reserved.

package user

import (
	"context"

	"github.com/filmorate/filmorate/internal/platform/validate"
)

// # Service Layer

// Service orchestrates business rules for accounts and friendship.
//
// It validates payloads before they reach storage and enforces the
// friendship invariants (symmetry, no duplicate edges, no self-edges).
type Service struct {
	repo Repository
}

// NewService constructs a new user [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Account Methods

/*
Create validates and persists a new account.

Description: A blank display name defaults to the login before storage.
The identifier is assigned by the repository; any client-supplied id is
ignored.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: Validation failures (apperr.ValidationError) or storage errors
*/
func (service *Service) Create(context context.Context, user *User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	user.ID = 0
	user.Normalize()

	return service.repo.Create(context, user)
}

/*
Update validates and applies changes to an existing account.

Parameters:
  - context: context.Context
  - user: *User (ID selects the target record)

Returns:
  - error: Validation failures, apperr.NotFound, or storage errors
*/
func (service *Service) Update(context context.Context, user *User) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, user.ID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := validateUser(user); err != nil {
		return err
	}

	user.Normalize()

	return service.repo.Update(context, user)
}

/*
Get retrieves a single account by its identifier.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *User: Hydrated account
  - error: apperr.NotFound or storage errors
*/
func (service *Service) Get(context context.Context, id int) (*User, error) {
	return service.repo.GetByID(context, id)
}

/*
List returns every registered account ordered by identifier.

Parameters:
  - context: context.Context

Returns:
  - []*User: All accounts
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context) ([]*User, error) {
	return service.repo.List(context)
}

// Exists reports whether an account with the given id is registered.
func (service *Service) Exists(context context.Context, id int) (bool, error) {
	return service.repo.Exists(context, id)
}

// # Friendship Methods

/*
AddFriend establishes a friendship between two users.

Description: The edge is symmetric — after this call each user appears in
the other's friend list. Befriending the same user twice is a conflict,
and a user cannot befriend themselves.

Parameters:
  - context: context.Context
  - id, friendID: int

Returns:
  - error: apperr.ValidationError for invalid ids, apperr.NotFound naming
    the missing side, apperr.Conflict if already friends
*/
func (service *Service) AddFriend(context context.Context, id, friendID int) error {
	if err := validateFriendPair(id, friendID); err != nil {
		return err
	}

	return service.repo.AddFriend(context, id, friendID)
}

/*
DeleteFriend dissolves a friendship between two users.

Description: Symmetric removal. Deleting a friendship that was never
established succeeds without effect, but both users must exist.

Parameters:
  - context: context.Context
  - id, friendID: int

Returns:
  - error: apperr.ValidationError for invalid ids, apperr.NotFound naming
    the missing side
*/
func (service *Service) DeleteFriend(context context.Context, id, friendID int) error {
	if err := validateFriendPair(id, friendID); err != nil {
		return err
	}

	return service.repo.DeleteFriend(context, id, friendID)
}

/*
ListFriends returns the friends of a user.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - []*User: Befriended accounts
  - error: apperr.NotFound if the user is missing
*/
func (service *Service) ListFriends(context context.Context, id int) ([]*User, error) {
	return service.repo.ListFriends(context, id)
}

/*
CommonFriends returns the users befriended by both given users.

Parameters:
  - context: context.Context
  - id, otherID: int

Returns:
  - []*User: Mutual friends (possibly empty)
  - error: apperr.NotFound if either user is missing
*/
func (service *Service) CommonFriends(context context.Context, id, otherID int) ([]*User, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldID, id).Positive(FieldFriendID, otherID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.CommonFriends(context, id, otherID)
}

// # Validation

// validateUser applies the account payload rules shared by create and update.
func validateUser(user *User) error {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, user.Email).Email(FieldEmail, user.Email)
	validator.Required(FieldLogin, user.Login).NoSpaces(FieldLogin, user.Login)
	validator.PastOrPresent(FieldBirthday, user.Birthday)

	return validator.Err()
}

// validateFriendPair rejects non-positive ids and self-edges.
func validateFriendPair(id, friendID int) error {
	validator := &validate.Validator{}

	validator.Positive(FieldID, id).Positive(FieldFriendID, friendID)
	validator.Custom(FieldFriendID, id == friendID && id > 0, "Must differ from the user id")

	return validator.Err()
}
