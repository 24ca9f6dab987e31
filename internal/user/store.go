// Copyright (c) 2026 Filmorate. All rights reserved.

package user

import "context"

// # User Data Access

// Repository defines the data access contract for accounts and friendship.
type Repository interface {

	// ## Account Data Access

	/*
		Create persists a new account and assigns its identifier.

		Parameters:
		  - context: context.Context
		  - user: *User (ID is populated on success)

		Returns:
		  - error: apperr.Conflict on duplicate email, storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		Update replaces the mutable fields of an existing account.
		The friend set is preserved across updates.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.NotFound if the id is unknown
	*/
	Update(context context.Context, user *User) error

	/*
		GetByID retrieves a single account with its friend set.

		Parameters:
		  - context: context.Context
		  - id: int identifier

		Returns:
		  - *User: Hydrated account entity
		  - error: apperr.NotFound if missing
	*/
	GetByID(context context.Context, id int) (*User, error)

	/*
		List retrieves every account ordered by identifier.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*User: All accounts
		  - error: Retrieval failures
	*/
	List(context context.Context) ([]*User, error)

	// Exists reports whether an account with the given id is stored.
	Exists(context context.Context, id int) (bool, error)

	// ## Friendship Data Access

	/*
		AddFriend records a friendship edge between two users.

		Description: The edge is written symmetrically — both directions
		are persisted, or neither. An existing edge is a conflict.

		Parameters:
		  - context: context.Context
		  - userID, friendID: int

		Returns:
		  - error: apperr.NotFound naming the missing side,
		    apperr.Conflict if already friends
	*/
	AddFriend(context context.Context, userID, friendID int) error

	/*
		DeleteFriend removes a friendship edge between two users.

		Description: Removing an edge that does not exist succeeds
		silently. Both users must exist.

		Parameters:
		  - context: context.Context
		  - userID, friendID: int

		Returns:
		  - error: apperr.NotFound naming the missing side
	*/
	DeleteFriend(context context.Context, userID, friendID int) error

	/*
		ListFriends retrieves the friends of a user.

		Parameters:
		  - context: context.Context
		  - userID: int

		Returns:
		  - []*User: Befriended accounts
		  - error: apperr.NotFound if the user is missing
	*/
	ListFriends(context context.Context, userID int) ([]*User, error)

	/*
		CommonFriends retrieves the accounts befriended by both users.

		Parameters:
		  - context: context.Context
		  - userID, otherID: int

		Returns:
		  - []*User: Mutual friends
		  - error: apperr.NotFound if either user is missing
	*/
	CommonFriends(context context.Context, userID, otherID int) ([]*User, error)
}
