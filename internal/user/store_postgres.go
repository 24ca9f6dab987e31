// Copyright (c) 2026 Filmorate. All rights reserved.

package user

import (
	"context"
	"fmt"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/platform/database/schema"
	"github.com/filmorate/filmorate/internal/platform/dberr"
	"github.com/filmorate/filmorate/internal/platform/postgres"
)

// PostgresRepository implements [Repository] against the relational backend.
//
// Friendship edges are stored symmetrically in the friendship table: one
// row per direction, written inside a single transaction.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed user store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Account Implementation

/*
Create inserts a new account and scans back its generated identifier.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: Conflict on duplicate email, persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s;
	`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID,
	)

	err := repository.db.QueryRow(context, query,
		user.Email, user.Login, user.Name, user.Birthday,
	).Scan(&user.ID)

	return dberr.Wrap(err, "create_user")
}

/*
Update modifies the account fields of an existing user.

Description: The friendship table is untouched, so the friend set is
preserved across profile updates.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.NotFound for an unknown id, persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1;
	`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID,
	)

	result, err := repository.db.Exec(context, query,
		user.ID, user.Email, user.Login, user.Name, user.Birthday,
	)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
GetByID retrieves a single account together with its friend ids.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *User: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresRepository) GetByID(context context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table,
		schema.User.ID,
	)

	record := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&record.ID, &record.Email, &record.Login, &record.Name, &record.Birthday,
	)
	if err != nil {
		if wrapped := dberr.Wrap(err, "get_user_by_id"); !apperr.IsNotFound(wrapped) {
			return nil, wrapped
		}
		return nil, apperr.NotFound("User")
	}

	friends, err := repository.friendIDs(context, id)
	if err != nil {
		return nil, err
	}
	record.Friends = friends

	return record, nil
}

/*
List retrieves all accounts with their friend sets.

Description: Two queries, one for accounts and one for the full edge set,
joined in memory to avoid an N+1 pattern.

Parameters:
  - context: context.Context

Returns:
  - []*User: All accounts ordered by identifier
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table,
		schema.User.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	lookup := make(map[int]*User)
	for rows.Next() {
		record := &User{}
		if err := rows.Scan(&record.ID, &record.Email, &record.Login, &record.Name, &record.Birthday); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, record)
		lookup[record.ID] = record
	}
	rows.Close()

	edgeQuery := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Friendship.UserID, schema.Friendship.FriendID,
		schema.Friendship.Table,
		schema.Friendship.UserID,
	)

	edges, err := repository.db.Query(context, edgeQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_friendships")
	}
	defer edges.Close()

	for edges.Next() {
		var userID, friendID int
		if err := edges.Scan(&userID, &friendID); err != nil {
			return nil, dberr.Wrap(err, "scan_friendship")
		}
		if record, ok := lookup[userID]; ok {
			record.Friends = append(record.Friends, friendID)
		}
	}

	return users, nil
}

// Exists reports whether an account row is present for id.
func (repository *PostgresRepository) Exists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);`,
		schema.User.Table, schema.User.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}

	return exists, nil
}

// # Friendship Implementation

/*
AddFriend records a symmetric friendship edge.

Description: Executes within a transaction to guarantee atomicity.
1. Verifies both accounts exist, naming the missing side.
2. Inserts both edge directions.
Rolls back completely if any stage fails, so a half-written edge can
never be observed.

Parameters:
  - context: context.Context
  - userID, friendID: int

Returns:
  - error: apperr.NotFound, apperr.Conflict for an existing edge
*/
func (repository *PostgresRepository) AddFriend(context context.Context, userID, friendID int) error {
	if err := repository.checkPair(context, userID, friendID); err != nil {
		return err
	}

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_add_friend_tx")
	}
	defer transaction.Rollback(context)

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2), ($2, $1);
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	if _, err := transaction.Exec(context, insertQuery, userID, friendID); err != nil {
		wrapped := dberr.Wrap(err, "insert_friendship")
		if apperr.IsConflict(wrapped) {
			return apperr.Conflict("Users are already friends")
		}
		return wrapped
	}

	return transaction.Commit(context)
}

/*
DeleteFriend removes a symmetric friendship edge.

Description: Both directions go in a single DELETE, so the write is
atomic without an explicit transaction. A missing edge deletes zero rows
and succeeds.

Parameters:
  - context: context.Context
  - userID, friendID: int

Returns:
  - error: apperr.NotFound naming the missing account
*/
func (repository *PostgresRepository) DeleteFriend(context context.Context, userID, friendID int) error {
	if err := repository.checkPair(context, userID, friendID); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE (%s = $1 AND %s = $2) OR (%s = $2 AND %s = $1);
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	_, err := repository.db.Exec(context, query, userID, friendID)
	return dberr.Wrap(err, "delete_friendship")
}

/*
ListFriends retrieves the accounts befriended by a user.

Parameters:
  - context: context.Context
  - userID: int

Returns:
  - []*User: Friends ordered by identifier
  - error: apperr.NotFound if the user is missing
*/
func (repository *PostgresRepository) ListFriends(context context.Context, userID int) ([]*User, error) {
	exists, err := repository.Exists(context, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User")
	}

	query := fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, u.%s
		FROM %s u
		JOIN %s f ON u.%s = f.%s
		WHERE f.%s = $1
		ORDER BY u.%s ASC;
	`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table,
		schema.Friendship.Table, schema.User.ID, schema.Friendship.FriendID,
		schema.Friendship.UserID,
		schema.User.ID,
	)

	return repository.queryUsers(context, query, userID)
}

/*
CommonFriends retrieves accounts befriended by both users.

Description: A double join against the edge table resolves the
intersection in one round trip.

Parameters:
  - context: context.Context
  - userID, otherID: int

Returns:
  - []*User: Mutual friends ordered by identifier
  - error: apperr.NotFound naming the missing account
*/
func (repository *PostgresRepository) CommonFriends(context context.Context, userID, otherID int) ([]*User, error) {
	if err := repository.checkPair(context, userID, otherID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, u.%s
		FROM %s u
		JOIN %s f1 ON u.%s = f1.%s
		JOIN %s f2 ON u.%s = f2.%s
		WHERE f1.%s = $1 AND f2.%s = $2
		ORDER BY u.%s ASC;
	`,
		schema.User.ID, schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.Table,
		schema.Friendship.Table, schema.User.ID, schema.Friendship.FriendID,
		schema.Friendship.Table, schema.User.ID, schema.Friendship.FriendID,
		schema.Friendship.UserID, schema.Friendship.UserID,
		schema.User.ID,
	)

	return repository.queryUsers(context, query, userID, otherID)
}

// # Internal Helpers

// friendIDs loads the friend ids of a single account.
func (repository *PostgresRepository) friendIDs(context context.Context, userID int) ([]int, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.Friendship.FriendID,
		schema.Friendship.Table,
		schema.Friendship.UserID,
		schema.Friendship.FriendID,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_friend_ids")
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_friend_id")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// checkPair verifies both accounts exist, naming the one that does not.
func (repository *PostgresRepository) checkPair(context context.Context, userID, friendID int) error {
	exists, err := repository.Exists(context, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User")
	}

	exists, err = repository.Exists(context, friendID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Friend")
	}

	return nil
}

// queryUsers runs a user-shaped SELECT and hydrates the result rows.
func (repository *PostgresRepository) queryUsers(context context.Context, query string, args ...any) ([]*User, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		record := &User{}
		if err := rows.Scan(&record.ID, &record.Email, &record.Login, &record.Name, &record.Birthday); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, record)
	}

	return users, nil
}
