/*
Package user implements the account and friendship domain of Filmorate.

It handles the lifecycle of user accounts and the symmetric friendship
graph that connects them, providing the social layer the film catalog
builds on.

# Core Responsibility

  - Accounts: Manages [User] records with server-assigned identifiers.
  - Friendship: Maintains undirected friendship edges. Adding or removing
    a friend always affects both users, never one side alone.

# Identity

Identifiers are assigned by storage, monotonically increasing from 1 and
never reused. Client-supplied ids on creation are ignored.
*/
package user

import (
	"strings"

	"github.com/filmorate/filmorate/pkg/date"
	"github.com/filmorate/filmorate/pkg/slice"
)

// User represents a registered account.
//
// Friends holds the ids of befriended users. The slice is maintained
// symmetrically: u is in v's friends exactly when v is in u's.
type User struct {
	ID       int       `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
	Friends  []int     `json:"-"`
}

// Normalize applies the display-name default: a blank name falls back to
// the login.
func (u *User) Normalize() {
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
}

// HasFriend reports whether id is in the user's friend set.
func (u *User) HasFriend(id int) bool {
	return slice.Contains(u.Friends, id)
}

// # Field Identifiers

// Global field names for validation in the user domain.
const (
	FieldID       = "id"
	FieldEmail    = "email"
	FieldLogin    = "login"
	FieldName     = "name"
	FieldBirthday = "birthday"
	FieldFriendID = "friendId"
)
