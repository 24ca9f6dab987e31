// Copyright (c) 2026 Filmorate. All rights reserved.

package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/filmorate/internal/platform/apperr"
	"github.com/filmorate/filmorate/internal/user"
	"github.com/filmorate/filmorate/pkg/date"
)

func newService() *user.Service {
	return user.NewService(user.NewMemoryRepository())
}

func validUser(login string) *user.User {
	return &user.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: date.New(1990, time.March, 14),
	}
}

// register creates an account through the service, failing the test on error.
func register(t *testing.T, service *user.Service, login string) *user.User {
	t.Helper()

	account := validUser(login)
	require.NoError(t, service.Create(context.Background(), account))
	return account
}

/*
TestCreate_AssignsIDAndDefaultsName verifies identity assignment and the
display-name fallback.
*/
func TestCreate_AssignsIDAndDefaultsName(t *testing.T) {
	service := newService()

	first := validUser("alice")
	require.NoError(t, service.Create(context.Background(), first))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "alice", first.Name, "blank name falls back to login")

	second := validUser("bob")
	second.ID = 99
	second.Name = "Bob"
	require.NoError(t, service.Create(context.Background(), second))
	assert.Equal(t, 2, second.ID, "client-supplied id is ignored")
	assert.Equal(t, "Bob", second.Name)
}

/*
TestCreate_Validation covers the account payload rules.
*/
func TestCreate_Validation(t *testing.T) {
	service := newService()

	cases := []struct {
		name   string
		mutate func(*user.User)
	}{
		{"missing_email", func(u *user.User) { u.Email = "" }},
		{"malformed_email", func(u *user.User) { u.Email = "not-an-email" }},
		{"missing_login", func(u *user.User) { u.Login = "" }},
		{"login_with_spaces", func(u *user.User) { u.Login = "bad login" }},
		{"future_birthday", func(u *user.User) { u.Birthday = date.FromTime(time.Now().AddDate(1, 0, 0)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			account := validUser("carol")
			tc.mutate(account)

			err := service.Create(context.Background(), account)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestUpdate covers field replacement, friend-set preservation, and the
missing-id contract.
*/
func TestUpdate(t *testing.T) {
	service := newService()
	account := register(t, service, "alice")
	friend := register(t, service, "bob")
	require.NoError(t, service.AddFriend(context.Background(), account.ID, friend.ID))

	t.Run("replaces_fields", func(t *testing.T) {
		changed := validUser("alice2")
		changed.ID = account.ID
		require.NoError(t, service.Update(context.Background(), changed))

		got, err := service.Get(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice2", got.Login)
	})

	t.Run("preserves_friend_set", func(t *testing.T) {
		got, err := service.Get(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{friend.ID}, got.Friends)
	})

	t.Run("unknown_id", func(t *testing.T) {
		ghost := validUser("ghost")
		ghost.ID = 404
		err := service.Update(context.Background(), ghost)
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestAddFriend_Symmetry verifies that one call connects both users.
*/
func TestAddFriend_Symmetry(t *testing.T) {
	service := newService()
	alice := register(t, service, "alice")
	bob := register(t, service, "bob")

	require.NoError(t, service.AddFriend(context.Background(), alice.ID, bob.ID))

	gotAlice, err := service.Get(context.Background(), alice.ID)
	require.NoError(t, err)
	gotBob, err := service.Get(context.Background(), bob.ID)
	require.NoError(t, err)

	assert.Equal(t, []int{bob.ID}, gotAlice.Friends)
	assert.Equal(t, []int{alice.ID}, gotBob.Friends)
}

/*
TestAddFriend_Rejections covers duplicates, self-edges, bad ids, and
missing accounts.
*/
func TestAddFriend_Rejections(t *testing.T) {
	service := newService()
	alice := register(t, service, "alice")
	bob := register(t, service, "bob")
	require.NoError(t, service.AddFriend(context.Background(), alice.ID, bob.ID))

	t.Run("duplicate_edge", func(t *testing.T) {
		err := service.AddFriend(context.Background(), alice.ID, bob.ID)
		assert.True(t, apperr.IsConflict(err))

		// The duplicate direction is a conflict too.
		err = service.AddFriend(context.Background(), bob.ID, alice.ID)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("self_edge", func(t *testing.T) {
		err := service.AddFriend(context.Background(), alice.ID, alice.ID)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("negative_id", func(t *testing.T) {
		err := service.AddFriend(context.Background(), -1, bob.ID)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("missing_user", func(t *testing.T) {
		err := service.AddFriend(context.Background(), 404, bob.ID)
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("missing_friend", func(t *testing.T) {
		err := service.AddFriend(context.Background(), alice.ID, 404)
		require.Error(t, err)
		assert.Equal(t, "Friend not found", err.Error())
	})
}

/*
TestDeleteFriend verifies symmetric removal and the silent no-op for a
missing edge.
*/
func TestDeleteFriend(t *testing.T) {
	service := newService()
	alice := register(t, service, "alice")
	bob := register(t, service, "bob")
	carol := register(t, service, "carol")
	require.NoError(t, service.AddFriend(context.Background(), alice.ID, bob.ID))

	t.Run("removes_both_sides", func(t *testing.T) {
		require.NoError(t, service.DeleteFriend(context.Background(), alice.ID, bob.ID))

		gotAlice, _ := service.Get(context.Background(), alice.ID)
		gotBob, _ := service.Get(context.Background(), bob.ID)
		assert.Empty(t, gotAlice.Friends)
		assert.Empty(t, gotBob.Friends)
	})

	t.Run("missing_edge_is_noop", func(t *testing.T) {
		assert.NoError(t, service.DeleteFriend(context.Background(), alice.ID, carol.ID))
	})

	t.Run("missing_user_still_errors", func(t *testing.T) {
		err := service.DeleteFriend(context.Background(), alice.ID, 404)
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestCommonFriends covers the mutual-friend intersection.
*/
func TestCommonFriends(t *testing.T) {
	service := newService()
	alice := register(t, service, "alice")
	bob := register(t, service, "bob")
	carol := register(t, service, "carol")
	dave := register(t, service, "dave")

	// carol is friends with both alice and bob; dave only with alice.
	require.NoError(t, service.AddFriend(context.Background(), alice.ID, carol.ID))
	require.NoError(t, service.AddFriend(context.Background(), bob.ID, carol.ID))
	require.NoError(t, service.AddFriend(context.Background(), alice.ID, dave.ID))

	t.Run("intersection", func(t *testing.T) {
		mutual, err := service.CommonFriends(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
		require.Len(t, mutual, 1)
		assert.Equal(t, carol.ID, mutual[0].ID)
	})

	t.Run("empty_intersection", func(t *testing.T) {
		mutual, err := service.CommonFriends(context.Background(), bob.ID, dave.ID)
		require.NoError(t, err)
		assert.Empty(t, mutual)
	})

	t.Run("missing_other", func(t *testing.T) {
		_, err := service.CommonFriends(context.Background(), alice.ID, 404)
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestListFriends verifies friend listing and the missing-user contract.
*/
func TestListFriends(t *testing.T) {
	service := newService()
	alice := register(t, service, "alice")
	bob := register(t, service, "bob")
	carol := register(t, service, "carol")

	require.NoError(t, service.AddFriend(context.Background(), alice.ID, bob.ID))
	require.NoError(t, service.AddFriend(context.Background(), alice.ID, carol.ID))

	friends, err := service.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, bob.ID, friends[0].ID)
	assert.Equal(t, carol.ID, friends[1].ID)

	_, err = service.ListFriends(context.Background(), 404)
	assert.True(t, apperr.IsNotFound(err))
}
