package schema

// FriendshipTable represents the 'friendship' edge table.
//
// Edges are stored symmetrically: adding a friendship inserts two rows,
// (a, b) and (b, a), in one transaction.
type FriendshipTable struct {
	Table    string
	UserID   string
	FriendID string
}

// Friendship is the schema definition for friendship
var Friendship = FriendshipTable{
	Table:    "friendship",
	UserID:   "user_id",
	FriendID: "friend_id",
}

// Columns returns all standard column names
func (t FriendshipTable) Columns() []string {
	return []string{t.UserID, t.FriendID}
}
