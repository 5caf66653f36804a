package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFriendship(t *testing.T) {
	t.Run("first request lands in the target's pending inbox", func(t *testing.T) {
		g := NewGraph()

		err := g.RequestFriendship("alice", "bob")
		require.NoError(t, err)

		assert.False(t, g.IsFriend("alice", "bob"))
		assert.False(t, g.IsFriend("bob", "alice"))
		assert.True(t, g.HasPendingRequest("bob", "alice"))
	})

	t.Run("reciprocal request completes the friendship symmetrically", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("bob", "alice"))

		assert.True(t, g.IsFriend("alice", "bob"))
		assert.True(t, g.IsFriend("bob", "alice"))
		assert.False(t, g.HasPendingRequest("bob", "alice"))
		assert.False(t, g.HasPendingRequest("alice", "bob"))
	})

	t.Run("repeating a pending request fails", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		err := g.RequestFriendship("alice", "bob")
		assert.ErrorIs(t, err, ErrRequestPending)
	})

	t.Run("requesting an existing friend fails", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("bob", "alice"))

		assert.ErrorIs(t, g.RequestFriendship("alice", "bob"), ErrAlreadyFriends)
		assert.ErrorIs(t, g.RequestFriendship("bob", "alice"), ErrAlreadyFriends)
	})

	t.Run("self request fails", func(t *testing.T) {
		g := NewGraph()
		assert.ErrorIs(t, g.RequestFriendship("alice", "alice"), ErrSelfRelation)
	})

	t.Run("friends list keeps acceptance order", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("bob", "alice"))
		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("carol", "alice"))
		require.NoError(t, g.RequestFriendship("alice", "carol"))

		assert.Equal(t, []string{"bob", "carol"}, g.Friends("alice"))
	})

	t.Run("never both friend and pending", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("bob", "alice"))

		assert.True(t, g.IsFriend("alice", "bob"))
		assert.False(t, g.HasPendingRequest("alice", "bob"))
		assert.False(t, g.HasPendingRequest("bob", "alice"))
	})
}

func TestDeclareIdol(t *testing.T) {
	t.Run("declaration is one-directional", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareIdol("alice", "bob"))

		assert.True(t, g.IsIdol("alice", "bob"))
		assert.False(t, g.IsIdol("bob", "alice"))
	})

	t.Run("repeat declaration fails", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareIdol("alice", "bob"))
		err := g.DeclareIdol("alice", "bob")
		assert.ErrorIs(t, err, ErrAlreadyDeclared)
	})

	t.Run("self declaration fails", func(t *testing.T) {
		g := NewGraph()
		assert.ErrorIs(t, g.DeclareIdol("alice", "alice"), ErrSelfRelation)
	})

	t.Run("blocked by an enemy edge in either direction", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareEnemy("bob", "alice"))

		// alice never declared bob an enemy, but bob's declaration blocks both ways.
		assert.ErrorIs(t, g.DeclareIdol("alice", "bob"), ErrEnemyBlocked)
		assert.ErrorIs(t, g.DeclareIdol("bob", "alice"), ErrEnemyBlocked)
	})
}

func TestDeclareCrush(t *testing.T) {
	t.Run("first declaration is not mutual", func(t *testing.T) {
		g := NewGraph()

		mutual, err := g.DeclareCrush("alice", "bob")
		require.NoError(t, err)
		assert.False(t, mutual)
		assert.True(t, g.IsCrush("alice", "bob"))
	})

	t.Run("reciprocal declaration reports mutual", func(t *testing.T) {
		g := NewGraph()

		_, err := g.DeclareCrush("alice", "bob")
		require.NoError(t, err)

		mutual, err := g.DeclareCrush("bob", "alice")
		require.NoError(t, err)
		assert.True(t, mutual)
	})

	t.Run("repeat declaration fails", func(t *testing.T) {
		g := NewGraph()

		_, err := g.DeclareCrush("alice", "bob")
		require.NoError(t, err)

		_, err = g.DeclareCrush("alice", "bob")
		assert.ErrorIs(t, err, ErrAlreadyDeclared)
	})

	t.Run("blocked by an enemy edge", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareEnemy("alice", "bob"))

		_, err := g.DeclareCrush("alice", "bob")
		assert.ErrorIs(t, err, ErrEnemyBlocked)
		_, err = g.DeclareCrush("bob", "alice")
		assert.ErrorIs(t, err, ErrEnemyBlocked)
	})
}

func TestDeclareEnemy(t *testing.T) {
	t.Run("declaration is unilateral and never blocked", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareEnemy("alice", "bob"))
		// The reverse declaration still succeeds.
		require.NoError(t, g.DeclareEnemy("bob", "alice"))

		assert.True(t, g.IsEnemy("alice", "bob"))
		assert.True(t, g.IsEnemy("bob", "alice"))
	})

	t.Run("repeat declaration fails", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.DeclareEnemy("alice", "bob"))
		assert.ErrorIs(t, g.DeclareEnemy("alice", "bob"), ErrAlreadyDeclared)
	})

	t.Run("does not undo existing friendship", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("bob", "alice"))
		require.NoError(t, g.DeclareEnemy("alice", "bob"))

		assert.True(t, g.IsFriend("alice", "bob"))
	})
}

func TestGraphRemoveAccount(t *testing.T) {
	t.Run("strips the login from every other account's sets", func(t *testing.T) {
		g := NewGraph()

		require.NoError(t, g.RequestFriendship("alice", "bob"))
		require.NoError(t, g.RequestFriendship("bob", "alice"))
		require.NoError(t, g.RequestFriendship("bob", "carol"))
		require.NoError(t, g.DeclareIdol("carol", "bob"))
		_, err := g.DeclareCrush("alice", "bob")
		require.NoError(t, err)
		require.NoError(t, g.DeclareEnemy("carol", "bob"))

		g.RemoveAccount("bob")

		assert.False(t, g.IsFriend("alice", "bob"))
		assert.False(t, g.HasPendingRequest("carol", "bob"))
		assert.False(t, g.IsIdol("carol", "bob"))
		assert.False(t, g.IsCrush("alice", "bob"))
		assert.False(t, g.IsEnemy("carol", "bob"))
		assert.Empty(t, g.Friends("bob"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		g := NewGraph()
		g.RemoveAccount("ghost")
		g.RemoveAccount("ghost")
	})
}

func TestGraphSnapshotRestore(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.RequestFriendship("alice", "bob"))
	require.NoError(t, g.RequestFriendship("bob", "alice"))
	require.NoError(t, g.DeclareIdol("alice", "carol"))

	snap := g.Snapshot()

	// Mutating the original must not affect the snapshot.
	require.NoError(t, g.DeclareEnemy("alice", "dave"))

	restored := NewGraph()
	restored.Restore(snap)

	assert.True(t, restored.IsFriend("alice", "bob"))
	assert.True(t, restored.IsIdol("alice", "carol"))
	assert.False(t, restored.IsEnemy("alice", "dave"))
}
