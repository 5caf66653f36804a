package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

func newTestAccount(t *testing.T, login string) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(login, "s3cret", "")
	require.NoError(t, err)
	return account
}

func TestDirectoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and clears the plaintext", func(t *testing.T) {
		d := NewAccountDirectory(bcrypt.MinCost)

		account := newTestAccount(t, "alice")
		require.NoError(t, d.Create(ctx, account))

		assert.Empty(t, account.Password)
		require.NotEmpty(t, account.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte("s3cret")))
	})

	t.Run("duplicate login fails", func(t *testing.T) {
		d := NewAccountDirectory(bcrypt.MinCost)

		require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))
		err := d.Create(ctx, newTestAccount(t, "alice"))
		assert.ErrorIs(t, err, store.ErrLoginExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("invalid account fails", func(t *testing.T) {
		d := NewAccountDirectory(bcrypt.MinCost)

		err := d.Create(ctx, &domain.Account{Login: "alice"})
		assert.ErrorIs(t, err, domain.ErrEmptyHashedPassword)
	})
}

func TestDirectoryGet(t *testing.T) {
	ctx := context.Background()
	d := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))

	account, err := d.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Login)

	_, err = d.Get(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestDirectoryUpdate(t *testing.T) {
	ctx := context.Background()
	d := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))

	account, err := d.Get(ctx, "alice")
	require.NoError(t, err)

	account.Name = "Alice A."
	account.SetAttribute("city", "Recife")
	require.NoError(t, d.Update(ctx, account))

	updated, err := d.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.Name)
	value, err := updated.Attribute("city")
	require.NoError(t, err)
	assert.Equal(t, "Recife", value)

	t.Run("unknown login fails", func(t *testing.T) {
		err := d.Update(ctx, &domain.Account{Login: "ghost", HashedPassword: "x"})
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}

func TestDirectoryDelete(t *testing.T) {
	ctx := context.Background()
	d := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))

	require.NoError(t, d.Delete(ctx, "alice"))

	exists, err := d.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, d.Delete(ctx, "alice"), store.ErrAccountNotFound)
}

func TestDirectorySnapshotRestore(t *testing.T) {
	ctx := context.Background()
	d := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))

	account, err := d.Get(ctx, "alice")
	require.NoError(t, err)
	account.SetAttribute("city", "Recife")
	require.NoError(t, d.Update(ctx, account))

	snap, err := d.Snapshot(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not reach the directory.
	snap["alice"].SetAttribute("city", "tampered")

	fresh := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, fresh.Restore(ctx, snap))

	restored, err := fresh.Get(ctx, "alice")
	require.NoError(t, err)
	value, err := restored.Attribute("city")
	require.NoError(t, err)
	assert.Equal(t, "tampered", value)

	original, err := d.Get(ctx, "alice")
	require.NoError(t, err)
	value, err = original.Attribute("city")
	require.NoError(t, err)
	assert.Equal(t, "Recife", value)

	// Restored accounts carry the hash only and still validate.
	assert.Empty(t, restored.Password)
	assert.NoError(t, restored.Validate())
}

func TestDirectoryReset(t *testing.T) {
	ctx := context.Background()
	d := NewAccountDirectory(bcrypt.MinCost)
	require.NoError(t, d.Create(ctx, newTestAccount(t, "alice")))

	require.NoError(t, d.Reset(ctx))

	logins, err := d.Logins(ctx)
	require.NoError(t, err)
	assert.Empty(t, logins)
}
