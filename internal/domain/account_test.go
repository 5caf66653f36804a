package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		account, err := NewAccount("alice", "s3cret", "Alice A.")
		require.NoError(t, err)

		assert.Equal(t, "alice", account.Login)
		assert.Equal(t, "Alice A.", account.Name)
		assert.Equal(t, "s3cret", account.Password)
		assert.NotNil(t, account.Attributes)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("blank login fails", func(t *testing.T) {
		_, err := NewAccount("   ", "s3cret", "")
		assert.ErrorIs(t, err, ErrEmptyLogin)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("blank password fails", func(t *testing.T) {
		_, err := NewAccount("alice", "   ", "")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("reserved system login fails", func(t *testing.T) {
		_, err := NewAccount(SystemLogin, "s3cret", "")
		assert.ErrorIs(t, err, ErrReservedLogin)
	})
}

func TestAccountValidate(t *testing.T) {
	t.Run("hash-only account passes", func(t *testing.T) {
		account := &Account{Login: "alice", HashedPassword: "$2a$10$fakehash"}
		assert.NoError(t, account.Validate())
	})

	t.Run("no password at all fails", func(t *testing.T) {
		account := &Account{Login: "alice"}
		err := account.Validate()
		assert.ErrorIs(t, err, ErrEmptyHashedPassword)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAccountAttributes(t *testing.T) {
	account, err := NewAccount("alice", "s3cret", "")
	require.NoError(t, err)

	_, err = account.Attribute("city")
	assert.ErrorIs(t, err, ErrAttributeNotSet)

	account.SetAttribute("city", "Recife")
	value, err := account.Attribute("city")
	require.NoError(t, err)
	assert.Equal(t, "Recife", value)

	account.SetAttribute("city", "Campina Grande")
	value, err = account.Attribute("city")
	require.NoError(t, err)
	assert.Equal(t, "Campina Grande", value)
}

func TestMessageRender(t *testing.T) {
	msg := NewMessage("alice", "tudo bem?")
	assert.Equal(t, "alice", msg.Sender)
	assert.Equal(t, "Mensagem de alice: tudo bem?", msg.Render())
}
