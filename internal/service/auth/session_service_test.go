package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrmagalhaes/jackut-api/internal/config"
)

const testSecret = "test-secret-that-is-at-least-32-chars!!"

func newTestSessionService(t *testing.T) SessionService {
	t.Helper()
	svc, err := NewSessionService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	}, nil)
	require.NoError(t, err)
	return svc
}

func TestNewSessionService(t *testing.T) {
	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := NewSessionService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		}, nil)
		assert.Error(t, err)
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService(t)

	token, err := svc.GenerateToken(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Login)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token fails", func(t *testing.T) {
		svc := newTestSessionService(t)
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage token fails", func(t *testing.T) {
		svc := newTestSessionService(t)
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret fails", func(t *testing.T) {
		svc := newTestSessionService(t)
		other, err := NewSessionService(config.AuthConfig{
			JWTSecret:            "another-secret-also-32-characters!!!",
			TokenLifetimeMinutes: 60,
		}, nil)
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, "alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token fails", func(t *testing.T) {
		svc, err := NewSessionService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 1,
		}, nil)
		require.NoError(t, err)

		impl, ok := svc.(*hmacSessionService)
		require.True(t, ok)

		issued := time.Now().Add(-time.Hour)
		impl.timeFunc = func() time.Time { return issued }
		token, err := svc.GenerateToken(ctx, "alice")
		require.NoError(t, err)

		// Validation runs an hour later, far past lifetime plus clock skew.
		impl.timeFunc = time.Now
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
