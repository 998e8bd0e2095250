package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklisted jti is reported until it expires", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

		revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown jti is not blacklisted", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		revoked, err := blacklist.IsBlacklisted(ctx, "never-added")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("expired entries are evicted on read", func(t *testing.T) {
		blacklist := NewInMemoryTokenBlacklist()

		require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-2", -time.Second))

		revoked, err := blacklist.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
