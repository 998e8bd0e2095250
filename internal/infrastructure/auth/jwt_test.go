package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-at-least-32-char",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "stockpilot-backend",
		MaxRefreshCount:        3,
	})
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Email:  "grace@example.com",
		Name:   "Grace Hopper",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "grace@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	t.Run("rejects refresh token as access token", func(t *testing.T) {
		svc := newTestJWTService()
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(pair.RefreshToken)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		svc := newTestJWTService()

		claims, err := svc.ValidateAccessToken("not.a.token")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		svc := newTestJWTService()
		other := NewJWTService(config.JWTConfig{
			Secret:                 "completely-different-secret-value-xx",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "stockpilot-backend",
		})
		pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		svc := NewJWTService(config.JWTConfig{
			Secret:                 "test-access-secret-at-least-32-chars",
			AccessTokenExpiration:  -time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "stockpilot-backend",
		})
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	t.Run("issues new pair with incremented refresh count", func(t *testing.T) {
		svc := newTestJWTService()
		userID := uuid.New()
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID})
		require.NoError(t, err)

		refreshed, err := svc.RefreshTokenPair(pair.RefreshToken, "grace@example.com", "Grace Hopper")

		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, refreshed.RefreshToken)

		claims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.RefreshCount)
		assert.Equal(t, userID.String(), claims.UserID)

		accessClaims, err := svc.ValidateAccessToken(refreshed.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "grace@example.com", accessClaims.Email)
	})

	t.Run("fails after max refresh count", func(t *testing.T) {
		svc := newTestJWTService()
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		refreshToken := pair.RefreshToken
		for i := 0; i < 3; i++ {
			refreshed, err := svc.RefreshTokenPair(refreshToken, "", "")
			require.NoError(t, err)
			refreshToken = refreshed.RefreshToken
		}

		refreshed, err := svc.RefreshTokenPair(refreshToken, "", "")

		assert.Nil(t, refreshed)
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("rejects access token as refresh token", func(t *testing.T) {
		svc := newTestJWTService()
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
		require.NoError(t, err)

		refreshed, err := svc.RefreshTokenPair(pair.AccessToken, "", "")

		assert.Nil(t, refreshed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 14*time.Minute)
	assert.LessOrEqual(t, ttl, 15*time.Minute)
}
