package internal

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvellene/storefront/internal/constants"
)

const testSecretKey = "test-secret"

func signToken(t *testing.T, claims jwt.RegisteredClaims, secretKey string) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secretKey))
	if err != nil {
		t.Fatalf("failed signing token with error: %s", err)
	}
	return signed
}

func userClaims(userId uuid.UUID) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   userId.String(),
		Audience:  jwt.ClaimStrings{constants.AUDIENCE_USER},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestVerifyToken(t *testing.T) {
	c := context.Background()
	userId := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token, err := VerifyToken(c, signToken(t, userClaims(userId), testSecretKey), testSecretKey)
		require.NoError(t, err)
		assert.True(t, token.Valid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := VerifyToken(c, signToken(t, userClaims(userId), "other-secret"), testSecretKey)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := userClaims(userId)
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		_, err := VerifyToken(c, signToken(t, claims, testSecretKey), testSecretKey)
		assert.Error(t, err)
	})

	t.Run("missing expiration", func(t *testing.T) {
		claims := userClaims(userId)
		claims.ExpiresAt = nil
		_, err := VerifyToken(c, signToken(t, claims, testSecretKey), testSecretKey)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := userClaims(userId)
		claims.Audience = jwt.ClaimStrings{"admin"}
		_, err := VerifyToken(c, signToken(t, claims, testSecretKey), testSecretKey)
		assert.Error(t, err)
	})
}

func TestUserIdFromJwtToken(t *testing.T) {
	c := context.Background()
	userId := uuid.New()

	t.Run("returns subject as user id", func(t *testing.T) {
		token, err := VerifyToken(c, signToken(t, userClaims(userId), testSecretKey), testSecretKey)
		require.NoError(t, err)

		got, err := UserIdFromJwtToken(AttachJwtToken(c, token))
		require.NoError(t, err)
		assert.EqualValues(t, userId, got)
	})

	t.Run("missing token in context", func(t *testing.T) {
		_, err := UserIdFromJwtToken(c)
		assert.Error(t, err)
	})

	t.Run("non uuid subject", func(t *testing.T) {
		claims := userClaims(userId)
		claims.Subject = "not-a-uuid"
		token, err := VerifyToken(c, signToken(t, claims, testSecretKey), testSecretKey)
		require.NoError(t, err)

		_, err = UserIdFromJwtToken(AttachJwtToken(c, token))
		assert.Error(t, err)
	})
}
