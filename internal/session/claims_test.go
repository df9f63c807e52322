package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tokenStr := signedToken(t, jwt.MapClaims{
		"username": "alice",
		"role":     "ADMIN",
		"exp":      exp.Unix(),
	})

	claims, err := DecodeClaims(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestDecodeClaimsRejectsMalformedToken(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestDecodeClaimsRequiresExpiry(t *testing.T) {
	tokenStr := signedToken(t, jwt.MapClaims{"username": "alice"})
	_, err := DecodeClaims(tokenStr)
	assert.Error(t, err)
}

func TestClaimsValidate(t *testing.T) {
	now := time.Now()

	t.Run("future expiry permits rendering", func(t *testing.T) {
		tokenStr := signedToken(t, jwt.MapClaims{
			"username": "alice",
			"exp":      now.Add(15 * time.Minute).Unix(),
		})
		claims, err := DecodeClaims(tokenStr)
		require.NoError(t, err)
		assert.NoError(t, claims.Validate(now))
	})

	t.Run("past expiry forces logout", func(t *testing.T) {
		tokenStr := signedToken(t, jwt.MapClaims{
			"username": "alice",
			"exp":      now.Add(-time.Minute).Unix(),
		})
		claims, err := DecodeClaims(tokenStr)
		require.NoError(t, err)
		assert.ErrorIs(t, claims.Validate(now), ErrTokenExpired)
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Alice L", Claims{Name: "Alice L", Username: "alice"}.DisplayName())
	assert.Equal(t, "alice", Claims{Username: "alice"}.DisplayName())
	assert.Equal(t, "user", Claims{}.DisplayName())
}
