package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, issued, err := GenerateToken(secret, 42, TypeAccess, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestParseToken_WrongType(t *testing.T) {
	token, _, err := GenerateToken(secret, 1, TypeRefresh, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenType)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken(secret, 1, TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(secret, 1, TypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TypeAccess, token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseToken_RejectsNone(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Type: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, signed)
	assert.Error(t, err)
}

func TestGeneratePair(t *testing.T) {
	pair, err := GeneratePair(secret, 7, time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, pair.Access)
	require.NoError(t, err)
	refresh, err := ParseToken(secret, TypeRefresh, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), refresh.UserID)
}
