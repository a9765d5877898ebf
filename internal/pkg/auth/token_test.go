package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("secret", "A1", time.Hour)
	require.NoError(t, err)

	userID, err := VerifyToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "A1", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "A1", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "A1",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = VerifyToken("secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsUnsignedAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "A1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken("secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := VerifyToken("secret", "not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyToken("secret", "")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenRequiresInputs(t *testing.T) {
	_, err := GenerateToken("", "A1", time.Hour)
	require.Error(t, err)

	_, err = GenerateToken("secret", "", time.Hour)
	require.Error(t, err)
}
