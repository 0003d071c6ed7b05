package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndVerify(t *testing.T) {
	signed, err := Generate(testSecret, 42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Verify(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := Generate(testSecret, 1, "a@b.c")
	require.NoError(t, err)

	_, err = Verify("other-secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	_, err := Verify(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(1),
		"email":   "a@b.c",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_UnexpectedSigningMethod(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": float64(1),
		"email":   "a@b.c",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingClaims(t *testing.T) {
	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noUser.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
