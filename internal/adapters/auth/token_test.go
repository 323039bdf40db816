package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string, expiry time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	userID, err := verifier.Verify(signToken(t, "test-secret", "42", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.Verify(signToken(t, "other-secret", "42", time.Hour))
	assert.Error(t, err)
}

func TestJWTVerifier_Verify_Expired(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.Verify(signToken(t, "test-secret", "42", -time.Hour))
	assert.Error(t, err)
}

func TestJWTVerifier_Verify_NonNumericSubject(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.Verify(signToken(t, "test-secret", "alice", time.Hour))
	assert.Error(t, err)
}
