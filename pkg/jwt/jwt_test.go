package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
)

const testSecret = "test-secret-for-unit-tests-only"

func TestManager_GenerateAndVerify(t *testing.T) {
	m := NewManager(testSecret, "books-api")

	token, err := m.Generate("api-client", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "api-client", claims.Subject)
	assert.Equal(t, "books-api", claims.Issuer)
}

func TestManager_Verify_ExpiredToken(t *testing.T) {
	m := NewManager(testSecret, "books-api")

	token, err := m.Generate("api-client", -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManager_Verify_NotYetValidToken(t *testing.T) {
	m := NewManager(testSecret, "books-api")

	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(now.Add(2 * time.Hour)),
		NotBefore: jwtlib.NewNumericDate(now.Add(time.Hour)),
		Subject:   "api-client",
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewManager("other-secret", "books-api")
	verifier := NewManager(testSecret, "books-api")

	token, err := issuer.Generate("api-client", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_Verify_RejectsUnsignedToken(t *testing.T) {
	m := NewManager(testSecret, "books-api")

	claims := jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		Subject:   "api-client",
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := NewManager(testSecret, "books-api")

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
