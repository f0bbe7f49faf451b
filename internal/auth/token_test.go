package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret")

	token, err := svc.Issue(42, "jane@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService("right-secret").Issue(1, "a@b.c", "user")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret")
	svc.validity = -time.Minute

	token, err := svc.Issue(1, "a@b.c", "user")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("secret").Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none tokens must never verify
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
