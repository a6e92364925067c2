package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired.
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("user")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue("user")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("definitely.not.a-token")
	assert.Error(t, err)
}
