package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewSessionToken("alice", secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := UserFromSessionToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "alice", user)
}

func TestSessionTokensAreUnique(t *testing.T) {
	secret := []byte("test-secret")

	a, err := NewSessionToken("alice", secret, time.Minute)
	require.NoError(t, err)
	b, err := NewSessionToken("alice", secret, time.Minute)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken("alice", []byte("right"), time.Minute)
	require.NoError(t, err)

	_, err = UserFromSessionToken(token, []byte("wrong"))
	require.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewSessionToken("alice", secret, -time.Minute)
	require.NoError(t, err)

	_, err = UserFromSessionToken(token, secret)
	require.Error(t, err)
}
