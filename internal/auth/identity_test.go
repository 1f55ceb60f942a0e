package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShadeShop/internal/user"
)

func TestLoginIdentityValidation(t *testing.T) {
	_, err := NewLoginIdentity("", "")
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = NewLoginIdentity("alice", "alice@example.com")
	assert.ErrorIs(t, err, ErrAmbiguousIdentity)
}

func TestLoginIdentityResolve(t *testing.T) {
	reg := user.NewMemRegistry([]user.User{
		{Username: "alice", Email: "alice@example.com", Password: "secret"},
	})

	byName, err := NewLoginIdentity("alice", "")
	require.NoError(t, err)
	assert.Equal(t, "username", byName.Label())

	u, ok, err := byName.Resolve(context.Background(), reg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	byMail, err := NewLoginIdentity("", "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "email", byMail.Label())

	u, ok, err = byMail.Resolve(context.Background(), reg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	unknown, err := NewLoginIdentity("mallory", "")
	require.NoError(t, err)

	_, ok, err = unknown.Resolve(context.Background(), reg)
	require.NoError(t, err)
	assert.False(t, ok)
}
