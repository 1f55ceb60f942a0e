package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(ttl time.Duration) (*TokenRegistry, *time.Time) {
	reg := NewTokenRegistry(ttl)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }
	return reg, &now
}

func TestIssueReturnsOpaqueValue(t *testing.T) {
	reg, _ := newTestRegistry(5 * time.Minute)

	tok, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", tok.Username)
	assert.NotEmpty(t, tok.Token)
	assert.NotContains(t, tok.Token, "=")

	other, err := reg.IssueOrRefresh("bob")
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token, other.Token)
}

func TestRefreshKeepsValueBumpsTimestamp(t *testing.T) {
	reg, now := newTestRegistry(5 * time.Minute)

	first, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	*now = now.Add(2 * time.Minute)

	second, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, 2*time.Minute, second.LastUpdated.Sub(first.LastUpdated))
}

func TestResolveExpires(t *testing.T) {
	reg, now := newTestRegistry(5 * time.Minute)

	tok, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	got, ok := reg.Resolve(tok.Token)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)

	*now = now.Add(5*time.Minute + time.Second)

	_, ok = reg.Resolve(tok.Token)
	assert.False(t, ok)
}

func TestResolveDoesNotRefresh(t *testing.T) {
	reg, now := newTestRegistry(5 * time.Minute)

	tok, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	// Resolving just short of expiry must not slide the window.
	*now = now.Add(4 * time.Minute)
	_, ok := reg.Resolve(tok.Token)
	require.True(t, ok)

	*now = now.Add(90 * time.Second)
	_, ok = reg.Resolve(tok.Token)
	assert.False(t, ok)
}

func TestReloginRevivesExpiredToken(t *testing.T) {
	reg, now := newTestRegistry(5 * time.Minute)

	tok, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)

	*now = now.Add(10 * time.Minute)
	_, ok := reg.Resolve(tok.Token)
	require.False(t, ok)

	refreshed, err := reg.IssueOrRefresh("alice")
	require.NoError(t, err)
	assert.Equal(t, tok.Token, refreshed.Token)

	_, ok = reg.Resolve(tok.Token)
	assert.True(t, ok)
}

func TestResolveUnknownToken(t *testing.T) {
	reg, _ := newTestRegistry(5 * time.Minute)

	_, ok := reg.Resolve("nope")
	assert.False(t, ok)
}
