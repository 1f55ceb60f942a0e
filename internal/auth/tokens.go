package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

const (
	DefaultTokenValidity = 5 * time.Minute

	tokenBytes = 16
)

// AccessToken is an opaque bearer credential. LastUpdated is bumped only by
// an explicit re-login; resolving a token never extends its life.
type AccessToken struct {
	Username    string
	Token       string
	LastUpdated time.Time
}

// TokenRegistry holds at most one live token per username and enforces a
// sliding validity window against LastUpdated.
type TokenRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	byUser  map[string]*AccessToken
	byValue map[string]*AccessToken
}

func NewTokenRegistry(ttl time.Duration) *TokenRegistry {
	if ttl <= 0 {
		ttl = DefaultTokenValidity
	}
	return &TokenRegistry{
		ttl:     ttl,
		now:     time.Now,
		byUser:  make(map[string]*AccessToken),
		byValue: make(map[string]*AccessToken),
	}
}

// IssueOrRefresh returns the user's existing token with its timestamp bumped
// to now, or mints a fresh one. The token value never changes across
// refreshes, so re-login past expiry revives the same opaque string.
func (r *TokenRegistry) IssueOrRefresh(username string) (AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tok, ok := r.byUser[username]; ok {
		tok.LastUpdated = r.now()
		return *tok, nil
	}

	value, err := newTokenValue()
	if err != nil {
		return AccessToken{}, err
	}

	tok := &AccessToken{
		Username:    username,
		Token:       value,
		LastUpdated: r.now(),
	}
	r.byUser[username] = tok
	r.byValue[value] = tok
	return *tok, nil
}

// Resolve looks a token up by its exact value. Unknown and expired tokens
// are the same failure.
func (r *TokenRegistry) Resolve(value string) (AccessToken, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tok, ok := r.byValue[value]
	if !ok {
		return AccessToken{}, false
	}
	if r.now().Sub(tok.LastUpdated) >= r.ttl {
		return AccessToken{}, false
	}
	return *tok, true
}

func newTokenValue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
