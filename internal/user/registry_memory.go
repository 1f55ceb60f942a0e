package user

import (
	"context"
	"strings"
	"sync"
)

type MemRegistry struct {
	mu         sync.RWMutex
	byUsername map[string]User
	byEmail    map[string]User
}

func NewMemRegistry(users []User) *MemRegistry {
	r := &MemRegistry{
		byUsername: make(map[string]User, len(users)),
		byEmail:    make(map[string]User, len(users)),
	}
	for _, u := range users {
		u.Email = strings.ToLower(strings.TrimSpace(u.Email))
		r.byUsername[u.Username] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *MemRegistry) Ping(ctx context.Context) error { return nil }

func (r *MemRegistry) ByUsername(ctx context.Context, username string) (User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	return u, ok, nil
}

func (r *MemRegistry) ByEmail(ctx context.Context, email string) (User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	return u, ok, nil
}
