package auth

import "sync"

const DefaultMaxAttempts = 3

// Throttle counts consecutive failed logins per identity key (the canonical
// username). Once the count reaches the limit the key is blocked until a
// successful login resets it; further failures never push the count past
// the limit.
type Throttle struct {
	mu       sync.Mutex
	max      int
	attempts map[string]int
}

func NewThrottle(maxAttempts int) *Throttle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Throttle{
		max:      maxAttempts,
		attempts: make(map[string]int),
	}
}

func (t *Throttle) RecordFailure(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.attempts[key] < t.max {
		t.attempts[key]++
	}
}

func (t *Throttle) RecordSuccess(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts[key] = 0
}

func (t *Throttle) Blocked(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.attempts[key] >= t.max
}

func (t *Throttle) Attempts(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.attempts[key]
}
