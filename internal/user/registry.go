package user

import "context"

// User carries credentials as loaded. Passwords are compared verbatim;
// hashing is out of scope for this service.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registry interface {
	Ping(ctx context.Context) error
	ByUsername(ctx context.Context, username string) (User, bool, error)
	ByEmail(ctx context.Context, email string) (User, bool, error)
}
