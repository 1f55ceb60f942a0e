package auth

import (
	"context"
	"errors"

	"ShadeShop/internal/user"
)

var (
	ErrMissingIdentity   = errors.New("username or email required")
	ErrAmbiguousIdentity = errors.New("username and email are mutually exclusive")
)

type identityKind int

const (
	byUsername identityKind = iota
	byEmail
)

// LoginIdentity is the single tagged form of "who is logging in": exactly
// one of username or email, resolved to a canonical user record before any
// throttle or credential check.
type LoginIdentity struct {
	kind  identityKind
	value string
}

func NewLoginIdentity(username, email string) (LoginIdentity, error) {
	switch {
	case username != "" && email != "":
		return LoginIdentity{}, ErrAmbiguousIdentity
	case username != "":
		return LoginIdentity{kind: byUsername, value: username}, nil
	case email != "":
		return LoginIdentity{kind: byEmail, value: email}, nil
	default:
		return LoginIdentity{}, ErrMissingIdentity
	}
}

func (id LoginIdentity) Resolve(ctx context.Context, reg user.Registry) (user.User, bool, error) {
	if id.kind == byEmail {
		return reg.ByEmail(ctx, id.value)
	}
	return reg.ByUsername(ctx, id.value)
}

// Label names the supplied credential field for error messages.
func (id LoginIdentity) Label() string {
	if id.kind == byEmail {
		return "email"
	}
	return "username"
}
