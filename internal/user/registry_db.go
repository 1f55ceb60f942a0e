package user

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresRegistry struct {
	db *sql.DB
}

func NewPostgresRegistry(db *sql.DB) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

func (r *PostgresRegistry) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func (r *PostgresRegistry) ByUsername(ctx context.Context, username string) (User, bool, error) {
	return r.queryOne(ctx, `
		SELECT username, email, password
		FROM users
		WHERE username = $1
	`, username)
}

func (r *PostgresRegistry) ByEmail(ctx context.Context, email string) (User, bool, error) {
	return r.queryOne(ctx, `
		SELECT username, email, password
		FROM users
		WHERE LOWER(email) = $1
	`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *PostgresRegistry) queryOne(ctx context.Context, q string, arg string) (User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u User
	err := r.db.QueryRowContext(ctx, q, arg).Scan(&u.Username, &u.Email, &u.Password)
	if err == sql.ErrNoRows {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}
