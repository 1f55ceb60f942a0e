package catalog

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Brands(ctx context.Context) ([]Brand, error) {
	return s.queryBrands(ctx, `
		SELECT id, name
		FROM brands
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) BrandsByName(ctx context.Context, name string) ([]Brand, error) {
	return s.queryBrands(ctx, `
		SELECT id, name
		FROM brands
		WHERE LOWER(name) = LOWER($1)
		ORDER BY id ASC
	`, name)
}

func (s *PostgresStore) BrandExists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)
		`, id).Scan(&exists)
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Image URLs live only in the JSON seed data; the products table carries no
// image_urls column, so products from this store have ImageURLs nil.
func (s *PostgresStore) Products(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT id, category_id, name, description, price_cents
		FROM products
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT id, category_id, name, description, price_cents
		FROM products
		WHERE category_id = $1
		ORDER BY id ASC
	`, categoryID)
}

func (s *PostgresStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT id, category_id, name, description, price_cents
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`, query)
}

func (s *PostgresStore) Product(ctx context.Context, id string) (Product, bool, error) {
	var p Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, category_id, name, description, price_cents
			FROM products
			WHERE id = $1
		`, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents)
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) queryBrands(ctx context.Context, q string, args ...any) ([]Brand, error) {
	var out []Brand

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Brand, 0, 8)
		for rows.Next() {
			var b Brand
			if err := rows.Scan(&b.ID, &b.Name); err != nil {
				return err
			}
			out = append(out, b)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) queryProducts(ctx context.Context, q string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var p Product
			if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
