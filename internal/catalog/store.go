package catalog

import "context"

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

// Store is read-mostly: brands and products are immutable after load.
type Store interface {
	Ping(ctx context.Context) error

	Brands(ctx context.Context) ([]Brand, error)
	// BrandsByName matches the brand name exactly, ignoring case.
	BrandsByName(ctx context.Context, name string) ([]Brand, error)
	BrandExists(ctx context.Context, id string) (bool, error)

	Products(ctx context.Context) ([]Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	// SearchProducts substring-matches name or description, ignoring case.
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	Product(ctx context.Context, id string) (Product, bool, error)
}
