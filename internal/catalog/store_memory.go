package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemStore serves the catalog from slices in load order.
type MemStore struct {
	mu       sync.RWMutex
	brands   []Brand
	products []Product
	brandIDs map[string]struct{}
	byID     map[string]Product
}

func NewMemStore(brands []Brand, products []Product) *MemStore {
	s := &MemStore{
		brands:   brands,
		products: products,
		brandIDs: make(map[string]struct{}, len(brands)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, b := range brands {
		s.brandIDs[b.ID] = struct{}{}
	}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

// Counts reports loaded entity totals, for startup logging.
func (s *MemStore) Counts() (brands, products int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.brands), len(s.products)
}

func (s *MemStore) Brands(ctx context.Context) ([]Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Brand, len(s.brands))
	copy(out, s.brands)
	return out, nil
}

func (s *MemStore) BrandsByName(ctx context.Context, name string) ([]Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Brand, 0, 1)
	for _, b := range s.brands {
		if strings.EqualFold(b.Name, name) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStore) BrandExists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.brandIDs[id]
	return ok, nil
}

func (s *MemStore) Products(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemStore) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 8)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Product, 0, 8)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Product(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok, nil
}
