package cart

import (
	"context"
	"errors"
	"sync"

	"ShadeShop/internal/catalog"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already in cart")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

type Entry struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Manager owns every user's cart, keyed by username. Each cart holds at
// most one entry per product id, in insertion order.
type Manager struct {
	mu      sync.Mutex
	catalog catalog.Store
	carts   map[string][]Entry
}

func NewManager(store catalog.Store) *Manager {
	return &Manager{
		catalog: store,
		carts:   make(map[string][]Entry),
	}
}

// Get returns a snapshot of the cart; an empty cart is a non-nil empty
// slice so it serializes as [].
func (m *Manager) Get(username string) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.carts[username]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Add appends the product with quantity 1. Changing the quantity of a
// product already in the cart is SetQuantity's job, so a duplicate add is
// a conflict.
func (m *Manager) Add(ctx context.Context, username, productID string) (Entry, error) {
	// Catalog lookup stays outside the lock; the Postgres store does I/O.
	p, ok, err := m.catalog.Product(ctx, productID)
	if err != nil {
		return Entry{}, err
	}
	if !ok {
		return Entry{}, ErrProductNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.carts[username] {
		if e.Product.ID == productID {
			return Entry{}, ErrDuplicateProduct
		}
	}

	entry := Entry{Product: p, Quantity: 1}
	m.carts[username] = append(m.carts[username], entry)
	return entry, nil
}

// SetQuantity overwrites the quantity of an existing entry. Any quantity
// below one violates the cart invariant; there is no upper bound and no
// stock check.
func (m *Manager) SetQuantity(username, productID string, quantity int) (Entry, error) {
	if quantity < 1 {
		return Entry{}, ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.carts[username]
	for i := range entries {
		if entries[i].Product.ID == productID {
			entries[i].Quantity = quantity
			return entries[i], nil
		}
	}
	return Entry{}, ErrProductNotFound
}

// Remove deletes the entry and returns the removed product.
func (m *Manager) Remove(username, productID string) (catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.carts[username]
	for i := range entries {
		if entries[i].Product.ID == productID {
			p := entries[i].Product
			m.carts[username] = append(entries[:i], entries[i+1:]...)
			return p, nil
		}
	}
	return catalog.Product{}, ErrProductNotFound
}
