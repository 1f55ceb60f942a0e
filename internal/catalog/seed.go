package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	brandsFile   = "brands.json"
	productsFile = "products.json"
)

// LoadDir builds a MemStore from brands.json and products.json in dir.
// Entries without an id get one assigned.
func LoadDir(dir string) (*MemStore, error) {
	var brands []Brand
	if err := readSeed(filepath.Join(dir, brandsFile), &brands); err != nil {
		return nil, err
	}

	var products []Product
	if err := readSeed(filepath.Join(dir, productsFile), &products); err != nil {
		return nil, err
	}

	for i := range brands {
		if brands[i].ID == "" {
			brands[i].ID = uuid.NewString()
		}
	}
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
	}

	return NewMemStore(brands, products), nil
}

func readSeed(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse seed %s: %w", path, err)
	}
	return nil
}
