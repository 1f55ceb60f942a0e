package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedDir(t *testing.T, brands, products string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, brandsFile), []byte(brands), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, productsFile), []byte(products), 0o600))
	return dir
}

func TestLoadDir(t *testing.T) {
	dir := writeSeedDir(t,
		`[{"id": "1", "name": "Oakley"}, {"id": "2", "name": "Ray Ban"}]`,
		`[{"id": "7", "categoryId": "1", "name": "QDogs Glasses", "description": "They bark", "priceCents": 150000}]`,
	)

	s, err := LoadDir(dir)
	require.NoError(t, err)

	brandCount, productCount := s.Counts()
	assert.Equal(t, 2, brandCount)
	assert.Equal(t, 1, productCount)

	p, ok, err := s.Product(context.Background(), "7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "QDogs Glasses", p.Name)
	assert.Equal(t, int64(150000), p.PriceCents)
}

func TestLoadDirDefaultsMissingIDs(t *testing.T) {
	dir := writeSeedDir(t,
		`[{"name": "Oakley"}]`,
		`[{"categoryId": "1", "name": "Superglasses", "description": "The best glasses in the world"}]`,
	)

	s, err := LoadDir(dir)
	require.NoError(t, err)

	brands, err := s.Brands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)

	_, err = uuid.Parse(brands[0].ID)
	assert.NoError(t, err, "brand id %q should be a generated uuid", brands[0].ID)
	assert.Equal(t, "Oakley", brands[0].Name)

	products, err := s.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	_, err = uuid.Parse(products[0].ID)
	assert.NoError(t, err, "product id %q should be a generated uuid", products[0].ID)
	assert.Equal(t, "Superglasses", products[0].Name)
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, brandsFile), []byte(`[]`), 0o600))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDirBadJSON(t *testing.T) {
	dir := writeSeedDir(t, `[{`, `[]`)

	_, err := LoadDir(dir)
	assert.Error(t, err)
}
