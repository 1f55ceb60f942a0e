package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *MemStore {
	brands := []Brand{
		{ID: "1", Name: "Oakley"},
		{ID: "2", Name: "Ray Ban"},
		{ID: "3", Name: "Levi's"},
	}
	products := []Product{
		{ID: "1", CategoryID: "1", Name: "Superglasses", Description: "The best glasses in the world"},
		{ID: "2", CategoryID: "1", Name: "Black Sunglasses", Description: "Dark"},
		{ID: "3", CategoryID: "2", Name: "QDogs Glasses", Description: "They bark"},
	}
	return NewMemStore(brands, products)
}

func TestBrandsByNameIgnoresCase(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	for _, q := range []string{"Oakley", "oakley", "OAKLEY"} {
		got, err := s.BrandsByName(ctx, q)
		require.NoError(t, err)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "1", got[0].ID)
	}

	got, err := s.BrandsByName(ctx, "Gucci")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBrandExists(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	ok, err := s.BrandExists(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.BrandExists(ctx, "99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductsByCategory(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	got, err := s.ProductsByCategory(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	// Known-but-empty categories return an empty slice, not nil.
	got, err = s.ProductsByCategory(ctx, "3")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchProducts(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	byName, err := s.SearchProducts(ctx, "sunglasses")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "2", byName[0].ID)

	byDescription, err := s.SearchProducts(ctx, "BARK")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "3", byDescription[0].ID)

	none, err := s.SearchProducts(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := s.SearchProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProductLookup(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	p, ok, err := s.Product(ctx, "3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "QDogs Glasses", p.Name)

	_, ok, err = s.Product(ctx, "99")
	require.NoError(t, err)
	assert.False(t, ok)
}
