package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	products []ProductModel
	err      error
}

func (f *fakeFetcher) FetchCatalog() ([]ProductModel, error) {
	return f.products, f.err
}

func daftarProduk() []ProductModel {
	return []ProductModel{
		{ID: 1, Name: "Kopi ABC Susu", Price: 3, Barcode: "899100011"},
		{ID: 2, Name: "Teh Botol", Price: 4, Barcode: "899100ABC22"},
		{ID: 3, Name: "Air Mineral", Price: 2, Barcode: ""},
	}
}

func TestRefreshLoadsSnapshot(t *testing.T) {
	catalog := NewCatalogCache()
	require.NoError(t, catalog.Refresh(&fakeFetcher{products: daftarProduk()}))

	assert.True(t, catalog.Loaded())
	assert.NoError(t, catalog.Err())
	assert.Len(t, catalog.Filter(""), 3)
}

func TestFilterMatchesNameOrBarcodeCaseInsensitive(t *testing.T) {
	catalog := NewCatalogCache()
	require.NoError(t, catalog.Refresh(&fakeFetcher{products: daftarProduk()}))

	// "abc" kena di nama produk 1 dan di barcode produk 2, produk 3 tidak
	got := catalog.Filter("abc")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	// Case-insensitive dua arah
	assert.Len(t, catalog.Filter("ABC"), 2)
	assert.Len(t, catalog.Filter("kOpI"), 1)

	// Tidak ada yang cocok
	assert.Empty(t, catalog.Filter("xyz"))
}

func TestFilterDoesNotMutateSnapshot(t *testing.T) {
	catalog := NewCatalogCache()
	require.NoError(t, catalog.Refresh(&fakeFetcher{products: daftarProduk()}))

	catalog.Filter("kopi")
	catalog.Filter("xyz")
	assert.Len(t, catalog.Filter(""), 3)
}

func TestRefreshFailureClearsSnapshot(t *testing.T) {
	catalog := NewCatalogCache()
	require.NoError(t, catalog.Refresh(&fakeFetcher{products: daftarProduk()}))

	boom := errors.New("koneksi database putus")
	err := catalog.Refresh(&fakeFetcher{err: boom})
	require.ErrorIs(t, err, boom)

	// Tidak ada daftar basi yang tersisa
	assert.False(t, catalog.Loaded())
	assert.ErrorIs(t, catalog.Err(), boom)
	assert.Empty(t, catalog.Filter(""))
}

func TestFindProductInSnapshot(t *testing.T) {
	catalog := NewCatalogCache()
	require.NoError(t, catalog.Refresh(&fakeFetcher{products: daftarProduk()}))

	p, found := catalog.Find(2)
	require.True(t, found)
	assert.Equal(t, "Teh Botol", p.Name)

	_, found = catalog.Find(99)
	assert.False(t, found)
}
