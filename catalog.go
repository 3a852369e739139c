package main

import (
	"strings"
	"sync"
)

// Sumber daftar produk untuk cache katalog
type CatalogFetcher interface {
	FetchCatalog() ([]ProductModel, error)
}

// Snapshot katalog produk di memori. Diisi ulang utuh lewat Refresh saat
// masuk halaman kasir; pencarian hanya memfilter snapshot, tidak pernah
// mengubah isinya dan tidak pernah fetch ulang.
type CatalogCache struct {
	mu       sync.Mutex
	products []ProductModel
	loaded   bool
	lastErr  error
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{}
}

// Ambil ulang seluruh daftar produk dari backend.
// Kalau gagal, snapshot lama dibuang: lebih baik error jelas daripada
// menampilkan daftar basi setengah jadi.
func (cc *CatalogCache) Refresh(fetcher CatalogFetcher) error {
	products, err := fetcher.FetchCatalog()

	cc.mu.Lock()
	defer cc.mu.Unlock()

	if err != nil {
		cc.products = nil
		cc.loaded = false
		cc.lastErr = err
		return err
	}

	cc.products = products
	cc.loaded = true
	cc.lastErr = nil
	return nil
}

// Filter snapshot dengan substring case-insensitive terhadap nama ATAU
// barcode. Query kosong mengembalikan seluruh snapshot.
func (cc *CatalogCache) Filter(query string) []ProductModel {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]ProductModel, 0, len(cc.products))
	for _, p := range cc.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Barcode), q) {
			out = append(out, p)
		}
	}
	return out
}

func (cc *CatalogCache) Loaded() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.loaded
}

func (cc *CatalogCache) Err() error {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lastErr
}

// Cari satu produk di snapshot berdasarkan id
func (cc *CatalogCache) Find(productID int) (ProductModel, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	for _, p := range cc.products {
		if p.ID == productID {
			return p, true
		}
	}
	return ProductModel{}, false
}
