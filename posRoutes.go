package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// =========================
// 🧾 Halaman Kasir (POS)
// =========================
func PosRoutes(r *gin.Engine, store *MySQLStore, sess *SessionStore, catalog *CatalogCache, cart *Cart) {
	// 🔐 Katalog boleh dibaca admin maupun kasir
	pos := r.Group("/api/v1")
	pos.Use(AuthMiddleware(), RoleMiddleware(RoleAdmin, RoleEmployee))
	{
		// Dipanggil sekali saat masuk halaman kasir
		pos.POST("/catalog/refresh", func(c *gin.Context) {
			RefreshCatalog(c, store, catalog)
		})
		// Dipanggil tiap query berubah; hanya memfilter snapshot
		pos.GET("/products", func(c *gin.Context) {
			SearchProducts(c, catalog)
		})
	}

	// 🔐 Keranjang dan checkout khusus kasir
	kasir := r.Group("/api/v1")
	kasir.Use(AuthMiddleware(), RoleMiddleware(RoleEmployee))
	{
		kasir.GET("/cart", func(c *gin.Context) {
			GetCart(c, cart)
		})
		kasir.POST("/cart/items", func(c *gin.Context) {
			AddCartItem(c, catalog, cart)
		})
		kasir.PATCH("/cart/items/:id", func(c *gin.Context) {
			UpdateCartItem(c, cart)
		})
		kasir.DELETE("/cart/items/:id", func(c *gin.Context) {
			RemoveCartItem(c, cart)
		})
		kasir.POST("/checkout", func(c *gin.Context) {
			HandleCheckout(c, store, sess, cart)
		})
	}
}

// ++++++++++++++++++++++++
//
//	Katalog REFRESH
//
// ++++++++++++++++++++++++
func RefreshCatalog(c *gin.Context, store *MySQLStore, catalog *CatalogCache) {
	if err := catalog.Refresh(store); err != nil {
		log.Printf("❌ Gagal mengambil katalog: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil daftar produk"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Katalog dimuat",
		"data":    catalog.Filter(""),
	})
}

// ++++++++++++++++++++++++
//
//	Katalog SEARCH
//
// ++++++++++++++++++++++++
func SearchProducts(c *gin.Context, catalog *CatalogCache) {
	if !catalog.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "❌ Katalog belum dimuat, refresh dulu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": catalog.Filter(c.Query("q"))})
}

// ++++++++++++++++++++++++
//
//	Keranjang READ
//
// ++++++++++++++++++++++++
func GetCart(c *gin.Context, cart *Cart) {
	c.JSON(http.StatusOK, gin.H{
		"data":  cart.Lines(),
		"total": cart.Total(),
	})
}

// ++++++++++++++++++++++++
//
//	Keranjang ADD ITEM
//
// ++++++++++++++++++++++++
func AddCartItem(c *gin.Context, catalog *CatalogCache, cart *Cart) {
	var input struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ product_id harus diisi"})
		return
	}

	// Produk diambil dari snapshot katalog, bukan query baru ke database
	product, found := catalog.Find(input.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Produk tidak ditemukan di katalog"})
		return
	}

	cart.AddItem(product)
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Item berhasil ditambahkan ke keranjang",
		"data":    cart.Lines(),
		"total":   cart.Total(),
	})
}

// ++++++++++++++++++++++++
//
//	Keranjang UPDATE ITEM
//
// ++++++++++++++++++++++++
func UpdateCartItem(c *gin.Context, cart *Cart) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input struct {
		Quantity    *int     `json:"quantity"`
		ExtraAmount *float64 `json:"extra_amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || (input.Quantity == nil && input.ExtraAmount == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Isi quantity atau extra_amount"})
		return
	}

	if input.Quantity != nil {
		if err := cart.SetQuantity(id, *input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Quantity minimal 1, hapus item kalau tidak jadi"})
			return
		}
	}
	if input.ExtraAmount != nil {
		cart.SetExtraAmount(id, *input.ExtraAmount)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Item berhasil diupdate",
		"data":    cart.Lines(),
		"total":   cart.Total(),
	})
}

// ++++++++++++++++++++++++
//
//	Keranjang REMOVE ITEM
//
// ++++++++++++++++++++++++
func RemoveCartItem(c *gin.Context, cart *Cart) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}

	cart.RemoveItem(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "🗑️ Item dihapus dari keranjang",
		"data":    cart.Lines(),
		"total":   cart.Total(),
	})
}

// ++++++++++++++++++++++++
//
//	CHECKOUT
//
// ++++++++++++++++++++++++
func HandleCheckout(c *gin.Context, store *MySQLStore, sess *SessionStore, cart *Cart) {
	result, err := Checkout(store, cart, sess.Current())
	if err != nil {
		switch {
		case errors.Is(err, ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "⚠️ Keranjang kosong, tidak ada yang bisa dijual"})
		case errors.Is(err, ErrNoOperator):
			c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Tidak ada kasir yang login"})
		default:
			// Keranjang tidak dikosongkan, kasir bisa ulang checkout
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Checkout gagal, silakan coba lagi"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Penjualan berhasil disimpan",
		"data":    result,
	})
}
