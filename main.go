// --- main.go ---
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	// Secret untuk token sesi harus ada sebelum apapun jalan
	LoadJWTSecret()

	// Koneksi ke database
	db, err := InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal terhubung ke database: %v", err)
	}

	// Buat tabel dan admin default kalau belum ada
	if err := EnsureSchema(db); err != nil {
		log.Fatalf("❌ Gagal menyiapkan skema database: %v", err)
	}
	if err := SeedDefaultAdmin(db); err != nil {
		log.Fatalf("❌ Gagal membuat admin default: %v", err)
	}

	store := NewMySQLStore(db)

	// Pulihkan sesi stasiun dari file token, restart tidak memaksa login ulang
	sess := NewSessionStore(SessionFilePath())
	sess.Rehydrate()

	// State stasiun: satu katalog, satu keranjang
	catalog := NewCatalogCache()
	cart := NewCart()

	r := gin.Default()

	// Setup Routes langsung dari fungsi yang sudah dibuat
	AuthRoutes(r, store, sess)
	PosRoutes(r, store, sess, catalog, cart)
	AdminRoutes(r, db, store)
	ReportRoutes(r, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Menjalankan server
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
