// Semuanya masih dalam package main
package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// =======================
// 🧩 Helper Functions
// =======================
// GetIDParam is a helper function to get the ID parameter from the URL and convert it to an integer.
func GetIDParam(c *gin.Context) (int, string, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ ID harus berupa angka"})
		return 0, "", false
	}
	return id, idStr, true
}

// ValidateRecordExistence is a helper function to check if a record exists in the database.
func ValidateRecordExistence(c *gin.Context, db *sql.DB, table string, id int) bool {
	valid, err := IsValidID(db, table, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("❌ Gagal memeriksa ID di tabel %s", table)})
		return false
	}
	if !valid {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("❌ Data %s tidak ditemukan", table)})
		return false
	}
	return true
}

// IsValidID is a helper function to check if a given ID exists in the specified table.
func IsValidID(db *sql.DB, tableName string, id int) (bool, error) {
	// List of allowed table names to prevent SQL injection
	allowedTables := map[string]bool{
		"products":  true,
		"employees": true,
		"admins":    true,
		"sales":     true,
	}

	// Check if the table name is allowed
	if !allowedTables[tableName] {
		return false, fmt.Errorf("invalid table name: %s", tableName)
	}

	// Build the query string safely using fmt.Sprintf after validation
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)", tableName)

	var exists bool
	err := db.QueryRow(query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// =========================
// 🛠️ Panel Admin
// =========================
func AdminRoutes(r *gin.Engine, db *sql.DB, store *MySQLStore) {
	// 🔐 Semua route di sini khusus admin
	admin := r.Group("/api/v1/admin")
	admin.Use(AuthMiddleware(), RoleMiddleware(RoleAdmin))
	{
		// Produk
		admin.GET("/products", func(c *gin.Context) {
			GetAllProducts(c, db)
		})
		admin.POST("/products", func(c *gin.Context) {
			CreateProduct(c, db)
		})
		admin.PUT("/products/:id", func(c *gin.Context) {
			UpdateProduct(c, db)
		})
		admin.DELETE("/products/:id", func(c *gin.Context) {
			DeleteProduct(c, db)
		})

		// Kasir / employee
		admin.GET("/employees", func(c *gin.Context) {
			GetAllEmployees(c, db)
		})
		admin.POST("/employees", func(c *gin.Context) {
			CreateEmployee(c, db)
		})
		admin.PUT("/employees/:id", func(c *gin.Context) {
			UpdateEmployee(c, db)
		})
		admin.DELETE("/employees/:id", func(c *gin.Context) {
			DeleteEmployee(c, db)
		})

		// Pengaturan kredensial admin
		admin.GET("/name", func(c *gin.Context) {
			GetAdminNameHandler(c, store)
		})
		admin.POST("/verify-password", func(c *gin.Context) {
			VerifyAdminPasswordHandler(c, store)
		})
		admin.PUT("/credentials", func(c *gin.Context) {
			UpdateAdminCredentialHandler(c, store)
		})
	}
}

// ++++++++++++++++++++++++
//
//	Product READ
//
// ++++++++++++++++++++++++
func GetAllProducts(c *gin.Context, db *sql.DB) {
	rows, err := db.Query("SELECT id, name, price, barcode FROM products ORDER BY id")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data produk"})
		return
	}
	defer rows.Close()

	var products []ProductModel
	for rows.Next() {
		var p ProductModel
		var barcode sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &barcode); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memproses data produk"})
			return
		}
		p.Barcode = barcode.String
		products = append(products, p)
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// helper function untuk products
func ValidateProductInput(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("❌ Nama produk tidak boleh kosong")
	}
	if price < 0 {
		return fmt.Errorf("❌ Harga tidak boleh negatif")
	}
	return nil
}

// barcode kosong disimpan sebagai NULL supaya UNIQUE-nya tidak bentrok
func nullableBarcode(barcode string) interface{} {
	if strings.TrimSpace(barcode) == "" {
		return nil
	}
	return barcode
}

// ++++++++++++++++++++++++
//
//	Product CREATE
//
// ++++++++++++++++++++++++
func CreateProduct(c *gin.Context, db *sql.DB) {
	var input struct {
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Barcode string  `json:"barcode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Input tidak valid"})
		return
	}
	if err := ValidateProductInput(input.Name, input.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := db.Exec("INSERT INTO products (name, price, barcode) VALUES (?, ?, ?)",
		input.Name, input.Price, nullableBarcode(input.Barcode))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menambahkan produk, barcode mungkin sudah dipakai"})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message": "✅ Produk berhasil ditambahkan",
		"data":    ProductModel{ID: int(id), Name: input.Name, Price: input.Price, Barcode: input.Barcode},
	})
}

// ++++++++++++++++++++++++
//
//	Product UPDATE
//
// ++++++++++++++++++++++++
func UpdateProduct(c *gin.Context, db *sql.DB) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}
	if !ValidateRecordExistence(c, db, "products", id) {
		return
	}

	var input struct {
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Barcode string  `json:"barcode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Input tidak valid"})
		return
	}
	if err := ValidateProductInput(input.Name, input.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := db.Exec("UPDATE products SET name = ?, price = ?, barcode = ? WHERE id = ?",
		input.Name, input.Price, nullableBarcode(input.Barcode), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengupdate produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Produk berhasil diupdate"})
}

// ++++++++++++++++++++++++
//
//	Product DELETE
//
// ++++++++++++++++++++++++
func DeleteProduct(c *gin.Context, db *sql.DB) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}
	if !ValidateRecordExistence(c, db, "products", id) {
		return
	}

	_, err := db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menghapus produk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Produk berhasil dihapus"})
}

// ++++++++++++++++++++++++
//
//	Employee READ
//
// ++++++++++++++++++++++++
func GetAllEmployees(c *gin.Context, db *sql.DB) {
	rows, err := db.Query("SELECT id, name, created_at FROM employees ORDER BY id DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data kasir"})
		return
	}
	defer rows.Close()

	var employees []EmployeeModel
	for rows.Next() {
		var e EmployeeModel
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memproses data kasir"})
			return
		}
		employees = append(employees, e)
	}

	c.JSON(http.StatusOK, gin.H{"data": employees})
}

// ++++++++++++++++++++++++
//
//	Employee CREATE
//
// ++++++++++++++++++++++++
func CreateEmployee(c *gin.Context, db *sql.DB) {
	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Name dan password wajib diisi"})
		return
	}

	// periksa panjang password
	if len(input.Password) < 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Password minimal 4 karakter"})
		return
	}
	// periksa apakah nama sudah terdaftar
	if _, found := findEmployeeByName(db, input.Name); found {
		c.JSON(http.StatusConflict, gin.H{"error": "❌ Nama kasir sudah terdaftar"})
		return
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengenkripsi password"})
		return
	}

	res, err := db.Exec("INSERT INTO employees (name, password) VALUES (?, ?)",
		input.Name, string(hashedPwd))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mendaftarkan kasir"})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message": "✅ Kasir berhasil didaftarkan",
		"data":    gin.H{"id": id, "name": input.Name},
	})
}

// ++++++++++++++++++++++++
//
//	Employee UPDATE
//
// ++++++++++++++++++++++++
func UpdateEmployee(c *gin.Context, db *sql.DB) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}
	if !ValidateRecordExistence(c, db, "employees", id) {
		return
	}

	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Name dan password wajib diisi"})
		return
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengenkripsi password"})
		return
	}

	_, err = db.Exec("UPDATE employees SET name = ?, password = ? WHERE id = ?",
		input.Name, string(hashedPwd), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengupdate kasir"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Kasir berhasil diupdate"})
}

// ++++++++++++++++++++++++
//
//	Employee DELETE
//
// ++++++++++++++++++++++++
func DeleteEmployee(c *gin.Context, db *sql.DB) {
	id, _, ok := GetIDParam(c)
	if !ok {
		return
	}
	if !ValidateRecordExistence(c, db, "employees", id) {
		return
	}

	_, err := db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menghapus kasir"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Kasir berhasil dihapus"})
}

// =================== PENGATURAN ADMIN ===================

func GetAdminNameHandler(c *gin.Context, store *MySQLStore) {
	name, err := store.GetAdminName()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil nama admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// Langkah 1: cocokkan password lama sebelum form ganti kredensial dibuka.
// Langkah ini tidak menghasilkan token apapun; password lama dikirim lagi
// di langkah 2 dan diverifikasi ulang di backend.
func VerifyAdminPasswordHandler(c *gin.Context, store *MySQLStore) {
	var input struct {
		OldPassword string `json:"old_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OldPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Password lama wajib diisi"})
		return
	}

	ok, err := store.VerifyAdminPassword(input.OldPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": ok})
}

// Langkah 2: ganti nama dan password admin
func UpdateAdminCredentialHandler(c *gin.Context, store *MySQLStore) {
	var input struct {
		OldPassword     string `json:"old_password"`
		NewName         string `json:"new_name"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.OldPassword == "" || input.NewName == "" || input.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Password lama, nama baru, dan password baru wajib diisi"})
		return
	}

	// Konfirmasi dicek lokal dulu, tidak perlu ke backend kalau beda
	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Konfirmasi password tidak sama"})
		return
	}

	ok, err := store.UpdateAdminCredential(input.OldPassword, input.NewName, input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengupdate kredensial admin"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Password lama salah"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Kredensial admin berhasil diupdate"})
}
