package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func InitDB() (*sql.DB, error) {
	err := godotenv.Load() // Load .env file if present
	if err != nil {
		log.Println("No .env file found or error loading .env:", err)
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if user == "" || pass == "" || host == "" || name == "" || port == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	log.Println("✅ Connected to database")
	return db, nil
}

// Buat semua tabel yang dibutuhkan kalau belum ada
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE NOT NULL,
			barcode VARCHAR(64) NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			employee_id INT NOT NULL,
			employee_name VARCHAR(100) NOT NULL,
			ref CHAR(36) NOT NULL,
			total DOUBLE NOT NULL DEFAULT 0,
			timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			sale_id BIGINT NOT NULL,
			product_id INT NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL,
			price DOUBLE NOT NULL,
			extra_amount DOUBLE NOT NULL DEFAULT 0,
			FOREIGN KEY (sale_id) REFERENCES sales(id) ON DELETE CASCADE,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Kalau tabel admins masih kosong, buat admin default (name: admin, password: admin).
// Wajib diganti lewat halaman pengaturan setelah login pertama.
func SeedDefaultAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT INTO admins (name, password) VALUES (?, ?)", "admin", string(hashedPwd))
	if err != nil {
		return err
	}

	log.Println("✅ Admin default dibuat (name: admin)")
	return nil
}
