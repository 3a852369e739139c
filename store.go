package main

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
)

// Implementasi kontrak backend di atas MySQL
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// =================== KATALOG ===================

func (s *MySQLStore) FetchCatalog() ([]ProductModel, error) {
	rows, err := s.db.Query("SELECT id, name, price, barcode FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []ProductModel
	for rows.Next() {
		var p ProductModel
		var barcode sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &barcode); err != nil {
			return nil, err
		}
		p.Barcode = barcode.String
		products = append(products, p)
	}
	return products, rows.Err()
}

// =================== AUTENTIKASI ===================

func (s *MySQLStore) AuthenticateAdmin(name, password string) (bool, error) {
	var hashed string
	err := s.db.QueryRow("SELECT password FROM admins WHERE name = ?", name).Scan(&hashed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil, nil
}

// Hasilnya identitas kasir, atau found=false kalau nama/password salah
func (s *MySQLStore) AuthenticateEmployee(name, password string) (EmployeeModel, bool, error) {
	var e EmployeeModel
	err := s.db.QueryRow("SELECT id, name, password, created_at FROM employees WHERE name = ?", name).
		Scan(&e.ID, &e.Name, &e.Password, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return EmployeeModel{}, false, nil
	}
	if err != nil {
		return EmployeeModel{}, false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)) != nil {
		return EmployeeModel{}, false, nil
	}
	return e, true, nil
}

// =================== KREDENSIAL ADMIN ===================

// Cocokkan password lama dengan admin utama (id 1)
func (s *MySQLStore) VerifyAdminPassword(oldPassword string) (bool, error) {
	var hashed string
	err := s.db.QueryRow("SELECT password FROM admins WHERE id = 1").Scan(&hashed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(oldPassword)) == nil, nil
}

// Ganti nama dan password admin sekaligus. Password lama diverifikasi lagi
// di sini, karena langkah verifikasi di layar pengaturan tidak menghasilkan
// token apapun yang bisa dipegang di antara dua langkah itu.
func (s *MySQLStore) UpdateAdminCredential(oldPassword, newName, newPassword string) (bool, error) {
	ok, err := s.VerifyAdminPassword(oldPassword)
	if err != nil || !ok {
		return false, err
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	_, err = s.db.Exec("UPDATE admins SET name = ?, password = ? WHERE id = 1", newName, string(hashedPwd))
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MySQLStore) GetAdminName() (string, error) {
	var name string
	err := s.db.QueryRow("SELECT name FROM admins WHERE id = 1").Scan(&name)
	return name, err
}

// =================== PENJUALAN ===================

func (s *MySQLStore) CreateSaleHeader(employeeID int, employeeName, ref string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO sales (employee_id, employee_name, ref, total) VALUES (?, ?, ?, 0)",
		employeeID, employeeName, ref)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *MySQLStore) AddSaleLine(saleID int64, productID int, productName string, quantity int, price, extraAmount float64) error {
	_, err := s.db.Exec(`
		INSERT INTO sale_items (sale_id, product_id, product_name, quantity, price, extra_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, saleID, productID, productName, quantity, price, extraAmount)
	return err
}

// Hitung ulang total header dari jumlah item-nya
func (s *MySQLStore) FinalizeSale(saleID int64) error {
	_, err := s.db.Exec(`
		UPDATE sales
		SET total = (
			SELECT COALESCE(SUM((price + extra_amount) * quantity), 0)
			FROM sale_items WHERE sale_id = ?
		)
		WHERE id = ?
	`, saleID, saleID)
	return err
}

// =================== LAPORAN ===================

// Laporan penjualan dengan rentang tanggal opsional.
// Tanpa rentang, semua transaksi ikut dihitung.
func (s *MySQLStore) FetchReport(startDate, endDate string) (SalesReportModel, error) {
	if startDate == "" {
		startDate = "1970-01-01"
	}
	if endDate == "" {
		endDate = "9999-12-31"
	}

	var report SalesReportModel
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM((si.price + si.extra_amount) * si.quantity), 0) AS total_sales,
		       COUNT(DISTINCT si.sale_id) AS total_transactions
		FROM sale_items si
		JOIN sales sl ON si.sale_id = sl.id
		WHERE DATE(sl.timestamp) BETWEEN ? AND ?
	`, startDate, endDate).Scan(&report.TotalSales, &report.TotalTransactions)
	if err != nil {
		return SalesReportModel{}, err
	}

	rows, err := s.db.Query(`
		SELECT si.product_name, si.quantity, sl.employee_name,
		       ((si.price + si.extra_amount) * si.quantity) AS total_price, sl.timestamp
		FROM sale_items si
		JOIN sales sl ON si.sale_id = sl.id
		WHERE DATE(sl.timestamp) BETWEEN ? AND ?
		ORDER BY sl.timestamp DESC
	`, startDate, endDate)
	if err != nil {
		return SalesReportModel{}, err
	}
	defer rows.Close()

	report.Sales = []SaleDetailModel{}
	for rows.Next() {
		var d SaleDetailModel
		if err := rows.Scan(&d.ProductName, &d.Quantity, &d.EmployeeName, &d.TotalPrice, &d.Timestamp); err != nil {
			return SalesReportModel{}, err
		}
		report.Sales = append(report.Sales, d)
	}
	return report, rows.Err()
}

// Daftar seluruh item penjualan untuk halaman admin, terbaru dulu
func (s *MySQLStore) FetchAllSales() ([]SaleDetailModel, error) {
	rows, err := s.db.Query(`
		SELECT si.product_name, si.quantity, sl.employee_name,
		       ((si.price + si.extra_amount) * si.quantity) AS total_price, sl.timestamp
		FROM sale_items si
		JOIN sales sl ON si.sale_id = sl.id
		ORDER BY sl.timestamp DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []SaleDetailModel
	for rows.Next() {
		var d SaleDetailModel
		if err := rows.Scan(&d.ProductName, &d.Quantity, &d.EmployeeName, &d.TotalPrice, &d.Timestamp); err != nil {
			return nil, err
		}
		sales = append(sales, d)
	}
	return sales, rows.Err()
}

// =================== DATABASE HELPER ===================

func findEmployeeByName(db *sql.DB, name string) (EmployeeModel, bool) {
	var e EmployeeModel
	err := db.QueryRow("SELECT id, name, created_at FROM employees WHERE name = ?", name).
		Scan(&e.ID, &e.Name, &e.CreatedAt)
	return e, err == nil
}

