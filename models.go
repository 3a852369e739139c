package main

import "time"

type ProductModel struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Barcode string  `json:"barcode"` // boleh kosong kalau produk tidak punya barcode
}

type AdminModel struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Password string `json:"-"` // hashed password
}

type EmployeeModel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"` // hashed password
	CreatedAt time.Time `json:"created_at"`
}

type SaleModel struct {
	ID           int64     `json:"id"`
	EmployeeID   int       `json:"employee_id"`
	EmployeeName string    `json:"employee_name"` // snapshot nama kasir saat transaksi
	Ref          string    `json:"ref"`           // referensi unik per percobaan checkout
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

type SaleItemModel struct {
	ID          int64   `json:"id"`
	SaleID      int64   `json:"sale_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"` // snapshot nama produk saat transaksi
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"` // snapshot harga satuan saat transaksi
	ExtraAmount float64 `json:"extra_amount"`
}

// Baris detail untuk laporan penjualan
type SaleDetailModel struct {
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	EmployeeName string    `json:"employee_name"`
	TotalPrice   float64   `json:"total_price"`
	Timestamp    time.Time `json:"timestamp"`
}

type SalesReportModel struct {
	TotalSales        float64           `json:"total_sales"`
	TotalTransactions int64             `json:"total_transactions"`
	Sales             []SaleDetailModel `json:"sales"`
}
