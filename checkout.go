package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Kontrak backend yang dipakai checkout. Dipisah jadi interface supaya
// urutan panggilan dan perilaku gagalnya bisa diuji tanpa database.
type SaleStore interface {
	CreateSaleHeader(employeeID int, employeeName, ref string) (int64, error)
	AddSaleLine(saleID int64, productID int, productName string, quantity int, price, extraAmount float64) error
	FinalizeSale(saleID int64) error
}

var (
	ErrCartEmpty  = errors.New("keranjang kosong, tidak ada yang bisa dijual")
	ErrNoOperator = errors.New("tidak ada kasir yang login")
)

type CheckoutResult struct {
	SaleID int64   `json:"sale_id"`
	Ref    string  `json:"ref"`
	Total  float64 `json:"total"`
}

// Checkout mengubah isi keranjang jadi satu transaksi penjualan:
// satu insert header lalu satu insert per baris, berurutan sesuai urutan
// masuk keranjang, tanpa transaksi database yang menaungi keduanya.
//
// Kalau salah satu insert baris gagal, baris yang sudah masuk TIDAK
// dihapus dan tidak ada retry otomatis; keranjang dibiarkan utuh supaya
// kasir bisa mengulang checkout. Pengulangan membuat header baru dengan
// ref berbeda, jadi sisa transaksi setengah jadi tetap kelihatan di data
// lewat ref-nya. Keranjang baru dikosongkan setelah semuanya sukses.
func Checkout(store SaleStore, cart *Cart, sess Session) (*CheckoutResult, error) {
	// Validasi dulu, sebelum ada satupun panggilan ke backend
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if !sess.HasOperator() {
		return nil, ErrNoOperator
	}

	ref := uuid.NewString()
	lines := cart.Lines()
	total := cart.Total()

	saleID, err := store.CreateSaleHeader(sess.OperatorID, sess.OperatorName, ref)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat header penjualan: %w", err)
	}

	for _, line := range lines {
		err := store.AddSaleLine(saleID, line.ProductID, line.ProductName, line.Quantity, line.Price, line.ExtraAmount)
		if err != nil {
			log.Printf("❌ Gagal menyimpan item penjualan (sale %d, ref %s, produk %d): %v\n",
				saleID, ref, line.ProductID, err)
			return nil, fmt.Errorf("gagal menyimpan item penjualan: %w", err)
		}
	}

	if err := store.FinalizeSale(saleID); err != nil {
		log.Printf("❌ Gagal finalisasi penjualan (sale %d, ref %s): %v\n", saleID, ref, err)
		return nil, fmt.Errorf("gagal finalisasi penjualan: %w", err)
	}

	cart.Clear()
	log.Printf("✅ Penjualan tersimpan (sale %d, ref %s, total %.2f)\n", saleID, ref, total)

	return &CheckoutResult{SaleID: saleID, Ref: ref, Total: total}, nil
}
