package main

import (
	"errors"
	"sync"
)

var ErrQuantityInvalid = errors.New("quantity minimal 1")

// Satu baris pesanan di keranjang, dengan snapshot nama dan harga produk
type CartLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ExtraAmount float64 `json:"extra_amount"` // tambahan harga per unit, tidak pernah negatif
}

// Keranjang stasiun kasir. Maksimal satu baris per produk;
// menambah produk yang sama menaikkan quantity, bukan menduplikasi baris.
// Handler gin jalan paralel, jadi semua akses lewat mutex.
type Cart struct {
	mu    sync.Mutex
	lines []*CartLine       // urutan masuk, untuk tampilan
	index map[int]*CartLine // product_id -> baris
}

func NewCart() *Cart {
	return &Cart{index: make(map[int]*CartLine)}
}

// Tambah produk ke keranjang. Selalu berhasil: baris yang sudah ada
// quantity-nya naik 1, baris baru mulai dari quantity 1 tanpa extra.
func (ct *Cart) AddItem(p ProductModel) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if line, ok := ct.index[p.ID]; ok {
		line.Quantity++
		return
	}

	line := &CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    1,
	}
	ct.lines = append(ct.lines, line)
	ct.index[p.ID] = line
}

// Hapus baris produk. No-op kalau produknya tidak ada di keranjang.
func (ct *Cart) RemoveItem(productID int) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if _, ok := ct.index[productID]; !ok {
		return
	}
	delete(ct.index, productID)
	for i, line := range ct.lines {
		if line.ProductID == productID {
			ct.lines = append(ct.lines[:i], ct.lines[i+1:]...)
			break
		}
	}
}

// Ganti quantity sebuah baris. Quantity di bawah 1 ditolak dan baris
// dibiarkan apa adanya; menghapus item harus lewat RemoveItem.
func (ct *Cart) SetQuantity(productID, quantity int) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()

	if line, ok := ct.index[productID]; ok {
		line.Quantity = quantity
	}
	return nil
}

// Set tambahan harga per unit. Nilai negatif dipatok ke 0.
func (ct *Cart) SetExtraAmount(productID int, amount float64) {
	if amount < 0 {
		amount = 0
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()

	if line, ok := ct.index[productID]; ok {
		line.ExtraAmount = amount
	}
}

// Total selalu dihitung ulang dari isi baris, tidak pernah di-cache
func (ct *Cart) Total() float64 {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	var total float64
	for _, line := range ct.lines {
		total += (line.Price + line.ExtraAmount) * float64(line.Quantity)
	}
	return total
}

// Kosongkan keranjang. Hanya dipanggil setelah checkout sukses penuh.
func (ct *Cart) Clear() {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	ct.lines = nil
	ct.index = make(map[int]*CartLine)
}

// Copy isi keranjang sesuai urutan masuk
func (ct *Cart) Lines() []CartLine {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	out := make([]CartLine, 0, len(ct.lines))
	for _, line := range ct.lines {
		out = append(out, *line)
	}
	return out
}

func (ct *Cart) IsEmpty() bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return len(ct.lines) == 0
}
