package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produkTeh() ProductModel {
	return ProductModel{ID: 1, Name: "Teh Manis", Price: 10, Barcode: "8991234500017"}
}

func produkNasi() ProductModel {
	return ProductModel{ID: 2, Name: "Nasi Goreng", Price: 5, Barcode: ""}
}

func TestAddItemSameProductIncrementsQuantity(t *testing.T) {
	cart := NewCart()

	for i := 0; i < 5; i++ {
		cart.AddItem(produkTeh())
	}

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "Teh Manis", lines[0].ProductName)
}

func TestTotalIsSumOfLines(t *testing.T) {
	cart := NewCart()

	// Teh: harga 10, qty 2, extra 0. Nasi: harga 5, qty 1, extra 3.
	cart.AddItem(produkTeh())
	cart.AddItem(produkTeh())
	cart.AddItem(produkNasi())
	cart.SetExtraAmount(2, 3)

	assert.Equal(t, 28.0, cart.Total())
}

func TestSetQuantityBelowOneRejected(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())
	require.NoError(t, cart.SetQuantity(1, 4))

	err := cart.SetQuantity(1, 0)
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	err = cart.SetQuantity(1, -2)
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	// Baris tidak berubah
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestSetQuantityMissingLineIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())

	require.NoError(t, cart.SetQuantity(99, 3))
	assert.Equal(t, cart.Lines(), []CartLine{{ProductID: 1, ProductName: "Teh Manis", Price: 10, Quantity: 1}})
}

func TestRemoveItemMissingIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())
	cart.AddItem(produkNasi())

	before := cart.Lines()
	cart.RemoveItem(99)
	assert.Equal(t, before, cart.Lines())
}

func TestRemoveItemDeletesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())
	cart.AddItem(produkNasi())

	cart.RemoveItem(1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)

	// Produk yang dihapus bisa masuk lagi sebagai baris baru
	cart.AddItem(produkTeh())
	lines = cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestSetExtraAmountNegativeFlooredToZero(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())
	cart.SetExtraAmount(1, -7)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].ExtraAmount)
	assert.Equal(t, 10.0, cart.Total())
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkNasi())
	cart.AddItem(produkTeh())
	cart.AddItem(produkNasi()) // cuma nambah quantity, urutan tetap

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].ProductID)
	assert.Equal(t, 1, lines[1].ProductID)
}

func TestClearEmptiesCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(produkTeh())
	cart.AddItem(produkNasi())

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Total())

	// Keranjang tetap bisa dipakai lagi setelah dikosongkan
	cart.AddItem(produkTeh())
	assert.Len(t, cart.Lines(), 1)
}
