package services

import (
	"testing"

	"warmindo-pos/models"

	"github.com/stretchr/testify/assert"
)

func TestCartAddMergesSameLine(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Name: "Indomie Goreng", Unit_price: 12000, Qty: 1})
	cart.Add(CartItem{Menu_id: "m1", Name: "Indomie Goreng", Unit_price: 12000, Qty: 2})

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty)
}

func TestCartAddKeepsDistinctNotesApart(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1})
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1, Note: "pedas"})

	assert.Len(t, cart.Items, 2)
}

func TestCartAddKeepsOptionLinesApart(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1})
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1, Options: []models.ItemOption{
		{Option_id: "o1", Name: "extra telur", Price_delta: 3000},
	}})

	assert.Len(t, cart.Items, 2)
}

func TestCartAddClampsQty(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 0})
	assert.Equal(t, 1, cart.Items[0].Qty)
}

func TestCartDecrementNeverBelowOne(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 2})

	cart.Decrement(0)
	assert.Equal(t, 1, cart.Items[0].Qty)

	cart.Decrement(0)
	assert.Equal(t, 1, cart.Items[0].Qty, "line stays in the cart at qty 1")
	assert.Len(t, cart.Items, 1)
}

func TestCartRemoveDropsTheLine(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1})
	cart.Add(CartItem{Menu_id: "m2", Unit_price: 8000, Qty: 1})

	cart.Remove(0)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "m2", cart.Items[0].Menu_id)

	cart.Remove(5)
	assert.Len(t, cart.Items, 1, "out of range remove is a no-op")
}

func TestCartSubtotal(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 20000, Qty: 2})
	cart.Add(CartItem{Menu_id: "m2", Unit_price: 15000, Qty: 1})

	assert.Equal(t, 55000.0, cart.Subtotal())
}

func TestCartSubtotalIncludesOptionDeltas(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 2, Options: []models.ItemOption{
		{Option_id: "o1", Name: "extra telur", Price_delta: 3000},
	}})

	assert.Equal(t, 30000.0, cart.Subtotal())
}

func TestComputeTotalsGrandEqualsSubtotal(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 20000, Qty: 2})
	cart.Add(CartItem{Menu_id: "m2", Unit_price: 15000, Qty: 1})

	totals := cart.ComputeTotals()

	assert.Equal(t, 55000.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount_total)
	assert.Equal(t, 0.0, totals.Tax_amount)
	assert.Equal(t, 0.0, totals.Service_fee)
	assert.Equal(t, 55000.0, totals.After_discount)
	assert.Equal(t, 55000.0, totals.Grand_total)
}

func TestCartClear(t *testing.T) {
	var cart Cart
	cart.Add(CartItem{Menu_id: "m1", Unit_price: 12000, Qty: 1})
	cart.Clear()
	assert.True(t, cart.Empty())
}
