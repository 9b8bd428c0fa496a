package services

import (
	"warmindo-pos/models"
)

// CartItem is one prospective order line. Unit price and option deltas are
// snapshots taken when the item entered the cart, not live menu references.
type CartItem struct {
	Menu_id    string              `json:"menu_id"`
	Name       string              `json:"name"`
	Unit_price float64             `json:"unit_price"`
	Qty        int                 `json:"qty"`
	Note       string              `json:"note"`
	Options    []models.ItemOption `json:"options"`
}

// LineTotal folds the option deltas into the effective unit price.
func (it CartItem) LineTotal() float64 {
	unit := it.Unit_price
	for _, opt := range it.Options {
		unit += opt.Price_delta
	}
	return unit * float64(it.Qty)
}

// Cart is the client-local, ephemeral collection of line items built up
// before submission. It is owned by a single caller and never persisted.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Totals carries the money breakdown for a cart. Discount, tax and service
// fee exist for reporting but are computed as zero at submission time, so
// the grand total equals the subtotal.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	Discount_total float64 `json:"discount_total"`
	After_discount float64 `json:"after_discount"`
	Tax_amount     float64 `json:"tax_amount"`
	Service_fee    float64 `json:"service_fee"`
	Grand_total    float64 `json:"grand_total"`
}

// Add appends the item, merging into an existing line for the same menu id
// when the note matches. Qty is clamped to a minimum of 1.
func (c *Cart) Add(item CartItem) {
	if item.Qty < 1 {
		item.Qty = 1
	}
	for i := range c.Items {
		if c.Items[i].Menu_id == item.Menu_id && c.Items[i].Note == item.Note && len(item.Options) == 0 && len(c.Items[i].Options) == 0 {
			c.Items[i].Qty += item.Qty
			return
		}
	}
	c.Items = append(c.Items, item)
}

func (c *Cart) Increment(idx int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	c.Items[idx].Qty++
}

// Decrement lowers the quantity but never below 1; dropping a line entirely
// goes through Remove.
func (c *Cart) Decrement(idx int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	if c.Items[idx].Qty > 1 {
		c.Items[idx].Qty--
	}
}

func (c *Cart) Remove(idx int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.LineTotal()
	}
	return sum
}

func (c *Cart) ComputeTotals() Totals {
	subtotal := c.Subtotal()
	return Totals{
		Subtotal:       subtotal,
		After_discount: subtotal,
		Grand_total:    subtotal,
	}
}
