package services

import (
	"github.com/Div1912/Spice-Bite/entity"
	"github.com/shopspring/decimal"
)

// Flat delivery fee and tax rate applied to every order.
var (
	DeliveryFee = decimal.NewFromInt(49)
	TaxRate     = decimal.NewFromFloat(0.05)
)

// Quote is the single pricing breakdown used by the cart view, checkout
// and order detail alike.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteCart prices a set of cart lines: subtotal = Σ price×qty,
// tax = 5% of subtotal, total = subtotal + 49.00 + tax. All figures are
// rounded to two decimal places.
func QuoteCart(items []entity.CartItem) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	subtotal = subtotal.Round(2)
	fee := DeliveryFee.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax).Round(2),
	}
}
