package services

import (
	"testing"

	"github.com/Div1912/Spice-Bite/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartLine(price string, qty int) entity.CartItem {
	p, _ := decimal.NewFromString(price)
	return entity.CartItem{UnitPrice: p, Qty: qty}
}

func TestQuoteCart(t *testing.T) {
	q := QuoteCart([]entity.CartItem{cartLine("100.00", 2)})

	assert.Equal(t, "200.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "49.00", q.DeliveryFee.StringFixed(2))
	assert.Equal(t, "10.00", q.Tax.StringFixed(2))
	assert.Equal(t, "259.00", q.Total.StringFixed(2))
}

func TestQuoteCartFormula(t *testing.T) {
	items := []entity.CartItem{
		cartLine("299.99", 1),
		cartLine("149.99", 3),
		cartLine("89.99", 2),
	}
	q := QuoteCart(items)

	// total must always equal subtotal + 49.00 + 5% of subtotal
	want := q.Subtotal.Add(q.DeliveryFee).Add(q.Tax)
	assert.True(t, q.Total.Equal(want), "total %s != %s", q.Total, want)
	assert.True(t, q.Tax.Equal(q.Subtotal.Mul(decimal.NewFromFloat(0.05)).Round(2)))
	assert.Equal(t, "929.94", q.Subtotal.StringFixed(2))
}

func TestQuoteCartEmpty(t *testing.T) {
	q := QuoteCart(nil)

	assert.Equal(t, "0.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", q.Tax.StringFixed(2))
	assert.Equal(t, "49.00", q.Total.Sub(q.Subtotal).Sub(q.Tax).StringFixed(2))
}
