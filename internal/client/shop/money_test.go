package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12.50", want: 1250},
		{in: "12.5", want: 1250},
		{in: "12", want: 1200},
		{in: "0.99", want: 99},
		{in: ".5", want: 50},
		{in: " 7.05 ", want: 705},
		{in: "-3.10", want: -310},
		{in: "", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "12.05", Money(1205).String())
	assert.Equal(t, "-0.50", Money(-50).String())
	assert.Equal(t, "1000.00", Money(100000).String())
}

func cartOf(subtotals ...string) *pkgapi.Cart {
	cart := &pkgapi.Cart{}
	for i, st := range subtotals {
		cart.Items = append(cart.Items, pkgapi.CartItem{ID: int64(i + 1), Quantity: 1, Subtotal: st})
	}
	return cart
}

func TestQuoteCart(t *testing.T) {
	tests := []struct {
		name         string
		cart         *pkgapi.Cart
		wantSubtotal string
		wantShipping string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "small order pays shipping",
			cart:         cartOf("20.00", "30.00"),
			wantSubtotal: "50.00",
			wantShipping: "10.00",
			wantTax:      "4.00",
			wantTotal:    "64.00",
		},
		{
			name:         "exactly threshold still pays shipping",
			cart:         cartOf("100.00"),
			wantSubtotal: "100.00",
			wantShipping: "10.00",
			wantTax:      "8.00",
			wantTotal:    "118.00",
		},
		{
			name:         "above threshold ships free",
			cart:         cartOf("60.00", "40.01"),
			wantSubtotal: "100.01",
			wantShipping: "0.00",
			wantTax:      "8.00",
			wantTotal:    "108.01",
		},
		{
			name:         "tax rounds half up",
			cart:         cartOf("0.19"),
			wantSubtotal: "0.19",
			wantShipping: "10.00",
			wantTax:      "0.02",
			wantTotal:    "10.21",
		},
		{
			name:         "empty cart",
			cart:         &pkgapi.Cart{},
			wantSubtotal: "0.00",
			wantShipping: "10.00",
			wantTax:      "0.00",
			wantTotal:    "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := QuoteCart(tt.cart)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSubtotal, q.Subtotal.String())
			assert.Equal(t, tt.wantShipping, q.Shipping.String())
			assert.Equal(t, tt.wantTax, q.Tax.String())
			assert.Equal(t, tt.wantTotal, q.Total.String())
			assert.Equal(t, q.Shipping == 0, q.FreeShipping())
		})
	}
}

func TestQuoteCart_CountsQuantities(t *testing.T) {
	cart := &pkgapi.Cart{Items: []pkgapi.CartItem{
		{ID: 1, Quantity: 2, Subtotal: "3.00"},
		{ID: 2, Quantity: 3, Subtotal: "4.50"},
	}}
	q, err := QuoteCart(cart)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Items)
}

func TestQuoteCart_BadSubtotal(t *testing.T) {
	_, err := QuoteCart(cartOf("10.00", "n/a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart item 2")

	q, err := QuoteCart(nil)
	require.NoError(t, err)
	assert.Equal(t, Quote{}, q)
}
