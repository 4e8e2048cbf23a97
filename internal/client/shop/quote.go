package shop

import (
	"fmt"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

const (
	// FreeShippingOver - заказы дороже этой суммы доставляются бесплатно
	FreeShippingOver Money = 100_00
	// ShippingFee стоимость доставки для остальных заказов
	ShippingFee Money = 10_00
	// TaxPercent налог с подытога
	TaxPercent = 8
)

// Quote is the checkout summary shown before an order is placed.
// The server computes the authoritative total when the order is created.
type Quote struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Total    Money
	Items    int
}

// FreeShipping reports whether the shipping fee was waived
func (q Quote) FreeShipping() bool {
	return q.Shipping == 0
}

// QuoteCart суммирует позиции корзины и считает доставку и налог
func QuoteCart(cart *pkgapi.Cart) (Quote, error) {
	var q Quote
	if cart == nil {
		return q, nil
	}

	for _, item := range cart.Items {
		subtotal, err := ParseMoney(item.Subtotal)
		if err != nil {
			return Quote{}, fmt.Errorf("cart item %d: %w", item.ID, err)
		}
		q.Subtotal += subtotal
		q.Items += item.Quantity
	}

	q.Shipping = ShippingFee
	if q.Subtotal > FreeShippingOver {
		q.Shipping = 0
	}
	q.Tax = q.Subtotal.percent(TaxPercent)
	q.Total = q.Subtotal + q.Shipping + q.Tax
	return q, nil
}
