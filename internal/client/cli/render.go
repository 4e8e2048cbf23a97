package cli

import (
	"sort"
	"strconv"

	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/shop"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func header(out iocli.IO, title string) {
	out.Printf("=== %s ===\n", title)
	out.Println()
}

func printProduct(out iocli.IO, n int, p *pkgapi.Product) {
	out.Printf("%d. %s\n", n, p.Name)
	out.Printf("   ID:    %d\n", p.ID)
	out.Printf("   Price: $%s\n", p.Price)
	if label := p.CategoryLabel(); label != "" {
		out.Printf("   Category: %s\n", label)
	}
	if p.InStock != nil && !*p.InStock {
		out.Println("   Out of stock")
	}
	out.Println()
}

func printCart(out iocli.IO, cart *pkgapi.Cart) {
	for i, item := range cart.Items {
		out.Printf("%d. %s x %d\n", i+1, item.Product.Name, item.Quantity)
		out.Printf("   Item ID:  %d\n", item.ID)
		out.Printf("   Price:    $%s\n", item.Product.Price)
		out.Printf("   Subtotal: $%s\n", item.Subtotal)
		out.Println()
	}
}

func printQuote(out iocli.IO, q shop.Quote) {
	out.Printf("Subtotal: $%s\n", q.Subtotal)
	if q.FreeShipping() {
		out.Println("Shipping: Free")
	} else {
		out.Printf("Shipping: $%s\n", q.Shipping)
	}
	out.Printf("Tax (%d%%): $%s\n", shop.TaxPercent, q.Tax)
	out.Printf("Total:    $%s\n", q.Total)
}

func printOrder(out iocli.IO, o *pkgapi.Order) {
	out.Printf("Order %s\n", orderLabel(o))
	if o.Status != "" {
		out.Printf("   Status:  %s\n", o.Status)
	}
	if o.Total != "" {
		out.Printf("   Total:   $%s\n", o.Total)
	}
	if o.CreatedAt != "" {
		out.Printf("   Placed:  %s\n", o.CreatedAt)
	}
	if o.PaymentMethod != "" {
		out.Printf("   Payment: %s\n", paymentLabel(o.PaymentMethod))
	}
	if o.ShippingAddress != "" {
		out.Printf("   Ship to: %s\n", o.ShippingAddress)
	}
}

func orderLabel(o *pkgapi.Order) string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return "#" + strconv.FormatInt(o.ID, 10)
}

func paymentLabel(m pkgapi.PaymentMethod) string {
	switch m {
	case pkgapi.PaymentCashOnDelivery:
		return "Cash on Delivery"
	case pkgapi.PaymentCard:
		return "Credit/Debit Card"
	default:
		return string(m)
	}
}
