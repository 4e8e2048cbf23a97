package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/storefront/internal/client/shop"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func (a *App) newCheckoutCommand() *cobra.Command {
	var (
		address string
		payment string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			header(a.io, "Checkout")

			cart, q, err := a.deps.Shop.Quote(cmd.Context())
			if err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return shop.ErrEmptyCart
			}

			for _, item := range cart.Items {
				a.io.Printf("%s x %d  $%s\n", item.Product.Name, item.Quantity, item.Subtotal)
			}
			a.io.Println()
			printQuote(a.io, q)
			a.io.Println()

			order, err := a.deps.Shop.Checkout(cmd.Context(), shop.CheckoutInput{
				ShippingAddress: address,
				PaymentMethod:   pkgapi.PaymentMethod(payment),
			})
			if err != nil {
				return err
			}

			a.io.Println("✓ Order placed successfully!")
			printOrder(a.io, order)
			return nil
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "shipping address (required)")
	cmd.Flags().StringVarP(&payment, "payment", "p", string(pkgapi.PaymentCashOnDelivery),
		"payment method: "+string(pkgapi.PaymentCashOnDelivery)+" or "+string(pkgapi.PaymentCard))
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
