package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) newCartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			header(a.io, "Cart")

			cart, q, err := a.deps.Shop.Quote(cmd.Context())
			if err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				a.io.Println("Your cart is empty.")
				return nil
			}

			printCart(a.io, cart)
			a.io.Printf("Total: $%s\n", q.Subtotal)
			a.io.Println()
			a.io.Println("Run 'storefront checkout --address \"...\"' to place the order.")
			return nil
		},
	}

	cmd.AddCommand(a.newCartAddCommand(), a.newCartRemoveCommand(), a.newCartUpdateCommand())
	return cmd
}

func (a *App) newCartAddCommand() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			if err := a.deps.Shop.AddToCart(cmd.Context(), id, quantity); err != nil {
				return err
			}
			a.io.Println("✓ Product added to cart!")
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")
	return cmd
}

func (a *App) newCartRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			id, err := parseID(args[0], "item id")
			if err != nil {
				return err
			}

			if err := a.deps.Shop.RemoveFromCart(cmd.Context(), id); err != nil {
				return err
			}
			a.io.Println("✓ Item removed from cart.")
			return nil
		},
	}
}

func (a *App) newCartUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <item-id> <quantity>",
		Short: "Change the quantity of a cart item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			id, err := parseID(args[0], "item id")
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}

			if err := a.deps.Shop.UpdateCartItem(cmd.Context(), id, quantity); err != nil {
				return err
			}
			a.io.Printf("✓ Quantity updated to %d.\n", quantity)
			return nil
		},
	}
}
