package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newOrdersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			header(a.io, "Orders")

			orders, err := a.deps.Shop.Orders(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				a.io.Println("You have no orders yet.")
				return nil
			}

			a.io.Printf("Found %d order(s):\n", len(orders))
			a.io.Println()
			for i := range orders {
				printOrder(a.io, &orders[i])
				if orders[i].ItemsCount > 0 {
					a.io.Printf("   Items:   %d\n", orders[i].ItemsCount)
				}
				a.io.Println()
			}
			return nil
		},
	}
}

func (a *App) newOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Show order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.deps.Session.Current().Authenticated {
				return ErrNotAuthenticated
			}
			id, err := parseID(args[0], "order id")
			if err != nil {
				return err
			}

			order, err := a.deps.Shop.Order(cmd.Context(), id)
			if err != nil {
				return err
			}

			header(a.io, "Order Details")
			printOrder(a.io, order)
			if len(order.Items) > 0 {
				a.io.Println()
				for _, item := range order.Items {
					a.io.Printf("   %s x %d  $%s\n", item.ProductName, item.Quantity, item.Price)
				}
			}
			return nil
		},
	}
}
