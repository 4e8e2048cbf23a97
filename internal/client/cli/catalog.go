package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/storefront/internal/client/api"
)

func (a *App) newProductsCommand() *cobra.Command {
	var (
		search     string
		categoryID int64
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Products")

			products, err := a.deps.Shop.Products(cmd.Context(), api.ProductFilter{
				Search:     search,
				CategoryID: categoryID,
			})
			if err != nil {
				return err
			}

			if len(products) == 0 {
				a.io.Println("No products found.")
				return nil
			}

			a.io.Printf("Found %d product(s):\n", len(products))
			a.io.Println()
			for i := range products {
				printProduct(a.io, i+1, &products[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "search query")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "category id")
	return cmd
}

func (a *App) newProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			product, err := a.deps.Shop.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			header(a.io, product.Name)
			printProduct(a.io, 1, product)
			if product.Description != "" {
				a.io.Println(product.Description)
				a.io.Println()
			}
			a.io.Printf("Use 'storefront cart add %d' to add it to your cart.\n", product.ID)
			return nil
		},
	}
}

func (a *App) newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Categories")

			categories, err := a.deps.Shop.Categories(cmd.Context())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				a.io.Println("No categories found.")
				return nil
			}

			for _, c := range categories {
				a.io.Printf("%d. %s (%s)\n", c.ID, c.Name, c.Slug)
			}
			a.io.Println()
			a.io.Println("Use 'storefront products --category <id>' to browse a category.")
			return nil
		},
	}
}
