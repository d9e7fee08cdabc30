package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sabirdaar/multi-lang-e-commerce/client"
)

func init() {
	productsCmd := &cobra.Command{Use: "products", Short: "Product catalog operations"}

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			products, err := c.GetAllProducts(cmd.Context(), client.ProductQuery{Category: category})
			if err != nil {
				return err
			}
			return printJSON(products)
		},
	}
	listCmd.Flags().StringVarP(&category, "category", "c", "", "Exact category filter")
	productsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			product, err := c.GetProductByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(product)
		},
	}
	productsCmd.AddCommand(getCmd)

	searchCmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search products by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			products, err := c.SearchProducts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(products)
		},
	}
	productsCmd.AddCommand(searchCmd)

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List distinct product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			categories, err := c.GetCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(categories)
		},
	}
	productsCmd.AddCommand(categoriesCmd)

	rootCmd.AddCommand(productsCmd)
}
