package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cartCmd := &cobra.Command{Use: "cart", Short: "Cart operations"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			cart, err := c.GetCart(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}
	cartCmd.AddCommand(showCmd)

	var quantity int
	addCmd := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			cart, err := c.AddToCart(cmd.Context(), id, quantity)
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}
	addCmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity to add")
	cartCmd.AddCommand(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update ITEM_ID QUANTITY",
		Short: "Set a cart line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			cart, err := c.UpdateCartItem(cmd.Context(), itemID, qty)
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}
	cartCmd.AddCommand(updateCmd)

	removeCmd := &cobra.Command{
		Use:   "remove ITEM_ID",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			cart, err := c.RemoveFromCart(cmd.Context(), itemID)
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}
	cartCmd.AddCommand(removeCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			if err := c.ClearCart(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(clearCmd)

	rootCmd.AddCommand(cartCmd)
}
