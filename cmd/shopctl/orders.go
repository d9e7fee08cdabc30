package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sabirdaar/multi-lang-e-commerce/client"
)

func init() {
	ordersCmd := &cobra.Command{Use: "orders", Short: "Order operations"}

	var shippingAddress, paymentMethod string
	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "Check out the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			order, err := c.PlaceOrder(cmd.Context(), client.PlaceOrderRequest{
				ShippingAddress: shippingAddress,
				PaymentMethod:   paymentMethod,
			})
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
	placeCmd.Flags().StringVar(&shippingAddress, "shipping-address", "", "Shipping address")
	placeCmd.Flags().StringVar(&paymentMethod, "payment-method", "", "Payment method")
	ordersCmd.AddCommand(placeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			orders, err := c.GetOrders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}
	ordersCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			order, err := c.GetOrderByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
	ordersCmd.AddCommand(getCmd)

	cancelCmd := &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			c, cleanup := newClient()
			defer cleanup()
			order, err := c.CancelOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
	ordersCmd.AddCommand(cancelCmd)

	rootCmd.AddCommand(ordersCmd)
}
