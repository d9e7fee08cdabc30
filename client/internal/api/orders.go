package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// PlaceOrder checks out the current cart.
func PlaceOrder(ctx context.Context, rc *resty.Client, req types.PlaceOrderRequest) (*types.Order, error) {
	var out types.Order
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if err := checkStatus(resp, "place order"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrders lists the session's orders.
func GetOrders(ctx context.Context, rc *resty.Client) ([]types.Order, error) {
	var out []types.Order
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	if err := checkStatus(resp, "get orders"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrderByID fetches a single order.
func GetOrderByID(ctx context.Context, rc *resty.Client, id int) (*types.Order, error) {
	var out types.Order
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/orders/" + strconv.Itoa(id))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := checkStatus(resp, "get order"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder transitions an order to cancelled.
func CancelOrder(ctx context.Context, rc *resty.Client, id int) (*types.Order, error) {
	var out types.Order
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/orders/" + strconv.Itoa(id) + "/cancel")
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	if err := checkStatus(resp, "cancel order"); err != nil {
		return nil, err
	}
	return &out, nil
}
