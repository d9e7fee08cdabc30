package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// GetCart fetches the current session's cart.
func GetCart(ctx context.Context, rc *resty.Client) (*types.Cart, error) {
	var out types.Cart
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/orders/cart")
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if err := checkStatus(resp, "get cart"); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCart adds quantity of a product to the cart.
func AddToCart(ctx context.Context, rc *resty.Client, productID, quantity int) (*types.Cart, error) {
	var out types.Cart
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(map[string]int{"productId": productID, "quantity": quantity}).
		SetResult(&out).
		Post("/orders/cart/items")
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	if err := checkStatus(resp, "add to cart"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartItem sets a cart line's quantity.
func UpdateCartItem(ctx context.Context, rc *resty.Client, itemID, quantity int) (*types.Cart, error) {
	var out types.Cart
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(map[string]int{"quantity": quantity}).
		SetResult(&out).
		Put("/orders/cart/items/" + strconv.Itoa(itemID))
	if err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	if err := checkStatus(resp, "update cart item"); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromCart deletes a cart line.
func RemoveFromCart(ctx context.Context, rc *resty.Client, itemID int) (*types.Cart, error) {
	var out types.Cart
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Delete("/orders/cart/items/" + strconv.Itoa(itemID))
	if err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}
	if err := checkStatus(resp, "remove from cart"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearCart empties the cart.
func ClearCart(ctx context.Context, rc *resty.Client) error {
	resp, err := rc.R().
		SetContext(ctx).
		Delete("/orders/cart")
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return checkStatus(resp, "clear cart")
}
