package client

import "github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"

// Aliases so callers work with a single package.
type (
	User                 = types.User
	Product              = types.Product
	CartItem             = types.CartItem
	Cart                 = types.Cart
	Order                = types.Order
	OrderStatus          = types.OrderStatus
	Session              = types.Session
	Credentials          = types.Credentials
	RegisterRequest      = types.RegisterRequest
	UpdateProfileRequest = types.UpdateProfileRequest
	ProductQuery         = types.ProductQuery
	PlaceOrderRequest    = types.PlaceOrderRequest
)

const (
	OrderStatusPending   = types.OrderStatusPending
	OrderStatusCancelled = types.OrderStatusCancelled
)
