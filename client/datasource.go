package client

import "context"

// DataSource is the strategy interface behind every storefront operation.
// Two implementations exist: a remote one speaking HTTP to the gateway, and
// the in-memory mock store. The choice is made once at construction and
// injected; per-call fallback is layered on as a decorator over this
// interface, not duplicated per method.
type DataSource interface {
	// Auth
	Login(ctx context.Context, creds Credentials) (*Session, error)
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error)

	// Products
	GetAllProducts(ctx context.Context, q ProductQuery) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	GetCategories(ctx context.Context) ([]string, error)

	// Cart
	GetCart(ctx context.Context) (*Cart, error)
	AddToCart(ctx context.Context, productID, quantity int) (*Cart, error)
	UpdateCartItem(ctx context.Context, itemID, quantity int) (*Cart, error)
	RemoveFromCart(ctx context.Context, itemID int) (*Cart, error)
	ClearCart(ctx context.Context) error

	// Orders
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id int) (*Order, error)
	CancelOrder(ctx context.Context, id int) (*Order, error)
}
