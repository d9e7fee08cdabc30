package client

import (
	"context"

	"github.com/rs/zerolog"
)

// fallbackSource decorates a primary DataSource with an unconditional
// per-call fallback: any failure of the primary serves the corresponding
// mock result and logs a warning instead of propagating the error. There is
// no circuit state; every call independently tries real-then-mock.
type fallbackSource struct {
	primary  DataSource
	fallback DataSource
	log      zerolog.Logger
}

func newFallbackSource(primary, fallback DataSource, log zerolog.Logger) *fallbackSource {
	return &fallbackSource{primary: primary, fallback: fallback, log: log}
}

// call runs op against the primary and falls back on any error.
func call[T any](ctx context.Context, f *fallbackSource, op string, fn func(DataSource) (T, error)) (T, error) {
	v, err := fn(f.primary)
	if err == nil {
		return v, nil
	}
	f.log.Warn().Err(err).Str("op", op).Msg("real service call failed, serving mock data")
	return fn(f.fallback)
}

func (f *fallbackSource) Login(ctx context.Context, creds Credentials) (*Session, error) {
	return call(ctx, f, "login", func(ds DataSource) (*Session, error) { return ds.Login(ctx, creds) })
}

func (f *fallbackSource) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return call(ctx, f, "register", func(ds DataSource) (*Session, error) { return ds.Register(ctx, req) })
}

func (f *fallbackSource) Logout(ctx context.Context) error {
	_, err := call(ctx, f, "logout", func(ds DataSource) (struct{}, error) { return struct{}{}, ds.Logout(ctx) })
	return err
}

func (f *fallbackSource) GetProfile(ctx context.Context) (*User, error) {
	return call(ctx, f, "getProfile", func(ds DataSource) (*User, error) { return ds.GetProfile(ctx) })
}

func (f *fallbackSource) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	return call(ctx, f, "updateProfile", func(ds DataSource) (*User, error) { return ds.UpdateProfile(ctx, req) })
}

func (f *fallbackSource) GetAllProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	return call(ctx, f, "getAllProducts", func(ds DataSource) ([]Product, error) { return ds.GetAllProducts(ctx, q) })
}

func (f *fallbackSource) GetProductByID(ctx context.Context, id int) (*Product, error) {
	return call(ctx, f, "getProductById", func(ds DataSource) (*Product, error) { return ds.GetProductByID(ctx, id) })
}

func (f *fallbackSource) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return call(ctx, f, "getProductsByCategory", func(ds DataSource) ([]Product, error) {
		return ds.GetProductsByCategory(ctx, category)
	})
}

func (f *fallbackSource) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	return call(ctx, f, "searchProducts", func(ds DataSource) ([]Product, error) { return ds.SearchProducts(ctx, query) })
}

func (f *fallbackSource) GetCategories(ctx context.Context) ([]string, error) {
	return call(ctx, f, "getCategories", func(ds DataSource) ([]string, error) { return ds.GetCategories(ctx) })
}

func (f *fallbackSource) GetCart(ctx context.Context) (*Cart, error) {
	return call(ctx, f, "getCart", func(ds DataSource) (*Cart, error) { return ds.GetCart(ctx) })
}

func (f *fallbackSource) AddToCart(ctx context.Context, productID, quantity int) (*Cart, error) {
	return call(ctx, f, "addToCart", func(ds DataSource) (*Cart, error) { return ds.AddToCart(ctx, productID, quantity) })
}

func (f *fallbackSource) UpdateCartItem(ctx context.Context, itemID, quantity int) (*Cart, error) {
	return call(ctx, f, "updateCartItem", func(ds DataSource) (*Cart, error) { return ds.UpdateCartItem(ctx, itemID, quantity) })
}

func (f *fallbackSource) RemoveFromCart(ctx context.Context, itemID int) (*Cart, error) {
	return call(ctx, f, "removeFromCart", func(ds DataSource) (*Cart, error) { return ds.RemoveFromCart(ctx, itemID) })
}

func (f *fallbackSource) ClearCart(ctx context.Context) error {
	_, err := call(ctx, f, "clearCart", func(ds DataSource) (struct{}, error) { return struct{}{}, ds.ClearCart(ctx) })
	return err
}

func (f *fallbackSource) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	return call(ctx, f, "placeOrder", func(ds DataSource) (*Order, error) { return ds.PlaceOrder(ctx, req) })
}

func (f *fallbackSource) GetOrders(ctx context.Context) ([]Order, error) {
	return call(ctx, f, "getOrders", func(ds DataSource) ([]Order, error) { return ds.GetOrders(ctx) })
}

func (f *fallbackSource) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	return call(ctx, f, "getOrderById", func(ds DataSource) (*Order, error) { return ds.GetOrderByID(ctx, id) })
}

func (f *fallbackSource) CancelOrder(ctx context.Context, id int) (*Order, error) {
	return call(ctx, f, "cancelOrder", func(ds DataSource) (*Order, error) { return ds.CancelOrder(ctx, id) })
}
