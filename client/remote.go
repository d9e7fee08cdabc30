package client

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/api"
)

// remoteSource dispatches every operation over HTTP to the gateway.
//
// The stored token rides along as a bearer credential on every request when a
// session is present. A 401 or 403 response clears the stored session and
// fires the client's OnUnauthorized callback before the error surfaces; the
// UI shell subscribes to that callback instead of the dispatch layer knowing
// anything about navigation.
type remoteSource struct {
	rc *resty.Client
}

func newRemoteSource(baseURL string, timeout time.Duration, sessions SessionStore, onUnauthorized func()) *remoteSource {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	rc.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		s, err := sessions.Load(req.Context())
		if err == nil && s != nil {
			req.SetAuthToken(s.Token)
		}
		return nil
	})

	rc.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if code := resp.StatusCode(); code == http.StatusUnauthorized || code == http.StatusForbidden {
			_ = sessions.Clear(resp.Request.Context())
			if onUnauthorized != nil {
				onUnauthorized()
			}
		}
		return nil
	})

	return &remoteSource{rc: rc}
}

func (r *remoteSource) Login(ctx context.Context, creds Credentials) (*Session, error) {
	return api.Login(ctx, r.rc, creds)
}

func (r *remoteSource) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return api.Register(ctx, r.rc, req)
}

func (r *remoteSource) Logout(ctx context.Context) error {
	return api.Logout(ctx, r.rc)
}

func (r *remoteSource) GetProfile(ctx context.Context) (*User, error) {
	return api.GetProfile(ctx, r.rc)
}

func (r *remoteSource) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	return api.UpdateProfile(ctx, r.rc, req)
}

func (r *remoteSource) GetAllProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	return api.GetAllProducts(ctx, r.rc, q)
}

func (r *remoteSource) GetProductByID(ctx context.Context, id int) (*Product, error) {
	return api.GetProductByID(ctx, r.rc, id)
}

func (r *remoteSource) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return api.GetProductsByCategory(ctx, r.rc, category)
}

func (r *remoteSource) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	return api.SearchProducts(ctx, r.rc, query)
}

func (r *remoteSource) GetCategories(ctx context.Context) ([]string, error) {
	return api.GetCategories(ctx, r.rc)
}

func (r *remoteSource) GetCart(ctx context.Context) (*Cart, error) {
	return api.GetCart(ctx, r.rc)
}

func (r *remoteSource) AddToCart(ctx context.Context, productID, quantity int) (*Cart, error) {
	return api.AddToCart(ctx, r.rc, productID, quantity)
}

func (r *remoteSource) UpdateCartItem(ctx context.Context, itemID, quantity int) (*Cart, error) {
	return api.UpdateCartItem(ctx, r.rc, itemID, quantity)
}

func (r *remoteSource) RemoveFromCart(ctx context.Context, itemID int) (*Cart, error) {
	return api.RemoveFromCart(ctx, r.rc, itemID)
}

func (r *remoteSource) ClearCart(ctx context.Context) error {
	return api.ClearCart(ctx, r.rc)
}

func (r *remoteSource) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	return api.PlaceOrder(ctx, r.rc, req)
}

func (r *remoteSource) GetOrders(ctx context.Context) ([]Order, error) {
	return api.GetOrders(ctx, r.rc)
}

func (r *remoteSource) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	return api.GetOrderByID(ctx, r.rc, id)
}

func (r *remoteSource) CancelOrder(ctx context.Context, id int) (*Order, error) {
	return api.CancelOrder(ctx, r.rc, id)
}
