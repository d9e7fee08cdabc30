// Package client is the storefront dispatch layer. It gives each UI action a
// service call that transparently prefers the real gateway but substitutes a
// deterministic mock implementation when no gateway is reachable or
// configured.
package client

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/mock"
	"github.com/Sabirdaar/multi-lang-e-commerce/internal/platform/logger"
)

// Client selects real-or-mock dispatch once at construction and owns the
// session credential lifecycle: sessions are persisted on login/register and
// destroyed on logout or on any unauthorized response.
type Client struct {
	source   DataSource
	sessions SessionStore
	log      zerolog.Logger

	useMock        bool
	mockNoDelay    bool
	httpTimeout    time.Duration
	onUnauthorized func()
}

// New constructs a Client against the given gateway base URL. An empty or
// loopback URL selects mock mode; the decision is made once and is not
// re-evaluated per call.
func New(gatewayURL string, opts ...Option) *Client {
	c := &Client{
		sessions:    NewMemorySessionStore(),
		log:         logger.New("storefront-client"),
		httpTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.useMock = UseMockMode(gatewayURL)
	if c.source == nil {
		var mockOpts []mock.Option
		if c.mockNoDelay {
			mockOpts = append(mockOpts, mock.WithoutDelay())
		}
		mockStore := mock.NewStore(mockOpts...)

		if c.useMock {
			c.log.Info().Msg("no gateway configured, serving mock data")
			c.source = mockStore
		} else {
			remote := newRemoteSource(gatewayURL, c.httpTimeout, c.sessions, c.fireUnauthorized)
			c.source = newFallbackSource(remote, mockStore, c.log)
		}
	}
	return c
}

// UseMockMode reports whether the given gateway URL selects mock dispatch:
// true when the URL is empty, unparseable, or designates a local/loopback
// address.
func UseMockMode(gatewayURL string) bool {
	if gatewayURL == "" {
		return true
	}
	u, err := url.Parse(gatewayURL)
	if err != nil {
		return true
	}
	host := u.Hostname()
	if host == "" || host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}
	return false
}

// UseMock reports the mode chosen at construction.
func (c *Client) UseMock() bool { return c.useMock }

// Session returns the stored session, or nil when logged out.
func (c *Client) Session(ctx context.Context) (*Session, error) {
	return c.sessions.Load(ctx)
}

func (c *Client) fireUnauthorized() {
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// --------------------------------------------------------------------
// Auth operations
// --------------------------------------------------------------------

// Login authenticates and persists the returned session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	s, err := c.source.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := c.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Register creates an account and persists the returned session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	s, err := c.source.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout destroys the stored session. The session is cleared even when the
// backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.source.Logout(ctx)
	if clearErr := c.sessions.Clear(ctx); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	return c.source.GetProfile(ctx)
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	return c.source.UpdateProfile(ctx, req)
}

// --------------------------------------------------------------------
// Product operations
// --------------------------------------------------------------------

func (c *Client) GetAllProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	return c.source.GetAllProducts(ctx, q)
}

func (c *Client) GetProductByID(ctx context.Context, id int) (*Product, error) {
	return c.source.GetProductByID(ctx, id)
}

func (c *Client) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return c.source.GetProductsByCategory(ctx, category)
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	return c.source.SearchProducts(ctx, query)
}

func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	return c.source.GetCategories(ctx)
}

// --------------------------------------------------------------------
// Cart operations
// --------------------------------------------------------------------

func (c *Client) GetCart(ctx context.Context) (*Cart, error) {
	return c.source.GetCart(ctx)
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int) (*Cart, error) {
	return c.source.AddToCart(ctx, productID, quantity)
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID, quantity int) (*Cart, error) {
	return c.source.UpdateCartItem(ctx, itemID, quantity)
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID int) (*Cart, error) {
	return c.source.RemoveFromCart(ctx, itemID)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.source.ClearCart(ctx)
}

// --------------------------------------------------------------------
// Order operations
// --------------------------------------------------------------------

func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	return c.source.PlaceOrder(ctx, req)
}

func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	return c.source.GetOrders(ctx)
}

func (c *Client) GetOrderByID(ctx context.Context, id int) (*Order, error) {
	return c.source.GetOrderByID(ctx, id)
}

func (c *Client) CancelOrder(ctx context.Context, id int) (*Order, error) {
	return c.source.CancelOrder(ctx, id)
}
