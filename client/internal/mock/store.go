// Package mock is the in-memory stand-in for the unbuilt backend services.
// It reproduces their contract exactly, including fixed per-operation delays
// that simulate realistic network timing for UI testing.
package mock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// Per-operation latency. Values are fixed constants, not randomized, all
// within the 300–1500 ms band.
var defaultDelays = map[string]time.Duration{
	"login":                 1000 * time.Millisecond,
	"register":              1000 * time.Millisecond,
	"logout":                500 * time.Millisecond,
	"getProfile":            500 * time.Millisecond,
	"updateProfile":         1000 * time.Millisecond,
	"getAllProducts":        800 * time.Millisecond,
	"getProductById":        500 * time.Millisecond,
	"getProductsByCategory": 600 * time.Millisecond,
	"searchProducts":        700 * time.Millisecond,
	"getCategories":         300 * time.Millisecond,
	"getCart":               400 * time.Millisecond,
	"addToCart":             600 * time.Millisecond,
	"updateCartItem":        500 * time.Millisecond,
	"removeFromCart":        400 * time.Millisecond,
	"clearCart":             300 * time.Millisecond,
	"placeOrder":            1500 * time.Millisecond,
	"getOrders":             700 * time.Millisecond,
	"getOrderById":          500 * time.Millisecond,
	"cancelOrder":           600 * time.Millisecond,
}

// Store is an explicitly owned in-memory repository. It is passed by
// reference to the dispatch layer rather than living as process-wide state,
// so tests get a fresh one each time. Mutations are serialized with a mutex.
type Store struct {
	mu sync.Mutex

	users    []types.User
	products []types.Product
	cart     []types.CartItem
	orders   []types.Order

	nextUserID  int
	nextItemID  int
	nextOrderID int
	lastToken   int64

	delays map[string]time.Duration
	now    func() time.Time
}

// Option configures a Store during construction.
type Option func(*Store)

// WithoutDelay disables the simulated latency. Intended for tests.
func WithoutDelay() Option {
	return func(s *Store) { s.delays = nil }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store populated with the seed data.
func NewStore(opts ...Option) *Store {
	s := &Store{
		products:    seedProducts(),
		nextUserID:  2,
		nextItemID:  1,
		nextOrderID: 1,
		delays:      defaultDelays,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.users = seedUsers(s.now())
	return s
}

// sleep simulates the network round trip for op. It respects ctx so a caller
// is never blocked past cancellation.
func (s *Store) sleep(ctx context.Context, op string) error {
	d := s.delays[op]
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newToken issues an opaque token unique across the process lifetime.
// Tokens are timestamp-based and strictly monotonic.
func (s *Store) newToken() string {
	n := s.now().UnixMilli()
	if n <= s.lastToken {
		n = s.lastToken + 1
	}
	s.lastToken = n
	return "mock-jwt-token-" + strconv.FormatInt(n, 10)
}

// ----------------------------------------------------------------------
// Auth
// ----------------------------------------------------------------------

// Login succeeds iff both email and password are non-empty. The returned
// user is the first seed user matching the email, else the first seed user.
func (s *Store) Login(ctx context.Context, creds types.Credentials) (*types.Session, error) {
	if err := s.sleep(ctx, "login"); err != nil {
		return nil, err
	}
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", types.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[0]
	for _, u := range s.users {
		if u.Email == creds.Email {
			user = u
			break
		}
	}
	return &types.Session{Token: s.newToken(), User: user}, nil
}

// Register appends a new user with an incrementing id.
func (s *Store) Register(ctx context.Context, req types.RegisterRequest) (*types.Session, error) {
	if err := s.sleep(ctx, "register"); err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", types.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := types.User{
		ID:        s.nextUserID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: s.now(),
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return &types.Session{Token: s.newToken(), User: user}, nil
}

func (s *Store) Logout(ctx context.Context) error {
	return s.sleep(ctx, "logout")
}

func (s *Store) GetProfile(ctx context.Context) (*types.User, error) {
	if err := s.sleep(ctx, "getProfile"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[0]
	return &u, nil
}

// UpdateProfile mutates the current profile; empty fields are unchanged.
func (s *Store) UpdateProfile(ctx context.Context, req types.UpdateProfileRequest) (*types.User, error) {
	if err := s.sleep(ctx, "updateProfile"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &s.users[0]
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	out := *u
	return &out, nil
}

// ----------------------------------------------------------------------
// Products
// ----------------------------------------------------------------------

// GetAllProducts returns the full seed list, optionally filtered by exact
// category equality.
func (s *Store) GetAllProducts(ctx context.Context, q types.ProductQuery) ([]types.Product, error) {
	if err := s.sleep(ctx, "getAllProducts"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) GetProductByID(ctx context.Context, id int) (*types.Product, error) {
	if err := s.sleep(ctx, "getProductById"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, types.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]types.Product, error) {
	if err := s.sleep(ctx, "getProductsByCategory"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchProducts matches the query case-insensitively against name OR
// description.
func (s *Store) SearchProducts(ctx context.Context, query string) ([]types.Product, error) {
	if err := s.sleep(ctx, "searchProducts"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var out []types.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetCategories returns the distinct categories in seed order.
func (s *Store) GetCategories(ctx context.Context) ([]string, error) {
	if err := s.sleep(ctx, "getCategories"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

// ----------------------------------------------------------------------
// Cart
// ----------------------------------------------------------------------

func (s *Store) GetCart(ctx context.Context) (*types.Cart, error) {
	if err := s.sleep(ctx, "getCart"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartSnapshot(), nil
}

// AddToCart fails with not-found for an unknown product. Adding a product
// already in the cart accumulates quantity on the existing line.
func (s *Store) AddToCart(ctx context.Context, productID, quantity int) (*types.Cart, error) {
	if err := s.sleep(ctx, "addToCart"); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", types.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(productID)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", productID, types.ErrNotFound)
	}
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity += quantity
			return s.cartSnapshot(), nil
		}
	}
	s.cart = append(s.cart, types.CartItem{
		ID:        s.nextItemID,
		ProductID: productID,
		Product:   p,
		Quantity:  quantity,
		Price:     p.Price,
	})
	s.nextItemID++
	return s.cartSnapshot(), nil
}

// UpdateCartItem sets the line's quantity; quantity <= 0 removes the line.
func (s *Store) UpdateCartItem(ctx context.Context, itemID, quantity int) (*types.Cart, error) {
	if err := s.sleep(ctx, "updateCartItem"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		return s.cartSnapshot(), nil
	}
	return nil, fmt.Errorf("cart item %d: %w", itemID, types.ErrNotFound)
}

func (s *Store) RemoveFromCart(ctx context.Context, itemID int) (*types.Cart, error) {
	if err := s.sleep(ctx, "removeFromCart"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return s.cartSnapshot(), nil
		}
	}
	return nil, fmt.Errorf("cart item %d: %w", itemID, types.ErrNotFound)
}

func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.sleep(ctx, "clearCart"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	return nil
}

// ----------------------------------------------------------------------
// Orders
// ----------------------------------------------------------------------

// PlaceOrder snapshots the current cart into a pending order. The total is
// computed once at creation time and never recomputed. The cart is cleared.
func (s *Store) PlaceOrder(ctx context.Context, req types.PlaceOrderRequest) (*types.Order, error) {
	if err := s.sleep(ctx, "placeOrder"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", types.ErrValidation)
	}

	items := make([]types.CartItem, len(s.cart))
	copy(items, s.cart)
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	order := types.Order{
		ID:              s.nextOrderID,
		Items:           items,
		Total:           total,
		Status:          types.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       s.now(),
	}
	s.nextOrderID++
	s.orders = append(s.orders, order)
	s.cart = nil
	return &order, nil
}

func (s *Store) GetOrders(ctx context.Context) ([]types.Order, error) {
	if err := s.sleep(ctx, "getOrders"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *Store) GetOrderByID(ctx context.Context, id int) (*types.Order, error) {
	if err := s.sleep(ctx, "getOrderById"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, types.ErrNotFound)
}

// CancelOrder sets the order's status to cancelled. Cancelling an already
// cancelled order succeeds and leaves the status cancelled.
func (s *Store) CancelOrder(ctx context.Context, id int) (*types.Order, error) {
	if err := s.sleep(ctx, "cancelOrder"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = types.OrderStatusCancelled
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, types.ErrNotFound)
}

// ----------------------------------------------------------------------
// helpers (callers hold s.mu)
// ----------------------------------------------------------------------

func (s *Store) findProduct(id int) (types.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return types.Product{}, false
}

func (s *Store) cartSnapshot() *types.Cart {
	items := make([]types.CartItem, len(s.cart))
	copy(items, s.cart)
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return &types.Cart{Items: items, Total: total}
}
