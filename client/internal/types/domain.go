package types

import "time"

// User is an account in the system. Created on registration, read-mostly
// thereafter, mutated only via explicit profile updates.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is read-only reference data.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// CartItem is one cart line. The cart holds at most one line per product;
// adding the same product again accumulates quantity.
type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart is the current session's cart with its running total.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// OrderStatus is the order lifecycle state. Only two states exist.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order snapshots the cart at checkout. Immutable except for Status.
type Order struct {
	ID              int         `json:"id"`
	Items           []CartItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Session is the credential owned by the client for the session lifetime.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
