package types

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateProfileRequest mutates the current user's profile.
// Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ProductQuery filters product listings. Category matches by exact equality.
type ProductQuery struct {
	Category string `json:"category,omitempty"`
}

// PlaceOrderRequest creates an order from the current cart.
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shippingAddress,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}
