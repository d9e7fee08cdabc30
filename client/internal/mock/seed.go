package mock

import (
	"time"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// seedUsers returns the initial user list. The demo account is always first;
// login with an unknown email resolves to it.
func seedUsers(now time.Time) []types.User {
	return []types.User{
		{
			ID:        1,
			Email:     "demo@shopease.com",
			FirstName: "Demo",
			LastName:  "User",
			CreatedAt: now,
		},
	}
}

// seedProducts returns the fixed reference catalog.
func seedProducts() []types.Product {
	return []types.Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       99.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=200&fit=crop",
			Category:    "electronics",
			Stock:       25,
		},
		{
			ID:          2,
			Name:        "Smart Watch Series 5",
			Description: "Advanced smartwatch with health monitoring and GPS",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=200&fit=crop",
			Category:    "electronics",
			Stock:       15,
		},
		{
			ID:          3,
			Name:        "Running Shoes",
			Description: "Comfortable running shoes for professional athletes",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=200&fit=crop",
			Category:    "fashion",
			Stock:       30,
		},
		{
			ID:          4,
			Name:        "Coffee Maker",
			Description: "Automatic coffee maker with programmable features",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=300&h=200&fit=crop",
			Category:    "home",
			Stock:       20,
		},
		{
			ID:          5,
			Name:        "Backpack",
			Description: "Waterproof backpack with laptop compartment",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=200&fit=crop",
			Category:    "fashion",
			Stock:       40,
		},
		{
			ID:          6,
			Name:        "Desk Lamp",
			Description: "LED desk lamp with adjustable brightness",
			Price:       39.99,
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
			Category:    "home",
			Stock:       35,
		},
	}
}
