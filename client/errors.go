package client

import (
	"errors"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// Re-export shared errors so callers compare against a single symbol.
var (
	ErrNotFound     = types.ErrNotFound
	ErrValidation   = types.ErrValidation
	ErrUnauthorized = types.ErrUnauthorized
	ErrUpstream     = types.ErrUpstream
)

// IsNotFound reports whether err marks an absent product, cart item or order.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err marks rejected input.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
