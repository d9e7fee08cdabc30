package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout sets the transport timeout for real gateway calls.
// There is no separate per-call timeout; this bound is the transport default.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.httpTimeout = d
		return nil
	}
}

// WithSessionStore replaces the default in-memory session store, e.g. with
// the sqlite-backed localstate store.
func WithSessionStore(s SessionStore) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session store must not be nil")
		}
		c.sessions = s
		return nil
	}
}

// WithLogger replaces the default logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithOnUnauthorized registers the callback fired when a real call comes
// back unauthorized, after the stored session has been cleared. The UI shell
// consumes this to return to its login entry point.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) error {
		c.onUnauthorized = fn
		return nil
	}
}

// WithoutMockDelay disables the mock store's simulated latency. Intended for
// tests.
func WithoutMockDelay() Option {
	return func(c *Client) error {
		c.mockNoDelay = true
		return nil
	}
}

// WithDataSource injects a fully built DataSource, bypassing the default
// real-vs-mock selection. Intended for tests.
func WithDataSource(ds DataSource) Option {
	return func(c *Client) error {
		if ds == nil {
			return fmt.Errorf("data source must not be nil")
		}
		c.source = ds
		return nil
	}
}
