package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the ShopEase gateway and storefront client.
// Environment variables are parsed from the SHOPEASE_ prefix.
type Config struct {
	// HTTP Configuration
	Port int `envconfig:"PORT" default:"3000"`

	// Backend targets; each falls back to its hardcoded default when no
	// environment override is supplied (informational, not fatal).
	ProductServiceURL string `envconfig:"PRODUCT_SERVICE_URL" default:"http://localhost:5000"`
	AuthServiceURL    string `envconfig:"AUTH_SERVICE_URL" default:"http://localhost:4000"`
	OrderServiceURL   string `envconfig:"ORDER_SERVICE_URL" default:"http://localhost:8080"`

	// Environment gates error detail exposure on the gateway's 500 responses.
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// GatewayURL is the base URL the storefront client dispatches against.
	// Empty or loopback means the client serves everything from mock data.
	GatewayURL string `envconfig:"GATEWAY_URL" default:""`
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with SHOPEASE_
// Example: SHOPEASE_PORT, SHOPEASE_PRODUCT_SERVICE_URL
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SHOPEASE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	for _, target := range cfg.DefaultedTargets() {
		log.Info().Str("target", target).Msg("backend target using hardcoded default")
	}

	log.Info().
		Int("port", cfg.Port).
		Str("environment", string(cfg.Environment)).
		Str("product_service_url", cfg.ProductServiceURL).
		Str("auth_service_url", cfg.AuthServiceURL).
		Str("order_service_url", cfg.OrderServiceURL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Port:              3000,
		ProductServiceURL: "http://localhost:5000",
		AuthServiceURL:    "http://localhost:4000",
		OrderServiceURL:   "http://localhost:8080",
		Environment:       EnvTesting,
		LogLevel:          "info",
	}
}

// DefaultedTargets lists the backend targets for which no environment
// override was supplied.
func (c *Config) DefaultedTargets() []string {
	var defaulted []string
	for _, v := range []string{"PRODUCT_SERVICE_URL", "AUTH_SERVICE_URL", "ORDER_SERVICE_URL"} {
		if _, ok := os.LookupEnv("SHOPEASE_" + v); !ok {
			defaulted = append(defaulted, v)
		}
	}
	return defaulted
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
