package gateway

import (
	"net/http"
	"time"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/respond"
)

// Version is reported by the root info endpoint.
const Version = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// CheckHealth handles GET /health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "ShopEase API Gateway is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// RootHandler serves the gateway info page listing configured prefixes.
type RootHandler struct {
	table *Table
}

// NewRootHandler creates a root info handler over the route table.
func NewRootHandler(table *Table) *RootHandler { return &RootHandler{table: table} }

// Info handles GET /
func (h *RootHandler) Info(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "ShopEase API Gateway",
		"version":   Version,
		"endpoints": h.table.Prefixes(),
	})
}

// notFound echoes the requested path for diagnostics.
func notFound(w http.ResponseWriter, r *http.Request) {
	respond.WriteNotFound(w, r.URL.Path)
}
