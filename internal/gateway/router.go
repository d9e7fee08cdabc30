package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/config"
)

// NewHandler wires the full gateway: proxied prefixes in registration order,
// built-in root and health endpoints, a 404 that echoes the requested path,
// and access-log plus panic-recovery middleware around everything.
//
// Proxy routes are registered before the built-ins, so a configured prefix
// that happens to cover /health or / wins over them. mux evaluates routes in
// the order they were added, which is exactly the first-registered-match
// semantics the route table promises.
func NewHandler(table *Table, cfg *config.Config, log zerolog.Logger) http.Handler {
	root := mux.NewRouter()

	for _, rule := range table.Rules() {
		root.PathPrefix(rule.Prefix).Handler(newProxy(rule, log))
	}

	root.HandleFunc("/health", NewHealthHandler().CheckHealth).Methods("GET")
	root.HandleFunc("/", NewRootHandler(table).Info).Methods("GET")
	root.NotFoundHandler = http.HandlerFunc(notFound)

	// NotFoundHandler bypasses mux middleware, so wrap the router itself.
	var h http.Handler = root
	h = Recover(h, cfg.IsDevelopment())
	h = RequestLogger(h, log)
	return h
}
