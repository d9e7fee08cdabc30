// Package api contains the per-operation HTTP calls the dispatch layer
// issues against the gateway. Each function takes the shared resty client so
// transport concerns (base URL, bearer token, timeouts) stay in one place.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// checkStatus maps a non-2xx response onto the shared sentinel errors.
func checkStatus(resp *resty.Response, op string) error {
	switch code := resp.StatusCode(); {
	case resp.IsSuccess():
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: status %d: %w", op, code, types.ErrUnauthorized)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: status %d: %w", op, code, types.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: status %d: %w", op, code, types.ErrValidation)
	default:
		return fmt.Errorf("%s: status %d: %w", op, code, types.ErrUpstream)
	}
}
