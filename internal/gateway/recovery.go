package gateway

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/respond"
)

// Recover intercepts panics from downstream handlers, logs details, and
// returns HTTP 500. Panic detail reaches the response body only when
// exposeDetail is set (development environment).
func Recover(next http.Handler, exposeDetail bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				msg := "Something went wrong"
				if exposeDetail {
					msg = fmt.Sprint(rec)
				}
				respond.WriteJSON(w, http.StatusInternalServerError, respond.ErrorResponse{
					Error:   "Internal server error",
					Message: msg,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
