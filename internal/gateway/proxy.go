package gateway

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/respond"
)

// newProxy builds the reverse proxy for one route rule. The proxy rewrites
// the path per the rule and forwards with changeOrigin semantics: the
// outbound Host header reflects the target, not the original caller. Method,
// remaining headers, query string and body pass through untouched, and the
// response streams back verbatim.
func newProxy(rule *Rule, log zerolog.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.URL.Scheme = rule.Target.Scheme
			req.URL.Host = rule.Target.Host
			req.URL.Path = rule.RewritePath(req.URL.Path)
			req.Host = rule.Target.Host

			if _, ok := req.Header["User-Agent"]; !ok {
				// prevent net/http from injecting its default
				req.Header.Set("User-Agent", "")
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			// No retry, no circuit breaking: upstream failures surface as a
			// generic 5xx to the caller.
			log.Error().
				Err(err).
				Str("prefix", rule.Prefix).
				Str("target", rule.Target.String()).
				Str("path", r.URL.Path).
				Msg("upstream request failed")
			respond.WriteBadGateway(w, "upstream request failed")
		},
	}
}
