package gateway

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/config"
)

// Rewrite is a single (pattern, replacement) pair applied to a request path
// before forwarding. Patterns are regular expressions, typically anchored to
// the matched prefix (e.g. `^/orders` -> `/api/orders`).
type Rewrite struct {
	Pattern     string
	Replacement string
}

// RuleConfig describes one route before compilation.
type RuleConfig struct {
	Prefix  string
	Target  string
	Rewrite []Rewrite
}

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rule is a compiled route table entry.
type Rule struct {
	Prefix   string
	Target   *url.URL
	rewrites []rewriteRule
}

// RewritePath applies the rule's rewrites in order; the first matching
// pattern wins. Paths with no matching pattern pass through unchanged.
func (r *Rule) RewritePath(path string) string {
	for _, rw := range r.rewrites {
		if rw.pattern.MatchString(path) {
			return rw.pattern.ReplaceAllString(path, rw.replacement)
		}
	}
	return path
}

// Table is the static route table. It is defined once at process start and
// never mutated; matching needs no locking.
type Table struct {
	rules []*Rule
}

// NewTable compiles the given rule configs, preserving registration order.
func NewTable(configs []RuleConfig) (*Table, error) {
	t := &Table{}
	for _, rc := range configs {
		if !strings.HasPrefix(rc.Prefix, "/") {
			return nil, fmt.Errorf("route prefix %q must start with /", rc.Prefix)
		}
		target, err := url.Parse(rc.Target)
		if err != nil {
			return nil, fmt.Errorf("route %s: invalid target %q: %w", rc.Prefix, rc.Target, err)
		}
		if target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("route %s: target %q must be an absolute URL", rc.Prefix, rc.Target)
		}
		rule := &Rule{Prefix: rc.Prefix, Target: target}
		for _, rw := range rc.Rewrite {
			re, err := regexp.Compile(rw.Pattern)
			if err != nil {
				return nil, fmt.Errorf("route %s: invalid rewrite pattern %q: %w", rc.Prefix, rw.Pattern, err)
			}
			rule.rewrites = append(rule.rewrites, rewriteRule{pattern: re, replacement: rw.Replacement})
		}
		t.rules = append(t.rules, rule)
	}
	return t, nil
}

// Match returns the first rule whose prefix is a prefix of path, evaluated in
// registration order. Matching is deliberately NOT longest-prefix: overlapping
// prefixes resolve to whichever was registered first.
func (t *Table) Match(path string) (*Rule, bool) {
	for _, rule := range t.rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return nil, false
}

// Rules returns the compiled rules in registration order.
func (t *Table) Rules() []*Rule { return t.rules }

// Prefixes returns the configured route prefixes in registration order.
func (t *Table) Prefixes() []string {
	out := make([]string, 0, len(t.rules))
	for _, rule := range t.rules {
		out = append(out, rule.Prefix)
	}
	return out
}

// DefaultRules builds the standard ShopEase route table from config.
func DefaultRules(cfg *config.Config) []RuleConfig {
	return []RuleConfig{
		{
			Prefix: "/products",
			Target: cfg.ProductServiceURL,
			Rewrite: []Rewrite{
				{Pattern: "^/products", Replacement: "/api/products"},
			},
		},
		{
			Prefix: "/auth",
			Target: cfg.AuthServiceURL,
			Rewrite: []Rewrite{
				{Pattern: "^/auth", Replacement: "/api/auth"},
			},
		},
		{
			Prefix: "/orders",
			Target: cfg.OrderServiceURL,
			Rewrite: []Rewrite{
				{Pattern: "^/orders", Replacement: "/api/orders"},
			},
		},
	}
}
