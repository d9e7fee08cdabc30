package gateway

import (
	"testing"

	"github.com/Sabirdaar/multi-lang-e-commerce/internal/config"
)

func TestNewTable_Validation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		configs []RuleConfig
	}{
		{"prefix without slash", []RuleConfig{{Prefix: "products", Target: "http://localhost:5000"}}},
		{"relative target", []RuleConfig{{Prefix: "/products", Target: "localhost:5000"}}},
		{"empty target", []RuleConfig{{Prefix: "/products", Target: ""}}},
		{"bad rewrite pattern", []RuleConfig{{
			Prefix: "/products", Target: "http://localhost:5000",
			Rewrite: []Rewrite{{Pattern: "^(/products", Replacement: "/api/products"}},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTable(tc.configs); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestMatch_RegistrationOrderWins(t *testing.T) {
	t.Parallel()
	// /order registered before /orders: a request to /orders/5 matches the
	// earlier, shorter prefix, not the longest one.
	table, err := NewTable([]RuleConfig{
		{Prefix: "/order", Target: "http://localhost:1111"},
		{Prefix: "/orders", Target: "http://localhost:2222"},
	})
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}

	rule, ok := table.Match("/orders/5")
	if !ok {
		t.Fatal("expected a match")
	}
	if rule.Prefix != "/order" {
		t.Fatalf("expected first-registered /order, got %s", rule.Prefix)
	}

	if _, ok := table.Match("/unknown"); ok {
		t.Fatal("expected no match for /unknown")
	}
}

func TestRewritePath(t *testing.T) {
	t.Parallel()
	table, err := NewTable([]RuleConfig{{
		Prefix: "/products",
		Target: "http://localhost:5000",
		Rewrite: []Rewrite{
			{Pattern: "^/products/legacy", Replacement: "/v1/products"},
			{Pattern: "^/products", Replacement: "/api/products"},
		},
	}})
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	rule := table.Rules()[0]

	// first matching pattern wins
	if got := rule.RewritePath("/products/legacy/7"); got != "/v1/products/7" {
		t.Fatalf("unexpected rewrite: %s", got)
	}
	if got := rule.RewritePath("/products/7"); got != "/api/products/7" {
		t.Fatalf("unexpected rewrite: %s", got)
	}
	// no matching pattern passes through
	if got := rule.RewritePath("/other"); got != "/other" {
		t.Fatalf("unexpected rewrite: %s", got)
	}
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()
	cfg := config.NewForTesting()
	table, err := NewTable(DefaultRules(cfg))
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}

	want := []string{"/products", "/auth", "/orders"}
	got := table.Prefixes()
	if len(got) != len(want) {
		t.Fatalf("expected prefixes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected prefixes %v, got %v", want, got)
		}
	}

	rule, ok := table.Match("/auth/login")
	if !ok || rule.Target.Host != "localhost:4000" {
		t.Fatalf("unexpected auth rule: %+v ok=%v", rule, ok)
	}
	if got := rule.RewritePath("/auth/login"); got != "/api/auth/login" {
		t.Fatalf("unexpected rewrite: %s", got)
	}
}
