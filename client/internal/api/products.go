package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// GetAllProducts lists the catalog, optionally filtered by category.
func GetAllProducts(ctx context.Context, rc *resty.Client, q types.ProductQuery) ([]types.Product, error) {
	var out []types.Product
	req := rc.R().SetContext(ctx).SetResult(&out)
	if q.Category != "" {
		req.SetQueryParam("category", q.Category)
	}
	resp, err := req.Get("/products")
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	if err := checkStatus(resp, "get products"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProductByID fetches a single product.
func GetProductByID(ctx context.Context, rc *resty.Client, id int) (*types.Product, error) {
	var out types.Product
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/products/" + strconv.Itoa(id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := checkStatus(resp, "get product"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProductsByCategory lists products in one category.
func GetProductsByCategory(ctx context.Context, rc *resty.Client, category string) ([]types.Product, error) {
	var out []types.Product
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/products/category/" + category)
	if err != nil {
		return nil, fmt.Errorf("get products by category: %w", err)
	}
	if err := checkStatus(resp, "get products by category"); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts runs a free-text product search.
func SearchProducts(ctx context.Context, rc *resty.Client, query string) ([]types.Product, error) {
	var out []types.Product
	resp, err := rc.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get("/products/search")
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if err := checkStatus(resp, "search products"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategories lists the distinct product categories.
func GetCategories(ctx context.Context, rc *resty.Client) ([]string, error) {
	var out []string
	resp, err := rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/products/categories")
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	if err := checkStatus(resp, "get categories"); err != nil {
		return nil, err
	}
	return out, nil
}
