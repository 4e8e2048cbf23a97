package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/storefront/pkg/api"
)

// page accepts either a bare JSON array or a DRF paginated {"results": [...]} envelope
type page[T any] []T

func (p *page[T]) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*p = items
		return nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	*p = envelope.Results
	return nil
}

// ProductFilter narrows the product list; zero values mean no filter
type ProductFilter struct {
	Search     string
	CategoryID int64
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.CategoryID != 0 {
		q.Set("category", strconv.FormatInt(f.CategoryID, 10))
	}
	return q
}

// Products возвращает список товаров с учётом фильтра
func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]api.Product, error) {
	var products page[api.Product]
	err := c.doRequest(ctx, Request{
		Method: http.MethodGet,
		Path:   "products/",
		Query:  filter.query(),
	}, &products)
	if err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return products, nil
}

// SearchProducts ищет товары по строке запроса
func (c *Client) SearchProducts(ctx context.Context, query string) ([]api.Product, error) {
	return c.Products(ctx, ProductFilter{Search: query})
}

// ProductsByCategory возвращает товары одной категории
func (c *Client) ProductsByCategory(ctx context.Context, categoryID int64) ([]api.Product, error) {
	return c.Products(ctx, ProductFilter{CategoryID: categoryID})
}

// Product возвращает карточку товара
func (c *Client) Product(ctx context.Context, id int64) (*api.Product, error) {
	var product api.Product
	err := c.doRequest(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("products/%d/", id),
	}, &product)
	if err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &product, nil
}

// Categories возвращает список категорий
func (c *Client) Categories(ctx context.Context) ([]api.Category, error) {
	var categories page[api.Category]
	if err := c.doRequest(ctx, Request{Method: http.MethodGet, Path: "categories/"}, &categories); err != nil {
		return nil, fmt.Errorf("list categories request failed: %w", err)
	}
	return categories, nil
}
