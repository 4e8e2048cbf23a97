package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/storefront/pkg/api"
)

// CreateOrder оформляет заказ из текущей корзины
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error) {
	var order api.Order
	err := c.doRequest(ctx, Request{
		Method: http.MethodPost,
		Path:   "orders/create/",
		Body:   req,
	}, &order)
	if err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	return &order, nil
}

// Orders возвращает историю заказов
func (c *Client) Orders(ctx context.Context) ([]api.Order, error) {
	var orders page[api.Order]
	if err := c.doRequest(ctx, Request{Method: http.MethodGet, Path: "orders/"}, &orders); err != nil {
		return nil, fmt.Errorf("list orders request failed: %w", err)
	}
	return orders, nil
}

// Order возвращает детали заказа
func (c *Client) Order(ctx context.Context, id int64) (*api.Order, error) {
	var order api.Order
	err := c.doRequest(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("orders/%d/", id),
	}, &order)
	if err != nil {
		return nil, fmt.Errorf("get order request failed: %w", err)
	}
	return &order, nil
}
