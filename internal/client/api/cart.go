package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/storefront/pkg/api"
)

// Cart возвращает корзину текущего пользователя
func (c *Client) Cart(ctx context.Context) (*api.Cart, error) {
	var cart api.Cart
	if err := c.doRequest(ctx, Request{Method: http.MethodGet, Path: "cart/"}, &cart); err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	return &cart, nil
}

// AddToCart добавляет товар в корзину
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	err := c.doRequest(ctx, Request{
		Method: http.MethodPost,
		Path:   "cart/add/",
		Body:   api.AddToCartRequest{ProductID: productID, Quantity: quantity},
	}, nil)
	if err != nil {
		return fmt.Errorf("add to cart request failed: %w", err)
	}
	return nil
}

// RemoveFromCart удаляет позицию корзины
func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) error {
	err := c.doRequest(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("cart/remove/%d/", itemID),
	}, nil)
	if err != nil {
		return fmt.Errorf("remove from cart request failed: %w", err)
	}
	return nil
}

// UpdateCartItem меняет количество в позиции корзины
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	err := c.doRequest(ctx, Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("cart/update/%d/", itemID),
		Body:   api.UpdateCartItemRequest{Quantity: quantity},
	}, nil)
	if err != nil {
		return fmt.Errorf("update cart item request failed: %w", err)
	}
	return nil
}
