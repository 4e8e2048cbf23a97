package api

import (
	"encoding/json"
	"fmt"
)

// Product представляет товар каталога. Цены приходят строками-десятичными.
type Product struct {
	Image        string          `json:"image,omitempty"`
	Name         string          `json:"name"`
	Price        string          `json:"price"`
	Description  string          `json:"description,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	InStock      *bool           `json:"in_stock,omitempty"`
	Category     json.RawMessage `json:"category,omitempty"` // id в списке, название в деталях
	ID           int64           `json:"id"`
}

// CategoryLabel returns a printable category: category_name, a string category, or empty
func (p *Product) CategoryLabel() string {
	if p.CategoryName != "" {
		return p.CategoryName
	}
	var name string
	if err := json.Unmarshal(p.Category, &name); err == nil {
		return name
	}
	return ""
}

// Category представляет категорию товаров
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	ID   int64  `json:"id"`
}

// CartProduct is the product snapshot embedded in a cart item
type CartProduct struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image,omitempty"`
	ID    int64  `json:"id"`
}

// CartItem представляет позицию корзины
type CartItem struct {
	Product  CartProduct `json:"product"`
	Subtotal string      `json:"subtotal"`
	ID       int64       `json:"id"`
	Quantity int         `json:"quantity"`
}

// Cart представляет корзину.
// Бэкенд отдаёт либо {"items": [...]}, либо голый массив позиций.
type Cart struct {
	Items []CartItem `json:"items"`
}

// UnmarshalJSON accepts both the wrapped and the bare-array cart shapes
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err == nil {
		c.Items = items
		return nil
	}

	type wrapped Cart
	var w wrapped
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unexpected cart payload: %w", err)
	}
	c.Items = w.Items
	return nil
}

// AddToCartRequest представляет запрос на добавление товара в корзину
type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest представляет запрос на изменение количества
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// PaymentMethod — способ оплаты заказа
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCard           PaymentMethod = "card"
)

// CreateOrderRequest представляет запрос на оформление заказа из текущей корзины
type CreateOrderRequest struct {
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
}

// Order представляет заказ
type Order struct {
	OrderNumber     string        `json:"order_number"`
	CreatedAt       string        `json:"created_at"`
	Status          string        `json:"status"`
	Total           string        `json:"total"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	Items           []OrderItem   `json:"items,omitempty"`
	ID              int64         `json:"id"`
	ItemsCount      int           `json:"items_count"`
}

// OrderItem представляет позицию заказа в деталях заказа
type OrderItem struct {
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	ID          int64  `json:"id"`
	Quantity    int    `json:"quantity"`
}
