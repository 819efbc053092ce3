package backend

import (
	"context"
	"net/http"

	"github.com/annberg/bookmart/internal/domain/models"
)

// OrderRequest is the authoritative order-creation contract: ISBN and
// quantity pairs plus the card reference. Shipping data lives on the
// user profile, not in the order payload.
type OrderRequest struct {
	Books            []OrderBook `json:"books"`
	CreditCardNumber string      `json:"credit_card_number"`
}

// OrderBook is a create-path line item. History rows come back with a
// different quantity key (item_quantity, models.OrderItem); the two
// shapes are not interchangeable on the wire.
type OrderBook struct {
	ISBN     string `json:"ISBN_number"`
	Quantity int    `json:"quantity"`
}

type OrderCreated struct {
	Message string `json:"msg"`
	OrderID int    `json:"order_id"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (OrderCreated, error) {
	if token == "" {
		return OrderCreated{}, ErrNoToken
	}
	var resp OrderCreated
	if err := c.do(ctx, http.MethodPost, "/api/books/orders", token, nil, req, &resp); err != nil {
		return OrderCreated{}, err
	}
	return resp, nil
}

func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var orders []models.Order
	if err := c.get(ctx, "/api/users/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
