package backend

import (
	"context"
	"net/http"

	"github.com/annberg/bookmart/internal/domain/models"
)

// remoteCart is the server-side cart shape for authenticated sessions.
type remoteCart struct {
	NumOfCartItems int `json:"numOfCartItems"`
	Items          []struct {
		Book     backendBook `json:"book"`
		Quantity int         `json:"quantity"`
	} `json:"items"`
}

func (c *Client) Cart(ctx context.Context, token string) ([]models.CartItem, int, error) {
	if token == "" {
		return nil, 0, ErrNoToken
	}
	var raw remoteCart
	if err := c.get(ctx, "/api/cart", token, nil, &raw); err != nil {
		return nil, 0, err
	}
	items := make([]models.CartItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, models.CartItem{Book: it.Book.decode(), Quantity: it.Quantity})
	}
	return items, raw.NumOfCartItems, nil
}

func (c *Client) PutCartItem(ctx context.Context, token, isbn string, quantity int) error {
	if token == "" {
		return ErrNoToken
	}
	body := map[string]any{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/api/cart/"+isbn, token, nil, body, nil)
}

func (c *Client) DeleteCartItem(ctx context.Context, token, isbn string) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, "/api/cart/"+isbn, token, nil, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, "/api/cart", token, nil, nil, nil)
}
