package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/annberg/bookmart/internal/domain/models"
)

func (c *Client) AdminBooks(ctx context.Context, token string) ([]models.Book, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var raw []backendBook
	if err := c.get(ctx, "/api/admins/books", token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeBooks(raw), nil
}

func (c *Client) AdminBook(ctx context.Context, token, isbn string) (models.Book, error) {
	if token == "" {
		return models.Book{}, ErrNoToken
	}
	var raw backendBook
	if err := c.get(ctx, "/api/admins/books/"+isbn, token, nil, &raw); err != nil {
		return models.Book{}, err
	}
	return raw.decode(), nil
}

func (c *Client) CreateBook(ctx context.Context, token string, book models.Book) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodPost, "/api/admins/books", token, nil, encodeBook(book), nil)
}

func (c *Client) UpdateBook(ctx context.Context, token string, book models.Book) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodPut, "/api/admins/books/"+book.ISBN, token, nil, encodeBook(book), nil)
}

func (c *Client) DeleteBook(ctx context.Context, token, isbn string) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, "/api/admins/books/"+isbn, token, nil, nil, nil)
}

func (c *Client) PublisherOrders(ctx context.Context, token string) ([]models.PublisherOrder, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var orders []models.PublisherOrder
	if err := c.get(ctx, "/api/admins/publisher-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ConfirmPublisherOrder flips a pending restock order to Confirmed. The
// backend rejects an already-confirmed order; callers are expected to
// check Confirmable first and not offer the action at all.
func (c *Client) ConfirmPublisherOrder(ctx context.Context, token string, orderID int) error {
	if token == "" {
		return ErrNoToken
	}
	path := "/api/admins/publisher-orders/" + strconv.Itoa(orderID) + "/confirm"
	return c.do(ctx, http.MethodPut, path, token, nil, nil, nil)
}

func (c *Client) Publishers(ctx context.Context, token string) ([]models.Publisher, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var publishers []models.Publisher
	if err := c.get(ctx, "/api/admins/publishers", token, nil, &publishers); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (c *Client) CustomerOrders(ctx context.Context, token string) ([]models.Order, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var orders []models.Order
	if err := c.get(ctx, "/api/admins/customer-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) SalesPreviousMonth(ctx context.Context, token string) (models.SalesTotal, error) {
	if token == "" {
		return models.SalesTotal{}, ErrNoToken
	}
	var total models.SalesTotal
	if err := c.get(ctx, "/api/admins/reports/sales/previous-month", token, nil, &total); err != nil {
		return models.SalesTotal{}, err
	}
	return total, nil
}

func (c *Client) SalesByDate(ctx context.Context, token, date string) (models.SalesTotal, error) {
	if token == "" {
		return models.SalesTotal{}, ErrNoToken
	}
	query := url.Values{}
	query.Set("date", date)
	var total models.SalesTotal
	if err := c.get(ctx, "/api/admins/reports/sales/by-date", token, query, &total); err != nil {
		return models.SalesTotal{}, err
	}
	return total, nil
}

func (c *Client) TopCustomers(ctx context.Context, token string) ([]models.TopCustomer, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var customers []models.TopCustomer
	if err := c.get(ctx, "/api/admins/reports/top-customers", token, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) TopBooks(ctx context.Context, token string) ([]models.TopBook, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var books []models.TopBook
	if err := c.get(ctx, "/api/admins/reports/top-books", token, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) ReplenishmentHistory(ctx context.Context, token, isbn string) (models.ReplenishmentCount, error) {
	if token == "" {
		return models.ReplenishmentCount{}, ErrNoToken
	}
	var count models.ReplenishmentCount
	if err := c.get(ctx, "/api/admins/reports/replenishment-history/"+isbn, token, nil, &count); err != nil {
		return models.ReplenishmentCount{}, err
	}
	return count, nil
}
