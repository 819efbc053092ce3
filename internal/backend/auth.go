package backend

import (
	"cmp"
	"context"
	"net/http"

	"github.com/annberg/bookmart/internal/domain/models"
)

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=8"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone_number"`
	Address   string `json:"shipping_address"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/users/register", "", nil, req, nil)
}

// LoginResult is the normalized login answer; the backend has shipped
// both access_token and token spellings.
type LoginResult struct {
	Token string
	Role  string
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
		Role        string `json:"role"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", nil, body, &resp); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token: cmp.Or(resp.AccessToken, resp.Token),
		Role:  resp.Role,
	}, nil
}

func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoToken
	}
	var user models.User
	if err := c.get(ctx, "/api/users/me", token, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
