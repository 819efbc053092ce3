package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/annberg/bookmart/internal/logger"
)

// ErrNoToken is returned before any network call when an authenticated
// method is invoked without a bearer token.
var ErrNoToken = errors.New("no auth token supplied")

// APIError is an application-level failure the backend answered with.
// Transport and decode failures are returned as plain errors instead.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// Client wraps the bookstore backend REST API, one method per endpoint.
// Errors never escape as panics; every failure comes back as a value the
// caller can map to a user-facing notice.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope is the error payload shape the backend uses for 4xx/5xx.
type envelope struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	log := logger.Get()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("backend request failed")
		return err
	}
	defer resp.Body.Close()

	// A misconfigured server answers with an HTML error page; sniff the
	// content type before decoding so the real HTTP failure is not masked
	// by a parse error.
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	isJSON := mediaType == "application/json"

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed: " + resp.Status}
		if isJSON {
			var env envelope
			if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
				if env.Msg != "" {
					apiErr.Message = env.Msg
				} else if env.Message != "" {
					apiErr.Message = env.Message
				}
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if !isJSON {
		return &APIError{Status: resp.StatusCode, Message: "unexpected non-JSON response from backend"}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, token, query, nil, out)
}
