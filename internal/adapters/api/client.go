// Package api is the outbound HTTP client for the remote disaster
// management service: authentication endpoints and the SOS listing.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"disasterwatch/internal/core/domain"

	"github.com/google/uuid"
)

// RequestError carries a non-2xx response: the server's body is
// forwarded to the caller unchanged as an opaque payload.
type RequestError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// Client talks to the remote API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterInput is the registration request body
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the authentication request body
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns the issued token pair
func (c *Client) Register(ctx context.Context, input RegisterInput) (*domain.TokenPair, error) {
	return c.postAuth(ctx, "/auth/register", input)
}

// Authenticate logs in and returns the issued token pair
func (c *Client) Authenticate(ctx context.Context, input LoginInput) (*domain.TokenPair, error) {
	return c.postAuth(ctx, "/auth/authenticate", input)
}

func (c *Client) postAuth(ctx context.Context, path string, body interface{}) (*domain.TokenPair, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("api: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var pair domain.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, fmt.Errorf("api: decode token response: %w", err)
	}
	return &pair, nil
}

// ListAllSos fetches every SOS request visible to the bearer of the
// access token and normalizes the records for the query engine
func (c *Client) ListAllSos(ctx context.Context, accessToken string) ([]domain.SosRecord, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/sos/all", nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("X-Request-ID", uuid.New().String())

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	records, err := domain.ParseSosList(data)
	if err != nil {
		return nil, fmt.Errorf("api: decode sos listing: %w", err)
	}
	return records, nil
}

// do executes the request and reads the body. Non-2xx responses become
// a *RequestError carrying the server payload verbatim.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Payload:    json.RawMessage(data),
		}
	}
	return data, nil
}
