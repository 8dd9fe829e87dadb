package dirsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Identity headers the service trusts. These mirror the server-side
// middleware; a production deployment would send a bearer token instead.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Client is a typed HTTP client for the account directory service.
//
// The zero identity makes anonymous requests; use WithIdentity to act as a
// specific caller:
//
//	admin := client.WithIdentity(adminID, "admin")
//	_, err := admin.UpdateAccount(ctx, targetID, patch)
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	userID   string
	userRole string
}

// NewClient creates a new directory service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithIdentity returns a copy of the client that sends the given caller
// identity with every request.
func (c *Client) WithIdentity(userID, role string) *Client {
	clone := *c
	clone.userID = userID
	clone.userRole = role
	return &clone
}

// Signup creates a new account. POST /api/users/signup.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AccountInfo, error) {
	var out AccountInfo
	err := c.doJSON(ctx, http.MethodPost, "/api/users/signup", req, &out)
	return out, err
}

// Login verifies credentials. POST /api/users/login.
func (c *Client) Login(ctx context.Context, email, password string) (AccountInfo, error) {
	var out AccountInfo
	err := c.doJSON(ctx, http.MethodPost, "/api/users/login",
		LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// ListAccounts lists accounts matching the query. GET /api/users.
func (c *Client) ListAccounts(ctx context.Context, q ListAccountsQuery) ([]AccountInfo, error) {
	path := "/api/users"
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Role != "" {
		params.Set("role", q.Role)
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []AccountInfo
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Stats returns aggregate directory counts. GET /api/users/stats.
func (c *Client) Stats(ctx context.Context) (StatsResponse, error) {
	var out StatsResponse
	err := c.doJSON(ctx, http.MethodGet, "/api/users/stats", nil, &out)
	return out, err
}

// GetAccount fetches one account by id. GET /api/users/{id}.
func (c *Client) GetAccount(ctx context.Context, id string) (AccountInfo, error) {
	var out AccountInfo
	err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateAccount applies an admin-gated patch. PUT /api/users/{id}.
func (c *Client) UpdateAccount(
	ctx context.Context,
	id string,
	req UpdateAccountRequest,
) (AccountInfo, error) {
	var out AccountInfo
	err := c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteAccount removes an account. DELETE /api/users/{id}.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

// Livez checks the liveness probe. GET /livez.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz checks the readiness probe. GET /readyz.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// doJSON performs a request with an optional JSON body, decoding a 2xx
// response into out (when non-nil) and every other response into *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(HeaderUserID, c.userID)
	}
	if c.userRole != "" {
		req.Header.Set(HeaderUserRole, c.userRole)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
