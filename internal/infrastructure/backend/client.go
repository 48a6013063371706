// Package backend implements the HTTP client for the remote storefront API.
// It translates the five storefront intents into requests against a
// configured base URL and normalizes every failure into *domain.RequestError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fruito/storefront/internal/api/metrics"
	"github.com/fruito/storefront/internal/core/domain"
)

// Fallback messages shown when the backend's error body carries no usable
// "detail" field. The texts match what the storefront has always displayed.
const (
	fallbackSignup  = "Signup failed"
	fallbackLogin   = "Login failed"
	fallbackGeneric = "Failed"
)

// Client is a thin wrapper over net/http. It never retries and sets no
// per-call deadline of its own; cancellation and timeouts come from the
// request context and the underlying transport defaults.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New builds a Client for the given base URL. httpClient may be nil, in
// which case a default client with no explicit timeout is used.
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createProductRequest struct {
	Product     domain.ProductFields    `json:"product"`
	Credentials domain.AdminCredentials `json:"credentials"`
}

// SignupUser registers a new account. The backend payload is returned
// verbatim; the caller does not persist it.
func (c *Client) SignupUser(ctx context.Context, name, email, password string) (json.RawMessage, error) {
	return c.do(ctx, "signup", http.MethodPost, "/auth/user/signup",
		signupRequest{Name: name, Email: email, Password: password}, fallbackSignup)
}

// LoginUser authenticates a user. The payload is whatever the backend issued
// and is persisted as-is by the caller.
func (c *Client) LoginUser(ctx context.Context, email, password string) (json.RawMessage, error) {
	return c.do(ctx, "login_user", http.MethodPost, "/auth/user/login",
		loginRequest{Email: email, Password: password}, fallbackLogin)
}

// LoginAdmin authenticates an admin. Only success or failure matters; the
// response body is discarded.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) error {
	_, err := c.do(ctx, "login_admin", http.MethodPost, "/auth/admin/login",
		loginRequest{Email: email, Password: password}, fallbackLogin)
	return err
}

// ListProducts fetches the full catalogue.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.do(ctx, "list_products", http.MethodGet, "/products", nil, fallbackGeneric)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A malformed success body surfaces the same way as a rejection.
		return nil, &domain.RequestError{Message: fallbackGeneric}
	}
	return products, nil
}

// CreateProduct submits a new product together with the admin credentials.
// Credentials travel on every call; the stored admin flag never authorizes
// the request itself.
func (c *Client) CreateProduct(ctx context.Context, fields domain.ProductFields, creds domain.AdminCredentials) (json.RawMessage, error) {
	return c.do(ctx, "create_product", http.MethodPost, "/admin/products",
		createProductRequest{Product: fields, Credentials: creds}, fallbackGeneric)
}

// errorBody is the shape the backend uses for rejections. The detail field
// is optional; its absence falls back to the operation's fixed message.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one request and normalizes the outcome. On 2xx the body must
// at least be valid JSON; it is then returned untouched. Anything else wraps
// the backend's detail message, or the fallback, in a RequestError. Transport
// failures take the same path with StatusCode zero, and a 2xx body that does
// not parse counts as a failure too, never as a success.
func (c *Client) do(ctx context.Context, operation, method, path string, body any, fallback string) (json.RawMessage, error) {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.RequestError{Message: fallback}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &domain.RequestError{Message: fallback}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		c.logger.Warn().Err(err).Str("operation", operation).Msg("backend unreachable")
		return nil, &domain.RequestError{Message: fallback}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return nil, &domain.RequestError{Message: fallback, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "rejected").Inc()
		message := fallback
		var eb errorBody
		if err := json.Unmarshal(payload, &eb); err == nil && eb.Detail != "" {
			message = eb.Detail
		}
		c.logger.Debug().Int("status", resp.StatusCode).Str("operation", operation).Msg("backend rejected request")
		return nil, &domain.RequestError{Message: message, StatusCode: resp.StatusCode}
	}

	if !json.Valid(payload) {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "malformed").Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("operation", operation).Msg("backend success body not valid json")
		return nil, &domain.RequestError{Message: fallback, StatusCode: resp.StatusCode}
	}

	metrics.BackendRequestsTotal.WithLabelValues(operation, "success").Inc()
	return payload, nil
}
