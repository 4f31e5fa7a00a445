// Package client is a typed HTTP client for the marketplace API.
package client

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

	"market/config"
	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsAPIError reports whether err is an APIError with one of the given codes.
// With no codes it matches any APIError.
func IsAPIError(err error, codes ...string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if apiErr.Code == code {
			return true
		}
	}

	return false
}

// Client calls the marketplace API with a bearer token.
// Every request is bounded by the client timeout and the caller's context.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig creates a client from the client section of the configuration.
func NewFromConfig(cfg *config.ClientConfig) *Client {
	opts := []Option{WithToken(cfg.Token)}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}

	return New(cfg.BaseURL, opts...)
}

// SetToken replaces the bearer token, e.g. after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error json.RawMessage `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends body as JSON and decodes the data field of the answer into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	raw, status, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return errors.Wrapf(err, "%s %s: decode response", method, path)
		}
	}

	if status >= http.StatusBadRequest {
		return decodeAPIError(status, env.Error)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrapf(json.Unmarshal(env.Data, out), "%s %s: decode data", method, path)
}

func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrapf(err, "%s %s: read response", method, path)
	}

	return raw, resp.StatusCode, nil
}

// decodeAPIError accepts both {"error":{code,message}} and the flat {"error":"message"}.
func decodeAPIError(status int, raw json.RawMessage) error {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}
	if len(raw) == 0 {
		return apiErr
	}

	var info errorInfo
	if err := json.Unmarshal(raw, &info); err == nil {
		apiErr.Code, apiErr.Message = info.Code, info.Message

		return apiErr
	}

	var message string
	if err := json.Unmarshal(raw, &message); err == nil {
		apiErr.Message = message
	}

	return apiErr
}

// Login signs in to a portal and keeps the token for later calls.
func (c *Client) Login(ctx context.Context, role entity.Role, email, password string) (*usecase.LoginOutput, error) {
	var out usecase.LoginOutput
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/"+url.PathEscape(role.String())+"/login", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token

	return &out, nil
}

// ListStoreProducts returns the storefront listing with global stock.
func (c *Client) ListStoreProducts(ctx context.Context) ([]entity.StoreProduct, error) {
	var out []entity.StoreProduct

	return out, c.do(ctx, http.MethodGet, "/api/v1/store/products", nil, &out)
}

// GetProductGlobalStock returns a product's stock summed over all growers.
func (c *Client) GetProductGlobalStock(ctx context.Context, productID uuid.UUID) (int, error) {
	var out entity.ProductStock
	if err := c.do(ctx, http.MethodGet, "/api/v1/store/products/"+productID.String()+"/stock", nil, &out); err != nil {
		return 0, err
	}

	return out.GlobalStock, nil
}

// GetCheckoutSession returns one checkout session.
func (c *Client) GetCheckoutSession(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error) {
	var out entity.CheckoutSession
	if err := c.do(ctx, http.MethodGet, "/api/v1/checkout/sessions/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AddGrowerProduct starts stocking a product at catalog prices.
func (c *Client) AddGrowerProduct(ctx context.Context, productID uuid.UUID, stock int, forceReplace bool) (*entity.GrowerProduct, error) {
	body := map[string]any{"product_id": productID, "stock": stock, "force_replace": forceReplace}

	var out entity.GrowerProduct
	if err := c.do(ctx, http.MethodPost, "/api/v1/grower/products", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListGrowerProducts returns the products the grower stocks.
func (c *Client) ListGrowerProducts(ctx context.Context) ([]*entity.GrowerProduct, error) {
	var out []*entity.GrowerProduct

	return out, c.do(ctx, http.MethodGet, "/api/v1/grower/products", nil, &out)
}

// RemoveGrowerProduct stops stocking a product.
func (c *Client) RemoveGrowerProduct(ctx context.Context, productID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/grower/products/"+productID.String(), nil, nil)
}

// UpdateGrowerProductStock sets the grower's total stock for a product.
func (c *Client) UpdateGrowerProductStock(ctx context.Context, productID uuid.UUID, stock int) error {
	return c.do(ctx, http.MethodPut, "/api/v1/grower/products/"+productID.String()+"/stock", map[string]int{"stock": stock}, nil)
}

// UpdateMultipleVariantPrices sets several variant prices at once.
func (c *Client) UpdateMultipleVariantPrices(ctx context.Context, prices []entity.VariantPrice) error {
	return c.do(ctx, http.MethodPut, "/api/v1/grower/variants/prices", map[string]any{"prices": prices}, nil)
}

// GetGrowerStockPageData returns the stock editor data for one product.
func (c *Client) GetGrowerStockPageData(ctx context.Context, productID uuid.UUID) (*entity.GrowerStockPageData, error) {
	var out entity.GrowerStockPageData
	if err := c.do(ctx, http.MethodGet, "/api/v1/grower/products/"+productID.String()+"/stock", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateGrowerStockUpdateRequest asks admins to validate a stock or price change.
func (c *Client) CreateGrowerStockUpdateRequest(ctx context.Context, input *usecase.CreateStockUpdateInput) (*entity.GrowerStockUpdate, error) {
	var out entity.GrowerStockUpdate
	if err := c.do(ctx, http.MethodPost, "/api/v1/grower/stock-updates", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CancelStockUpdateRequest withdraws one of the grower's pending requests.
func (c *Client) CancelStockUpdateRequest(ctx context.Context, requestID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/grower/stock-updates/"+requestID.String(), nil, nil)
}

// ListStockUpdateRequests lists validation requests; status may be empty.
// Admin tokens see every grower's requests, grower tokens their own.
func (c *Client) ListStockUpdateRequests(ctx context.Context, role entity.Role, status entity.StockUpdateStatus) ([]*entity.GrowerStockUpdate, error) {
	path := "/api/admin/stock-updates"
	if role == entity.RoleGrower {
		path = "/api/v1/grower/stock-updates"
	}
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var out []*entity.GrowerStockUpdate

	return out, c.do(ctx, http.MethodGet, path, nil, &out)
}

// ApproveStockUpdateRequest applies a pending request.
func (c *Client) ApproveStockUpdateRequest(ctx context.Context, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error) {
	return c.decide(ctx, requestID, "approve", comment)
}

// RejectStockUpdateRequest rejects a pending request.
func (c *Client) RejectStockUpdateRequest(ctx context.Context, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error) {
	return c.decide(ctx, requestID, "reject", comment)
}

func (c *Client) decide(ctx context.Context, requestID uuid.UUID, action, comment string) (*entity.GrowerStockUpdate, error) {
	var out entity.GrowerStockUpdate
	path := "/api/admin/stock-updates/" + requestID.String() + "/" + action
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"comment": comment}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AllocateCredit credits a customer's wallet and returns the server's confirmation message.
func (c *Client) AllocateCredit(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, reason string) (string, error) {
	body := map[string]any{"customerId": customerID, "amount": amount}
	if reason != "" {
		body["reason"] = reason
	}

	raw, status, err := c.send(ctx, http.MethodPost, "/api/admin/allocate-credit", body)
	if err != nil {
		return "", err
	}

	var out struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, "decode allocate-credit response")
	}
	if status >= http.StatusBadRequest {
		return "", decodeAPIError(status, out.Error)
	}

	return out.Message, nil
}
