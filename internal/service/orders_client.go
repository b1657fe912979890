package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"orderview/internal/metrics"
	"orderview/internal/model"
)

// ErrNetwork marks failures where the orders endpoint could not be reached at all.
var ErrNetwork = errors.New("network error")

// HTTPStatusError is returned when the orders endpoint answers with a non-success status.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d, body: %s", e.StatusCode, e.Body)
}

// OrdersPath is appended to the base URL for the list request.
const OrdersPath = "/orders/"

type OrdersClient struct {
	baseURL string
	client  *http.Client
}

type ClientOption func(*OrdersClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(oc *OrdersClient) {
		oc.client = c
	}
}

func NewOrdersClient(baseURL string, opts ...ClientOption) *OrdersClient {
	c := &OrdersClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL fixed at construction.
func (c *OrdersClient) BaseURL() string {
	return c.baseURL
}

// FetchOrders issues one GET <baseURL>/orders/ and decodes the JSON array in the body.
func (c *OrdersClient) FetchOrders(ctx context.Context) ([]model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+OrdersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.OrdersFetchTotal.WithLabelValues("network").Inc()
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.OrdersFetchTotal.WithLabelValues("status").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		metrics.OrdersFetchTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	metrics.OrdersFetchTotal.WithLabelValues("ok").Inc()

	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
