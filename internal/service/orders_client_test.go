package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderview/internal/model"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// TestFetchOrders_RequestShape verifies the client targets <baseURL>/orders/ with GET and no body.
func TestFetchOrders_RequestShape(t *testing.T) {
	t.Parallel()

	var captured *http.Request
	stub := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[]`)),
			Header:     make(http.Header),
		}, nil
	})}

	c := NewOrdersClient("http://localhost:8000/api", WithHTTPClient(stub))
	_, err := c.FetchOrders(context.Background())
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "http://localhost:8000/api/orders/", captured.URL.String())
	assert.Zero(t, captured.ContentLength)
	assert.Empty(t, captured.Header.Get("Authorization"))
}

// TestNewOrdersClient_TrimsTrailingSlash verifies a trailing slash on the base URL is not doubled.
func TestNewOrdersClient_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	c := NewOrdersClient("http://example.test/api/")
	assert.Equal(t, "http://example.test/api", c.BaseURL())
}

// TestFetchOrders_DecodesInOrder verifies records come back in response order.
func TestFetchOrders_DecodesInOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"b","amount":"1.00","currency":"JPY","status":"SHIPPED"},
			{"id":"a","amount":"2.00","currency":"USD","status":"PENDING"}
		]`))
	}))
	defer srv.Close()

	orders, err := NewOrdersClient(srv.URL + "/api").FetchOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Order{
		{ID: "b", Amount: "1.00", Currency: "JPY", Status: "SHIPPED"},
		{ID: "a", Amount: "2.00", Currency: "USD", Status: "PENDING"},
	}, orders)
}

// TestFetchOrders_HTTPStatusError verifies non-success statuses surface as HTTPStatusError.
func TestFetchOrders_HTTPStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewOrdersClient(srv.URL).FetchOrders(context.Background())
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
	assert.False(t, errors.Is(err, ErrNetwork))
}

// TestFetchOrders_NetworkError verifies transport failures wrap ErrNetwork.
func TestFetchOrders_NetworkError(t *testing.T) {
	t.Parallel()

	stub := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}

	_, err := NewOrdersClient("http://unreachable.test", WithHTTPClient(stub)).FetchOrders(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "connection refused")
}

// TestFetchOrders_DecodeError verifies a malformed body is reported without ErrNetwork.
func TestFetchOrders_DecodeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := NewOrdersClient(srv.URL).FetchOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	assert.NotErrorIs(t, err, ErrNetwork)
}

// TestFetchOrders_NullBody verifies a JSON null decodes to an empty, non-nil slice.
func TestFetchOrders_NullBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	orders, err := NewOrdersClient(srv.URL).FetchOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
