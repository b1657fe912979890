package view

import (
	"context"

	"orderview/internal/model"
	"orderview/internal/service"
)

// Provider supplies the record sequence the list is populated with.
type Provider func(ctx context.Context) ([]model.Order, error)

// FallbackOrders returns the sample records shown when no live backend is used.
func FallbackOrders() []model.Order {
	return []model.Order{
		{ID: "1", Amount: "100.00", Currency: "USD", Status: "PENDING"},
		{ID: "2", Amount: "250.00", Currency: "EUR", Status: "APPROVED"},
	}
}

// StaticProvider always resolves to a copy of orders.
func StaticProvider(orders []model.Order) Provider {
	fixed := append([]model.Order(nil), orders...)
	return func(context.Context) ([]model.Order, error) {
		return append([]model.Order(nil), fixed...), nil
	}
}

// ClientProvider resolves through the orders API client.
func ClientProvider(c *service.OrdersClient) Provider {
	return c.FetchOrders
}
