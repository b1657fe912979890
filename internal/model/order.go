package model

import (
	"time"
)

type Order struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"` // PENDING, APPROVED, ... (open set)
}

// StoredOrder is an order row as the orders backend keeps it.
type StoredOrder struct {
	Order
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
