package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"orderview/internal/model"
	"orderview/internal/service"
)

type OrderLister interface {
	List(ctx context.Context) ([]model.Order, error)
}

type OrderCreator interface {
	Create(ctx context.Context, o service.NewOrder) (*model.StoredOrder, error)
}

type createOrderRequest struct {
	UserID   string      `json:"user_id"`
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

// ListOrdersHandler answers with every order as a JSON array, empty included.
func ListOrdersHandler(orders OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		list, err := orders.List(r.Context())
		if err != nil {
			slog.Error("order list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func CreateOrderHandler(orders OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		newOrder, err := service.ParseNewOrder(req.UserID, req.Amount.String(), req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		stored, err := orders.Create(r.Context(), newOrder)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidOrder):
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			default:
				slog.Error("order create failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		slog.Info("order created", "id", stored.ID, "currency", stored.Currency)
		writeJSON(w, http.StatusCreated, stored)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}
