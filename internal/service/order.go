package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderview/internal/model"
)

const (
	DefaultCurrency = "USD"
	DefaultStatus   = "PENDING"
)

var ErrInvalidOrder = errors.New("invalid order")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NewOrder is a validated order creation request.
type NewOrder struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Currency string
}

// ParseNewOrder validates raw input: user id must be a UUID, amount a positive decimal
// with at most two places, currency a three letter code (USD when empty).
func ParseNewOrder(userID, amount, currency string) (NewOrder, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return NewOrder{}, fmt.Errorf("%w: user_id: %v", ErrInvalidOrder, err)
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return NewOrder{}, fmt.Errorf("%w: amount: %v", ErrInvalidOrder, err)
	}
	if err := checkAmount(amt); err != nil {
		return NewOrder{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if amt.GreaterThanOrEqual(decimal.New(1, 10)) {
		return NewOrder{}, fmt.Errorf("%w: amount exceeds 12 digits", ErrInvalidOrder)
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	currency = strings.ToUpper(currency)
	if !currencyPattern.MatchString(currency) {
		return NewOrder{}, fmt.Errorf("%w: currency must be a 3 letter code", ErrInvalidOrder)
	}

	return NewOrder{UserID: uid, Amount: amt, Currency: currency}, nil
}

type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) Create(ctx context.Context, o NewOrder) (*model.StoredOrder, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, amount, currency, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount::text, currency, status, created_at, updated_at
	`, o.UserID.String(), o.Amount.StringFixed(2), o.Currency, DefaultStatus)

	var stored model.StoredOrder
	if err := scanStoredOrder(row, &stored); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &stored, nil
}

// List returns every order in creation order.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount::text, currency, status, created_at, updated_at
		FROM orders
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.StoredOrder
		if err := scanStoredOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o.Order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStoredOrder(row scanner, o *model.StoredOrder) error {
	return row.Scan(&o.ID, &o.UserID, &o.Amount, &o.Currency, &o.Status, &o.CreatedAt, &o.UpdatedAt)
}
