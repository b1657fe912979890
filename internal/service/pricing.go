package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidPriceRequest marks requests rejected before any limit check.
var ErrInvalidPriceRequest = errors.New("invalid price request")

// Per-currency single transaction limits.
var defaultLimits = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(10000),
	"EUR": decimal.NewFromInt(8000),
	"JPY": decimal.NewFromInt(1200000),
}

var markup = decimal.RequireFromString("1.001")

type PriceRequest struct {
	UserID   string          `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type PriceQuote struct {
	Allowed bool            `json:"allowed"`
	Price   decimal.Decimal `json:"price"`
	Message string          `json:"message"`
}

type PricingService struct {
	limits map[string]decimal.Decimal
}

func NewPricingService() *PricingService {
	return &PricingService{limits: defaultLimits}
}

// Validate checks the request shape: user id present, amount positive with at
// most two decimal places, currency one of the supported codes.
func (s *PricingService) Validate(req PriceRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id required", ErrInvalidPriceRequest)
	}
	if err := checkAmount(req.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPriceRequest, err)
	}
	if _, ok := s.limits[req.Currency]; !ok {
		return fmt.Errorf("%w: unsupported currency: %s", ErrInvalidPriceRequest, req.Currency)
	}
	return nil
}

// CheckLimits reports whether amount in currency is within the configured limit,
// and a human readable reason when it is not.
func (s *PricingService) CheckLimits(amount decimal.Decimal, currency string) (bool, string) {
	if err := checkAmount(amount); err != nil {
		return false, err.Error()
	}
	limit, ok := s.limits[currency]
	if !ok {
		return false, fmt.Sprintf("unsupported currency: %s", currency)
	}
	if amount.GreaterThan(limit) {
		return false, fmt.Sprintf("%s amount %s exceeds limit %s", currency, amount.StringFixed(2), limit.String())
	}
	return true, "OK"
}

// Quote runs the limit check and prices the request.
func (s *PricingService) Quote(req PriceRequest) PriceQuote {
	allowed, msg := s.CheckLimits(req.Amount, req.Currency)
	if !allowed {
		return PriceQuote{Allowed: false, Message: "transaction rejected: " + msg}
	}
	return PriceQuote{
		Allowed: true,
		Price:   req.Amount.Mul(markup),
		Message: "transaction approved",
	}
}
