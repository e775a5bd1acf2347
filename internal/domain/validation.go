package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall  = errors.New("amount below minimum allowed")
	ErrInvalidIDFormat = errors.New("invalid ID format")
)

// Validation constants
const (
	MaxIDLength      = 64
	MaxPaymentAmount = "1000000000000" // 1 trillion
	MinPaymentAmount = "0.0001"
)

// ValidateAmount validates a payment or transaction amount
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinPaymentAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinPaymentAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxPaymentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxPaymentAmount)
	}

	return nil
}

// ValidateID validates an entity id
func ValidateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxIDLength {
		return ErrInvalidIDFormat
	}

	return nil
}
