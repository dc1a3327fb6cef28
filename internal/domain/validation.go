package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidDescription = errors.New("invalid description")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrMissingOwner       = errors.New("owner id is required")
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxBillAmount        = "1000000000" // 1 billion
)

// ValidateDescription validates a bill or budget entry description.
func ValidateDescription(desc string) error {
	desc = strings.TrimSpace(desc)

	if desc == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(desc) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateAmount validates a monetary amount. Amounts are never negative:
// budget entry types and bill semantics carry the sign.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	max, _ := decimal.NewFromString(MaxBillAmount)
	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxBillAmount)
	}

	return nil
}

// ValidateMonth validates a ledger period month.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	return nil
}

// ValidateOwnerID validates the owning account id. Every persisted record is
// owner-scoped.
func ValidateOwnerID(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrMissingOwner
	}
	return nil
}
