package domain

import "errors"

var (
	// Bill errors
	ErrBillNotFound    = errors.New("bill not found")
	ErrInvalidBillType = errors.New("unknown bill type")

	// Installment errors
	ErrInvalidInstallmentSpec = errors.New("invalid installment specification")
	ErrInvalidDeletionScope   = errors.New("unrecognized deletion scope")

	// Budget errors
	ErrBudgetEntryNotFound = errors.New("budget entry not found")
	ErrInvalidEntryType    = errors.New("unknown budget entry type")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrNegativeAmount      = errors.New("amount must not be negative")
)
