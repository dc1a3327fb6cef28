package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a budget ledger entry.
type EntryType string

const (
	EntryTypeIncome     EntryType = "income"
	EntryTypeExpense    EntryType = "expense"
	EntryTypeAdjustment EntryType = "adjustment"
)

// BudgetEntry represents one income, expense or adjustment line in the
// monthly ledger. Amount is always non-negative; the entry type determines
// the sign it contributes to the summary.
type BudgetEntry struct {
	ID          string
	OwnerID     string
	Amount      decimal.Decimal
	Month       int
	Year        int
	Description string
	Type        EntryType
	CreatedAt   time.Time
}

// ParseEntryType parses a budget entry type string.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryTypeIncome, EntryTypeExpense, EntryTypeAdjustment:
		return EntryType(s), nil
	}
	return "", ErrInvalidEntryType
}
