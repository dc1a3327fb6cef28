package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BillType distinguishes recurring fixed bills from variable ones.
type BillType string

const (
	BillTypeFixed    BillType = "fixed"
	BillTypeVariable BillType = "variable"
)

// BillStatus is the derived payment status of a bill relative to a reference date.
type BillStatus string

const (
	BillStatusPaid    BillStatus = "paid"
	BillStatusPending BillStatus = "pending"
	BillStatusOverdue BillStatus = "overdue"
)

// Bill represents a single financial obligation. For installment purchases,
// each position in the series is its own Bill and Amount is the
// per-installment value, not the total purchase value.
type Bill struct {
	ID                string
	OwnerID           string
	Description       string
	Amount            decimal.Decimal
	DueDate           time.Time
	Paid              bool
	Split             bool
	BillType          BillType
	IsInstallment     bool
	InstallmentNumber int
	TotalInstallments int
	CreatedAt         time.Time
}

// BaseDescription returns the description with any " (i/n)" position marker
// removed. It truncates at the first " (", which is the only grouping key an
// installment series has besides owner and total count.
func (b *Bill) BaseDescription() string {
	if idx := strings.Index(b.Description, " ("); idx >= 0 {
		return b.Description[:idx]
	}
	return b.Description
}

// Status classifies the bill against today at date granularity. A bill due
// today is still pending; overdue means strictly before today.
func (b *Bill) Status(today time.Time) BillStatus {
	if b.Paid {
		return BillStatusPaid
	}
	if DateOnly(b.DueDate).Before(DateOnly(today)) {
		return BillStatusOverdue
	}
	return BillStatusPending
}

// PerPersonAmount returns the amount each party owes: half for split bills,
// the full amount otherwise. The stored Amount is never altered.
func (b *Bill) PerPersonAmount() decimal.Decimal {
	if b.Split {
		return b.Amount.Div(decimal.NewFromInt(2))
	}
	return b.Amount
}

// ParseBillType parses a bill type string.
func ParseBillType(s string) (BillType, error) {
	switch BillType(s) {
	case BillTypeFixed, BillTypeVariable:
		return BillType(s), nil
	}
	return "", ErrInvalidBillType
}
