package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusFilter restricts bills by derived payment status.
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterPaid    StatusFilter = "paid"
	StatusFilterPending StatusFilter = "pending"
	StatusFilterOverdue StatusFilter = "overdue"
)

// TypeFilter restricts bills by bill type.
type TypeFilter string

const (
	TypeFilterAll      TypeFilter = "all"
	TypeFilterFixed    TypeFilter = "fixed"
	TypeFilterVariable TypeFilter = "variable"
)

// FilterQuery is the set of predicates applied to a bill collection. Today is
// explicit so that status classification stays deterministic.
type FilterQuery struct {
	Search   string
	Status   StatusFilter
	BillType TypeFilter
	Today    time.Time
}

// FilterResult is the filtered subsequence plus the totals derived from it.
// TotalSplitAmount halves split bills only; non-split bills contribute their
// full amount.
type FilterResult struct {
	Bills            []*Bill
	TotalAmount      decimal.Decimal
	TotalSplitAmount decimal.Decimal
}

// FilterBills applies search, status and type predicates over bills,
// preserving their relative order. Callers fetch bills sorted by ascending
// due date and filtering must not reorder them.
func FilterBills(bills []*Bill, q FilterQuery) FilterResult {
	search := strings.ToLower(q.Search)

	result := FilterResult{
		Bills:            make([]*Bill, 0, len(bills)),
		TotalAmount:      decimal.Zero,
		TotalSplitAmount: decimal.Zero,
	}

	for _, b := range bills {
		if search != "" && !strings.Contains(strings.ToLower(b.Description), search) {
			continue
		}
		if !matchesStatus(b, q.Status, q.Today) {
			continue
		}
		if !matchesType(b, q.BillType) {
			continue
		}

		result.Bills = append(result.Bills, b)
		result.TotalAmount = result.TotalAmount.Add(b.Amount)
		result.TotalSplitAmount = result.TotalSplitAmount.Add(b.PerPersonAmount())
	}

	return result
}

func matchesStatus(b *Bill, filter StatusFilter, today time.Time) bool {
	switch filter {
	case StatusFilterAll, "":
		return true
	case StatusFilterPaid:
		return b.Status(today) == BillStatusPaid
	case StatusFilterPending:
		return b.Status(today) == BillStatusPending
	case StatusFilterOverdue:
		return b.Status(today) == BillStatusOverdue
	}
	return false
}

func matchesType(b *Bill, filter TypeFilter) bool {
	switch filter {
	case TypeFilterAll, "":
		return true
	case TypeFilterFixed:
		return b.BillType == BillTypeFixed
	case TypeFilterVariable:
		return b.BillType == BillTypeVariable
	}
	return false
}
