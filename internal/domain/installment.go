package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSpec describes a parameterized purchase to be expanded into a
// series of bills. Amount is the per-installment value. InstallmentNumber is
// the position being registered right now, which lets a user record a
// purchase mid-series and have the earlier positions backfilled as paid.
type InstallmentSpec struct {
	Description       string
	Amount            decimal.Decimal
	FirstDueDate      time.Time
	BillType          BillType
	Split             bool
	Paid              bool
	InstallmentNumber int
	TotalInstallments int
	OwnerID           string
}

// Validate checks the structural constraints of the purchase descriptor.
func (s InstallmentSpec) Validate() error {
	if s.TotalInstallments < 2 {
		return fmt.Errorf("%w: total installments must be at least 2, got %d",
			ErrInvalidInstallmentSpec, s.TotalInstallments)
	}
	if s.InstallmentNumber < 1 || s.InstallmentNumber > s.TotalInstallments {
		return fmt.Errorf("%w: installment number %d outside [1, %d]",
			ErrInvalidInstallmentSpec, s.InstallmentNumber, s.TotalInstallments)
	}
	if s.BillType != BillTypeFixed {
		return fmt.Errorf("%w: only fixed bills may be installments, got %q",
			ErrInvalidInstallmentSpec, s.BillType)
	}
	return nil
}

// GenerateInstallments expands the purchase into one draft bill per position
// 1..TotalInstallments. Position i is due (i-1) calendar months after the
// first due date, counted from the first due date each time. Positions before
// InstallmentNumber come out paid, the position itself carries the submitted
// Paid flag, later positions come out unpaid.
//
// The drafts have no ID or CreatedAt; the store assigns those on insert, and
// the caller must insert the whole batch atomically so a failure cannot leave
// a partially numbered series.
func GenerateInstallments(spec InstallmentSpec) ([]*Bill, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	bills := make([]*Bill, 0, spec.TotalInstallments)
	for i := 1; i <= spec.TotalInstallments; i++ {
		paid := i < spec.InstallmentNumber
		if i == spec.InstallmentNumber {
			paid = spec.Paid
		}

		bills = append(bills, &Bill{
			OwnerID:           spec.OwnerID,
			Description:       fmt.Sprintf("%s (%d/%d)", spec.Description, i, spec.TotalInstallments),
			Amount:            spec.Amount,
			DueDate:           AddMonths(spec.FirstDueDate, i-1),
			Paid:              paid,
			Split:             spec.Split,
			BillType:          spec.BillType,
			IsInstallment:     true,
			InstallmentNumber: i,
			TotalInstallments: spec.TotalInstallments,
		})
	}

	return bills, nil
}

// DeletionScope selects which part of an installment series a deletion
// applies to.
type DeletionScope string

const (
	DeleteOnlyThis      DeletionScope = "only-this"
	DeleteThisAndFuture DeletionScope = "this-and-future"
	DeleteAllInSeries   DeletionScope = "all-in-series"
)

// ParseDeletionScope parses a deletion scope string.
func ParseDeletionScope(s string) (DeletionScope, error) {
	switch DeletionScope(s) {
	case DeleteOnlyThis, DeleteThisAndFuture, DeleteAllInSeries:
		return DeletionScope(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDeletionScope, s)
}

// ResolveDeletion returns the ids to delete when removing target under the
// given scope. Siblings are matched by base description, owner and total
// count; there is no explicit series id, so two purchases sharing all three
// would be treated as one series.
//
// A non-installment target resolves to itself alone whatever the scope. An
// unrecognized scope resolves to nothing: the caller must not delete anything
// on invalid input.
func ResolveDeletion(target *Bill, scope DeletionScope, bills []*Bill) ([]string, error) {
	if !target.IsInstallment {
		return []string{target.ID}, nil
	}

	switch scope {
	case DeleteOnlyThis:
		return []string{target.ID}, nil

	case DeleteThisAndFuture, DeleteAllInSeries:
		base := target.BaseDescription()

		var ids []string
		for _, b := range bills {
			if !b.IsInstallment ||
				b.OwnerID != target.OwnerID ||
				b.TotalInstallments != target.TotalInstallments ||
				b.BaseDescription() != base {
				continue
			}
			if scope == DeleteThisAndFuture && b.InstallmentNumber < target.InstallmentNumber {
				continue
			}
			ids = append(ids, b.ID)
		}

		return ids, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeletionScope, scope)
	}
}
