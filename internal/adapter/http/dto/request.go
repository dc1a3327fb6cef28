package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// CreateBillRequest represents a request to create a bill. When
// is_installment is set the request describes the whole purchase and the
// server expands it into one bill per position.
type CreateBillRequest struct {
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"due_date"`
	Paid              bool            `json:"paid"`
	Split             bool            `json:"split"`
	BillType          string          `json:"bill_type"`
	IsInstallment     bool            `json:"is_installment"`
	InstallmentNumber int             `json:"installment_number,omitempty"`
	TotalInstallments int             `json:"total_installments,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBillRequest) ToUseCaseInput(ownerID string) usecase.CreateBillInput {
	return usecase.CreateBillInput{
		OwnerID:           ownerID,
		Description:       r.Description,
		Amount:            r.Amount,
		DueDate:           r.DueDate,
		Paid:              r.Paid,
		Split:             r.Split,
		BillType:          domain.BillType(r.BillType),
		IsInstallment:     r.IsInstallment,
		InstallmentNumber: r.InstallmentNumber,
		TotalInstallments: r.TotalInstallments,
	}
}

// UpdateBillRequest represents a request to replace a bill's fields.
type UpdateBillRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Paid        bool            `json:"paid"`
	Split       bool            `json:"split"`
	BillType    string          `json:"bill_type"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBillRequest) ToUseCaseInput(id, ownerID string) usecase.UpdateBillInput {
	return usecase.UpdateBillInput{
		ID:          id,
		OwnerID:     ownerID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Paid:        r.Paid,
		Split:       r.Split,
		BillType:    domain.BillType(r.BillType),
	}
}

// SetPaidRequest represents a request to toggle a bill's paid flag.
type SetPaidRequest struct {
	Paid bool `json:"paid"`
}

// AddBudgetEntryRequest represents a request to add a budget ledger entry.
type AddBudgetEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *AddBudgetEntryRequest) ToUseCaseInput(ownerID string) usecase.AddEntryInput {
	return usecase.AddEntryInput{
		OwnerID:     ownerID,
		Amount:      r.Amount,
		Month:       r.Month,
		Year:        r.Year,
		Description: r.Description,
		Type:        domain.EntryType(r.Type),
	}
}
