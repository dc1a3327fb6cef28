package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// BillResponse represents a bill in API responses. Formatted fields carry
// the pt-BR rendering the web client shows verbatim.
type BillResponse struct {
	ID                string          `json:"id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	AmountFormatted   string          `json:"amount_formatted"`
	DueDate           time.Time       `json:"due_date"`
	Paid              bool            `json:"paid"`
	Split             bool            `json:"split"`
	PerPersonAmount   decimal.Decimal `json:"per_person_amount"`
	BillType          string          `json:"bill_type"`
	Status            string          `json:"status"`
	IsInstallment     bool            `json:"is_installment"`
	InstallmentNumber int             `json:"installment_number,omitempty"`
	TotalInstallments int             `json:"total_installments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// BillFromDomain converts a domain bill to a response. today anchors the
// status classification.
func BillFromDomain(b *domain.Bill, today time.Time) *BillResponse {
	return &BillResponse{
		ID:                b.ID,
		Description:       b.Description,
		Amount:            b.Amount,
		AmountFormatted:   domain.FormatBRL(b.Amount),
		DueDate:           b.DueDate,
		Paid:              b.Paid,
		Split:             b.Split,
		PerPersonAmount:   b.PerPersonAmount(),
		BillType:          string(b.BillType),
		Status:            string(b.Status(today)),
		IsInstallment:     b.IsInstallment,
		InstallmentNumber: b.InstallmentNumber,
		TotalInstallments: b.TotalInstallments,
		CreatedAt:         b.CreatedAt,
	}
}

// BillsFromDomain converts domain bills to responses.
func BillsFromDomain(bills []*domain.Bill, today time.Time) []*BillResponse {
	result := make([]*BillResponse, len(bills))
	for i, b := range bills {
		result[i] = BillFromDomain(b, today)
	}
	return result
}

// BillListResponse represents a filtered bill listing with its totals.
type BillListResponse struct {
	Bills                     []*BillResponse `json:"bills"`
	Count                     int             `json:"count"`
	TotalAmount               decimal.Decimal `json:"total_amount"`
	TotalAmountFormatted      string          `json:"total_amount_formatted"`
	TotalSplitAmount          decimal.Decimal `json:"total_split_amount"`
	TotalSplitAmountFormatted string          `json:"total_split_amount_formatted"`
}

// BillListFromDomain converts a filter result to a response.
func BillListFromDomain(result domain.FilterResult, today time.Time) *BillListResponse {
	return &BillListResponse{
		Bills:                     BillsFromDomain(result.Bills, today),
		Count:                     len(result.Bills),
		TotalAmount:               result.TotalAmount,
		TotalAmountFormatted:      domain.FormatBRL(result.TotalAmount),
		TotalSplitAmount:          result.TotalSplitAmount,
		TotalSplitAmountFormatted: domain.FormatBRL(result.TotalSplitAmount),
	}
}

// DeleteBillResponse reports how many bills a deletion removed.
type DeleteBillResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// BudgetEntryResponse represents a budget ledger entry in API responses.
type BudgetEntryResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BudgetEntryFromDomain converts a domain entry to a response.
func BudgetEntryFromDomain(e *domain.BudgetEntry) *BudgetEntryResponse {
	return &BudgetEntryResponse{
		ID:              e.ID,
		Amount:          e.Amount,
		AmountFormatted: domain.FormatBRL(e.Amount),
		Month:           e.Month,
		Year:            e.Year,
		Description:     e.Description,
		Type:            string(e.Type),
		CreatedAt:       e.CreatedAt,
	}
}

// BudgetEntriesFromDomain converts domain entries to responses.
func BudgetEntriesFromDomain(entries []*domain.BudgetEntry) []*BudgetEntryResponse {
	result := make([]*BudgetEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = BudgetEntryFromDomain(e)
	}
	return result
}

// BudgetSummaryResponse represents the monthly summary figures.
type BudgetSummaryResponse struct {
	TotalIncome               decimal.Decimal `json:"total_income"`
	TotalExpenses             decimal.Decimal `json:"total_expenses"`
	TotalAdjustments          decimal.Decimal `json:"total_adjustments"`
	PendingAmount             decimal.Decimal `json:"pending_amount"`
	CurrentBalance            decimal.Decimal `json:"current_balance"`
	CurrentBalanceFormatted   string          `json:"current_balance_formatted"`
	ExpectedBalance           decimal.Decimal `json:"expected_balance"`
	ExpectedBalanceFormatted  string          `json:"expected_balance_formatted"`
}

// BudgetOverviewResponse represents a period overview: the summary plus the
// entries behind it.
type BudgetOverviewResponse struct {
	Month      int                    `json:"month"`
	Year       int                    `json:"year"`
	MonthLabel string                 `json:"month_label"`
	Summary    BudgetSummaryResponse  `json:"summary"`
	Entries    []*BudgetEntryResponse `json:"entries"`
}

// BudgetOverviewFromUseCase converts a use case overview to a response.
func BudgetOverviewFromUseCase(o *usecase.BudgetOverview) *BudgetOverviewResponse {
	return &BudgetOverviewResponse{
		Month:      o.Month,
		Year:       o.Year,
		MonthLabel: domain.FormatMonthYear(o.Month, o.Year),
		Summary: BudgetSummaryResponse{
			TotalIncome:              o.Summary.TotalIncome,
			TotalExpenses:            o.Summary.TotalExpenses,
			TotalAdjustments:         o.Summary.TotalAdjustments,
			PendingAmount:            o.Summary.PendingAmount,
			CurrentBalance:           o.Summary.CurrentBalance,
			CurrentBalanceFormatted:  domain.FormatBRL(o.Summary.CurrentBalance),
			ExpectedBalance:          o.Summary.ExpectedBalance,
			ExpectedBalanceFormatted: domain.FormatBRL(o.Summary.ExpectedBalance),
		},
		Entries: BudgetEntriesFromDomain(o.Entries),
	}
}

// DueBillsResponse partitions unpaid bills for the reminder surface.
type DueBillsResponse struct {
	Overdue []*BillResponse `json:"overdue"`
	DueSoon []*BillResponse `json:"due_soon"`
}

// DueBillsFromDomain converts a due-bills partition to a response.
func DueBillsFromDomain(due domain.DueBills, today time.Time) *DueBillsResponse {
	return &DueBillsResponse{
		Overdue: BillsFromDomain(due.Overdue, today),
		DueSoon: BillsFromDomain(due.DueSoon, today),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
