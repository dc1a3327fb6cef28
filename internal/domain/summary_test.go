package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarizeBudget_TypeSums(t *testing.T) {
	entries := []*BudgetEntry{
		{Type: EntryTypeIncome, Amount: decimal.NewFromInt(3000)},
		{Type: EntryTypeIncome, Amount: decimal.NewFromInt(500)},
		{Type: EntryTypeExpense, Amount: decimal.NewFromInt(200)},
		{Type: EntryTypeAdjustment, Amount: decimal.NewFromInt(150)},
	}

	s := SummarizeBudget(entries, decimal.NewFromInt(1000), decimal.NewFromInt(400))

	if !s.TotalIncome.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected income 3500, got %s", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected expenses 200, got %s", s.TotalExpenses)
	}
	if !s.TotalAdjustments.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected adjustments 150, got %s", s.TotalAdjustments)
	}
	if !s.PendingAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected pending 600, got %s", s.PendingAmount)
	}

	// 3500 + 150 - 200 - 400
	if !s.CurrentBalance.Equal(decimal.NewFromInt(3050)) {
		t.Errorf("expected current balance 3050, got %s", s.CurrentBalance)
	}
	if !s.ExpectedBalance.Equal(decimal.NewFromInt(2450)) {
		t.Errorf("expected expected balance 2450, got %s", s.ExpectedBalance)
	}
}

func TestSummarizeBudget_BalanceIdentity(t *testing.T) {
	tests := []struct {
		name       string
		entries    []*BudgetEntry
		total      decimal.Decimal
		paid       decimal.Decimal
	}{
		{
			name:    "empty",
			entries: nil,
			total:   decimal.Zero,
			paid:    decimal.Zero,
		},
		{
			name: "negative balance",
			entries: []*BudgetEntry{
				{Type: EntryTypeExpense, Amount: decimal.NewFromInt(5000)},
			},
			total: decimal.NewFromInt(300),
			paid:  decimal.NewFromInt(100),
		},
		{
			name: "fractional amounts",
			entries: []*BudgetEntry{
				{Type: EntryTypeIncome, Amount: decimal.NewFromFloat(1234.56)},
				{Type: EntryTypeAdjustment, Amount: decimal.NewFromFloat(0.01)},
			},
			total: decimal.NewFromFloat(99.99),
			paid:  decimal.NewFromFloat(33.33),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeBudget(tt.entries, tt.total, tt.paid)

			want := s.CurrentBalance.Sub(tt.total.Sub(tt.paid))
			if !s.ExpectedBalance.Equal(want) {
				t.Errorf("expected balance identity to hold: got %s, want %s", s.ExpectedBalance, want)
			}
		})
	}
}

func TestSummarizeBudget_EmptyYieldsZeros(t *testing.T) {
	s := SummarizeBudget(nil, decimal.Zero, decimal.Zero)

	for name, v := range map[string]decimal.Decimal{
		"income":      s.TotalIncome,
		"expenses":    s.TotalExpenses,
		"adjustments": s.TotalAdjustments,
		"pending":     s.PendingAmount,
		"current":     s.CurrentBalance,
		"expected":    s.ExpectedBalance,
	} {
		if !v.IsZero() {
			t.Errorf("expected zero %s, got %s", name, v)
		}
	}
}

// The full scenario: one paid bill of 100, one unpaid bill of 50 due
// yesterday, a single income entry of 1000.
func TestSummarizeBudget_EndToEndScenario(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	bills := []*Bill{
		{ID: "1", Amount: decimal.NewFromInt(100), Paid: true, DueDate: today},
		{ID: "2", Amount: decimal.NewFromInt(50), Paid: false, DueDate: yesterday},
	}
	entries := []*BudgetEntry{
		{Type: EntryTypeIncome, Amount: decimal.NewFromInt(1000)},
	}

	total, paid := BillTotals(bills)
	if !paid.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected paid total 100, got %s", paid)
	}

	s := SummarizeBudget(entries, total, paid)

	if !s.PendingAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected pending 50, got %s", s.PendingAmount)
	}
	if !s.CurrentBalance.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected current balance 900, got %s", s.CurrentBalance)
	}
	if !s.ExpectedBalance.Equal(decimal.NewFromInt(850)) {
		t.Errorf("expected expected balance 850, got %s", s.ExpectedBalance)
	}

	if got := bills[1].Status(today); got != BillStatusOverdue {
		t.Errorf("expected second bill overdue, got %s", got)
	}
}

func TestBillTotals(t *testing.T) {
	bills := []*Bill{
		{Amount: decimal.NewFromFloat(10.50), Paid: true},
		{Amount: decimal.NewFromFloat(20.25), Paid: false},
		{Amount: decimal.NewFromFloat(5.25), Paid: true},
	}

	total, paid := BillTotals(bills)

	if !total.Equal(decimal.NewFromFloat(36)) {
		t.Errorf("expected total 36, got %s", total)
	}
	if !paid.Equal(decimal.NewFromFloat(15.75)) {
		t.Errorf("expected paid 15.75, got %s", paid)
	}
}
