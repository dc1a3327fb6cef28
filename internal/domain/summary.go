package domain

import "github.com/shopspring/decimal"

// BudgetSummary aggregates one month's ledger entries together with the bill
// totals into the figures the reporting surface shows.
type BudgetSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalAdjustments decimal.Decimal
	PendingAmount    decimal.Decimal
	CurrentBalance   decimal.Decimal
	ExpectedBalance  decimal.Decimal
}

// SummarizeBudget computes the monthly summary. billsTotalAmount and
// billsTotalPaid come from the unfiltered bill collection. Empty input yields
// zero sums; the computation is deterministic for identical inputs.
//
// CurrentBalance = income + adjustments - expenses - paid bills.
// ExpectedBalance projects the balance after all pending bills are also paid.
func SummarizeBudget(entries []*BudgetEntry, billsTotalAmount, billsTotalPaid decimal.Decimal) BudgetSummary {
	s := BudgetSummary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalAdjustments: decimal.Zero,
	}

	for _, e := range entries {
		switch e.Type {
		case EntryTypeIncome:
			s.TotalIncome = s.TotalIncome.Add(e.Amount)
		case EntryTypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		case EntryTypeAdjustment:
			s.TotalAdjustments = s.TotalAdjustments.Add(e.Amount)
		}
	}

	s.PendingAmount = billsTotalAmount.Sub(billsTotalPaid)
	s.CurrentBalance = s.TotalIncome.
		Add(s.TotalAdjustments).
		Sub(s.TotalExpenses).
		Sub(billsTotalPaid)
	s.ExpectedBalance = s.CurrentBalance.Sub(s.PendingAmount)

	return s
}

// BillTotals sums the whole collection's amounts and the paid subset's
// amounts, the two inputs SummarizeBudget needs from the bill side.
func BillTotals(bills []*Bill) (totalAmount, totalPaid decimal.Decimal) {
	totalAmount = decimal.Zero
	totalPaid = decimal.Zero

	for _, b := range bills {
		totalAmount = totalAmount.Add(b.Amount)
		if b.Paid {
			totalPaid = totalPaid.Add(b.Amount)
		}
	}

	return totalAmount, totalPaid
}
