package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBill_BaseDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "installment suffix stripped",
			description: "Notebook (3/12)",
			want:        "Notebook",
		},
		{
			name:        "plain description unchanged",
			description: "Internet",
			want:        "Internet",
		},
		{
			name:        "truncates at the first parenthesis",
			description: "TV (sala) (1/10)",
			want:        "TV",
		},
		{
			name:        "empty",
			description: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bill{Description: tt.description}
			if got := b.BaseDescription(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBill_Status(t *testing.T) {
	today := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		paid    bool
		dueDate time.Time
		want    BillStatus
	}{
		{
			name:    "paid regardless of date",
			paid:    true,
			dueDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    BillStatusPaid,
		},
		{
			name:    "unpaid due today is pending",
			dueDate: time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC),
			want:    BillStatusPending,
		},
		{
			name:    "unpaid due tomorrow is pending",
			dueDate: time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC),
			want:    BillStatusPending,
		},
		{
			name:    "unpaid due yesterday is overdue",
			dueDate: time.Date(2026, 6, 14, 23, 59, 0, 0, time.UTC),
			want:    BillStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bill{Paid: tt.paid, DueDate: tt.dueDate}
			if got := b.Status(today); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBill_PerPersonAmount(t *testing.T) {
	split := &Bill{Amount: decimal.NewFromInt(101), Split: true}
	if !split.PerPersonAmount().Equal(decimal.NewFromFloat(50.5)) {
		t.Errorf("expected 50.5, got %s", split.PerPersonAmount())
	}

	whole := &Bill{Amount: decimal.NewFromInt(101)}
	if !whole.PerPersonAmount().Equal(decimal.NewFromInt(101)) {
		t.Errorf("expected 101, got %s", whole.PerPersonAmount())
	}
}

func TestParseBillType(t *testing.T) {
	if _, err := ParseBillType("fixed"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseBillType("variable"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseBillType("recurring"); err == nil {
		t.Error("expected error for unknown type")
	}
}
