package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expectError bool
	}{
		{"valid", "Conta de luz", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"max length", strings.Repeat("a", MaxDescriptionLength), false},
		{"too long", strings.Repeat("a", MaxDescriptionLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(10.50)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateAmount(decimal.Zero); err != nil {
		t.Errorf("zero amount should be valid: %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
	if err := ValidateAmount(decimal.RequireFromString("1000000001")); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestValidateMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if err := ValidateMonth(m); err != nil {
			t.Errorf("month %d: unexpected error: %v", m, err)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if err := ValidateMonth(m); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("month %d: expected ErrInvalidMonth, got %v", m, err)
		}
	}
}

func TestValidateOwnerID(t *testing.T) {
	if err := ValidateOwnerID("owner-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateOwnerID(" "); !errors.Is(err, ErrMissingOwner) {
		t.Errorf("expected ErrMissingOwner, got %v", err)
	}
}
