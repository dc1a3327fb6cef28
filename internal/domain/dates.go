package domain

import (
	"fmt"
	"time"
)

// DateOnly strips the time-of-day from t. All due-date comparisons happen at
// date granularity in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to the date part of t. It uses Go's date
// normalization: Jan 31 + 1 month lands on Mar 2 or Mar 3 depending on
// February's length, while Jan 31 + 2 months is Mar 31. Installment schedules
// are always computed from the first due date, never chained, so the rule
// applies once per position.
func AddMonths(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, n, 0)
}

// DaysUntil returns the number of whole days from today until due. Negative
// for past dates.
func DaysUntil(today, due time.Time) int {
	diff := DateOnly(due).Sub(DateOnly(today))
	return int(diff.Hours() / 24)
}

// CurrentMonthYear returns the ledger period that now falls in.
func CurrentMonthYear(now time.Time) (month, year int) {
	return int(now.Month()), now.Year()
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatMonthYear renders a ledger period as displayed in the UI, e.g.
// "janeiro de 2026".
func FormatMonthYear(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d/%d", month, year)
	}
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}
