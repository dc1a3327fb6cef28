package domain

import "time"

// DefaultDueSoonDays is how far ahead the due-date reminder looks.
const DefaultDueSoonDays = 5

// DueBills partitions unpaid bills for the notification surface. A bill
// appears in at most one of the two lists.
type DueBills struct {
	Overdue []*Bill
	DueSoon []*Bill
}

// ClassifyDue splits unpaid bills into overdue ones and ones due within
// daysAhead days of today. Paid bills and bills further out are excluded.
func ClassifyDue(bills []*Bill, today time.Time, daysAhead int) DueBills {
	if daysAhead <= 0 {
		daysAhead = DefaultDueSoonDays
	}

	var due DueBills
	for _, b := range bills {
		if b.Paid {
			continue
		}

		switch days := DaysUntil(today, b.DueDate); {
		case days < 0:
			due.Overdue = append(due.Overdue, b)
		case days <= daysAhead:
			due.DueSoon = append(due.DueSoon, b)
		}
	}

	return due
}
