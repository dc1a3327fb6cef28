package usecase

import (
	"context"
	"time"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/infrastructure/metrics"
)

// ReminderUseCase produces the due-date alerts shown by the notification
// surface.
type ReminderUseCase struct {
	billRepo BillRepository
	metrics  *metrics.Metrics
}

// NewReminderUseCase creates a new ReminderUseCase. metrics may be nil.
func NewReminderUseCase(billRepo BillRepository, m *metrics.Metrics) *ReminderUseCase {
	return &ReminderUseCase{billRepo: billRepo, metrics: m}
}

// GetDueBillsInput represents input for the due-bills partition.
type GetDueBillsInput struct {
	OwnerID   string
	DaysAhead int
	// Today overrides the reference date. Zero means the current date.
	Today time.Time
}

// GetDueBills partitions the owner's unpaid bills into overdue and
// due-within-the-window, both ordered by ascending due date.
func (uc *ReminderUseCase) GetDueBills(ctx context.Context, input GetDueBillsInput) (domain.DueBills, error) {
	if uc.metrics != nil {
		uc.metrics.DueBillLookups.Inc()
	}

	bills, err := uc.billRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return domain.DueBills{}, err
	}

	today := input.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	return domain.ClassifyDue(bills, today, input.DaysAhead), nil
}
