package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mgoulart/billtrack/internal/adapter/http/dto"
	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// ReminderService defines the behavior needed by ReminderHandler.
type ReminderService interface {
	GetDueBills(ctx context.Context, input usecase.GetDueBillsInput) (domain.DueBills, error)
}

// ReminderHandler handles due-date reminder HTTP requests.
type ReminderHandler struct {
	reminderUC  ReminderService
	defaultDays int
}

// NewReminderHandler creates a new ReminderHandler. defaultDays is the
// lookahead window used when the request does not set one.
func NewReminderHandler(reminderUC ReminderService, defaultDays int) *ReminderHandler {
	return &ReminderHandler{reminderUC: reminderUC, defaultDays: defaultDays}
}

// DueBills lists overdue bills and bills due within the lookahead window.
func (h *ReminderHandler) DueBills(w http.ResponseWriter, r *http.Request) {
	due, err := h.reminderUC.GetDueBills(r.Context(), usecase.GetDueBillsInput{
		OwnerID:   ownerID(r),
		DaysAhead: parseIntQuery(r, "days", h.defaultDays),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list due bills", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DueBillsFromDomain(due, time.Now().UTC()))
}
