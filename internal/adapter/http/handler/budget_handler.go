package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mgoulart/billtrack/internal/adapter/http/dto"
	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// BudgetService defines the behavior needed by BudgetHandler.
type BudgetService interface {
	AddEntry(ctx context.Context, input usecase.AddEntryInput) (*domain.BudgetEntry, error)
	ListEntries(ctx context.Context, ownerID string, month, year int) ([]*domain.BudgetEntry, error)
	DeleteEntry(ctx context.Context, id, ownerID string, month, year int) error
	GetSummary(ctx context.Context, input usecase.GetSummaryInput) (*usecase.BudgetOverview, error)
}

// BudgetHandler handles budget ledger HTTP requests.
type BudgetHandler struct {
	budgetUC BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetUC BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetUC: budgetUC}
}

// AddEntry records a budget ledger entry.
func (h *BudgetHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBudgetEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.budgetUC.AddEntry(r.Context(), req.ToUseCaseInput(ownerID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BudgetEntryFromDomain(entry))
}

// ListEntries lists one period's entries. The period defaults to the
// current month.
func (h *BudgetHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	month, year := currentPeriod(r)

	entries, err := h.budgetUC.ListEntries(r.Context(), ownerID(r), month, year)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetEntriesFromDomain(entries))
}

// DeleteEntry removes a budget ledger entry.
func (h *BudgetHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	month, year := currentPeriod(r)

	if err := h.budgetUC.DeleteEntry(r.Context(), id, ownerID(r), month, year); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSummary returns the monthly summary together with its entries. The
// period defaults to the current month.
func (h *BudgetHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, year := currentPeriod(r)

	overview, err := h.budgetUC.GetSummary(r.Context(), usecase.GetSummaryInput{
		OwnerID: ownerID(r),
		Month:   month,
		Year:    year,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetOverviewFromUseCase(overview))
}

// currentPeriod reads the month and year query parameters, defaulting to
// the current month.
func currentPeriod(r *http.Request) (month, year int) {
	nowMonth, nowYear := domain.CurrentMonthYear(time.Now().UTC())
	month = parseIntQuery(r, "month", nowMonth)
	year = parseIntQuery(r, "year", nowYear)
	return month, year
}
