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

// BillService defines the behavior needed by BillHandler.
type BillService interface {
	CreateBill(ctx context.Context, input usecase.CreateBillInput) ([]*domain.Bill, error)
	GetBill(ctx context.Context, id, ownerID string) (*domain.Bill, error)
	ListBills(ctx context.Context, input usecase.ListBillsInput) (domain.FilterResult, error)
	UpdateBill(ctx context.Context, input usecase.UpdateBillInput) (*domain.Bill, error)
	SetPaid(ctx context.Context, id, ownerID string, paid bool) error
	DeleteBill(ctx context.Context, input usecase.DeleteBillInput) (int64, error)
}

// BillHandler handles bill-related HTTP requests.
type BillHandler struct {
	billUC BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billUC BillService) *BillHandler {
	return &BillHandler{billUC: billUC}
}

// Create creates a bill, or a whole installment series.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bills, err := h.billUC.CreateBill(r.Context(), req.ToUseCaseInput(ownerID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bill", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BillsFromDomain(bills, time.Now().UTC()))
}

// Get retrieves a bill by ID.
func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	bill, err := h.billUC.GetBill(r.Context(), id, ownerID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillFromDomain(bill, time.Now().UTC()))
}

// List lists bills, filtered by the search, status and type query
// parameters.
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.billUC.ListBills(r.Context(), usecase.ListBillsInput{
		OwnerID:  ownerID(r),
		Search:   r.URL.Query().Get("search"),
		Status:   domain.StatusFilter(r.URL.Query().Get("status")),
		BillType: domain.TypeFilter(r.URL.Query().Get("type")),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list bills", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillListFromDomain(result, time.Now().UTC()))
}

// Update replaces a bill's fields.
func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	var req dto.UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bill, err := h.billUC.UpdateBill(r.Context(), req.ToUseCaseInput(id, ownerID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillFromDomain(bill, time.Now().UTC()))
}

// SetPaid toggles a bill's paid flag.
func (h *BillHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	var req dto.SetPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.billUC.SetPaid(r.Context(), id, ownerID(r), req.Paid); err != nil {
		writeError(w, mapDomainError(err), "failed to update bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"paid": req.Paid})
}

// Delete deletes a bill. For installment targets the scope query parameter
// selects how much of the series goes with it.
func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = string(domain.DeleteOnlyThis)
	}

	deleted, err := h.billUC.DeleteBill(r.Context(), usecase.DeleteBillInput{
		ID:      id,
		OwnerID: ownerID(r),
		Scope:   domain.DeletionScope(scope),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteBillResponse{DeletedCount: deleted})
}
