package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mgoulart/billtrack/internal/adapter/http/dto"
	"github.com/mgoulart/billtrack/internal/adapter/http/middleware"
	"github.com/mgoulart/billtrack/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBillNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBudgetEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidBillType),
		errors.Is(err, domain.ErrInvalidEntryType),
		errors.Is(err, domain.ErrInvalidInstallmentSpec),
		errors.Is(err, domain.ErrInvalidDeletionScope),
		errors.Is(err, domain.ErrInvalidDescription),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrMissingOwner):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ownerID returns the owner id resolved by the owner middleware.
func ownerID(r *http.Request) string {
	return middleware.OwnerFromContext(r.Context())
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
