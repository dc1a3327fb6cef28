package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoulart/billtrack/internal/adapter/http/dto"
)

func TestBudgetSummary(t *testing.T) {
	router, _, cleanup := newTestRouter(t)
	defer cleanup()

	month := 7
	year := 2026

	// Income and expense entries
	for _, spec := range []struct {
		amount    string
		entryType string
	}{
		{"3000.00", "income"},
		{"450.00", "expense"},
	} {
		w := postJSON(t, router, "owner-1", "/api/v1/budget/entries", dto.AddBudgetEntryRequest{
			Amount:      decimal.RequireFromString(spec.amount),
			Month:       month,
			Year:        year,
			Description: spec.entryType + " entry",
			Type:        spec.entryType,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// A paid and an unpaid bill due in the period
	due := time.Date(year, time.Month(month), 20, 0, 0, 0, 0, time.UTC)
	for _, spec := range []struct {
		desc   string
		amount string
		paid   bool
	}{
		{"Rent", "1000.00", true},
		{"Power", "200.00", false},
	} {
		w := postJSON(t, router, "owner-1", "/api/v1/bills", dto.CreateBillRequest{
			Description: spec.desc,
			Amount:      decimal.RequireFromString(spec.amount),
			DueDate:     due,
			Paid:        spec.paid,
			BillType:    "fixed",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	path := fmt.Sprintf("/api/v1/budget/summary?month=%d&year=%d", month, year)

	var overview dto.BudgetOverviewResponse
	w := getJSON(t, router, "owner-1", path, &overview)
	require.Equal(t, http.StatusOK, w.Code)

	// income 3000 - expense 450 - paid bills 1000 = 1550 current
	// minus unpaid 200 = 1350 expected
	assert.True(t, overview.Summary.CurrentBalance.Equal(decimal.RequireFromString("1550.00")),
		"current balance %s", overview.Summary.CurrentBalance)
	assert.True(t, overview.Summary.ExpectedBalance.Equal(decimal.RequireFromString("1350.00")),
		"expected balance %s", overview.Summary.ExpectedBalance)
	assert.True(t, overview.Summary.PendingAmount.Equal(decimal.RequireFromString("200.00")))
	assert.Len(t, overview.Entries, 2)
	assert.Equal(t, "julho de 2026", overview.MonthLabel)

	// Second read hits the cache and must match.
	var cached dto.BudgetOverviewResponse
	w = getJSON(t, router, "owner-1", path, &cached)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cached.Summary.CurrentBalance.Equal(overview.Summary.CurrentBalance))

	// A new entry invalidates the cached summary.
	w = postJSON(t, router, "owner-1", "/api/v1/budget/entries", dto.AddBudgetEntryRequest{
		Amount:      decimal.RequireFromString("100.00"),
		Month:       month,
		Year:        year,
		Description: "bonus",
		Type:        "income",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var refreshed dto.BudgetOverviewResponse
	w = getJSON(t, router, "owner-1", path, &refreshed)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, refreshed.Summary.CurrentBalance.Equal(decimal.RequireFromString("1650.00")),
		"refreshed balance %s", refreshed.Summary.CurrentBalance)
}

func TestBudgetEntryDelete(t *testing.T) {
	router, _, cleanup := newTestRouter(t)
	defer cleanup()

	w := postJSON(t, router, "owner-1", "/api/v1/budget/entries", dto.AddBudgetEntryRequest{
		Amount:      decimal.RequireFromString("75.00"),
		Month:       5,
		Year:        2026,
		Description: "snacks",
		Type:        "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var entry dto.BudgetEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/budget/entries/"+entry.ID, nil)
	r.Header.Set(ownerHeader, "owner-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var list []*dto.BudgetEntryResponse
	w = getJSON(t, router, "owner-1", "/api/v1/budget/entries?month=5&year=2026", &list)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, list)
}
