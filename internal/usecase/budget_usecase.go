package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/infrastructure/metrics"
)

// SummaryCacheTTL bounds how stale a cached budget summary can get.
const SummaryCacheTTL = time.Minute

// BudgetUseCase handles budget ledger business logic.
type BudgetUseCase struct {
	budgetRepo BudgetRepository
	billRepo   BillRepository
	cache      Cache
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewBudgetUseCase creates a new BudgetUseCase. cache and metrics may be
// nil to disable summary caching and instrumentation.
func NewBudgetUseCase(budgetRepo BudgetRepository, billRepo BillRepository, cache Cache, idGen IDGenerator, m *metrics.Metrics) *BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo: budgetRepo,
		billRepo:   billRepo,
		cache:      cache,
		idGen:      idGen,
		metrics:    m,
	}
}

// AddEntryInput represents input for adding a budget ledger entry.
type AddEntryInput struct {
	OwnerID     string
	Amount      decimal.Decimal
	Month       int
	Year        int
	Description string
	Type        domain.EntryType
}

// AddEntry records an income, expense or adjustment for one ledger period.
func (uc *BudgetUseCase) AddEntry(ctx context.Context, input AddEntryInput) (*domain.BudgetEntry, error) {
	if err := domain.ValidateOwnerID(input.OwnerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateMonth(input.Month); err != nil {
		return nil, err
	}
	if _, err := domain.ParseEntryType(string(input.Type)); err != nil {
		return nil, err
	}

	entry := &domain.BudgetEntry{
		ID:          uc.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Amount:      input.Amount,
		Month:       input.Month,
		Year:        input.Year,
		Description: input.Description,
		Type:        input.Type,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.budgetRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BudgetEntriesCreated.Inc()
	}

	uc.invalidate(ctx, input.OwnerID, input.Month, input.Year)

	return entry, nil
}

// ListEntries lists one period's entries in insertion order.
func (uc *BudgetUseCase) ListEntries(ctx context.Context, ownerID string, month, year int) ([]*domain.BudgetEntry, error) {
	if err := domain.ValidateMonth(month); err != nil {
		return nil, err
	}
	return uc.budgetRepo.ListByPeriod(ctx, ownerID, month, year)
}

// DeleteEntry removes an entry owned by ownerID.
func (uc *BudgetUseCase) DeleteEntry(ctx context.Context, id, ownerID string, month, year int) error {
	if err := uc.budgetRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.BudgetEntriesDeleted.Inc()
	}

	uc.invalidate(ctx, ownerID, month, year)

	return nil
}

// GetSummaryInput represents input for computing a period summary.
type GetSummaryInput struct {
	OwnerID string
	Month   int
	Year    int
}

// BudgetOverview is a period summary together with the entries behind it.
type BudgetOverview struct {
	Month   int
	Year    int
	Summary domain.BudgetSummary
	Entries []*domain.BudgetEntry
}

// GetSummary aggregates the period's ledger entries with the owner's bill
// totals. The summary part is cached briefly; entries are always read fresh.
func (uc *BudgetUseCase) GetSummary(ctx context.Context, input GetSummaryInput) (*BudgetOverview, error) {
	if err := domain.ValidateMonth(input.Month); err != nil {
		return nil, err
	}

	entries, err := uc.budgetRepo.ListByPeriod(ctx, input.OwnerID, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	overview := &BudgetOverview{
		Month:   input.Month,
		Year:    input.Year,
		Entries: entries,
	}

	if uc.metrics != nil {
		uc.metrics.SummaryRequests.Inc()
	}

	key := summaryCacheKey(input.OwnerID, input.Month, input.Year)
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil {
			var cached domain.BudgetSummary
			if err := json.Unmarshal(data, &cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.SummaryCacheHits.Inc()
				}
				overview.Summary = cached
				return overview, nil
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.SummaryCacheMisses.Inc()
	}

	bills, err := uc.billRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	totalAmount, totalPaid := domain.BillTotals(bills)
	overview.Summary = domain.SummarizeBudget(entries, totalAmount, totalPaid)

	if uc.cache != nil {
		if data, err := json.Marshal(overview.Summary); err == nil {
			uc.cache.Set(ctx, key, data, SummaryCacheTTL)
		}
	}

	return overview, nil
}

func (uc *BudgetUseCase) invalidate(ctx context.Context, ownerID string, month, year int) {
	if uc.cache == nil {
		return
	}
	uc.cache.Delete(ctx, summaryCacheKey(ownerID, month, year))
}

func summaryCacheKey(ownerID string, month, year int) string {
	return fmt.Sprintf("summary:%s:%04d-%02d", ownerID, year, month)
}
