package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/infrastructure/metrics"
)

// BillUseCase handles bill business logic.
type BillUseCase struct {
	txManager TransactionManager
	billRepo  BillRepository
	cache     Cache
	idGen     IDGenerator
	retrier   Retrier
	metrics   *metrics.Metrics
}

// NewBillUseCase creates a new BillUseCase. cache, retrier and metrics may
// each be nil to disable summary cache invalidation, transaction retries
// and instrumentation respectively.
func NewBillUseCase(txManager TransactionManager, billRepo BillRepository, cache Cache, idGen IDGenerator, retrier Retrier, m *metrics.Metrics) *BillUseCase {
	return &BillUseCase{
		txManager: txManager,
		billRepo:  billRepo,
		cache:     cache,
		idGen:     idGen,
		retrier:   retrier,
		metrics:   m,
	}
}

// inTx runs fn inside a transaction, retrying the whole attempt when the
// retrier marks the failure as transient.
func (uc *BillUseCase) inTx(ctx context.Context, fn func(tx Transaction) error) error {
	attempt := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := fn(tx); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if uc.retrier == nil {
		return attempt()
	}
	return uc.retrier.Retry(ctx, attempt)
}

// CreateBillInput represents input for creating a bill or an installment
// purchase. For installments, Amount is the per-installment value and
// InstallmentNumber marks the position being registered right now.
type CreateBillInput struct {
	OwnerID           string
	Description       string
	Amount            decimal.Decimal
	DueDate           time.Time
	Paid              bool
	Split             bool
	BillType          domain.BillType
	IsInstallment     bool
	InstallmentNumber int
	TotalInstallments int
}

// CreateBill creates a single bill, or the whole series when the input
// describes an installment purchase. The series is inserted in one
// transaction: either every position persists or none does.
func (uc *BillUseCase) CreateBill(ctx context.Context, input CreateBillInput) ([]*domain.Bill, error) {
	if err := domain.ValidateOwnerID(input.OwnerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if _, err := domain.ParseBillType(string(input.BillType)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if input.IsInstallment {
		return uc.createInstallments(ctx, input, now)
	}

	bill := &domain.Bill{
		ID:          uc.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Description: input.Description,
		Amount:      input.Amount,
		DueDate:     domain.DateOnly(input.DueDate),
		Paid:        input.Paid,
		Split:       input.Split,
		BillType:    input.BillType,
		CreatedAt:   now,
	}

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BillsCreated.Inc()
	}

	uc.invalidateSummary(ctx, input.OwnerID, now)

	return []*domain.Bill{bill}, nil
}

func (uc *BillUseCase) createInstallments(ctx context.Context, input CreateBillInput, now time.Time) ([]*domain.Bill, error) {
	bills, err := domain.GenerateInstallments(domain.InstallmentSpec{
		Description:       input.Description,
		Amount:            input.Amount,
		FirstDueDate:      input.DueDate,
		BillType:          input.BillType,
		Split:             input.Split,
		Paid:              input.Paid,
		InstallmentNumber: input.InstallmentNumber,
		TotalInstallments: input.TotalInstallments,
		OwnerID:           input.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	for _, b := range bills {
		b.ID = uc.idGen.Generate()
		b.CreatedAt = now
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		return uc.billRepo.CreateBatch(ctx, tx, bills)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InstallmentSeriesCreated.Inc()
		uc.metrics.BillsCreated.Add(float64(len(bills)))
	}

	uc.invalidateSummary(ctx, input.OwnerID, now)

	return bills, nil
}

// UpdateBillInput represents input for replacing a bill's fields.
type UpdateBillInput struct {
	ID          string
	OwnerID     string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Paid        bool
	Split       bool
	BillType    domain.BillType
}

// UpdateBill replaces the mutable fields of a bill owned by OwnerID.
// Installment bookkeeping fields are carried over from the stored record;
// only deletion changes a series' shape.
func (uc *BillUseCase) UpdateBill(ctx context.Context, input UpdateBillInput) (*domain.Bill, error) {
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if _, err := domain.ParseBillType(string(input.BillType)); err != nil {
		return nil, err
	}

	existing, err := uc.billRepo.GetByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	existing.Description = input.Description
	existing.Amount = input.Amount
	existing.DueDate = domain.DateOnly(input.DueDate)
	existing.Paid = input.Paid
	existing.Split = input.Split
	existing.BillType = input.BillType

	if err := uc.billRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BillOperations.WithLabelValues("update").Inc()
	}

	uc.invalidateSummary(ctx, input.OwnerID, time.Now().UTC())

	return existing, nil
}

// SetPaid toggles the paid flag of a bill owned by ownerID.
func (uc *BillUseCase) SetPaid(ctx context.Context, id, ownerID string, paid bool) error {
	if err := uc.billRepo.SetPaid(ctx, id, ownerID, paid); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.BillOperations.WithLabelValues("set_paid").Inc()
	}

	uc.invalidateSummary(ctx, ownerID, time.Now().UTC())

	return nil
}

// GetBill retrieves a bill owned by ownerID.
func (uc *BillUseCase) GetBill(ctx context.Context, id, ownerID string) (*domain.Bill, error) {
	return uc.billRepo.GetByID(ctx, id, ownerID)
}

// DeleteBillInput represents input for deleting a bill. Scope only matters
// for installment targets; plain bills always delete just themselves.
type DeleteBillInput struct {
	ID      string
	OwnerID string
	Scope   domain.DeletionScope
}

// DeleteBill deletes a bill and, for installment targets, the siblings
// selected by the scope. An unrecognized scope deletes nothing. The whole
// resolved set is removed in one transaction.
func (uc *BillUseCase) DeleteBill(ctx context.Context, input DeleteBillInput) (int64, error) {
	target, err := uc.billRepo.GetByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return 0, err
	}

	var siblings []*domain.Bill
	if target.IsInstallment {
		siblings, err = uc.billRepo.ListByOwner(ctx, input.OwnerID)
		if err != nil {
			return 0, err
		}
	}

	ids, err := domain.ResolveDeletion(target, input.Scope, siblings)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = uc.inTx(ctx, func(tx Transaction) error {
		deleted, err = uc.billRepo.DeleteByIDs(ctx, tx, ids, input.OwnerID)
		return err
	})
	if err != nil {
		return 0, err
	}

	if uc.metrics != nil {
		uc.metrics.BillsDeleted.Add(float64(deleted))
	}

	uc.invalidateSummary(ctx, input.OwnerID, time.Now().UTC())

	return deleted, nil
}

// ListBillsInput represents input for listing and filtering bills.
type ListBillsInput struct {
	OwnerID  string
	Search   string
	Status   domain.StatusFilter
	BillType domain.TypeFilter
	// Today overrides the reference date for status classification. Zero
	// means the current date.
	Today time.Time
}

// ListBills fetches the owner's bills ordered by ascending due date and
// applies the filter predicates, returning the subset plus its totals.
func (uc *BillUseCase) ListBills(ctx context.Context, input ListBillsInput) (domain.FilterResult, error) {
	bills, err := uc.billRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return domain.FilterResult{}, err
	}

	today := input.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	return domain.FilterBills(bills, domain.FilterQuery{
		Search:   input.Search,
		Status:   input.Status,
		BillType: input.BillType,
		Today:    today,
	}), nil
}

// invalidateSummary drops the cached budget summary for the period the
// mutation lands in. Summaries for other periods age out via TTL.
func (uc *BillUseCase) invalidateSummary(ctx context.Context, ownerID string, now time.Time) {
	if uc.cache == nil {
		return
	}

	month, year := domain.CurrentMonthYear(now)
	uc.cache.Delete(ctx, summaryCacheKey(ownerID, month, year))
}
