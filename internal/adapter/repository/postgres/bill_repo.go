package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// queryPool is the subset of pgxpool.Pool the repositories use.
type queryPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BillRepository implements usecase.BillRepository with raw SQL.
type BillRepository struct {
	pool queryPool
}

// NewBillRepository creates a new BillRepository.
func NewBillRepository(pool *pgxpool.Pool) *BillRepository {
	return newBillRepositoryWithPool(pool)
}

func newBillRepositoryWithPool(pool queryPool) *BillRepository {
	return &BillRepository{pool: pool}
}

const billColumns = `id, owner_id, description, amount, due_date, paid, split,
       bill_type, is_installment, installment_number, total_installments, created_at`

// Create inserts a single bill.
func (r *BillRepository) Create(ctx context.Context, bill *domain.Bill) error {
	query := `
		INSERT INTO bills (
			id, owner_id, description, amount, due_date, paid, split,
			bill_type, is_installment, installment_number, total_installments, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.OwnerID,
		bill.Description,
		bill.Amount,
		bill.DueDate,
		bill.Paid,
		bill.Split,
		string(bill.BillType),
		bill.IsInstallment,
		bill.InstallmentNumber,
		bill.TotalInstallments,
		bill.CreatedAt,
	)

	return err
}

// CreateBatch inserts a whole installment series within a transaction.
func (r *BillRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, bills []*domain.Bill) error {
	pgxTx := tx.(*Tx).PgxTx()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO bills (
			id, owner_id, description, amount, due_date, paid, split,
			bill_type, is_installment, installment_number, total_installments, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, bill := range bills {
		batch.Queue(query,
			bill.ID,
			bill.OwnerID,
			bill.Description,
			bill.Amount,
			bill.DueDate,
			bill.Paid,
			bill.Split,
			string(bill.BillType),
			bill.IsInstallment,
			bill.InstallmentNumber,
			bill.TotalInstallments,
			bill.CreatedAt,
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range bills {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

// GetByID retrieves a bill scoped to its owner.
func (r *BillRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE id = $1 AND owner_id = $2
	`

	bill, err := scanBill(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBillNotFound
		}
		return nil, err
	}

	return bill, nil
}

// ListByOwner retrieves all of an owner's bills ordered by ascending due
// date, ties broken by creation time.
func (r *BillRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE owner_id = $1
		ORDER BY due_date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*domain.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

// Update replaces the mutable fields of a bill scoped to its owner.
func (r *BillRepository) Update(ctx context.Context, bill *domain.Bill) error {
	query := `
		UPDATE bills
		SET description = $3, amount = $4, due_date = $5, paid = $6,
		    split = $7, bill_type = $8
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.OwnerID,
		bill.Description,
		bill.Amount,
		bill.DueDate,
		bill.Paid,
		bill.Split,
		string(bill.BillType),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotFound
	}

	return nil
}

// SetPaid toggles the paid flag of a bill scoped to its owner.
func (r *BillRepository) SetPaid(ctx context.Context, id, ownerID string, paid bool) error {
	query := `
		UPDATE bills
		SET paid = $3
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, ownerID, paid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotFound
	}

	return nil
}

// DeleteByIDs removes the given bills within a transaction, scoped to the
// owner, and reports how many rows went away.
func (r *BillRepository) DeleteByIDs(ctx context.Context, tx usecase.Transaction, ids []string, ownerID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	pgxTx := tx.(*Tx).PgxTx()

	query := `
		DELETE FROM bills
		WHERE id = ANY($1) AND owner_id = $2
	`

	tag, err := pgxTx.Exec(ctx, query, ids, ownerID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanBill(row pgx.Row) (*domain.Bill, error) {
	var bill domain.Bill
	var billType string

	err := row.Scan(
		&bill.ID,
		&bill.OwnerID,
		&bill.Description,
		&bill.Amount,
		&bill.DueDate,
		&bill.Paid,
		&bill.Split,
		&billType,
		&bill.IsInstallment,
		&bill.InstallmentNumber,
		&bill.TotalInstallments,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	bill.BillType = domain.BillType(billType)
	bill.DueDate = domain.DateOnly(bill.DueDate)

	return &bill, nil
}
