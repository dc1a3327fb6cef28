package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgoulart/billtrack/internal/domain"
)

// BudgetRepository implements usecase.BudgetRepository with raw SQL.
type BudgetRepository struct {
	pool queryPool
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return newBudgetRepositoryWithPool(pool)
}

func newBudgetRepositoryWithPool(pool queryPool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Create inserts a budget ledger entry.
func (r *BudgetRepository) Create(ctx context.Context, entry *domain.BudgetEntry) error {
	query := `
		INSERT INTO budget_entries (
			id, owner_id, amount, month, year, description, entry_type, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OwnerID,
		entry.Amount,
		entry.Month,
		entry.Year,
		entry.Description,
		string(entry.Type),
		entry.CreatedAt,
	)

	return err
}

// ListByPeriod retrieves one period's entries in insertion order.
func (r *BudgetRepository) ListByPeriod(ctx context.Context, ownerID string, month, year int) ([]*domain.BudgetEntry, error) {
	query := `
		SELECT id, owner_id, amount, month, year, description, entry_type, created_at
		FROM budget_entries
		WHERE owner_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, ownerID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BudgetEntry
	for rows.Next() {
		var entry domain.BudgetEntry
		var entryType string

		err := rows.Scan(
			&entry.ID,
			&entry.OwnerID,
			&entry.Amount,
			&entry.Month,
			&entry.Year,
			&entry.Description,
			&entryType,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Type = domain.EntryType(entryType)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Delete removes an entry scoped to its owner.
func (r *BudgetRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `
		DELETE FROM budget_entries
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetEntryNotFound
	}

	return nil
}
