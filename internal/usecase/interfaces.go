package usecase

import (
	"context"
	"time"

	"github.com/mgoulart/billtrack/internal/domain"
)

// BillRepository defines data access for bills. All reads and writes are
// scoped to an owner id; writes against records the owner does not hold
// affect zero rows.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	// CreateBatch inserts a full installment series inside one transaction so
	// a partial failure cannot leave a partially numbered series behind.
	CreateBatch(ctx context.Context, tx Transaction, bills []*domain.Bill) error
	GetByID(ctx context.Context, id, ownerID string) (*domain.Bill, error)
	// ListByOwner returns the owner's bills ordered by ascending due date.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Bill, error)
	Update(ctx context.Context, bill *domain.Bill) error
	SetPaid(ctx context.Context, id, ownerID string, paid bool) error
	DeleteByIDs(ctx context.Context, tx Transaction, ids []string, ownerID string) (int64, error)
}

// BudgetRepository defines data access for monthly budget entries.
type BudgetRepository interface {
	Create(ctx context.Context, entry *domain.BudgetEntry) error
	ListByPeriod(ctx context.Context, ownerID string, month, year int) ([]*domain.BudgetEntry, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
