package mocks

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mgoulart/billtrack/internal/domain"
	"github.com/mgoulart/billtrack/internal/usecase"
)

// MockBillRepository is a mock implementation of BillRepository. By default
// it behaves like an in-memory store; individual methods can be overridden
// through the Func fields.
type MockBillRepository struct {
	mu    sync.RWMutex
	bills map[string]*domain.Bill

	CreateFunc      func(ctx context.Context, bill *domain.Bill) error
	CreateBatchFunc func(ctx context.Context, tx usecase.Transaction, bills []*domain.Bill) error
	GetByIDFunc     func(ctx context.Context, id, ownerID string) (*domain.Bill, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Bill, error)
	UpdateFunc      func(ctx context.Context, bill *domain.Bill) error
	SetPaidFunc     func(ctx context.Context, id, ownerID string, paid bool) error
	DeleteByIDsFunc func(ctx context.Context, tx usecase.Transaction, ids []string, ownerID string) (int64, error)
}

func NewMockBillRepository() *MockBillRepository {
	return &MockBillRepository{
		bills: make(map[string]*domain.Bill),
	}
}

func (m *MockBillRepository) Create(ctx context.Context, bill *domain.Bill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bill)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bills[bill.ID] = bill
	return nil
}

func (m *MockBillRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, bills []*domain.Bill) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, bills)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range bills {
		m.bills[b.ID] = b
	}
	return nil
}

func (m *MockBillRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Bill, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.bills[id]; ok && b.OwnerID == ownerID {
		return b, nil
	}
	return nil, domain.ErrBillNotFound
}

func (m *MockBillRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Bill, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var bills []*domain.Bill
	for _, b := range m.bills {
		if b.OwnerID == ownerID {
			bills = append(bills, b)
		}
	}
	sort.Slice(bills, func(i, j int) bool {
		if bills[i].DueDate.Equal(bills[j].DueDate) {
			return bills[i].ID < bills[j].ID
		}
		return bills[i].DueDate.Before(bills[j].DueDate)
	})
	return bills, nil
}

func (m *MockBillRepository) Update(ctx context.Context, bill *domain.Bill) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, bill)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.bills[bill.ID]
	if !ok || existing.OwnerID != bill.OwnerID {
		return domain.ErrBillNotFound
	}
	m.bills[bill.ID] = bill
	return nil
}

func (m *MockBillRepository) SetPaid(ctx context.Context, id, ownerID string, paid bool) error {
	if m.SetPaidFunc != nil {
		return m.SetPaidFunc(ctx, id, ownerID, paid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bills[id]
	if !ok || b.OwnerID != ownerID {
		return domain.ErrBillNotFound
	}
	b.Paid = paid
	return nil
}

func (m *MockBillRepository) DeleteByIDs(ctx context.Context, tx usecase.Transaction, ids []string, ownerID string) (int64, error) {
	if m.DeleteByIDsFunc != nil {
		return m.DeleteByIDsFunc(ctx, tx, ids, ownerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if b, ok := m.bills[id]; ok && b.OwnerID == ownerID {
			delete(m.bills, id)
			deleted++
		}
	}
	return deleted, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// sequential ids.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}

// MockRetrier is a mock implementation of Retrier. The default runs the
// operation once and counts the calls.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error

	Calls int
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// ErrCacheMiss is returned by MockCache.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{
		items: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}
