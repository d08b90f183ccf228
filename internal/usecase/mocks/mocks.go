package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/leaveflow/internal/domain"
)

// MockBalanceRepository is a mock implementation of BalanceRepository.
// With no Func overrides it behaves as an in-memory balance store.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]map[domain.LeaveType]int

	BalancesFunc func(ctx context.Context, employee string) (map[domain.LeaveType]int, error)
	AdjustFunc   func(ctx context.Context, employee string, leaveType domain.LeaveType, delta int) (int, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		balances: make(map[string]map[domain.LeaveType]int),
	}
}

// Seed sets an employee's balances directly, bypassing Adjust.
func (m *MockBalanceRepository) Seed(employee string, balances map[domain.LeaveType]int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(map[domain.LeaveType]int, len(balances))
	for lt, days := range balances {
		copied[lt] = days
	}
	m.balances[employee] = copied
}

func (m *MockBalanceRepository) Balances(ctx context.Context, employee string) (map[domain.LeaveType]int, error) {
	if m.BalancesFunc != nil {
		return m.BalancesFunc(ctx, employee)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	balances, ok := m.balances[employee]
	if !ok {
		return nil, domain.ErrUnknownEmployee
	}
	copied := make(map[domain.LeaveType]int, len(balances))
	for lt, days := range balances {
		copied[lt] = days
	}
	return copied, nil
}

func (m *MockBalanceRepository) Adjust(ctx context.Context, employee string, leaveType domain.LeaveType, delta int) (int, error) {
	if m.AdjustFunc != nil {
		return m.AdjustFunc(ctx, employee, leaveType, delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	balances, ok := m.balances[employee]
	if !ok {
		return 0, domain.ErrUnknownEmployee
	}
	current, ok := balances[leaveType]
	if !ok {
		return 0, domain.ErrInvalidLeaveType
	}
	next := current + delta
	if next < 0 {
		return 0, domain.ErrInsufficientBalance
	}
	balances[leaveType] = next
	return next, nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository.
// With no Func overrides it behaves as an in-memory append-only log.
type MockHistoryRepository struct {
	mu      sync.RWMutex
	records []*domain.LeaveRecord

	AppendFunc         func(ctx context.Context, record *domain.LeaveRecord) error
	ListByEmployeeFunc func(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
	ListApprovedFunc   func(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
	UpdateStatusFunc   func(ctx context.Context, id string, status domain.RecordStatus, at time.Time) error
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) Append(ctx context.Context, record *domain.LeaveRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockHistoryRepository) ListByEmployee(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	if m.ListByEmployeeFunc != nil {
		return m.ListByEmployeeFunc(ctx, employee)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.LeaveRecord
	for _, r := range m.records {
		if r.Employee == employee {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m *MockHistoryRepository) ListApproved(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, employee)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.LeaveRecord
	for _, r := range m.records {
		if r.Employee == employee && r.Status == domain.StatusApproved {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m *MockHistoryRepository) UpdateStatus(ctx context.Context, id string, status domain.RecordStatus, at time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, at)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			r.Status = status
			r.CancelledAt = &at
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

// MockIDGenerator is a mock implementation of IDGenerator. With no Func
// override it returns sequential IDs.
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
	return fmt.Sprintf("record-%d", m.next)
}
