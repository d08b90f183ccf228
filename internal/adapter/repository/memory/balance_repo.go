package memory

import (
	"context"
	"sync"

	"github.com/iho/leaveflow/internal/domain"
)

// BalanceRepository is an in-memory balance store seeded from the roster.
// Guarded by a lock so the HTTP surface can serve concurrent employees;
// contention is per-store, not per-employee, which is fine at roster scale.
type BalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]map[domain.LeaveType]int
}

// NewBalanceRepository creates a BalanceRepository seeded with the given
// per-employee initial balances.
func NewBalanceRepository(seed map[string]map[domain.LeaveType]int) *BalanceRepository {
	balances := make(map[string]map[domain.LeaveType]int, len(seed))
	for employee, perType := range seed {
		copied := make(map[domain.LeaveType]int, len(perType))
		for lt, days := range perType {
			copied[lt] = days
		}
		balances[employee] = copied
	}
	return &BalanceRepository{balances: balances}
}

// Balances returns a copy of an employee's balances.
func (r *BalanceRepository) Balances(ctx context.Context, employee string) (map[domain.LeaveType]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	perType, ok := r.balances[employee]
	if !ok {
		return nil, domain.ErrUnknownEmployee
	}

	copied := make(map[domain.LeaveType]int, len(perType))
	for lt, days := range perType {
		copied[lt] = days
	}
	return copied, nil
}

// Adjust atomically applies a signed delta to one balance. A delta that
// would drive the balance negative fails and changes nothing.
func (r *BalanceRepository) Adjust(ctx context.Context, employee string, leaveType domain.LeaveType, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	perType, ok := r.balances[employee]
	if !ok {
		return 0, domain.ErrUnknownEmployee
	}
	current, ok := perType[leaveType]
	if !ok {
		return 0, domain.ErrInvalidLeaveType
	}

	next := current + delta
	if next < 0 {
		return 0, domain.ErrInsufficientBalance
	}

	perType[leaveType] = next
	return next, nil
}
