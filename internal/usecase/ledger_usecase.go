package usecase

import (
	"context"
	"fmt"

	"github.com/iho/leaveflow/internal/domain"
)

// LedgerUseCase owns per-employee, per-leave-type balances. All balance
// mutations go through Debit/Credit; nothing else writes balances.
type LedgerUseCase struct {
	balanceRepo BalanceRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(balanceRepo BalanceRepository) *LedgerUseCase {
	return &LedgerUseCase{balanceRepo: balanceRepo}
}

// GetBalance returns the employee's balances. An empty types filter returns
// all leave types; a non-empty filter returns the intersection with the
// valid set and fails with ErrNoValidTypes when the intersection is empty.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, employee string, types []domain.LeaveType) (map[domain.LeaveType]int, error) {
	balances, err := uc.balanceRepo.Balances(ctx, employee)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		return balances, nil
	}

	filtered := make(map[domain.LeaveType]int)
	for _, lt := range types {
		if days, ok := balances[lt]; ok {
			filtered[lt] = days
		}
	}
	if len(filtered) == 0 {
		return nil, domain.ErrNoValidTypes
	}
	return filtered, nil
}

// Debit removes days from one balance. The debit is all-or-nothing: if the
// balance is short the operation fails and the balance is untouched.
func (uc *LedgerUseCase) Debit(ctx context.Context, employee string, leaveType domain.LeaveType, days int) (int, error) {
	if err := domain.ValidateDayCount(days); err != nil {
		return 0, err
	}

	current, err := uc.balance(ctx, employee, leaveType)
	if err != nil {
		return 0, err
	}
	if current < days {
		return 0, fmt.Errorf("%w: %d days of %s available, %d requested",
			domain.ErrInsufficientBalance, current, leaveType, days)
	}

	return uc.balanceRepo.Adjust(ctx, employee, leaveType, -days)
}

// Credit returns days to one balance. No upper bound is enforced.
func (uc *LedgerUseCase) Credit(ctx context.Context, employee string, leaveType domain.LeaveType, days int) (int, error) {
	if err := domain.ValidateDayCount(days); err != nil {
		return 0, err
	}

	if _, err := uc.balance(ctx, employee, leaveType); err != nil {
		return 0, err
	}

	return uc.balanceRepo.Adjust(ctx, employee, leaveType, days)
}

func (uc *LedgerUseCase) balance(ctx context.Context, employee string, leaveType domain.LeaveType) (int, error) {
	balances, err := uc.balanceRepo.Balances(ctx, employee)
	if err != nil {
		return 0, err
	}
	days, ok := balances[leaveType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidLeaveType, leaveType)
	}
	return days, nil
}
