package usecase

import (
	"context"

	"github.com/iho/leaveflow/internal/domain"
)

// HistoryUseCase reads the append-only audit history.
type HistoryUseCase struct {
	historyRepo HistoryRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(historyRepo HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo}
}

// List returns every record for an employee in append order.
func (uc *HistoryUseCase) List(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	return uc.historyRepo.ListByEmployee(ctx, employee)
}
