package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/leaveflow/internal/domain"
)

// LifecycleUseCase governs a leave request from proposal through approval
// and cancellation. A proposal is ephemeral: it only becomes a history
// record once the debit succeeds, and a rejected proposal leaves no trace.
type LifecycleUseCase struct {
	ledger      LedgerService
	historyRepo HistoryRepository
	idGen       IDGenerator
}

// NewLifecycleUseCase creates a new LifecycleUseCase.
func NewLifecycleUseCase(ledger LedgerService, historyRepo HistoryRepository, idGen IDGenerator) *LifecycleUseCase {
	return &LifecycleUseCase{
		ledger:      ledger,
		historyRepo: historyRepo,
		idGen:       idGen,
	}
}

// Propose attempts a leave request. On success the approved record is
// appended to history and returned; the debit and the append are
// indivisible — if the append fails the debit is compensated.
func (uc *LifecycleUseCase) Propose(ctx context.Context, employee string, leaveType domain.LeaveType, startDate string, days int) (*domain.LeaveRecord, error) {
	balances, err := uc.ledger.GetBalance(ctx, employee, nil)
	if err != nil {
		return nil, err
	}
	if _, ok := balances[leaveType]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLeaveType, leaveType)
	}

	start, err := domain.ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	if _, err := uc.ledger.Debit(ctx, employee, leaveType, days); err != nil {
		return nil, err
	}

	record := &domain.LeaveRecord{
		ID:         uc.idGen.Generate(),
		Employee:   employee,
		Type:       leaveType,
		StartDate:  start,
		EndDate:    domain.LeaveEndDate(start, days),
		Days:       days,
		Status:     domain.StatusApproved,
		RecordedAt: time.Now().UTC(),
	}

	if err := uc.historyRepo.Append(ctx, record); err != nil {
		uc.ledger.Credit(ctx, employee, leaveType, days)
		return nil, err
	}

	return record, nil
}

// Cancel transitions one approved record to cancelled and credits its days
// back. The selection is a 1-based index into the employee's currently
// approved records, in append order; 0 (abort) is handled by the caller and
// never reaches here.
func (uc *LifecycleUseCase) Cancel(ctx context.Context, employee string, selection int) (*domain.LeaveRecord, error) {
	active, err := uc.historyRepo.ListApproved(ctx, employee)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, domain.ErrNothingToCancel
	}
	if selection < 1 || selection > len(active) {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", domain.ErrInvalidSelection, selection, len(active))
	}

	record := active[selection-1]

	if _, err := uc.ledger.Credit(ctx, employee, record.Type, record.Days); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.historyRepo.UpdateStatus(ctx, record.ID, domain.StatusCancelled, now); err != nil {
		uc.ledger.Debit(ctx, employee, record.Type, record.Days)
		return nil, err
	}

	record.Status = domain.StatusCancelled
	record.CancelledAt = &now
	return record, nil
}

// ActiveRequests returns the employee's currently approved records in
// append order, the list a cancellation selection indexes into.
func (uc *LifecycleUseCase) ActiveRequests(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	return uc.historyRepo.ListApproved(ctx, employee)
}
