package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/leaveflow/internal/domain"
)

// HistoryRepository is an in-memory append-only record log. Entries are
// never removed or reordered; the only in-place write is the cancellation
// status transition performed through UpdateStatus.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []*domain.LeaveRecord
}

// NewHistoryRepository creates an empty HistoryRepository.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Append adds a record at the tail.
func (r *HistoryRepository) Append(ctx context.Context, record *domain.LeaveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.records = append(r.records, &copied)
	return nil
}

// ListByEmployee returns copies of the employee's records in append order.
func (r *HistoryRepository) ListByEmployee(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.LeaveRecord
	for _, rec := range r.records {
		if rec.Employee == employee {
			copied := *rec
			records = append(records, &copied)
		}
	}
	return records, nil
}

// ListApproved returns copies of the employee's currently approved records
// in append order.
func (r *HistoryRepository) ListApproved(ctx context.Context, employee string) ([]*domain.LeaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.LeaveRecord
	for _, rec := range r.records {
		if rec.Employee == employee && rec.Status == domain.StatusApproved {
			copied := *rec
			records = append(records, &copied)
		}
	}
	return records, nil
}

// UpdateStatus transitions one record's status in place.
func (r *HistoryRepository) UpdateStatus(ctx context.Context, id string, status domain.RecordStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			rec.Status = status
			if status == domain.StatusCancelled {
				rec.CancelledAt = &at
			}
			return nil
		}
	}
	return domain.ErrRecordNotFound
}
