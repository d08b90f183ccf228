package usecase

import (
	"context"
	"time"

	"github.com/iho/leaveflow/internal/domain"
)

// BalanceRepository defines data access for per-employee leave balances.
type BalanceRepository interface {
	// Balances returns every leave type balance for an employee.
	Balances(ctx context.Context, employee string) (map[domain.LeaveType]int, error)
	// Adjust atomically applies a signed delta to one balance and returns
	// the new value. A delta that would drive the balance negative fails
	// with domain.ErrInsufficientBalance and leaves the balance unchanged.
	Adjust(ctx context.Context, employee string, leaveType domain.LeaveType, delta int) (int, error)
}

// HistoryRepository defines data access for the append-only audit history.
type HistoryRepository interface {
	Append(ctx context.Context, record *domain.LeaveRecord) error
	ListByEmployee(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
	ListApproved(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
	UpdateStatus(ctx context.Context, id string, status domain.RecordStatus, at time.Time) error
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}

// IntentExtractor maps free-form text to a structured leave intent.
// Non-conforming extractor output is an error, never a coerced intent.
type IntentExtractor interface {
	Extract(ctx context.Context, text string) (*domain.Intent, error)
}

// Prompter supplies answers for intent fields the extractor left blank.
// Implementations validate before returning: a value handed back already
// satisfies the stated bounds.
type Prompter interface {
	// SelectLeaveType asks the user to pick one of the canonical leave types.
	SelectLeaveType(ctx context.Context) (domain.LeaveType, error)
	// PromptDays asks for a day count in [1, balance].
	PromptDays(ctx context.Context, leaveType domain.LeaveType, balance int) (int, error)
	// PromptDate asks for a YYYY-MM-DD calendar date.
	PromptDate(ctx context.Context) (string, error)
	// SelectCancellation asks which of the displayed approved records to
	// cancel: 0 aborts, otherwise a 1-based index into records.
	SelectCancellation(ctx context.Context, records []*domain.LeaveRecord) (int, error)
}

// LedgerService defines the balance ledger behavior consumed by the
// lifecycle and dialogue use cases.
type LedgerService interface {
	GetBalance(ctx context.Context, employee string, types []domain.LeaveType) (map[domain.LeaveType]int, error)
	Debit(ctx context.Context, employee string, leaveType domain.LeaveType, days int) (int, error)
	Credit(ctx context.Context, employee string, leaveType domain.LeaveType, days int) (int, error)
}

// LifecycleService defines the request lifecycle behavior consumed by the
// dialogue use case.
type LifecycleService interface {
	Propose(ctx context.Context, employee string, leaveType domain.LeaveType, startDate string, days int) (*domain.LeaveRecord, error)
	Cancel(ctx context.Context, employee string, selection int) (*domain.LeaveRecord, error)
	ActiveRequests(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
}

// HistoryService defines the audit history behavior consumed by the
// dialogue use case.
type HistoryService interface {
	List(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
}
