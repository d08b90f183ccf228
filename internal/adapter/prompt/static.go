package prompt

import (
	"context"
	"errors"

	"github.com/iho/leaveflow/internal/domain"
)

// Static serves transports with no interactive channel. Instead of asking
// follow-up questions it fails with an instruction to resend the message
// with the missing detail included.
type Static struct{}

// NewStatic creates a Static prompter.
func NewStatic() Static {
	return Static{}
}

func (Static) SelectLeaveType(ctx context.Context) (domain.LeaveType, error) {
	return "", errors.New("no leave type was mentioned; please resend with the leave type, for example \"request 3 days of Sick Leave\"")
}

func (Static) PromptDays(ctx context.Context, leaveType domain.LeaveType, balance int) (int, error) {
	return 0, errors.New("no day count was mentioned; please resend with the number of days")
}

func (Static) PromptDate(ctx context.Context) (string, error) {
	return "", errors.New("no start date was mentioned; please resend with a start date in YYYY-MM-DD format")
}

func (Static) SelectCancellation(ctx context.Context, records []*domain.LeaveRecord) (int, error) {
	return 0, errors.New("cancellation needs a selection; list active leaves and cancel one through the leave endpoints")
}
