package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/leaveflow/internal/domain"
)

// DialogueUseCase turns one structured intent into one concrete operation.
// It fills missing intent fields through the prompter, dispatches to the
// ledger, lifecycle or history, and converts every internal failure into a
// descriptive reply string — no error escapes this boundary.
type DialogueUseCase struct {
	ledger    LedgerService
	lifecycle LifecycleService
	history   HistoryService
	extractor IntentExtractor
	prompter  Prompter
	logger    zerolog.Logger
}

// NewDialogueUseCase creates a new DialogueUseCase.
func NewDialogueUseCase(
	ledger LedgerService,
	lifecycle LifecycleService,
	history HistoryService,
	extractor IntentExtractor,
	prompter Prompter,
	logger zerolog.Logger,
) *DialogueUseCase {
	return &DialogueUseCase{
		ledger:    ledger,
		lifecycle: lifecycle,
		history:   history,
		extractor: extractor,
		prompter:  prompter,
		logger:    logger,
	}
}

// ProcessMessage extracts an intent from free text and dispatches it.
func (uc *DialogueUseCase) ProcessMessage(ctx context.Context, employee, text string) string {
	intent, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		uc.logger.Warn().Err(err).Str("employee", employee).Msg("intent extraction failed")
		return uc.errorReply(employee, err)
	}

	uc.logger.Debug().
		Str("employee", employee).
		Str("action", string(intent.Action)).
		Msg("intent extracted")

	return uc.Dispatch(ctx, employee, intent)
}

// Dispatch routes a structured intent to the matching operation and
// returns the human-readable result.
func (uc *DialogueUseCase) Dispatch(ctx context.Context, employee string, intent *domain.Intent) string {
	switch intent.Action {
	case domain.ActionCheck:
		return uc.handleCheck(ctx, employee, intent)
	case domain.ActionRequest:
		return uc.handleRequest(ctx, employee, intent)
	case domain.ActionCancel:
		return uc.handleCancel(ctx, employee)
	case domain.ActionView:
		return uc.handleView(ctx, employee)
	default:
		return msgNotUnderstood
	}
}

func (uc *DialogueUseCase) handleCheck(ctx context.Context, employee string, intent *domain.Intent) string {
	balances, err := uc.ledger.GetBalance(ctx, employee, intent.LeaveTypes)
	if err != nil {
		return uc.errorReply(employee, err)
	}

	// Render in canonical enumeration order, not input order.
	lines := make([]string, 0, len(balances))
	for _, lt := range domain.LeaveTypes() {
		if days, ok := balances[lt]; ok {
			lines = append(lines, fmt.Sprintf(msgBalanceLine, lt, days))
		}
	}
	return strings.Join(lines, "\n")
}

func (uc *DialogueUseCase) handleRequest(ctx context.Context, employee string, intent *domain.Intent) string {
	// First extracted type wins when several were mentioned.
	var leaveType domain.LeaveType
	if len(intent.LeaveTypes) > 0 {
		leaveType = intent.LeaveTypes[0]
	} else {
		lt, err := uc.prompter.SelectLeaveType(ctx)
		if err != nil {
			return uc.errorReply(employee, err)
		}
		leaveType = lt
	}

	days := intent.NumDays
	if days == 0 {
		balances, err := uc.ledger.GetBalance(ctx, employee, []domain.LeaveType{leaveType})
		if err != nil {
			return uc.errorReply(employee, err)
		}
		balance := balances[leaveType]
		if balance < 1 {
			return fmt.Sprintf(msgInsufficient, leaveType, balance)
		}
		days, err = uc.prompter.PromptDays(ctx, leaveType, balance)
		if err != nil {
			return uc.errorReply(employee, err)
		}
	}

	startDate := intent.StartDate
	if startDate == "" {
		date, err := uc.prompter.PromptDate(ctx)
		if err != nil {
			return uc.errorReply(employee, err)
		}
		startDate = date
	}

	record, err := uc.lifecycle.Propose(ctx, employee, leaveType, startDate, days)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return uc.insufficientReply(ctx, employee, leaveType)
		}
		return uc.errorReply(employee, err)
	}

	return fmt.Sprintf(msgApproved,
		record.Days, record.Type,
		record.StartDate.Format(domain.DateFormat),
		record.EndDate.Format(domain.DateFormat))
}

func (uc *DialogueUseCase) handleCancel(ctx context.Context, employee string) string {
	active, err := uc.lifecycle.ActiveRequests(ctx, employee)
	if err != nil {
		return uc.errorReply(employee, err)
	}
	if len(active) == 0 {
		return msgNoActiveRequests
	}

	choice, err := uc.prompter.SelectCancellation(ctx, active)
	if err != nil {
		return uc.errorReply(employee, err)
	}
	if choice == 0 {
		return msgCancelAborted
	}

	record, err := uc.lifecycle.Cancel(ctx, employee, choice)
	if err != nil {
		return uc.errorReply(employee, err)
	}

	return fmt.Sprintf(msgCancelled,
		record.Days, record.Type, record.StartDate.Format(domain.DateFormat))
}

func (uc *DialogueUseCase) handleView(ctx context.Context, employee string) string {
	records, err := uc.history.List(ctx, employee)
	if err != nil {
		return uc.errorReply(employee, err)
	}
	if len(records) == 0 {
		return msgNoHistory
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf(msgHistoryLine,
			r.Type, r.Days,
			r.StartDate.Format(domain.DateFormat),
			r.EndDate.Format(domain.DateFormat),
			r.Status))
	}
	return strings.Join(lines, "\n")
}

// insufficientReply renders the insufficient-balance message with the
// employee's current balance for the type.
func (uc *DialogueUseCase) insufficientReply(ctx context.Context, employee string, leaveType domain.LeaveType) string {
	balance := 0
	if balances, err := uc.ledger.GetBalance(ctx, employee, []domain.LeaveType{leaveType}); err == nil {
		balance = balances[leaveType]
	}
	return fmt.Sprintf(msgInsufficient, leaveType, balance)
}

// errorReply maps a failure to its user-facing string. Unrecognized errors
// get the generic reply; the detail is logged, never lost.
func (uc *DialogueUseCase) errorReply(employee string, err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownEmployee):
		return fmt.Sprintf(msgEmployeeNotFound, employee)
	case errors.Is(err, domain.ErrNoValidTypes):
		return msgNoValidTypes
	case errors.Is(err, domain.ErrNothingToCancel):
		return msgNoActiveRequests
	case errors.Is(err, domain.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, domain.ErrInvalidLeaveType):
		return fmt.Sprintf("Invalid leave type: %s", strings.TrimPrefix(err.Error(), domain.ErrInvalidLeaveType.Error()+": "))
	case errors.Is(err, domain.ErrExtractionTimeout):
		return msgExtractionTimeout
	default:
		uc.logger.Error().Err(err).Str("employee", employee).Msg("dialogue dispatch failed")
		return fmt.Sprintf(msgGenericError, err.Error())
	}
}
