package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/leaveflow/internal/domain"
	"github.com/iho/leaveflow/internal/usecase"
	"github.com/iho/leaveflow/internal/usecase/mocks"
)

type dialogueFixture struct {
	dialogue  *usecase.DialogueUseCase
	extractor *mocks.MockIntentExtractor
	prompter  *mocks.MockPrompter
	balances  *mocks.MockBalanceRepository
	history   *mocks.MockHistoryRepository
}

func newDialogueFixture(t *testing.T) *dialogueFixture {
	ctrl := gomock.NewController(t)

	balanceRepo := seededBalanceRepo()
	balanceRepo.Seed("Bob", map[domain.LeaveType]int{
		domain.SickLeave:      8,
		domain.AnnualLeave:    15,
		domain.MaternityLeave: 0,
	})
	historyRepo := mocks.NewMockHistoryRepository()

	ledger := usecase.NewLedgerUseCase(balanceRepo)
	lifecycle := usecase.NewLifecycleUseCase(ledger, historyRepo, mocks.NewMockIDGenerator())
	history := usecase.NewHistoryUseCase(historyRepo)
	extractor := mocks.NewMockIntentExtractor(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	dialogue := usecase.NewDialogueUseCase(ledger, lifecycle, history, extractor, prompter, zerolog.Nop())

	return &dialogueFixture{
		dialogue:  dialogue,
		extractor: extractor,
		prompter:  prompter,
		balances:  balanceRepo,
		history:   historyRepo,
	}
}

func TestDialogue_CheckAllTypes(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{Action: domain.ActionCheck})

	want := "Sick Leave: 5 days\nAnnual Leave: 10 days\nMaternity Leave: 5 days"
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}
}

func TestDialogue_CheckCanonicalOrderIgnoresInputOrder(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{
		Action:     domain.ActionCheck,
		LeaveTypes: []domain.LeaveType{domain.AnnualLeave, domain.SickLeave},
	})

	want := "Sick Leave: 5 days\nAnnual Leave: 10 days"
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}
}

func TestDialogue_CheckNoValidTypes(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{
		Action:     domain.ActionCheck,
		LeaveTypes: []domain.LeaveType{domain.LeaveType("Sabbatical")},
	})

	if reply != "No valid leave types specified." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_CheckUnknownEmployee(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Mallory", &domain.Intent{Action: domain.ActionCheck})

	if reply != "Employee Mallory not found." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_RequestFullySpecified(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.SickLeave},
		NumDays:    3,
		StartDate:  "2024-02-01",
	})

	want := "Leave request approved. 3 days of Sick Leave scheduled from 2024-02-01 to 2024-02-03."
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}

	balances, _ := f.balances.Balances(context.Background(), "Alice")
	if balances[domain.SickLeave] != 2 {
		t.Errorf("expected balance 2, got %d", balances[domain.SickLeave])
	}

	records, _ := f.history.ListByEmployee(context.Background(), "Alice")
	if len(records) != 1 || records[0].Status != domain.StatusApproved {
		t.Fatalf("expected one approved record, got %+v", records)
	}
}

func TestDialogue_RequestInsufficientBalance(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Bob", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.AnnualLeave},
		NumDays:    20,
		StartDate:  "2024-02-01",
	})

	if reply != "Insufficient Annual Leave balance. You have 15 days available." {
		t.Errorf("unexpected reply: %q", reply)
	}

	balances, _ := f.balances.Balances(context.Background(), "Bob")
	if balances[domain.AnnualLeave] != 15 {
		t.Errorf("balance changed after rejection: %d", balances[domain.AnnualLeave])
	}
	records, _ := f.history.ListByEmployee(context.Background(), "Bob")
	if len(records) != 0 {
		t.Errorf("rejected proposal must not be recorded, got %d records", len(records))
	}
}

func TestDialogue_RequestFillsMissingSlots(t *testing.T) {
	f := newDialogueFixture(t)
	ctx := context.Background()

	// Missing type, days and date: the prompter supplies all three. The day
	// prompt is bounded by the current balance for the chosen type.
	f.prompter.EXPECT().SelectLeaveType(gomock.Any()).Return(domain.AnnualLeave, nil)
	f.prompter.EXPECT().PromptDays(gomock.Any(), domain.AnnualLeave, 10).Return(4, nil)
	f.prompter.EXPECT().PromptDate(gomock.Any()).Return("2024-05-06", nil)

	reply := f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{Action: domain.ActionRequest})

	want := "Leave request approved. 4 days of Annual Leave scheduled from 2024-05-06 to 2024-05-09."
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}
}

func TestDialogue_RequestFirstExtractedTypeWins(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.AnnualLeave, domain.SickLeave},
		NumDays:    2,
		StartDate:  "2024-02-01",
	})

	want := "Leave request approved. 2 days of Annual Leave scheduled from 2024-02-01 to 2024-02-02."
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}
}

func TestDialogue_RequestZeroBalanceShortCircuitsDayPrompt(t *testing.T) {
	f := newDialogueFixture(t)

	// Bob has no Maternity Leave: a [1, 0] day prompt is unsatisfiable, so
	// the request is rejected without prompting.
	reply := f.dialogue.Dispatch(context.Background(), "Bob", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.MaternityLeave},
	})

	if reply != "Insufficient Maternity Leave balance. You have 0 days available." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_CancelNoActiveRequests(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{Action: domain.ActionCancel})

	if reply != "No active leave requests found." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_CancelAbortLeavesStateUntouched(t *testing.T) {
	f := newDialogueFixture(t)
	ctx := context.Background()

	f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.SickLeave},
		NumDays:    3,
		StartDate:  "2024-02-01",
	})

	f.prompter.EXPECT().SelectCancellation(gomock.Any(), gomock.Any()).Return(0, nil)

	reply := f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{Action: domain.ActionCancel})
	if reply != "Leave cancellation cancelled." {
		t.Errorf("unexpected reply: %q", reply)
	}

	balances, _ := f.balances.Balances(ctx, "Alice")
	if balances[domain.SickLeave] != 2 {
		t.Errorf("abort must not change the balance, got %d", balances[domain.SickLeave])
	}
	records, _ := f.history.ListByEmployee(ctx, "Alice")
	if len(records) != 1 || records[0].Status != domain.StatusApproved {
		t.Errorf("abort must not change history, got %+v", records)
	}
}

func TestDialogue_CancelRestoresBalance(t *testing.T) {
	f := newDialogueFixture(t)
	ctx := context.Background()

	f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.SickLeave},
		NumDays:    3,
		StartDate:  "2024-02-01",
	})

	f.prompter.EXPECT().SelectCancellation(gomock.Any(), gomock.Any()).Return(1, nil)

	reply := f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{Action: domain.ActionCancel})
	if reply != "Cancelled 3 days of Sick Leave from 2024-02-01. Leave balance updated." {
		t.Errorf("unexpected reply: %q", reply)
	}

	balances, _ := f.balances.Balances(ctx, "Alice")
	if balances[domain.SickLeave] != 5 {
		t.Errorf("expected balance restored to 5, got %d", balances[domain.SickLeave])
	}
}

func TestDialogue_ViewHistory(t *testing.T) {
	f := newDialogueFixture(t)
	ctx := context.Background()

	reply := f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{Action: domain.ActionView})
	if reply != "No leave history found." {
		t.Errorf("unexpected reply: %q", reply)
	}

	f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{
		Action:     domain.ActionRequest,
		LeaveTypes: []domain.LeaveType{domain.SickLeave},
		NumDays:    3,
		StartDate:  "2024-02-01",
	})

	reply = f.dialogue.Dispatch(ctx, "Alice", &domain.Intent{Action: domain.ActionView})
	want := "Sick Leave: 3 days from 2024-02-01 to 2024-02-03 (approved)"
	if reply != want {
		t.Errorf("expected %q, got %q", want, reply)
	}
}

func TestDialogue_UnrecognizedAction(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.dialogue.Dispatch(context.Background(), "Alice", &domain.Intent{Action: domain.Action("escalate")})

	if reply != "I'm sorry, I didn't understand that request." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_ProcessMessage(t *testing.T) {
	f := newDialogueFixture(t)
	ctx := context.Background()

	f.extractor.EXPECT().Extract(gomock.Any(), "how many sick days do I have left?").Return(&domain.Intent{
		Action:     domain.ActionCheck,
		LeaveTypes: []domain.LeaveType{domain.SickLeave},
	}, nil)

	reply := f.dialogue.ProcessMessage(ctx, "Alice", "how many sick days do I have left?")
	if reply != "Sick Leave: 5 days" {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestDialogue_ProcessMessageExtractionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout has a dedicated reply",
			err:  domain.ErrExtractionTimeout,
			want: "Sorry, interpreting your request took too long. Please try again.",
		},
		{
			name: "other failures get the generic reply with detail",
			err:  errors.New("upstream returned 500"),
			want: "An error occurred while processing your request: upstream returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDialogueFixture(t)
			f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			reply := f.dialogue.ProcessMessage(context.Background(), "Alice", "gibberish")
			if reply != tt.want {
				t.Errorf("expected %q, got %q", tt.want, reply)
			}
		})
	}
}
