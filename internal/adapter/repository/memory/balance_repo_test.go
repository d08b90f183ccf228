package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/iho/leaveflow/internal/adapter/repository/memory"
	"github.com/iho/leaveflow/internal/domain"
)

func newBalanceRepo() *memory.BalanceRepository {
	return memory.NewBalanceRepository(map[string]map[domain.LeaveType]int{
		"Alice": {
			domain.SickLeave:   5,
			domain.AnnualLeave: 10,
		},
	})
}

func TestBalanceRepository_Balances(t *testing.T) {
	repo := newBalanceRepo()
	ctx := context.Background()

	balances, err := repo.Balances(ctx, "Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balances[domain.SickLeave] != 5 || balances[domain.AnnualLeave] != 10 {
		t.Errorf("unexpected balances: %v", balances)
	}

	// Mutating the returned map must not leak into the store.
	balances[domain.SickLeave] = 0
	again, _ := repo.Balances(ctx, "Alice")
	if again[domain.SickLeave] != 5 {
		t.Error("returned map aliases repository state")
	}

	if _, err := repo.Balances(ctx, "Mallory"); !errors.Is(err, domain.ErrUnknownEmployee) {
		t.Errorf("expected ErrUnknownEmployee, got %v", err)
	}
}

func TestBalanceRepository_Adjust(t *testing.T) {
	repo := newBalanceRepo()
	ctx := context.Background()

	balance, err := repo.Adjust(ctx, "Alice", domain.SickLeave, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 2 {
		t.Errorf("expected 2, got %d", balance)
	}

	if _, err := repo.Adjust(ctx, "Alice", domain.SickLeave, -3); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
	balances, _ := repo.Balances(ctx, "Alice")
	if balances[domain.SickLeave] != 2 {
		t.Errorf("failed adjust changed the balance: %d", balances[domain.SickLeave])
	}

	if _, err := repo.Adjust(ctx, "Alice", domain.MaternityLeave, 1); !errors.Is(err, domain.ErrInvalidLeaveType) {
		t.Errorf("expected ErrInvalidLeaveType, got %v", err)
	}
	if _, err := repo.Adjust(ctx, "Mallory", domain.SickLeave, 1); !errors.Is(err, domain.ErrUnknownEmployee) {
		t.Errorf("expected ErrUnknownEmployee, got %v", err)
	}
}

func TestBalanceRepository_AdjustConcurrent(t *testing.T) {
	repo := memory.NewBalanceRepository(map[string]map[domain.LeaveType]int{
		"Alice": {domain.AnnualLeave: 0},
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Adjust(ctx, "Alice", domain.AnnualLeave, 1)
		}()
	}
	wg.Wait()

	balances, _ := repo.Balances(ctx, "Alice")
	if balances[domain.AnnualLeave] != 50 {
		t.Errorf("expected 50 after 50 concurrent credits, got %d", balances[domain.AnnualLeave])
	}
}

func TestBalanceRepository_SeedIsCopied(t *testing.T) {
	seed := map[string]map[domain.LeaveType]int{
		"Alice": {domain.SickLeave: 5},
	}
	repo := memory.NewBalanceRepository(seed)

	seed["Alice"][domain.SickLeave] = 99

	balances, _ := repo.Balances(context.Background(), "Alice")
	if balances[domain.SickLeave] != 5 {
		t.Error("repository aliases the seed map")
	}
}
