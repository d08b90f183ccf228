package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/leaveflow/internal/domain"
)

// Roster maps employee names to their initial per-leave-type balances.
// Loaded once at startup; read-only thereafter.
type Roster map[string]map[domain.LeaveType]int

// Default returns the built-in roster.
func Default() Roster {
	return Roster{
		"Alice": {
			domain.SickLeave:      5,
			domain.AnnualLeave:    10,
			domain.MaternityLeave: 5,
		},
		"Bob": {
			domain.SickLeave:      8,
			domain.AnnualLeave:    15,
			domain.MaternityLeave: 0,
		},
		"Charlie": {
			domain.SickLeave:      2,
			domain.AnnualLeave:    12,
			domain.MaternityLeave: 0,
		},
	}
}

// Load reads a roster from a JSON file mapping employee names to leave type
// balances. Every leave type name must be one of the canonical types and
// every balance must be non-negative.
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}

	roster := make(Roster, len(raw))
	for employee, perType := range raw {
		if err := domain.ValidateEmployeeName(employee); err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", employee, err)
		}
		balances := make(map[domain.LeaveType]int, len(perType))
		for name, days := range perType {
			lt, err := domain.ParseLeaveType(name)
			if err != nil {
				return nil, fmt.Errorf("roster entry %q: %w: %s", employee, domain.ErrInvalidLeaveType, name)
			}
			if days < 0 {
				return nil, fmt.Errorf("roster entry %q: negative balance %d for %s", employee, days, name)
			}
			balances[lt] = days
		}
		roster[employee] = balances
	}
	return roster, nil
}

// Has reports whether an employee is on the roster.
func (r Roster) Has(employee string) bool {
	_, ok := r[employee]
	return ok
}

// Names returns the roster's employee names, unordered.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}
