package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the calendar date format accepted everywhere: YYYY-MM-DD.
const DateFormat = "2006-01-02"

// ParseDate parses a calendar date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return t, nil
}

// ValidateDayCount validates a requested number of leave days.
func ValidateDayCount(days int) error {
	if days < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayCount, days)
	}
	return nil
}

// ValidateEmployeeName validates a roster login name.
func ValidateEmployeeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownEmployee)
	}
	return nil
}
