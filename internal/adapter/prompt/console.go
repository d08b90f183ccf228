package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/leaveflow/internal/domain"
)

// Console fills intent slots interactively. Each prompt loops until the
// answer satisfies its validation predicate; validation failures are
// re-prompted, never returned. The only returned errors are I/O ones
// (closed input, cancelled context).
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console reading answers from in and writing
// prompts to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// SelectLeaveType asks the user to pick one of the canonical leave types.
func (c *Console) SelectLeaveType(ctx context.Context) (domain.LeaveType, error) {
	types := domain.LeaveTypes()

	for {
		fmt.Fprintln(c.out, "\nAvailable leave types:")
		for i, lt := range types {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, lt)
		}
		fmt.Fprintf(c.out, "Select leave type (1-%d): ", len(types))

		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if choice, err := strconv.Atoi(line); err == nil && choice >= 1 && choice <= len(types) {
			return types[choice-1], nil
		}
		fmt.Fprintf(c.out, "Invalid choice. Please select a number between 1 and %d.\n", len(types))
	}
}

// PromptDays asks for a day count in [1, balance].
func (c *Console) PromptDays(ctx context.Context, leaveType domain.LeaveType, balance int) (int, error) {
	fmt.Fprintf(c.out, "\nYou have %d days of %s available.\n", balance, leaveType)

	for {
		fmt.Fprintf(c.out, "Enter number of days (max %d): ", balance)

		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		days, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number")
			continue
		}
		if days < 1 || days > balance {
			fmt.Fprintf(c.out, "Please enter a number between 1 and %d\n", balance)
			continue
		}
		return days, nil
	}
}

// PromptDate asks for a YYYY-MM-DD date until one parses.
func (c *Console) PromptDate(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(c.out, "\nEnter start date (YYYY-MM-DD): ")

		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if _, err := domain.ParseDate(line); err == nil {
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(c.out, "Invalid date format. Please use YYYY-MM-DD format (e.g., 2024-02-01)")
	}
}

// SelectCancellation displays the approved records and asks which to
// cancel: 0 aborts, otherwise a 1-based index.
func (c *Console) SelectCancellation(ctx context.Context, records []*domain.LeaveRecord) (int, error) {
	fmt.Fprintln(c.out, "\nActive leave requests:")
	for i, r := range records {
		fmt.Fprintf(c.out, "%d. %s: %d days from %s to %s\n",
			i+1, r.Type, r.Days,
			r.StartDate.Format(domain.DateFormat),
			r.EndDate.Format(domain.DateFormat))
	}

	for {
		fmt.Fprint(c.out, "\nSelect the leave to cancel (or 0 to go back): ")

		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number.")
			continue
		}
		if choice < 0 || choice > len(records) {
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
			continue
		}
		return choice, nil
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
