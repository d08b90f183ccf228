package domain

import (
	"fmt"
	"time"
)

// LeaveType is a category of leave an employee can draw from.
type LeaveType string

const (
	SickLeave      LeaveType = "Sick Leave"
	AnnualLeave    LeaveType = "Annual Leave"
	MaternityLeave LeaveType = "Maternity Leave"
)

// LeaveTypes returns every leave type in canonical enumeration order.
// Balance displays and selection menus follow this order.
func LeaveTypes() []LeaveType {
	return []LeaveType{SickLeave, AnnualLeave, MaternityLeave}
}

// ParseLeaveType parses an exact leave type name. Matching is
// case-sensitive; anything else fails with ErrInvalidLeaveType.
func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(s) {
	case SickLeave, AnnualLeave, MaternityLeave:
		return LeaveType(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLeaveType, s)
	}
}

// RecordStatus is the lifecycle state of a leave record.
type RecordStatus string

const (
	StatusApproved  RecordStatus = "approved"
	StatusCancelled RecordStatus = "cancelled"
)

// LeaveRecord is one entry in the leave history. Records are append-only;
// the only permitted mutation is the approved-to-cancelled status flip.
type LeaveRecord struct {
	ID          string
	Employee    string
	Type        LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Status      RecordStatus
	RecordedAt  time.Time
	CancelledAt *time.Time
}

// LeaveEndDate computes the inclusive end date of a leave spanning days
// calendar days from start. A one-day leave ends the day it starts.
func LeaveEndDate(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days-1)
}
