package domain

import "errors"

var (
	// Ledger errors
	ErrUnknownEmployee     = errors.New("employee not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrNoValidTypes        = errors.New("no valid leave types specified")
	ErrInvalidDayCount     = errors.New("number of days must be at least 1")

	// Lifecycle errors
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNothingToCancel  = errors.New("no active leave requests")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrRecordNotFound   = errors.New("leave record not found")

	// Extraction errors
	ErrExtractionFailure = errors.New("could not extract a leave intent")
	ErrExtractionTimeout = errors.New("intent extraction timed out")
)
