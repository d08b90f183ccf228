package dto

// SendMessageRequest represents a free-form chat message.
type SendMessageRequest struct {
	Employee string `json:"employee"`
	Message  string `json:"message"`
}

// CreateLeaveRequest represents a structured leave request.
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	NumDays   int    `json:"num_days"`
	StartDate string `json:"start_date"`
}
