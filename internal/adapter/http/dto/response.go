package dto

import (
	"time"

	"github.com/iho/leaveflow/internal/domain"
)

// MessageResponse carries the workflow reply to a chat message.
type MessageResponse struct {
	Employee string `json:"employee"`
	Reply    string `json:"reply"`
}

// BalanceResponse represents leave balances in API responses. Entries
// follow the canonical leave type order.
type BalanceResponse struct {
	Employee string        `json:"employee"`
	Balances []BalanceItem `json:"balances"`
}

// BalanceItem is a single leave type balance.
type BalanceItem struct {
	LeaveType string `json:"leave_type"`
	Days      int    `json:"days"`
}

// BalanceFromDomain converts a balance map to a response, rendering the
// types in canonical order and skipping absent ones.
func BalanceFromDomain(employee string, balances map[domain.LeaveType]int) *BalanceResponse {
	resp := &BalanceResponse{Employee: employee, Balances: []BalanceItem{}}
	for _, lt := range domain.LeaveTypes() {
		if days, ok := balances[lt]; ok {
			resp.Balances = append(resp.Balances, BalanceItem{LeaveType: string(lt), Days: days})
		}
	}
	return resp
}

// LeaveRecordResponse represents a leave record in API responses.
type LeaveRecordResponse struct {
	ID          string     `json:"id"`
	Employee    string     `json:"employee"`
	LeaveType   string     `json:"leave_type"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	NumDays     int        `json:"num_days"`
	Status      string     `json:"status"`
	RecordedAt  time.Time  `json:"recorded_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// LeaveRecordFromDomain converts a domain record to a response.
func LeaveRecordFromDomain(r *domain.LeaveRecord) *LeaveRecordResponse {
	return &LeaveRecordResponse{
		ID:          r.ID,
		Employee:    r.Employee,
		LeaveType:   string(r.Type),
		StartDate:   r.StartDate.Format(domain.DateFormat),
		EndDate:     r.EndDate.Format(domain.DateFormat),
		NumDays:     r.Days,
		Status:      string(r.Status),
		RecordedAt:  r.RecordedAt,
		CancelledAt: r.CancelledAt,
	}
}

// LeaveRecordsFromDomain converts domain records to responses.
func LeaveRecordsFromDomain(records []*domain.LeaveRecord) []*LeaveRecordResponse {
	result := make([]*LeaveRecordResponse, len(records))
	for i, r := range records {
		result[i] = LeaveRecordFromDomain(r)
	}
	return result
}

// ListLeavesResponse wraps a list of leave records.
type ListLeavesResponse struct {
	Employee string                 `json:"employee"`
	Leaves   []*LeaveRecordResponse `json:"leaves"`
	Total    int                    `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
