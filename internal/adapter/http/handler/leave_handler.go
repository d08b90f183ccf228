package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/leaveflow/internal/adapter/http/dto"
	"github.com/iho/leaveflow/internal/domain"
)

// LedgerService defines the balance behavior needed by LeaveHandler.
type LedgerService interface {
	GetBalance(ctx context.Context, employee string, types []domain.LeaveType) (map[domain.LeaveType]int, error)
}

// LifecycleService defines the lifecycle behavior needed by LeaveHandler.
type LifecycleService interface {
	Propose(ctx context.Context, employee string, leaveType domain.LeaveType, startDate string, days int) (*domain.LeaveRecord, error)
	Cancel(ctx context.Context, employee string, selection int) (*domain.LeaveRecord, error)
	ActiveRequests(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
}

// HistoryService defines the history behavior needed by LeaveHandler.
type HistoryService interface {
	List(ctx context.Context, employee string) ([]*domain.LeaveRecord, error)
}

// LeaveHandler handles the structured leave workflow endpoints.
type LeaveHandler struct {
	ledgerUC    LedgerService
	lifecycleUC LifecycleService
	historyUC   HistoryService
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(ledgerUC LedgerService, lifecycleUC LifecycleService, historyUC HistoryService) *LeaveHandler {
	return &LeaveHandler{
		ledgerUC:    ledgerUC,
		lifecycleUC: lifecycleUC,
		historyUC:   historyUC,
	}
}

// GetBalance returns an employee's balances, optionally filtered by the
// "types" query parameter.
func (h *LeaveHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	types, err := parseTypesQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid leave type filter", err.Error())
		return
	}

	balances, err := h.ledgerUC.GetBalance(r.Context(), name, types)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(name, balances))
}

// CreateLeave submits a structured leave request.
func (h *LeaveHandler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req dto.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	leaveType, err := domain.ParseLeaveType(req.LeaveType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid leave type", err.Error())
		return
	}

	record, err := h.lifecycleUC.Propose(r.Context(), name, leaveType, req.StartDate, req.NumDays)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create leave request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LeaveRecordFromDomain(record))
}

// ListActive lists an employee's approved leave requests in selection
// order.
func (h *LeaveHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	records, err := h.lifecycleUC.ActiveRequests(r.Context(), name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list active leaves", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLeavesResponse{
		Employee: name,
		Leaves:   dto.LeaveRecordsFromDomain(records),
		Total:    len(records),
	})
}

// Cancel cancels the approved leave at the given 1-based selection
// position.
func (h *LeaveHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	selection, err := strconv.Atoi(chi.URLParam(r, "selection"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection", err.Error())
		return
	}

	record, err := h.lifecycleUC.Cancel(r.Context(), name, selection)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to cancel leave", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LeaveRecordFromDomain(record))
}

// History returns an employee's full leave history in append order.
func (h *LeaveHandler) History(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	records, err := h.historyUC.List(r.Context(), name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLeavesResponse{
		Employee: name,
		Leaves:   dto.LeaveRecordsFromDomain(records),
		Total:    len(records),
	})
}
