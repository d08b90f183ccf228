package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/iho/leaveflow/internal/adapter/http/dto"
	"github.com/iho/leaveflow/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownEmployee):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNothingToCancel):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidLeaveType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoValidTypes):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDayCount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrExtractionTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrExtractionFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseTypesQuery parses the comma-separated "types" query parameter into
// leave types. An empty parameter means all types.
func parseTypesQuery(r *http.Request) ([]domain.LeaveType, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("types"))
	if raw == "" {
		return nil, nil
	}

	var types []domain.LeaveType
	for _, name := range strings.Split(raw, ",") {
		lt, err := domain.ParseLeaveType(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, nil
}
