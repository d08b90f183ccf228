package handler

import (
	"net/http"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	employees int
}

// NewHealthHandler creates a new HealthHandler reporting over the given
// number of rostered employees.
func NewHealthHandler(employees int) *HealthHandler {
	return &HealthHandler{employees: employees}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the roster is loaded. State lives in memory,
// so a live process with a roster is a ready process.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.employees == 0 {
		writeError(w, http.StatusServiceUnavailable, "roster empty", "no employees loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"employees": h.employees,
	})
}
