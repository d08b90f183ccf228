package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iho/leaveflow/internal/adapter/http/dto"
)

// DialogueService defines the behavior needed by MessageHandler.
type DialogueService interface {
	ProcessMessage(ctx context.Context, employee, text string) string
}

// MessageHandler handles free-form workflow messages. Replies always come
// back with status 200; workflow problems are reported inside the reply
// text, the way the interactive session reports them.
type MessageHandler struct {
	dialogueUC DialogueService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(dialogueUC DialogueService) *MessageHandler {
	return &MessageHandler{dialogueUC: dialogueUC}
}

// Send runs one message through the workflow and returns the reply.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req.Employee = strings.TrimSpace(req.Employee)
	if req.Employee == "" {
		writeError(w, http.StatusBadRequest, "missing employee", "")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "missing message", "")
		return
	}

	reply := h.dialogueUC.ProcessMessage(r.Context(), req.Employee, req.Message)

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Employee: req.Employee,
		Reply:    reply,
	})
}
