package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iho/leaveflow/internal/adapter/http/dto"
)

type dialogueServiceStub struct {
	processFn func(ctx context.Context, employee, text string) string
}

func (s *dialogueServiceStub) ProcessMessage(ctx context.Context, employee, text string) string {
	return s.processFn(ctx, employee, text)
}

func TestMessageHandler_Send(t *testing.T) {
	var capturedEmployee, capturedText string
	h := NewMessageHandler(&dialogueServiceStub{
		processFn: func(ctx context.Context, employee, text string) string {
			capturedEmployee = employee
			capturedText = text
			return "Sick Leave: 5 days"
		},
	})

	body, _ := json.Marshal(dto.SendMessageRequest{Employee: "Alice", Message: "check my sick leave"})
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Send(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedEmployee != "Alice" || capturedText != "check my sick leave" {
		t.Fatalf("unexpected dispatch: %q %q", capturedEmployee, capturedText)
	}

	var resp dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Reply != "Sick Leave: 5 days" {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}
}

func TestMessageHandler_Send_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing employee", body: `{"message": "check balance"}`},
		{name: "blank employee", body: `{"employee": "  ", "message": "check balance"}`},
		{name: "missing message", body: `{"employee": "Alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMessageHandler(&dialogueServiceStub{
				processFn: func(ctx context.Context, employee, text string) string {
					t.Fatal("ProcessMessage should not be called for invalid payload")
					return ""
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Send(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestMessageHandler_Send_WorkflowProblemsStayInReply(t *testing.T) {
	h := NewMessageHandler(&dialogueServiceStub{
		processFn: func(ctx context.Context, employee, text string) string {
			return "I'm sorry, I didn't understand that request."
		},
	})

	body, _ := json.Marshal(dto.SendMessageRequest{Employee: "Alice", Message: "gibberish"})
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Send(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with the problem in the reply, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "didn't understand") {
		t.Fatalf("expected the reply to carry the problem, got %s", rec.Body.String())
	}
}
