package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/leaveflow/internal/domain"
)

const extractionPrompt = `Extract leave-related information from the user's input. Be flexible in understanding different ways users might express their intentions.

Valid leave types are: Sick Leave, Annual Leave, Maternity Leave
Valid actions are: request, cancel, check, view

For the leave_types field:
- Return an empty array [] if the user wants to check all leave types
- Return an array with specific leave types if mentioned

Respond with a JSON object with keys "leave_types" (array of strings), "num_days" (integer or null), "start_date" (YYYY-MM-DD string or null) and "action" (string).

Examples:
Input: "I need to take 3 days off next week for medical reasons"
Output: {"leave_types": ["Sick Leave"], "num_days": 3, "start_date": null, "action": "request"}

Input: "I want to check my leave balance"
Output: {"leave_types": [], "num_days": null, "start_date": null, "action": "check"}

Input: "How many sick days do I have left?"
Output: {"leave_types": ["Sick Leave"], "num_days": null, "start_date": null, "action": "check"}

Input: "Show my vacation and sick leave balance"
Output: {"leave_types": ["Annual Leave", "Sick Leave"], "num_days": null, "start_date": null, "action": "check"}

Input: "Cancel my leave"
Output: {"leave_types": [], "num_days": null, "start_date": null, "action": "cancel"}

Input: "Show my leave history"
Output: {"leave_types": [], "num_days": null, "start_date": null, "action": "view"}`

// Config holds OpenAIExtractor settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// OpenAIExtractor maps free text to a leave intent through the OpenAI
// chat-completions API. Every call runs under an explicit deadline; an
// unresponsive upstream surfaces ErrExtractionTimeout instead of blocking
// the session.
type OpenAIExtractor struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  zerolog.Logger
}

// New creates a new OpenAIExtractor.
func New(cfg Config) *OpenAIExtractor {
	return &OpenAIExtractor{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		client:  &http.Client{},
		logger:  cfg.Logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Temperature    float64       `json:"temperature"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type intentPayload struct {
	LeaveTypes []string `json:"leave_types"`
	NumDays    *int     `json:"num_days"`
	StartDate  *string  `json:"start_date"`
	Action     string   `json:"action"`
}

// Extract sends the text for extraction and validates the structured reply.
func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (*domain.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	content, err := e.complete(ctx, text)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", domain.ErrExtractionTimeout, e.timeout)
		}
		return nil, err
	}

	return ParseIntent(content)
}

// complete performs the chat-completions request, retrying transient
// failures with exponential backoff within the extraction deadline.
func (e *OpenAIExtractor) complete(ctx context.Context, text string) (string, error) {
	body := chatRequest{
		Model:       e.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: extractionPrompt},
			{Role: "user", Content: text},
		},
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	var content string
	err = backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+e.apiKey)

		resp, err := e.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			e.logger.Warn().Err(err).Msg("extraction request failed, retrying")
			return err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			e.logger.Warn().Int("status", resp.StatusCode).Msg("extraction upstream unavailable, retrying")
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("%w: upstream status %d: %s",
				domain.ErrExtractionFailure, resp.StatusCode, strings.TrimSpace(string(respBody))))
		}

		var chat chatResponse
		if err := json.Unmarshal(respBody, &chat); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: undecodable response: %v", domain.ErrExtractionFailure, err))
		}
		if len(chat.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("%w: empty response", domain.ErrExtractionFailure))
		}

		content = chat.Choices[0].Message.Content
		return nil
	}, backoff.WithContext(b, ctx))

	return content, err
}

// ParseIntent validates extractor output against the intent contract.
// Anything non-conforming is an extraction failure, never coerced.
func ParseIntent(content string) (*domain.Intent, error) {
	var payload intentPayload
	if err := json.Unmarshal([]byte(stripFences(content)), &payload); err != nil {
		return nil, fmt.Errorf("%w: undecodable intent: %v", domain.ErrExtractionFailure, err)
	}

	action, err := domain.ParseAction(payload.Action)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrExtractionFailure, payload.Action)
	}

	intent := &domain.Intent{Action: action}

	for _, name := range payload.LeaveTypes {
		lt, err := domain.ParseLeaveType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown leave type %q", domain.ErrExtractionFailure, name)
		}
		intent.LeaveTypes = append(intent.LeaveTypes, lt)
	}

	if payload.NumDays != nil {
		if *payload.NumDays < 1 {
			return nil, fmt.Errorf("%w: non-positive day count %d", domain.ErrExtractionFailure, *payload.NumDays)
		}
		intent.NumDays = *payload.NumDays
	}

	if payload.StartDate != nil {
		intent.StartDate = *payload.StartDate
	}

	return intent, nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON despite the response format instruction.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
