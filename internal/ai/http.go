package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// HTTPAssistant calls a remote triage model over HTTP.
type HTTPAssistant struct {
	BaseURL string
	Client  *http.Client
}

type suggestRequest struct {
	Summary string `json:"summary"`
}

type suggestResponse struct {
	Priority string `json:"priority"`
	Severity string `json:"severity"`
	Role     string `json:"role"`
}

func NewHTTPAssistant(baseURL string, timeout time.Duration) *HTTPAssistant {
	return &HTTPAssistant{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (h *HTTPAssistant) Suggest(ctx context.Context, summary string) (Suggestion, error) {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 15 * time.Second}
	}

	body, _ := json.Marshal(suggestRequest{Summary: summary})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/suggest", bytes.NewBuffer(body))
	if err != nil {
		return Suggestion{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return Suggestion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Suggestion{}, errors.New("triage assistant error")
	}

	var r suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Suggestion{}, err
	}
	return Suggestion{
		Priority:      domain.TicketPriority(r.Priority),
		Severity:      domain.TicketSeverity(r.Severity),
		SuggestedRole: domain.Role(r.Role),
	}, nil
}
