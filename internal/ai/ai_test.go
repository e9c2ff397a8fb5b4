package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teleassist/ticketing-service/internal/domain"
)

func TestMockAssistant_Deterministic(t *testing.T) {
	assistant := MockAssistant{ModelName: "stub"}

	first, err := assistant.Suggest(context.Background(), "Router down: blinking red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := assistant.Suggest(context.Background(), "Router down: blinking red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("same summary should yield the same suggestion: %+v vs %+v", first, second)
	}
	if first.Priority == "" || first.Severity == "" || first.SuggestedRole == "" {
		t.Fatalf("incomplete suggestion: %+v", first)
	}
}

func TestMockAssistant_VariesAcrossSummaries(t *testing.T) {
	assistant := MockAssistant{}
	seen := make(map[Suggestion]bool)
	summaries := []string{
		"Fiber cut at junction 4",
		"Email bouncing for all users",
		"Latency spikes on the backbone",
		"Battery alarm at site 12",
		"Port flapping on core switch",
	}
	for _, summary := range summaries {
		s, err := assistant.Suggest(context.Background(), summary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied suggestions, all %d summaries collided", len(summaries))
	}
}

func TestHTTPAssistant_Suggest(t *testing.T) {
	var gotSummary string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/suggest" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Summary string `json:"summary"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotSummary = req.Summary
		json.NewEncoder(w).Encode(map[string]string{
			"priority": "HIGH",
			"severity": "MAJOR",
			"role":     "NOC_ENGINEER",
		})
	}))
	defer server.Close()

	assistant := NewHTTPAssistant(server.URL, 0)
	got, err := assistant.Suggest(context.Background(), "Link down: site 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSummary != "Link down: site 7" {
		t.Fatalf("summary not forwarded, got %q", gotSummary)
	}
	want := Suggestion{
		Priority:      domain.TicketPriorityHigh,
		Severity:      domain.TicketSeverityMajor,
		SuggestedRole: domain.RoleNOCEngineer,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestHTTPAssistant_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	assistant := NewHTTPAssistant(server.URL, 0)
	if _, err := assistant.Suggest(context.Background(), "x"); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}
