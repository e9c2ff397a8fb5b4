package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/teleassist/ticketing-service/internal/ai"
	"github.com/teleassist/ticketing-service/internal/domain"
)

type fixedAssistant struct {
	suggestion ai.Suggestion
	err        error
	summaries  []string
}

func (a *fixedAssistant) Suggest(ctx context.Context, summary string) (ai.Suggestion, error) {
	a.summaries = append(a.summaries, summary)
	return a.suggestion, a.err
}

func TestGetPendingTickets_IncludesReopened(t *testing.T) {
	cust := customer(1)
	f := newFixture(cust)
	svc := NewTriageService(f.tickets, f.activities, &fixedAssistant{}, zap.NewNop())

	fresh := seedCreatedTicket(t, f, cust)
	reopened := seedCreatedTicket(t, f, cust)
	stored, _ := f.tickets.GetByID(context.Background(), reopened.ID)
	stored.Status = domain.TicketStatusReopened
	if err := f.tickets.Update(context.Background(), stored); err != nil {
		t.Fatalf("seed reopened: %v", err)
	}
	assigned := seedCreatedTicket(t, f, cust)
	stored, _ = f.tickets.GetByID(context.Background(), assigned.ID)
	stored.Status = domain.TicketStatusAssigned
	if err := f.tickets.Update(context.Background(), stored); err != nil {
		t.Fatalf("seed assigned: %v", err)
	}

	pending, err := svc.GetPendingTickets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected fresh and reopened tickets, got %d", len(pending))
	}
	if pending[0].ID != fresh.ID || pending[1].ID != reopened.ID {
		t.Fatalf("unexpected queue contents: %v, %v", pending[0].ID, pending[1].ID)
	}
}

func TestGetAISuggestions_UsesAssistant(t *testing.T) {
	cust := customer(1)
	f := newFixture(cust)
	assistant := &fixedAssistant{suggestion: ai.Suggestion{
		Priority:      domain.TicketPriorityHigh,
		Severity:      domain.TicketSeverityMajor,
		SuggestedRole: domain.RoleNOCEngineer,
	}}
	svc := NewTriageService(f.tickets, f.activities, assistant, zap.NewNop())

	ticket := seedCreatedTicket(t, f, cust)

	suggestions, err := svc.GetAISuggestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %d", len(suggestions))
	}
	got := suggestions[0]
	if got.TicketID != ticket.ID || got.TicketUID != ticket.TicketUID {
		t.Fatalf("suggestion references wrong ticket: %+v", got)
	}
	if got.Priority != domain.TicketPriorityHigh || got.Severity != domain.TicketSeverityMajor {
		t.Fatalf("assistant triple not carried through: %+v", got)
	}
	if got.SuggestedRole != domain.RoleNOCEngineer {
		t.Fatalf("expected suggested role, got %q", got.SuggestedRole)
	}
	if len(assistant.summaries) != 1 || !strings.HasPrefix(assistant.summaries[0], ticket.Title+": ") {
		t.Fatalf("unexpected summary sent to assistant: %v", assistant.summaries)
	}
}

func TestGetAISuggestions_FailureDegradesToDefaults(t *testing.T) {
	cust := customer(1)
	f := newFixture(cust)
	assistant := &fixedAssistant{err: errors.New("connection refused")}
	svc := NewTriageService(f.tickets, f.activities, assistant, zap.NewNop())

	ticket := seedCreatedTicket(t, f, cust)

	suggestions, err := svc.GetAISuggestions(context.Background())
	if err != nil {
		t.Fatalf("assistant failure must not propagate: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected a degraded suggestion, got %d", len(suggestions))
	}
	got := suggestions[0]
	if got.Title != "[AI FAILED] "+ticket.Title {
		t.Fatalf("expected flagged title, got %q", got.Title)
	}
	if got.Priority != domain.TicketPriorityLow || got.Severity != domain.TicketSeverityTrivial {
		t.Fatalf("expected lowest priority and severity, got %+v", got)
	}
}

func TestGetNotifications_NewAndReopenedOnly(t *testing.T) {
	cust := customer(1)
	f := newFixture(cust)
	svc := NewTriageService(f.tickets, f.activities, &fixedAssistant{}, zap.NewNop())

	ticket := seedCreatedTicket(t, f, cust)
	extra := []domain.TicketActivity{
		{TicketID: ticket.ID, UserID: cust.ID, ActivityType: domain.ActivityComment, Description: "noise"},
		{TicketID: ticket.ID, UserID: cust.ID, ActivityType: domain.ActivityReopened, Description: "Ticket reopened after negative feedback (rating 1)"},
	}
	for i := range extra {
		if err := f.activities.Create(context.Background(), &extra[i]); err != nil {
			t.Fatalf("seed activity: %v", err)
		}
	}

	logs, err := svc.GetNotifications(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected creation and reopened entries, got %d", len(logs))
	}
	for _, log := range logs {
		if log.ActivityType != domain.ActivityCreation && log.ActivityType != domain.ActivityReopened {
			t.Fatalf("unexpected activity type in feed: %s", log.ActivityType)
		}
	}
}
