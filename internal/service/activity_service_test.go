package service

import (
	"context"
	"testing"

	"github.com/teleassist/ticketing-service/internal/domain"
)

func activityFixture(t *testing.T) (*fixture, *ActivityService, *domain.User, *domain.Ticket) {
	t.Helper()
	cust := customer(1)
	officer := triageOfficer(2)
	eng := engineer(3, nil)
	f := newFixture(cust, officer, eng)
	svc := NewActivityService(f.tickets, f.activities)

	ticket := seedCreatedTicket(t, f, cust)
	if _, err := f.service.Triage(context.Background(), officer, ticket.ID, TriageInput{
		Priority:    domain.TicketPriorityHigh,
		Severity:    domain.TicketSeverityMajor,
		AssigneeIDs: []int64{eng.ID},
	}); err != nil {
		t.Fatalf("seed triage: %v", err)
	}
	return f, svc, cust, ticket
}

func TestGetLogsForTicket_InternalSeesEverything(t *testing.T) {
	f, svc, _, ticket := activityFixture(t)

	officer, _ := f.users.GetByID(context.Background(), 2)
	logs, err := svc.GetLogsForTicket(context.Background(), officer, ticket.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// creation, priority change, and the internal assignment entry
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}
	// newest first
	if logs[0].ActivityType != domain.ActivityAssignment {
		t.Fatalf("expected assignment entry first, got %s", logs[0].ActivityType)
	}
}

func TestGetLogsForTicket_OwnerSeesPublicOnly(t *testing.T) {
	_, svc, cust, ticket := activityFixture(t)

	logs, err := svc.GetLogsForTicket(context.Background(), cust, ticket.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected creation and priority change only, got %d", len(logs))
	}
	for _, log := range logs {
		if log.InternalOnly {
			t.Fatalf("internal entry leaked to owner: %+v", log)
		}
	}
}

func TestGetLogsForTicket_StrangerForbidden(t *testing.T) {
	f, svc, _, ticket := activityFixture(t)
	stranger := &domain.User{ID: 99, Roles: []domain.Role{domain.RoleCustomer}}
	f.users.users[stranger.ID] = stranger

	_, err := svc.GetLogsForTicket(context.Background(), stranger, ticket.ID)
	de := domainErr(t, err)
	if de.Code != "FORBIDDEN" || de.Message != "You are not authorized to view this ticket's logs." {
		t.Fatalf("unexpected error: %s %s", de.Code, de.Message)
	}
}

func TestGetLogsForTicketUID(t *testing.T) {
	_, svc, cust, ticket := activityFixture(t)

	logs, err := svc.GetLogsForTicketUID(context.Background(), cust, ticket.TicketUID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) == 0 {
		t.Fatalf("expected logs via UID lookup")
	}

	_, err = svc.GetLogsForTicketUID(context.Background(), cust, "TK9999")
	if de := domainErr(t, err); de.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND for unknown UID, got %s", de.Code)
	}
}
