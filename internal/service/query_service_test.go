package service

import (
	"context"
	"testing"

	"github.com/teleassist/ticketing-service/internal/domain"
)

func TestSearchTickets_RejectsUnknownStatus(t *testing.T) {
	svc := NewQueryService(newFakeTicketRepo())

	_, err := svc.SearchTickets(context.Background(), TicketSearchInput{
		Statuses: []domain.TicketStatus{"SHIPPED"},
	})
	de := domainErr(t, err)
	if de.Code != "BAD_REQUEST" || de.Message != "unknown status: SHIPPED" {
		t.Fatalf("unexpected error: %s %s", de.Code, de.Message)
	}
}

func TestSearchTickets_CriteriaPassedThrough(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := NewQueryService(tickets)

	teamID := int64(4)
	city := "Lagos"
	_, err := svc.SearchTickets(context.Background(), TicketSearchInput{
		Statuses:    []domain.TicketStatus{domain.TicketStatusAssigned, domain.TicketStatusInProgress},
		TeamID:      &teamID,
		City:        &city,
		SLAAtRisk:   true,
		SLABreached: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets.searchLog) != 1 {
		t.Fatalf("expected one search, got %d", len(tickets.searchLog))
	}
	got := tickets.searchLog[0]
	if len(got.Statuses) != 2 || got.TeamID == nil || *got.TeamID != teamID {
		t.Fatalf("criteria not carried through: %+v", got)
	}
	if got.City == nil || *got.City != "Lagos" || !got.SLAAtRisk || got.SLABreached {
		t.Fatalf("criteria not carried through: %+v", got)
	}
}

func TestSearchTickets_EmptyCriteriaMatchesAll(t *testing.T) {
	cust := customer(1)
	f := newFixture(cust)
	seedCreatedTicket(t, f, cust)
	seedCreatedTicket(t, f, cust)
	svc := NewQueryService(f.tickets)

	results, err := svc.SearchTickets(context.Background(), TicketSearchInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected all tickets, got %d", len(results))
	}
}
