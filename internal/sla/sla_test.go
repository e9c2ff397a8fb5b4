package sla

import (
	"testing"
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

func TestDurationHours(t *testing.T) {
	cases := []struct {
		severity domain.TicketSeverity
		want     int
	}{
		{domain.TicketSeverityCritical, 20},
		{domain.TicketSeverityMajor, 30},
		{domain.TicketSeverityMinor, 48},
		{domain.TicketSeverityTrivial, 72},
		{domain.TicketSeverity("UNKNOWN"), 72},
	}
	for _, tc := range cases {
		if got := DurationHours(tc.severity); got != tc.want {
			t.Fatalf("DurationHours(%s) = %d, want %d", tc.severity, got, tc.want)
		}
	}
}

func TestDurationMonotonicWithSeverity(t *testing.T) {
	order := []domain.TicketSeverity{
		domain.TicketSeverityCritical,
		domain.TicketSeverityMajor,
		domain.TicketSeverityMinor,
		domain.TicketSeverityTrivial,
	}
	for i := 1; i < len(order); i++ {
		if DurationHours(order[i]) <= DurationHours(order[i-1]) {
			t.Fatalf("expected %s window longer than %s", order[i], order[i-1])
		}
	}
}

func TestBreachAt(t *testing.T) {
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	got := BreachAt(issued, domain.TicketSeverityCritical)
	want := issued.Add(20 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("BreachAt = %v, want %v", got, want)
	}
}
