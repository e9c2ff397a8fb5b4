package service

import (
	"context"
	"testing"
	"time"

	"github.com/teleassist/ticketing-service/internal/repository"
)

func TestTicketVolume_LabelsByDay(t *testing.T) {
	tickets := newFakeTicketRepo()
	tickets.volume = []repository.VolumePoint{
		{Date: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), Count: 3},
		{Date: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), Count: 1},
	}
	svc := NewReportingService(tickets, newFakeFeedbackRepo())

	entries, err := svc.TicketVolume(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []VolumeEntry{{Label: "Aug 01", Count: 3}, {Label: "Aug 02", Count: 1}}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, entry, want[i])
		}
	}
}

func TestTicketVolume_EmptyWindow(t *testing.T) {
	svc := NewReportingService(newFakeTicketRepo(), newFakeFeedbackRepo())

	entries, err := svc.TicketVolume(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty report, got %v", entries)
	}
}

func TestAverageResolutionHours_ZeroWhenNothingResolved(t *testing.T) {
	svc := NewReportingService(newFakeTicketRepo(), newFakeFeedbackRepo())

	avg, err := svc.AverageResolutionHours(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 0.0 {
		t.Fatalf("expected 0.0, got %v", avg)
	}
}

func TestAverageResolutionHours_PassesThrough(t *testing.T) {
	tickets := newFakeTicketRepo()
	tickets.avgHours = 26.5
	svc := NewReportingService(tickets, newFakeFeedbackRepo())

	avg, err := svc.AverageResolutionHours(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 26.5 {
		t.Fatalf("expected 26.5, got %v", avg)
	}
}

func TestSatisfactionDistribution_AscendingByRating(t *testing.T) {
	feedback := newFakeFeedbackRepo()
	feedback.buckets = []repository.RatingBucket{
		{Rating: 1, Count: 2},
		{Rating: 3, Count: 5},
		{Rating: 5, Count: 9},
	}
	svc := NewReportingService(newFakeTicketRepo(), feedback)

	entries, err := svc.SatisfactionDistribution(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Rating <= entries[i-1].Rating {
			t.Fatalf("ratings not ascending: %+v", entries)
		}
	}
	if entries[2].Count != 9 {
		t.Fatalf("counts not carried through: %+v", entries)
	}
}
