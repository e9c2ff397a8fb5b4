package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_RoutesByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, triaged int
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		created++
		return nil
	})
	d.Subscribe(EventTicketTriaged, func(ctx context.Context, e Event) error {
		triaged++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if created != 1 || triaged != 0 {
		t.Fatalf("expected only the created handler, got created=%d triaged=%d", created, triaged)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventFeedbackReceived, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventFeedbackReceived, func(ctx context.Context, e Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventFeedbackReceived}); err != nil {
		t.Fatalf("handler errors must not reach the publisher: %v", err)
	}
	if !second {
		t.Fatalf("second handler skipped after first errored")
	}
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventTicketReassigned}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
