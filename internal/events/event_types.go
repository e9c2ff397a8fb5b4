package events

import (
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketTriaged       EventType = "ticket_triaged"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketReassigned    EventType = "ticket_reassigned"
	EventFeedbackReceived    EventType = "feedback_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	TicketUID string      `json:"ticket_uid"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title    string `json:"title"`
	OwnerID  int64  `json:"owner_id"`
	Category string `json:"category"`
}

// TicketTriagedPayload payload.
type TicketTriagedPayload struct {
	Priority    domain.TicketPriority `json:"priority"`
	Severity    domain.TicketSeverity `json:"severity"`
	AssigneeIDs []int64               `json:"assignee_ids"`
	SLABreachAt time.Time             `json:"sla_breach_at"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Comment   string              `json:"comment,omitempty"`
}

// TicketReassignedPayload payload.
type TicketReassignedPayload struct {
	TeamID      int64   `json:"team_id"`
	AssigneeIDs []int64 `json:"assignee_ids"`
}

// FeedbackReceivedPayload payload.
type FeedbackReceivedPayload struct {
	Rating    int                 `json:"rating"`
	NewStatus domain.TicketStatus `json:"new_status"`
}
