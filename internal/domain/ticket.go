package domain

import (
	"strconv"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusCreated       TicketStatus = "CREATED"
	TicketStatusNeedsTriaging TicketStatus = "NEEDS_TRIAGING"
	TicketStatusAssigned      TicketStatus = "ASSIGNED"
	TicketStatusInProgress    TicketStatus = "IN_PROGRESS"
	TicketStatusFixed         TicketStatus = "FIXED"
	TicketStatusResolved      TicketStatus = "RESOLVED"
	TicketStatusReopened      TicketStatus = "REOPENED"
)

// PendingTriageStatuses are the states eligible for triage. REOPENED
// re-enters the triage queue alongside fresh tickets.
var PendingTriageStatuses = []TicketStatus{
	TicketStatusCreated,
	TicketStatusNeedsTriaging,
	TicketStatusReopened,
}

// IsPendingTriage reports membership in the pending-triage set.
func (s TicketStatus) IsPendingTriage() bool {
	for _, candidate := range PendingTriageStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// ActiveStatuses are the states in which engineers hold the ticket.
var ActiveStatuses = []TicketStatus{
	TicketStatusAssigned,
	TicketStatusInProgress,
}

// TicketPriority enumerates urgency as set during triage.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// TicketSeverity enumerates impact, which drives the SLA duration.
type TicketSeverity string

const (
	TicketSeverityTrivial  TicketSeverity = "TRIVIAL"
	TicketSeverityMinor    TicketSeverity = "MINOR"
	TicketSeverityMajor    TicketSeverity = "MAJOR"
	TicketSeverityCritical TicketSeverity = "CRITICAL"
)

const (
	ticketUIDPrefix = "TK"
	ticketUIDOffset = 1000
)

// TicketUID derives the public UID from the numeric id. The format is an
// external contract once tickets exist and must not change without a
// migration.
func TicketUID(id int64) string {
	return ticketUIDPrefix + strconv.FormatInt(id+ticketUIDOffset, 10)
}

// Ticket is the aggregate for support requests. OwnerID is the customer
// the ticket is for; CreatedByID is whoever filed it (the owner, or an
// agent acting on the owner's behalf). Assignee associations live in a
// join table keyed by (ticket_id, user_id) and are loaded as AssigneeIDs.
type Ticket struct {
	ID               int64
	TicketUID        string
	Title            string
	Description      string
	Status           TicketStatus
	Priority         TicketPriority
	Severity         TicketSeverity
	Category         string
	SubCategory      string
	SLADurationHours *int
	SLABreachAt      *time.Time
	OwnerID          int64
	CreatedByID      int64
	AssignedByID     *int64
	AssigneeIDs      []int64
	Attachments      []Attachment
	Feedback         *Feedback
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResolvedAt       *time.Time
}

// Attachment stores an opaque file reference tied to a ticket.
type Attachment struct {
	ID         int64
	TicketID   int64
	FilePath   string
	FileName   string
	UploadedAt time.Time
}
