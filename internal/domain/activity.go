package domain

import "time"

// ActivityType captures what a ticket activity entry records.
type ActivityType string

const (
	ActivityCreation        ActivityType = "CREATION"
	ActivityStatusChange    ActivityType = "STATUS_CHANGE"
	ActivityPriorityChange  ActivityType = "PRIORITY_CHANGE"
	ActivityAssignment      ActivityType = "ASSIGNMENT"
	ActivityComment         ActivityType = "COMMENT"
	ActivityResolution      ActivityType = "RESOLUTION"
	ActivityReopened        ActivityType = "REOPENED"
	ActivityAttachmentAdded ActivityType = "ATTACHMENT_ADDED"
)

// TicketActivity is an append-only audit trail entry. Entries flagged
// InternalOnly are hidden from the customer-facing views.
type TicketActivity struct {
	ID           int64
	TicketID     int64
	UserID       int64
	ActivityType ActivityType
	Description  string
	InternalOnly bool
	CreatedAt    time.Time
}
