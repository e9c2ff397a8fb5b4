package domain

import "time"

// NegativeRatingMax is the business threshold: ratings at or below it
// reopen the ticket, anything above resolves it.
const NegativeRatingMax = 2

// Feedback holds the customer's one-to-one rating for a fixed ticket.
type Feedback struct {
	ID        int64
	TicketID  int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// IsNegative reports whether the rating reopens the ticket.
func (f *Feedback) IsNegative() bool {
	return f.Rating <= NegativeRatingMax
}
