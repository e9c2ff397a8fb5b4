// Package sla computes breach deadlines from ticket severity.
package sla

import (
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// durationHours is the fixed severity table. Less severe tiers get
// monotonically longer windows.
var durationHours = map[domain.TicketSeverity]int{
	domain.TicketSeverityCritical: 20,
	domain.TicketSeverityMajor:    30,
	domain.TicketSeverityMinor:    48,
	domain.TicketSeverityTrivial:  72,
}

const defaultHours = 72

// DurationHours returns the SLA window for a severity. Unknown severities
// fall back to the most lenient tier.
func DurationHours(severity domain.TicketSeverity) int {
	if hours, ok := durationHours[severity]; ok {
		return hours
	}
	return defaultHours
}

// BreachAt computes the deadline for a ticket issued at the given time.
func BreachAt(issuedAt time.Time, severity domain.TicketSeverity) time.Time {
	return issuedAt.Add(time.Duration(DurationHours(severity)) * time.Hour)
}
