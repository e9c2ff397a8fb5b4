package domain

import "time"

// Team groups assignable engineers under exactly one lead.
type Team struct {
	ID        int64
	Name      string
	LeadID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
