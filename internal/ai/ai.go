package ai

import (
	"context"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// Suggestion is the advisory triage triple returned by the assistant.
// It is never authoritative; the triage officer decides what to apply.
type Suggestion struct {
	Priority      domain.TicketPriority `json:"priority"`
	Severity      domain.TicketSeverity `json:"severity"`
	SuggestedRole domain.Role           `json:"suggested_role"`
}

// TriageAssistant produces a triage suggestion for a ticket's free-text
// summary. Implementations may call a remote model or answer locally.
type TriageAssistant interface {
	Suggest(ctx context.Context, summary string) (Suggestion, error)
}
