package ai

import (
	"context"
	"hash/fnv"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// MockAssistant answers deterministically from a hash of the summary, so
// development environments behave the same run to run.
type MockAssistant struct {
	ModelName string
}

func (m MockAssistant) Suggest(ctx context.Context, summary string) (Suggestion, error) {
	h := fnv.New64a()
	h.Write([]byte(summary))
	v := h.Sum64()

	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow, domain.TicketPriorityMedium, domain.TicketPriorityHigh, domain.TicketPriorityUrgent,
	}
	severities := []domain.TicketSeverity{
		domain.TicketSeverityTrivial, domain.TicketSeverityMinor, domain.TicketSeverityMajor, domain.TicketSeverityCritical,
	}
	roles := []domain.Role{
		domain.RoleFieldEngineer, domain.RoleNOCEngineer, domain.RoleL1Engineer,
	}

	return Suggestion{
		Priority:      priorities[v%uint64(len(priorities))],
		Severity:      severities[(v/7)%uint64(len(severities))],
		SuggestedRole: roles[(v/13)%uint64(len(roles))],
	}, nil
}
