package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teleassist/ticketing-service/internal/ai"
	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// aiFailedMarker prefixes a suggestion title when the assistant could not
// be reached, so the triage queue shows the degradation explicitly.
const aiFailedMarker = "[AI FAILED]"

// TicketSuggestion pairs a pending ticket with the assistant's advisory
// triage triple.
type TicketSuggestion struct {
	TicketID      int64                 `json:"ticket_id"`
	TicketUID     string                `json:"ticket_uid"`
	Title         string                `json:"title"`
	Priority      domain.TicketPriority `json:"priority"`
	Severity      domain.TicketSeverity `json:"severity"`
	SuggestedRole domain.Role           `json:"suggested_role,omitempty"`
}

// TriageService serves the triage officer's queue and its AI advisory
// layer. The assistant is best effort: any failure degrades to safe
// defaults and never blocks the queue.
type TriageService struct {
	tickets    repository.TicketRepository
	activities repository.ActivityRepository
	assistant  ai.TriageAssistant
	logger     *zap.Logger
}

func NewTriageService(tickets repository.TicketRepository, activities repository.ActivityRepository, assistant ai.TriageAssistant, logger *zap.Logger) *TriageService {
	return &TriageService{
		tickets:    tickets,
		activities: activities,
		assistant:  assistant,
		logger:     logger,
	}
}

// GetPendingTickets lists every ticket awaiting triage, including
// reopened ones.
func (s *TriageService) GetPendingTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByStatusIn(ctx, domain.PendingTriageStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// GetAISuggestions asks the assistant for a triage triple per pending
// ticket. A failed call yields the lowest priority and severity with the
// title flagged; the error itself is logged and dropped.
func (s *TriageService) GetAISuggestions(ctx context.Context) ([]TicketSuggestion, error) {
	pending, err := s.tickets.ListByStatusIn(ctx, domain.PendingTriageStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}

	suggestions := make([]TicketSuggestion, 0, len(pending))
	for _, ticket := range pending {
		summary := fmt.Sprintf("%s: %s", ticket.Title, ticket.Description)
		result, err := s.assistant.Suggest(ctx, summary)
		if err != nil {
			s.logger.Warn("triage assistant unavailable",
				zap.String("ticket_uid", ticket.TicketUID),
				zap.Error(err))
			suggestions = append(suggestions, TicketSuggestion{
				TicketID:  ticket.ID,
				TicketUID: ticket.TicketUID,
				Title:     aiFailedMarker + " " + ticket.Title,
				Priority:  domain.TicketPriorityLow,
				Severity:  domain.TicketSeverityTrivial,
			})
			continue
		}
		suggestions = append(suggestions, TicketSuggestion{
			TicketID:      ticket.ID,
			TicketUID:     ticket.TicketUID,
			Title:         ticket.Title,
			Priority:      result.Priority,
			Severity:      result.Severity,
			SuggestedRole: result.SuggestedRole,
		})
	}
	return suggestions, nil
}

// GetNotifications feeds the triage officer new and reopened tickets.
func (s *TriageService) GetNotifications(ctx context.Context) ([]domain.TicketActivity, error) {
	logs, err := s.activities.ListByTypes(ctx, []domain.ActivityType{
		domain.ActivityCreation,
		domain.ActivityReopened,
	})
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return logs, nil
}
