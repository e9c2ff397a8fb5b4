package service

import (
	"context"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// TicketSearchInput carries the manager's ad hoc filters. Every field is
// optional; set fields combine with AND.
type TicketSearchInput struct {
	Statuses    []domain.TicketStatus
	TeamID      *int64
	City        *string
	SLAAtRisk   bool
	SLABreached bool
}

// QueryService runs cross-team ticket searches for managers.
type QueryService struct {
	tickets repository.TicketRepository
}

func NewQueryService(tickets repository.TicketRepository) *QueryService {
	return &QueryService{tickets: tickets}
}

// SearchTickets applies the given criteria across all teams.
func (s *QueryService) SearchTickets(ctx context.Context, input TicketSearchInput) ([]domain.Ticket, error) {
	for _, status := range input.Statuses {
		if !validStatus(status) {
			return nil, util.NewBadRequest("unknown status: " + string(status))
		}
	}
	tickets, err := s.tickets.Search(ctx, repository.TicketCriteria{
		Statuses:    input.Statuses,
		TeamID:      input.TeamID,
		City:        input.City,
		SLAAtRisk:   input.SLAAtRisk,
		SLABreached: input.SLABreached,
	})
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

func validStatus(status domain.TicketStatus) bool {
	switch status {
	case domain.TicketStatusCreated,
		domain.TicketStatusNeedsTriaging,
		domain.TicketStatusAssigned,
		domain.TicketStatusInProgress,
		domain.TicketStatusFixed,
		domain.TicketStatusResolved,
		domain.TicketStatusReopened:
		return true
	}
	return false
}
