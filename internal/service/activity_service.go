package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// ActivityService exposes the per-ticket audit trail with visibility
// filtering: internal staff see everything, customers only public
// entries on their own tickets.
type ActivityService struct {
	tickets    repository.TicketRepository
	activities repository.ActivityRepository
}

func NewActivityService(tickets repository.TicketRepository, activities repository.ActivityRepository) *ActivityService {
	return &ActivityService{tickets: tickets, activities: activities}
}

// GetLogsForTicket returns the activity trail the actor is entitled to
// see, newest first.
func (s *ActivityService) GetLogsForTicket(ctx context.Context, actor *domain.User, ticketID int64) ([]domain.TicketActivity, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapTicketErr(err)
	}

	if actor.IsInternal() {
		logs, err := s.activities.ListByTicket(ctx, ticketID)
		if err != nil {
			return nil, util.ToDomainError(err)
		}
		return logs, nil
	}

	if ticket.OwnerID != actor.ID && ticket.CreatedByID != actor.ID {
		return nil, util.NewForbidden("You are not authorized to view this ticket's logs.")
	}
	logs, err := s.activities.ListPublicByTicket(ctx, ticketID)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return logs, nil
}

// GetLogsForTicketUID resolves a public ticket reference first.
func (s *ActivityService) GetLogsForTicketUID(ctx context.Context, actor *domain.User, uid string) ([]domain.TicketActivity, error) {
	ticket, err := s.tickets.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Ticket", nil)
		}
		return nil, util.ToDomainError(err)
	}
	return s.GetLogsForTicket(ctx, actor, ticket.ID)
}
