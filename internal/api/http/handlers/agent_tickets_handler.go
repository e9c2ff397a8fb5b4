package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// AgentTicketsHandler manages agent ticket endpoints. Ticket creation on
// behalf of a customer reuses the customer creation endpoint with an
// owner id in the payload.
type AgentTicketsHandler struct {
	tickets       *service.TicketService
	notifications *service.NotificationService
}

// NewAgentTicketsHandler constructs handler.
func NewAgentTicketsHandler(tickets *service.TicketService, notifications *service.NotificationService) *AgentTicketsHandler {
	return &AgentTicketsHandler{tickets: tickets, notifications: notifications}
}

// ListActiveTickets GET /agent/tickets/active.
func (h *AgentTicketsHandler) ListActiveTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListCreatorActiveTickets(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// ListResolvedTickets GET /agent/tickets/resolved.
func (h *AgentTicketsHandler) ListResolvedTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListCreatorResolvedTickets(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// GetNotifications GET /agent/notifications.
func (h *AgentTicketsHandler) GetNotifications(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	logs, err := h.notifications.ForAgent(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewActivityResponses(logs)})
}
