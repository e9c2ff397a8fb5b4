package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// EngineerHandler manages assigned-engineer endpoints.
type EngineerHandler struct {
	tickets    *service.TicketService
	activities *service.ActivityService
}

// NewEngineerHandler constructs handler.
func NewEngineerHandler(tickets *service.TicketService, activities *service.ActivityService) *EngineerHandler {
	return &EngineerHandler{tickets: tickets, activities: activities}
}

// ListAssignedTickets GET /engineer/tickets.
func (h *EngineerHandler) ListAssignedTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListAssignedTickets(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// UpdateTicket PATCH /engineer/tickets/:id.
func (h *EngineerHandler) UpdateTicket(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.EngineerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.UpdateTicket(c.Context(), actor, ticketID, service.EngineerUpdateInput{
		Comment:   req.Comment,
		NewStatus: req.NewStatus,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// GetTicketLogs GET /engineer/tickets/:id/logs.
func (h *EngineerHandler) GetTicketLogs(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	logs, err := h.activities.GetLogsForTicket(c.Context(), actor, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewActivityResponses(logs)})
}
