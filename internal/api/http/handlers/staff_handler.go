package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// StaffHandler serves cross-role lookups available to any internal user:
// any staff member may resolve a ticket by its public UID and read its
// full activity trail.
type StaffHandler struct {
	tickets    *service.TicketService
	activities *service.ActivityService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(tickets *service.TicketService, activities *service.ActivityService) *StaffHandler {
	return &StaffHandler{tickets: tickets, activities: activities}
}

// GetTicket GET /staff/tickets/:uid.
func (h *StaffHandler) GetTicket(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticket, err := h.tickets.GetTicketByUID(c.Context(), actor, c.Params("uid"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// GetTicketLogs GET /staff/tickets/:uid/logs.
func (h *StaffHandler) GetTicketLogs(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	logs, err := h.activities.GetLogsForTicketUID(c.Context(), actor, c.Params("uid"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewActivityResponses(logs)})
}
