package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// TriageHandler manages triage officer endpoints.
type TriageHandler struct {
	tickets *service.TicketService
	triage  *service.TriageService
}

// NewTriageHandler constructs handler.
func NewTriageHandler(tickets *service.TicketService, triage *service.TriageService) *TriageHandler {
	return &TriageHandler{tickets: tickets, triage: triage}
}

// ListPendingTickets GET /triage/tickets.
func (h *TriageHandler) ListPendingTickets(c *fiber.Ctx) error {
	tickets, err := h.triage.GetPendingTickets(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// GetSuggestions GET /triage/tickets/suggestions.
func (h *TriageHandler) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := h.triage.GetAISuggestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": suggestions})
}

// TriageTicket POST /triage/tickets/:id.
func (h *TriageHandler) TriageTicket(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.TriageTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Priority == "" || req.Severity == "" {
		return util.NewValidationError("priority and severity required", nil)
	}

	ticket, err := h.tickets.Triage(c.Context(), actor, ticketID, service.TriageInput{
		Priority:    req.Priority,
		Severity:    req.Severity,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// GetNotifications GET /triage/notifications.
func (h *TriageHandler) GetNotifications(c *fiber.Ctx) error {
	logs, err := h.triage.GetNotifications(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewActivityResponses(logs)})
}
