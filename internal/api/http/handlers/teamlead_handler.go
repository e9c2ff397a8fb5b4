package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// TeamLeadHandler manages team lead endpoints: team ticket visibility,
// SLA risk, reassignment, and roster changes.
type TeamLeadHandler struct {
	tickets *service.TicketService
	teams   *service.TeamService
}

// NewTeamLeadHandler constructs handler.
func NewTeamLeadHandler(tickets *service.TicketService, teams *service.TeamService) *TeamLeadHandler {
	return &TeamLeadHandler{tickets: tickets, teams: teams}
}

// ListTeamTickets GET /teamlead/tickets.
func (h *TeamLeadHandler) ListTeamTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListTeamTickets(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// ListSLARiskTickets GET /teamlead/tickets/sla-risk.
func (h *TeamLeadHandler) ListSLARiskTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListTeamSLARisk(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// ReassignTicket POST /teamlead/tickets/:id/reassign.
func (h *TeamLeadHandler) ReassignTicket(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ReassignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.Reassign(c.Context(), actor, ticketID, service.ReassignInput{
		NewAssigneeIDs: req.NewAssigneeIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// GetTeam GET /teamlead/team.
func (h *TeamLeadHandler) GetTeam(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	team, members, err := h.teams.GetOwnTeam(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTeamResponse(team, members)})
}

// AddTeamMember POST /teamlead/team/members.
func (h *TeamLeadHandler) AddTeamMember(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.RosterChangeRequest
	if err := c.BodyParser(&req); err != nil || req.UserID <= 0 {
		return util.NewValidationError("user_id required", nil)
	}
	if err := h.teams.AddMember(c.Context(), actor, req.UserID); err != nil {
		return err
	}
	return h.GetTeam(c)
}

// RemoveTeamMember DELETE /teamlead/team/members/:id.
func (h *TeamLeadHandler) RemoveTeamMember(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.teams.RemoveMember(c.Context(), actor, userID); err != nil {
		return err
	}
	return h.GetTeam(c)
}
