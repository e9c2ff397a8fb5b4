package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// ManagerHandler serves cross-team search and aggregated reports.
type ManagerHandler struct {
	query     *service.QueryService
	reporting *service.ReportingService
}

// NewManagerHandler constructs handler.
func NewManagerHandler(query *service.QueryService, reporting *service.ReportingService) *ManagerHandler {
	return &ManagerHandler{query: query, reporting: reporting}
}

// SearchTickets POST /manager/tickets/search.
func (h *ManagerHandler) SearchTickets(c *fiber.Ctx) error {
	var req dto.SearchTicketsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	tickets, err := h.query.SearchTickets(c.Context(), service.TicketSearchInput{
		Statuses:    req.Statuses,
		TeamID:      req.TeamID,
		City:        req.City,
		SLAAtRisk:   req.SLAAtRisk,
		SLABreached: req.SLABreached,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// TicketVolume GET /manager/reports/volume.
func (h *ManagerHandler) TicketVolume(c *fiber.Ctx) error {
	entries, err := h.reporting.TicketVolume(c.Context(), queryDays(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// AverageResolution GET /manager/reports/resolution-time.
func (h *ManagerHandler) AverageResolution(c *fiber.Ctx) error {
	avg, err := h.reporting.AverageResolutionHours(c.Context(), queryDays(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"average_resolution_hours": avg}})
}

// Satisfaction GET /manager/reports/satisfaction.
func (h *ManagerHandler) Satisfaction(c *fiber.Ctx) error {
	entries, err := h.reporting.SatisfactionDistribution(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

func queryDays(c *fiber.Ctx) int {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		return 30
	}
	return days
}
