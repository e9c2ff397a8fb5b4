package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/dto"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// CustomerTicketsHandler manages customer-facing ticket endpoints.
type CustomerTicketsHandler struct {
	tickets       *service.TicketService
	activities    *service.ActivityService
	notifications *service.NotificationService
}

// NewCustomerTicketsHandler constructs handler.
func NewCustomerTicketsHandler(tickets *service.TicketService, activities *service.ActivityService, notifications *service.NotificationService) *CustomerTicketsHandler {
	return &CustomerTicketsHandler{tickets: tickets, activities: activities, notifications: notifications}
}

// CreateTicket POST /customer/tickets.
func (h *CustomerTicketsHandler) CreateTicket(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	input := service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		OwnerID:     req.OwnerID,
	}
	for _, att := range req.Attachments {
		input.Attachments = append(input.Attachments, service.AttachmentInput{
			FilePath: att.FilePath,
			FileName: att.FileName,
		})
	}

	ticket, err := h.tickets.CreateTicket(c.Context(), actor, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// ListActiveTickets GET /customer/tickets/active.
func (h *CustomerTicketsHandler) ListActiveTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListOwnerActiveTickets(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// ListResolvedTickets GET /customer/tickets/resolved.
func (h *CustomerTicketsHandler) ListResolvedTickets(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	tickets, err := h.tickets.ListOwnerResolvedTickets(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketSummaries(tickets)})
}

// GetTicket GET /customer/tickets/:uid.
func (h *CustomerTicketsHandler) GetTicket(c *fiber.Ctx) error {
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

// GetTicketLogs GET /customer/tickets/:uid/logs.
func (h *CustomerTicketsHandler) GetTicketLogs(c *fiber.Ctx) error {
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

// AddFeedback POST /customer/tickets/:id/feedback.
func (h *CustomerTicketsHandler) AddFeedback(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.AddFeedback(c.Context(), actor, ticketID, service.FeedbackInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket)})
}

// GetNotifications GET /customer/notifications.
func (h *CustomerTicketsHandler) GetNotifications(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}
	logs, err := h.notifications.ForCustomer(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewActivityResponses(logs)})
}
