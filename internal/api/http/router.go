package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/internal/api/http/handlers"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customer       *handlers.CustomerTicketsHandler
	Agent          *handlers.AgentTicketsHandler
	Triage         *handlers.TriageHandler
	Engineer       *handlers.EngineerHandler
	TeamLead       *handlers.TeamLeadHandler
	Manager        *handlers.ManagerHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/signup", cfg.Auth.Signup)
	app.Post("/auth/login", cfg.Auth.Login)

	customer := app.Group("/customer", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCustomer, domain.RoleAgent))
	customer.Post("/tickets", cfg.Customer.CreateTicket)
	customer.Get("/tickets/active", cfg.Customer.ListActiveTickets)
	customer.Get("/tickets/resolved", cfg.Customer.ListResolvedTickets)
	customer.Get("/tickets/:uid", cfg.Customer.GetTicket)
	customer.Get("/tickets/:uid/logs", cfg.Customer.GetTicketLogs)
	customer.Post("/tickets/:id/feedback", cfg.Customer.AddFeedback)
	customer.Get("/notifications", cfg.Customer.GetNotifications)

	agent := app.Group("/agent", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAgent))
	agent.Get("/tickets/active", cfg.Agent.ListActiveTickets)
	agent.Get("/tickets/resolved", cfg.Agent.ListResolvedTickets)
	agent.Get("/notifications", cfg.Agent.GetNotifications)

	triage := app.Group("/triage", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleTriageOfficer))
	triage.Get("/tickets", cfg.Triage.ListPendingTickets)
	triage.Get("/tickets/suggestions", cfg.Triage.GetSuggestions)
	triage.Post("/tickets/:id", cfg.Triage.TriageTicket)
	triage.Get("/notifications", cfg.Triage.GetNotifications)

	engineer := app.Group("/engineer", cfg.AuthMiddleware.Handle, auth.RequireRole(
		domain.RoleFieldEngineer, domain.RoleNOCEngineer, domain.RoleL1Engineer))
	engineer.Get("/tickets", cfg.Engineer.ListAssignedTickets)
	engineer.Patch("/tickets/:id", cfg.Engineer.UpdateTicket)
	engineer.Get("/tickets/:id/logs", cfg.Engineer.GetTicketLogs)

	teamlead := app.Group("/teamlead", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleTeamLead))
	teamlead.Get("/tickets", cfg.TeamLead.ListTeamTickets)
	teamlead.Get("/tickets/sla-risk", cfg.TeamLead.ListSLARiskTickets)
	teamlead.Post("/tickets/:id/reassign", cfg.TeamLead.ReassignTicket)
	teamlead.Get("/team", cfg.TeamLead.GetTeam)
	teamlead.Post("/team/members", cfg.TeamLead.AddTeamMember)
	teamlead.Delete("/team/members/:id", cfg.TeamLead.RemoveTeamMember)

	manager := app.Group("/manager", cfg.AuthMiddleware.Handle, auth.RequireRole(
		domain.RoleManager, domain.RoleCXO, domain.RoleNOCAdmin))
	manager.Post("/tickets/search", cfg.Manager.SearchTickets)
	manager.Get("/reports/volume", cfg.Manager.TicketVolume)
	manager.Get("/reports/resolution-time", cfg.Manager.AverageResolution)
	manager.Get("/reports/satisfaction", cfg.Manager.Satisfaction)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireInternal())
	staff.Get("/tickets/:uid", cfg.Staff.GetTicket)
	staff.Get("/tickets/:uid/logs", cfg.Staff.GetTicketLogs)
}
