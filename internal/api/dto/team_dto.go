package dto

import "github.com/teleassist/ticketing-service/internal/domain"

// TeamResponse describes a team with its roster.
type TeamResponse struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	LeadID  int64         `json:"lead_id"`
	Members []UserSummary `json:"members"`
}

// RosterChangeRequest payload for add/remove member.
type RosterChangeRequest struct {
	UserID int64 `json:"user_id"`
}

// SearchTicketsRequest carries the manager's ad hoc filters.
type SearchTicketsRequest struct {
	Statuses    []domain.TicketStatus `json:"statuses"`
	TeamID      *int64                `json:"team_id"`
	City        *string               `json:"city"`
	SLAAtRisk   bool                  `json:"sla_at_risk"`
	SLABreached bool                  `json:"sla_breached"`
}

// NewTeamResponse maps a team and its members.
func NewTeamResponse(team *domain.Team, members []domain.User) TeamResponse {
	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		LeadID:  team.LeadID,
		Members: NewUserSummaries(members),
	}
}
