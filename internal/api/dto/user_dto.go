package dto

import (
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// SignupRequest payload.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	City     string `json:"city"`
}

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// UserSummary response.
type UserSummary struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	FullName string        `json:"full_name"`
	City     string        `json:"city,omitempty"`
	Roles    []domain.Role `json:"roles"`
	TeamID   *int64        `json:"team_id,omitempty"`
}

// NewUserSummary maps a domain user.
func NewUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		City:     u.City,
		Roles:    u.Roles,
		TeamID:   u.TeamID,
	}
}

// NewUserSummaries maps a slice of users.
func NewUserSummaries(users []domain.User) []UserSummary {
	items := make([]UserSummary, 0, len(users))
	for i := range users {
		items = append(items, NewUserSummary(&users[i]))
	}
	return items
}
