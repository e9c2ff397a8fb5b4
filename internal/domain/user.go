package domain

import "time"

// Role enumerates the closed set of operator and customer roles.
type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RoleAgent         Role = "AGENT"
	RoleTriageOfficer Role = "TRIAGE_OFFICER"
	RoleFieldEngineer Role = "FIELD_ENGINEER"
	RoleNOCEngineer   Role = "NOC_ENGINEER"
	RoleL1Engineer    Role = "L1_ENGINEER"
	RoleManager       Role = "MANAGER"
	RoleTeamLead      Role = "TEAM_LEAD"
	RoleCXO           Role = "CXO"
	RoleNOCAdmin      Role = "NOC_ADMIN"
)

// internalRoles maps each role to whether it may see internal-only
// activity entries. Everything except CUSTOMER is internal.
var internalRoles = map[Role]bool{
	RoleAgent:         true,
	RoleTriageOfficer: true,
	RoleFieldEngineer: true,
	RoleNOCEngineer:   true,
	RoleL1Engineer:    true,
	RoleManager:       true,
	RoleTeamLead:      true,
	RoleCXO:           true,
	RoleNOCAdmin:      true,
}

// assignableEngineerRoles are the roles triage may assign tickets to.
var assignableEngineerRoles = map[Role]bool{
	RoleFieldEngineer: true,
	RoleNOCEngineer:   true,
	RoleL1Engineer:    true,
}

// IsInternal reports whether the role may see internal-only entries.
func (r Role) IsInternal() bool {
	return internalRoles[r]
}

// IsAssignableEngineer reports whether the role can hold ticket assignments.
func (r Role) IsAssignableEngineer() bool {
	return assignableEngineerRoles[r]
}

// User models an account in the directory. Customers never belong to a
// team; at most one team membership otherwise.
type User struct {
	ID           int64
	Username     string
	FullName     string
	PasswordHash string
	City         string
	Roles        []Role
	TeamID       *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsInternal reports whether the user's role set intersects the internal
// role set. A pure customer is not internal.
func (u *User) IsInternal() bool {
	for _, r := range u.Roles {
		if r.IsInternal() {
			return true
		}
	}
	return false
}
