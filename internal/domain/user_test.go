package domain

import "testing"

func TestRoleIsInternal(t *testing.T) {
	if RoleCustomer.IsInternal() {
		t.Fatalf("customer must not be internal")
	}
	for _, role := range []Role{
		RoleAgent, RoleTriageOfficer, RoleFieldEngineer, RoleNOCEngineer,
		RoleL1Engineer, RoleManager, RoleTeamLead, RoleCXO, RoleNOCAdmin,
	} {
		if !role.IsInternal() {
			t.Fatalf("%s should be internal", role)
		}
	}
}

func TestRoleIsAssignableEngineer(t *testing.T) {
	for _, role := range []Role{RoleFieldEngineer, RoleNOCEngineer, RoleL1Engineer} {
		if !role.IsAssignableEngineer() {
			t.Fatalf("%s should be assignable", role)
		}
	}
	for _, role := range []Role{RoleCustomer, RoleAgent, RoleTriageOfficer, RoleTeamLead, RoleManager} {
		if role.IsAssignableEngineer() {
			t.Fatalf("%s should not be assignable", role)
		}
	}
}

func TestUserIsInternal(t *testing.T) {
	cust := &User{Roles: []Role{RoleCustomer}}
	if cust.IsInternal() {
		t.Fatalf("pure customer must not be internal")
	}
	mixed := &User{Roles: []Role{RoleCustomer, RoleAgent}}
	if !mixed.IsInternal() {
		t.Fatalf("any internal role makes the user internal")
	}
}
