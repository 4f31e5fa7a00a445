// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents one of the four portals an account can sign in to.
type Role string

const (
	// RoleAdmin is the back-office role.
	RoleAdmin Role = "admin"
	// RoleCustomer is the storefront role.
	RoleCustomer Role = "customer"
	// RoleGrower is the producer portal role.
	RoleGrower Role = "grower"
	// RoleDeliverer is the delivery portal role.
	RoleDeliverer Role = "deliverer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleGrower, RoleDeliverer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// PrincipalPayload is the identity part of a resolved principal.
type PrincipalPayload struct {
	SubjectID uuid.UUID `json:"subject_id"` // ID of the admin, customer, grower or deliverer row.
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
}

// Principal is the authenticated caller: exactly one role plus its payload.
type Principal struct {
	Role    Role             `json:"role"`
	Payload PrincipalPayload `json:"payload"`
}

// Is reports whether the principal holds one of the given roles.
func (p *Principal) Is(roles ...Role) bool {
	if p == nil {
		return false
	}

	return slices.Contains(roles, p.Role)
}
