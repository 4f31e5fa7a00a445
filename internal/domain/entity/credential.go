// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a password login for one role. A person holding several roles
// has one credential per role.
type Credential struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	SubjectID    uuid.UUID `json:"subject_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal builds the authenticated principal for this credential.
func (c *Credential) Principal() Principal {
	return Principal{
		Role: c.Role,
		Payload: PrincipalPayload{
			SubjectID: c.SubjectID,
			Email:     c.Email,
			Name:      c.Name,
		},
	}
}
