// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType classifies what an address is used for.
type AddressType string

const (
	AddressTypeCustomer AddressType = "customer"
	AddressTypeDelivery AddressType = "delivery"
	AddressTypeBilling  AddressType = "billing"
)

// Address is a postal address attached to baskets.
// CustomerID is nil for addresses captured during anonymous checkout.
type Address struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	PostalCode string      `json:"postal_code"`
	City       string      `json:"city"`
	Country    string      `json:"country"`
	Type       AddressType `json:"type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// AddressMatch is the identity of an address for de-duplication:
// two addresses with the same match are the same logical address.
type AddressMatch struct {
	CustomerID *uuid.UUID // nil means "no customer" (anonymous scope).
	PostalCode string
	Address    string
	City       string
	Country    string
	Type       AddressType
}

// Match builds the de-duplication key of the address within the given customer scope.
func (a *Address) Match(scope *uuid.UUID) AddressMatch {
	return AddressMatch{
		CustomerID: scope,
		PostalCode: strings.TrimSpace(a.PostalCode),
		Address:    strings.TrimSpace(a.Address),
		City:       strings.TrimSpace(a.City),
		Country:    strings.TrimSpace(a.Country),
		Type:       a.Type,
	}
}
