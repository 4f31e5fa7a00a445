// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindMatchingAddress returns the oldest address with the same match key.
	// A nil CustomerID in the match only matches addresses without a customer.
	// Returns ErrAddressNotFound when nothing matches.
	FindMatchingAddress(ctx context.Context, match entity.AddressMatch) (*entity.Address, error)

	// FindMatchingAddressOnPrimary is FindMatchingAddress read from the primary with a row lock,
	// used right before creating a new address.
	FindMatchingAddressOnPrimary(ctx context.Context, match entity.AddressMatch) (*entity.Address, error)

	// FindAddressesByCustomer lists the saved addresses of a customer.
	FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)
}
