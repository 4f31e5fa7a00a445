package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// De-duplication lookups hit idx_addresses_match.
type AddressModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index:idx_addresses_match,priority:1"`
	Name       string     `gorm:"type:varchar(255);not null;default:''"`
	Address    string     `gorm:"type:text;not null;index:idx_addresses_match,priority:3"`
	PostalCode string     `gorm:"type:varchar(20);not null;index:idx_addresses_match,priority:2"`
	City       string     `gorm:"type:varchar(100);not null"`
	Country    string     `gorm:"type:varchar(100);not null"`
	Type       string     `gorm:"type:varchar(20);not null;default:'customer'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
