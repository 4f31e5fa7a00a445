package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel is the GORM-specific struct for the 'credentials' table.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Role         string    `gorm:"type:varchar(20);not null;uniqueIndex:ux_credentials_role_email"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_credentials_role_email"`
	Name         string    `gorm:"type:varchar(255);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// DelivererModel is the GORM-specific struct for the 'deliverers' table.
type DelivererModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DelivererModel) TableName() string {
	return "deliverers"
}
