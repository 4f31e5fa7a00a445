package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(255);not null;default:''"`
	Phone         string          `gorm:"type:varchar(50);not null;default:''"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_customers_wallet_balance,wallet_balance >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// WalletTransactionModel is the GORM-specific struct for the 'wallet_transactions' table.
type WalletTransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason          string          `gorm:"type:text;not null;default:''"`
	BasketSessionID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy       *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time

	Customer CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
