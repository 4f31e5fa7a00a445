package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BasketSessionModel is the GORM-specific struct for the 'basket_sessions' table.
// OrderIndex is backed by a sequence and filled in by the database.
type BasketSessionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderIndex       int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus    string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	AddressID        *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryCost     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryDay      *time.Time      `gorm:"type:date;index"`
	Delivered        *time.Time
	DeliveredBy      *uuid.UUID      `gorm:"type:uuid"`
	WalletAmountUsed decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Customer CustomerModel           `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Address  *AddressModel           `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
	Items    []BasketSessionItemModel `gorm:"foreignKey:BasketSessionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BasketSessionModel) TableName() string {
	return "basket_sessions"
}

// BasketSessionItemModel is the GORM-specific struct for the 'basket_session_items' table.
// Leaf rows reference a product variant, composite rows reference a panyen.
type BasketSessionItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BasketSessionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null;default:0"`
	Kind             string          `gorm:"type:varchar(20);not null;default:'leaf'"`
	ProductID        *uuid.UUID      `gorm:"type:uuid"`
	ProductVariantID *uuid.UUID      `gorm:"type:uuid"`
	PanyenID         *uuid.UUID      `gorm:"type:uuid"`
	Quantity         int             `gorm:"not null;check:chk_basket_session_items_quantity,quantity > 0"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Price            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description      string          `gorm:"type:text;not null;default:''"`
	RefundStatus     string          `gorm:"type:varchar(20);not null;default:'none'"`

	Product        *ProductModel        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ProductVariant *ProductVariantModel `gorm:"foreignKey:ProductVariantID;constraint:OnDelete:RESTRICT"`
	Panyen         *PanyenModel         `gorm:"foreignKey:PanyenID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (BasketSessionItemModel) TableName() string {
	return "basket_session_items"
}

// CheckoutSessionModel is the GORM-specific struct for the 'checkout_sessions' table.
type CheckoutSessionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BasketSessionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	WalletReserved    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Provider          string          `gorm:"type:varchar(50);not null;default:''"`
	ProviderSessionID *string         `gorm:"type:varchar(255);uniqueIndex"`
	RedirectURL       string          `gorm:"type:text;not null;default:''"`
	SuccessPayload    datatypes.JSON  `gorm:"type:jsonb"`
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	BasketSession BasketSessionModel `gorm:"foreignKey:BasketSessionID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CheckoutSessionModel) TableName() string {
	return "checkout_sessions"
}
