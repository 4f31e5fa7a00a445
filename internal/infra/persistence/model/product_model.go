package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Category    string     `gorm:"type:varchar(100);not null;default:'';index"`
	Description string     `gorm:"type:text;not null;default:''"`
	ShowInStore bool       `gorm:"not null;default:false;index"`
	BaseUnitID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variants []ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
type ProductVariantModel struct {
	ID                             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID                      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Position                       int              `gorm:"not null;default:0"`
	OptionSet                      string           `gorm:"type:varchar(100);not null;default:''"`
	OptionValue                    string           `gorm:"type:varchar(100);not null;default:''"`
	Quantity                       *decimal.Decimal `gorm:"type:numeric(12,3)"`
	UnitID                         *uuid.UUID       `gorm:"type:uuid"`
	Price                          decimal.Decimal  `gorm:"type:numeric(12,2);not null;check:chk_product_variants_price,price >= 0"`
	Stock                          int              `gorm:"not null;default:0;check:chk_product_variants_stock,stock >= 0"`
	VATRateID                      *uuid.UUID       `gorm:"type:uuid"`
	ShowDescriptionOnPrintDelivery bool             `gorm:"not null;default:false"`
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// PanyenModel is the GORM-specific struct for the 'panyens' table.
type PanyenModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_panyens_price,price >= 0"`
	ShowInStore bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Components []PanyenComponentModel `gorm:"foreignKey:PanyenID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PanyenModel) TableName() string {
	return "panyens"
}

// PanyenComponentModel is the GORM-specific struct for the 'panyen_components' table.
type PanyenComponentModel struct {
	PanyenID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null;default:1"`

	Variant ProductVariantModel `gorm:"foreignKey:VariantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PanyenComponentModel) TableName() string {
	return "panyen_components"
}
