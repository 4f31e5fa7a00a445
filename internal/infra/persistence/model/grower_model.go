package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// GrowerModel is the GORM-specific struct for the 'growers' table.
type GrowerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	FarmName  string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GrowerModel) TableName() string {
	return "growers"
}

// GrowerProductModel is the GORM-specific struct for the 'grower_products' table.
type GrowerProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GrowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_grower_products_grower_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_grower_products_grower_product;index"`
	Stock     int       `gorm:"not null;default:0;check:chk_grower_products_stock,stock >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Grower   GrowerModel                 `gorm:"foreignKey:GrowerID;constraint:OnDelete:CASCADE"`
	Product  ProductModel                `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Variants []GrowerProductVariantModel `gorm:"foreignKey:GrowerProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GrowerProductModel) TableName() string {
	return "grower_products"
}

// GrowerProductVariantModel is the GORM-specific struct for the 'grower_product_variants' table.
type GrowerProductVariantModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GrowerProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_grower_product_variants_variant"`
	VariantID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_grower_product_variants_variant"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_grower_product_variants_price,price >= 0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Variant ProductVariantModel `gorm:"foreignKey:VariantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (GrowerProductVariantModel) TableName() string {
	return "grower_product_variants"
}

// GrowerStockUpdateModel is the GORM-specific struct for the 'grower_stock_updates' table.
// The "one PENDING request per variant" rule is a partial unique index created by the migration.
type GrowerStockUpdateModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GrowerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	VariantID       uuid.UUID      `gorm:"type:uuid;not null"`
	NewStock        *int           `gorm:"check:chk_grower_stock_updates_new_stock,new_stock IS NULL OR new_stock >= 0"`
	PreviousStock   *int
	RequestedPrices datatypes.JSON `gorm:"type:jsonb"`
	PreviousPrices  datatypes.JSON `gorm:"type:jsonb"`
	Reason          string         `gorm:"type:text;not null;default:''"`
	Status          string         `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	RequestDate     time.Time      `gorm:"not null;default:now()"`
	AdminComment    string         `gorm:"type:text;not null;default:''"`
	DecidedAt       *time.Time
	DecidedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Grower  GrowerModel         `gorm:"foreignKey:GrowerID;constraint:OnDelete:CASCADE"`
	Product ProductModel        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Variant ProductVariantModel `gorm:"foreignKey:VariantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (GrowerStockUpdateModel) TableName() string {
	return "grower_stock_updates"
}
