package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	SKU         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id" validate:"uuid_required"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	// Quantity at or below which the product is flagged low-stock
	ReorderLevel int `gorm:"not null;default:10" json:"reorder_level" validate:"gte=0"`

	// Relasi
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	Supplier     *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
	Inventory    *Inventory    `gorm:"foreignKey:ProductID" json:"inventory,omitempty" validate:"-"`
	Transactions []Transaction `gorm:"foreignKey:ProductID" json:"transactions,omitempty" validate:"-"`
}

// StockValue is the valuation of the current on-hand quantity.
func (p *Product) StockValue() decimal.Decimal {
	if p.Inventory == nil {
		return decimal.Zero
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Inventory.Quantity)))
}

// IsLowStock reports whether on-hand is at or below the reorder level.
func (p *Product) IsLowStock() bool {
	if p.Inventory == nil {
		return false
	}
	return p.Inventory.Quantity <= p.ReorderLevel
}
